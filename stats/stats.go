// Package stats derives summaries from the current record collection
package stats

import (
	"time"

	"github.com/zxrxiaoha/checkInRecord/internal/record"
	"github.com/zxrxiaoha/checkInRecord/internal/timeutil"
)

// trendDays is the reporting window for the daily trend and averages.
const trendDays = 7

// Distribution buckets records by the hour of their start time. The
// boundaries are [5,12) for morning and [12,18) for afternoon; evening
// takes the rest, so the three buckets cover all 24 hours.
type Distribution struct {
	Morning   int
	Afternoon int
	Evening   int
}

// Summary collects the headline figures of the stats panel.
type Summary struct {
	AverageHours float64
	WeeklyCount  int
	Streak       int
	Total        int
}

// Summarize computes the headline figures over a record snapshot.
func Summarize(records []*record.Record, now time.Time) Summary {
	return Summary{
		AverageHours: AverageDuration(records),
		WeeklyCount:  WeeklyCount(records, now),
		Streak:       CurrentStreak(records, now),
		Total:        len(records),
	}
}

// AverageDuration returns the mean record duration in fractional hours,
// or 0 for an empty snapshot.
func AverageDuration(records []*record.Record) float64 {
	if len(records) == 0 {
		return 0
	}

	var total float64

	for _, r := range records {
		total += r.EndTime.Sub(r.StartTime).Hours()
	}

	return total / float64(len(records))
}

// WeeklyCount counts the records whose start time falls within the
// current week, from its start through now.
func WeeklyCount(records []*record.Record, now time.Time) int {
	weekStart := timeutil.StartOfWeek(now)

	n := 0

	for _, r := range records {
		if !r.StartTime.Before(weekStart) && !r.StartTime.After(now) {
			n++
		}
	}

	return n
}

// CurrentStreak counts the consecutive calendar days ending today that
// have at least one record, stopping at the first gap. Multiple records
// on the same day count once.
func CurrentStreak(records []*record.Record, now time.Time) int {
	days := make(map[string]bool, len(records))

	for _, r := range records {
		days[r.Date] = true
	}

	streak := 0

	for day := timeutil.RoundToStart(now); days[timeutil.DayKey(day)]; day = day.AddDate(0, 0, -1) {
		streak++
	}

	return streak
}

// TimeOfDayDistribution buckets a record snapshot by start hour.
func TimeOfDayDistribution(records []*record.Record) Distribution {
	var d Distribution

	for _, r := range records {
		switch h := r.StartTime.Hour(); {
		case h >= 5 && h < 12:
			d.Morning++
		case h >= 12 && h < 18:
			d.Afternoon++
		default:
			d.Evening++
		}
	}

	return d
}

// DailyTrend returns the per-day record counts for the trailing week,
// oldest day first.
func DailyTrend(records []*record.Record, now time.Time) (days []string, counts []int) {
	days, idx := trendWindow(now)
	counts = make([]int, len(days))

	for _, r := range records {
		if i, ok := idx[r.Date]; ok {
			counts[i]++
		}
	}

	return days, counts
}

// DailyAverages returns the mean duration in hours for each day of the
// trailing week, oldest day first.
func DailyAverages(records []*record.Record, now time.Time) (days []string, averages []float64) {
	days, idx := trendWindow(now)

	totals := make([]float64, len(days))
	counts := make([]int, len(days))

	for _, r := range records {
		if i, ok := idx[r.Date]; ok {
			totals[i] += r.EndTime.Sub(r.StartTime).Hours()
			counts[i]++
		}
	}

	averages = make([]float64, len(days))

	for i := range totals {
		if counts[i] > 0 {
			averages[i] = totals[i] / float64(counts[i])
		}
	}

	return days, averages
}

func trendWindow(now time.Time) (days []string, idx map[string]int) {
	days = make([]string, 0, trendDays)
	idx = make(map[string]int, trendDays)

	start := timeutil.RoundToStart(now).AddDate(0, 0, -(trendDays - 1))

	for day := start; !day.After(now); day = day.AddDate(0, 0, 1) {
		idx[timeutil.DayKey(day)] = len(days)
		days = append(days, timeutil.DayKey(day))
	}

	return days, idx
}
