package stats_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxrxiaoha/checkInRecord/internal/record"
	"github.com/zxrxiaoha/checkInRecord/stats"
)

// now is a Thursday.
var now = time.Date(2026, time.August, 20, 19, 0, 0, 0, time.Local)

func rec(t *testing.T, start time.Time, hours float64) *record.Record {
	t.Helper()

	end := start.Add(time.Duration(hours * float64(time.Hour)))

	r, err := record.New(start, end, "", false)
	require.NoError(t, err)

	return r
}

func at(daysAgo, hour int) time.Time {
	return time.Date(
		2026, time.August, 20-daysAgo, hour, 0, 0, 0, time.Local,
	)
}

func TestAverageDuration(t *testing.T) {
	records := []*record.Record{
		rec(t, at(0, 9), 8),
		rec(t, at(1, 9), 6),
		rec(t, at(2, 9), 7),
	}

	assert.InDelta(t, 7.0, stats.AverageDuration(records), 0.001)
	assert.Zero(t, stats.AverageDuration(nil))
}

func TestWeeklyCount(t *testing.T) {
	records := []*record.Record{
		// Thursday, Wednesday, and Sunday of the current week.
		rec(t, at(0, 9), 8),
		rec(t, at(1, 9), 8),
		rec(t, at(4, 9), 8),
		// Saturday belongs to the previous week.
		rec(t, at(5, 9), 8),
	}

	assert.Equal(t, 3, stats.WeeklyCount(records, now))
}

func TestCurrentStreak(t *testing.T) {
	t.Run("consecutive days", func(t *testing.T) {
		records := []*record.Record{
			rec(t, at(0, 9), 8),
			rec(t, at(1, 9), 8),
			rec(t, at(2, 9), 8),
		}

		assert.Equal(t, 3, stats.CurrentStreak(records, now))
	})

	t.Run("gap resets the count", func(t *testing.T) {
		records := []*record.Record{
			rec(t, at(0, 9), 8),
			rec(t, at(2, 9), 8),
			rec(t, at(3, 9), 8),
		}

		assert.Equal(t, 1, stats.CurrentStreak(records, now))
	})

	t.Run("same-day records count once", func(t *testing.T) {
		records := []*record.Record{
			rec(t, at(0, 9), 4),
			rec(t, at(0, 14), 3),
			rec(t, at(1, 9), 8),
		}

		assert.Equal(t, 2, stats.CurrentStreak(records, now))
	})

	t.Run("no record today", func(t *testing.T) {
		records := []*record.Record{
			rec(t, at(1, 9), 8),
			rec(t, at(2, 9), 8),
		}

		assert.Equal(t, 0, stats.CurrentStreak(records, now))
	})
}

func TestTimeOfDayDistribution(t *testing.T) {
	records := []*record.Record{
		rec(t, at(0, 5), 2),
		rec(t, at(0, 11), 1),
		rec(t, at(1, 12), 2),
		rec(t, at(1, 17), 1),
		rec(t, at(2, 18), 2),
		rec(t, at(2, 4), 1),
	}

	d := stats.TimeOfDayDistribution(records)

	assert.Equal(t, 2, d.Morning)
	assert.Equal(t, 2, d.Afternoon)
	assert.Equal(t, 2, d.Evening)
}

func TestDailyTrend(t *testing.T) {
	records := []*record.Record{
		rec(t, at(0, 9), 8),
		rec(t, at(0, 19), 2),
		rec(t, at(3, 9), 8),
		// Outside the trailing week.
		rec(t, at(9, 9), 8),
	}

	days, counts := stats.DailyTrend(records, now)

	wantDays := []string{
		"2026-08-14", "2026-08-15", "2026-08-16", "2026-08-17",
		"2026-08-18", "2026-08-19", "2026-08-20",
	}
	wantCounts := []int{0, 0, 0, 1, 0, 0, 2}

	if diff := cmp.Diff(wantDays, days); diff != "" {
		t.Errorf("day labels mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(wantCounts, counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestDailyAverages(t *testing.T) {
	records := []*record.Record{
		rec(t, at(0, 9), 8),
		rec(t, at(0, 19), 2),
		rec(t, at(1, 9), 6),
	}

	days, averages := stats.DailyAverages(records, now)

	require.Len(t, days, 7)
	require.Len(t, averages, 7)

	assert.InDelta(t, 5.0, averages[6], 0.001)
	assert.InDelta(t, 6.0, averages[5], 0.001)
	assert.Zero(t, averages[0])
}

func TestSummarize(t *testing.T) {
	records := []*record.Record{
		rec(t, at(0, 9), 8),
		rec(t, at(1, 9), 6),
	}

	s := stats.Summarize(records, now)

	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 2, s.Streak)
	assert.Equal(t, 2, s.WeeklyCount)
	assert.InDelta(t, 7.0, s.AverageHours, 0.001)
}
