package stats

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/zxrxiaoha/checkInRecord/internal/record"
	"github.com/zxrxiaoha/checkInRecord/internal/ui"
)

const (
	barChartChar = "▇"
	barMaxWidth  = 30

	noRecordsMsg = "No check-in records found for the specified time range"
)

// Render prints the stats report for a record snapshot.
func Render(w io.Writer, records []*record.Record, now time.Time) {
	if len(records) == 0 {
		pterm.Info.Println(noRecordsMsg)
		return
	}

	s := Summarize(records, now)

	summaryBody := [][]string{
		{"Average duration", fmt.Sprintf("%.1f hours", s.AverageHours)},
		{"This week", fmt.Sprintf("%d check-ins", s.WeeklyCount)},
		{"Current streak", fmt.Sprintf("%d days", s.Streak)},
		{"Total", fmt.Sprintf("%d check-ins", s.Total)},
	}

	ui.PrintTable(append([][]string{{"SUMMARY", ""}}, summaryBody...), w)

	renderTrend(w, records, now)
	renderDistribution(w, records)
}

func renderTrend(w io.Writer, records []*record.Record, now time.Time) {
	days, counts := DailyTrend(records, now)
	_, averages := DailyAverages(records, now)

	maxCount := 0

	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	fmt.Fprintln(w, ui.Highlight("Check-in trend (last 7 days)"))

	for i, day := range days {
		fmt.Fprintf(
			w,
			"%s  %s %d (avg %.1fh)\n",
			day,
			bar(counts[i], maxCount),
			counts[i],
			averages[i],
		)
	}

	fmt.Fprintln(w)
}

func renderDistribution(w io.Writer, records []*record.Record) {
	d := TimeOfDayDistribution(records)

	maxCount := d.Morning
	if d.Afternoon > maxCount {
		maxCount = d.Afternoon
	}

	if d.Evening > maxCount {
		maxCount = d.Evening
	}

	fmt.Fprintln(w, ui.Highlight("Time of day"))
	fmt.Fprintf(
		w,
		"Morning   (05–12)  %s %d\n",
		bar(d.Morning, maxCount),
		d.Morning,
	)
	fmt.Fprintf(
		w,
		"Afternoon (12–18)  %s %d\n",
		bar(d.Afternoon, maxCount),
		d.Afternoon,
	)
	fmt.Fprintf(
		w,
		"Evening   (18–05)  %s %d\n",
		bar(d.Evening, maxCount),
		d.Evening,
	)
}

// bar scales a value against the column maximum into a text bar.
func bar(value, maxValue int) string {
	if maxValue == 0 || value == 0 {
		return ""
	}

	width := value * barMaxWidth / maxValue
	if width == 0 {
		width = 1
	}

	return ui.Green(strings.Repeat(barChartChar, width))
}
