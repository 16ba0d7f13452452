// Package timeutil provides utility functions for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"time"
)

// DayFormat is the layout for calendar-day keys.
const DayFormat = "2006-01-02"

// DateTimeFormat is the layout for full timestamps in exported rows.
const DateTimeFormat = "2006-01-02 15:04:05"

// DayKey returns the calendar-day key for a point in time.
func DayKey(t time.Time) string {
	return t.Format(DayFormat)
}

// FormatDuration renders a duration as zero-padded HH:MM:SS. The hours
// field is unbounded. Negative durations render as "00:00:00".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	d = d.Truncate(time.Second)

	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60

	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ParseDuration parses an HH:MM:SS (or HH:MM) duration string.
func ParseDuration(s string) (time.Duration, error) {
	var h, m, sec int

	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return 0, fmt.Errorf("invalid duration: %q", s)
		}

		sec = 0
	}

	if h < 0 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid duration: %q", s)
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec)*time.Second, nil
}

// CombineDayClock anchors an "HH:MM" or "HH:MM:SS" wall-clock value to
// the calendar day of the given time.
func CombineDayClock(day time.Time, clock string) (time.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		c, err := time.Parse(layout, clock)
		if err != nil {
			continue
		}

		return time.Date(
			day.Year(),
			day.Month(),
			day.Day(),
			c.Hour(),
			c.Minute(),
			c.Second(),
			0,
			day.Location(),
		), nil
	}

	return time.Time{}, fmt.Errorf("invalid time of day: %q", clock)
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// RoundToEnd resets the given time to the end of the day.
func RoundToEnd(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		23,
		59,
		59,
		int(time.Second-time.Nanosecond),
		t.Location(),
	)
}

// StartOfWeek resets the given time to the start of its week. Weeks
// begin on Sunday.
func StartOfWeek(t time.Time) time.Time {
	return RoundToStart(t.AddDate(0, 0, -int(t.Weekday())))
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}
