// Package record defines check-in records
package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/zxrxiaoha/checkInRecord/internal/timeutil"
)

// Record is a single closed check-in. The Duration and Date fields are
// derived from the timestamps and are never edited independently.
type Record struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Duration  string    `json:"duration"`
	Content   string    `json:"content"`
	IsMakeup  bool      `json:"is_makeup"`
	Date      string    `json:"date"`
}

// New builds a closed record for the given interval. The end time must
// be strictly after the start time.
func New(start, end time.Time, content string, isMakeup bool) (*Record, error) {
	if !end.After(start) {
		return nil, ErrInvalidInterval
	}

	return &Record{
		ID:        NewID(),
		StartTime: start,
		EndTime:   end,
		Duration:  timeutil.FormatDuration(end.Sub(start)),
		Content:   content,
		IsMakeup:  isMakeup,
		Date:      timeutil.DayKey(start),
	}, nil
}

// NewID returns a time-ordered unique record id. UUIDv7 combines a
// millisecond timestamp with random bits, so ids minted in the same
// tick never collide.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}
