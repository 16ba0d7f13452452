package record_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxrxiaoha/checkInRecord/internal/record"
)

func TestNew(t *testing.T) {
	start := time.Date(2026, time.August, 20, 9, 0, 0, 0, time.Local)

	r, err := record.New(start, start.Add(8*time.Hour), "shipped v1", false)

	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "08:00:00", r.Duration)
	assert.Equal(t, "2026-08-20", r.Date)
	assert.Equal(t, "shipped v1", r.Content)
	assert.False(t, r.IsMakeup)
}

func TestNewInvalidInterval(t *testing.T) {
	start := time.Date(2026, time.August, 20, 9, 0, 0, 0, time.Local)

	_, err := record.New(start, start, "zero length", false)
	assert.ErrorIs(t, err, record.ErrInvalidInterval)

	_, err = record.New(start, start.Add(-time.Hour), "backwards", false)
	assert.ErrorIs(t, err, record.ErrInvalidInterval)
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)

	// Mint a burst of ids inside the same millisecond.
	for range 1000 {
		id := record.NewID()

		require.False(t, seen[id], "duplicate id %s", id)

		seen[id] = true
	}
}
