package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zxrxiaoha/checkInRecord/config"
	"github.com/zxrxiaoha/checkInRecord/internal/record"
	"github.com/zxrxiaoha/checkInRecord/store"
)

type memoryDB struct {
	data []byte
}

func (d *memoryDB) LoadRecords() ([]byte, error) { return d.data, nil }

func (d *memoryDB) SaveRecords(data []byte) error {
	d.data = data
	return nil
}

func (d *memoryDB) Close() error { return nil }

// fakeClock is a controllable wall clock.
type fakeClock struct {
	current time.Time
}

func (f *fakeClock) now() time.Time { return f.current }

func (f *fakeClock) advance(d time.Duration) { f.current = f.current.Add(d) }

func newTestController(t *testing.T) (*Controller, *store.Store, *fakeClock) {
	t.Helper()

	s, err := store.NewStore(&memoryDB{})
	require.NoError(t, err)

	clock := &fakeClock{
		current: time.Date(2026, time.August, 20, 9, 0, 0, 0, time.Local),
	}

	c := NewController(s, &config.SessionConfig{
		MakeupStart: "09:00",
		MakeupEnd:   "18:00",
	})
	c.now = clock.now

	return c, s, clock
}

func TestControllerStartStop(t *testing.T) {
	c, s, clock := newTestController(t)

	start, err := c.Start()

	require.NoError(t, err)
	assert.True(t, start.Equal(clock.current))
	assert.True(t, c.Running())

	clock.advance(90 * time.Minute)

	r, err := c.Stop("wrote the design document")

	require.NoError(t, err)
	assert.Equal(t, "01:30:00", r.Duration)
	assert.Equal(t, "wrote the design document", r.Content)
	assert.False(t, r.IsMakeup)
	assert.Equal(t, "2026-08-20", r.Date)

	assert.False(t, c.Running())
	assert.Equal(t, 1, s.Len())
}

func TestControllerDoubleStart(t *testing.T) {
	c, _, _ := newTestController(t)

	_, err := c.Start()
	require.NoError(t, err)

	_, err = c.Start()

	assert.ErrorIs(t, err, ErrAlreadyRunning)
	assert.True(t, c.Running())
}

func TestControllerStopWhileIdle(t *testing.T) {
	c, s, _ := newTestController(t)

	_, err := c.Stop("nothing running")

	assert.ErrorIs(t, err, ErrNotRunning)
	assert.Equal(t, 0, s.Len())
}

func TestControllerElapsed(t *testing.T) {
	c, _, clock := newTestController(t)

	assert.Equal(t, "00:00:00", c.Elapsed())

	_, err := c.Start()
	require.NoError(t, err)

	clock.advance(2*time.Hour + 5*time.Minute + 30*time.Second)

	assert.Equal(t, "02:05:30", c.Elapsed())

	_, err = c.Stop("")
	require.NoError(t, err)

	assert.Equal(t, "00:00:00", c.Elapsed())
}

func TestControllerAutoCheckout(t *testing.T) {
	s, err := store.NewStore(&memoryDB{})
	require.NoError(t, err)

	c := NewController(s, &config.SessionConfig{
		AutoCheckout: 20 * time.Millisecond,
	})

	_, err = c.Start()
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return !c.Running() && s.Len() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestControllerStopDisarmsAutoCheckout(t *testing.T) {
	s, err := store.NewStore(&memoryDB{})
	require.NoError(t, err)

	c := NewController(s, &config.SessionConfig{
		AutoCheckout: 30 * time.Millisecond,
	})

	_, err = c.Start()
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = c.Stop("manual")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	// The timer must not have fired a second record.
	assert.Equal(t, 1, s.Len())
}

func TestControllerMakeup(t *testing.T) {
	c, s, _ := newTestController(t)

	day := time.Date(2026, time.August, 19, 0, 0, 0, 0, time.Local)

	r, err := c.Makeup(day, "forgot to check in", "09:00", "18:00")

	require.NoError(t, err)
	assert.True(t, r.IsMakeup)
	assert.Equal(t, "09:00:00", r.Duration)
	assert.Equal(t, "2026-08-19", r.Date)
	assert.Equal(t, 1, s.Len())
}

func TestControllerMakeupInvalidInterval(t *testing.T) {
	c, s, _ := newTestController(t)

	day := time.Date(2026, time.August, 19, 0, 0, 0, 0, time.Local)

	_, err := c.Makeup(day, "backwards", "18:00", "09:00")

	assert.ErrorIs(t, err, record.ErrInvalidInterval)
	assert.Equal(t, 0, s.Len())
}

func TestControllerMakeupInvalidClock(t *testing.T) {
	c, _, _ := newTestController(t)

	day := time.Date(2026, time.August, 19, 0, 0, 0, 0, time.Local)

	_, err := c.Makeup(day, "bad clock", "9 o'clock", "18:00")

	assert.Error(t, err)
}

func TestControllerMakeupDuringSession(t *testing.T) {
	c, s, clock := newTestController(t)

	_, err := c.Start()
	require.NoError(t, err)

	day := clock.current.AddDate(0, 0, -1)

	_, err = c.Makeup(day, "yesterday", "09:00", "17:00")

	require.NoError(t, err)
	assert.True(t, c.Running())
	assert.Equal(t, 1, s.Len())
}
