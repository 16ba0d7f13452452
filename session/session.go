// Package session operates the live check-in session and the creation
// of make-up records
package session

import (
	"fmt"
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/zxrxiaoha/checkInRecord/config"
	"github.com/zxrxiaoha/checkInRecord/internal/record"
	"github.com/zxrxiaoha/checkInRecord/internal/timeutil"
	"github.com/zxrxiaoha/checkInRecord/store"
)

// Controller drives the check-in state machine. It is Idle until Start
// and Running until the matching Stop; at most one session runs at a
// time. Closed sessions become records through the store.
type Controller struct {
	mu        sync.Mutex
	store     *store.Store
	opts      *config.SessionConfig
	now       func() time.Time
	startTime time.Time
	autoStop  *time.Timer
}

// NewController returns an idle controller writing to the given store.
func NewController(s *store.Store, opts *config.SessionConfig) *Controller {
	return &Controller{
		store: s,
		opts:  opts,
		now:   time.Now,
	}
}

// Start transitions the controller from Idle to Running and arms the
// auto-checkout timer when one is configured.
func (c *Controller) Start() (time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.startTime.IsZero() {
		return time.Time{}, ErrAlreadyRunning
	}

	c.startTime = c.now()

	if c.opts.AutoCheckout > 0 {
		c.autoStop = time.AfterFunc(c.opts.AutoCheckout, c.autoCheckout)
	}

	slog.Info("check-in started", slog.Time("start_time", c.startTime))

	return c.startTime, nil
}

// Stop closes the running session as a record and returns it. The
// auto-checkout timer is torn down before the state resets so it can
// never fire for a session that has already ended. A failed save still
// ends the session, because the record is already part of the in-memory
// collection when the save error surfaces.
func (c *Controller) Stop(content string) (*record.Record, error) {
	c.mu.Lock()

	if c.startTime.IsZero() {
		c.mu.Unlock()
		return nil, ErrNotRunning
	}

	r, err := record.New(c.startTime, c.now(), content, false)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}

	if c.autoStop != nil {
		c.autoStop.Stop()
		c.autoStop = nil
	}

	c.startTime = time.Time{}
	c.mu.Unlock()

	if err := c.store.Create(r); err != nil {
		return nil, err
	}

	slog.Info(
		"check-in ended",
		slog.String("id", r.ID),
		slog.String("duration", r.Duration),
	)

	c.notify(r)
	c.runSessionCmd()

	return r, nil
}

// Elapsed reports the live duration of the running session formatted as
// HH:MM:SS, or "00:00:00" when idle. The value is recomputed from the
// wall clock on every call, so it stays correct even when the host was
// suspended between polls.
func (c *Controller) Elapsed() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.startTime.IsZero() {
		return "00:00:00"
	}

	return timeutil.FormatDuration(c.now().Sub(c.startTime))
}

// Running reports whether a session is in progress.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return !c.startTime.IsZero()
}

// StartTime returns the running session's start, or the zero time when
// idle.
func (c *Controller) StartTime() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.startTime
}

// Makeup records a check-in directly in closed form for the given
// calendar day, independent of the running session. The clock values
// use the "HH:MM" form. Policy checks beyond the interval invariant,
// such as rejecting future days, belong to the caller.
func (c *Controller) Makeup(
	day time.Time,
	content, startClock, endClock string,
) (*record.Record, error) {
	start, err := timeutil.CombineDayClock(day, startClock)
	if err != nil {
		return nil, errInvalidClock.Fmt(startClock)
	}

	end, err := timeutil.CombineDayClock(day, endClock)
	if err != nil {
		return nil, errInvalidClock.Fmt(endClock)
	}

	r, err := record.New(start, end, content, true)
	if err != nil {
		return nil, err
	}

	if err := c.store.Create(r); err != nil {
		return nil, err
	}

	slog.Info(
		"make-up recorded",
		slog.String("id", r.ID),
		slog.String("date", r.Date),
	)

	return r, nil
}

// autoCheckout fires when a session outlives the configured limit. A
// concurrent manual checkout wins the race; the ErrNotRunning it leaves
// behind is not an error here.
func (c *Controller) autoCheckout() {
	r, err := c.Stop("")
	if err != nil {
		return
	}

	slog.Info("session checked out automatically", slog.String("id", r.ID))
}

func (c *Controller) notify(r *record.Record) {
	if !c.opts.Notify {
		return
	}

	msg := fmt.Sprintf("Session recorded: %s", r.Duration)

	if err := beeep.Notify("Checked out", msg, ""); err != nil {
		slog.Warn("unable to display notification", slog.Any("error", err))
	}
}

// runSessionCmd executes the configured post-checkout command.
func (c *Controller) runSessionCmd() {
	if c.opts.Cmd == "" {
		return
	}

	cmdSlice, err := shellquote.Split(c.opts.Cmd)
	if err != nil || len(cmdSlice) == 0 {
		slog.Warn("unable to parse session.cmd option", slog.Any("error", err))
		return
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	if err := cmd.Run(); err != nil {
		slog.Warn("session command failed", slog.Any("error", err))
	}
}
