package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/zxrxiaoha/checkInRecord/internal/timeutil"
	"github.com/zxrxiaoha/checkInRecord/session"
)

var (
	errFutureDay = errors.New("the day must not be in the future")

	errFutureCheckout = errors.New(
		"a make-up record for today must not extend past the current time",
	)
)

// validateDay parses a day string and rejects days after today.
func validateDay(s string) (time.Time, error) {
	day, err := parseDate(s)
	if err != nil {
		return time.Time{}, err
	}

	if timeutil.RoundToStart(day).After(timeutil.RoundToStart(time.Now())) {
		return time.Time{}, errFutureDay
	}

	return day, nil
}

// makeupAction handles the makeup command which backfills a record for
// a day the user forgot to check in. Values missing from the flags are
// collected interactively.
func makeupAction(ctx *cli.Context) error {
	cfg, s, db, err := storeHelper()
	if err != nil {
		return err
	}

	defer db.Close()

	var (
		dayText = ctx.String("date")
		start   = ctx.String("start")
		end     = ctx.String("end")
		content = ctx.String("content")
	)

	if start == "" {
		start = cfg.Session.MakeupStart
	}

	if end == "" {
		end = cfg.Session.MakeupEnd
	}

	interactive := !ctx.IsSet("date") || !ctx.IsSet("start") ||
		!ctx.IsSet("end")

	if interactive {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Which day are you making up?").
					Description("e.g. 'yesterday' or '2026-08-21'").
					Value(&dayText).
					Validate(func(s string) error {
						_, err := validateDay(s)
						return err
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Check-in time").
					Description("HH:MM").
					Value(&start).
					Validate(validateClock),
				huh.NewInput().
					Title("Check-out time").
					Description("HH:MM").
					Value(&end).
					Validate(validateClock),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("What did you do?").
					Value(&content),
			),
		)

		if err = form.Run(); err != nil {
			return err
		}
	}

	day, err := validateDay(dayText)
	if err != nil {
		return err
	}

	checkout, err := timeutil.CombineDayClock(day, end)
	if err != nil {
		return fmt.Errorf("invalid check-out time %q", end)
	}

	if checkout.After(time.Now()) {
		return errFutureCheckout
	}

	control := session.NewController(s, &cfg.Session)

	r, err := control.Makeup(day, content, start, end)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Recorded make-up %s for %s (%s)",
		shortID(r.ID),
		r.Date,
		r.Duration,
	)

	return nil
}

// validateClock rejects times of day that are not in HH:MM form.
func validateClock(s string) error {
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("expected a HH:MM time, got %q", s)
	}

	return nil
}
