package session

import "github.com/zxrxiaoha/checkInRecord/internal/apperr"

var (
	ErrAlreadyRunning = &apperr.Error{
		Message: "a check-in session is already running",
	}

	ErrNotRunning = &apperr.Error{
		Message: "no check-in session is running",
	}

	errInvalidClock = &apperr.Error{
		Message: "invalid time of day: %q (expected HH:MM)",
	}
)
