// Package apperr defines the application error type
package apperr

import "fmt"

// Error couples a short human-readable message with an optional
// underlying cause. Values produced by Fmt and Wrap keep a reference to
// their original so that errors.Is still matches the sentinel.
type Error struct {
	base    *Error
	Cause   error
	Message string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Fmt fills in the message's format verbs and returns the resulting
// error.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		base:    e.root(),
		Cause:   e.Cause,
		Message: fmt.Sprintf(e.Message, args...),
	}
}

// Wrap attaches an underlying cause and returns the resulting error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		base:    e.root(),
		Cause:   err,
		Message: e.Message,
	}
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || e.root() == t.root()
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}
