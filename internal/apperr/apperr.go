// Package apperr defines the error type used for user-facing errors
package apperr

import "fmt"

// Error is an application error whose Message may contain format verbs that
// are filled in with Fmt.
type Error struct {
	Cause   error
	Message string
	Context []any
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Context) > 0 {
		msg = fmt.Sprintf(e.Message, e.Context...)
	}

	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}

	return msg
}

// Fmt returns a copy of the error with its message arguments set.
func (e *Error) Fmt(args ...any) *Error {
	err := *e
	err.Context = args

	return &err
}

// Wrap returns a copy of the error that wraps cause.
func (e *Error) Wrap(cause error) *Error {
	err := *e
	err.Cause = cause

	return &err
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error created from the same message
// template.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Message == e.Message
}
