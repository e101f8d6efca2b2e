// Package errors augments the standard errors with sentinel errors that
// may be wrapped around a cause, without losing the ability to match either
// the sentinel or the cause with errors.Is.
package errors

import (
	stderr "errors"
	"fmt"
)

var _ error = New("")

// New sentinel Error
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error is a sentinel error which may carry a cause.
//
// Wrapping never mutates the sentinel: Wrap and Wrapf return a copy, so package-level
// sentinels may be safely reused across calls.
type Error struct {
	msg    string
	detail string
	err    error
	root   *Error
}

// Error message
func (e *Error) Error() string {
	msg := e.msg
	if e.detail != "" {
		msg += ": " + e.detail
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

// Unwrap nested error
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap a nested error
func (e *Error) Wrap(err error) *Error {
	c := e.clone()
	c.err = err
	return c
}

// Wrapf adds a formatted detail to the sentinel
func (e *Error) Wrapf(format string, args ...interface{}) *Error {
	c := e.clone()
	c.detail = fmt.Sprintf(format, args...)
	return c
}

func (e *Error) clone() *Error {
	return &Error{msg: e.msg, detail: e.detail, err: e.err, root: e.sentinel()}
}

func (e *Error) sentinel() *Error {
	if e.root != nil {
		return e.root
	}
	return e
}

// Is reports whether target is the sentinel this error was derived from
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e == t || e.sentinel() == t.sentinel()
}

// As finds the first error in err's chain that matches target, and if so, sets target to that error value and returns true.
// (a shortcut to standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to standard lib errors.Is)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
