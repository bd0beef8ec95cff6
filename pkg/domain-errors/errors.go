// Package domainerrors provides coded domain errors.
//
// Domain code reports failures as a Code plus a human-readable message.
// Callers branch on the code with HasCode instead of matching message
// strings. Errors created with Wrap preserve the cause for errors.Is and
// errors.As.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error.
type Code string

const (
	// CodeInvalidInput marks input rejected at a trust boundary before any
	// domain rule ran (wrong shape, wrong type, wrong length).
	CodeInvalidInput Code = "invalid_input"

	// CodeValidation marks input that is well-formed but violates a domain
	// rule.
	CodeValidation Code = "validation"

	// CodeInvariantViolation marks a broken internal invariant. Seeing this
	// code means a bug, not bad input.
	CodeInvariantViolation Code = "invariant_violation"

	// CodeInternal marks an unexpected failure with no better classification.
	CodeInternal Code = "internal"
)

// Error is a domain error with a classification code and optional cause.
type Error struct {
	code  Code
	msg   string
	cause error
}

// New returns a domain error with the given code and message.
func New(code Code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Wrap returns a domain error with the given code and message, preserving
// err as the cause. A nil err behaves like New.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{code: code, msg: msg, cause: err}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.msg, e.cause.Error())
	}
	return e.msg
}

// Code returns the classification code.
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// HasCode reports whether err or any error in its chain is a domain error
// with the given code.
func HasCode(err error, code Code) bool {
	for err != nil {
		var de *Error
		if errors.As(err, &de) {
			if de.code == code {
				return true
			}
			err = de.cause
			continue
		}
		return false
	}
	return false
}
