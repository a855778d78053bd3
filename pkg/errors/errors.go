// Package errors provides coded errors so the CLI layer can map failures
// to the right fatal message and exit behavior without inspecting error
// strings.
package errors

import (
	"errors"
	"fmt"
)

// Error codes as constants
const (
	// ErrCodeConfig marks failures detected before any network call:
	// malformed node-meta filters, bad type-override specs, unknown
	// tagged-address classes.
	ErrCodeConfig = "CONFIG_ERROR"

	// ErrCodeConnectivity marks catalog transport failures. Never retried.
	ErrCodeConnectivity = "CONNECTIVITY_ERROR"

	// ErrCodeData marks catalog data that cannot produce a valid inventory,
	// such as a node missing the requested tagged-address class.
	ErrCodeData = "DATA_ERROR"

	// ErrCodeInternal marks bugs and impossible states.
	ErrCodeInternal = "INTERNAL_ERROR"
)

// Error is an error with a classification code and an optional cause.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error without a cause.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the code of err, or ErrCodeInternal if err carries none.
func CodeOf(err error) string {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ErrCodeInternal
}
