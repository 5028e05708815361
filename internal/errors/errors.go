// Package errors provides consistent error types for the apptremind CLI.
// It defines two categories: UserError (bad console input, recovered by the menu loop)
// and SystemError (failures of the underlying store, which end the command).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrNotANumber      = errors.New("menu choice is not a number")
	ErrInvalidChoice   = errors.New("menu choice out of range")
	ErrEmptyName       = errors.New("appointment name is empty")
	ErrEmptyTime       = errors.New("appointment time is empty")
	ErrInvalidAnswer   = errors.New("answer is not yes or no")
	ErrInvalidCategory = errors.New("invalid appointment category")
	ErrInvalidTemplate = errors.New("template could not be read")
	ErrStoreClosed     = errors.New("appointment store is closed")
)

// UserError represents an error that the user can fix by re-entering input.
// Message is the single line shown on the console.
type UserError struct {
	Message string // What the console prints
	Field   string // The prompt that rejected the input
	Value   string // The rejected value
	Cause   error  // Sentinel for errors.Is
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// NewInputError creates a UserError tied to a sentinel and the offending input.
func NewInputError(cause error, field, value, message string) *UserError {
	return &UserError{
		Message: message,
		Field:   field,
		Value:   value,
		Cause:   cause,
	}
}

// SystemError represents a system-level error that the user cannot directly fix.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed
}

func (e *SystemError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s during %s: %v", e.Message, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s during %s", e.Message, e.Op)
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// AsUserError extracts a UserError from an error chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	ok := errors.As(err, &ue)
	return ue, ok
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
