// Package errors provides centralized error definitions and error handling
// utilities for the cookiescale codebase. It defines the user-input
// validation taxonomy for servings parsing, an internal consistency error
// type for broken invariants, and error classification helpers.
//
// # Error Types
//
// The package provides two categories of errors:
//
// Validation errors represent bad user input. They are recoverable, carry a
// guidance message that shells surface verbatim, and wrap one of the
// taxonomy sentinels:
//   - ErrEmptyInput: input was empty after trimming
//   - ErrNotNumeric: input could not be parsed as a number
//   - ErrNotWholeNumber: input parsed with a non-zero fractional part
//   - ErrBelowMinimum: servings below the supported minimum
//   - ErrAboveMaximum: servings above the supported maximum
//   - ErrInvalidAmount: formatting was asked to render a non-positive amount
//
// Internal errors represent broken invariants in the scaling pipeline
// itself (a defect, not bad input). Shells must abort loudly on these
// rather than re-prompt.
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewValidationError(errors.ErrBelowMinimum, "servings must be at least 1").WithInput("0")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrBelowMinimum) { ... }
//
//	var vErr *errors.ValidationError
//	if errors.As(err, &vErr) { ... }
//
//	if errors.IsUserFacing(err) { reprompt() } else { abort() }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors for the user-input validation taxonomy.
// Every ValidationError wraps exactly one of these so callers can branch
// with errors.Is without string matching.
var (
	// ErrEmptyInput indicates the servings input was empty after trimming.
	ErrEmptyInput = New("input is empty")
	// ErrNotNumeric indicates the servings input could not be parsed as a number.
	ErrNotNumeric = New("input is not numeric")
	// ErrNotWholeNumber indicates the servings input had a fractional part.
	ErrNotWholeNumber = New("input is not a whole number")
	// ErrBelowMinimum indicates the servings value is below the minimum.
	ErrBelowMinimum = New("servings below minimum")
	// ErrAboveMaximum indicates the servings value exceeds the maximum.
	ErrAboveMaximum = New("servings above maximum")
	// ErrInvalidAmount indicates a non-positive amount reached the formatter.
	ErrInvalidAmount = New("amount is not positive")
)

// ValidationError represents a recoverable user-input error. The Message is
// a guidance string safe to show verbatim; shells print it and re-prompt.
type ValidationError struct {
	// Code is the taxonomy sentinel this error wraps (ErrEmptyInput, ...).
	Code error
	// Input is the offending user input, when available.
	Input string
	// Message is the human-readable guidance shown to the user.
	Message string
}

// NewValidationError creates a ValidationError for the given taxonomy code.
func NewValidationError(code error, message string) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: message,
	}
}

// WithInput attaches the offending input to the error context.
func (e *ValidationError) WithInput(input string) *ValidationError {
	e.Input = input
	return e
}

// Error returns the guidance message.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap returns the taxonomy sentinel so errors.Is matches the code.
func (e *ValidationError) Unwrap() error {
	return e.Code
}

// InternalError represents a broken invariant inside the scaling pipeline.
// It signals a defect in the program, never bad user input, and must not be
// caught and retried.
type InternalError struct {
	message string
	cause   error
}

// NewInternalError creates an InternalError with the given message.
func NewInternalError(message string) *InternalError {
	return &InternalError{message: message}
}

// Internalf creates an InternalError with a formatted message.
func Internalf(format string, args ...any) *InternalError {
	return &InternalError{message: fmt.Sprintf(format, args...)}
}

// WithCause attaches an underlying cause to the error.
func (e *InternalError) WithCause(cause error) *InternalError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *InternalError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("internal: %s: %v", e.message, e.cause)
	}
	return "internal: " + e.message
}

// Unwrap returns the underlying cause, if any.
func (e *InternalError) Unwrap() error {
	return e.cause
}

// IsUserFacing reports whether the error is safe to display to users and
// recoverable by re-prompting. Validation errors are user-facing; internal
// errors and everything else are not.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	var vErr *ValidationError
	return As(err, &vErr)
}

// IsInternal reports whether the error indicates a broken invariant.
func IsInternal(err error) bool {
	if err == nil {
		return false
	}
	var iErr *InternalError
	return As(err, &iErr)
}
