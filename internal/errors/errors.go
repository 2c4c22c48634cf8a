package apperrors

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess              = 0 // Indicates successful execution.
	ExitErrorGeneric         = 1 // Indicates a generic error.
	ExitErrorUnderdetermined = 3 // Indicates too few samples for the requested degree.
	ExitErrorConfig          = 4 // Indicates a configuration or parameter error.
)

// ConfigError represents a user configuration error, such as an unknown flag
// or a malformed value. It indicates that the application cannot proceed due
// to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InvalidParameterError reports a parameter outside its valid domain: a
// non-positive radius, a polar radius larger than the equatorial one, fewer
// than two samples or a negative degree.
type InvalidParameterError struct {
	// Field is the name of the offending parameter.
	Field string
	// Value is the rejected value.
	Value any
	// Message explains the constraint that was violated.
	Message string
}

// Error returns a formatted message describing the invalid parameter.
func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s (%v): %s", e.Field, e.Value, e.Message)
}

// NewInvalidParameterError builds an InvalidParameterError.
func NewInvalidParameterError(field string, value any, format string, a ...any) error {
	return InvalidParameterError{Field: field, Value: value, Message: fmt.Sprintf(format, a...)}
}

// UnderdeterminedFitError is returned when the sample count cannot determine
// a polynomial of the requested degree (samples <= degree).
type UnderdeterminedFitError struct {
	Samples int
	Degree  int
}

// Error returns a formatted message describing the missing samples. The
// sample count is computed in uint64 so that the largest int degree does not
// wrap.
func (e UnderdeterminedFitError) Error() string {
	return fmt.Sprintf("degree %d needs at least %d samples, got %d", e.Degree, uint64(e.Degree)+1, e.Samples)
}

// NumericalInstabilityWarning is an advisory error: the design matrix of a
// fit is ill-conditioned, so the reported error metrics may be unreliable.
// It never aborts a run.
type NumericalInstabilityWarning struct {
	// Condition is the 2-norm condition number of the design matrix.
	Condition float64
	// Threshold is the limit that Condition exceeded.
	Threshold float64
}

// Error returns a formatted message describing the conditioning problem.
func (e NumericalInstabilityWarning) Error() string {
	return fmt.Sprintf("design matrix condition number %.3g exceeds %.3g; error metrics may be unreliable",
		e.Condition, e.Threshold)
}

// CalculationError encapsulates a numerical failure while preserving the
// original cause.
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsWarning reports whether err is advisory only.
func IsWarning(err error) bool {
	var w NumericalInstabilityWarning
	return errors.As(err, &w)
}

// ExitCodeFor maps an error chain to the process exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var (
		underdetermined UnderdeterminedFitError
		invalid         InvalidParameterError
		configErr       ConfigError
	)
	switch {
	case errors.As(err, &underdetermined):
		return ExitErrorUnderdetermined
	case errors.As(err, &invalid), errors.As(err, &configErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
