package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess        = 0   // Indicates successful execution.
	ExitErrorGeneric   = 1   // Indicates a generic error.
	ExitErrorTimeout   = 2   // Indicates the operation timed out.
	ExitErrorMismatch  = 3   // Indicates the renderers produced different patterns.
	ExitErrorConfig    = 4   // Indicates a configuration error.
	ExitErrorExecution = 5   // Indicates the foreign interpreter reported failure.
	ExitErrorDecode    = 6   // Indicates the interpreter output was not valid UTF-8.
	ExitErrorCanceled  = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
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

// RenderError encapsulates a rendering error while preserving the original
// cause, so callers can still inspect what went wrong with errors.As.
type RenderError struct {
	// Renderer is the name of the renderer that failed.
	Renderer string
	// Cause is the underlying error that triggered this render error.
	Cause error
}

// Error returns the error message prefixed with the renderer name.
func (e RenderError) Error() string {
	if e.Renderer == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Renderer, e.Cause)
}

// Unwrap returns the original wrapped error.
func (e RenderError) Unwrap() error { return e.Cause }

// TimeoutError represents an operation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// ExecutionError reports that the foreign interpreter did not complete the
// program successfully. Status is the raw status code it returned; the
// interpreter output is deliberately not carried.
type ExecutionError struct {
	// Engine names the engine that ran the program.
	Engine string
	// Status is the non-success status code.
	Status int
}

// Error returns a formatted message describing the execution failure.
func (e ExecutionError) Error() string {
	return fmt.Sprintf("unable to compute: engine %q returned status %d", e.Engine, e.Status)
}

// DecodeError reports interpreter output that is not valid UTF-8 text.
type DecodeError struct {
	// Offset is the byte offset of the first invalid sequence.
	Offset int
	// Length is the total number of output bytes.
	Length int
}

// Error returns a formatted message describing the decoding failure.
func (e DecodeError) Error() string {
	return fmt.Sprintf("output is not valid UTF-8: invalid byte sequence at offset %d of %d", e.Offset, e.Length)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
