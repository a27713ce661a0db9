package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies the escape sequences used when printing errors.
// Passing nil prints without colors.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

type noColors struct{}

func (noColors) Red() string    { return "" }
func (noColors) Yellow() string { return "" }
func (noColors) Reset() string  { return "" }

// ExitCodeFor maps an error to the process exit code without printing.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var (
		execErr   ExecutionError
		decodeErr DecodeError
		cfgErr    ConfigError
		valErr    ValidationError
		toErr     TimeoutError
	)
	switch {
	case errors.As(err, &toErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &execErr):
		return ExitErrorExecution
	case errors.As(err, &decodeErr):
		return ExitErrorDecode
	case errors.As(err, &cfgErr), errors.As(err, &valErr):
		return ExitErrorConfig
	}
	return ExitErrorGeneric
}

// HandleRenderError prints a colored description of err to out and returns
// the matching exit code. A nil err returns ExitSuccess and prints nothing.
func HandleRenderError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = noColors{}
	}
	code := ExitCodeFor(err)
	switch code {
	case ExitErrorTimeout:
		var toErr TimeoutError
		if errors.As(err, &toErr) {
			fmt.Fprintf(out, "%sRender timed out after %s (%s limit %s).%s\n",
				colors.Red(), duration, toErr.Operation, toErr.Limit, colors.Reset())
		} else {
			fmt.Fprintf(out, "%sRender timed out after %s.%s\n", colors.Red(), duration, colors.Reset())
		}
	case ExitErrorCanceled:
		fmt.Fprintf(out, "%sRender canceled by user.%s\n", colors.Yellow(), colors.Reset())
	case ExitErrorExecution:
		fmt.Fprintf(out, "%sForeign execution failed: %v%s\n", colors.Red(), err, colors.Reset())
	case ExitErrorDecode:
		fmt.Fprintf(out, "%sCould not decode interpreter output: %v%s\n", colors.Red(), err, colors.Reset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", colors.Red(), err, colors.Reset())
	}
	return code
}
