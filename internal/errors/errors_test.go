// Package apperrors provides tests for application error types.
package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("unknown renderer %q", "ascii")
	if err.Error() != `unknown renderer "ascii"` {
		t.Errorf("unexpected message %q", err.Error())
	}
	var cfgErr ConfigError
	if !errors.As(err, &cfgErr) {
		t.Error("expected error to be ConfigError type")
	}
}

func TestRenderError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         RenderError
		expectedMsg string
		checkIs     error
	}{
		{
			name:        "prefixes renderer name",
			err:         RenderError{Renderer: "program", Cause: errors.New("exec: bf not found")},
			expectedMsg: "program: exec: bf not found",
		},
		{
			name:        "bare cause without renderer",
			err:         RenderError{Cause: errors.New("boom")},
			expectedMsg: "boom",
		},
		{
			name:        "errors.Is walks the chain",
			err:         RenderError{Renderer: "native", Cause: context.Canceled},
			expectedMsg: "native: context canceled",
			checkIs:     context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, tt.err.Error())
			}
			if tt.checkIs != nil && !errors.Is(tt.err, tt.checkIs) {
				t.Errorf("errors.Is should find %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestExecutionAndDecodeErrorsAreDistinct(t *testing.T) {
	t.Parallel()
	var execErr error = RenderError{Renderer: "program", Cause: ExecutionError{Engine: "bf", Status: 0}}
	var decodeErr error = RenderError{Renderer: "program", Cause: DecodeError{Offset: 3, Length: 8}}

	var e ExecutionError
	var d DecodeError
	if !errors.As(execErr, &e) || errors.As(execErr, &d) {
		t.Error("execution failure must only match ExecutionError")
	}
	if !errors.As(decodeErr, &d) || errors.As(decodeErr, &e) {
		t.Error("decode failure must only match DecodeError")
	}
	if d.Offset != 3 {
		t.Errorf("DecodeError.Offset = %d, want 3", d.Offset)
	}
	if !strings.Contains(e.Error(), "status 0") {
		t.Errorf("ExecutionError message should carry the status, got %q", e.Error())
	}
}

func TestTimeoutAndValidationMessages(t *testing.T) {
	t.Parallel()
	to := TimeoutError{Operation: "program", Limit: 500 * time.Millisecond}
	if to.Error() != `operation "program" timed out after 500ms` {
		t.Errorf("unexpected timeout message %q", to.Error())
	}
	v := ValidationError{Field: "depth", Message: "must be >= 0"}
	if v.Error() != `validation error for "depth": must be >= 0` {
		t.Errorf("unexpected validation message %q", v.Error())
	}
	var got ValidationError
	if !errors.As(WrapError(v, "config check failed"), &got) {
		t.Error("errors.As should find ValidationError through WrapError")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "ctx") != nil {
		t.Error("WrapError(nil, ...) should return nil")
	}
	wrapped := WrapError(context.DeadlineExceeded, "running %s", "bf")
	if wrapped.Error() != "running bf: context deadline exceeded" {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
	if !IsContextError(wrapped) {
		t.Error("wrapped deadline should be a context error")
	}
	if IsContextError(errors.New("plain")) || IsContextError(nil) {
		t.Error("plain and nil errors are not context errors")
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"generic", errors.New("x"), ExitErrorGeneric},
		{"deadline", fmt.Errorf("run: %w", context.DeadlineExceeded), ExitErrorTimeout},
		{"timeout type", TimeoutError{Operation: "x", Limit: time.Second}, ExitErrorTimeout},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"execution", RenderError{Cause: ExecutionError{Status: 2}}, ExitErrorExecution},
		{"decode", RenderError{Cause: DecodeError{}}, ExitErrorDecode},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", ValidationError{Field: "depth"}, ExitErrorConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHandleRenderError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	code := HandleRenderError(ExecutionError{Engine: "bf", Status: 0}, time.Millisecond, &buf, nil)
	if code != ExitErrorExecution {
		t.Errorf("code = %d, want %d", code, ExitErrorExecution)
	}
	if !strings.Contains(buf.String(), "Foreign execution failed") {
		t.Errorf("missing description, got %q", buf.String())
	}

	buf.Reset()
	timeout := RenderError{Renderer: "program", Cause: TimeoutError{Operation: "compare", Limit: time.Minute}}
	if code := HandleRenderError(timeout, time.Minute, &buf, nil); code != ExitErrorTimeout {
		t.Errorf("timeout code = %d, want %d", code, ExitErrorTimeout)
	}
	if !strings.Contains(buf.String(), "Render timed out after 1m0s (compare limit 1m0s)") {
		t.Errorf("timeout description = %q", buf.String())
	}

	buf.Reset()
	if code := HandleRenderError(nil, 0, &buf, nil); code != ExitSuccess || buf.Len() != 0 {
		t.Errorf("nil error should print nothing and succeed, got %d %q", code, buf.String())
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":        ExitSuccess,
		"ExitErrorGeneric":   ExitErrorGeneric,
		"ExitErrorTimeout":   ExitErrorTimeout,
		"ExitErrorMismatch":  ExitErrorMismatch,
		"ExitErrorConfig":    ExitErrorConfig,
		"ExitErrorExecution": ExitErrorExecution,
		"ExitErrorDecode":    ExitErrorDecode,
		"ExitErrorCanceled":  ExitErrorCanceled,
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}
	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
