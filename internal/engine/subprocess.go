package engine

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/fractalcmp/internal/errors"
)

// DefaultMaxOutputBytes caps captured interpreter output when
// SubprocessConfig.MaxOutputBytes is zero.
const DefaultMaxOutputBytes = 1 << 20

const waitDelay = 500 * time.Millisecond

// SubprocessConfig describes how to launch the external interpreter.
type SubprocessConfig struct {
	// Command is the interpreter executable, resolved through PATH.
	Command string
	// Args are passed before the program text, which is always the last argument.
	Args []string
	// Env, when non-nil, replaces the child's environment.
	Env []string
	// MaxOutputBytes caps the captured stdout. Exceeding it is a failure.
	MaxOutputBytes int
}

// SubprocessEngine runs each program in a fresh interpreter process:
// `Command Args... <program>` with the input on stdin. Exit status 0 maps to
// StatusSuccess, any other exit status to StatusFailure.
type SubprocessEngine struct {
	cfg    SubprocessConfig
	logger zerolog.Logger
}

// NewSubprocessEngine returns an engine for cfg.
func NewSubprocessEngine(cfg SubprocessConfig, logger zerolog.Logger) *SubprocessEngine {
	if cfg.MaxOutputBytes <= 0 {
		cfg.MaxOutputBytes = DefaultMaxOutputBytes
	}
	return &SubprocessEngine{cfg: cfg, logger: logger}
}

// Name returns the interpreter command.
func (e *SubprocessEngine) Name() string { return e.cfg.Command }

// Execute implements Engine.
func (e *SubprocessEngine) Execute(ctx context.Context, program Program, input []byte) (Response, error) {
	if e.cfg.Command == "" {
		return Response{}, errors.New("subprocess engine: no interpreter command configured")
	}
	args := make([]string, 0, len(e.cfg.Args)+1)
	args = append(args, e.cfg.Args...)
	args = append(args, string(program))

	cmd := exec.CommandContext(ctx, e.cfg.Command, args...)
	cmd.Stdin = bytes.NewReader(input)
	stdout := &cappedBuffer{limit: e.cfg.MaxOutputBytes}
	var stderr bytes.Buffer
	cmd.Stdout = stdout
	cmd.Stderr = &stderr
	if e.cfg.Env != nil {
		cmd.Env = e.cfg.Env
	}
	isolate(cmd)
	// Grandchildren holding the pipes open must not stall Wait after a kill.
	cmd.WaitDelay = waitDelay

	start := time.Now()
	err := cmd.Run()
	usage := Usage{Wall: time.Since(start), MaxRSSBytes: maxRSS(cmd)}

	// A killed child exits non-zero; report the cancellation, not a status.
	if ctxErr := ctx.Err(); apperrors.IsContextError(ctxErr) {
		return Response{}, apperrors.WrapError(ctxErr, "running %s", e.cfg.Command)
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		e.logger.Debug().
			Str("command", e.cfg.Command).
			Int("exit_code", exitErr.ExitCode()).
			Str("stderr", stderr.String()).
			Msg("interpreter exited with failure")
		return Response{Status: StatusFailure, Usage: usage}, nil
	case err != nil:
		return Response{}, apperrors.WrapError(err, "running %s", e.cfg.Command)
	}

	if stdout.overflow {
		e.logger.Debug().
			Str("command", e.cfg.Command).
			Int("limit_bytes", e.cfg.MaxOutputBytes).
			Msg("interpreter output exceeded limit")
		return Response{Status: StatusFailure, Usage: usage}, nil
	}
	return Response{Status: StatusSuccess, Output: stdout.Bytes(), Usage: usage}, nil
}

// cappedBuffer keeps at most limit bytes and silently discards the rest, so
// a chatty child never blocks on a full pipe.
type cappedBuffer struct {
	bytes.Buffer
	limit    int
	overflow bool
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	room := b.limit - b.Len()
	if len(p) > room {
		b.overflow = true
		if room > 0 {
			b.Buffer.Write(p[:room])
		}
		return len(p), nil
	}
	return b.Buffer.Write(p)
}
