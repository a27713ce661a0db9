package engine

import (
	"bytes"
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Wrapper is the object callers hold to reach an Engine. It hands the engine
// private copies of the program and input, times the call and decodes the
// output.
type Wrapper struct {
	engine Engine
	logger zerolog.Logger
}

// WrapperOption configures a Wrapper.
type WrapperOption func(*Wrapper)

// WithLogger sets the logger used for execution events.
func WithLogger(l zerolog.Logger) WrapperOption {
	return func(w *Wrapper) { w.logger = l }
}

// NewWrapper returns a Wrapper around e.
func NewWrapper(e Engine, opts ...WrapperOption) *Wrapper {
	w := &Wrapper{engine: e, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// EngineName returns the name of the wrapped engine.
func (w *Wrapper) EngineName() string { return w.engine.Name() }

// Exec runs program against input on the wrapped engine. Each call is
// independent; nothing is shared with earlier calls.
func (w *Wrapper) Exec(ctx context.Context, program Program, input []byte) (Response, error) {
	start := time.Now()
	resp, err := w.engine.Execute(ctx, Program(bytes.Clone(program)), bytes.Clone(input))
	elapsed := time.Since(start)
	if resp.Usage.Wall == 0 {
		resp.Usage.Wall = elapsed
	}
	if err != nil {
		w.logger.Error().Err(err).Str("engine", w.engine.Name()).Dur("elapsed", elapsed).Msg("engine call failed")
		return Response{}, err
	}
	w.logger.Debug().
		Str("engine", w.engine.Name()).
		Int("status", resp.Status).
		Int("output_bytes", len(resp.Output)).
		Int64("max_rss_bytes", resp.Usage.MaxRSSBytes).
		Dur("elapsed", elapsed).
		Msg("program executed")
	return resp, nil
}

// Run is Exec followed by DecodeOutput.
func (w *Wrapper) Run(ctx context.Context, program Program, input []byte) (string, error) {
	resp, err := w.Exec(ctx, program, input)
	if err != nil {
		return "", err
	}
	return DecodeOutput(w.engine.Name(), resp)
}
