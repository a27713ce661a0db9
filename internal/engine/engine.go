//go:generate mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks

package engine

import (
	"context"
	"time"
)

// Status codes carried by Response.Status. Only StatusSuccess means success;
// every other value is a failure.
const (
	StatusFailure = 0
	StatusSuccess = 1
)

// Program is the instruction text handed to the interpreter. It is never
// modified by this package.
type Program []byte

// Usage describes the resources consumed by a single execution, when the
// embedding is able to measure them.
type Usage struct {
	// Wall is the wall-clock time spent inside the engine.
	Wall time.Duration
	// MaxRSSBytes is the peak resident set size of the interpreter, or 0 if unknown.
	MaxRSSBytes int64
}

// Response is the result of one Execute call.
type Response struct {
	// Status is StatusSuccess when the interpreter completed the program.
	Status int
	// Output holds the bytes the program printed. Only meaningful on success.
	Output []byte
	// Usage is filled in by embeddings that measure it.
	Usage Usage
}

// Succeeded reports whether Status is StatusSuccess.
func (r Response) Succeeded() bool { return r.Status == StatusSuccess }

// Engine runs programs on a foreign interpreter.
type Engine interface {
	// Name identifies the engine in logs and error messages.
	Name() string
	// Execute runs program against input and blocks until the interpreter
	// is done. A non-nil error means the engine itself could not be driven
	// (for example the interpreter binary is missing or ctx ended); the
	// program's own failure is reported through Response.Status.
	Execute(ctx context.Context, program Program, input []byte) (Response, error)
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(ctx context.Context, program Program, input []byte) (Response, error)

// Name returns "func".
func (EngineFunc) Name() string { return "func" }

// Execute calls f.
func (f EngineFunc) Execute(ctx context.Context, program Program, input []byte) (Response, error) {
	return f(ctx, program, input)
}
