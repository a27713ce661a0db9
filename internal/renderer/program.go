package renderer

import (
	"context"
	"fmt"

	"github.com/agbru/fractalcmp/internal/engine"
	apperrors "github.com/agbru/fractalcmp/internal/errors"
	"github.com/agbru/fractalcmp/internal/progress"
)

// SierpinskiProgram prints the depth-5 Sierpinski triangle (32 rows) on a
// tape-machine interpreter. Whitespace is ignored by the interpreter.
var SierpinskiProgram = engine.Program(`
    ++++++++[>+>++++<<-]>++>>+<[-[>>+<<-]+>>]>+[
        -<<<[
            ->[+[-]+>++>>>-<<]<[<]>>++++++[<<+++++>>-]+<<++.[-]<<
        ]>.>+[>>]>+
    ]
`)

// ProgramDepth is the only depth SierpinskiProgram can draw.
const ProgramDepth = 5

// Program renders by running a fixed program on a foreign interpreter.
type Program struct {
	wrapper *engine.Wrapper
	program engine.Program
	input   []byte
	depth   int
}

// ProgramOption configures a Program renderer.
type ProgramOption func(*Program)

// WithInput sets the bytes fed to the program's input stream.
func WithInput(input []byte) ProgramOption {
	return func(p *Program) { p.input = input }
}

// NewProgram returns a renderer that runs SierpinskiProgram through w.
func NewProgram(w *engine.Wrapper, opts ...ProgramOption) *Program {
	p := &Program{wrapper: w, program: SierpinskiProgram, depth: ProgramDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements Renderer.
func (p *Program) Name() string { return ProgramName }

// Description implements Renderer.
func (p *Program) Description() string {
	return fmt.Sprintf("Foreign program (%s)", p.wrapper.EngineName())
}

// Depth returns the depth the program draws.
func (p *Program) Depth() int { return p.depth }

// Render implements Renderer. A failed execution yields an
// apperrors.ExecutionError and undecodable output an apperrors.DecodeError.
func (p *Program) Render(ctx context.Context, reporter progress.ProgressCallback, depth int) (string, error) {
	if depth != p.depth {
		return "", apperrors.ValidationError{
			Field:   "depth",
			Message: fmt.Sprintf("the program path only draws depth %d, got %d", p.depth, depth),
		}
	}
	report(reporter, 0)
	text, err := p.wrapper.Run(ctx, p.program, p.input)
	if err != nil {
		return "", err
	}
	report(reporter, 1)
	return text, nil
}
