package renderer

import (
	"context"

	"github.com/agbru/fractalcmp/internal/progress"
)

// Registry names of the built-in renderers.
const (
	NativeName  = "native"
	ProgramName = "program"
)

// Renderer produces the serialized Sierpinski pattern for a depth.
type Renderer interface {
	// Name is the registry key of the renderer ("native", "program").
	Name() string
	// Description is a human-readable label for tables and logs.
	Description() string
	// Render returns the newline-terminated pattern text. reporter may be nil.
	Render(ctx context.Context, reporter progress.ProgressCallback, depth int) (string, error)
}

// FixedDepth is implemented by renderers that can only draw one depth.
type FixedDepth interface {
	Depth() int
}

// Supports reports whether r can draw depth.
func Supports(r Renderer, depth int) bool {
	if fd, ok := r.(FixedDepth); ok {
		return fd.Depth() == depth
	}
	return true
}

func report(reporter progress.ProgressCallback, value float64) {
	if reporter != nil {
		reporter(value)
	}
}
