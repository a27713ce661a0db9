package renderer

import (
	"context"

	"github.com/agbru/fractalcmp/internal/progress"
	"github.com/agbru/fractalcmp/internal/sierpinski"
)

// Native renders with the in-process recursive algorithm.
type Native struct{}

// Name implements Renderer.
func (Native) Name() string { return NativeName }

// Description implements Renderer.
func (Native) Description() string { return "Native recursion" }

// Render implements Renderer. Out-of-range depths are returned as an
// apperrors.ValidationError rather than reaching sierpinski.Generate.
func (Native) Render(ctx context.Context, reporter progress.ProgressCallback, depth int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := sierpinski.ValidateDepth(depth); err != nil {
		return "", err
	}
	report(reporter, 0)
	text := sierpinski.Render(depth)
	report(reporter, 1)
	return text, nil
}
