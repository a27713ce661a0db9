package sierpinski

import (
	"fmt"
	"strings"

	apperrors "github.com/agbru/fractalcmp/internal/errors"
)

// MaxDepth bounds the recursion depth. Depth n yields 2^n rows of up to
// 2^(n+1)-1 columns, so memory grows by a factor of four per level.
const MaxDepth = 12

// ValidateDepth reports whether n is an acceptable depth for Generate.
// Use it on user input; Generate itself treats a bad depth as a bug.
func ValidateDepth(n int) error {
	if n < 0 {
		return apperrors.ValidationError{Field: "depth", Message: fmt.Sprintf("must be >= 0, got %d", n)}
	}
	if n > MaxDepth {
		return apperrors.ValidationError{Field: "depth", Message: fmt.Sprintf("must be <= %d, got %d", MaxDepth, n)}
	}
	return nil
}

// Generate returns the Sierpinski pattern of depth n.
//
// Generate(0) is the single row "*". For n > 0 every row cur of
// Generate(n-1) produces a top row, cur shifted right by half the width
// growth, and a bottom row, cur twice separated by spaces. All top rows come
// first, then all bottom rows, each group in the original order.
//
// It panics if n is outside [0, MaxDepth].
func Generate(n int) Pattern {
	if err := ValidateDepth(n); err != nil {
		panic("sierpinski: " + err.Error())
	}
	return generate(n)
}

func generate(n int) Pattern {
	if n == 0 {
		return Pattern{"*"}
	}
	prev := generate(n - 1)
	prevWidth := prev.Width()
	nextWidth := 2*prevWidth + 1
	growth := nextWidth - prevWidth

	next := make(Pattern, 2*len(prev))
	lead := strings.Repeat(" ", growth/2)
	for i, cur := range prev {
		next[i] = lead + cur
		next[len(prev)+i] = cur + strings.Repeat(" ", growth-len(cur)) + cur
	}
	return next
}

// Render is Generate(n).String().
func Render(n int) string {
	return Generate(n).String()
}
