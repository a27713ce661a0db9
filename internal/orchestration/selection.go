package orchestration

import (
	"github.com/agbru/fractalcmp/internal/renderer"
)

// GetRenderersToRun resolves a --renderer value against the factory. "all"
// returns, in name order, every registered renderer that can draw depth. A
// renderer named explicitly is returned even when it cannot, so that it
// fails with a ValidationError. An unknown name yields nil.
func GetRenderersToRun(name string, factory renderer.Factory, depth int) []renderer.Renderer {
	if name == "all" {
		var selected []renderer.Renderer
		for _, r := range factory.GetAll() {
			if renderer.Supports(r, depth) {
				selected = append(selected, r)
			}
		}
		return selected
	}
	if r, err := factory.Get(name); err == nil {
		return []renderer.Renderer{r}
	}
	return nil
}
