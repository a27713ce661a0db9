package renderer

import (
	"fmt"
	"sort"
	"sync"

	"github.com/agbru/fractalcmp/internal/engine"
)

// Factory hands out renderers by name.
type Factory interface {
	// Get returns the renderer registered under name.
	Get(name string) (Renderer, error)
	// List returns the registered names in sorted order.
	List() []string
	// GetAll returns every registered renderer, sorted by name.
	GetAll() []Renderer
}

// Registry is the default Factory. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// NewDefaultFactory registers the native renderer and, when w is non-nil,
// the program renderer.
func NewDefaultFactory(w *engine.Wrapper, opts ...ProgramOption) *Registry {
	r := NewRegistry()
	r.Register(Native{})
	if w != nil {
		r.Register(NewProgram(w, opts...))
	}
	return r
}

// Register adds or replaces a renderer under its Name.
func (r *Registry) Register(rd Renderer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[rd.Name()] = rd
}

// Get implements Factory.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rd, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown renderer %q", name)
	}
	return rd, nil
}

// List implements Factory.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll implements Factory.
func (r *Registry) GetAll() []Renderer {
	names := r.List()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Renderer, 0, len(names))
	for _, name := range names {
		out = append(out, r.renderers[name])
	}
	return out
}
