package format

import (
	"strings"
	"sync"
)

// ProgressState tracks the latest progress value of each renderer.
// It is safe for concurrent use.
type ProgressState struct {
	mu           sync.Mutex
	progresses   []float64
	numRenderers int
}

// NewProgressState creates a state for numRenderers renderers.
func NewProgressState(numRenderers int) *ProgressState {
	if numRenderers < 0 {
		numRenderers = 0
	}
	return &ProgressState{
		progresses:   make([]float64, numRenderers),
		numRenderers: numRenderers,
	}
}

// Update records value for the renderer at index. Out-of-range indices are
// ignored.
func (ps *ProgressState) Update(index int, value float64) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if index >= 0 && index < len(ps.progresses) {
		ps.progresses[index] = value
	}
}

// CalculateAverage returns the mean progress over all renderers.
func (ps *ProgressState) CalculateAverage() float64 {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.numRenderers == 0 {
		return 0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numRenderers)
}

// ProgressBar draws a bar of the given length. progress is clamped to [0, 1].
func ProgressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatNumberString inserts thousands separators into a decimal string.
func FormatNumberString(s string) string {
	if s == "" {
		return ""
	}
	prefix := ""
	if s[0] == '-' {
		prefix, s = "-", s[1:]
	}
	n := len(s)
	if n <= 3 {
		return prefix + s
	}
	var b strings.Builder
	b.Grow(len(prefix) + n + (n-1)/3)
	b.WriteString(prefix)
	first := n % 3
	if first == 0 {
		first = 3
	}
	b.WriteString(s[:first])
	for i := first; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
