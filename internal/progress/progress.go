// Package progress carries per-renderer progress updates from the renderers
// to whatever is displaying them.
package progress

// ProgressUpdate is one progress report from the renderer at RendererIndex.
// Value runs from 0.0 to 1.0.
type ProgressUpdate struct {
	RendererIndex int
	Value         float64
}

// ProgressCallback receives progress values from inside a renderer.
type ProgressCallback func(value float64)

// ChannelCallback returns a callback that forwards values to ch, tagged with
// index. Sends never block: an update is dropped when ch is full, since a
// later update supersedes it. A nil ch yields a no-op callback.
func ChannelCallback(ch chan<- ProgressUpdate, index int) ProgressCallback {
	if ch == nil {
		return func(float64) {}
	}
	return func(value float64) {
		select {
		case ch <- ProgressUpdate{RendererIndex: index, Value: value}:
		default:
		}
	}
}
