package orchestration

import (
	"github.com/agbru/fractalcmp/internal/format"
	"github.com/agbru/fractalcmp/internal/progress"
)

// ProgressAggregator folds per-renderer updates into an overall average.
type ProgressAggregator struct {
	state        *format.ProgressState
	numRenderers int
}

// NewProgressAggregator returns nil if numRenderers <= 0.
func NewProgressAggregator(numRenderers int) *ProgressAggregator {
	if numRenderers <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:        format.NewProgressState(numRenderers),
		numRenderers: numRenderers,
	}
}

// AggregatedProgress holds the result of processing a single update.
type AggregatedProgress struct {
	RendererIndex   int
	Value           float64
	AverageProgress float64
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update progress.ProgressUpdate) AggregatedProgress {
	a.state.Update(update.RendererIndex, update.Value)
	return AggregatedProgress{
		RendererIndex:   update.RendererIndex,
		Value:           update.Value,
		AverageProgress: a.state.CalculateAverage(),
	}
}

// CalculateAverage returns the current average progress without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// NumRenderers returns the number of renderers being tracked.
func (a *ProgressAggregator) NumRenderers() int {
	return a.numRenderers
}

// IsMultiRenderer reports whether more than one renderer is tracked.
func (a *ProgressAggregator) IsMultiRenderer() bool {
	return a.numRenderers > 1
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan progress.ProgressUpdate) {
	for range progressChan {
	}
}
