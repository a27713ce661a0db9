package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/fractalcmp/internal/metrics"
	"github.com/agbru/fractalcmp/internal/progress"
)

// RenderResult is the outcome of a single renderer run. It is the shared
// domain type between orchestration and presentation layers.
type RenderResult struct {
	// Name identifies the renderer ("native", "program").
	Name string
	// Output is the rendered text. It is empty if an error occurred.
	Output string
	// Duration is the wall-clock time of the render.
	Duration time.Duration
	// Memory is the Go heap activity observed around the render.
	Memory metrics.MemoryDelta
	// Err contains any error that occurred during the render.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Depth   int
	Verbose bool
	Quiet   bool
	Frame   bool
}

// ProgressReporter displays render progress. It decouples the orchestration
// layer from spinners and other UI concerns.
type ProgressReporter interface {
	// DisplayProgress consumes progressChan until it is closed and then
	// calls wg.Done. It runs in its own goroutine.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRenderers int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRenderers int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRenderers int, out io.Writer) {
	f(wg, progressChan, numRenderers, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders comparison results. Implementations decide the
// output format; the orchestration logic stays the same.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-renderer summary table.
	PresentComparisonTable(results []RenderResult, out io.Writer)

	// PresentMismatch explains how other differs from reference.
	PresentMismatch(reference, other RenderResult, out io.Writer)

	// PresentResult displays the agreed pattern.
	PresentResult(result RenderResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles render errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// RenderObserver is notified of every finished render.
type RenderObserver interface {
	ObserveRender(renderer string, d time.Duration, outputLen int, err error)
}
