package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fractalcmp/internal/errors"
	"github.com/agbru/fractalcmp/internal/metrics"
	"github.com/agbru/fractalcmp/internal/progress"
	"github.com/agbru/fractalcmp/internal/renderer"
)

const tracerName = "github.com/agbru/fractalcmp/internal/orchestration"

// ProgressBufferMultiplier sizes the progress channel relative to the number
// of renderers so that a slow display rarely forces updates to be dropped.
const ProgressBufferMultiplier = 5

// ExecutionOptions controls how ExecuteRenders runs the renderers.
type ExecutionOptions struct {
	// Depth is the recursion depth passed to every renderer.
	Depth int
	// Parallel caps the number of renderers running at once. Values below 1
	// mean 1.
	Parallel int
	// Observer, when non-nil, is notified of each finished render.
	Observer RenderObserver
}

// ExecuteRenders runs every renderer and returns one result per renderer in
// input order.
//
// A failing renderer never cancels the others: each result carries its own
// error, wrapped in apperrors.RenderError. Each render runs inside an
// OpenTelemetry span and is bracketed by memory snapshots.
func ExecuteRenders(ctx context.Context, renderers []renderer.Renderer, opts ExecutionOptions, progressReporter ProgressReporter, out io.Writer) []RenderResult {
	results := make([]RenderResult, len(renderers))
	if len(renderers) == 0 {
		return results
	}
	parallel := max(opts.Parallel, 1)

	var g errgroup.Group
	g.SetLimit(parallel)
	progressChan := make(chan progress.ProgressUpdate, len(renderers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(renderers), out)

	tracer := otel.Tracer(tracerName)
	collector := metrics.NewMemoryCollector()

	for i, r := range renderers {
		g.Go(func() error {
			results[i] = runOne(ctx, tracer, collector, r, i, opts.Depth, progressChan)
			if opts.Observer != nil {
				res := results[i]
				opts.Observer.ObserveRender(res.Name, res.Duration, len(res.Output), res.Err)
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

func runOne(ctx context.Context, tracer trace.Tracer, collector *metrics.MemoryCollector, r renderer.Renderer, index, depth int, progressChan chan<- progress.ProgressUpdate) RenderResult {
	ctx, span := tracer.Start(ctx, "render",
		trace.WithAttributes(
			attribute.String("renderer.name", r.Name()),
			attribute.Int("render.depth", depth),
		))
	defer span.End()

	before := collector.Snapshot()
	start := time.Now()
	output, err := r.Render(ctx, progress.ChannelCallback(progressChan, index), depth)
	duration := time.Since(start)
	delta := collector.Snapshot().Since(before)

	res := RenderResult{Name: r.Name(), Duration: duration, Memory: delta}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		res.Err = apperrors.RenderError{Renderer: r.Name(), Cause: err}
		return res
	}
	span.SetAttributes(attribute.Int("render.output_bytes", len(output)))
	res.Output = output
	return res
}

// AnalyzeComparisonResults reports the results and returns the exit code.
//
// Results are sorted with successes first, fastest first. Any failed render
// fails the whole comparison: no pattern is printed and the exit code of the
// first failure is returned. When every render succeeded, outputs are
// compared byte for byte against the fastest one; a difference is reported
// through PresentMismatch and yields ExitErrorMismatch.
func AnalyzeComparisonResults(results []RenderResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var failed *RenderResult
	successCount := 0
	for i := range results {
		if results[i].Err != nil {
			if failed == nil {
				failed = &results[i]
			}
			continue
		}
		successCount++
	}

	if !opts.Quiet {
		presenter.PresentComparisonTable(results, out)
	}

	if len(results) == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No renderer was selected.\n")
		return apperrors.ExitErrorConfig
	}
	if failed != nil {
		if successCount == 0 {
			fmt.Fprintf(out, "\nGlobal Status: Failure. No renderer could complete the pattern.\n")
		} else {
			fmt.Fprintf(out, "\nGlobal Status: Failure. Renderer %q did not complete; comparison aborted.\n", failed.Name)
		}
		return errHandler.HandleError(failed.Err, failed.Duration, out)
	}

	reference := results[0]
	for _, res := range results[1:] {
		if res.Output != reference.Output {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! Renderers %q and %q produced different patterns.\n", reference.Name, res.Name)
			presenter.PresentMismatch(reference, res, out)
			return apperrors.ExitErrorMismatch
		}
	}

	if !opts.Quiet {
		if len(results) > 1 {
			fmt.Fprintf(out, "\nGlobal Status: Success. All renderers produced identical patterns.\n")
		} else {
			fmt.Fprintf(out, "\nGlobal Status: Success.\n")
		}
	}
	presenter.PresentResult(reference, opts, out)
	return apperrors.ExitSuccess
}
