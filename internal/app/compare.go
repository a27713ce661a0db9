package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/fractalcmp/internal/cli"
	apperrors "github.com/agbru/fractalcmp/internal/errors"
	"github.com/agbru/fractalcmp/internal/logging"
	"github.com/agbru/fractalcmp/internal/metrics"
	"github.com/agbru/fractalcmp/internal/orchestration"
	"github.com/agbru/fractalcmp/internal/sysmon"
)

// runCompare runs the selected renderers, compares their output and writes
// the optional result and metrics files.
func (a *Application) runCompare(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	renderersToRun := orchestration.GetRenderersToRun(a.Config.Renderer, a.Factory, a.Config.Depth)

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(renderersToRun, out)
	}

	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
	}

	var recorder *metrics.Recorder
	execOpts := orchestration.ExecutionOptions{Depth: a.Config.Depth, Parallel: a.Config.Parallel}
	if a.Config.MetricsFile != "" {
		recorder = metrics.NewRecorder()
		execOpts.Observer = recorder
	}

	a.Logger.Debug("starting renders",
		logging.Int("renderers", len(renderersToRun)),
		logging.Int("depth", a.Config.Depth),
		logging.Int("parallel", a.Config.Parallel))

	var results []orchestration.RenderResult
	run := func() {
		results = orchestration.ExecuteRenders(ctx, renderersToRun, execOpts, progressReporter, progressOut)
	}
	trackHost := a.Config.Verbose || recorder != nil
	var hostLoad sysmon.Load
	if trackHost {
		hostLoad = sysmon.Track(run)
		recorder.ObserveHost(hostLoad)
		a.Logger.Debug("host load",
			logging.Float64("cpu_before", hostLoad.Before.CPUPercent),
			logging.Float64("cpu_after", hostLoad.After.CPUPercent),
			logging.Float64("mem_after", hostLoad.After.MemPercent))
	} else {
		run()
	}
	attributeDeadline(ctx, results, a.Config.Timeout)
	for _, res := range results {
		if res.Err != nil {
			a.Logger.Error("render failed", res.Err, logging.String("renderer", res.Name), logging.Duration("duration", res.Duration))
			continue
		}
		a.Logger.Info("render finished",
			logging.String("renderer", res.Name),
			logging.Duration("duration", res.Duration),
			logging.Int("bytes", len(res.Output)),
			logging.Uint64("allocated", res.Memory.Allocated))
	}

	presOpts := orchestration.PresentationOptions{
		Depth:   a.Config.Depth,
		Verbose: a.Config.Verbose,
		Quiet:   a.Config.Quiet,
		Frame:   a.Config.Frame,
	}
	presenter := cli.CLIResultPresenter{}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, out)
	if trackHost && a.Config.Verbose && !a.Config.Quiet {
		cli.DisplayHostLoad(hostLoad, out)
	}
	if exitCode == apperrors.ExitErrorMismatch {
		recorder.ObserveMismatch()
	}

	if exitCode == apperrors.ExitSuccess && a.Config.OutputFile != "" {
		if best := findBestResult(results); best != nil {
			if err := cli.WriteResultToFile(*best, a.Config.Depth, a.Config.OutputFile); err != nil {
				fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
				a.Logger.Error("saving result failed", err, logging.String("path", a.Config.OutputFile))
				exitCode = apperrors.ExitErrorGeneric
			} else if !a.Config.Quiet {
				cli.DisplaySavedNotice(a.Config.OutputFile, out)
			}
		}
	}

	if recorder != nil {
		if err := recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error writing metrics: %v\n", err)
			a.Logger.Error("writing metrics failed", err, logging.String("path", a.Config.MetricsFile))
			if exitCode == apperrors.ExitSuccess {
				exitCode = apperrors.ExitErrorGeneric
			}
		}
	}

	return exitCode
}

// attributeDeadline replaces the deadline errors of renders cut short by the
// run timeout with a TimeoutError naming the limit. Deadlines a renderer hit
// on its own are left alone.
func attributeDeadline(ctx context.Context, results []orchestration.RenderResult, limit time.Duration) {
	if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return
	}
	for i := range results {
		if errors.Is(results[i].Err, context.DeadlineExceeded) {
			results[i].Err = apperrors.RenderError{
				Renderer: results[i].Name,
				Cause:    apperrors.TimeoutError{Operation: "compare", Limit: limit},
			}
		}
	}
}

func findBestResult(results []orchestration.RenderResult) *orchestration.RenderResult {
	var bestResult *orchestration.RenderResult
	for i := range results {
		if results[i].Err == nil {
			if bestResult == nil || results[i].Duration < bestResult.Duration {
				bestResult = &results[i]
			}
		}
	}
	return bestResult
}
