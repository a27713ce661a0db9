package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	apperrors "github.com/agbru/fractalcmp/internal/errors"
	"github.com/agbru/fractalcmp/internal/format"
	"github.com/agbru/fractalcmp/internal/metrics"
	"github.com/agbru/fractalcmp/internal/orchestration"
	"github.com/agbru/fractalcmp/internal/progress"
	"github.com/agbru/fractalcmp/internal/sysmon"
	"github.com/agbru/fractalcmp/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing renders.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRenderers int, out io.Writer) {
	DisplayProgress(wg, progressChan, numRenderers, out)
}

// CLIColorProvider adapts the ui theme to apperrors.ColorProvider.
type CLIColorProvider struct{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// CLIResultPresenter implements orchestration.ResultPresenter for the
// terminal.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays renderer names, durations and status.
// Padding is computed on the uncolored text so ANSI codes do not skew the
// columns.
func (p CLIResultPresenter) PresentComparisonTable(results []orchestration.RenderResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxNameLen := len("Renderer")
	maxDurationLen := len("Duration")
	for _, res := range results {
		maxNameLen = max(maxNameLen, len(res.Name))
		maxDurationLen = max(maxDurationLen, len(p.FormatDuration(res.Duration)))
	}

	fmt.Fprintf(out, "%sRenderer%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Renderer")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s (%s bytes)", ui.ColorGreen(), ui.ColorReset(),
				format.FormatNumberString(strconv.Itoa(len(res.Output))))
		}
		duration := p.FormatDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// padRight appends length spaces to s.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + strings.Repeat(" ", length)
}

// PresentMismatch prints where other first departs from reference followed
// by a line diff. Lines are quoted so that trailing spaces stay visible.
func (CLIResultPresenter) PresentMismatch(reference, other orchestration.RenderResult, out io.Writer) {
	offset := FirstDifference(reference.Output, other.Output)
	fmt.Fprintf(out, "First difference at byte %d (%s: %d bytes, %s: %d bytes).\n",
		offset, reference.Name, len(reference.Output), other.Name, len(other.Output))
	fmt.Fprintf(out, "%s--- %s%s\n%s+++ %s%s\n",
		ui.ColorRed(), reference.Name, ui.ColorReset(), ui.ColorGreen(), other.Name, ui.ColorReset())
	for _, l := range LineDiff(reference.Output, other.Output) {
		switch l.Op {
		case '-':
			fmt.Fprintf(out, "%s- %s%s\n", ui.ColorRed(), strconv.Quote(l.Text), ui.ColorReset())
		case '+':
			fmt.Fprintf(out, "%s+ %s%s\n", ui.ColorGreen(), strconv.Quote(l.Text), ui.ColorReset())
		case '~':
			fmt.Fprintf(out, "%s  ... %s identical lines ...%s\n", ui.ColorCyan(), l.Text, ui.ColorReset())
		default:
			fmt.Fprintf(out, "  %s\n", strconv.Quote(l.Text))
		}
	}
}

// PresentResult displays the agreed pattern.
func (CLIResultPresenter) PresentResult(result orchestration.RenderResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(result, opts, out)
}

// FormatDuration formats a duration for display.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError prints err and returns the matching exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleRenderError(err, duration, out, CLIColorProvider{})
}

// DisplayMemoryStats shows the Go heap activity around a render. For the
// program path this covers only the harness side, not the interpreter.
func DisplayMemoryStats(name string, mem metrics.MemoryDelta, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats (%s):\n", name)
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(mem.HeapAlloc))
	fmt.Fprintf(out, "  Allocated:       %s\n", format.FormatBytes(mem.Allocated))
	fmt.Fprintf(out, "  GC cycles:       %d\n", mem.NumGC)
}

// DisplayHostLoad shows system-wide load sampled around the comparison.
func DisplayHostLoad(load sysmon.Load, out io.Writer) {
	fmt.Fprintf(out, "\nHost Load:\n")
	fmt.Fprintf(out, "  Before: %s\n", load.Before)
	fmt.Fprintf(out, "  After:  %s\n", load.After)
}
