package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/fractalcmp/internal/config"
	"github.com/agbru/fractalcmp/internal/renderer"
	"github.com/agbru/fractalcmp/internal/ui"
)

// PrintExecutionConfig displays the depth, timeout, interpreter and
// environment of the run.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Rendering a %sdepth-%d%s Sierpinski triangle with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Depth, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	if cfg.Renderer == renderer.ProgramName || (cfg.Renderer == "all" && cfg.Depth == renderer.ProgramDepth) {
		cmd := strings.TrimSpace(cfg.Interpreter + " " + strings.Join(cfg.InterpreterArgs, " "))
		fmt.Fprintf(out, "Interpreter: %s%s%s (input: %d bytes, output cap: %d bytes).\n",
			ui.ColorCyan(), cmd, ui.ColorReset(), len(cfg.Input), cfg.MaxOutput)
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, parallelism %d.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset(), cfg.Parallel)
}

// PrintExecutionMode displays whether one renderer runs or several are
// compared.
func PrintExecutionMode(renderers []renderer.Renderer, out io.Writer) {
	var modeDesc string
	switch len(renderers) {
	case 0:
		modeDesc = "no renderer selected"
	case 1:
		modeDesc = fmt.Sprintf("Single render with the %s%s%s renderer",
			ui.ColorGreen(), renderers[0].Description(), ui.ColorReset())
	default:
		names := make([]string, len(renderers))
		for i, r := range renderers {
			names[i] = r.Description()
		}
		modeDesc = "Comparison of " + strings.Join(names, " vs ")
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
