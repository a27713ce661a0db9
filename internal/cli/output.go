// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a formatted string without performing I/O.
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/fractalcmp/internal/format"
	"github.com/agbru/fractalcmp/internal/orchestration"
	"github.com/agbru/fractalcmp/internal/ui"
)

// PatternShape returns the row count and the width of the last row of a
// newline-terminated pattern.
func PatternShape(pattern string) (rows, width int) {
	body := strings.TrimSuffix(pattern, "\n")
	if body == "" {
		return 0, 0
	}
	lines := strings.Split(body, "\n")
	return len(lines), len(lines[len(lines)-1])
}

// FormatResultHeader returns the one-line summary printed above a pattern.
func FormatResultHeader(result orchestration.RenderResult, depth int) string {
	rows, width := PatternShape(result.Output)
	return fmt.Sprintf("Sierpinski triangle, depth %d: %d rows x %d columns, rendered by %s in %s",
		depth, rows, width, result.Name, format.FormatExecutionDuration(result.Duration))
}

// DisplayResult prints the pattern. Quiet mode prints the raw pattern and
// nothing else; otherwise a header precedes it and, with opts.Frame, the
// pattern is drawn inside a border.
func DisplayResult(result orchestration.RenderResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		fmt.Fprint(out, result.Output)
		return
	}

	fmt.Fprintf(out, "\n--- Result ---\n")
	header := FormatResultHeader(result, opts.Depth)
	if opts.Frame {
		fmt.Fprint(out, ui.FramePattern(result.Output, header))
	} else {
		fmt.Fprintf(out, "%s%s%s\n\n", ui.ColorBold(), header, ui.ColorReset())
		fmt.Fprint(out, result.Output)
	}

	if opts.Verbose {
		DisplayMemoryStats(result.Name, result.Memory, out)
	}
}

// WriteResultToFile writes the pattern to path, preceded by a commented
// header. Parent directories are created as needed.
func WriteResultToFile(result orchestration.RenderResult, depth int, path string) (err error) {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	rows, width := PatternShape(result.Output)
	fmt.Fprintf(file, "# Sierpinski Triangle\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Renderer: %s\n", result.Name)
	fmt.Fprintf(file, "# Duration: %s\n", result.Duration)
	fmt.Fprintf(file, "# Depth: %d\n", depth)
	fmt.Fprintf(file, "# Rows: %d\n", rows)
	fmt.Fprintf(file, "# Width: %d\n", width)
	fmt.Fprintf(file, "\n")

	if _, err := io.WriteString(file, result.Output); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// DisplaySavedNotice confirms that the result file was written.
func DisplaySavedNotice(path string, out io.Writer) {
	fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
}
