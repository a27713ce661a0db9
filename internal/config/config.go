// Package config parses the fractalcmp command line, an optional TOML file
// and FRACTALCMP_* environment variables into an AppConfig.
//
// Resolution order (highest priority first):
//  1. CLI flags
//  2. Environment variables
//  3. TOML config file (--config)
//  4. Defaults
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/fractalcmp/internal/errors"
	"github.com/agbru/fractalcmp/internal/logging"
	"github.com/agbru/fractalcmp/internal/renderer"
	"github.com/agbru/fractalcmp/internal/sierpinski"
	"github.com/agbru/fractalcmp/internal/ui"
)

// EnvPrefix prefixes every environment variable read by this package.
const EnvPrefix = "FRACTALCMP_"

// Defaults.
const (
	DefaultDepth       = 5
	DefaultRenderer    = "all"
	DefaultInterpreter = "bf"
	DefaultTimeout     = time.Minute
	DefaultParallel    = 1
	DefaultMaxOutput   = 1 << 20
	DefaultLogLevel    = "warn"
	DefaultTheme       = "dark"
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Depth is the recursion depth of the rendered triangle.
	Depth int
	// Renderer selects "native", "program" or "all".
	Renderer string
	// Interpreter is the command that runs the program path.
	Interpreter string
	// InterpreterArgs are passed to Interpreter before the program text.
	InterpreterArgs []string
	// Input is fed to the program on stdin.
	Input string
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Parallel is the maximum number of renderers running at once.
	Parallel int
	// MaxOutput caps the captured interpreter output in bytes.
	MaxOutput int
	// ConfigFile is the TOML file that was loaded, if any.
	ConfigFile string
	// OutputFile receives the agreed pattern when set.
	OutputFile string
	// MetricsFile receives the Prometheus text exposition when set.
	MetricsFile string
	// LogLevel is a zerolog level name.
	LogLevel string
	// Frame draws the pattern inside a border.
	Frame bool
	// Quiet prints only the pattern.
	Quiet bool
	// Verbose adds per-renderer memory statistics.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// Theme names the color theme: dark, light or none.
	Theme string
}

// Default returns the configuration used when nothing is set.
func Default() AppConfig {
	return AppConfig{
		Depth:       DefaultDepth,
		Renderer:    DefaultRenderer,
		Interpreter: DefaultInterpreter,
		Timeout:     DefaultTimeout,
		Parallel:    DefaultParallel,
		MaxOutput:   DefaultMaxOutput,
		LogLevel:    DefaultLogLevel,
		Theme:       DefaultTheme,
	}
}

// ParseConfig parses args (without the program name) into an AppConfig.
// availableRenderers lists the names accepted by --renderer besides "all".
// Usage errors are written to errWriter; flag.ErrHelp is returned unchanged
// when -h or --help is given.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableRenderers []string) (AppConfig, error) {
	cfg := Default()
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.IntVar(&cfg.Depth, "depth", cfg.Depth,
		fmt.Sprintf("Recursion depth of the triangle. The program renderer only draws depth %d; --renderer all skips it at other depths.",
			renderer.ProgramDepth))
	fs.IntVar(&cfg.Depth, "n", cfg.Depth, "Recursion depth (shorthand).")
	fs.StringVar(&cfg.Renderer, "renderer", cfg.Renderer,
		fmt.Sprintf("Renderer to run: all, %s.", strings.Join(availableRenderers, ", ")))
	fs.StringVar(&cfg.Interpreter, "interpreter", cfg.Interpreter, "Interpreter command for the program path.")
	fs.StringVar(&cfg.Input, "input", cfg.Input, "Bytes fed to the program on stdin.")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Maximum duration of the whole run.")
	fs.IntVar(&cfg.Parallel, "parallel", cfg.Parallel, "Maximum number of renderers running at once.")
	fs.IntVar(&cfg.MaxOutput, "max-output", cfg.MaxOutput, "Cap on captured interpreter output, in bytes.")
	fs.StringVar(&cfg.ConfigFile, "config", "", "TOML configuration file.")
	fs.StringVar(&cfg.OutputFile, "output", "", "Save the agreed pattern to this file.")
	fs.StringVar(&cfg.OutputFile, "o", "", "Output file (shorthand).")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error.")
	fs.BoolVar(&cfg.Frame, "frame", false, "Draw the pattern inside a border.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only the pattern.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Show memory statistics per renderer.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose mode (shorthand).")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme,
		fmt.Sprintf("Color theme: %s.", strings.Join(ui.ThemeNames(), ", ")))

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if cfg.ConfigFile != "" {
		fc, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			fmt.Fprintf(errWriter, "Configuration error: %v\n", err)
			return AppConfig{}, err
		}
		fc.apply(&cfg, fs)
	}
	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableRenderers); err != nil {
		fmt.Fprintf(errWriter, "Configuration error: %v\n", err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c AppConfig) Validate(availableRenderers []string) error {
	if err := sierpinski.ValidateDepth(c.Depth); err != nil {
		return err
	}
	if c.Renderer != "all" && !slices.Contains(availableRenderers, c.Renderer) {
		return apperrors.NewConfigError("unknown renderer %q (available: all, %s)",
			c.Renderer, strings.Join(availableRenderers, ", "))
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if c.Parallel < 1 {
		return apperrors.ValidationError{Field: "parallel", Message: "must be at least 1"}
	}
	if c.MaxOutput < 1 {
		return apperrors.ValidationError{Field: "max-output", Message: "must be at least 1 byte"}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.ValidationError{Field: "log-level", Message: fmt.Sprintf("unknown level %q", c.LogLevel)}
	}
	if _, ok := ui.LookupTheme(c.Theme); !ok {
		return apperrors.ValidationError{Field: "theme", Message: fmt.Sprintf("unknown theme %q", c.Theme)}
	}
	programRuns := c.Renderer == renderer.ProgramName || (c.Renderer == "all" && c.Depth == renderer.ProgramDepth)
	if c.Interpreter == "" && programRuns {
		return apperrors.ValidationError{Field: "interpreter", Message: "required by the program renderer"}
	}
	return nil
}
