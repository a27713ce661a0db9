package config

import (
	"flag"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	apperrors "github.com/agbru/fractalcmp/internal/errors"
)

// FileConfig mirrors the TOML configuration file. Pointer fields stay nil
// when the key is absent so that defaults are not clobbered.
//
//	depth = 5
//	renderer = "all"
//	timeout = "30s"
//	theme = "light"
//
//	[interpreter]
//	command = "bf"
//	args = []
//	input = ""
//	max_output = 1048576
type FileConfig struct {
	Depth       *int    `toml:"depth"`
	Renderer    *string `toml:"renderer"`
	Timeout     *string `toml:"timeout"`
	Parallel    *int    `toml:"parallel"`
	Output      *string `toml:"output"`
	MetricsFile *string `toml:"metrics_file"`
	LogLevel    *string `toml:"log_level"`
	Frame       *bool   `toml:"frame"`
	Quiet       *bool   `toml:"quiet"`
	Verbose     *bool   `toml:"verbose"`
	NoColor     *bool   `toml:"no_color"`
	Theme       *string `toml:"theme"`

	Interpreter InterpreterSection `toml:"interpreter"`

	timeout time.Duration
}

// InterpreterSection is the [interpreter] table.
type InterpreterSection struct {
	Command   *string  `toml:"command"`
	Args      []string `toml:"args"`
	Input     *string  `toml:"input"`
	MaxOutput *int     `toml:"max_output"`
}

// LoadFile decodes the TOML file at path. Unknown keys are rejected so that
// typos do not silently fall back to defaults.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return FileConfig{}, apperrors.NewConfigError("reading %s: %v", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return FileConfig{}, apperrors.NewConfigError("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if fc.Timeout != nil {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return FileConfig{}, apperrors.NewConfigError("%s: invalid timeout %q", path, *fc.Timeout)
		}
		fc.timeout = d
	}
	return fc, nil
}

// apply copies file values into cfg for every flag not set on the command line.
func (fc FileConfig) apply(cfg *AppConfig, fs *flag.FlagSet) {
	set := func(names ...string) bool { return isFlagSetAny(fs, names...) }

	if fc.Depth != nil && !set("depth", "n") {
		cfg.Depth = *fc.Depth
	}
	if fc.Renderer != nil && !set("renderer") {
		cfg.Renderer = *fc.Renderer
	}
	if fc.Timeout != nil && !set("timeout") {
		cfg.Timeout = fc.timeout
	}
	if fc.Parallel != nil && !set("parallel") {
		cfg.Parallel = *fc.Parallel
	}
	if fc.Output != nil && !set("output", "o") {
		cfg.OutputFile = *fc.Output
	}
	if fc.MetricsFile != nil && !set("metrics-file") {
		cfg.MetricsFile = *fc.MetricsFile
	}
	if fc.LogLevel != nil && !set("log-level") {
		cfg.LogLevel = *fc.LogLevel
	}
	if fc.Frame != nil && !set("frame") {
		cfg.Frame = *fc.Frame
	}
	if fc.Quiet != nil && !set("quiet", "q") {
		cfg.Quiet = *fc.Quiet
	}
	if fc.Verbose != nil && !set("verbose", "v") {
		cfg.Verbose = *fc.Verbose
	}
	if fc.NoColor != nil && !set("no-color") {
		cfg.NoColor = *fc.NoColor
	}
	if fc.Theme != nil && !set("theme") {
		cfg.Theme = *fc.Theme
	}
	// args belong to the command they were written for: a command given on
	// the command line drops them (applyEnvOverrides does the same).
	if !set("interpreter") {
		if fc.Interpreter.Command != nil {
			cfg.Interpreter = *fc.Interpreter.Command
		}
		if fc.Interpreter.Args != nil {
			cfg.InterpreterArgs = append([]string(nil), fc.Interpreter.Args...)
		}
	}
	if fc.Interpreter.Input != nil && !set("input") {
		cfg.Input = *fc.Interpreter.Input
	}
	if fc.Interpreter.MaxOutput != nil && !set("max-output") {
		cfg.MaxOutput = *fc.Interpreter.MaxOutput
	}
}
