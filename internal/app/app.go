// Package app wires configuration, logging, the foreign engine and the
// renderers into the fractalcmp command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/fractalcmp/internal/config"
	"github.com/agbru/fractalcmp/internal/engine"
	"github.com/agbru/fractalcmp/internal/logging"
	"github.com/agbru/fractalcmp/internal/renderer"
	"github.com/agbru/fractalcmp/internal/ui"
)

// Application represents the fractalcmp application instance.
type Application struct {
	Config    config.AppConfig
	Factory   renderer.Factory
	Engine    engine.Engine
	ErrWriter io.Writer
	Logger    logging.Logger

	level zerolog.Level
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory replaces the renderer factory. The engine settings of the
// configuration are then ignored.
func WithFactory(f renderer.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithEngine replaces the subprocess interpreter with e.
func WithEngine(e engine.Engine) AppOption {
	return func(a *Application) { a.Engine = e }
}

// New parses args (including the program name) into an Application.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	available := []string{renderer.NativeName, renderer.ProgramName}
	if app.Factory != nil {
		available = app.Factory.List()
	}

	programName := "fractalcmp"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, available)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the comparison and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.Theme, a.Config.NoColor)
	a.setupLogging()
	if a.Factory == nil {
		a.Factory = a.buildFactory()
	}
	return a.runCompare(ctx, out)
}

func (a *Application) setupLogging() {
	// Validated by config.ParseConfig.
	a.level, _ = logging.ParseLevel(a.Config.LogLevel)
	a.Logger = logging.NewZerologAdapter(a.componentLogger("app"))
}

func (a *Application) componentLogger(component string) zerolog.Logger {
	return logging.NewLogger(a.ErrWriter, component).Zerolog().Level(a.level)
}

func (a *Application) buildFactory() renderer.Factory {
	engineLog := a.componentLogger("engine")
	e := a.Engine
	if e == nil {
		e = engine.NewSubprocessEngine(engine.SubprocessConfig{
			Command:        a.Config.Interpreter,
			Args:           a.Config.InterpreterArgs,
			MaxOutputBytes: a.Config.MaxOutput,
		}, engineLog)
	}
	w := engine.NewWrapper(e, engine.WithLogger(engineLog))
	return renderer.NewDefaultFactory(w, renderer.WithInput([]byte(a.Config.Input)))
}

// IsHelpError reports whether err comes from -h or --help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
