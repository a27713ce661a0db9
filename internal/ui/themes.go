package ui

import (
	"os"
	"sort"
	"sync"

	"github.com/mattn/go-isatty"
)

// Theme holds the ANSI escape codes used by the comparison report.
type Theme struct {
	Name      string
	Primary   string // headers, renderer names
	Secondary string // table rules, muted text
	Success   string
	Warning   string
	Error     string
	Info      string // durations
	Bold      string
	Underline string
	Reset     string
}

// DarkTheme suits dark terminal backgrounds and is the default.
var DarkTheme = Theme{
	Name:      "dark",
	Primary:   "\033[38;5;39m",
	Secondary: "\033[38;5;245m",
	Success:   "\033[38;5;82m",
	Warning:   "\033[38;5;220m",
	Error:     "\033[38;5;196m",
	Info:      "\033[38;5;141m",
	Bold:      "\033[1m",
	Underline: "\033[4m",
	Reset:     "\033[0m",
}

// LightTheme uses darker tones that stay readable on light backgrounds.
var LightTheme = Theme{
	Name:      "light",
	Primary:   "\033[38;5;27m",
	Secondary: "\033[38;5;240m",
	Success:   "\033[38;5;28m",
	Warning:   "\033[38;5;130m",
	Error:     "\033[38;5;124m",
	Info:      "\033[38;5;54m",
	Bold:      "\033[1m",
	Underline: "\033[4m",
	Reset:     "\033[0m",
}

// NoColorTheme has every code empty.
var NoColorTheme = Theme{Name: "none"}

var themes = map[string]Theme{
	DarkTheme.Name:    DarkTheme,
	LightTheme.Name:   LightTheme,
	NoColorTheme.Name: NoColorTheme,
}

var (
	themeMu      sync.RWMutex
	currentTheme = DarkTheme
)

// ThemeNames lists the names accepted by LookupTheme, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTheme returns the theme registered under name.
func LookupTheme(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme.
func SetCurrentTheme(t Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = t
}

// InitTheme activates the named theme for standard output. See InitThemeFor.
func InitTheme(name string, noColor bool) {
	InitThemeFor(name, noColor, os.Stdout.Fd())
}

// InitThemeFor activates the named theme for output written to fd. Colors
// are off when noColor is set, when NO_COLOR is present in the environment
// (https://no-color.org/) or when fd is not a terminal. Unknown names fall
// back to DarkTheme; config validation rejects them earlier.
func InitThemeFor(name string, noColor bool, fd uintptr) {
	terminal := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	_, noColorEnv := os.LookupEnv("NO_COLOR")
	SetCurrentTheme(selectTheme(name, noColor || noColorEnv || !terminal))
}

func selectTheme(name string, disabled bool) Theme {
	if disabled {
		return NoColorTheme
	}
	if t, ok := LookupTheme(name); ok {
		return t
	}
	return DarkTheme
}
