// Package ui provides theme and color support for terminal output: ANSI
// color accessors bound to the active theme and lipgloss framing for
// rendered patterns.
package ui
