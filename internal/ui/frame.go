package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Border colors used by FramePattern for the colored themes.
var (
	frameBorderDark  = lipgloss.Color("#FF8C00")
	frameBorderLight = lipgloss.Color("#005FAF")
)

// FramePattern draws a rounded border around a newline-terminated pattern,
// with title on the first line inside the frame when non-empty. The result
// is for display only: lipgloss pads every line to the frame width.
func FramePattern(pattern, title string) string {
	body := strings.TrimSuffix(pattern, "\n")
	if title != "" {
		body = titleStyle().Render(title) + "\n" + body
	}
	return frameStyle().Render(body) + "\n"
}

func frameStyle() lipgloss.Style {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	switch GetCurrentTheme().Name {
	case "none":
		return style.BorderForeground(lipgloss.NoColor{})
	case "light":
		return style.BorderForeground(frameBorderLight)
	default:
		return style.BorderForeground(frameBorderDark)
	}
}

func titleStyle() lipgloss.Style {
	style := lipgloss.NewStyle()
	if GetCurrentTheme().Name == "none" {
		return style
	}
	return style.Bold(true)
}
