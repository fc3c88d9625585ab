package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/iroquiz/internal/ui/theme"
)

// Swatch renders a block of width cells filled with hex ("#RRGGBB").
// An empty hex renders a hatched placeholder.
func Swatch(hex string, width int) string {
	if width < 1 {
		width = 1
	}
	if hex == "" {
		return theme.Dimmed.Render(strings.Repeat("░", width))
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render(strings.Repeat(" ", width))
}

// ContentWidth returns the uniform inner width for stacked panels.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Panel wraps content in a rounded-border box at the given content width.
func Panel(content string, cw int, highlight bool) string {
	style := theme.Card
	if highlight {
		style = theme.CorrectCard
	}
	return style.Width(cw).Render(content)
}
