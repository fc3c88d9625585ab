package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/iroquiz/internal/ui/theme"
)

// ProgressBar displays how far through a cycle the quiz is.
type ProgressBar struct {
	Label    string
	Position int
	Total    int
	Width    int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, position, total, width int) ProgressBar {
	return ProgressBar{
		Label:    label,
		Position: position,
		Total:    total,
		Width:    width,
	}
}

// Percent returns Position/Total clamped to [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Position) / float64(p.Total)
	return max(0, min(f, 1))
}

// View renders the progress bar followed by "pos/total".
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += theme.Body.Render(p.Label) + "  "
	}

	counter := fmt.Sprintf("  %d/%d", p.Position, p.Total)
	barWidth := p.Width - lipgloss.Width(result) - len(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent())
	empty := barWidth - filled

	result += theme.ProgressFilled.Render(strings.Repeat(" ", filled))
	result += theme.ProgressEmpty.Render(strings.Repeat(" ", empty))
	result += theme.Dimmed.Render(counter)

	return result
}
