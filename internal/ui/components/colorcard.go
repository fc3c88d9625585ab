package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/iroquiz/internal/session"
	"github.com/abhisek/iroquiz/internal/ui/theme"
)

// ColorCard renders a record's detail card at content width cw.
func ColorCard(c session.Card, cw int) string {
	var b strings.Builder

	title := theme.Body.Bold(true).Render(c.Name)
	if c.Correct {
		title = theme.Correct.Render(c.Name + "  (answer)")
	}
	b.WriteString(title)
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(theme.Badge.Render(label))
		b.WriteString(theme.Body.Render(value))
		b.WriteString("\n")
	}
	row("Family", c.Family)
	row("Munsell", c.Munsell)
	row("PCCS", c.PCCS)

	rgb := c.RGB
	if c.Hex != "" {
		rgb += "  " + c.Hex
	}
	b.WriteString(theme.Badge.Render("RGB"))
	b.WriteString(Swatch(c.Hex, 4))
	b.WriteString(" ")
	b.WriteString(theme.Body.Render(rgb))

	if c.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(max(cw-4, 10)).
			Render(c.Description))
	}

	return Panel(b.String(), cw, c.Correct)
}
