package catalog

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/iroquiz/internal/catalog"
	"github.com/abhisek/iroquiz/internal/screen"
	"github.com/abhisek/iroquiz/internal/session"
	"github.com/abhisek/iroquiz/internal/ui/components"
	"github.com/abhisek/iroquiz/internal/ui/layout"
	"github.com/abhisek/iroquiz/internal/ui/theme"
)

// DetailScreen shows one record's card, a large swatch and its sentences.
type DetailScreen struct {
	color catalog.Color
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

func newDetail(c catalog.Color) *DetailScreen {
	return &DetailScreen{color: c}
}

func (d *DetailScreen) Init() tea.Cmd { return nil }
func (d *DetailScreen) Title() string { return d.color.Name }

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DetailScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	card := session.NewCard(d.color)

	var b strings.Builder
	b.WriteString(components.ColorCard(card, cw))
	b.WriteString("\n\n")

	if card.Hex != "" {
		for i := 0; i < 3; i++ {
			b.WriteString(components.Swatch(card.Hex, cw))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(d.color.Sentences) > 0 {
		b.WriteString(theme.Dimmed.Render("Question sentences"))
		b.WriteString("\n")
		for i, s := range d.color.Sentences {
			b.WriteString(theme.Body.Render(fmt.Sprintf("%d. %s", i+1, s)))
			b.WriteString("\n")
		}
	}

	if d.color.Source != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("from " + d.color.Source))
	}

	return b.String()
}
