package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iroquiz/internal/ui/theme"
)

// MultiChoice is a multiple-choice selector. It starts with nothing
// selected so that submitting requires an explicit choice.
type MultiChoice struct {
	Options  []string
	Selected int // -1 when nothing is selected

	revealed bool
	answer   int
	chosen   int
}

// NewMultiChoice creates a selector over options with no selection.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options:  options,
		Selected: -1,
		answer:   -1,
		chosen:   -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles arrow/vim navigation and number-key selection.
// Enter is left to the owning screen.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected < 0 {
			m.Selected = len(m.Options) - 1
		} else if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.Options) {
				m.Selected = i
			}
		}
	}

	return m, nil
}

// Choice returns the selected option, if any.
func (m MultiChoice) Choice() (string, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Options) {
		return "", false
	}
	return m.Options[m.Selected], true
}

// Reveal freezes the selector and marks the answer and the chosen option.
func (m *MultiChoice) Reveal(answer, chosen string) {
	m.revealed = true
	m.answer = indexOf(m.Options, answer)
	m.chosen = indexOf(m.Options, chosen)
}

// Revealed reports whether Reveal has been called.
func (m MultiChoice) Revealed() bool {
	return m.revealed
}

// View renders the options, one per line.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		var style lipgloss.Style
		switch {
		case m.revealed && i == m.answer:
			style = theme.Correct
			line += "  ✓"
		case m.revealed && i == m.chosen:
			style = theme.Incorrect
			line += "  ✗"
		case m.revealed:
			style = theme.Dimmed
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func indexOf(options []string, v string) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return -1
}
