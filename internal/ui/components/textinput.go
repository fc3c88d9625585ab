package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/iroquiz/internal/ui/theme"
)

// FilterInput wraps bubbles/textinput as an incremental search field.
type FilterInput struct {
	Model textinput.Model
}

// NewFilterInput creates a blurred filter input.
func NewFilterInput(placeholder string, maxWidth int) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return FilterInput{Model: ti}
}

// Focus starts capturing keys.
func (f *FilterInput) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur stops capturing keys; the query is kept.
func (f *FilterInput) Blur() {
	f.Model.Blur()
}

// Focused reports whether the input is capturing keys.
func (f FilterInput) Focused() bool {
	return f.Model.Focused()
}

// Reset clears the query.
func (f *FilterInput) Reset() {
	f.Model.Reset()
}

// Update forwards messages to the wrapped model.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the input, dimmed when blurred and empty.
func (f FilterInput) View() string {
	if !f.Model.Focused() && f.Model.Value() == "" {
		return theme.Hint.Render("press / to filter")
	}
	return f.Model.View()
}

// Value returns the trimmed query.
func (f FilterInput) Value() string {
	return strings.TrimSpace(f.Model.Value())
}

// Matches reports whether any of fields contains the query, ignoring case.
// An empty query matches everything.
func (f FilterInput) Matches(fields ...string) bool {
	q := strings.ToLower(f.Value())
	if q == "" {
		return true
	}
	for _, s := range fields {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}
