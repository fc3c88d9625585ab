package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iroquiz/internal/router"
	"github.com/abhisek/iroquiz/internal/screen"
	"github.com/abhisek/iroquiz/internal/session"
	"github.com/abhisek/iroquiz/internal/ui/components"
	"github.com/abhisek/iroquiz/internal/ui/layout"
	"github.com/abhisek/iroquiz/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Q", Description: "Quit"},
	}
}

func (s *SummaryScreen) Status() *layout.Status {
	if s.summary == nil {
		return nil
	}
	return &layout.Status{Asked: s.summary.Asked, Correct: s.summary.Correct}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	var b strings.Builder

	b.WriteString(center(theme.Title.Render("Session complete!")))
	b.WriteString("\n\n")

	b.WriteString(center(theme.Dimmed.Render("Duration: " + FormatDuration(sum.Duration.Seconds()))))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		sum.Asked, sum.Correct, sum.Accuracy*100)
	b.WriteString(center(theme.Body.Render(statsLine)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("accuracy", sum.Correct, sum.Asked, min(width-8, 50))
	b.WriteString(center(bar.View()))
	b.WriteString("\n\n")

	divider := theme.Dimmed.Render(strings.Repeat("─", max(min(width-8, 60), 0)))
	b.WriteString(center(divider))
	b.WriteString("\n")

	cycles := fmt.Sprintf("Catalog: %d colors    Shuffle cycles: %d", sum.CatalogSize, sum.Cycles)
	b.WriteString(center(theme.Dimmed.Render(cycles)))
	b.WriteString("\n")

	return b.String()
}

// FormatDuration renders seconds as m:ss.
func FormatDuration(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
