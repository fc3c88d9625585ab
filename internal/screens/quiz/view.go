package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/iroquiz/internal/session"
	"github.com/abhisek/iroquiz/internal/ui/components"
	"github.com/abhisek/iroquiz/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	v := q.sess.View()
	cw := components.ContentWidth(width)

	var b strings.Builder

	// Label and cycle progress.
	label := theme.Label.Render("  " + v.Label)
	bar := components.NewProgressBar(fmt.Sprintf("cycle %d", v.Cycle), v.Position, v.Total, min(cw, 40)).View()
	gap := width - lipgloss.Width(label) - lipgloss.Width(bar) - 2
	if gap < 2 {
		gap = 2
	}
	b.WriteString(label + strings.Repeat(" ", gap) + bar)
	b.WriteString("\n")
	b.WriteString(theme.Dimmed.Render("  " + strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if q.errMsg != "" {
		b.WriteString(theme.Incorrect.Render("  " + q.errMsg))
		b.WriteString("\n\n")
	}

	switch v.Phase {
	case session.PhaseExhausted:
		b.WriteString(indent(theme.Stem.Width(cw).Render(v.Message)))
		b.WriteString("\n\n")
		b.WriteString(indent(fmt.Sprintf("Asked %d   Correct %d", v.Asked, v.Correct)))
		b.WriteString("\n\n")
		b.WriteString(indent(components.NewButton("Shuffle and start again", "Enter", true).View()))
		out, _ := clip(b.String(), height, 0)
		return out

	case session.PhaseReady, session.PhaseAnswered:
		b.WriteString(indent(theme.Stem.Width(cw).Render(v.Stem)))
		b.WriteString("\n\n")
		b.WriteString(indent(q.choice.View()))

		if q.prompt != "" {
			b.WriteString("\n")
			b.WriteString(indent(theme.Warning.Render(q.prompt)))
			b.WriteString("\n")
		}

		if v.Result != nil {
			b.WriteString("\n")
			b.WriteString(indent(renderResult(v.Result, cw)))
		}
	}

	out, offset := clip(b.String(), height, q.scroll)
	q.scroll = offset
	return out
}

func renderResult(r *session.Result, cw int) string {
	var b strings.Builder

	verdict := theme.Incorrect.Render("Incorrect.")
	if r.Correct {
		verdict = theme.Correct.Render("Correct!")
	}
	b.WriteString(verdict + theme.Body.Render(" The answer is ") + theme.Label.Render(r.Answer))
	b.WriteString("\n\n")

	for i, c := range r.Cards {
		if i == 1 {
			b.WriteString(theme.Dimmed.Render("Other choices"))
			b.WriteString("\n")
		}
		b.WriteString(components.ColorCard(c, cw))
		b.WriteString("\n")
	}
	return b.String()
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "  " + l
		}
	}
	return strings.Join(lines, "\n")
}

// clip keeps the header lines fixed and scrolls the rest by offset. It
// returns the offset clamped to the scrollable range.
func clip(s string, height, offset int) (string, int) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if height <= 0 || len(lines) <= height {
		return strings.Join(lines, "\n"), 0
	}
	const fixed = 2
	body := lines[fixed:]
	room := height - fixed
	maxOffset := max(len(body)-room, 0)
	offset = min(max(offset, 0), maxOffset)
	end := min(offset+room, len(body))
	return strings.Join(append(lines[:fixed:fixed], body[offset:end]...), "\n"), offset
}
