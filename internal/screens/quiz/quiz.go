package quiz

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/iroquiz/internal/router"
	"github.com/abhisek/iroquiz/internal/screen"
	"github.com/abhisek/iroquiz/internal/screens/summary"
	"github.com/abhisek/iroquiz/internal/session"
	"github.com/abhisek/iroquiz/internal/ui/components"
	"github.com/abhisek/iroquiz/internal/ui/layout"
)

// QuizScreen runs a started session: one question at a time, the result
// cards after each answer, and the reshuffle prompt at the end of a cycle.
type QuizScreen struct {
	sess   *session.Session
	choice components.MultiChoice
	prompt string
	errMsg string
	scroll int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over a session that has already been started.
func New(sess *session.Session) *QuizScreen {
	q := &QuizScreen{sess: sess}
	q.syncChoices()
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

func (q *QuizScreen) Status() *layout.Status {
	sc := q.sess.Score()
	return &layout.Status{Asked: sc.Asked(), Correct: sc.Correct()}
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch q.sess.Phase() {
	case session.PhaseReady:
		return []layout.KeyHint{
			{Key: "↑↓/1-9", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Q", Description: "Finish"},
			{Key: "Esc", Description: "Home"},
		}
	case session.PhaseAnswered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Q", Description: "Finish"},
		}
	case session.PhaseExhausted:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Shuffle and restart"},
			{Key: "Q", Description: "Finish"},
		}
	}
	return nil
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return q, nil
	}
	key := kmsg.String()

	if key == "q" {
		return q, q.finish()
	}

	switch q.sess.Phase() {
	case session.PhaseReady:
		switch key {
		case "enter", "space":
			q.submit()
			return q, nil
		}
		var cmd tea.Cmd
		q.choice, cmd = q.choice.Update(msg)
		if _, picked := q.choice.Choice(); picked {
			q.prompt = ""
		}
		return q, cmd

	case session.PhaseAnswered:
		switch key {
		case "enter", "space", "n":
			q.next()
		case "up", "k":
			if q.scroll > 0 {
				q.scroll--
			}
		case "down", "j":
			q.scroll++
		}

	case session.PhaseExhausted:
		switch key {
		case "enter", "space", "r":
			q.next()
		}
	}
	return q, nil
}

func (q *QuizScreen) submit() {
	choice, _ := q.choice.Choice()
	_, err := q.sess.Submit(choice)
	switch {
	case errors.Is(err, session.ErrNoSelection):
		q.prompt = session.NoSelectionPrompt
		return
	case err != nil:
		q.errMsg = err.Error()
		return
	}

	q.prompt = ""
	q.scroll = 0
	q.choice.Reveal(q.sess.Current().Answer, choice)
}

func (q *QuizScreen) next() {
	if err := q.sess.Next(); err != nil {
		q.errMsg = err.Error()
		return
	}
	q.errMsg = ""
	q.syncChoices()
}

// syncChoices resets the selector to the live question's options.
func (q *QuizScreen) syncChoices() {
	q.scroll = 0
	if cur := q.sess.Current(); cur != nil {
		q.choice = components.NewMultiChoice(cur.Choices)
		return
	}
	q.choice = components.NewMultiChoice(nil)
}

func (q *QuizScreen) finish() tea.Cmd {
	sum := summary.New(q.sess.Summary())
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sum}
	}
}
