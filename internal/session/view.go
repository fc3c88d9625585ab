package session

import (
	"fmt"

	"github.com/abhisek/iroquiz/internal/catalog"
)

const (
	// Blank stands in for an empty optional field on a card.
	Blank = "—"

	// UnknownRGB is shown when a record has no parseable color value.
	UnknownRGB = "unknown"

	// NoDescription replaces an empty question stem.
	NoDescription = "(no description)"

	// NoSelectionPrompt answers a submit with nothing chosen.
	NoSelectionPrompt = "Choose one of the options first."

	// ExhaustedMessage is shown once every record has been asked.
	ExhaustedMessage = "All questions have been asked. Shuffle the order and start again?"
)

// Card is the detail view of one color record.
type Card struct {
	Name        string
	Family      string
	Munsell     string
	PCCS        string
	RGB         string
	Hex         string
	Swatch      *catalog.RGB
	Description string
	Correct     bool
}

// NewCard builds a card for c, filling blank fields with placeholders.
func NewCard(c catalog.Color) Card {
	card := Card{
		Name:        c.Name,
		Family:      orBlank(c.Family),
		Munsell:     orBlank(c.Munsell),
		PCCS:        orBlank(c.PCCS),
		RGB:         UnknownRGB,
		Description: c.Description,
	}
	if c.RGB != nil {
		rgb := *c.RGB
		card.RGB = rgb.String()
		card.Hex = rgb.Hex()
		card.Swatch = &rgb
	}
	return card
}

func orBlank(s string) string {
	if s == "" {
		return Blank
	}
	return s
}

// Result describes the outcome of the last submitted answer.
type Result struct {
	Correct bool
	Chosen  string
	Answer  string

	// Cards has the correct record first, then every other offered choice
	// in display order.
	Cards []Card
}

// View is a render-ready projection of the session.
type View struct {
	Phase   Phase
	Label   string
	Stem    string
	Choices []string

	Asked   int
	Correct int

	Position int
	Total    int
	Cycle    int

	Result  *Result
	Message string
}

// View projects the session state. It does not mutate the session.
func (s *Session) View() View {
	p := s.gen.Progress()
	v := View{
		Phase:    s.phase,
		Asked:    s.score.Asked(),
		Correct:  s.score.Correct(),
		Position: p.Position,
		Total:    p.Total,
		Cycle:    p.Cycle,
	}

	switch s.phase {
	case PhaseLoading:
		v.Label = "Q—"
		v.Message = "Loading…"
	case PhaseExhausted:
		v.Label = "Q—"
		v.Message = ExhaustedMessage
	case PhaseReady, PhaseAnswered:
		q := s.current
		n := v.Asked + 1
		if s.phase == PhaseAnswered {
			n = v.Asked
		}
		v.Label = fmt.Sprintf("Q%d", n)
		v.Stem = q.Stem
		if v.Stem == "" {
			v.Stem = NoDescription
		}
		v.Choices = append([]string(nil), q.Choices...)
		if s.phase == PhaseAnswered {
			v.Result = s.result()
		}
	}
	return v
}

func (s *Session) result() *Result {
	q := s.current
	r := &Result{
		Correct: s.lastOK,
		Chosen:  s.chosen,
		Answer:  q.Answer,
	}

	answer := NewCard(q.Color)
	answer.Correct = true
	r.Cards = append(r.Cards, answer)

	for _, name := range q.Choices {
		if name == q.Answer {
			continue
		}
		if c, ok := s.catalog.ByName(name); ok {
			r.Cards = append(r.Cards, NewCard(c))
		}
	}
	return r
}
