package quiz

import "github.com/abhisek/iroquiz/internal/catalog"

// Question is one generated multiple-choice question.
type Question struct {
	// Color is the target record; its Name is the correct answer.
	Color catalog.Color

	// Index is the target's position in the catalog.
	Index int

	// Stem is the question text: sampled description sentences joined by
	// newlines. Empty when the record has no description.
	Stem string

	// Choices holds the shuffled names, exactly one of which equals Answer.
	Choices []string

	// Answer is the correct choice.
	Answer string
}

// IsCorrect reports whether choice matches the answer exactly.
func (q *Question) IsCorrect(choice string) bool {
	return choice == q.Answer
}

// HasChoice reports whether choice is one of the offered names.
func (q *Question) HasChoice(choice string) bool {
	for _, c := range q.Choices {
		if c == choice {
			return true
		}
	}
	return false
}

// AnswerIndex returns the position of the answer among the choices, or -1.
func (q *Question) AnswerIndex() int {
	for i, c := range q.Choices {
		if c == q.Answer {
			return i
		}
	}
	return -1
}

// Progress describes how far the current shuffle cycle has been consumed.
type Progress struct {
	// Position is the number of indices consumed in this cycle.
	Position int

	// Total is the catalog size.
	Total int

	// Cycle is the 1-based shuffle cycle number.
	Cycle int

	// Exhausted is set once a question was requested past the end.
	Exhausted bool
}
