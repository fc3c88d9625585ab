package quiz

import "fmt"

// Validator checks a generated question before it is handed out.
type Validator interface {
	// Name returns a short identifier used in error messages.
	Name() string

	// Validate returns nil if the question passes. want is the choice
	// count the generator was configured for.
	Validate(q *Question, want int) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// ChoiceValidator enforces the choice-set invariants: the expected number
// of unique non-empty names, exactly one of which is the target's name.
type ChoiceValidator struct{}

func (v *ChoiceValidator) Name() string { return "choices" }

func (v *ChoiceValidator) Validate(q *Question, want int) *ValidationError {
	if q.Answer == "" {
		return &ValidationError{Validator: v.Name(), Message: "answer is empty"}
	}
	if q.Answer != q.Color.Name {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %q does not match target %q", q.Answer, q.Color.Name),
		}
	}
	if len(q.Choices) != want {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("got %d choices, want %d", len(q.Choices), want),
		}
	}

	seen := make(map[string]bool, len(q.Choices))
	correct := 0
	for _, c := range q.Choices {
		if c == "" {
			return &ValidationError{Validator: v.Name(), Message: "empty choice"}
		}
		if seen[c] {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("duplicate choice %q", c)}
		}
		seen[c] = true
		if c == q.Answer {
			correct++
		}
	}
	if correct != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer appears %d times among choices", correct),
		}
	}
	return nil
}
