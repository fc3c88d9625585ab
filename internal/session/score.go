package session

// Score holds the session counters. Both only ever increase.
type Score struct {
	asked   int
	correct int
}

// Record scores one answer: Asked always increments, Correct only on an
// exact match. It reports whether the answer matched.
func (s *Score) Record(choice, answer string) bool {
	s.asked++
	ok := choice == answer
	if ok {
		s.correct++
	}
	return ok
}

// Asked returns the number of answered questions.
func (s Score) Asked() int { return s.asked }

// Correct returns the number of correct answers.
func (s Score) Correct() int { return s.correct }

// Accuracy returns Correct/Asked, or 0 when nothing was asked.
func (s Score) Accuracy() float64 {
	if s.asked == 0 {
		return 0
	}
	return float64(s.correct) / float64(s.asked)
}
