package session

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseLoading   Phase = iota // Catalog loaded, no question generated yet
	PhaseReady                  // A question is pending an answer
	PhaseAnswered               // The current question has been scored
	PhaseExhausted              // Every record was asked in this cycle
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseAnswered:
		return "answered"
	case PhaseExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}
