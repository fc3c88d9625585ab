package session

import "time"

// Summary holds the data displayed when a session ends.
type Summary struct {
	SessionID   string
	Duration    time.Duration
	Asked       int
	Correct     int
	Accuracy    float64
	Cycles      int
	CatalogSize int
}

// Summary builds the end-of-session report.
func (s *Session) Summary() *Summary {
	var d time.Duration
	if !s.startedAt.IsZero() {
		d = s.now().Sub(s.startedAt)
	}
	return &Summary{
		SessionID:   s.id,
		Duration:    d,
		Asked:       s.score.Asked(),
		Correct:     s.score.Correct(),
		Accuracy:    s.score.Accuracy(),
		Cycles:      s.gen.Progress().Cycle,
		CatalogSize: s.catalog.Len(),
	}
}
