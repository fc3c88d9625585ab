package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/iroquiz/internal/catalog"
	"github.com/abhisek/iroquiz/internal/quiz"
)

var (
	// ErrNoSelection is returned when an answer is submitted without a choice.
	ErrNoSelection = errors.New("select one of the choices first")

	// ErrUnknownChoice is returned when the submitted choice is not offered.
	ErrUnknownChoice = errors.New("choice is not part of the current question")

	// ErrWrongPhase is returned when an action is not valid in the current phase.
	ErrWrongPhase = errors.New("action not allowed in the current phase")
)

// Options configures a Session. The zero value is usable.
type Options struct {
	Quiz   quiz.Config
	Rand   *rand.Rand
	Logger *zap.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// Session is the quiz context: catalog, question order, counters and the
// current question. It is not safe for concurrent use.
type Session struct {
	id      string
	catalog *catalog.Catalog
	gen     *quiz.Generator
	logger  *zap.Logger
	now     func() time.Time

	phase   Phase
	score   Score
	current *quiz.Question
	chosen  string
	lastOK  bool

	startedAt time.Time
}

// New creates a session over cat in PhaseLoading. It fails when the
// catalog is too small to build questions.
func New(cat *catalog.Catalog, opts Options) (*Session, error) {
	cfg := opts.Quiz
	if cfg.Choices == 0 && cfg.Validators == nil {
		cfg = quiz.DefaultConfig()
	}
	gen, err := quiz.New(cat, cfg, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	id := uuid.New().String()
	return &Session{
		id:      id,
		catalog: cat,
		gen:     gen,
		logger:  logger.With(zap.String("session_id", id)),
		now:     now,
		phase:   PhaseLoading,
	}, nil
}

// Start generates the first question and moves to PhaseReady.
func (s *Session) Start() error {
	if s.phase != PhaseLoading {
		return fmt.Errorf("start in phase %s: %w", s.phase, ErrWrongPhase)
	}
	s.startedAt = s.now()
	s.logger.Info("session started",
		zap.Int("catalog_size", s.catalog.Len()),
		zap.Int("choices", s.gen.ChoiceCount()),
	)
	return s.advance()
}

// Submit scores choice against the current question and moves to
// PhaseAnswered. An empty or foreign choice leaves the state unchanged.
func (s *Session) Submit(choice string) (bool, error) {
	if s.phase != PhaseReady {
		return false, fmt.Errorf("submit in phase %s: %w", s.phase, ErrWrongPhase)
	}
	if strings.TrimSpace(choice) == "" {
		return false, ErrNoSelection
	}
	if !s.current.HasChoice(choice) {
		return false, fmt.Errorf("%q: %w", choice, ErrUnknownChoice)
	}

	ok := s.score.Record(choice, s.current.Answer)
	s.chosen = choice
	s.lastOK = ok
	s.phase = PhaseAnswered

	s.logger.Debug("answer recorded",
		zap.String("target", s.current.Answer),
		zap.String("choice", choice),
		zap.Bool("correct", ok),
		zap.Int("asked", s.score.Asked()),
		zap.Int("correct_total", s.score.Correct()),
	)
	return ok, nil
}

// Next moves past an answered question to the next one, or to
// PhaseExhausted when the cycle is used up. From PhaseExhausted it
// reshuffles and starts a new cycle.
func (s *Session) Next() error {
	switch s.phase {
	case PhaseAnswered:
		return s.advance()
	case PhaseExhausted:
		s.gen.Reshuffle()
		s.logger.Info("order reshuffled", zap.Int("cycle", s.gen.Progress().Cycle))
		return s.advance()
	default:
		return fmt.Errorf("next in phase %s: %w", s.phase, ErrWrongPhase)
	}
}

func (s *Session) advance() error {
	s.chosen = ""
	s.lastOK = false

	q, err := s.gen.Next()
	if errors.Is(err, quiz.ErrExhausted) {
		s.current = nil
		s.phase = PhaseExhausted
		s.logger.Info("cycle exhausted",
			zap.Int("cycle", s.gen.Progress().Cycle),
			zap.Int("asked", s.score.Asked()),
		)
		return nil
	}
	if err != nil {
		return err
	}

	s.current = q
	s.phase = PhaseReady
	return nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Score returns a copy of the counters.
func (s *Session) Score() Score { return s.score }

// Current returns the live question, or nil outside Ready/Answered.
func (s *Session) Current() *quiz.Question { return s.current }

// Progress reports the position in the current shuffle cycle.
func (s *Session) Progress() quiz.Progress { return s.gen.Progress() }

// Catalog returns the catalog the session draws from.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// ChoiceCount returns the number of choices per question.
func (s *Session) ChoiceCount() int { return s.gen.ChoiceCount() }
