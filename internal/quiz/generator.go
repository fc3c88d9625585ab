package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/iroquiz/internal/catalog"
)

var (
	// ErrExhausted is returned by Next once every record has been asked in
	// the current cycle.
	ErrExhausted = errors.New("all questions in this cycle have been asked")

	// ErrCatalogTooSmall is returned when the catalog cannot supply
	// Config.MinChoices distinct names.
	ErrCatalogTooSmall = errors.New("catalog has too few names for a multiple-choice question")
)

// Generator hands out questions over a catalog in shuffled order.
type Generator struct {
	catalog *catalog.Catalog
	names   []string
	cfg     Config
	rng     *rand.Rand
	order   *Order
	choices int
}

// New creates a Generator and draws the first question order.
// The choice count is Config.Choices, reduced to the catalog size when the
// catalog is smaller.
func New(cat *catalog.Catalog, cfg Config, rng *rand.Rand) (*Generator, error) {
	if cfg.Choices <= 0 {
		cfg.Choices = DefaultConfig().Choices
	}
	if cfg.MinChoices <= 0 {
		cfg.MinChoices = 1
	}
	if cfg.StemSentences <= 0 {
		cfg.StemSentences = DefaultConfig().StemSentences
	}
	if rng == nil {
		rng = NewRand(0)
	}

	n := cat.Len()
	if n < cfg.MinChoices {
		return nil, fmt.Errorf("%w: %d names, need at least %d", ErrCatalogTooSmall, n, cfg.MinChoices)
	}

	return &Generator{
		catalog: cat,
		names:   cat.Names(),
		cfg:     cfg,
		rng:     rng,
		order:   NewOrder(n, rng),
		choices: min(cfg.Choices, n),
	}, nil
}

// ChoiceCount returns the number of choices every question carries.
func (g *Generator) ChoiceCount() int {
	return g.choices
}

// Catalog returns the catalog questions are drawn from.
func (g *Generator) Catalog() *catalog.Catalog {
	return g.catalog
}

// Progress reports the state of the current cycle.
func (g *Generator) Progress() Progress {
	return Progress{
		Position:  g.order.Position(),
		Total:     g.order.Len(),
		Cycle:     g.order.Cycle(),
		Exhausted: g.order.Exhausted(),
	}
}

// Reshuffle starts a new cycle with a fresh random order.
func (g *Generator) Reshuffle() {
	g.order.Reshuffle(g.catalog.Len(), g.rng)
}

// Next builds the question for the next index in the order. It returns
// ErrExhausted, and marks the order exhausted, when the cycle is used up.
func (g *Generator) Next() (*Question, error) {
	idx, ok := g.order.Next()
	if !ok {
		return nil, ErrExhausted
	}

	target := g.catalog.At(idx)

	choices := make([]string, 0, g.choices)
	choices = append(choices, target.Name)
	choices = append(choices, sampleExcluding(g.rng, g.names, g.choices-1, target.Name)...)
	shuffle(g.rng, choices)

	q := &Question{
		Color:   target,
		Index:   idx,
		Stem:    g.stem(target),
		Choices: choices,
		Answer:  target.Name,
	}

	for _, v := range g.cfg.Validators {
		if verr := v.Validate(q, g.choices); verr != nil {
			return nil, fmt.Errorf("generate question for %q: %w", target.Name, verr)
		}
	}
	return q, nil
}

// stem samples up to StemSentences sentences from the record. Records with
// no split sentences fall back to the description verbatim.
func (g *Generator) stem(c catalog.Color) string {
	pool := c.Sentences
	if len(pool) > catalog.MaxSentences {
		pool = pool[:catalog.MaxSentences]
	}
	if len(pool) == 0 {
		return c.Description
	}
	return strings.Join(sampleInOrder(g.rng, pool, g.cfg.StemSentences), "\n")
}
