package quiz

import (
	"math/rand/v2"
	"time"
)

// Config controls question generation.
type Config struct {
	// Choices is the number of options per question, correct one included.
	Choices int

	// MinChoices is the smallest usable choice count. A catalog with fewer
	// names is rejected; one with fewer than Choices gets a reduced count.
	MinChoices int

	// StemSentences is how many description sentences are sampled into a stem.
	StemSentences int

	// Validators run on every generated question, in order.
	Validators []Validator
}

// DefaultConfig returns a Config with the standard choice layout and
// validator chain.
func DefaultConfig() Config {
	return Config{
		Choices:       4,
		MinChoices:    2,
		StemSentences: 2,
		Validators: []Validator{
			&ChoiceValidator{},
		},
	}
}

// NewRand returns a PCG-backed generator. A zero seed draws one from the
// clock so every run gets an independent order.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}
