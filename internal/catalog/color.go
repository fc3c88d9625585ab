package catalog

import "fmt"

// MaxSentences is the maximum number of sentences kept per description.
const MaxSentences = 5

// RGB is a parsed 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the color as "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Color is one normalized catalog entry.
type Color struct {
	// Name is the unique key and the answer text for questions.
	Name string

	// Family is the systematic color name (系統色名).
	Family string

	// Munsell is the Munsell notation, e.g. "7.5R 4/14".
	Munsell string

	// PCCS is the PCCS tone code.
	PCCS string

	// RGB is nil when the source value was missing or could not be parsed.
	RGB *RGB

	// Description is the trimmed free-text description.
	Description string

	// Sentences holds up to MaxSentences units split from Description.
	Sentences []string

	// Source is the location the record was loaded from.
	Source string
}

// HasRGB reports whether the record carries a parsed color value.
func (c Color) HasRGB() bool {
	return c.RGB != nil
}
