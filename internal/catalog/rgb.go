package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	hexPattern     = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)
	rgbSeparatorRe = regexp.MustCompile(`[,\s/]+`)
)

// ParseRGB parses "#RRGGBB", "RRGGBB", or three 0-255 integers separated by
// commas, whitespace, or slashes ("R,G,B", "R G B", "R / G / B").
// Full-width digits and punctuation are folded before parsing.
// Returns false when the value cannot be parsed cleanly.
func ParseRGB(raw string) (RGB, bool) {
	s := strings.TrimSpace(norm.NFKC.String(raw))
	if s == "" {
		return RGB{}, false
	}

	if hexPattern.MatchString(s) {
		s = strings.TrimPrefix(s, "#")
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return RGB{}, false
		}
		return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
	}

	var tokens []string
	for _, t := range rgbSeparatorRe.Split(s, -1) {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) != 3 {
		return RGB{}, false
	}

	var ch [3]uint8
	for i, t := range tokens {
		n, err := strconv.ParseUint(t, 10, 8)
		if err != nil {
			return RGB{}, false
		}
		ch[i] = uint8(n)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, true
}
