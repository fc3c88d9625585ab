package catalog

import "strings"

// chunkWidth is the fallback chunk size, in runes, for text without
// sentence-ending punctuation.
const chunkWidth = 34

// sentenceEnders are the marks a sentence is split after.
const sentenceEnders = "。．！？!?"

// SplitSentences splits a description into at most MaxSentences trimmed,
// non-empty units. Whitespace runs are collapsed first. Text is split right
// after each sentence-ending mark; text with no such mark is cut into
// chunkWidth-rune pieces instead.
func SplitSentences(text string) []string {
	s := strings.Join(strings.Fields(text), " ")
	if s == "" {
		return nil
	}

	if !strings.ContainsAny(s, sentenceEnders) {
		return chunkRunes(s, chunkWidth, MaxSentences)
	}

	var parts []string
	start := 0
	for i, r := range s {
		if !strings.ContainsRune(sentenceEnders, r) {
			continue
		}
		end := i + len(string(r))
		parts = appendTrimmed(parts, s[start:end])
		start = end
		if len(parts) == MaxSentences {
			return parts
		}
	}
	parts = appendTrimmed(parts, s[start:])
	if len(parts) > MaxSentences {
		parts = parts[:MaxSentences]
	}
	return parts
}

func appendTrimmed(parts []string, p string) []string {
	if p = strings.TrimSpace(p); p != "" {
		parts = append(parts, p)
	}
	return parts
}

func chunkRunes(s string, width, limit int) []string {
	runes := []rune(s)
	var chunks []string
	for len(runes) > 0 && len(chunks) < limit {
		n := min(width, len(runes))
		chunks = appendTrimmed(chunks, string(runes[:n]))
		runes = runes[n:]
	}
	return chunks
}
