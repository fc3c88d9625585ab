package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences_Japanese(t *testing.T) {
	got := SplitSentences("赤い花。美しい。")
	assert.Equal(t, []string{"赤い花。", "美しい。"}, got)
}

func TestSplitSentences_Cases(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", " \t\n　", nil},
		{"trailing fragment", "紅の色。やや紫みの赤", []string{"紅の色。", "やや紫みの赤"}},
		{"mixed marks", "本当？ はい！ そうです。", []string{"本当？", "はい！", "そうです。"}},
		{"ascii marks", "Is it red? Yes! Quite.", []string{"Is it red?", "Yes!", "Quite."}},
		{"fullwidth period", "藍色．深い青．", []string{"藍色．", "深い青．"}},
		{"collapses whitespace", "一つ目\n\n の文。  二つ目。", []string{"一つ目 の文。", "二つ目。"}},
		{"consecutive marks", "えっ！？本当。", []string{"えっ！", "？", "本当。"}},
		{
			"keeps first five",
			"一。二。三。四。五。六。七。",
			[]string{"一。", "二。", "三。", "四。", "五。"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.in))
		})
	}
}

func TestSplitSentences_ChunkFallback(t *testing.T) {
	text := strings.Repeat("あ", 40)
	got := SplitSentences(text)
	assert.Equal(t, []string{strings.Repeat("あ", 34), strings.Repeat("あ", 6)}, got)

	long := strings.Repeat("い", 34*7)
	got = SplitSentences(long)
	assert.Len(t, got, MaxSentences)
	for _, c := range got {
		assert.Equal(t, 34, len([]rune(c)))
	}
}

func TestSplitSentences_Properties(t *testing.T) {
	inputs := []string{
		"赤い花。美しい。",
		"古くから親しまれた色。染料は紅花。 江戸時代に流行した！",
		"A short one. Another?  And the last!",
		"末尾に句点なし。続きの文",
		"短い",
		strings.Repeat("長い説明文。", 3),
	}

	for _, in := range inputs {
		parts := SplitSentences(in)
		if len(parts) > MaxSentences {
			t.Errorf("SplitSentences(%q) returned %d parts", in, len(parts))
		}
		for _, p := range parts {
			if p == "" || p != strings.TrimSpace(p) {
				t.Errorf("SplitSentences(%q) part %q is empty or untrimmed", in, p)
			}
		}
		if len(parts) < MaxSentences {
			normalized := strings.ReplaceAll(strings.Join(strings.Fields(in), " "), " ", "")
			joined := strings.ReplaceAll(strings.Join(parts, ""), " ", "")
			if joined != normalized {
				t.Errorf("concatenation %q does not reconstruct %q", joined, normalized)
			}
		}
	}
}
