package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func press(m MultiChoice, keys ...tea.KeyPressMsg) MultiChoice {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

var (
	keyUp   = tea.KeyPressMsg{Code: tea.KeyUp}
	keyDown = tea.KeyPressMsg{Code: tea.KeyDown}
)

func TestMultiChoice_StartsEmpty(t *testing.T) {
	m := NewMultiChoice([]string{"紅", "藍", "萌黄", "山吹"})
	if _, ok := m.Choice(); ok {
		t.Error("expected no selection")
	}
}

func TestMultiChoice_Navigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyPressMsg
		want string
	}{
		{"down selects first", []tea.KeyPressMsg{keyDown}, "紅"},
		{"up from nothing selects last", []tea.KeyPressMsg{keyUp}, "山吹"},
		{"down stops at last", []tea.KeyPressMsg{keyDown, keyDown, keyDown, keyDown, keyDown}, "山吹"},
		{"up stops at first", []tea.KeyPressMsg{keyDown, keyUp, keyUp}, "紅"},
		{"number key", []tea.KeyPressMsg{{Code: '3', Text: "3"}}, "萌黄"},
		{"vim keys", []tea.KeyPressMsg{{Code: 'j', Text: "j"}, {Code: 'j', Text: "j"}, {Code: 'k', Text: "k"}}, "紅"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(NewMultiChoice([]string{"紅", "藍", "萌黄", "山吹"}), tt.keys...)
			got, ok := m.Choice()
			if !ok || got != tt.want {
				t.Errorf("Choice() = %q, %v; want %q", got, ok, tt.want)
			}
		})
	}
}

func TestMultiChoice_NumberOutOfRange(t *testing.T) {
	m := press(NewMultiChoice([]string{"紅", "藍"}), tea.KeyPressMsg{Code: '5', Text: "5"})
	if _, ok := m.Choice(); ok {
		t.Error("out-of-range number should not select")
	}
}

func TestMultiChoice_RevealFreezes(t *testing.T) {
	m := press(NewMultiChoice([]string{"紅", "藍"}), keyDown)
	m.Reveal("藍", "紅")

	m = press(m, keyDown)
	if got, _ := m.Choice(); got != "紅" {
		t.Errorf("selection changed after reveal: %q", got)
	}
	if !m.Revealed() {
		t.Error("expected Revealed")
	}

	view := m.View()
	if !strings.Contains(view, "✓") || !strings.Contains(view, "✗") {
		t.Error("expected correct and incorrect marks in view")
	}
}
