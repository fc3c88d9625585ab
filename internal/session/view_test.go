package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/iroquiz/internal/catalog"
)

func TestView_Phases(t *testing.T) {
	s := testSession(t)

	v := s.View()
	assert.Equal(t, PhaseLoading, v.Phase)
	assert.Equal(t, "Q—", v.Label)

	require.NoError(t, s.Start())
	v = s.View()
	assert.Equal(t, PhaseReady, v.Phase)
	assert.Equal(t, "Q1", v.Label)
	assert.Len(t, v.Choices, 4)
	assert.NotEmpty(t, v.Stem)
	assert.Nil(t, v.Result)
	assert.Equal(t, 1, v.Position)
	assert.Equal(t, 5, v.Total)

	q := s.Current()
	_, err := s.Submit(wrongChoice(q))
	require.NoError(t, err)
	v = s.View()
	assert.Equal(t, PhaseAnswered, v.Phase)
	assert.Equal(t, "Q1", v.Label)
	require.NotNil(t, v.Result)
	assert.False(t, v.Result.Correct)
	assert.Equal(t, q.Answer, v.Result.Answer)
	require.Len(t, v.Result.Cards, 4)
	assert.Equal(t, q.Answer, v.Result.Cards[0].Name)
	assert.True(t, v.Result.Cards[0].Correct)
	for _, c := range v.Result.Cards[1:] {
		assert.False(t, c.Correct)
		assert.NotEqual(t, q.Answer, c.Name)
	}

	require.NoError(t, s.Next())
	assert.Equal(t, "Q2", s.View().Label)
}

func TestView_Exhausted(t *testing.T) {
	s := testSession(t)
	require.NoError(t, s.Start())
	for {
		_, err := s.Submit(s.Current().Answer)
		require.NoError(t, err)
		require.NoError(t, s.Next())
		if s.Phase() == PhaseExhausted {
			break
		}
	}

	v := s.View()
	assert.Equal(t, "Q—", v.Label)
	assert.Equal(t, ExhaustedMessage, v.Message)
	assert.Empty(t, v.Choices)
	assert.Equal(t, 5, v.Asked)
	assert.Equal(t, 5, v.Correct)
}

func TestView_NoDescriptionStem(t *testing.T) {
	cat := catalog.New([]catalog.Color{{Name: "X"}, {Name: "Y"}})
	s, err := New(cat, Options{})
	require.NoError(t, err)
	require.NoError(t, s.Start())
	assert.Equal(t, NoDescription, s.View().Stem)
}

func TestNewCard(t *testing.T) {
	full := NewCard(catalog.Color{
		Name:        "紅",
		Family:      "あざやかな赤",
		Munsell:     "3R 4/14",
		PCCS:        "v2",
		RGB:         &catalog.RGB{R: 215, G: 0, B: 58},
		Description: "紅花で染めた色。",
	})
	assert.Equal(t, "rgb(215, 0, 58)", full.RGB)
	assert.Equal(t, "#D7003A", full.Hex)
	require.NotNil(t, full.Swatch)
	assert.Equal(t, "あざやかな赤", full.Family)

	empty := NewCard(catalog.Color{Name: "空"})
	assert.Equal(t, Blank, empty.Family)
	assert.Equal(t, Blank, empty.Munsell)
	assert.Equal(t, Blank, empty.PCCS)
	assert.Equal(t, UnknownRGB, empty.RGB)
	assert.Empty(t, empty.Hex)
	assert.Nil(t, empty.Swatch)
	assert.Empty(t, empty.Description)
}
