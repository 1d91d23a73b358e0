package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growsphere/pkg/sim"
)

func TestResponses_MatchOrder(t *testing.T) {
	book, err := LoadResponses()
	require.NoError(t, err)
	require.Len(t, book.Rules, 13)

	cases := map[string]string{
		"How do I grow TOMATOES?": "tomato",
		"rice with pests":         "rice",
		"best maize spacing":      "corn",
		"aphids on my beans":      "pests",
		"how much nitrogen":       "fertilizer",
		"is my soil too acidic":   "soil",
		"how often to water":      "watering",
		"garden layout":           "growing",
		"is it ripe":              "harvest",
		"powdery mold on leaves":  "disease",
		"when to sow beans":       "seasons",
	}
	for q, want := range cases {
		_, got := book.Match(q)
		assert.Equal(t, want, got, q)
	}

	answer, got := book.Match("xyz?")
	assert.Empty(t, got)
	assert.Contains(t, answer, `Thank you for your question: "xyz?"`)
	assert.NotEmpty(t, book.Fallback)
}

func TestMock_Ask(t *testing.T) {
	book, err := LoadResponses()
	require.NoError(t, err)
	c := NewMock(book, sim.Latency{})

	a, err := c.Ask(context.Background(), "potato tips")
	require.NoError(t, err)
	assert.Contains(t, a, "Potato Growing Guide")

	_, err = c.Ask(context.Background(), " ")
	assert.ErrorIs(t, err, ErrEmptyQuestion)

	slow := NewMock(book, sim.Latency{Base: time.Hour, Scale: 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = slow.Ask(ctx, "potato")
	assert.ErrorIs(t, err, context.Canceled)
}
