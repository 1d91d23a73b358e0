// pkg/ai/mock_client.go

package ai

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"growsphere/pkg/metrics"
	"growsphere/pkg/sim"
)

//go:embed responses.yaml
var responsesYAML []byte

// ThinkingLatency is the simulated answer delay: 1.5s plus up to 2s.
var ThinkingLatency = sim.Latency{Base: 1500 * time.Millisecond, Jitter: 2 * time.Second}

type rule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Answer   string   `yaml:"answer"`
}

// Responses is the canned answer book.
type Responses struct {
	Rules    []rule `yaml:"rules"`
	Default  string `yaml:"default"`
	Fallback string `yaml:"fallback"`
}

func LoadResponses() (*Responses, error) {
	var r Responses
	if err := yaml.Unmarshal(responsesYAML, &r); err != nil {
		return nil, fmt.Errorf("assistant responses: %w", err)
	}
	return &r, nil
}

// Match returns the first rule answer with a keyword contained in the
// question, or the default answer. rule is empty for the default.
func (r *Responses) Match(question string) (answer, rule string) {
	q := strings.ToLower(question)
	for _, ru := range r.Rules {
		for _, k := range ru.Keywords {
			if strings.Contains(q, k) {
				return ru.Answer, ru.Name
			}
		}
	}
	return strings.ReplaceAll(r.Default, "{question}", question), ""
}

type mockClient struct {
	book    *Responses
	latency sim.Latency
}

func NewMock(book *Responses, l sim.Latency) Client { return &mockClient{book: book, latency: l} }

func (m *mockClient) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion
	}
	defer metrics.ObserveSince("assistant", time.Now())
	if err := m.latency.Wait(ctx); err != nil {
		return "", err
	}
	answer, _ := m.book.Match(question)
	return answer, nil
}
