package serviceImp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"growsphere/entities"
	"growsphere/pkg/logger"
	"growsphere/pkg/metrics"
	"growsphere/pkg/research"
	"growsphere/pkg/research/service"
	"growsphere/pkg/sim"
)

// ResearchLatency and ImageLatency are the simulated delays of each step.
var (
	ResearchLatency = sim.Latency{Base: 1500 * time.Millisecond}
	ImageLatency    = sim.Latency{Base: 1500 * time.Millisecond}
)

type mockImages struct{ latency sim.Latency }

func NewMockImageSearch(l sim.Latency) service.ImageSearcher { return &mockImages{l} }

func (m *mockImages) Search(ctx context.Context, name string) (string, error) {
	defer metrics.ObserveSince("image_search", time.Now())
	if err := m.latency.Wait(ctx); err != nil {
		return "", err
	}
	return research.ImageFor(name), nil
}

type mockResearcher struct {
	table   research.Table
	images  service.ImageSearcher
	latency sim.Latency
	log     *slog.Logger
}

func NewMockResearcher(t research.Table, images service.ImageSearcher, l sim.Latency) service.Researcher {
	return &mockResearcher{table: t, images: images, latency: l, log: logger.L().With("component", "research")}
}

func (m *mockResearcher) Lookup(ctx context.Context, name string) (entities.PlantFacts, error) {
	if strings.TrimSpace(name) == "" {
		return entities.PlantFacts{}, research.ErrEmptyName
	}
	defer metrics.ObserveSince("research", time.Now())

	img, err := m.images.Search(ctx, name)
	if err != nil {
		return entities.PlantFacts{}, fmt.Errorf("image search: %w", err)
	}
	if err := m.latency.Wait(ctx); err != nil {
		return entities.PlantFacts{}, err
	}

	facts, ok := m.table.Match(name)
	if !ok {
		facts = research.Generic(name)
	}
	facts.Image = img
	m.log.Debug("plant researched", "query", name, "match", facts.Name, "confidence", facts.Confidence)
	return facts, nil
}
