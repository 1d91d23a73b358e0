package service

import (
	"context"
	"io"

	"growsphere/entities"
)

// Researcher looks up growing facts for a plant name.
type Researcher interface {
	Lookup(ctx context.Context, name string) (entities.PlantFacts, error)
}

// ImageSearcher finds a representative picture for a plant.
type ImageSearcher interface {
	Search(ctx context.Context, name string) (string, error)
}

type SearchLink struct {
	Query string `json:"query"`
	URL   string `json:"url"`
}

type ResearchService interface {
	Researcher
	// Import reads a care-sheet HTML page into facts. name overrides the
	// page title when set.
	Import(r io.Reader, name string) (entities.PlantFacts, error)
	ImportURL(ctx context.Context, url, name string) (entities.PlantFacts, error)
	SearchLink(query string) (SearchLink, error)
	SearchHistory() []string
}
