package serviceImp

import (
	"context"
	"io"
	"net/url"
	"strings"
	"sync"

	"growsphere/entities"
	"growsphere/pkg/research"
	"growsphere/pkg/research/service"
)

const searchHistoryLimit = 5

type researchSvc struct {
	service.Researcher

	mu      sync.Mutex
	history []string
}

func NewResearchService(r service.Researcher) service.ResearchService {
	return &researchSvc{Researcher: r}
}

func (s *researchSvc) Import(r io.Reader, name string) (entities.PlantFacts, error) {
	return parseCareSheet(r, name)
}

func (s *researchSvc) ImportURL(ctx context.Context, u, name string) (entities.PlantFacts, error) {
	body, err := fetchPage(ctx, u)
	if err != nil {
		return entities.PlantFacts{}, err
	}
	defer body.Close()
	return parseCareSheet(body, name)
}

// GoogleSearchURL builds the web search link for a plant growing guide.
func GoogleSearchURL(query string) string {
	q := url.QueryEscape(query + " plant growing guide farming")
	return "https://www.google.com/search?q=" + strings.ReplaceAll(q, "+", "%20")
}

// SearchLink records query at the front of the history, deduplicated and
// capped at five entries.
func (s *researchSvc) SearchLink(query string) (service.SearchLink, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return service.SearchLink{}, research.ErrEmptyName
	}
	s.mu.Lock()
	next := []string{query}
	for _, h := range s.history {
		if h != query && len(next) < searchHistoryLimit {
			next = append(next, h)
		}
	}
	s.history = next
	s.mu.Unlock()
	return service.SearchLink{Query: query, URL: GoogleSearchURL(query)}, nil
}

func (s *researchSvc) SearchHistory() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.history...)
}
