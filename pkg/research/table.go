package research

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"growsphere/entities"
)

//go:embed plants.yaml
var tableYAML []byte

var ErrEmptyName = errors.New("plant name is required")

// GenericConfidence is reported for names the table does not know.
const GenericConfidence = 0.3

type Entry struct {
	Key                 string `yaml:"key"`
	entities.PlantFacts `yaml:",inline"`
}

// Table is the ordered research lookup table.
type Table []Entry

func LoadTable() (Table, error) {
	var t Table
	if err := yaml.Unmarshal(tableYAML, &t); err != nil {
		return nil, fmt.Errorf("research table: %w", err)
	}
	return t, nil
}

// Match finds facts for name: exact key first, then the first entry whose
// key contains the query, whose key is contained in it, or whose
// display name contains it.
func (t Table) Match(name string) (entities.PlantFacts, bool) {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return entities.PlantFacts{}, false
	}
	for _, e := range t {
		if e.Key == q {
			return e.PlantFacts, true
		}
	}
	for _, e := range t {
		if strings.Contains(e.Key, q) || strings.Contains(q, e.Key) ||
			strings.Contains(strings.ToLower(e.Name), q) {
			return e.PlantFacts, true
		}
	}
	return entities.PlantFacts{}, false
}

// Generic is the low-confidence result for unknown plants.
func Generic(name string) entities.PlantFacts {
	return entities.PlantFacts{
		Name:            name,
		ScientificName:  "Scientific name not found",
		Description:     name + " is a plant that requires specific growing conditions. Please research more details for optimal cultivation.",
		Climate:         "Research specific climate requirements for this plant",
		Soil:            "Research specific soil requirements for this plant",
		Fertilizer:      "Research specific fertilizer requirements for this plant",
		GrowthPeriod:    3,
		PlantingSeasons: []string{"Spring", "Summer"},
		HarvestTime:     "Research specific harvest timing",
		CommonDiseases:  []string{"Research common diseases"},
		Tips:            []string{"Research growing tips"},
		Confidence:      GenericConfidence,
	}
}

// ImageFor is the image the simulated image search returns for name.
func ImageFor(name string) string {
	return "/placeholder.svg?height=400&width=600&query=" + name + " plant growing in field agriculture"
}
