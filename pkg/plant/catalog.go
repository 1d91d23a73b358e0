package plant

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"growsphere/entities"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var (
	ErrNotFound     = errors.New("plant not found")
	ErrInvalidPlant = errors.New("invalid plant")
)

// ValidationError lists the fields of a plant draft that failed checks.
// It matches ErrInvalidPlant under errors.Is.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid plant: missing or invalid %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidPlant }

// Defaults decodes the built-in catalog. Every call returns a fresh slice.
func Defaults() []entities.Plant {
	var out []entities.Plant
	if err := yaml.Unmarshal(defaultsYAML, &out); err != nil {
		panic(fmt.Sprintf("plant: bad embedded catalog: %v", err))
	}
	for i := range out {
		out[i].Default = true
	}
	return out
}

// PlaceholderImage is the image given to plants added without one.
func PlaceholderImage(name string) string {
	return "/placeholder.svg?height=200&width=200&query=" + name + " crop plant growing in field"
}
