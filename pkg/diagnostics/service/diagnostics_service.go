package service

import (
	"context"
	"errors"
	"time"

	"growsphere/entities"
	"growsphere/pkg/appstate"
)

var ErrTestModeOff = errors.New("test mode is off")

type Result struct {
	Name      string    `json:"name"`
	Passed    bool      `json:"passed"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type Report struct {
	Passed  int      `json:"passed"`
	Total   int      `json:"total"`
	Results []Result `json:"results"`
}

// Export is the debug snapshot handed to developers.
type Export struct {
	Timestamp   time.Time               `json:"timestamp"`
	State       appstate.State          `json:"state"`
	Plants      []entities.Plant        `json:"plants"`
	History     []entities.HistoryEntry `json:"history"`
	TestResults []Result                `json:"test_results"`
	Storage     map[string]string       `json:"storage"`
}

type DiagnosticsService interface {
	// RunAll runs every self-check in order.
	RunAll(ctx context.Context) (Report, error)
	Export() (Export, error)
	AddTestPlant() (*entities.Plant, error)
	// SimulateError logs a synthetic failure and returns it.
	SimulateError() error
}
