package service

import (
	"errors"

	"growsphere/entities"
	"growsphere/pkg/plan/types"
)

var ErrMissingMonth = errors.New("farming month is required")

// HistoryLimit caps the stored history.
const HistoryLimit = 10

// Calendar is a generated plan together with the plant it was built for.
type Calendar struct {
	Plant entities.Plant     `json:"plant"`
	Plan  types.CalendarPlan `json:"plan"`
}

type PlanService interface {
	Generate(plantID, farmingMonth string) (*Calendar, error)
	Preview(plantID, farmingMonth string) (*Calendar, error)
	History() ([]entities.HistoryEntry, error)
	ClearHistory() error
}
