package serviceImp

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"growsphere/entities"
	"growsphere/pkg/logger"
	"growsphere/pkg/metrics"
	planrepo "growsphere/pkg/plan/repository"
	"growsphere/pkg/plan/service"
	"growsphere/pkg/plant"
	"growsphere/pkg/schedule"
	"growsphere/pkg/store"
)

type plantGetter interface {
	Get(id string) (*entities.Plant, error)
}

type PlanSvc struct {
	plants  plantGetter
	history planrepo.HistoryRepository
	now     func() time.Time
	log     *slog.Logger
}

func NewPlanService(plants plantGetter, h planrepo.HistoryRepository) *PlanSvc {
	return &PlanSvc{plants: plants, history: h, now: time.Now, log: logger.L().With("component", "plan")}
}

var _ service.PlanService = (*PlanSvc)(nil)

func (s *PlanSvc) build(plantID, month string) (*service.Calendar, error) {
	if strings.TrimSpace(month) == "" {
		metrics.RecordSchedule("invalid")
		return nil, service.ErrMissingMonth
	}
	p, err := s.plants.Get(plantID)
	if err != nil {
		if errors.Is(err, plant.ErrNotFound) {
			metrics.RecordSchedule("not_found")
		} else {
			metrics.RecordSchedule("error")
		}
		return nil, err
	}
	plan, err := schedule.Generate(p.GrowthPeriod, month)
	if err != nil {
		metrics.RecordSchedule("invalid")
		return nil, err
	}
	metrics.RecordSchedule("ok")
	return &service.Calendar{Plant: *p, Plan: plan}, nil
}

// Generate builds the calendar and records it in history. A failed history
// write is logged; the calendar is still returned.
func (s *PlanSvc) Generate(plantID, farmingMonth string) (*service.Calendar, error) {
	cal, err := s.build(plantID, farmingMonth)
	if err != nil {
		return nil, err
	}
	n, err := s.history.Prepend(entities.HistoryEntry{
		PlantID:      cal.Plant.ID,
		PlantName:    cal.Plant.Name,
		FarmingMonth: farmingMonth,
		Timestamp:    s.now().UTC(),
	}, service.HistoryLimit)
	if err != nil {
		s.log.Warn("history write failed", "plant_id", plantID, "error", err)
	} else {
		metrics.SetHistorySize(n)
	}
	s.log.Info("calendar generated", "plant_id", plantID, "month", farmingMonth,
		"weeks", cal.Plan.TotalWeeks, "activities", len(cal.Plan.Activities))
	return cal, nil
}

func (s *PlanSvc) Preview(plantID, farmingMonth string) (*service.Calendar, error) {
	return s.build(plantID, farmingMonth)
}

func (s *PlanSvc) History() ([]entities.HistoryEntry, error) {
	list, err := s.history.List()
	if errors.Is(err, store.ErrCorrupt) {
		s.log.Warn("history unreadable, returning empty", "error", err)
		return []entities.HistoryEntry{}, nil
	}
	return list, err
}

func (s *PlanSvc) ClearHistory() error {
	if err := s.history.Clear(); err != nil {
		return err
	}
	metrics.SetHistorySize(0)
	return nil
}
