package serviceImp

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"growsphere/entities"
	"growsphere/pkg/logger"
	"growsphere/pkg/plant"
	repo "growsphere/pkg/plant/repository"
	"growsphere/pkg/plant/service"
	"growsphere/pkg/schedule"
	"growsphere/pkg/store"
)

// historyPurger drops the calendar history of a removed plant.
type historyPurger interface {
	RemoveByPlant(plantID string) (int, error)
}

type plantSvc struct {
	r       repo.PlantRepository
	history historyPurger
	log     *slog.Logger
}

func NewPlantService(r repo.PlantRepository, h historyPurger) service.PlantService {
	return &plantSvc{r: r, history: h, log: logger.L().With("component", "plant")}
}

// all returns the visible defaults followed by the custom plants. Malformed
// stored values are logged and read as empty.
func (s *plantSvc) all() ([]entities.Plant, error) {
	hidden, err := s.r.HiddenDefaults()
	if err != nil {
		if !errors.Is(err, store.ErrCorrupt) {
			return nil, err
		}
		s.log.Warn("hidden plant list unreadable, showing all defaults", "error", err)
	}
	custom, err := s.r.ListCustom()
	if err != nil {
		if !errors.Is(err, store.ErrCorrupt) {
			return nil, err
		}
		s.log.Warn("custom plant list unreadable, ignoring", "error", err)
		custom = nil
	}

	out := make([]entities.Plant, 0, 8+len(custom))
	for _, p := range plant.Defaults() {
		if !hidden[p.ID] {
			out = append(out, p)
		}
	}
	return append(out, custom...), nil
}

func (s *plantSvc) List(query string) ([]entities.Plant, error) {
	list, err := s.all()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list, nil
	}
	out := list[:0]
	for _, p := range list {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *plantSvc) Get(id string) (*entities.Plant, error) {
	list, err := s.all()
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", plant.ErrNotFound, id)
}

func validate(p *entities.Plant) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Climate = strings.TrimSpace(p.Climate)
	p.Soil = strings.TrimSpace(p.Soil)
	p.Fertilizer = strings.TrimSpace(p.Fertilizer)
	p.Image = strings.TrimSpace(p.Image)

	var bad []string
	for _, f := range []struct{ name, val string }{
		{"name", p.Name}, {"climate", p.Climate}, {"soil", p.Soil}, {"fertilizer", p.Fertilizer},
	} {
		if f.val == "" {
			bad = append(bad, f.name)
		}
	}
	if p.GrowthPeriod < 1 || p.GrowthPeriod > schedule.MaxGrowthPeriodMonths {
		bad = append(bad, "growth_period")
	}
	if len(bad) > 0 {
		return &plant.ValidationError{Fields: bad}
	}
	return nil
}

func (s *plantSvc) Add(draft entities.Plant) (*entities.Plant, error) {
	p := draft
	if err := validate(&p); err != nil {
		return nil, err
	}
	p.ID = uuid.NewString()
	p.Default = false
	if p.Image == "" {
		p.Image = plant.PlaceholderImage(p.Name)
	}
	if err := s.r.Create(&p); err != nil {
		return nil, err
	}
	s.log.Info("plant added", "plant_id", p.ID, "name", p.Name)
	return &p, nil
}

func (s *plantSvc) Remove(id string) error {
	p, err := s.Get(id)
	if err != nil {
		return err
	}
	if p.Default {
		err = s.r.HideDefault(id)
	} else {
		_, err = s.r.Delete(id)
	}
	if err != nil {
		return err
	}
	if s.history != nil {
		if n, err := s.history.RemoveByPlant(id); err != nil {
			s.log.Warn("history purge failed", "plant_id", id, "error", err)
		} else if n > 0 {
			s.log.Info("history purged", "plant_id", id, "entries", n)
		}
	}
	return nil
}

func (s *plantSvc) RestoreDefaults() error { return s.r.ClearHidden() }
