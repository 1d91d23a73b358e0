package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"growsphere/entities"
	"growsphere/pkg/appstate"
	"growsphere/pkg/diagnostics/service"
	"growsphere/pkg/logger"
	settings "growsphere/pkg/settings/service"
	"growsphere/pkg/sim"
	"growsphere/pkg/store"
	"growsphere/pkg/store/repository"
)

var StepLatency = sim.Latency{Base: 500 * time.Millisecond}

const (
	probeValue = "test-value"
	imageMask  = "[IMAGE_URL]"
)

var navigationViews = []appstate.View{
	appstate.ViewHome, appstate.ViewPlantInfo, appstate.ViewCalendar, appstate.ViewFeatures, appstate.ViewSettings,
}

type plantCatalog interface {
	List(query string) ([]entities.Plant, error)
	Add(draft entities.Plant) (*entities.Plant, error)
}

type historySource interface {
	History() ([]entities.HistoryEntry, error)
}

type stateSource interface {
	State() appstate.State
}

type check struct {
	name string
	run  func() (bool, string)
}

type diagSvc struct {
	plants  plantCatalog
	history historySource
	state   stateSource
	kv      repository.KVRepository
	latency sim.Latency
	now     func() time.Time
	log     *slog.Logger

	mu   sync.Mutex
	last []service.Result
}

func NewDiagnosticsService(p plantCatalog, h historySource, st stateSource, kv repository.KVRepository, l sim.Latency) service.DiagnosticsService {
	return &diagSvc{
		plants:  p,
		history: h,
		state:   st,
		kv:      kv,
		latency: l,
		now:     time.Now,
		log:     logger.L().With("component", "diagnostics"),
	}
}

func (s *diagSvc) guard() error {
	if !s.state.State().TestMode {
		return service.ErrTestModeOff
	}
	return nil
}

func (s *diagSvc) checks(plants []entities.Plant, st appstate.State) []check {
	return []check{
		{"Plant Data Integrity", func() (bool, string) {
			for _, p := range plants {
				if p.ID == "" || p.Name == "" || p.Climate == "" || p.Soil == "" || p.Fertilizer == "" {
					return false, "plant data validation failed"
				}
			}
			if len(plants) == 0 {
				return false, "plant data validation failed"
			}
			return true, fmt.Sprintf("all %d plants have valid data", len(plants))
		}},
		{"Local Storage", s.probeStorage},
		{"Navigation System", func() (bool, string) {
			for _, v := range navigationViews {
				if st.View == v {
					return true, fmt.Sprintf("navigation working (current: %s)", v)
				}
			}
			return false, fmt.Sprintf("invalid view: %s", st.View)
		}},
		{"Theme System", func() (bool, string) {
			if settings.ValidTheme(st.Theme) {
				return true, fmt.Sprintf("theme system working (%s)", st.Theme)
			}
			return false, fmt.Sprintf("invalid theme: %s", st.Theme)
		}},
		{"Search Functionality", func() (bool, string) {
			for _, p := range plants {
				if strings.TrimSpace(p.Name) == "" {
					return false, "some plants missing searchable data"
				}
			}
			return true, "all plants have searchable names"
		}},
	}
}

func (s *diagSvc) probeStorage() (bool, string) {
	if err := s.kv.Put(store.KeyStorageProbe, probeValue); err != nil {
		return false, fmt.Sprintf("local storage error: %v", err)
	}
	got, _, err := s.kv.Get(store.KeyStorageProbe)
	if derr := s.kv.Delete(store.KeyStorageProbe); derr != nil && err == nil {
		err = derr
	}
	if err != nil {
		return false, fmt.Sprintf("local storage error: %v", err)
	}
	if got != probeValue {
		return false, "local storage failed"
	}
	return true, "local storage working"
}

func (s *diagSvc) RunAll(ctx context.Context) (service.Report, error) {
	if err := s.guard(); err != nil {
		return service.Report{}, err
	}
	plants, err := s.plants.List("")
	if err != nil {
		return service.Report{}, err
	}
	var rep service.Report
	for _, c := range s.checks(plants, s.state.State()) {
		if err := s.latency.Wait(ctx); err != nil {
			return rep, err
		}
		ok, msg := c.run()
		rep.Results = append(rep.Results, service.Result{Name: c.name, Passed: ok, Message: msg, Timestamp: s.now()})
		if ok {
			rep.Passed++
		}
	}
	rep.Total = len(rep.Results)
	s.mu.Lock()
	s.last = rep.Results
	s.mu.Unlock()
	s.log.Info("self-checks finished", "passed", rep.Passed, "total", rep.Total)
	return rep, nil
}

func (s *diagSvc) Export() (service.Export, error) {
	if err := s.guard(); err != nil {
		return service.Export{}, err
	}
	plants, err := s.plants.List("")
	if err != nil {
		return service.Export{}, err
	}
	for i := range plants {
		plants[i].Image = imageMask
	}
	hist, err := s.history.History()
	if err != nil {
		return service.Export{}, err
	}
	storage := map[string]string{}
	for _, k := range []string{store.KeyCustomPlants, store.KeyHiddenPlants, store.KeyHistory, store.KeySettings} {
		_, found, err := s.kv.Get(k)
		if err != nil {
			return service.Export{}, err
		}
		storage[k] = "Missing"
		if found {
			storage[k] = "Present"
		}
	}
	s.mu.Lock()
	last := append([]service.Result(nil), s.last...)
	s.mu.Unlock()
	return service.Export{
		Timestamp:   s.now(),
		State:       s.state.State(),
		Plants:      plants,
		History:     hist,
		TestResults: last,
		Storage:     storage,
	}, nil
}

func (s *diagSvc) AddTestPlant() (*entities.Plant, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.plants.Add(entities.Plant{
		Name:         "Test Plant",
		Climate:      "Test climate",
		Soil:         "Test soil",
		Fertilizer:   "Test fertilizer",
		GrowthPeriod: 1,
	})
}

func (s *diagSvc) SimulateError() error {
	if err := s.guard(); err != nil {
		return err
	}
	err := errors.New("test error for debugging purposes")
	s.log.Error("simulated error", "error", err)
	return err
}
