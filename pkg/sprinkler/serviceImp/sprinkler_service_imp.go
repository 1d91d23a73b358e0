package serviceImp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"growsphere/entities"
	"growsphere/pkg/logger"
	"growsphere/pkg/schedule"
	"growsphere/pkg/sprinkler"
	"growsphere/pkg/sprinkler/service"
)

// AutoDurationMinutes is the watering run started by auto mode.
const AutoDurationMinutes = 15

var wateringLabels = []string{"Morning Watering", "Evening Watering"}

type sprinklerSvc struct {
	sampler sprinkler.Sampler
	minute  time.Duration
	now     func() time.Time
	log     *slog.Logger

	mu       sync.Mutex
	reading  entities.SensorReading
	active   bool
	duration int
	endsAt   time.Time
	auto     bool
	timer    *time.Timer
}

// NewSprinklerService runs watering in units of minute, so a demo can use
// one second per minute.
func NewSprinklerService(s sprinkler.Sampler, minute time.Duration) service.SprinklerService {
	return newSvc(s, minute, time.Now)
}

func newSvc(s sprinkler.Sampler, minute time.Duration, now func() time.Time) *sprinklerSvc {
	return &sprinklerSvc{
		sampler: s,
		minute:  minute,
		now:     now,
		auto:    true,
		log:     logger.L().With("component", "sprinkler"),
	}
}

func validDuration(m int) bool { return m >= 5 && m <= 60 && m%5 == 0 }

func (s *sprinklerSvc) statusLocked() service.Status {
	st := service.Status{
		Online:   true,
		Active:   s.active,
		AutoMode: s.auto,
		Reading:  s.reading,
	}
	if s.active {
		st.DurationMinutes = s.duration
		end := s.endsAt
		st.EndsAt = &end
	}
	now := s.now()
	for i, hhmm := range schedule.DailyReminders {
		hm, err := time.Parse("15:04", hhmm)
		if err != nil {
			continue
		}
		at := time.Date(now.Year(), now.Month(), now.Day(), hm.Hour(), hm.Minute(), 0, 0, now.Location())
		label := hhmm
		if i < len(wateringLabels) {
			label = wateringLabels[i]
		}
		st.Schedule = append(st.Schedule, service.ScheduledWatering{Label: label, Time: hhmm, Done: !now.Before(at)})
	}
	return st
}

func (s *sprinklerSvc) Status() service.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statusLocked()
}

func (s *sprinklerSvc) startLocked(minutes int, reason string) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.active = true
	s.duration = minutes
	d := time.Duration(minutes) * s.minute
	s.endsAt = s.now().Add(d)
	var t *time.Timer
	t = time.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.timer != t {
			return
		}
		s.stopLocked("timer")
	})
	s.timer = t
	s.log.Info("watering started", "minutes", minutes, "reason", reason)
}

func (s *sprinklerSvc) stopLocked(reason string) {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.active {
		s.log.Info("watering stopped", "reason", reason)
	}
	s.active = false
	s.duration = 0
	s.endsAt = time.Time{}
}

func (s *sprinklerSvc) Start(minutes int) (service.Status, error) {
	if !validDuration(minutes) {
		return s.Status(), fmt.Errorf("%w: got %d", sprinkler.ErrInvalidDuration, minutes)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startLocked(minutes, "manual")
	return s.statusLocked(), nil
}

func (s *sprinklerSvc) Stop() service.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked("manual")
	return s.statusLocked()
}

func (s *sprinklerSvc) SetAutoMode(on bool) service.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auto = on
	return s.statusLocked()
}

func (s *sprinklerSvc) Poll(ctx context.Context) error {
	r, err := s.sampler.Sample(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reading = r
	if s.auto && !s.active && r.SoilMoisturePct < sprinkler.MoistureLow {
		s.startLocked(AutoDurationMinutes, "low moisture")
	}
	return nil
}

func (s *sprinklerSvc) Run(ctx context.Context, interval time.Duration) {
	if err := s.Poll(ctx); err != nil && ctx.Err() == nil {
		s.log.Warn("sensor poll failed", "error", err)
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			s.stopLocked("shutdown")
			s.mu.Unlock()
			return
		case <-t.C:
			if err := s.Poll(ctx); err != nil && ctx.Err() == nil {
				s.log.Warn("sensor poll failed", "error", err)
			}
		}
	}
}
