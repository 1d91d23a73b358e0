package sprinkler

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"growsphere/entities"
	"growsphere/pkg/metrics"
)

var ErrInvalidDuration = errors.New("duration must be 5-60 minutes in steps of 5")

const (
	MoistureLow    = 30.0
	MoistureMedium = 60.0
)

// Sampler reads the soil and air sensors.
type Sampler interface {
	Sample(ctx context.Context) (entities.SensorReading, error)
}

// MoistState classifies a soil moisture percentage.
func MoistState(pct float64) string {
	switch {
	case pct < MoistureLow:
		return "Low"
	case pct < MoistureMedium:
		return "Medium"
	default:
		return "Good"
	}
}

func clamp(v, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, v)) }

func round1(v float64) float64 { return math.Round(v*10) / 10 }

// Simulated is a random-walk sensor. Each Sample moves the previous reading.
type Simulated struct {
	mu  sync.Mutex
	rng *rand.Rand
	cur entities.SensorReading
	now func() time.Time
}

func NewSimulated(rng *rand.Rand) *Simulated {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulated{
		rng: rng,
		now: time.Now,
		cur: entities.SensorReading{SoilMoisturePct: 45, TemperatureC: 24, HumidityPct: 68, BatteryPct: 85},
	}
}

func (s *Simulated) Sample(ctx context.Context) (entities.SensorReading, error) {
	if err := ctx.Err(); err != nil {
		return entities.SensorReading{}, err
	}
	defer metrics.ObserveSince("sensor", time.Now())
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.cur
	c.SoilMoisturePct = clamp(c.SoilMoisturePct+(s.rng.Float64()-0.5)*5, 20, 80)
	c.TemperatureC = clamp(c.TemperatureC+(s.rng.Float64()-0.5)*2, 15, 35)
	c.HumidityPct = clamp(c.HumidityPct+(s.rng.Float64()-0.5)*3, 40, 90)
	c.BatteryPct = math.Max(0, c.BatteryPct-0.1)
	c.SampledAt = s.now().UTC()

	out := *c
	out.SoilMoisturePct = round1(out.SoilMoisturePct)
	out.TemperatureC = round1(out.TemperatureC)
	out.HumidityPct = round1(out.HumidityPct)
	out.BatteryPct = round1(out.BatteryPct)
	out.MoistState = MoistState(out.SoilMoisturePct)
	return out, nil
}

// Set overrides the current reading. Used by diagnostics and tests.
func (s *Simulated) Set(r entities.SensorReading) {
	s.mu.Lock()
	s.cur = r
	s.mu.Unlock()
}
