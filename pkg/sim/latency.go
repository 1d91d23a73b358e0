package sim

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Latency is a simulated provider delay of Base plus up to Jitter. Scale
// stretches both; zero Scale disables the delay.
type Latency struct {
	Base   time.Duration
	Jitter time.Duration
	Scale  float64
}

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Duration picks one delay.
func (l Latency) Duration() time.Duration {
	if l.Scale <= 0 {
		return 0
	}
	d := l.Base
	if l.Jitter > 0 {
		rngMu.Lock()
		d += time.Duration(rng.Int63n(int64(l.Jitter)))
		rngMu.Unlock()
	}
	return time.Duration(float64(d) * l.Scale)
}

// Wait blocks for one delay or until ctx is done.
func (l Latency) Wait(ctx context.Context) error {
	d := l.Duration()
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Scale is 1 when simulated latency is enabled and 0 otherwise.
func Scale(enabled bool) float64 {
	if enabled {
		return 1
	}
	return 0
}
