package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWait_Disabled(t *testing.T) {
	l := Latency{Base: time.Hour}
	assert.Zero(t, l.Duration())
	assert.NoError(t, l.Wait(context.Background()))
}

func TestWait_Cancelled(t *testing.T) {
	l := Latency{Base: time.Hour, Scale: 1}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := l.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDuration_WithinBounds(t *testing.T) {
	l := Latency{Base: 10 * time.Millisecond, Jitter: 5 * time.Millisecond, Scale: 1}
	for i := 0; i < 100; i++ {
		d := l.Duration()
		assert.GreaterOrEqual(t, d, 10*time.Millisecond)
		assert.Less(t, d, 15*time.Millisecond)
	}
	assert.Equal(t, 0.0, Scale(false))
}

func TestWait_Elapses(t *testing.T) {
	l := Latency{Base: time.Millisecond, Scale: 1}
	assert.NoError(t, l.Wait(context.Background()))
}
