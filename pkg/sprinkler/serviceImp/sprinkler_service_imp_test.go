package serviceImp

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growsphere/entities"
	"growsphere/pkg/sprinkler"
)

type fixedSampler struct {
	mu sync.Mutex
	r  entities.SensorReading
	n  int
}

func (f *fixedSampler) Sample(ctx context.Context) (entities.SensorReading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.n++
	return f.r, ctx.Err()
}

func (f *fixedSampler) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.n
}

func noon() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

func TestStart_ValidatesDuration(t *testing.T) {
	s := newSvc(&fixedSampler{}, time.Hour, noon)
	for _, m := range []int{0, 3, 61, 12} {
		_, err := s.Start(m)
		assert.ErrorIs(t, err, sprinkler.ErrInvalidDuration, "m=%d", m)
	}
	st, err := s.Start(15)
	require.NoError(t, err)
	assert.True(t, st.Active)
	assert.Equal(t, 15, st.DurationMinutes)
	assert.Equal(t, noon().Add(15*time.Hour), *st.EndsAt)

	st = s.Stop()
	assert.False(t, st.Active)
	assert.Nil(t, st.EndsAt)
}

func TestStart_AutoStops(t *testing.T) {
	s := newSvc(&fixedSampler{}, time.Millisecond, time.Now)
	_, err := s.Start(5)
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return !s.Status().Active }, time.Second, 5*time.Millisecond)
}

func TestStart_RestartReplacesTimer(t *testing.T) {
	s := newSvc(&fixedSampler{}, 10*time.Millisecond, time.Now)
	_, err := s.Start(5)
	require.NoError(t, err)
	_, err = s.Start(60)
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)
	assert.True(t, s.Status().Active, "first timer must not stop the second run")
	s.Stop()
}

func TestPoll_AutoModeWatersWhenDry(t *testing.T) {
	f := &fixedSampler{r: entities.SensorReading{SoilMoisturePct: 25, MoistState: "Low"}}
	s := newSvc(f, time.Hour, noon)

	require.NoError(t, s.Poll(context.Background()))
	st := s.Status()
	assert.True(t, st.Active)
	assert.Equal(t, AutoDurationMinutes, st.DurationMinutes)
	assert.Equal(t, 25.0, st.Reading.SoilMoisturePct)
	s.Stop()

	s.SetAutoMode(false)
	require.NoError(t, s.Poll(context.Background()))
	assert.False(t, s.Status().Active)
}

func TestStatus_Schedule(t *testing.T) {
	s := newSvc(&fixedSampler{}, time.Hour, noon)
	st := s.Status()
	require.Len(t, st.Schedule, 2)
	assert.Equal(t, "Morning Watering", st.Schedule[0].Label)
	assert.True(t, st.Schedule[0].Done)
	assert.Equal(t, "17:00", st.Schedule[1].Time)
	assert.False(t, st.Schedule[1].Done)
	assert.True(t, st.AutoMode)
}

func TestRun_PollsUntilCancelled(t *testing.T) {
	f := &fixedSampler{r: entities.SensorReading{SoilMoisturePct: 50}}
	s := newSvc(f, time.Hour, time.Now)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, 5*time.Millisecond)
		close(done)
	}()
	assert.Eventually(t, func() bool { return f.count() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
