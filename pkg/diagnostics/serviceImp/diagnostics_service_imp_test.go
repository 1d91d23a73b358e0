package serviceImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growsphere/pkg/appstate"
	"growsphere/pkg/diagnostics/service"
	planrepo "growsphere/pkg/plan/repositoryImp"
	plansvc "growsphere/pkg/plan/serviceImp"
	plantrepo "growsphere/pkg/plant/repositoryImp"
	plantsvc "growsphere/pkg/plant/serviceImp"
	"growsphere/pkg/sim"
	"growsphere/pkg/store"
	"growsphere/pkg/testutil"
)

type fixedState struct{ s appstate.State }

func (f *fixedState) State() appstate.State { return f.s }

func setup(t *testing.T, st appstate.State) (*diagSvc, *fixedState) {
	t.Helper()
	kv := testutil.NewTestKV(t)
	hist := planrepo.New(kv)
	plants := plantsvc.NewPlantService(plantrepo.New(kv), hist)
	plans := plansvc.NewPlanService(plants, hist)
	fs := &fixedState{st}
	return NewDiagnosticsService(plants, plans, fs, kv, sim.Latency{}).(*diagSvc), fs
}

func testMode() appstate.State {
	s := appstate.Initial()
	s.TestMode = true
	return s
}

func TestRunAll_RequiresTestMode(t *testing.T) {
	s, _ := setup(t, appstate.Initial())
	_, err := s.RunAll(context.Background())
	assert.ErrorIs(t, err, service.ErrTestModeOff)
	_, err = s.Export()
	assert.ErrorIs(t, err, service.ErrTestModeOff)
	_, err = s.AddTestPlant()
	assert.ErrorIs(t, err, service.ErrTestModeOff)
}

func TestRunAll_AllPass(t *testing.T) {
	s, _ := setup(t, testMode())
	rep, err := s.RunAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 5, rep.Total)
	assert.Equal(t, 5, rep.Passed)
	names := make([]string, 0, rep.Total)
	for _, r := range rep.Results {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{
		"Plant Data Integrity", "Local Storage", "Navigation System", "Theme System", "Search Functionality",
	}, names)

	_, found, err := s.kv.Get(store.KeyStorageProbe)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRunAll_FlagsUnlistedView(t *testing.T) {
	st := testMode()
	st.View = appstate.ViewTestPanel
	st.Theme = "sepia"
	s, _ := setup(t, st)
	rep, err := s.RunAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Passed)
	assert.False(t, rep.Results[2].Passed)
	assert.Contains(t, rep.Results[2].Message, "test-panel")
	assert.False(t, rep.Results[3].Passed)
}

func TestExport_MasksImages(t *testing.T) {
	s, _ := setup(t, testMode())
	_, err := s.AddTestPlant()
	require.NoError(t, err)
	_, err = s.RunAll(context.Background())
	require.NoError(t, err)

	out, err := s.Export()
	require.NoError(t, err)
	require.NotEmpty(t, out.Plants)
	for _, p := range out.Plants {
		assert.Equal(t, "[IMAGE_URL]", p.Image)
	}
	assert.Equal(t, "Test Plant", out.Plants[len(out.Plants)-1].Name)
	assert.Len(t, out.TestResults, 5)
	assert.Equal(t, "Present", out.Storage[store.KeyCustomPlants])
	assert.Equal(t, "Missing", out.Storage[store.KeyHistory])
	assert.Empty(t, out.History)
}

func TestRunAll_Cancelled(t *testing.T) {
	s, _ := setup(t, testMode())
	s.latency = sim.Latency{Base: 1 << 40, Scale: 1}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.RunAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
