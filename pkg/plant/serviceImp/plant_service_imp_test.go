package serviceImp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growsphere/entities"
	"growsphere/pkg/plant"
	"growsphere/pkg/plant/repositoryImp"
	"growsphere/pkg/plant/service"
	"growsphere/pkg/store"
	kv "growsphere/pkg/store/repository"
	"growsphere/pkg/testutil"
)

type fakePurger struct {
	removed []string
	err     error
}

func (f *fakePurger) RemoveByPlant(id string) (int, error) {
	f.removed = append(f.removed, id)
	return 1, f.err
}

func newSvc(t *testing.T) (service.PlantService, kv.KVRepository, *fakePurger) {
	t.Helper()
	db := testutil.NewTestKV(t)
	p := &fakePurger{}
	return NewPlantService(repositoryImp.New(db), p), db, p
}

func validDraft() entities.Plant {
	return entities.Plant{
		Name: "  Basil ", Climate: "Warm", Soil: "Loamy", Fertilizer: "Compost", GrowthPeriod: 2,
	}
}

func TestList_DefaultsAndFilter(t *testing.T) {
	svc, _, _ := newSvc(t)

	all, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, all, 8)
	assert.Equal(t, "Tomato", all[0].Name)
	assert.True(t, all[0].Default)

	got, err := svc.List("  TO ")
	require.NoError(t, err)
	names := []string{}
	for _, p := range got {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Tomato", "Potato"}, names)

	none, err := svc.List("zzz")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAdd(t *testing.T) {
	svc, _, _ := newSvc(t)

	p, err := svc.Add(validDraft())
	require.NoError(t, err)
	assert.Equal(t, "Basil", p.Name)
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.Default)
	assert.Equal(t, plant.PlaceholderImage("Basil"), p.Image)

	all, err := svc.List("")
	require.NoError(t, err)
	require.Len(t, all, 9)
	assert.Equal(t, p.ID, all[8].ID)

	got, err := svc.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Compost", got.Fertilizer)
}

func TestAdd_Validation(t *testing.T) {
	svc, _, _ := newSvc(t)

	d := validDraft()
	d.Soil = "   "
	d.GrowthPeriod = 0
	_, err := svc.Add(d)
	require.ErrorIs(t, err, plant.ErrInvalidPlant)
	var ve *plant.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"soil", "growth_period"}, ve.Fields)

	d = validDraft()
	d.GrowthPeriod = 121
	_, err = svc.Add(d)
	assert.ErrorIs(t, err, plant.ErrInvalidPlant)
}

func TestRemove_DefaultIsHiddenUntilRestore(t *testing.T) {
	svc, _, purger := newSvc(t)

	require.NoError(t, svc.Remove("1"))
	assert.Equal(t, []string{"1"}, purger.removed)
	_, err := svc.Get("1")
	assert.ErrorIs(t, err, plant.ErrNotFound)
	all, _ := svc.List("")
	assert.Len(t, all, 7)

	assert.ErrorIs(t, svc.Remove("1"), plant.ErrNotFound)

	require.NoError(t, svc.RestoreDefaults())
	all, _ = svc.List("")
	assert.Len(t, all, 8)
}

func TestRemove_Custom(t *testing.T) {
	svc, _, purger := newSvc(t)
	p, err := svc.Add(validDraft())
	require.NoError(t, err)

	purger.err = errors.New("disk full")
	require.NoError(t, svc.Remove(p.ID))
	_, err = svc.Get(p.ID)
	assert.ErrorIs(t, err, plant.ErrNotFound)
}

func TestList_CorruptStorageFallsBack(t *testing.T) {
	svc, db, _ := newSvc(t)
	require.NoError(t, db.Put(store.KeyCustomPlants, "[{"))
	require.NoError(t, db.Put(store.KeyHiddenPlants, "nope"))

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 8)

	_, err = svc.Add(validDraft())
	require.NoError(t, err)
	all, _ = svc.List("")
	assert.Len(t, all, 9)
}
