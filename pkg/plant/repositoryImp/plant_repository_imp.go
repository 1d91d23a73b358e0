package repositoryImp

import (
	"errors"
	"sort"

	"growsphere/entities"
	"growsphere/pkg/plant/repository"
	"growsphere/pkg/store"
	kv "growsphere/pkg/store/repository"
)

type plantRepo struct{ kv kv.KVRepository }

func New(r kv.KVRepository) repository.PlantRepository { return &plantRepo{r} }

func (r *plantRepo) ListCustom() ([]entities.Plant, error) {
	var out []entities.Plant
	if _, err := store.LoadJSON(r.kv, store.KeyCustomPlants, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create and HideDefault overwrite a malformed stored value.
func (r *plantRepo) Create(p *entities.Plant) error {
	list, err := r.ListCustom()
	if err != nil && !errors.Is(err, store.ErrCorrupt) {
		return err
	}
	return store.SaveJSON(r.kv, store.KeyCustomPlants, append(list, *p))
}

func (r *plantRepo) Delete(id string) (bool, error) {
	list, err := r.ListCustom()
	if err != nil {
		return false, err
	}
	kept := list[:0]
	for _, p := range list {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}
	return true, store.SaveJSON(r.kv, store.KeyCustomPlants, kept)
}

func (r *plantRepo) HiddenDefaults() (map[string]bool, error) {
	var ids []string
	if _, err := store.LoadJSON(r.kv, store.KeyHiddenPlants, &ids); err != nil {
		return map[string]bool{}, err
	}
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (r *plantRepo) HideDefault(id string) error {
	hidden, err := r.HiddenDefaults()
	if err != nil && !errors.Is(err, store.ErrCorrupt) {
		return err
	}
	hidden[id] = true
	ids := make([]string, 0, len(hidden))
	for k := range hidden {
		ids = append(ids, k)
	}
	sort.Strings(ids)
	return store.SaveJSON(r.kv, store.KeyHiddenPlants, ids)
}

func (r *plantRepo) ClearHidden() error { return r.kv.Delete(store.KeyHiddenPlants) }
