package repositoryImp

import (
	"errors"

	"growsphere/entities"
	"growsphere/pkg/plan/repository"
	"growsphere/pkg/store"
	kv "growsphere/pkg/store/repository"
)

type historyRepo struct{ kv kv.KVRepository }

func New(r kv.KVRepository) repository.HistoryRepository { return &historyRepo{r} }

func (r *historyRepo) List() ([]entities.HistoryEntry, error) {
	out := []entities.HistoryEntry{}
	if _, err := store.LoadJSON(r.kv, store.KeyHistory, &out); err != nil {
		return []entities.HistoryEntry{}, err
	}
	return out, nil
}

// Prepend stores e ahead of the existing entries and truncates to limit.
// A malformed stored list is replaced. Returns the new length.
func (r *historyRepo) Prepend(e entities.HistoryEntry, limit int) (int, error) {
	list, err := r.List()
	if err != nil && !errors.Is(err, store.ErrCorrupt) {
		return 0, err
	}
	list = append([]entities.HistoryEntry{e}, list...)
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return len(list), store.SaveJSON(r.kv, store.KeyHistory, list)
}

func (r *historyRepo) RemoveByPlant(plantID string) (int, error) {
	list, err := r.List()
	if err != nil {
		return 0, err
	}
	kept := make([]entities.HistoryEntry, 0, len(list))
	for _, e := range list {
		if e.PlantID != plantID {
			kept = append(kept, e)
		}
	}
	removed := len(list) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	return removed, store.SaveJSON(r.kv, store.KeyHistory, kept)
}

func (r *historyRepo) Clear() error { return r.kv.Delete(store.KeyHistory) }
