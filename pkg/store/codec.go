package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"growsphere/pkg/store/repository"
)

// ErrCorrupt marks a stored value that no longer decodes. Callers fall back
// to defaults.
var ErrCorrupt = errors.New("stored value is malformed")

// LoadJSON decodes key into out. found is false when the key is absent.
func LoadJSON(r repository.KVRepository, key string, out any) (bool, error) {
	raw, found, err := r.Get(key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return true, fmt.Errorf("%w: %s: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

func SaveJSON(r repository.KVRepository, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.Put(key, string(b))
}
