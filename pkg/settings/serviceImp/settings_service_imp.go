package serviceImp

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"growsphere/entities"
	"growsphere/pkg/logger"
	"growsphere/pkg/settings/service"
	"growsphere/pkg/store"
	kv "growsphere/pkg/store/repository"
)

type settingsSvc struct {
	kv  kv.KVRepository
	log *slog.Logger
}

func NewSettingsService(r kv.KVRepository) service.SettingsService {
	return &settingsSvc{kv: r, log: logger.L().With("component", "settings")}
}

func (s *settingsSvc) Get() (entities.Settings, error) {
	out := entities.DefaultSettings()
	if _, err := store.LoadJSON(s.kv, store.KeySettings, &out); err != nil {
		if errors.Is(err, store.ErrCorrupt) {
			s.log.Warn("settings unreadable, using defaults", "error", err)
			return entities.DefaultSettings(), nil
		}
		return out, err
	}
	return out, nil
}

func (s *settingsSvc) Update(in entities.Settings) (entities.Settings, error) {
	if !service.ValidTheme(in.Theme) {
		return entities.Settings{}, fmt.Errorf("%w: %q", service.ErrInvalidTheme, in.Theme)
	}
	if err := store.SaveJSON(s.kv, store.KeySettings, in); err != nil {
		return entities.Settings{}, err
	}
	return in, nil
}

func (s *settingsSvc) ClearAll() error {
	keys, err := s.kv.Keys()
	if err != nil {
		return err
	}
	var ours []string
	for _, k := range keys {
		if strings.HasPrefix(k, store.KeyPrefix) {
			ours = append(ours, k)
		}
	}
	if err := s.kv.Delete(ours...); err != nil {
		return err
	}
	s.log.Info("local data cleared", "keys", len(ours))
	return nil
}
