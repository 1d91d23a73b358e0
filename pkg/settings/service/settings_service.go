package service

import (
	"errors"

	"growsphere/entities"
)

var ErrInvalidTheme = errors.New("theme must be light or dark")

type SettingsService interface {
	Get() (entities.Settings, error)
	Update(s entities.Settings) (entities.Settings, error)
	// ClearAll removes every stored growsphere key.
	ClearAll() error
}

func ValidTheme(t string) bool { return t == "light" || t == "dark" }
