package repository

import "growsphere/entities"

type PlantRepository interface {
	ListCustom() ([]entities.Plant, error)
	Create(p *entities.Plant) error
	Delete(id string) (bool, error)
	HiddenDefaults() (map[string]bool, error)
	HideDefault(id string) error
	ClearHidden() error
}
