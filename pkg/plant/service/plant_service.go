package service

import "growsphere/entities"

type PlantService interface {
	List(query string) ([]entities.Plant, error)
	Get(id string) (*entities.Plant, error)
	Add(draft entities.Plant) (*entities.Plant, error)
	Remove(id string) error
	RestoreDefaults() error
}
