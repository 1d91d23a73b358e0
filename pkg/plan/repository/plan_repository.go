package repository

import "growsphere/entities"

// HistoryRepository keeps generated-calendar history, most recent first.
type HistoryRepository interface {
	List() ([]entities.HistoryEntry, error)
	Prepend(e entities.HistoryEntry, limit int) (int, error)
	RemoveByPlant(plantID string) (int, error)
	Clear() error
}
