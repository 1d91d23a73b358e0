package entities

import "time"

// HistoryEntry records that a calendar was generated. The derived plan
// itself is never stored.
type HistoryEntry struct {
	PlantID      string    `json:"plant_id"`
	PlantName    string    `json:"plant_name"`
	FarmingMonth string    `json:"farming_month"`
	Timestamp    time.Time `json:"timestamp"`
}
