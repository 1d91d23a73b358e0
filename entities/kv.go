package entities

import "time"

type KVEntry struct {
	Key       string `gorm:"primaryKey" json:"key"`
	Value     string `json:"value"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string { return "kv_entries" }
