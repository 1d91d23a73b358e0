package service

import (
	"context"
	"time"

	"growsphere/entities"
)

type ScheduledWatering struct {
	Label string `json:"label"`
	Time  string `json:"time"` // HH:MM
	Done  bool   `json:"done"`
}

type Status struct {
	Online          bool                   `json:"online"`
	Active          bool                   `json:"active"`
	DurationMinutes int                    `json:"duration_minutes,omitempty"`
	EndsAt          *time.Time             `json:"ends_at,omitempty"`
	AutoMode        bool                   `json:"auto_mode"`
	Reading         entities.SensorReading `json:"reading"`
	Schedule        []ScheduledWatering    `json:"schedule"`
}

type SprinklerService interface {
	Status() Status
	Start(minutes int) (Status, error)
	Stop() Status
	SetAutoMode(on bool) Status
	// Poll takes one sensor sample and applies auto mode.
	Poll(ctx context.Context) error
	// Run polls every interval until ctx is done.
	Run(ctx context.Context, interval time.Duration)
}
