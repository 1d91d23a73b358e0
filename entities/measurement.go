package entities

import "time"

type SensorReading struct {
	SoilMoisturePct float64   `json:"soil_moisture_pct"`
	TemperatureC    float64   `json:"temperature_c"`
	HumidityPct     float64   `json:"humidity_pct"`
	BatteryPct      float64   `json:"battery_pct"`
	MoistState      string    `json:"moist_state"` // Low|Medium|Good
	SampledAt       time.Time `json:"sampled_at"`
}
