package entities

// Plant is a catalog entry. GrowthPeriod is in whole months.
type Plant struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Image        string `json:"image" yaml:"image"`
	Climate      string `json:"climate" yaml:"climate"`
	Soil         string `json:"soil" yaml:"soil"`
	Fertilizer   string `json:"fertilizer" yaml:"fertilizer"`
	GrowthPeriod int    `json:"growth_period" yaml:"growth_period"`

	// set when listing, never stored
	Default bool `json:"default" yaml:"-"`
}
