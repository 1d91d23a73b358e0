package entities

// PlantFacts is the result of researching a plant by name.
type PlantFacts struct {
	Name            string   `json:"name" yaml:"name"`
	ScientificName  string   `json:"scientific_name" yaml:"scientific_name"`
	Description     string   `json:"description" yaml:"description"`
	Image           string   `json:"image" yaml:"image"`
	Climate         string   `json:"climate" yaml:"climate"`
	Soil            string   `json:"soil" yaml:"soil"`
	Fertilizer      string   `json:"fertilizer" yaml:"fertilizer"`
	GrowthPeriod    int      `json:"growth_period" yaml:"growth_period"`
	PlantingSeasons []string `json:"planting_seasons" yaml:"planting_seasons"`
	HarvestTime     string   `json:"harvest_time" yaml:"harvest_time"`
	CommonDiseases  []string `json:"common_diseases" yaml:"common_diseases"`
	Tips            []string `json:"tips" yaml:"tips"`
	Confidence      float64  `json:"confidence" yaml:"confidence"`
}

// Draft converts the facts into an add-plant form, image included.
func (f PlantFacts) Draft() Plant {
	return Plant{
		Name:         f.Name,
		Image:        f.Image,
		Climate:      f.Climate,
		Soil:         f.Soil,
		Fertilizer:   f.Fertilizer,
		GrowthPeriod: f.GrowthPeriod,
	}
}
