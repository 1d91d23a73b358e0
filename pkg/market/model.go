package market

import "errors"

var ErrUnknownCountry = errors.New("unknown country")

type Country struct {
	Name       string  `json:"name"`
	Currency   string  `json:"currency"`
	Symbol     string  `json:"symbol"`
	Multiplier float64 `json:"multiplier"`
}

// Crop prices are per kg in USD before the country multiplier.
type Crop struct {
	Name       string  `json:"name"`
	BasePrice  float64 `json:"base_price"`
	Volatility float64 `json:"volatility"`
}

type Price struct {
	Crop     string  `json:"crop"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Symbol   string  `json:"symbol"`
	Change   float64 `json:"change"`
	Trend    string  `json:"trend"`
}

const (
	TrendUp   = "up"
	TrendDown = "down"
)

var Countries = []Country{
	{"United States", "USD", "$", 1.0},
	{"India", "INR", "₹", 83},
	{"United Kingdom", "GBP", "£", 0.79},
	{"European Union", "EUR", "€", 0.92},
	{"Canada", "CAD", "C$", 1.35},
	{"Australia", "AUD", "A$", 1.52},
	{"Japan", "JPY", "¥", 149},
	{"Brazil", "BRL", "R$", 5.0},
	{"China", "CNY", "¥", 7.2},
	{"South Africa", "ZAR", "R", 18.5},
}

var Crops = []Crop{
	{"Tomato", 2.5, 0.15},
	{"Rice", 1.2, 0.08},
	{"Wheat", 0.8, 0.12},
	{"Corn", 1.5, 0.1},
	{"Potato", 1.8, 0.2},
	{"Onion", 2.2, 0.25},
	{"Carrot", 1.9, 0.18},
	{"Lettuce", 3.2, 0.22},
}

func FindCountry(name string) (Country, error) {
	for _, c := range Countries {
		if c.Name == name {
			return c, nil
		}
	}
	return Country{}, ErrUnknownCountry
}
