package service

import (
	"context"
	"time"

	"growsphere/pkg/market"
)

// Board is the current price list for one country.
type Board struct {
	Country   market.Country `json:"country"`
	Prices    []market.Price `json:"prices"`
	UpdatedAt time.Time      `json:"updated_at"`
	Highest   market.Price   `json:"highest"`
	BestValue market.Price   `json:"best_value"`
	// Changed reports whether the last refresh produced new prices.
	Changed bool `json:"changed"`
}

type MarketService interface {
	Countries() []market.Country
	// Prices returns the board for country, pricing it on first use.
	Prices(ctx context.Context, country string) (Board, error)
	// Refresh simulates a market check; prices change on most checks only.
	Refresh(ctx context.Context, country string) (Board, error)
	// Run refreshes every priced board each interval until ctx is done.
	Run(ctx context.Context, interval time.Duration)
}
