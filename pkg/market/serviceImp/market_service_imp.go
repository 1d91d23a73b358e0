package serviceImp

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"sync"
	"time"

	"growsphere/pkg/logger"
	"growsphere/pkg/market"
	"growsphere/pkg/market/service"
	"growsphere/pkg/metrics"
	"growsphere/pkg/sim"
)

var CheckLatency = sim.Latency{Base: 2 * time.Second, Jitter: 3 * time.Second}

// ChangeProbability is the share of refreshes that move prices.
const ChangeProbability = 0.7

type marketSvc struct {
	latency sim.Latency
	now     func() time.Time
	log     *slog.Logger

	mu     sync.Mutex
	rng    *rand.Rand
	boards map[string]service.Board
}

func NewMarketService(rng *rand.Rand, l sim.Latency) service.MarketService {
	return newSvc(rng, l, time.Now)
}

func newSvc(rng *rand.Rand, l sim.Latency, now func() time.Time) *marketSvc {
	return &marketSvc{
		latency: l,
		now:     now,
		rng:     rng,
		boards:  map[string]service.Board{},
		log:     logger.L().With("component", "market"),
	}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func (s *marketSvc) priceLocked(c market.Country) []market.Price {
	out := make([]market.Price, 0, len(market.Crops))
	for _, crop := range market.Crops {
		base := crop.BasePrice * c.Multiplier
		variation := (s.rng.Float64() - 0.5) * crop.Volatility * base
		change := (s.rng.Float64() - 0.5) * 20
		trend := market.TrendUp
		if change < 0 {
			trend = market.TrendDown
		}
		out = append(out, market.Price{
			Crop:     crop.Name,
			Price:    round2(math.Max(0.1, base+variation)),
			Currency: c.Currency,
			Symbol:   c.Symbol,
			Change:   round2(change),
			Trend:    trend,
		})
	}
	return out
}

func newBoard(c market.Country, prices []market.Price, at time.Time) service.Board {
	b := service.Board{Country: c, Prices: prices, UpdatedAt: at, Changed: true}
	for i, p := range prices {
		if i == 0 || p.Price > b.Highest.Price {
			b.Highest = p
		}
		if i == 0 || p.Price < b.BestValue.Price {
			b.BestValue = p
		}
	}
	return b
}

func (s *marketSvc) Countries() []market.Country {
	return append([]market.Country(nil), market.Countries...)
}

func (s *marketSvc) Prices(ctx context.Context, country string) (service.Board, error) {
	c, err := market.FindCountry(country)
	if err != nil {
		return service.Board{}, err
	}
	if err := ctx.Err(); err != nil {
		return service.Board{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.boards[c.Name]; ok {
		return b, nil
	}
	b := newBoard(c, s.priceLocked(c), s.now())
	s.boards[c.Name] = b
	return b, nil
}

func (s *marketSvc) Refresh(ctx context.Context, country string) (service.Board, error) {
	c, err := market.FindCountry(country)
	if err != nil {
		return service.Board{}, err
	}
	start := time.Now()
	if err := s.latency.Wait(ctx); err != nil {
		return service.Board{}, err
	}
	metrics.ObserveSince("market", start)

	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.boards[c.Name]
	if !ok || s.rng.Float64() < ChangeProbability {
		cur = newBoard(c, s.priceLocked(c), s.now())
		s.boards[c.Name] = cur
		s.log.Debug("prices updated", "country", c.Name)
		return cur, nil
	}
	cur.Changed = false
	s.boards[c.Name] = cur
	return cur, nil
}

func (s *marketSvc) priced() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.boards))
	for name := range s.boards {
		out = append(out, name)
	}
	return out
}

func (s *marketSvc) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			for _, name := range s.priced() {
				if _, err := s.Refresh(ctx, name); err != nil && ctx.Err() == nil {
					s.log.Warn("price refresh failed", "country", name, "error", err)
				}
			}
		}
	}
}
