package serviceImp

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growsphere/pkg/market"
	"growsphere/pkg/sim"
)

func testSvc(seed int64) *marketSvc {
	at := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	return newSvc(rand.New(rand.NewSource(seed)), sim.Latency{}, func() time.Time { return at })
}

func TestPrices_WithinVolatilityBand(t *testing.T) {
	s := testSvc(1)
	for _, c := range market.Countries {
		b, err := s.Prices(context.Background(), c.Name)
		require.NoError(t, err)
		require.Len(t, b.Prices, len(market.Crops))
		for i, p := range b.Prices {
			crop := market.Crops[i]
			base := crop.BasePrice * c.Multiplier
			half := crop.Volatility * base / 2
			assert.Equal(t, crop.Name, p.Crop)
			assert.Equal(t, c.Currency, p.Currency)
			assert.GreaterOrEqual(t, p.Price, 0.1)
			assert.InDelta(t, base, p.Price, half+0.01, "%s/%s", c.Name, crop.Name)
			assert.GreaterOrEqual(t, p.Change, -10.0)
			assert.LessOrEqual(t, p.Change, 10.0)
			if p.Change >= 0 {
				assert.Equal(t, market.TrendUp, p.Trend)
			} else {
				assert.Equal(t, market.TrendDown, p.Trend)
			}
		}
		assert.GreaterOrEqual(t, b.Highest.Price, b.BestValue.Price)
	}
}

func TestPrices_CachedUntilRefresh(t *testing.T) {
	s := testSvc(2)
	a, err := s.Prices(context.Background(), "India")
	require.NoError(t, err)
	b, err := s.Prices(context.Background(), "India")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPrices_UnknownCountry(t *testing.T) {
	s := testSvc(3)
	_, err := s.Prices(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, market.ErrUnknownCountry)
	_, err = s.Refresh(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, market.ErrUnknownCountry)
}

func TestRefresh_SometimesKeepsPrices(t *testing.T) {
	s := testSvc(4)
	_, err := s.Prices(context.Background(), "Japan")
	require.NoError(t, err)

	changed, kept := 0, 0
	for i := 0; i < 200; i++ {
		b, err := s.Refresh(context.Background(), "Japan")
		require.NoError(t, err)
		if b.Changed {
			changed++
		} else {
			kept++
		}
	}
	assert.Greater(t, changed, kept)
	assert.Greater(t, kept, 0)
}

func TestRefresh_Cancelled(t *testing.T) {
	s := newSvc(rand.New(rand.NewSource(5)), sim.Latency{Base: time.Hour, Scale: 1}, time.Now)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Refresh(ctx, "Canada")
	assert.ErrorIs(t, err, context.Canceled)
}
