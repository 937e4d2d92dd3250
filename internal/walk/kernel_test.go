package walk

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketsynth/gends/internal/marketdata"
	"github.com/marketsynth/gends/internal/pricing"
	"github.com/marketsynth/gends/internal/prng"
)

func testConfig(t *testing.T) marketdata.GeneratorConfig {
	t.Helper()
	cfg, err := marketdata.NewConfigBuilder().
		StartingPrice(pricing.NewFromFloat(100, pricing.Zero())).
		MinPrice(pricing.NewFromFloat(50, pricing.Zero())).
		MaxPrice(pricing.NewFromFloat(150, pricing.Zero())).
		Volatility(decimal.NewFromFloat(0.02)).
		Build()
	require.NoError(t, err)
	return cfg
}

func TestBoundsHonoredUnderHighNoise(t *testing.T) {
	cfg, err := marketdata.NewConfigBuilder().
		StartingPrice(pricing.NewFromFloat(100, pricing.Zero())).
		MinPrice(pricing.NewFromFloat(50, pricing.Zero())).
		MaxPrice(pricing.NewFromFloat(150, pricing.Zero())).
		Volatility(decimal.NewFromFloat(0.5)).
		Build()
	require.NoError(t, err)

	k := New(cfg)
	rng := prng.New(42)
	min := pricing.NewFromFloat(50, pricing.Zero())
	max := pricing.NewFromFloat(150, pricing.Zero())
	for i := 0; i < 1000; i++ {
		p := k.NextPrice(rng)
		assert.False(t, p.LessThan(min))
		assert.False(t, p.GreaterThan(max))
	}
}

func TestBullishDrift(t *testing.T) {
	cfg, err := marketdata.NewConfigBuilder().
		StartingPrice(pricing.NewFromFloat(100, pricing.Zero())).
		MinPrice(pricing.NewFromFloat(1, pricing.Zero())).
		MaxPrice(pricing.NewFromFloat(1000000, pricing.Zero())).
		Volatility(decimal.NewFromFloat(0.001)).
		Trend(marketdata.Bullish, decimal.NewFromFloat(0.01)).
		Build()
	require.NoError(t, err)

	k := New(cfg)
	rng := prng.New(42)
	for i := 0; i < 100; i++ {
		k.NextPrice(rng)
	}
	assert.True(t, k.CurrentPrice().GreaterThan(pricing.NewFromFloat(100, pricing.Zero())))
}

func TestGenerateOHLCZeroSubTicks(t *testing.T) {
	cfg := testConfig(t)
	k := New(cfg)
	rng := prng.New(1)
	open, high, low, close := k.GenerateOHLC(rng, 0)
	assert.True(t, open.Cmp(high) == 0)
	assert.True(t, open.Cmp(low) == 0)
	assert.True(t, open.Cmp(close) == 0)
}

func TestGenerateOHLCConsistency(t *testing.T) {
	cfg := testConfig(t)
	k := New(cfg)
	rng := prng.New(7)
	for i := 0; i < 20; i++ {
		open, high, low, close := k.GenerateOHLC(rng, DefaultSubTicksPerCandle)
		assert.True(t, high.Cmp(open.Max(close)) >= 0)
		assert.True(t, low.Cmp(open.Min(close)) <= 0)
		assert.True(t, high.Cmp(low) >= 0)
	}
}

func TestGenerateVolumeNonNegative(t *testing.T) {
	cfg := testConfig(t)
	k := New(cfg)
	rng := prng.New(3)
	for i := 0; i < 100; i++ {
		v := k.GenerateVolume(rng)
		assert.GreaterOrEqual(t, uint64(v), uint64(0))
	}
}

func TestResetRestoresStartingPrice(t *testing.T) {
	cfg := testConfig(t)
	k := New(cfg)
	rng := prng.New(11)
	for i := 0; i < 10; i++ {
		k.NextPrice(rng)
	}
	k.Reset()
	assert.True(t, k.CurrentPrice().Cmp(cfg.StartingPrice) == 0)
}
