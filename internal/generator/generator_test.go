package generator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketsynth/gends/internal/marketdata"
	"github.com/marketsynth/gends/internal/pricing"
	"github.com/marketsynth/gends/internal/regimes"
)

func seededConfig(t *testing.T, seed uint64) marketdata.GeneratorConfig {
	t.Helper()
	cfg, err := marketdata.NewConfigBuilder().
		StartingPrice(pricing.NewFromFloat(100, pricing.Zero())).
		Volatility(decimal.NewFromFloat(0.02)).
		Seed(seed).
		Build()
	require.NoError(t, err)
	return cfg
}

// S1 — Determinism.
func TestDeterminismAcrossInstances(t *testing.T) {
	cfg := seededConfig(t, 42)

	a, err := generatorWithConfig(t, cfg)
	require.NoError(t, err)
	b, err := generatorWithConfig(t, cfg)
	require.NoError(t, err)

	seriesA, err := a.GenerateSeries(5)
	require.NoError(t, err)
	seriesB, err := b.GenerateSeries(5)
	require.NoError(t, err)

	assert.Equal(t, seriesA, seriesB)
}

func generatorWithConfig(t *testing.T, cfg marketdata.GeneratorConfig) (*Generator, error) {
	t.Helper()
	g, err := NewWithConfig(cfg)
	if err == nil {
		g.SetTimestamp(0)
	}
	return g, err
}

// S3 — Bullish drift.
func TestBullishDriftEndToEnd(t *testing.T) {
	cfg, err := marketdata.NewConfigBuilder().
		StartingPrice(pricing.NewFromFloat(100, pricing.Zero())).
		MinPrice(pricing.NewFromFloat(1, pricing.Zero())).
		MaxPrice(pricing.NewFromFloat(1000000, pricing.Zero())).
		Volatility(decimal.NewFromFloat(0.001)).
		Trend(marketdata.Bullish, decimal.NewFromFloat(0.01)).
		Seed(42).
		Build()
	require.NoError(t, err)

	g, err := NewWithConfig(cfg)
	require.NoError(t, err)
	g.SetTimestamp(0)

	for i := 0; i < 100; i++ {
		g.GenerateTick()
	}
	last := g.kernel.CurrentPrice()
	assert.True(t, last.GreaterThan(pricing.NewFromFloat(100, pricing.Zero())))
}

// S7 — Tick spread.
func TestTickSpread(t *testing.T) {
	cfg := seededConfig(t, 42)
	g, err := NewWithConfig(cfg)
	require.NoError(t, err)
	g.SetTimestamp(0)

	before := g.timestamp
	tick := g.GenerateTick()
	require.NotNil(t, tick.Bid)
	require.NotNil(t, tick.Ask)
	assert.True(t, tick.Ask.GreaterThan(*tick.Bid))
	assert.Equal(t, before+1000, g.timestamp)
}

// Reset idempotence.
func TestResetIdempotence(t *testing.T) {
	cfg := seededConfig(t, 7)
	g, err := NewWithConfig(cfg)
	require.NoError(t, err)
	g.SetTimestamp(0)

	first, err := g.GenerateSeries(3)
	require.NoError(t, err)

	g.Reset()
	g.SetTimestamp(0)
	second, err := g.GenerateSeries(1)
	require.NoError(t, err)

	assert.Equal(t, first[0], second[0])
}

func TestMonotonicTimestamps(t *testing.T) {
	cfg := seededConfig(t, 1)
	g, err := NewWithConfig(cfg)
	require.NoError(t, err)
	g.SetTimestamp(0)

	series, err := g.GenerateSeries(5)
	require.NoError(t, err)
	for i := 1; i < len(series); i++ {
		assert.Equal(t, series[i-1].Timestamp+cfg.TimeInterval.Millis(), series[i].Timestamp)
	}
}

func TestRegimeControlIntegration(t *testing.T) {
	cfg := seededConfig(t, 5)
	g, err := NewWithConfig(cfg)
	require.NoError(t, err)

	schedule := regimes.NewSchedule([]regimes.RegimeSegment{
		regimes.NewSegment(regimes.BullRegime(), 3, cfg),
		regimes.NewSegment(regimes.BearRegime(), 3, cfg),
	})
	g.EnableRegimeControl(schedule)

	_, err = g.GenerateSeries(6)
	require.NoError(t, err)

	info, ok := g.RegimeControlInfo()
	require.True(t, ok)
	assert.True(t, info.IsComplete)
}

func TestForceRegimeNoOpWhenControlDisabled(t *testing.T) {
	cfg := seededConfig(t, 5)
	g, err := NewWithConfig(cfg)
	require.NoError(t, err)
	g.ForceRegime(regimes.BearRegime(), 10, 0)
	_, ok := g.RegimeControlInfo()
	assert.False(t, ok)
}
