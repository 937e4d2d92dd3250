package marketdata

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketsynth/gends/internal/pricing"
)

func TestBuilderDefaults(t *testing.T) {
	cfg, err := NewConfigBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, Sideways, cfg.TrendDirection)
	assert.True(t, cfg.TrendStrength.IsZero())
}

func TestSmartDefaultMinMaxFromHighStartingPrice(t *testing.T) {
	cfg, err := NewConfigBuilder().
		StartingPrice(pricing.NewFromFloat(5000, pricing.Zero())).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "50.00000000", cfg.MinPrice.String())
	assert.Equal(t, "500000.00000000", cfg.MaxPrice.String())
}

func TestSmartDefaultVolatilityLowPrice(t *testing.T) {
	cfg, err := NewConfigBuilder().
		StartingPrice(pricing.NewFromFloat(5, pricing.Zero())).
		Build()
	require.NoError(t, err)
	assert.True(t, cfg.Volatility.Equal(decimal.NewFromFloat(0.005)))
}

func TestSmartDefaultVolatilityHighPrice(t *testing.T) {
	cfg, err := NewConfigBuilder().
		StartingPrice(pricing.NewFromFloat(20000, pricing.Zero())).
		Build()
	require.NoError(t, err)
	assert.True(t, cfg.Volatility.Equal(decimal.NewFromFloat(0.05)))
}

func TestSmartDefaultTrendStrengthNonZero(t *testing.T) {
	cfg, err := NewConfigBuilder().
		Trend(Bullish, decimal.Zero).
		Build()
	require.NoError(t, err)
	assert.True(t, cfg.TrendStrength.GreaterThan(decimal.Zero))

	cfg, err = NewConfigBuilder().
		Trend(Bearish, decimal.Zero).
		Build()
	require.NoError(t, err)
	assert.True(t, cfg.TrendStrength.LessThan(decimal.Zero))
}

func TestValidateRejectsOutOfRangeTrendStrength(t *testing.T) {
	cfg, err := NewConfigBuilder().
		Trend(Bullish, decimal.NewFromFloat(1.5)).
		Build()
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, InvalidTrend, ce.Kind)
	_ = cfg
}

func TestValidateRejectsNegativeVolatility(t *testing.T) {
	_, err := NewConfigBuilder().Volatility(decimal.NewFromFloat(-0.1)).Build()
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, InvalidVolatility, ce.Kind)
}

func TestValidateRejectsZeroBaseVolume(t *testing.T) {
	_, err := NewConfigBuilder().BaseVolume(0).Build()
	require.Error(t, err)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, InvalidParameter, ce.Kind)
}

func TestPresets(t *testing.T) {
	bull, err := BullMarket().Build()
	require.NoError(t, err)
	assert.Equal(t, Bullish, bull.TrendDirection)

	bear, err := BearMarket().Build()
	require.NoError(t, err)
	assert.Equal(t, Bearish, bear.TrendDirection)

	vol, err := Volatile().Build()
	require.NoError(t, err)
	assert.True(t, vol.Volatility.Equal(decimal.NewFromFloat(0.05)))

	stable, err := Stable().Build()
	require.NoError(t, err)
	assert.True(t, stable.Volatility.Equal(decimal.NewFromFloat(0.005)))
}

func TestOHLCConsistencyRejectsBadHigh(t *testing.T) {
	p := func(v float64) pricing.Price { return pricing.NewFromFloat(v, pricing.Zero()) }
	_, err := NewOHLC(p(100), p(99), p(99), p(102), 1000, 0)
	require.Error(t, err)
}

func TestOHLCAnalysis(t *testing.T) {
	p := func(v float64) pricing.Price { return pricing.NewFromFloat(v, pricing.Zero()) }
	bullish, err := NewOHLC(p(100), p(105), p(99), p(104), 1000, 0)
	require.NoError(t, err)
	assert.True(t, bullish.IsBullish())
	assert.False(t, bullish.IsBearish())
}
