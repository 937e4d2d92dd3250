package marketdata

import (
	"github.com/shopspring/decimal"

	"github.com/marketsynth/gends/internal/pricing"
)

// GeneratorConfig holds every parameter the kernel needs to advance a
// price series. Values are copied by value; construct one through
// NewConfigBuilder rather than the zero value.
type GeneratorConfig struct {
	StartingPrice pricing.Price
	MinPrice      pricing.Price
	MaxPrice      pricing.Price

	TrendDirection TrendDirection
	TrendStrength  decimal.Decimal // in [-1, 1]
	Volatility     decimal.Decimal // >= 0

	TimeInterval TimeInterval
	NumPoints    uint

	// Seed is nil when the PRNG should be seeded from OS entropy.
	Seed             *uint64
	BaseVolume       uint64
	VolumeVolatility float64
}

// effectivelyUnbounded is the sentinel used for "no real ceiling" per
// spec.md §3.
var effectivelyUnbounded = pricing.NewFromFloat(1e15, pricing.Zero())

// Validate checks every invariant spec.md §3 lists, returning the first
// violation found as a *ConfigError.
func (c GeneratorConfig) Validate() error {
	if !c.StartingPrice.IsPositive() {
		return newConfigError(InvalidPrice, "starting_price must be > 0")
	}
	if !c.MinPrice.IsPositive() {
		return newConfigError(InvalidPrice, "min_price must be > 0")
	}
	if !c.MinPrice.LessThan(c.MaxPrice) {
		return newConfigError(InvalidPrice, "min_price must be < max_price")
	}
	if c.Volatility.IsNegative() {
		return newConfigError(InvalidVolatility, "volatility must be >= 0")
	}
	one := decimal.NewFromInt(1)
	if c.TrendStrength.Abs().GreaterThan(one) {
		return newConfigError(InvalidTrend, "trend_strength must be in [-1, 1]")
	}
	if c.NumPoints == 0 {
		return newConfigError(InvalidParameter, "num_points must be > 0")
	}
	if c.BaseVolume == 0 {
		return newConfigError(InvalidParameter, "base_volume must be > 0")
	}
	if c.VolumeVolatility < 0 {
		return newConfigError(InvalidParameter, "volume_volatility must be >= 0")
	}
	return nil
}
