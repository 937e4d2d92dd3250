package marketdata

import (
	"github.com/shopspring/decimal"

	"github.com/marketsynth/gends/internal/pricing"
)

// ConfigBuilder accumulates explicit fields before Build applies smart
// defaults (spec.md §3) and validates the result.
type ConfigBuilder struct {
	cfg GeneratorConfig

	startingPriceSet bool
	minPriceSet      bool
	maxPriceSet      bool
	volatilitySet    bool
	trendStrengthSet bool
}

// NewConfigBuilder seeds a builder with the package-wide defaults: price
// 100, 1m interval, 100 points, base volume 1000, Sideways/zero trend.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{cfg: GeneratorConfig{
		StartingPrice:    pricing.NewFromFloat(100, pricing.Zero()),
		MinPrice:         pricing.NewFromFloat(0, pricing.Zero()),
		MaxPrice:         effectivelyUnbounded,
		TrendDirection:   Sideways,
		TrendStrength:    decimal.Zero,
		Volatility:       decimal.Zero,
		TimeInterval:     OneMinute,
		NumPoints:        100,
		BaseVolume:       1000,
		VolumeVolatility: 0.1,
	}}
}

func (b *ConfigBuilder) StartingPrice(p pricing.Price) *ConfigBuilder {
	b.cfg.StartingPrice = p
	b.startingPriceSet = true
	return b
}

func (b *ConfigBuilder) MinPrice(p pricing.Price) *ConfigBuilder {
	b.cfg.MinPrice = p
	b.minPriceSet = true
	return b
}

func (b *ConfigBuilder) MaxPrice(p pricing.Price) *ConfigBuilder {
	b.cfg.MaxPrice = p
	b.maxPriceSet = true
	return b
}

func (b *ConfigBuilder) Trend(direction TrendDirection, strength decimal.Decimal) *ConfigBuilder {
	b.cfg.TrendDirection = direction
	b.cfg.TrendStrength = strength
	b.trendStrengthSet = true
	return b
}

func (b *ConfigBuilder) Volatility(v decimal.Decimal) *ConfigBuilder {
	b.cfg.Volatility = v
	b.volatilitySet = true
	return b
}

func (b *ConfigBuilder) TimeIntervalValue(t TimeInterval) *ConfigBuilder {
	b.cfg.TimeInterval = t
	return b
}

func (b *ConfigBuilder) NumPoints(n uint) *ConfigBuilder {
	b.cfg.NumPoints = n
	return b
}

func (b *ConfigBuilder) Seed(seed uint64) *ConfigBuilder {
	b.cfg.Seed = &seed
	return b
}

func (b *ConfigBuilder) BaseVolume(v uint64) *ConfigBuilder {
	b.cfg.BaseVolume = v
	return b
}

func (b *ConfigBuilder) VolumeVolatility(v float64) *ConfigBuilder {
	b.cfg.VolumeVolatility = v
	return b
}

// Build applies the smart-default rules of spec.md §3 in order, then
// validates. Returns a *ConfigError on the first violated invariant.
func (b *ConfigBuilder) Build() (GeneratorConfig, error) {
	cfg := b.cfg

	thousand := decimal.NewFromInt(1000)
	tenThousand := decimal.NewFromInt(10000)
	ten := decimal.NewFromInt(10)

	// starting_price > 1000 and min_price untouched -> 0.01 * starting_price
	if cfg.StartingPrice.Decimal().GreaterThan(thousand) && !b.minPriceSet {
		cfg.MinPrice = cfg.StartingPrice.MulFactor(decimal.New(1, -2))
	}
	// min_price still untouched and not positive (starting_price <= 1000
	// never hit the rule above) -> same 0.01 * starting_price default.
	if !b.minPriceSet && !cfg.MinPrice.IsPositive() {
		cfg.MinPrice = cfg.StartingPrice.MulFactor(decimal.New(1, -2))
	}
	// starting_price explicitly set and max_price untouched -> 100 * starting_price
	if b.startingPriceSet && !b.maxPriceSet {
		cfg.MaxPrice = cfg.StartingPrice.MulFactor(decimal.NewFromInt(100))
	}

	// enforce min < starting < max, pulling bounds inward if necessary.
	half := decimal.NewFromFloat(0.5)
	two := decimal.NewFromInt(2)
	if !cfg.MinPrice.LessThan(cfg.StartingPrice) {
		cfg.MinPrice = cfg.StartingPrice.MulFactor(half)
	}
	if !cfg.StartingPrice.LessThan(cfg.MaxPrice) {
		cfg.MaxPrice = cfg.StartingPrice.MulFactor(two)
	}

	// volatility default depends on starting_price magnitude.
	if !b.volatilitySet {
		switch {
		case cfg.StartingPrice.Decimal().GreaterThan(tenThousand):
			cfg.Volatility = decimal.NewFromFloat(0.05)
		case cfg.StartingPrice.Decimal().LessThan(ten):
			cfg.Volatility = decimal.NewFromFloat(0.005)
		}
	}

	// trend_strength==0 with a directional bias gets a nominal non-zero value.
	if cfg.TrendStrength.IsZero() && (cfg.TrendDirection == Bullish || cfg.TrendDirection == Bearish) {
		cfg.TrendStrength = decimal.New(1, -4)
		if cfg.TrendDirection == Bearish {
			cfg.TrendStrength = cfg.TrendStrength.Neg()
		}
	}

	if err := cfg.Validate(); err != nil {
		return GeneratorConfig{}, err
	}
	return cfg, nil
}

// Volatile presets a high-volatility, trendless configuration.
func Volatile() *ConfigBuilder {
	return NewConfigBuilder().Volatility(decimal.NewFromFloat(0.05))
}

// Stable presets a low-volatility, trendless configuration.
func Stable() *ConfigBuilder {
	return NewConfigBuilder().Volatility(decimal.NewFromFloat(0.005))
}

// BullMarket presets a sustained upward drift.
func BullMarket() *ConfigBuilder {
	return NewConfigBuilder().
		Trend(Bullish, decimal.NewFromFloat(0.002)).
		Volatility(decimal.NewFromFloat(0.02))
}

// BearMarket presets a sustained downward drift.
func BearMarket() *ConfigBuilder {
	return NewConfigBuilder().
		Trend(Bearish, decimal.NewFromFloat(0.002)).
		Volatility(decimal.NewFromFloat(0.03))
}
