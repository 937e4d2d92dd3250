// Package walk implements the random-walk price kernel: the piece that
// actually advances a price via drift and noise, aggregates sub-ticks
// into a candle, and draws a volume sample.
package walk

import (
	"github.com/shopspring/decimal"

	"github.com/marketsynth/gends/internal/marketdata"
	"github.com/marketsynth/gends/internal/pricing"
	"github.com/marketsynth/gends/internal/prng"
)

// DefaultSubTicksPerCandle is k in generate_ohlc(rng, k).
const DefaultSubTicksPerCandle = 10

// Kernel owns the current price and the config driving its walk.
type Kernel struct {
	config       marketdata.GeneratorConfig
	currentPrice pricing.Price
}

// New constructs a kernel starting at cfg.StartingPrice.
func New(cfg marketdata.GeneratorConfig) *Kernel {
	return &Kernel{config: cfg, currentPrice: cfg.StartingPrice}
}

// NewAt constructs a kernel under cfg but starting from an explicit
// current price, used when the orchestrator rebuilds the kernel on a
// config change and must preserve the walk's current position.
func NewAt(cfg marketdata.GeneratorConfig, price pricing.Price) *Kernel {
	return &Kernel{config: cfg, currentPrice: price}
}

// CurrentPrice returns the kernel's present price.
func (k *Kernel) CurrentPrice() pricing.Price { return k.currentPrice }

// SetConfig swaps the active configuration while preserving the current
// price, mirroring the orchestrator's "rebuild kernel, preserve price"
// contract (spec.md §4.H).
func (k *Kernel) SetConfig(cfg marketdata.GeneratorConfig) {
	k.config = cfg
}

// Config returns the kernel's active configuration.
func (k *Kernel) Config() marketdata.GeneratorConfig { return k.config }

// NextPrice advances the walk by one sub-tick: drift = sign(trend) *
// trend_strength, shock = Normal(0, volatility), applied multiplicatively
// and clamped to [min_price, max_price].
func (k *Kernel) NextPrice(rng prng.Source) pricing.Price {
	sign := decimal.NewFromInt(int64(k.config.TrendDirection.Sign()))
	drift := sign.Mul(k.config.TrendStrength)

	vol, _ := k.config.Volatility.Float64()
	shock := decimal.NewFromFloat(rng.Normal(0, vol))

	next := k.currentPrice.Add(k.currentPrice.MulFactor(drift.Add(shock)))
	next = next.Max(k.config.MinPrice).Min(k.config.MaxPrice)
	k.currentPrice = next
	return k.currentPrice
}

// GenerateOHLC runs k sub-ticks (spec.md default 10), tracking running
// high/low, and returns the resulting open/high/low/close. k=0 returns
// all four values equal to the current price.
func (k *Kernel) GenerateOHLC(rng prng.Source, subTicks int) (open, high, low, close pricing.Price) {
	open = k.currentPrice
	high = open
	low = open

	for i := 0; i < subTicks; i++ {
		p := k.NextPrice(rng)
		high = high.Max(p)
		low = low.Min(p)
	}

	close = k.currentPrice
	return open, high, low, close
}

// GenerateVolume draws Normal(base_volume, base_volume*volume_volatility),
// clamping below at zero and truncating to an unsigned integer.
func (k *Kernel) GenerateVolume(rng prng.Source) pricing.Volume {
	mean := float64(k.config.BaseVolume)
	std := mean * k.config.VolumeVolatility
	sample := rng.Normal(mean, std)
	if sample < 0 {
		sample = 0
	}
	return pricing.VolumeFromFloat(sample)
}

// Reset restores the current price to the configured starting price.
func (k *Kernel) Reset() {
	k.currentPrice = k.config.StartingPrice
}
