package regimes

import (
	"github.com/shopspring/decimal"

	"github.com/marketsynth/gends/internal/marketdata"
)

// RegimeSegment is one scheduled stretch of steps under a single regime,
// carrying the kernel config it should apply and an optional transition
// window into the next segment.
type RegimeSegment struct {
	Regime             MarketRegime
	Duration           uint
	Config             marketdata.GeneratorConfig
	TransitionDuration uint // 0 means "step change, no interpolation"
}

// NewSegment synthesizes the regime's default config (spec.md §4.G's
// force_regime table) over the given base config.
func NewSegment(regime MarketRegime, duration uint, base marketdata.GeneratorConfig) RegimeSegment {
	cfg := base
	switch regime.Kind {
	case Bull:
		cfg.TrendDirection = marketdata.Bullish
		cfg.TrendStrength = decimal.NewFromFloat(0.005)
		cfg.Volatility = decimal.NewFromFloat(0.015)
	case Bear:
		cfg.TrendDirection = marketdata.Bearish
		cfg.TrendStrength = decimal.NewFromFloat(0.007)
		cfg.Volatility = decimal.NewFromFloat(0.025)
	case Sideways:
		cfg.TrendDirection = marketdata.Sideways
		cfg.TrendStrength = decimal.Zero
		cfg.Volatility = decimal.NewFromFloat(0.010)
	default: // Normal
		cfg.TrendDirection = marketdata.Sideways
		if regime.HasBias {
			cfg.TrendStrength = decimal.NewFromFloat(regime.Bias)
		} else {
			cfg.TrendStrength = decimal.Zero
		}
		cfg.Volatility = decimal.NewFromFloat(regime.StdDev)
	}
	return RegimeSegment{Regime: regime, Duration: duration, Config: cfg}
}

// WithConfig overrides the synthesized config with an explicit one.
func (s RegimeSegment) WithConfig(cfg marketdata.GeneratorConfig) RegimeSegment {
	s.Config = cfg
	return s
}

// WithTransition sets the number of steps used to interpolate into this
// segment from the previous one.
func (s RegimeSegment) WithTransition(steps uint) RegimeSegment {
	s.TransitionDuration = steps
	return s
}
