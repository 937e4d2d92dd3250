package regimes

import "github.com/shopspring/decimal"

// VolatilityRegimeKind classifies the current rolling std-dev of returns.
type VolatilityRegimeKind int

const (
	Low VolatilityRegimeKind = iota
	NormalVol
	High
	Extreme
)

func (v VolatilityRegimeKind) String() string {
	switch v {
	case Low:
		return "low"
	case NormalVol:
		return "normal"
	case High:
		return "high"
	default:
		return "extreme"
	}
}

// ToMarketRegime folds a volatility classification and an independently
// detected trend into a single MarketRegime, per spec.md §4.F's
// combination rules.
func (v VolatilityRegimeKind) ToMarketRegime(trend MarketRegime) MarketRegime {
	switch v {
	case Extreme:
		return BearRegime()
	case High:
		if trend.Kind == Bull {
			return SidewaysRegime()
		}
		return trend
	default: // Low, Normal
		return trend
	}
}

// VolatilityPercentiles are the empirical thresholds separating the four
// volatility classes; recomputed periodically from the observed buffer.
type VolatilityPercentiles struct {
	Low     decimal.Decimal
	Normal  decimal.Decimal
	High    decimal.Decimal
	Extreme decimal.Decimal
}

// DefaultVolatilityPercentiles are the initial thresholds before any
// empirical recomputation has happened.
func DefaultVolatilityPercentiles() VolatilityPercentiles {
	return VolatilityPercentiles{
		Low:     decimal.NewFromFloat(0.005),
		Normal:  decimal.NewFromFloat(0.01),
		High:    decimal.NewFromFloat(0.02),
		Extreme: decimal.NewFromFloat(0.04),
	}
}

// Classify maps a raw volatility reading to a class using the current
// percentile thresholds.
func (p VolatilityPercentiles) Classify(vol decimal.Decimal) VolatilityRegimeKind {
	switch {
	case vol.LessThan(p.Low):
		return Low
	case vol.LessThan(p.Normal):
		return NormalVol
	case vol.LessThan(p.High):
		return High
	default:
		return Extreme
	}
}

// PercentileUpdateCadence exposes the two constants governing when
// percentile thresholds get recomputed from the observed buffer — kept
// observable per spec.md §9's Open Question rather than hidden.
func PercentileUpdateCadence() (every, minObservations int) {
	return 10, 20
}
