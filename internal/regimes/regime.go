// Package regimes implements the regime detection subsystem (a
// volatility-based online classifier) and the regime control subsystem
// (a scheduled, interpolated parameter state machine), both operating
// over the marketdata types the kernel produces.
package regimes

import "github.com/shopspring/decimal"

// MarketRegimeKind is the tag of MarketRegime's closed variant set.
type MarketRegimeKind int

const (
	Bull MarketRegimeKind = iota
	Bear
	Sideways
	Normal
)

// MarketRegime is a labeled market state. Normal carries its own
// distribution parameters; the other variants are pure tags.
type MarketRegime struct {
	Kind    MarketRegimeKind
	Mean    float64
	StdDev  float64
	HasBias bool
	Bias    float64
}

func BullRegime() MarketRegime     { return MarketRegime{Kind: Bull} }
func BearRegime() MarketRegime     { return MarketRegime{Kind: Bear} }
func SidewaysRegime() MarketRegime { return MarketRegime{Kind: Sideways} }
func NormalRegime(mean, stdDev float64, bias *float64) MarketRegime {
	m := MarketRegime{Kind: Normal, Mean: mean, StdDev: stdDev}
	if bias != nil {
		m.HasBias = true
		m.Bias = *bias
	}
	return m
}

func (m MarketRegime) String() string {
	switch m.Kind {
	case Bull:
		return "bull"
	case Bear:
		return "bear"
	case Sideways:
		return "sideways"
	default:
		return "normal"
	}
}

func (m MarketRegime) Equal(o MarketRegime) bool {
	return m.Kind == o.Kind
}

// VolatilityFactor returns the regime's default volatility: the same
// values NewSegment assigns, or StdDev for Normal. NewSegment does not
// call it.
func (m MarketRegime) VolatilityFactor() decimal.Decimal {
	switch m.Kind {
	case Bull:
		return decimal.NewFromFloat(0.015)
	case Bear:
		return decimal.NewFromFloat(0.025)
	case Sideways:
		return decimal.NewFromFloat(0.010)
	default:
		return decimal.NewFromFloat(m.StdDev)
	}
}

// DriftFactor returns the regime's default signed drift (negative for
// Bear, Bias for Normal). NewSegment does not call it; it stores an
// unsigned strength and carries the sign in the trend direction.
func (m MarketRegime) DriftFactor() decimal.Decimal {
	switch m.Kind {
	case Bull:
		return decimal.NewFromFloat(0.005)
	case Bear:
		return decimal.NewFromFloat(0.007).Neg()
	case Sideways:
		return decimal.Zero
	default:
		return decimal.NewFromFloat(m.Bias)
	}
}

// RegimeState tracks how long the current regime has persisted and with
// what confidence.
type RegimeState struct {
	CurrentRegime  MarketRegime
	Confidence     decimal.Decimal
	Duration       uint
	StartTimestamp int64
	StartPrice     decimal.Decimal
}

// NewRegimeState begins tracking a freshly detected regime.
func NewRegimeState(regime MarketRegime, confidence decimal.Decimal, timestamp int64, price decimal.Decimal) RegimeState {
	return RegimeState{
		CurrentRegime:  regime,
		Confidence:     confidence,
		Duration:       1,
		StartTimestamp: timestamp,
		StartPrice:     price,
	}
}

// ShouldTransition implements the transition policy of spec.md §4.F:
// switch regimes when the new confidence is high, or when the current
// confidence has degraded.
func (s RegimeState) ShouldTransition(newConfidence decimal.Decimal) bool {
	return newConfidence.GreaterThan(decimal.NewFromFloat(0.6)) ||
		s.Confidence.LessThan(decimal.NewFromFloat(0.3))
}

// Transition replaces the state with a fresh regime, or persists the
// current one with an averaged confidence and an incremented duration.
func (s RegimeState) Transition(regime MarketRegime, confidence decimal.Decimal, timestamp int64, price decimal.Decimal) RegimeState {
	if !s.CurrentRegime.Equal(regime) && s.ShouldTransition(confidence) {
		return NewRegimeState(regime, confidence, timestamp, price)
	}
	s.Confidence = s.Confidence.Add(confidence).Div(decimal.NewFromInt(2))
	s.Duration++
	return s
}
