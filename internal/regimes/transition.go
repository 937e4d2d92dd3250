package regimes

import (
	"github.com/shopspring/decimal"

	"github.com/marketsynth/gends/internal/marketdata"
)

// TransitionState linearly interpolates between two configs over a fixed
// number of steps, flipping trend direction at the midpoint rather than
// interpolating it (spec.md §4.G).
type TransitionState struct {
	From, To    marketdata.GeneratorConfig
	Duration    uint
	CurrentStep uint
}

// NewTransition begins a transition from 'from' to 'to' over 'duration'
// steps.
func NewTransition(from, to marketdata.GeneratorConfig, duration uint) *TransitionState {
	return &TransitionState{From: from, To: to, Duration: duration}
}

// Advance moves the transition forward one step.
func (t *TransitionState) Advance() {
	if t.CurrentStep < t.Duration {
		t.CurrentStep++
	}
}

// IsComplete reports whether the transition has reached its duration.
func (t *TransitionState) IsComplete() bool {
	return t.CurrentStep >= t.Duration
}

// Progress returns CurrentStep/Duration in [0,1].
func (t *TransitionState) Progress() float64 {
	if t.Duration == 0 {
		return 1
	}
	return float64(t.CurrentStep) / float64(t.Duration)
}

// Interpolated returns the config at the transition's current step:
// trend_strength and volatility interpolate linearly, trend direction
// steps at 50% progress, everything else is inherited from To.
func (t *TransitionState) Interpolated() marketdata.GeneratorConfig {
	progress := t.Progress()
	progressDec := decimal.NewFromFloat(progress)

	cfg := t.To
	cfg.TrendStrength = t.From.TrendStrength.Add(t.To.TrendStrength.Sub(t.From.TrendStrength).Mul(progressDec))
	cfg.Volatility = t.From.Volatility.Add(t.To.Volatility.Sub(t.From.Volatility).Mul(progressDec))
	if progress < 0.5 {
		cfg.TrendDirection = t.From.TrendDirection
	} else {
		cfg.TrendDirection = t.To.TrendDirection
	}
	return cfg
}
