package regimes

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketsynth/gends/internal/marketdata"
	"github.com/marketsynth/gends/internal/pricing"
)

func baseConfig(t *testing.T) marketdata.GeneratorConfig {
	t.Helper()
	cfg, err := marketdata.NewConfigBuilder().
		StartingPrice(pricing.NewFromFloat(100, pricing.Zero())).
		Build()
	require.NoError(t, err)
	return cfg
}

// S4 — Schedule ordering.
func TestScheduleOrdering(t *testing.T) {
	base := baseConfig(t)
	schedule := NewSchedule([]RegimeSegment{
		NewSegment(BullRegime(), 5, base),
		NewSegment(BearRegime(), 5, base),
	})
	controller := NewController(base, schedule)

	expected := []MarketRegimeKind{Bull, Bull, Bull, Bull, Bull, Bear, Bear, Bear, Bear, Bear}
	for i := 0; i < 10; i++ {
		controller.Advance()
		regime, ok := controller.CurrentRegime()
		require.True(t, ok)
		assert.Equal(t, expected[i], regime.Kind, "step %d", i+1)
	}
	assert.True(t, controller.Info().IsComplete)
}

// S5 — Repeat cycle.
func TestRepeatCycle(t *testing.T) {
	base := baseConfig(t)
	schedule := NewRepeatingSchedule([]RegimeSegment{
		NewSegment(BullRegime(), 3, base),
		NewSegment(BearRegime(), 2, base),
	})
	controller := NewController(base, schedule)

	expected := []MarketRegimeKind{
		Bull, Bull, Bull, Bear, Bear,
		Bull, Bull, Bull, Bear, Bear,
		Bull, Bull,
	}
	for i := 0; i < 12; i++ {
		controller.Advance()
		regime, ok := controller.CurrentRegime()
		require.True(t, ok)
		assert.Equal(t, expected[i], regime.Kind, "step %d", i+1)
		assert.False(t, controller.Info().IsComplete)
	}
}

// S6 — Force override.
func TestForceOverride(t *testing.T) {
	base := baseConfig(t)
	schedule := NewSchedule([]RegimeSegment{NewSegment(BullRegime(), 100, base)})
	controller := NewController(base, schedule)

	for i := 0; i < 5; i++ {
		controller.Advance()
	}
	regime, _ := controller.CurrentRegime()
	assert.Equal(t, Bull, regime.Kind)

	controller.ForceRegime(BearRegime(), 10, 0)
	for i := 0; i < 3; i++ {
		controller.Advance()
	}
	regime, _ = controller.CurrentRegime()
	assert.Equal(t, Bear, regime.Kind)
}

// Transition interpolation.
func TestTransitionInterpolation(t *testing.T) {
	from := baseConfig(t)
	to := baseConfig(t)
	to.Volatility = from.Volatility.Add(decimal.NewFromFloat(0.2))

	tr := NewTransition(from, to, 4)
	tr.Advance() // step 1/4
	interp := tr.Interpolated()
	expected := from.Volatility.Add(to.Volatility.Sub(from.Volatility).Mul(decimal.NewFromFloat(0.25)))
	assert.True(t, interp.Volatility.Sub(expected).Abs().LessThan(decimal.New(1, -6)))
}
