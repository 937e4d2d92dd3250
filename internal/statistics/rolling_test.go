package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marketsynth/gends/internal/pricing"
)

func push(r *RollingStatistics, values ...float64) {
	for _, v := range values {
		r.Update(pricing.NewFromFloat(v, pricing.Zero()))
	}
}

func TestMeanReturn(t *testing.T) {
	r := New(20)
	push(r, 100, 110, 105)
	// returns: 0.10, -0.0454545...
	assert.InDelta(t, (0.1-0.045454545)/2, r.MeanReturn().InexactFloat64(), 1e-6)
}

func TestStdDevRequiresTwoReturns(t *testing.T) {
	r := New(20)
	push(r, 100)
	assert.True(t, r.StdDev().IsZero())
}

func TestMomentum(t *testing.T) {
	r := New(20)
	push(r, 100, 110, 121)
	assert.InDelta(t, 0.21, r.Momentum().InexactFloat64(), 1e-6)
}

func TestMaxDrawdown(t *testing.T) {
	r := New(20)
	push(r, 100, 120, 90, 110)
	assert.InDelta(t, 0.25, r.MaxDrawdown().InexactFloat64(), 1e-6)
}

func TestIsReady(t *testing.T) {
	r := New(20)
	assert.False(t, r.IsReady())
	for i := 0; i < 10; i++ {
		push(r, 100+float64(i))
	}
	assert.True(t, r.IsReady())
}

func TestResetClearsState(t *testing.T) {
	r := New(20)
	push(r, 100, 110)
	r.Reset()
	assert.Equal(t, 0, r.DataPoints())
	assert.True(t, r.MeanReturn().IsZero())
}

func TestRingEvictsOldest(t *testing.T) {
	r := New(3)
	push(r, 100, 101, 102, 103, 104)
	assert.Equal(t, 3, r.DataPoints())
}
