package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromFloatRejectsNaN(t *testing.T) {
	fallback := NewFromFloat(100, Zero())
	nan := 0.0
	nan = nan / nan
	p := NewFromFloat(nan, fallback)
	assert.Equal(t, fallback, p)
}

func TestPriceArithmetic(t *testing.T) {
	p := NewFromFloat(100, Zero())
	factor := decimal.NewFromFloat(1.05)
	got := p.MulFactor(factor)
	assert.Equal(t, "105.00000000", got.String())
}

func TestPriceMinMax(t *testing.T) {
	a := NewFromFloat(10, Zero())
	b := NewFromFloat(20, Zero())
	assert.Equal(t, a, a.Min(b))
	assert.Equal(t, b, a.Max(b))
}

func TestVolumeFromFloat(t *testing.T) {
	assert.Equal(t, Volume(0), VolumeFromFloat(-5))
	assert.Equal(t, Volume(42), VolumeFromFloat(42.9))
}

func TestSqrtApprox(t *testing.T) {
	four := decimal.NewFromInt(4)
	got := SqrtApprox(four)
	diff := got.Sub(decimal.NewFromInt(2)).Abs()
	require.True(t, diff.LessThan(decimal.New(1, -3)), "sqrt(4) approx %s not close to 2", got)

	nine := decimal.NewFromInt(9)
	got = SqrtApprox(nine)
	diff = got.Sub(decimal.NewFromInt(3)).Abs()
	require.True(t, diff.LessThan(decimal.New(1, -3)))

	assert.True(t, SqrtApprox(decimal.NewFromInt(-1)).IsZero())
}
