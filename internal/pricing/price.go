// Package pricing implements the fixed-point numeric layer used by the
// generation kernel: prices and volumes carried as decimal.Decimal rather
// than float64, so accumulated random-walk steps never drift from
// representable currency values.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Price is a fixed-point price value.
type Price struct {
	d decimal.Decimal
}

// NewFromFloat builds a Price from a float64. NaN and Inf are not valid
// prices; callers get fallback instead of a silently corrupt value.
func NewFromFloat(v float64, fallback Price) Price {
	if v != v || v > maxFloat || v < -maxFloat { // NaN or out of range
		return fallback
	}
	return Price{d: decimal.NewFromFloat(v)}
}

const maxFloat = 1e18

// NewFromString parses a decimal string price.
func NewFromString(s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("pricing: invalid price %q: %w", s, err)
	}
	return Price{d: d}, nil
}

// Zero is the additive identity.
func Zero() Price { return Price{d: decimal.Zero} }

func (p Price) Decimal() decimal.Decimal { return p.d }

func (p Price) Add(o Price) Price { return Price{d: p.d.Add(o.d)} }
func (p Price) Sub(o Price) Price { return Price{d: p.d.Sub(o.d)} }

// MulFactor scales the price by a dimensionless factor, e.g. (1 + drift + shock).
func (p Price) MulFactor(factor decimal.Decimal) Price {
	return Price{d: p.d.Mul(factor)}
}

func (p Price) Cmp(o Price) int { return p.d.Cmp(o.d) }

func (p Price) LessThan(o Price) bool    { return p.d.LessThan(o.d) }
func (p Price) GreaterThan(o Price) bool { return p.d.GreaterThan(o.d) }

func (p Price) Min(o Price) Price {
	if p.d.LessThanOrEqual(o.d) {
		return p
	}
	return o
}

func (p Price) Max(o Price) Price {
	if p.d.GreaterThanOrEqual(o.d) {
		return p
	}
	return o
}

func (p Price) Abs() Price { return Price{d: p.d.Abs()} }

func (p Price) IsPositive() bool { return p.d.IsPositive() }
func (p Price) IsZero() bool     { return p.d.IsZero() }

func (p Price) Float64() float64 {
	f, _ := p.d.Float64()
	return f
}

func (p Price) String() string { return p.d.StringFixed(8) }

// Volume is a non-negative traded quantity for a period or tick.
type Volume uint64

// VolumeFromFloat truncates and clamps a sampled float64 volume to a
// non-negative integer quantity.
func VolumeFromFloat(v float64) Volume {
	if v != v || v < 0 {
		return 0
	}
	if v > float64(^uint64(0)) {
		return Volume(^uint64(0))
	}
	return Volume(uint64(v))
}

// SqrtApprox approximates the square root of a non-negative decimal via
// Newton's method, matching the epsilon and iteration bound used for the
// detector's volatility statistics.
func SqrtApprox(value decimal.Decimal) decimal.Decimal {
	if value.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	x := value
	lastX := decimal.Zero
	epsilon := decimal.New(1, -6)
	two := decimal.NewFromInt(2)

	for i := 0; i < 20; i++ {
		if x.Sub(lastX).Abs().LessThanOrEqual(epsilon) {
			break
		}
		lastX = x
		x = x.Add(value.Div(x)).Div(two)
	}
	return x
}
