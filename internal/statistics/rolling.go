// Package statistics implements the windowed rolling statistics that the
// volatility regime detector runs against a candle stream: mean/stddev of
// returns, momentum, and drawdown, all maintained with O(1) updates via
// running sums over a fixed-capacity ring.
package statistics

import (
	"github.com/shopspring/decimal"

	"github.com/marketsynth/gends/internal/pricing"
)

// RollingStatistics maintains the last windowSize prices and returns.
type RollingStatistics struct {
	windowSize int

	prices  []decimal.Decimal
	returns []decimal.Decimal

	priceSum        decimal.Decimal
	returnSum       decimal.Decimal
	returnSumSquare decimal.Decimal
}

// New builds a RollingStatistics with the given capacity.
func New(windowSize int) *RollingStatistics {
	return &RollingStatistics{
		windowSize:      windowSize,
		priceSum:        decimal.Zero,
		returnSum:       decimal.Zero,
		returnSumSquare: decimal.Zero,
	}
}

// Update pushes a new price, deriving a return against the previous
// price when one exists.
func (r *RollingStatistics) Update(price pricing.Price) {
	p := price.Decimal()

	if len(r.prices) > 0 {
		prev := r.prices[len(r.prices)-1]
		var ret decimal.Decimal
		if !prev.IsZero() {
			ret = p.Sub(prev).Div(prev)
		}
		r.pushReturn(ret)
	}

	r.pushPrice(p)
}

func (r *RollingStatistics) pushPrice(p decimal.Decimal) {
	r.prices = append(r.prices, p)
	r.priceSum = r.priceSum.Add(p)
	if len(r.prices) > r.windowSize {
		evicted := r.prices[0]
		r.prices = r.prices[1:]
		r.priceSum = r.priceSum.Sub(evicted)
	}
}

func (r *RollingStatistics) pushReturn(ret decimal.Decimal) {
	r.returns = append(r.returns, ret)
	r.returnSum = r.returnSum.Add(ret)
	r.returnSumSquare = r.returnSumSquare.Add(ret.Mul(ret))
	if len(r.returns) > r.windowSize {
		evicted := r.returns[0]
		r.returns = r.returns[1:]
		r.returnSum = r.returnSum.Sub(evicted)
		r.returnSumSquare = r.returnSumSquare.Sub(evicted.Mul(evicted))
	}
}

// DataPoints returns the number of prices observed so far (capped at
// window size).
func (r *RollingStatistics) DataPoints() int { return len(r.prices) }

// IsReady reports whether at least half the window has been filled.
func (r *RollingStatistics) IsReady() bool {
	return len(r.prices) >= r.windowSize/2
}

// MeanReturn is the running average return.
func (r *RollingStatistics) MeanReturn() decimal.Decimal {
	if len(r.returns) == 0 {
		return decimal.Zero
	}
	return r.returnSum.Div(decimal.NewFromInt(int64(len(r.returns))))
}

// StdDev is the sample standard deviation of returns (n-1 denominator,
// n>=2), matching spec.md §4.E.
func (r *RollingStatistics) StdDev() decimal.Decimal {
	n := len(r.returns)
	if n < 2 {
		return decimal.Zero
	}
	mean := r.MeanReturn()
	// sum((r - mean)^2) = sum(r^2) - 2*mean*sum(r) + n*mean^2
	nDec := decimal.NewFromInt(int64(n))
	sumSq := r.returnSumSquare
	sumSq = sumSq.Sub(decimal.NewFromInt(2).Mul(mean).Mul(r.returnSum))
	sumSq = sumSq.Add(nDec.Mul(mean).Mul(mean))
	variance := sumSq.Div(nDec.Sub(decimal.NewFromInt(1)))
	if variance.IsNegative() {
		variance = decimal.Zero
	}
	return pricing.SqrtApprox(variance)
}

// Variance is StdDev squared, exposed separately for callers that want
// the unrooted value.
func (r *RollingStatistics) Variance() decimal.Decimal {
	sd := r.StdDev()
	return sd.Mul(sd)
}

// Momentum is (p_last - p_first) / p_first across the current window.
func (r *RollingStatistics) Momentum() decimal.Decimal {
	if len(r.prices) < 2 {
		return decimal.Zero
	}
	first := r.prices[0]
	last := r.prices[len(r.prices)-1]
	if first.IsZero() {
		return decimal.Zero
	}
	return last.Sub(first).Div(first)
}

// MaxDrawdown is the largest peak-to-trough fractional decline observed
// in the current price window.
func (r *RollingStatistics) MaxDrawdown() decimal.Decimal {
	if len(r.prices) == 0 {
		return decimal.Zero
	}
	maxDD := decimal.Zero
	runningMax := r.prices[0]
	for _, p := range r.prices {
		if p.GreaterThan(runningMax) {
			runningMax = p
		}
		if runningMax.IsZero() {
			continue
		}
		dd := runningMax.Sub(p).Div(runningMax)
		if dd.GreaterThan(maxDD) {
			maxDD = dd
		}
	}
	return maxDD
}

// Reset empties both rings and running sums.
func (r *RollingStatistics) Reset() {
	r.prices = nil
	r.returns = nil
	r.priceSum = decimal.Zero
	r.returnSum = decimal.Zero
	r.returnSumSquare = decimal.Zero
}

// WindowSize returns the configured capacity.
func (r *RollingStatistics) WindowSize() int { return r.windowSize }
