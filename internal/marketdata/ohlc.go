package marketdata

import "github.com/marketsynth/gends/internal/pricing"

// NewOHLC builds a candle and checks the consistency invariant from
// spec.md §3; it returns an error instead of panicking, unlike the
// reference implementation this port is based on.
func NewOHLC(open, high, low, close pricing.Price, volume pricing.Volume, timestamp int64) (OHLC, error) {
	candle := OHLC{Open: open, High: high, Low: low, Close: close, Volume: volume, Timestamp: timestamp}
	if err := candle.checkConsistency(); err != nil {
		return OHLC{}, err
	}
	return candle, nil
}

func (o OHLC) checkConsistency() error {
	maxBody := o.Open.Max(o.Close)
	minBody := o.Open.Min(o.Close)
	if o.High.LessThan(maxBody) {
		return &ConstructionError{Reason: "high must be >= max(open, close)"}
	}
	if o.Low.GreaterThan(minBody) {
		return &ConstructionError{Reason: "low must be <= min(open, close)"}
	}
	if o.High.LessThan(o.Low) {
		return &ConstructionError{Reason: "high must be >= low"}
	}
	if !o.Open.IsPositive() || !o.High.IsPositive() || !o.Low.IsPositive() || !o.Close.IsPositive() {
		return &ConstructionError{Reason: "all prices must be > 0"}
	}
	return nil
}
