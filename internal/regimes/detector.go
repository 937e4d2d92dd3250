package regimes

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/marketsynth/gends/internal/marketdata"
	"github.com/marketsynth/gends/internal/statistics"
)

const (
	smaShortPeriod   = 5
	smaLongPeriod    = 20
	trendThreshold   = 0.01
	maxVolatilityBuf = 500 // generous cap; percentile recompute only looks at the tail
)

// Detector is the online volatility-based regime classifier: it holds a
// rolling statistics window plus a buffer of observed volatilities used
// both for percentile reclassification and for clustering analysis.
type Detector struct {
	stats       *statistics.RollingStatistics
	closes      []decimal.Decimal
	volBuffer   []decimal.Decimal
	percentiles VolatilityPercentiles
	state       *RegimeState
	pushCount   int
}

// NewDetector builds a detector with the given rolling window size.
func NewDetector(window int) *Detector {
	return &Detector{
		stats:       statistics.New(window),
		percentiles: DefaultVolatilityPercentiles(),
	}
}

// Reset clears all detector state, including any current RegimeState.
func (d *Detector) Reset() {
	d.stats.Reset()
	d.closes = nil
	d.volBuffer = nil
	d.percentiles = DefaultVolatilityPercentiles()
	d.state = nil
	d.pushCount = 0
}

// Current returns the detector's current regime state, if any.
func (d *Detector) Current() (RegimeState, bool) {
	if d.state == nil {
		return RegimeState{}, false
	}
	return *d.state, true
}

// Update pushes a new candle through the detector and returns the
// resulting RegimeState once enough data has accumulated; otherwise it
// reports "no state yet" via the boolean, never an error (spec.md §7).
func (d *Detector) Update(candle marketdata.OHLC) (RegimeState, bool) {
	close := candle.Close.Decimal()
	d.stats.Update(candle.Close)
	d.closes = append(d.closes, close)
	if len(d.closes) > smaLongPeriod {
		d.closes = d.closes[1:]
	}
	d.pushCount++

	if !d.stats.IsReady() {
		return RegimeState{}, false
	}

	vol := d.stats.StdDev()
	d.volBuffer = append(d.volBuffer, vol)
	if len(d.volBuffer) > maxVolatilityBuf {
		d.volBuffer = d.volBuffer[1:]
	}

	every, minObservations := PercentileUpdateCadence()
	if len(d.volBuffer) >= minObservations && d.pushCount%every == 0 {
		d.percentiles = recomputePercentiles(d.volBuffer)
	}

	volClass := d.percentiles.Classify(vol)
	trend := identifyTrend(d.closes)
	regime, confidence := d.combine(volClass, trend)

	if d.state == nil {
		s := NewRegimeState(regime, confidence, candle.Timestamp, close)
		d.state = &s
		return *d.state, true
	}

	next := d.state.Transition(regime, confidence, candle.Timestamp, close)
	d.state = &next
	return *d.state, true
}

// combine folds the volatility class and trend into a regime + blended
// confidence, per spec.md §4.F.
func (d *Detector) combine(volClass VolatilityRegimeKind, trend MarketRegime) (MarketRegime, decimal.Decimal) {
	confidence := decimal.NewFromFloat(0.5)
	switch volClass {
	case Low:
		confidence = confidence.Add(decimal.NewFromFloat(0.2))
	case NormalVol:
		confidence = confidence.Add(decimal.NewFromFloat(0.1))
	case High:
		confidence = confidence.Sub(decimal.NewFromFloat(0.1))
	case Extreme:
		confidence = confidence.Sub(decimal.NewFromFloat(0.2))
	}

	sharpe := d.sharpeLikeSignal()
	if sharpe.Abs().GreaterThan(decimal.NewFromInt(1)) {
		confidence = confidence.Add(decimal.NewFromFloat(0.15))
	}

	momentum := d.stats.Momentum()
	var regime MarketRegime
	switch {
	case volClass == Extreme:
		regime = BearRegime()
	case momentum.GreaterThan(decimal.NewFromFloat(0.05)) && volClass != High:
		regime = BullRegime()
	case momentum.LessThan(decimal.NewFromFloat(-0.05)) && volClass != High:
		regime = BearRegime()
	default:
		regime = volClass.ToMarketRegime(trend)
	}

	if confidence.LessThan(decimal.Zero) {
		confidence = decimal.Zero
	}
	if confidence.GreaterThan(decimal.NewFromInt(1)) {
		confidence = decimal.NewFromInt(1)
	}

	clustering := d.clusteringFactor(volClass)
	blended := confidence.Add(clustering.Mul(decimal.NewFromFloat(0.2))).Div(decimal.NewFromFloat(1.2))
	if blended.GreaterThan(decimal.NewFromInt(1)) {
		blended = decimal.NewFromInt(1)
	}
	if blended.LessThan(decimal.Zero) {
		blended = decimal.Zero
	}

	return regime, blended
}

// sharpeLikeSignal is mean return over std dev, a crude reward/risk
// signal used only to adjust confidence (not itself a regime).
func (d *Detector) sharpeLikeSignal() decimal.Decimal {
	std := d.stats.StdDev()
	if std.IsZero() {
		return decimal.Zero
	}
	return d.stats.MeanReturn().Div(std)
}

// clusteringFactor is the fraction of the last 10 volatility observations
// that share the current class, per spec.md §4.F.
func (d *Detector) clusteringFactor(current VolatilityRegimeKind) decimal.Decimal {
	n := len(d.volBuffer)
	if n == 0 {
		return decimal.Zero
	}
	window := 10
	if n < window {
		window = n
	}
	tail := d.volBuffer[n-window:]
	matches := 0
	for _, v := range tail {
		if d.percentiles.Classify(v) == current {
			matches++
		}
	}
	return decimal.NewFromInt(int64(matches)).Div(decimal.NewFromInt(int64(window)))
}

func recomputePercentiles(buf []decimal.Decimal) VolatilityPercentiles {
	sorted := make([]decimal.Decimal, len(buf))
	copy(sorted, buf)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	nearestRank := func(pct int) decimal.Decimal {
		idx := len(sorted) * pct / 100
		if idx >= len(sorted) {
			idx = len(sorted) - 1
		}
		return sorted[idx]
	}

	return VolatilityPercentiles{
		Low:     nearestRank(25),
		Normal:  nearestRank(50),
		High:    nearestRank(75),
		Extreme: nearestRank(90),
	}
}

// identifyTrend classifies SMA(5) vs SMA(20) of closes, with a 1%
// threshold, per spec.md §4.F.
func identifyTrend(closes []decimal.Decimal) MarketRegime {
	if len(closes) < smaLongPeriod {
		return SidewaysRegime()
	}
	short := sma(closes[len(closes)-smaShortPeriod:])
	long := sma(closes[len(closes)-smaLongPeriod:])
	if long.IsZero() {
		return SidewaysRegime()
	}
	diff := short.Sub(long).Div(long)
	threshold := decimal.NewFromFloat(trendThreshold)
	switch {
	case diff.GreaterThan(threshold):
		return BullRegime()
	case diff.LessThan(threshold.Neg()):
		return BearRegime()
	default:
		return SidewaysRegime()
	}
}

func sma(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(values))))
}
