// Package marketdata holds the data model shared by the generation
// kernel, the regime subsystems, and the orchestrator: time intervals,
// trend direction, the generator configuration (with its builder, smart
// defaults, and validator), and the OHLC/Tick output shapes.
package marketdata

import (
	"strconv"

	"github.com/marketsynth/gends/internal/pricing"
)

// TimeInterval is the aggregation period for a candle stream.
type TimeInterval struct {
	name          string
	millis        int64
	customSeconds uint32
}

var (
	OneMinute      = TimeInterval{name: "1m", millis: 60_000}
	FiveMinutes    = TimeInterval{name: "5m", millis: 300_000}
	FifteenMinutes = TimeInterval{name: "15m", millis: 900_000}
	ThirtyMinutes  = TimeInterval{name: "30m", millis: 1_800_000}
	OneHour        = TimeInterval{name: "1h", millis: 3_600_000}
	FourHours      = TimeInterval{name: "4h", millis: 14_400_000}
	OneDay         = TimeInterval{name: "1d", millis: 86_400_000}
)

// CustomInterval builds a TimeInterval from an arbitrary second count.
func CustomInterval(seconds uint32) TimeInterval {
	return TimeInterval{name: "custom", millis: int64(seconds) * 1000, customSeconds: seconds}
}

func (t TimeInterval) Millis() int64 { return t.millis }
func (t TimeInterval) Seconds() int64 { return t.millis / 1000 }
func (t TimeInterval) String() string {
	if t.name == "custom" {
		return strconv.FormatInt(t.millis, 10) + "ms"
	}
	return t.name
}

// TrendDirection is the deterministic bias applied by the random-walk
// kernel on top of its stochastic shock.
type TrendDirection int

const (
	Sideways TrendDirection = iota
	Bullish
	Bearish
)

// Sign returns the drift sign: +1 Bullish, -1 Bearish, 0 Sideways.
func (d TrendDirection) Sign() int {
	switch d {
	case Bullish:
		return 1
	case Bearish:
		return -1
	default:
		return 0
	}
}

func (d TrendDirection) String() string {
	switch d {
	case Bullish:
		return "bullish"
	case Bearish:
		return "bearish"
	default:
		return "sideways"
	}
}

// OHLC is one aggregated candle.
type OHLC struct {
	Open, High, Low, Close pricing.Price
	Volume                 pricing.Volume
	Timestamp              int64
}

// Range returns High - Low.
func (o OHLC) Range() pricing.Price { return o.High.Sub(o.Low) }

// BodySize returns |Close - Open|.
func (o OHLC) BodySize() pricing.Price {
	if o.Close.GreaterThan(o.Open) {
		return o.Close.Sub(o.Open)
	}
	return o.Open.Sub(o.Close)
}

func (o OHLC) IsBullish() bool { return o.Close.GreaterThan(o.Open) }
func (o OHLC) IsBearish() bool { return o.Open.GreaterThan(o.Close) }

// Tick is a single price observation, optionally with a bid/ask spread.
type Tick struct {
	Price     pricing.Price
	Volume    pricing.Volume
	Timestamp int64
	Bid, Ask  *pricing.Price
}

// Spread returns Ask-Bid when both are set.
func (t Tick) Spread() (pricing.Price, bool) {
	if t.Bid == nil || t.Ask == nil {
		return pricing.Zero(), false
	}
	return t.Ask.Sub(*t.Bid), true
}
