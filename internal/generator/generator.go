// Package generator implements the orchestrator (spec.md §4.H): the
// public surface that owns the PRNG, the random-walk kernel, wall-clock
// timestamp bookkeeping, and the optional regime detector/controller.
package generator

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marketsynth/gends/internal/marketdata"
	"github.com/marketsynth/gends/internal/prng"
	"github.com/marketsynth/gends/internal/regimes"
	"github.com/marketsynth/gends/internal/walk"
)

const (
	detectorBufferCap  = 200
	tickSpreadFraction = 0.0005
)

// Now is injected so the kernel stays pure; tests and callers can
// override it (spec.md §9's "wall-clock as a parameter" note).
var Now = func() int64 { return time.Now().UnixMilli() }

// Generator is the orchestrator.
type Generator struct {
	config    marketdata.GeneratorConfig
	rng       prng.Source
	kernel    *walk.Kernel
	timestamp int64

	detector   *regimes.Detector
	tracker    *regimes.RegimeTracker
	history    []marketdata.OHLC
	controller *regimes.Controller
}

// New constructs a generator from default config values.
func New() (*Generator, error) {
	cfg, err := marketdata.NewConfigBuilder().Build()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg)
}

// NewWithConfig validates cfg and constructs a generator seeded from
// cfg.Seed, or from OS entropy if absent.
func NewWithConfig(cfg marketdata.GeneratorConfig) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Generator{
		config:    cfg,
		timestamp: Now(),
	}
	g.rng = prng.New(seedOf(cfg))
	g.kernel = walk.New(cfg)
	return g, nil
}

func seedOf(cfg marketdata.GeneratorConfig) uint64 {
	if cfg.Seed != nil {
		return *cfg.Seed
	}
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return uint64(Now())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Config returns the generator's active configuration.
func (g *Generator) Config() marketdata.GeneratorConfig { return g.config }

// SetConfig validates, swaps the configuration, rebuilds the kernel
// (preserving current price), and reseeds the PRNG if the new config
// carries a seed.
func (g *Generator) SetConfig(cfg marketdata.GeneratorConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	current := g.kernel.CurrentPrice()
	g.config = cfg
	g.kernel = walk.NewAt(cfg, current)
	if cfg.Seed != nil {
		g.rng.Reset(*cfg.Seed)
	}
	return nil
}

// SetTimestamp overrides the generator's current timestamp.
func (g *Generator) SetTimestamp(ms int64) { g.timestamp = ms }

// Reset restores the kernel to the starting price, resets the clock to
// now, and reseeds the PRNG if the config carries a seed.
func (g *Generator) Reset() {
	g.kernel.Reset()
	g.timestamp = Now()
	if g.config.Seed != nil {
		g.rng.Reset(*g.config.Seed)
	}
	if g.detector != nil {
		g.detector.Reset()
	}
}

// GenerateOHLC produces one candle, advancing the regime controller (if
// enabled), the kernel, and the clock, and feeding the detector (if
// enabled).
func (g *Generator) GenerateOHLC() (marketdata.OHLC, error) {
	if g.controller != nil {
		g.controller.Advance()
		newConfig := g.controller.CurrentConfig()
		if !sameEffectiveConfig(g.config, newConfig) {
			current := g.kernel.CurrentPrice()
			g.config = newConfig
			g.kernel = walk.NewAt(newConfig, current)
		}
	}

	open, high, low, close := g.kernel.GenerateOHLC(g.rng, walk.DefaultSubTicksPerCandle)
	volume := g.kernel.GenerateVolume(g.rng)
	candle, err := marketdata.NewOHLC(open, high, low, close, volume, g.timestamp)
	if err != nil {
		return marketdata.OHLC{}, err
	}
	g.timestamp += g.config.TimeInterval.Millis()

	if g.detector != nil {
		g.history = append(g.history, candle)
		if len(g.history) > detectorBufferCap {
			g.history = g.history[1:]
		}
		if state, ok := g.detector.Update(candle); ok && g.tracker != nil {
			g.tracker.Record(state)
		}
	}

	return candle, nil
}

// sameEffectiveConfig compares only the fields the controller is allowed
// to mutate (spec.md §4.G's merge rule), so a no-op Advance never
// triggers an unnecessary kernel rebuild.
func sameEffectiveConfig(a, b marketdata.GeneratorConfig) bool {
	return a.TrendDirection == b.TrendDirection &&
		a.TrendStrength.Equal(b.TrendStrength) &&
		a.Volatility.Equal(b.Volatility)
}

// GenerateSeries produces n candles in call order.
func (g *Generator) GenerateSeries(n int) ([]marketdata.OHLC, error) {
	out := make([]marketdata.OHLC, 0, n)
	for i := 0; i < n; i++ {
		c, err := g.GenerateOHLC()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// GenerateTick draws one next_price + volume and synthesizes a default
// 0.1% full spread, advancing the clock by 1000ms.
func (g *Generator) GenerateTick() marketdata.Tick {
	price := g.kernel.NextPrice(g.rng)
	volume := g.kernel.GenerateVolume(g.rng)

	bid := price.MulFactor(decimal.NewFromFloat(1 - tickSpreadFraction))
	ask := price.MulFactor(decimal.NewFromFloat(1 + tickSpreadFraction))

	tick := marketdata.Tick{
		Price:     price,
		Volume:    volume,
		Timestamp: g.timestamp,
		Bid:       &bid,
		Ask:       &ask,
	}
	g.timestamp += 1000
	return tick
}

// GenerateTicks produces n ticks in call order.
func (g *Generator) GenerateTicks(n int) []marketdata.Tick {
	out := make([]marketdata.Tick, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.GenerateTick())
	}
	return out
}

// EnableVolatilityRegimeDetection turns on the online classifier with
// the given rolling window size.
func (g *Generator) EnableVolatilityRegimeDetection(window int) {
	g.detector = regimes.NewDetector(window)
	g.tracker = regimes.NewTracker(detectorBufferCap)
}

// DisableRegimeDetection turns the classifier back off.
func (g *Generator) DisableRegimeDetection() {
	g.detector = nil
	g.tracker = nil
	g.history = nil
}

// EnableRegimeControl installs a schedule-driven controller over the
// generator's base config.
func (g *Generator) EnableRegimeControl(schedule *regimes.RegimeSchedule) {
	g.controller = regimes.NewController(g.config, schedule)
}

// ForceRegime is a no-op when control is disabled (spec.md §7).
func (g *Generator) ForceRegime(regime regimes.MarketRegime, duration, transitionDuration uint) {
	if g.controller == nil {
		return
	}
	g.controller.ForceRegime(regime, duration, transitionDuration)
}

// AddRegimeSegment is a no-op when control is disabled.
func (g *Generator) AddRegimeSegment(seg regimes.RegimeSegment) {
	if g.controller == nil {
		return
	}
	g.controller.AddSegment(seg)
}

// ResetRegimeSchedule is a no-op when control is disabled.
func (g *Generator) ResetRegimeSchedule() {
	if g.controller == nil {
		return
	}
	g.controller.Reset()
}

// CurrentRegime reports the detector's current regime state, if any.
func (g *Generator) CurrentRegime() (regimes.RegimeState, bool) {
	if g.detector == nil {
		return regimes.RegimeState{}, false
	}
	return g.detector.Current()
}

// RegimeControlInfo reports the controller's schedule snapshot, if
// enabled.
func (g *Generator) RegimeControlInfo() (regimes.ScheduleInfo, bool) {
	if g.controller == nil {
		return regimes.ScheduleInfo{}, false
	}
	return g.controller.Info(), true
}

// RegimeAnalytics reports the tracker's transition/distribution
// analytics, if detection is enabled.
func (g *Generator) RegimeAnalytics() (*regimes.RegimeTracker, bool) {
	if g.tracker == nil {
		return nil, false
	}
	return g.tracker, true
}
