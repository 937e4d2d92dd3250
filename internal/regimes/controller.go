package regimes

import "github.com/marketsynth/gends/internal/marketdata"

// ScheduleInfo is the controller's observable snapshot, exposed to higher
// layers per spec.md §6.
type ScheduleInfo struct {
	CurrentRegime          MarketRegime
	CurrentSegmentProgress float64
	TotalProgress          uint
	IsComplete             bool
	RemainingSegments      int
	InTransition           bool
}

// Controller owns a schedule, a base config, the currently effective
// config, and an optional in-flight transition.
type Controller struct {
	schedule      *RegimeSchedule
	baseConfig    marketdata.GeneratorConfig
	currentConfig marketdata.GeneratorConfig
	transition    *TransitionState
	lastRegime    MarketRegime
	hasLastRegime bool
}

// NewController builds a controller over the given base config and
// schedule; the current config starts as the base config until the
// first Advance picks up the schedule's head segment.
func NewController(base marketdata.GeneratorConfig, schedule *RegimeSchedule) *Controller {
	return &Controller{
		schedule:      schedule,
		baseConfig:    base,
		currentConfig: base,
	}
}

// CurrentConfig returns the controller's effective kernel configuration.
func (c *Controller) CurrentConfig() marketdata.GeneratorConfig { return c.currentConfig }

// CurrentRegime returns the schedule's current head regime, if any.
func (c *Controller) CurrentRegime() (MarketRegime, bool) {
	seg, ok := c.schedule.CurrentSegment()
	if !ok {
		return MarketRegime{}, false
	}
	return seg.Regime, true
}

// Advance steps the active transition (if any), then the schedule, then
// installs a new transition or config swap on a detected regime change.
func (c *Controller) Advance() {
	if c.transition != nil {
		c.transition.Advance()
		c.currentConfig = c.transition.Interpolated()
		if c.transition.IsComplete() {
			c.transition = nil
		}
	}

	previous, hadPrevious := c.lastRegime, c.hasLastRegime
	c.schedule.Advance()

	seg, ok := c.schedule.CurrentSegment()
	if !ok {
		return
	}
	c.lastRegime = seg.Regime
	c.hasLastRegime = true

	changed := !hadPrevious || !previous.Equal(seg.Regime)
	if !changed {
		return
	}

	newConfig := mergeConfigs(c.baseConfig, seg.Config)
	if seg.TransitionDuration > 0 {
		c.transition = NewTransition(c.currentConfig, newConfig, seg.TransitionDuration)
		c.currentConfig = c.transition.Interpolated()
	} else {
		c.currentConfig = newConfig
	}
}

// mergeConfigs overrides only trend_direction, trend_strength, and
// volatility from the segment config onto the base; everything else is
// inherited from base (spec.md §4.G).
func mergeConfigs(base, segmentConfig marketdata.GeneratorConfig) marketdata.GeneratorConfig {
	merged := base
	merged.TrendDirection = segmentConfig.TrendDirection
	merged.TrendStrength = segmentConfig.TrendStrength
	merged.Volatility = segmentConfig.Volatility
	return merged
}

// ForceRegime replaces the entire schedule with a single synthesized
// segment, per spec.md §4.G's force_regime table.
func (c *Controller) ForceRegime(regime MarketRegime, duration uint, transitionDuration uint) {
	seg := NewSegment(regime, duration, c.baseConfig)
	if transitionDuration > 0 {
		seg = seg.WithTransition(transitionDuration)
	}
	c.schedule = NewSchedule([]RegimeSegment{seg})
	c.transition = nil
	c.hasLastRegime = false
}

// AddSegment appends a segment to the live schedule.
func (c *Controller) AddSegment(seg RegimeSegment) {
	c.schedule.AddSegment(seg)
}

// Reset rewinds the schedule to its original segments and drops any
// in-flight transition.
func (c *Controller) Reset() {
	c.schedule.Reset()
	c.transition = nil
	c.currentConfig = c.baseConfig
	c.hasLastRegime = false
}

// Info returns the controller's observable snapshot.
func (c *Controller) Info() ScheduleInfo {
	regime, _ := c.CurrentRegime()
	return ScheduleInfo{
		CurrentRegime:          regime,
		CurrentSegmentProgress: c.schedule.CurrentSegmentProgress(),
		TotalProgress:          c.schedule.TotalProgress(),
		IsComplete:             c.schedule.IsComplete(),
		RemainingSegments:      c.schedule.RemainingSegments(),
		InTransition:           c.transition != nil,
	}
}
