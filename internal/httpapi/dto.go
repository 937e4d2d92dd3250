package httpapi

import (
	"github.com/shopspring/decimal"

	"github.com/marketsynth/gends/internal/marketdata"
	"github.com/marketsynth/gends/internal/pricing"
	"github.com/marketsynth/gends/internal/regimes"
)

// errorResponse mirrors the teacher's httputil.ErrorResponse shape.
type errorResponse struct {
	Error string `json:"error"`
}

// createSymbolRequest is the body of POST /v1/symbols/{symbol}.
type createSymbolRequest struct {
	StartingPrice    *float64 `json:"starting_price,omitempty"`
	MinPrice         *float64 `json:"min_price,omitempty"`
	MaxPrice         *float64 `json:"max_price,omitempty"`
	TrendDirection   *string  `json:"trend_direction,omitempty"`
	TrendStrength    *float64 `json:"trend_strength,omitempty"`
	Volatility       *float64 `json:"volatility,omitempty"`
	NumPoints        *uint    `json:"num_points,omitempty"`
	BaseVolume       *uint64  `json:"base_volume,omitempty"`
	VolumeVolatility *float64 `json:"volume_volatility,omitempty"`
	Seed             *uint64  `json:"seed,omitempty"`
	Preset           string   `json:"preset,omitempty"`
}

func (req createSymbolRequest) toConfig() (marketdata.GeneratorConfig, error) {
	var b *marketdata.ConfigBuilder
	switch req.Preset {
	case "volatile":
		b = marketdata.Volatile()
	case "stable":
		b = marketdata.Stable()
	case "bull":
		b = marketdata.BullMarket()
	case "bear":
		b = marketdata.BearMarket()
	default:
		b = marketdata.NewConfigBuilder()
	}

	if req.StartingPrice != nil {
		b.StartingPrice(pricing.NewFromFloat(*req.StartingPrice, pricing.Zero()))
	}
	if req.MinPrice != nil {
		b.MinPrice(pricing.NewFromFloat(*req.MinPrice, pricing.Zero()))
	}
	if req.MaxPrice != nil {
		b.MaxPrice(pricing.NewFromFloat(*req.MaxPrice, pricing.Zero()))
	}
	if req.TrendDirection != nil {
		dir, err := parseTrendDirection(*req.TrendDirection)
		if err != nil {
			return marketdata.GeneratorConfig{}, err
		}
		strength := 0.0
		if req.TrendStrength != nil {
			strength = *req.TrendStrength
		}
		b.Trend(dir, decimal.NewFromFloat(strength))
	}
	if req.Volatility != nil {
		b.Volatility(decimal.NewFromFloat(*req.Volatility))
	}
	if req.NumPoints != nil {
		b.NumPoints(*req.NumPoints)
	}
	if req.BaseVolume != nil {
		b.BaseVolume(*req.BaseVolume)
	}
	if req.VolumeVolatility != nil {
		b.VolumeVolatility(*req.VolumeVolatility)
	}
	if req.Seed != nil {
		b.Seed(*req.Seed)
	}
	return b.Build()
}

func parseTrendDirection(s string) (marketdata.TrendDirection, error) {
	switch s {
	case "bullish":
		return marketdata.Bullish, nil
	case "bearish":
		return marketdata.Bearish, nil
	case "sideways", "":
		return marketdata.Sideways, nil
	default:
		return marketdata.Sideways, &marketdata.ConfigError{Kind: marketdata.InvalidTrend, Reason: "unknown trend_direction: " + s}
	}
}

type configResponse struct {
	StartingPrice    string  `json:"starting_price"`
	MinPrice         string  `json:"min_price"`
	MaxPrice         string  `json:"max_price"`
	TrendDirection   string  `json:"trend_direction"`
	TrendStrength    string  `json:"trend_strength"`
	Volatility       string  `json:"volatility"`
	TimeIntervalMs   int64   `json:"time_interval_ms"`
	NumPoints        uint    `json:"num_points"`
	BaseVolume       uint64  `json:"base_volume"`
	VolumeVolatility float64 `json:"volume_volatility"`
	Seed             *uint64 `json:"seed,omitempty"`
}

func toConfigResponse(cfg marketdata.GeneratorConfig) configResponse {
	return configResponse{
		StartingPrice:    cfg.StartingPrice.String(),
		MinPrice:         cfg.MinPrice.String(),
		MaxPrice:         cfg.MaxPrice.String(),
		TrendDirection:   cfg.TrendDirection.String(),
		TrendStrength:    cfg.TrendStrength.String(),
		Volatility:       cfg.Volatility.String(),
		TimeIntervalMs:   cfg.TimeInterval.Millis(),
		NumPoints:        cfg.NumPoints,
		BaseVolume:       cfg.BaseVolume,
		VolumeVolatility: cfg.VolumeVolatility,
		Seed:             cfg.Seed,
	}
}

type ohlcResponse struct {
	Timestamp int64  `json:"timestamp"`
	Open      string `json:"open"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Close     string `json:"close"`
	Volume    uint64 `json:"volume"`
}

func toOHLCResponse(c marketdata.OHLC) ohlcResponse {
	return ohlcResponse{
		Timestamp: c.Timestamp,
		Open:      c.Open.String(),
		High:      c.High.String(),
		Low:       c.Low.String(),
		Close:     c.Close.String(),
		Volume:    uint64(c.Volume),
	}
}

type tickResponse struct {
	Timestamp int64   `json:"timestamp"`
	Price     string  `json:"price"`
	Volume    uint64  `json:"volume"`
	Bid       *string `json:"bid,omitempty"`
	Ask       *string `json:"ask,omitempty"`
}

func toTickResponse(t marketdata.Tick) tickResponse {
	resp := tickResponse{Timestamp: t.Timestamp, Price: t.Price.String(), Volume: uint64(t.Volume)}
	if t.Bid != nil {
		s := t.Bid.String()
		resp.Bid = &s
	}
	if t.Ask != nil {
		s := t.Ask.String()
		resp.Ask = &s
	}
	return resp
}

type regimeResponse struct {
	Regime         string `json:"regime"`
	Confidence     string `json:"confidence"`
	Duration       uint   `json:"duration"`
	StartTimestamp int64  `json:"start_timestamp"`
}

func toRegimeResponse(s regimes.RegimeState) regimeResponse {
	return regimeResponse{
		Regime:         s.CurrentRegime.String(),
		Confidence:     s.Confidence.String(),
		Duration:       s.Duration,
		StartTimestamp: s.StartTimestamp,
	}
}

// scheduleInfoResponse reports the controller's schedule snapshot;
// regimeStatusResponse pairs it with the detector's current state for
// SPEC_FULL.md's combined GET /v1/symbols/{symbol}/regime contract.
type scheduleInfoResponse struct {
	CurrentRegime          string  `json:"current_regime"`
	CurrentSegmentProgress float64 `json:"current_segment_progress"`
	TotalProgress          uint    `json:"total_progress"`
	IsComplete             bool    `json:"is_complete"`
	RemainingSegments      int     `json:"remaining_segments"`
	InTransition           bool    `json:"in_transition"`
}

func toScheduleInfoResponse(info regimes.ScheduleInfo) scheduleInfoResponse {
	return scheduleInfoResponse{
		CurrentRegime:          info.CurrentRegime.String(),
		CurrentSegmentProgress: info.CurrentSegmentProgress,
		TotalProgress:          info.TotalProgress,
		IsComplete:             info.IsComplete,
		RemainingSegments:      info.RemainingSegments,
		InTransition:           info.InTransition,
	}
}

type regimeStatusResponse struct {
	Detected *regimeResponse       `json:"detected,omitempty"`
	Control  *scheduleInfoResponse `json:"control,omitempty"`
}

type forceRegimeRequest struct {
	Regime             string `json:"regime"`
	Duration           uint   `json:"duration"`
	TransitionDuration uint   `json:"transition_duration"`
}

func (req forceRegimeRequest) toRegime() (regimes.MarketRegime, error) {
	switch req.Regime {
	case "bull":
		return regimes.BullRegime(), nil
	case "bear":
		return regimes.BearRegime(), nil
	case "sideways":
		return regimes.SidewaysRegime(), nil
	default:
		return regimes.MarketRegime{}, &marketdata.ConfigError{Kind: marketdata.InvalidParameter, Reason: "unknown regime: " + req.Regime}
	}
}
