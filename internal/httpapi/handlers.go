package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/marketsynth/gends/internal/generator"
	"github.com/marketsynth/gends/internal/marketdata"
)

// Server wires the registry, metrics and logger into chi handler
// methods, mirroring the teacher's *Handler-per-concern structuring
// (internal/marketdata.Handler, internal/volatility.Handler).
type Server struct {
	registry *Registry
	metrics  *metrics
	log      *zap.SugaredLogger
	streamer *streamer
}

const defaultHistoryLimit = 200

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusForConfigError maps the closed ConfigError taxonomy onto HTTP
// 400, per SPEC_FULL.md's error-translation rule.
func statusForConfigError(err error) int {
	if _, ok := err.(*marketdata.ConfigError); ok {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	symbol := chi.URLParam(r, "symbol")
	sess, ok := s.registry.Get(symbol)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown symbol: "+symbol)
		return nil, false
	}
	return sess, true
}

// ListSymbols handles GET /v1/symbols.
func (s *Server) ListSymbols(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"symbols": s.registry.Symbols()})
}

// CreateSymbol handles POST /v1/symbols/{symbol}.
func (s *Server) CreateSymbol(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	var req createSymbolRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed request body: "+err.Error())
			return
		}
	}
	cfg, err := req.toConfig()
	if err != nil {
		writeError(w, statusForConfigError(err), err.Error())
		return
	}
	if _, err := s.registry.Create(symbol, cfg); err != nil {
		writeError(w, statusForConfigError(err), err.Error())
		return
	}
	s.metrics.symbolsActive.Set(float64(len(s.registry.Symbols())))
	s.log.Infow("symbol created", "symbol", symbol)
	writeJSON(w, http.StatusCreated, toConfigResponse(cfg))
}

// GetConfig handles GET /v1/symbols/{symbol}/config.
func (s *Server) GetConfig(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var cfg marketdata.GeneratorConfig
	sess.WithLock(func(g *generator.Generator) {
		cfg = g.Config()
	})
	writeJSON(w, http.StatusOK, toConfigResponse(cfg))
}

func parseN(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("n"))
	if err != nil || n <= 0 {
		return defaultHistoryLimit
	}
	return n
}

// Candles handles GET /v1/symbols/{symbol}/candles?n=.
func (s *Server) Candles(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	n := parseN(r)
	var candles []marketdata.OHLC
	var err error
	sess.WithLock(func(g *generator.Generator) {
		candles, err = g.GenerateSeries(n)
	})
	if err != nil {
		writeError(w, statusForConfigError(err), err.Error())
		return
	}
	s.metrics.candlesGenerated.Add(float64(len(candles)))
	out := make([]ohlcResponse, len(candles))
	for i, c := range candles {
		out[i] = toOHLCResponse(c)
	}
	writeJSON(w, http.StatusOK, map[string]any{"candles": out})
}

// Ticks handles GET /v1/symbols/{symbol}/ticks?n=.
func (s *Server) Ticks(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	n := parseN(r)
	var raw []marketdata.Tick
	sess.WithLock(func(g *generator.Generator) {
		raw = g.GenerateTicks(n)
	})
	ticks := make([]tickResponse, len(raw))
	for i, t := range raw {
		ticks[i] = toTickResponse(t)
	}
	s.metrics.ticksGenerated.Add(float64(len(raw)))
	writeJSON(w, http.StatusOK, map[string]any{"ticks": ticks})
}

// Regime handles GET /v1/symbols/{symbol}/regime, combining the
// detector's current state and the controller's schedule snapshot.
func (s *Server) Regime(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var resp regimeStatusResponse
	sess.WithLock(func(g *generator.Generator) {
		if state, has := g.CurrentRegime(); has {
			detected := toRegimeResponse(state)
			resp.Detected = &detected
		}
		if info, has := g.RegimeControlInfo(); has {
			control := toScheduleInfoResponse(info)
			resp.Control = &control
		}
	})
	if resp.Detected == nil && resp.Control == nil {
		writeError(w, http.StatusNotFound, "neither regime detection nor regime control is enabled for this symbol")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ForceRegime handles POST /v1/symbols/{symbol}/regime/force.
func (s *Server) ForceRegime(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req forceRegimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body: "+err.Error())
		return
	}
	regime, err := req.toRegime()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sess.WithLock(func(g *generator.Generator) {
		g.ForceRegime(regime, req.Duration, req.TransitionDuration)
	})
	w.WriteHeader(http.StatusNoContent)
}
