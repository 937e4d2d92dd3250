package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterConfig carries the façade's construction parameters, mirroring
// the teacher's RouterDeps struct (internal/httpserver.RouterDeps).
type RouterConfig struct {
	Registry     *Registry
	Logger       *zap.SugaredLogger
	StreamOrigin string
	StreamPeriod time.Duration
}

// NewRouter builds the chi mux exposing the routes named in the
// external interfaces section: symbol create/replace, list and config
// lookup (there is no delete route), candle/tick history,
// regime inspection and forcing, a streaming WebSocket, and /metrics.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop().Sugar()
	}
	if cfg.StreamPeriod == 0 {
		cfg.StreamPeriod = 250 * time.Millisecond
	}

	reg := prometheus.NewRegistry()
	m := newMetrics(reg)
	srv := &Server{
		registry: cfg.Registry,
		metrics:  m,
		log:      cfg.Logger,
		streamer: newStreamer(cfg.StreamOrigin, cfg.StreamPeriod, m, cfg.Logger),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(srv.metricsMiddleware)

	r.Get("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}).ServeHTTP)

	r.Route("/v1/symbols", func(r chi.Router) {
		r.Get("/", srv.ListSymbols)
		r.Post("/{symbol}", srv.CreateSymbol)
		r.Get("/{symbol}/config", srv.GetConfig)
		r.Get("/{symbol}/candles", srv.Candles)
		r.Get("/{symbol}/ticks", srv.Ticks)
		r.Get("/{symbol}/regime", srv.Regime)
		r.Post("/{symbol}/regime/force", srv.ForceRegime)
		r.Get("/{symbol}/stream", srv.Stream)
	})

	return r
}
