package httpapi

import "github.com/prometheus/client_golang/prometheus"

// metrics groups the façade's prometheus collectors, registered against
// a private registry so tests can build independent instances.
type metrics struct {
	candlesGenerated prometheus.Counter
	ticksGenerated   prometheus.Counter
	symbolsActive    prometheus.Gauge
	requestsTotal    *prometheus.CounterVec
	streamClients    prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		candlesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gends_candles_generated_total",
			Help: "Total number of OHLC candles generated across all symbols.",
		}),
		ticksGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gends_ticks_generated_total",
			Help: "Total number of ticks generated across all symbols.",
		}),
		symbolsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gends_symbols_active",
			Help: "Number of symbols currently registered.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gends_http_requests_total",
			Help: "Total HTTP requests by route and status class.",
		}, []string{"route", "status"}),
		streamClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "gends_stream_clients",
			Help: "Number of connected WebSocket streaming clients.",
		}),
	}
	reg.MustRegister(m.candlesGenerated, m.ticksGenerated, m.symbolsActive, m.requestsTotal, m.streamClients)
	return m
}
