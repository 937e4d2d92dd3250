package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/marketsynth/gends/internal/generator"
)

// streamer upgrades a symbol stream request and pushes one tick per
// interval, mirroring the teacher's MarketWS (internal/marketdata/ws.go):
// a ticker loop paired with a reader goroutine that only watches for
// the client closing the connection.
type streamer struct {
	upgrader websocket.Upgrader
	interval time.Duration
	log      *zap.SugaredLogger
	metrics  *metrics
}

func newStreamer(origin string, interval time.Duration, m *metrics, log *zap.SugaredLogger) *streamer {
	return &streamer{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return allowOrigin(r, origin) },
		},
		interval: interval,
		log:      log,
		metrics:  m,
	}
}

func allowOrigin(r *http.Request, origin string) bool {
	if origin == "" || origin == "*" {
		return true
	}
	return r.Header.Get("Origin") == origin
}

// Stream handles GET /v1/symbols/{symbol}/stream.
func (s *Server) Stream(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	conn, err := s.streamer.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	s.metrics.streamClients.Inc()
	defer s.metrics.streamClients.Dec()

	ticker := time.NewTicker(s.streamer.interval)
	defer ticker.Stop()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			var resp tickResponse
			sess.WithLock(func(g *generator.Generator) {
				resp = toTickResponse(g.GenerateTick())
			})
			s.metrics.ticksGenerated.Inc()
			if err := conn.WriteJSON(resp); err != nil {
				return
			}
		}
	}
}
