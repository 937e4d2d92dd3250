// Package httpapi is the thin HTTP/WebSocket façade over the generator
// engine, grounded on the teacher's internal/httpserver router-grouping
// style and internal/marketdata's per-pair WebSocket handler.
package httpapi

import (
	"sync"

	"github.com/marketsynth/gends/internal/generator"
	"github.com/marketsynth/gends/internal/marketdata"
)

// Session pairs one symbol with its own generator instance. Every
// mutating operation on the generator goes through the session's lock,
// mirroring the teacher's per-account locking in internal/accounts.
type Session struct {
	mu        sync.Mutex
	Symbol    string
	Generator *generator.Generator
}

func (s *Session) WithLock(fn func(g *generator.Generator)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.Generator)
}

// Registry holds one Session per symbol. Symbols are created on demand
// via Create and looked up by callers that never see the underlying
// map directly.
type Registry struct {
	mu      sync.RWMutex
	symbols map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{symbols: make(map[string]*Session)}
}

// Create registers a new symbol with the given config, replacing any
// existing session for that symbol.
func (r *Registry) Create(symbol string, cfg marketdata.GeneratorConfig) (*Session, error) {
	gen, err := generator.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	sess := &Session{Symbol: symbol, Generator: gen}
	r.mu.Lock()
	r.symbols[symbol] = sess
	r.mu.Unlock()
	return sess, nil
}

func (r *Registry) Get(symbol string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.symbols[symbol]
	return s, ok
}

// Symbols returns the registered symbol names in no particular order.
func (r *Registry) Symbols() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.symbols))
	for k := range r.symbols {
		out = append(out, k)
	}
	return out
}

func (r *Registry) Remove(symbol string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.symbols, symbol)
}
