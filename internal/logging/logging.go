// Package logging provides the structured logger used by the façade and
// CLI entrypoints. Core packages (pricing, prng, walk, statistics,
// regimes, generator) accept no logger and emit none — logging lives
// only at the ambient edges, same as the teacher keeps log.Printf calls
// out of its domain types.
package logging

import "go.uber.org/zap"

// New builds a production zap logger, or a development one when debug
// is true.
func New(debug bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Noop returns a logger that discards everything, for tests that don't
// want to assert on log output.
func Noop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
