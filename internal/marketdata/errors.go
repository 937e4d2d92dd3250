package marketdata

import "fmt"

// ConfigErrorKind is the closed set of validation failure categories.
type ConfigErrorKind string

const (
	InvalidPrice      ConfigErrorKind = "invalid_price"
	InvalidVolatility ConfigErrorKind = "invalid_volatility"
	InvalidTrend      ConfigErrorKind = "invalid_trend"
	InvalidParameter  ConfigErrorKind = "invalid_parameter"
)

// ConfigError is returned by the builder/validator and by SetConfig; it
// never indicates a runtime generation failure.
type ConfigError struct {
	Kind   ConfigErrorKind
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("marketdata: %s: %s", e.Kind, e.Reason)
}

func newConfigError(kind ConfigErrorKind, reason string) *ConfigError {
	return &ConfigError{Kind: kind, Reason: reason}
}

// ConstructionError wraps a rejected distribution parameter (e.g. a
// negative standard deviation reaching the sampler).
type ConstructionError struct {
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("marketdata: construction: %s", e.Reason)
}
