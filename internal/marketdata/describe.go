package marketdata

import "fmt"

// Describe renders a human-readable one-line summary of a configuration.
// Neither the CLI nor the façade calls it; the façade's config endpoint
// returns structured JSON instead.
func Describe(cfg GeneratorConfig) string {
	return fmt.Sprintf(
		"GeneratorConfig(start=%s min=%s max=%s trend=%s strength=%s vol=%s interval=%s points=%d)",
		cfg.StartingPrice, cfg.MinPrice, cfg.MaxPrice, cfg.TrendDirection,
		cfg.TrendStrength.String(), cfg.Volatility.String(), cfg.TimeInterval, cfg.NumPoints,
	)
}
