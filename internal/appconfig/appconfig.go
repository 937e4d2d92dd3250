// Package appconfig loads the cmd/gends "serve" entrypoint's runtime
// settings from the environment via viper, replacing the teacher's
// manual os.Getenv + missing-keys-accumulator pattern
// (internal/config/config.go) with the ecosystem's env-binding library.
package appconfig

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the façade server needs to start.
type Config struct {
	HTTPAddr       string
	LogLevel       string
	DefaultSeed    uint64
	HasDefaultSeed bool
}

// Load binds the GENDS_* environment variables and applies defaults,
// mirroring the teacher's required-vs-defaulted split but through viper
// instead of raw os.Getenv calls.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("gends")
	v.AutomaticEnv()
	_ = v.BindEnv("http_addr")
	_ = v.BindEnv("log_level")
	_ = v.BindEnv("default_seed")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("log_level", "info")

	cfg := Config{
		HTTPAddr: v.GetString("http_addr"),
		LogLevel: strings.ToLower(v.GetString("log_level")),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, errors.New("appconfig: invalid GENDS_LOG_LEVEL: " + cfg.LogLevel)
	}

	if v.IsSet("default_seed") {
		cfg.DefaultSeed = v.GetUint64("default_seed")
		cfg.HasDefaultSeed = true
	}

	if cfg.HTTPAddr == "" {
		return Config{}, errors.New("appconfig: GENDS_HTTP_ADDR must not be empty")
	}

	return cfg, nil
}
