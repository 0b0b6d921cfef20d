package config

import (
	"errors"
	"fmt"
	"regexp"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"go.uber.org/zap/zapcore"

	"github.com/couchcryptid/flame-geometry/pkg/flame"
)

var metricNameRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config holds evaluator settings, populated from environment variables.
type Config struct {
	LogLevel  string
	LogFormat string

	// Defaults applied when a caller leaves the model or units empty.
	LengthModel    flame.LengthModel
	UnitSystem     flame.UnitSystem
	ResidenceUnits flame.TimeUnits

	MetricsNamespace string
}

// Default returns the settings Load uses when no variables are set.
func Default() *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "json",
		LengthModel:      flame.ByramHead,
		UnitSystem:       flame.SI,
		ResidenceUnits:   flame.Minutes,
		MetricsNamespace: "flame",
	}
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	d := Default()
	cfg := &Config{
		LogLevel:         sharedcfg.EnvOrDefault("LOG_LEVEL", d.LogLevel),
		LogFormat:        sharedcfg.EnvOrDefault("LOG_FORMAT", d.LogFormat),
		LengthModel:      flame.LengthModel(sharedcfg.EnvOrDefault("FLAME_LENGTH_MODEL", string(d.LengthModel))),
		UnitSystem:       flame.UnitSystem(sharedcfg.EnvOrDefault("FLAME_UNIT_SYSTEM", string(d.UnitSystem))),
		ResidenceUnits:   flame.TimeUnits(sharedcfg.EnvOrDefault("FLAME_RESIDENCE_UNITS", string(d.ResidenceUnits))),
		MetricsNamespace: sharedcfg.EnvOrDefault("METRICS_NAMESPACE", d.MetricsNamespace),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every setting. Errors name the environment variable the
// setting is read from.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return errors.New("LOG_FORMAT must be json or text")
	}
	if err := c.LengthModel.Validate(); err != nil {
		return fmt.Errorf("invalid FLAME_LENGTH_MODEL: %w", err)
	}
	if err := c.UnitSystem.Validate(); err != nil {
		return fmt.Errorf("invalid FLAME_UNIT_SYSTEM: %w", err)
	}
	if err := c.ResidenceUnits.Validate(); err != nil {
		return fmt.Errorf("invalid FLAME_RESIDENCE_UNITS: %w", err)
	}
	if !metricNameRe.MatchString(c.MetricsNamespace) {
		return errors.New("METRICS_NAMESPACE must be a valid Prometheus metric name prefix")
	}
	return nil
}
