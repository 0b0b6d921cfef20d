// Package evaluator wraps the flame calculations with configuration
// defaults, structured logging and Prometheus metrics. The calculations
// themselves stay in package flame, which has no side effects.
package evaluator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/couchcryptid/flame-geometry/internal/config"
	"github.com/couchcryptid/flame-geometry/internal/observability"
	"github.com/couchcryptid/flame-geometry/pkg/flame"
	"github.com/couchcryptid/flame-geometry/pkg/masked"
)

// Operation label values.
const (
	OpMidFlameWindSpeed  = "midflame_wind_speed"
	OpFlameLength        = "flame_length"
	OpFlameHeight        = "flame_height"
	OpFlameTilt          = "flame_tilt"
	OpFlameResidenceTime = "flame_residence_time"
	OpFlameDepth         = "flame_depth"
)

// Config holds evaluator settings. Build one with DefaultConfig, or with
// LoadConfig to read the environment.
type Config = config.Config

// Metrics holds the Prometheus collectors an Evaluator records into.
type Metrics = observability.Metrics

// DefaultConfig returns the settings used when no environment variables are set.
func DefaultConfig() *Config { return config.Default() }

// LoadConfig reads settings from the environment. See Config for the variables.
func LoadConfig() (*Config, error) { return config.Load() }

// NewMetrics creates the evaluator collectors and registers them with reg.
// Collectors reg already holds under the same names are reused, so several
// evaluators can share one registry.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	return observability.NewMetricsWith(namespace, reg)
}

// Evaluator runs flame calculations and records each call. It holds no
// per-call state and is safe for concurrent use.
type Evaluator struct {
	cfg     *Config
	logger  *zap.Logger
	metrics *Metrics
	clock   clockwork.Clock
}

// New creates an Evaluator. Nil arguments fall back to DefaultConfig, a
// no-op logger, unregistered metrics and real time.
func New(cfg *Config, logger *zap.Logger, metrics *Metrics, clock clockwork.Clock) *Evaluator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = observability.NewUnregisteredMetrics(cfg.MetricsNamespace)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Evaluator{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
		clock:   clock,
	}
}

// NewFromEnv loads configuration from the environment and builds an
// Evaluator whose metrics are registered with reg, or with the default
// Prometheus registry when reg is nil. It may be called more than once
// against the same registry.
func NewFromEnv(reg prometheus.Registerer) (*Evaluator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := observability.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	metrics, err := NewMetrics(cfg.MetricsNamespace, reg)
	if err != nil {
		return nil, err
	}
	return New(cfg, logger, metrics, clockwork.NewRealClock()), nil
}

// Config returns the settings the Evaluator was built with.
func (e *Evaluator) Config() Config { return *e.cfg }

// MidFlameWindSpeed computes mid-flame wind speed. An empty units value
// selects the configured unit system.
func (e *Evaluator) MidFlameWindSpeed(windSpeed, canopyCover, canopyHeight, canopyBaseHeight masked.Array, units flame.UnitSystem) (masked.Array, error) {
	if units == "" {
		units = e.cfg.UnitSystem
	}
	return e.observe(OpMidFlameWindSpeed, string(units), func() (masked.Array, error) {
		return flame.MidFlameWindSpeed(windSpeed, canopyCover, canopyHeight, canopyBaseHeight, units)
	})
}

// FlameLength computes flame length. An empty model selects the configured
// default model.
func (e *Evaluator) FlameLength(model flame.LengthModel, fireIntensity, flameDepth masked.Array) (masked.Array, error) {
	if model == "" {
		model = e.cfg.LengthModel
	}
	return e.observe(OpFlameLength, string(model), func() (masked.Array, error) {
		return flame.FlameLength(model, fireIntensity, flameDepth)
	})
}

// LengthParams returns the coefficients of model, or of the configured
// default model when model is empty.
func (e *Evaluator) LengthParams(model flame.LengthModel) (flame.Params, error) {
	if model == "" {
		model = e.cfg.LengthModel
	}
	return flame.LengthParams(model)
}

// FlameHeight derives flame height with the given model.
func (e *Evaluator) FlameHeight(flameLength masked.Array, model flame.HeightModel) (masked.Array, error) {
	return e.observe(OpFlameHeight, modelName(model), func() (masked.Array, error) {
		return flame.FlameHeight(flameLength, model)
	})
}

// FlameTilt computes flame tilt from vertical, in degrees.
func (e *Evaluator) FlameTilt(model flame.TiltModel) (masked.Array, error) {
	return e.observe(OpFlameTilt, modelName(model), func() (masked.Array, error) {
		return flame.FlameTilt(model)
	})
}

// FlameResidenceTime computes residence time. An empty units value selects
// the configured residence time units.
func (e *Evaluator) FlameResidenceTime(ros, fuelConsumption, midflameWindSpeed masked.Array, units flame.TimeUnits) (masked.Array, error) {
	if units == "" {
		units = e.cfg.ResidenceUnits
	}
	return e.observe(OpFlameResidenceTime, string(units), func() (masked.Array, error) {
		return flame.FlameResidenceTime(ros, fuelConsumption, midflameWindSpeed, units)
	})
}

// FlameDepth multiplies rate of spread by residence time.
func (e *Evaluator) FlameDepth(ros, residenceTime masked.Array) (masked.Array, error) {
	return e.observe(OpFlameDepth, "", func() (masked.Array, error) {
		return flame.FlameDepth(ros, residenceTime)
	})
}

// observe times calc, then records the outcome in metrics and logs.
func (e *Evaluator) observe(operation, model string, calc func() (masked.Array, error)) (masked.Array, error) {
	start := e.clock.Now()
	out, err := calc()
	e.metrics.CalculationDuration.WithLabelValues(operation).Observe(e.clock.Since(start).Seconds())

	if err != nil {
		kind := ErrorKind(err)
		e.metrics.CalculationErrors.WithLabelValues(operation, kind).Inc()
		e.logger.Warn("calculation rejected",
			zap.String("operation", operation),
			zap.String("model", model),
			zap.String("kind", kind),
			zap.Error(err),
		)
		return out, err
	}

	maskedCount := out.MaskedCount()
	e.metrics.Calculations.WithLabelValues(operation, model).Inc()
	e.metrics.BatchSize.WithLabelValues(operation).Observe(float64(out.Len()))
	e.metrics.MaskedElements.WithLabelValues(operation).Add(float64(maskedCount))
	e.logger.Debug("calculation complete",
		zap.String("operation", operation),
		zap.String("model", model),
		zap.Int("elements", out.Len()),
		zap.Int("masked", maskedCount),
	)
	return out, nil
}

// ErrorKind maps an error to its metric label.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, flame.ErrMissingArgument):
		return "missing_argument"
	case errors.Is(err, flame.ErrShapeMismatch):
		return "shape_mismatch"
	case errors.Is(err, flame.ErrInvalidValue):
		return "invalid_value"
	default:
		return "other"
	}
}

type named interface{ Name() string }

// modelName labels m, treating a nil pointer variant like a nil model.
func modelName(m named) string {
	if m == nil {
		return "none"
	}
	if v := reflect.ValueOf(m); v.Kind() == reflect.Pointer && v.IsNil() {
		return "none"
	}
	return m.Name()
}
