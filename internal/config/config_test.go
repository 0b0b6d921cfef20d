package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/flame-geometry/pkg/flame"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, flame.ByramHead, cfg.LengthModel)
	assert.Equal(t, flame.SI, cfg.UnitSystem)
	assert.Equal(t, flame.Minutes, cfg.ResidenceUnits)
	assert.Equal(t, "flame", cfg.MetricsNamespace)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("FLAME_LENGTH_MODEL", "Finney_HEAD")
	t.Setenv("FLAME_UNIT_SYSTEM", "IMP")
	t.Setenv("FLAME_RESIDENCE_UNITS", "sec")
	t.Setenv("METRICS_NAMESPACE", "wildfire")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, flame.FinneyHead, cfg.LengthModel)
	assert.Equal(t, flame.IMP, cfg.UnitSystem)
	assert.Equal(t, flame.Seconds, cfg.ResidenceUnits)
	assert.Equal(t, "wildfire", cfg.MetricsNamespace)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoad_InvalidLengthModel(t *testing.T) {
	t.Setenv("FLAME_LENGTH_MODEL", "Unknown_HEAD")
	_, err := Load()
	require.ErrorIs(t, err, flame.ErrInvalidValue)
	assert.Contains(t, err.Error(), "FLAME_LENGTH_MODEL")
}

func TestLoad_InvalidUnitSystem(t *testing.T) {
	t.Setenv("FLAME_UNIT_SYSTEM", "XX")
	_, err := Load()
	require.ErrorIs(t, err, flame.ErrInvalidValue)
	assert.Contains(t, err.Error(), "FLAME_UNIT_SYSTEM")
}

func TestLoad_InvalidResidenceUnits(t *testing.T) {
	t.Setenv("FLAME_RESIDENCE_UNITS", "hours")
	_, err := Load()
	require.ErrorIs(t, err, flame.ErrInvalidValue)
	assert.Contains(t, err.Error(), "FLAME_RESIDENCE_UNITS")
}

func TestLoad_InvalidMetricsNamespace(t *testing.T) {
	t.Setenv("METRICS_NAMESPACE", "flame-metrics")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "METRICS_NAMESPACE")
}

func TestDefault_Valid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidate_ProgrammaticConfig(t *testing.T) {
	cfg := Default()
	cfg.UnitSystem = "XX"

	err := cfg.Validate()
	require.ErrorIs(t, err, flame.ErrInvalidValue)
	assert.Contains(t, err.Error(), "FLAME_UNIT_SYSTEM")
}
