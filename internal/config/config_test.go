package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uasrisk/casex/internal/aircraft"
	"github.com/uasrisk/casex/internal/criticalarea"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"engine": { "buffer": 0.25, "height": 2.0 },
		"scenario": { "model": "FAA" },
		"aircraft": { "width": 3.0, "fuelType": "jet_a1" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "casex.cfg.json"), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", viper.GetString("logLevel"))
	assert.Equal(t, 0.25, viper.GetFloat64("engine.buffer"))
	assert.Equal(t, 2.0, viper.GetFloat64("engine.height"))

	m, err := Model()
	require.NoError(t, err)
	assert.Equal(t, criticalarea.FAA, m)

	ac, err := Aircraft()
	require.NoError(t, err)
	assert.Equal(t, 3.0, ac.Width)
	assert.Equal(t, aircraft.FuelJetA1, ac.FuelType)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "casex.cfg.json"), []byte(`{}`), 0644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "info", viper.GetString("logLevel"))
	assert.Equal(t, "./casexlogs", viper.GetString("logsDir"))
	assert.Equal(t, criticalarea.DefaultBuffer, viper.GetFloat64("engine.buffer"))
	assert.Equal(t, criticalarea.DefaultHeight, viper.GetFloat64("engine.height"))
	assert.Equal(t, 100000, viper.GetInt("obstacles.trials"))

	m, err := Model()
	require.NoError(t, err)
	assert.Equal(t, criticalarea.JARUS, m)

	ac, err := Aircraft()
	require.NoError(t, err)
	assert.Equal(t, aircraft.FuelLiPo, ac.FuelType)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	assert.Error(t, Load(t.TempDir()))
}

func TestAircraft_InvalidValuesSurface(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{ "aircraft": { "width": 0 } }`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "casex.cfg.json"), []byte(cfg), 0644))
	require.NoError(t, Load(dir))

	_, err := Aircraft()
	assert.ErrorIs(t, err, aircraft.ErrInvalidAircraft)
}
