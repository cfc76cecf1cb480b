// Package config loads the CLI scenario configuration. Only cmd/casex uses
// it; the library packages take plain function parameters.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/uasrisk/casex/internal/aircraft"
	"github.com/uasrisk/casex/internal/criticalarea"
)

// Load reads casex.cfg.json from configDir and sets default values.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./casexlogs")

	viper.SetDefault("engine.buffer", criticalarea.DefaultBuffer)
	viper.SetDefault("engine.height", criticalarea.DefaultHeight)

	viper.SetDefault("scenario.model", "JARUS")
	viper.SetDefault("scenario.impactSpeed", 25.0)
	viper.SetDefault("scenario.impactAngle", 35.0)
	viper.SetDefault("scenario.overlap", 0.5)
	viper.SetDefault("scenario.threshold", float64(criticalarea.DefaultThreshold))

	viper.SetDefault("aircraft.width", 1.2)
	viper.SetDefault("aircraft.length", 1.0)
	viper.SetDefault("aircraft.mass", 4.0)
	viper.SetDefault("aircraft.frictionCoefficient", 0.6)
	viper.SetDefault("aircraft.coefficientOfRestitution", 0.7)
	viper.SetDefault("aircraft.fuelType", "lipo")
	viper.SetDefault("aircraft.fuelQuantity", 0.6)

	viper.SetDefault("obstacles.density", 50.0)
	viper.SetDefault("obstacles.width", 5.0)
	viper.SetDefault("obstacles.length", 100.0)
	viper.SetDefault("obstacles.resolution", 100)
	viper.SetDefault("obstacles.targetProbability", 0.9)
	viper.SetDefault("obstacles.trials", 100000)
	viper.SetDefault("obstacles.workers", 1)
	viper.SetDefault("obstacles.seed", 1)

	viper.SetConfigName("casex.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Aircraft builds the configured aircraft record, validating it.
func Aircraft() (aircraft.Aircraft, error) {
	fuel, err := aircraft.ParseFuelType(viper.GetString("aircraft.fuelType"))
	if err != nil {
		return aircraft.Aircraft{}, fmt.Errorf("aircraft.fuelType: %w", err)
	}
	return aircraft.New(aircraft.Aircraft{
		Width:                    viper.GetFloat64("aircraft.width"),
		Length:                   viper.GetFloat64("aircraft.length"),
		Mass:                     viper.GetFloat64("aircraft.mass"),
		FrictionCoefficient:      viper.GetFloat64("aircraft.frictionCoefficient"),
		CoefficientOfRestitution: viper.GetFloat64("aircraft.coefficientOfRestitution"),
		FuelType:                 fuel,
		FuelQuantity:             viper.GetFloat64("aircraft.fuelQuantity"),
	})
}

// Model returns the configured critical-area model.
func Model() (criticalarea.Model, error) {
	return criticalarea.ParseModel(viper.GetString("scenario.model"))
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetFloat64 returns a float config value.
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}
