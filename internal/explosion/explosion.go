// Package explosion provides the deflagration side of the critical-area
// computation: TNT-equivalent mass for the onboard fuel, the fireball
// footprint, and the thermally lethal footprint.
//
// The dispatcher only depends on the Model interface; StandardModel is a
// coarse engineering default so the toolkit is usable stand-alone, and
// callers with a calibrated explosion model substitute their own.
package explosion

import (
	"math"

	"github.com/uasrisk/casex/internal/aircraft"
)

// Model is the contract the critical-area dispatcher consumes.
type Model interface {
	// TNTEquivalentMass returns the TNT-equivalent mass in kg for the
	// given fuel type and quantity.
	TNTEquivalentMass(fuel aircraft.FuelType, quantity float64) float64
	// FireballArea returns the ground area in m² covered by the fireball
	// from the given TNT-equivalent mass.
	FireballArea(tntKg float64) float64
	// LethalAreaThermal returns the ground area in m² within which thermal
	// radiation is lethal with at least probability pLethal.
	LethalAreaThermal(tntKg, pLethal float64) float64
}

// tntSpecificEnergy is the energy content of TNT in MJ/kg.
const tntSpecificEnergy = 4.184

// participationFactor is the fraction of the fuel's chemical energy assumed
// to take part in the deflagration. Ground impacts disperse most of the
// fuel before ignition, so only a small fraction contributes.
const participationFactor = 0.1

// specificEnergy holds fuel energy densities in MJ/kg.
var specificEnergy = map[aircraft.FuelType]float64{
	aircraft.FuelNone:     0,
	aircraft.FuelGasoline: 46.4,
	aircraft.FuelDiesel:   45.6,
	aircraft.FuelJetA1:    43.15,
	aircraft.FuelAvgas:    44.65,
	aircraft.FuelMethanol: 19.9,
	aircraft.FuelHydrogen: 120.0,
	aircraft.FuelButane:   45.75,
	aircraft.FuelLiPo:     0.8,
}

// StandardModel implements Model with published energy densities and a
// cube-root fireball diameter correlation (D = 5.8·M^(1/3) m for M kg TNT).
type StandardModel struct{}

// NewStandardModel returns the default deflagration model.
func NewStandardModel() StandardModel { return StandardModel{} }

func (StandardModel) TNTEquivalentMass(fuel aircraft.FuelType, quantity float64) float64 {
	if quantity <= 0 {
		return 0
	}
	return participationFactor * quantity * specificEnergy[fuel] / tntSpecificEnergy
}

func (StandardModel) FireballArea(tntKg float64) float64 {
	if tntKg <= 0 {
		return 0
	}
	radius := 2.9 * math.Cbrt(tntKg)
	return math.Pi * radius * radius
}

// LethalAreaThermal scales the fireball radius by a probit-style factor
// sqrt(-ln p): at low lethality thresholds the thermally lethal footprint
// extends well beyond the fireball itself, and it shrinks to nothing as
// p approaches 1. pLethal is clamped into (0, 1).
func (m StandardModel) LethalAreaThermal(tntKg, pLethal float64) float64 {
	if tntKg <= 0 {
		return 0
	}
	pLethal = math.Min(math.Max(pLethal, 1e-9), 1-1e-9)
	radius := 2.9 * math.Cbrt(tntKg) * math.Sqrt(-math.Log(pLethal))
	return math.Pi * radius * radius
}
