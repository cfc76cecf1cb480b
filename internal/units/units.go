// Package units provides the imperial/metric conversions and physical
// constants used throughout the critical-area models.
package units

// Gravity is standard gravity in m/s².
const Gravity = 9.80665

// KgPerLb is the exact mass of one pound in kilograms.
const KgPerLb = 0.45359237

// MPerFt is the exact length of one foot in metres.
const MPerFt = 0.3048

// JPerFtLb is the energy of one foot-pound in joules.
const JPerFtLb = 1.355818

// KgToLbs converts kilograms to pounds.
func KgToLbs(mass float64) float64 {
	return mass / KgPerLb
}

// LbsToKg converts pounds to kilograms.
func LbsToKg(mass float64) float64 {
	return mass * KgPerLb
}

// FtToM converts feet to metres.
func FtToM(length float64) float64 {
	return length * MPerFt
}

// MToFt converts metres to feet.
func MToFt(length float64) float64 {
	return length / MPerFt
}

// FtLbToJ converts foot-pounds to joules.
func FtLbToJ(energy float64) float64 {
	return energy * JPerFtLb
}
