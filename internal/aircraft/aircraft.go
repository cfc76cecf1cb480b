// Package aircraft defines the immutable aircraft description consumed by
// the critical-area models.
package aircraft

import (
	"errors"
	"fmt"
)

// ErrInvalidAircraft is returned when an aircraft record violates its
// physical invariants. Unlike the recoverable range warnings elsewhere,
// a malformed aircraft is fatal to the computation.
var ErrInvalidAircraft = errors.New("invalid aircraft")

// FuelType identifies the onboard energy source, used by the deflagration
// model to derive a TNT-equivalent mass.
type FuelType int

const (
	FuelNone FuelType = iota
	FuelGasoline
	FuelDiesel
	FuelJetA1
	FuelAvgas
	FuelMethanol
	FuelHydrogen
	FuelButane
	FuelLiPo
)

var fuelNames = map[FuelType]string{
	FuelNone:     "none",
	FuelGasoline: "gasoline",
	FuelDiesel:   "diesel",
	FuelJetA1:    "jet_a1",
	FuelAvgas:    "avgas",
	FuelMethanol: "methanol",
	FuelHydrogen: "hydrogen",
	FuelButane:   "butane",
	FuelLiPo:     "lipo",
}

func (f FuelType) String() string {
	if name, ok := fuelNames[f]; ok {
		return name
	}
	return fmt.Sprintf("fuel(%d)", int(f))
}

// ParseFuelType resolves a config string to a FuelType.
func ParseFuelType(s string) (FuelType, error) {
	for ft, name := range fuelNames {
		if name == s {
			return ft, nil
		}
	}
	return FuelNone, fmt.Errorf("unknown fuel type %q", s)
}

// Aircraft describes the vehicle whose ground impact is being assessed.
// All fields are read-only once constructed.
type Aircraft struct {
	Width  float64 // [m] wingspan or characteristic width
	Length float64 // [m]
	Mass   float64 // [kg]

	FrictionCoefficient      float64 // ground friction during slide, typically 0.4-0.7
	CoefficientOfRestitution float64 // horizontal speed retained after first impact

	FuelType     FuelType
	FuelQuantity float64 // [kg or L depending on fuel type]
}

// New validates and returns an Aircraft. Width, mass, and friction must be
// strictly positive (width divides into buffer terms, friction into the
// slide deceleration); the remaining quantities must be non-negative.
func New(a Aircraft) (Aircraft, error) {
	if a.Width <= 0 {
		return Aircraft{}, fmt.Errorf("%w: width %g must be > 0", ErrInvalidAircraft, a.Width)
	}
	if a.Length < 0 {
		return Aircraft{}, fmt.Errorf("%w: length %g must be >= 0", ErrInvalidAircraft, a.Length)
	}
	if a.Mass <= 0 {
		return Aircraft{}, fmt.Errorf("%w: mass %g must be > 0", ErrInvalidAircraft, a.Mass)
	}
	if a.FrictionCoefficient <= 0 {
		return Aircraft{}, fmt.Errorf("%w: friction coefficient %g must be > 0", ErrInvalidAircraft, a.FrictionCoefficient)
	}
	if a.CoefficientOfRestitution < 0 {
		return Aircraft{}, fmt.Errorf("%w: coefficient of restitution %g must be >= 0", ErrInvalidAircraft, a.CoefficientOfRestitution)
	}
	if a.FuelQuantity < 0 {
		return Aircraft{}, fmt.Errorf("%w: fuel quantity %g must be >= 0", ErrInvalidAircraft, a.FuelQuantity)
	}
	return a, nil
}
