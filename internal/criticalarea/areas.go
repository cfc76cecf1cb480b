package criticalarea

import (
	"math"

	"github.com/uasrisk/casex/internal/aircraft"
	"github.com/uasrisk/casex/internal/kinematics"
	"github.com/uasrisk/casex/internal/units"
)

// DefaultThreshold leaves the model-specific threshold at its published
// default: F_A = 4.36 for FAA, 54 ft·lb for NAWCAD, and 290 J (580 J for
// sub-metre aircraft) for JARUS.
const DefaultThreshold = -1

// modelInput carries the shared per-call quantities each area model needs.
type modelInput struct {
	aircraft aircraft.Aircraft
	buffer   float64 // [m] person silhouette radius
	height   float64 // [m] first-contact altitude

	impactAngleDeg  float64
	horizontalSpeed float64 // [m/s] |cos(angle)|·speed
	glideDistance   float64 // [m]

	threshold float64 // DefaultThreshold when unset
}

// areaFunc computes the inert glide and slide areas in m² for one model.
// Each implementation is a pure closed form; the shared combination with
// the deflagration footprint happens in Generator.Compute.
type areaFunc func(in modelInput) (glideArea, slideArea float64)

var areaFuncs = map[Model]areaFunc{
	RCC:    rccAreas,
	RTI:    rtiAreas,
	FAA:    faaAreas,
	NAWCAD: nawcadAreas,
	JARUS:  jarusAreas,
}

// rccAreas: rectangular footprint padded by the person buffer on all sides;
// the slide runs at the raw horizontal impact speed until friction stops it.
func rccAreas(in modelInput) (float64, float64) {
	width := in.aircraft.Width + 2*in.buffer
	glideArea := (in.aircraft.Length + in.glideDistance + 2*in.buffer) * width

	slideDistance := kinematics.SlideDistance(in.horizontalSpeed, in.aircraft.FrictionCoefficient)
	slideArea := slideDistance * width

	return glideArea, slideArea
}

// rtiAreas: capsule glide footprint (rectangle plus a semicircular end of
// radius buffer+width/2); the slide speed is reduced by the coefficient of
// restitution before friction applies.
func rtiAreas(in modelInput) (float64, float64) {
	r := in.buffer + in.aircraft.Width/2
	glideArea := 2*r*in.glideDistance + math.Pi*r*r

	slideDistance := kinematics.SlideDistance(
		in.aircraft.CoefficientOfRestitution*in.horizontalSpeed,
		in.aircraft.FrictionCoefficient)
	slideArea := slideDistance * (2*in.buffer + in.aircraft.Width)

	return glideArea, slideArea
}

// faaAreas: the inert area is the secondary debris disc plus the lens-shaped
// intersection with the primary disc, offset by the altitude term
// hs = height·sin(90°−angle). The discriminant y2m goes negative when the
// discs do not partially overlap; it is clamped to zero so the lens area
// vanishes instead of producing a NaN.
//
// The slide area is reported as the remainder inert−glide, matching the
// published derivation. For some parameter combinations the remainder is
// negative; it is deliberately left unclamped because the directly derived
// quantity is the inert area, and glide+slide reconstitutes it exactly.
func faaAreas(in modelInput) (float64, float64) {
	rD := in.buffer + in.aircraft.Width/2

	fA := 4.36 // median of the hard/soft-surface secondary debris ratios
	if in.threshold != DefaultThreshold {
		fA = in.threshold
	}
	rAc := in.buffer + in.aircraft.Width/2*math.Sqrt(fA)

	hs := in.height * math.Sin((90-in.impactAngleDeg)*math.Pi/180)

	lens := 0.0
	if hs > 0 {
		y2m := math.Pow(2*rAc*hs, 2) - math.Pow(rAc*rAc+hs*hs-rD*rD, 2)
		y2m = math.Max(0, y2m)
		y2 := math.Sqrt(y2m) / (2 * hs)

		lens = 2 * y2 * hs
		lens += y2*math.Sqrt(rD*rD-y2*y2) + rD*rD*math.Asin(y2/rD)
		lens -= y2*math.Sqrt(rAc*rAc-y2*y2) + rAc*rAc*math.Asin(y2/rAc)
	}

	inertArea := math.Pi*rAc*rAc + lens
	glideArea := math.Pi * rD * rD
	slideArea := inertArea - glideArea

	return glideArea, slideArea
}

// nawcadAreas: the lethal slide ends where kinetic energy falls below the
// threshold (default 54 ft·lb). Constant-deceleration kinematics with
// a = f·g; t_safe clamps at zero so a sub-threshold impact contributes no
// slide area at all.
func nawcadAreas(in modelInput) (float64, float64) {
	keLethal := units.FtLbToJ(54)
	if in.threshold != DefaultThreshold {
		keLethal = in.threshold
	}

	velocityMinKill := math.Sqrt(2 * keLethal / in.aircraft.Mass)
	acceleration := in.aircraft.FrictionCoefficient * units.Gravity

	tSafe := math.Max(0, (in.horizontalSpeed-velocityMinKill)/acceleration)
	lethalSlideDistance := in.horizontalSpeed*tSafe - 0.5*acceleration*tSafe*tSafe

	width := 2*in.buffer + in.aircraft.Width
	return in.glideDistance * width, lethalSlideDistance * width
}

// jarusAreas: NAWCAD kinematics with the horizontal speed scaled by the
// coefficient of restitution, a capsule glide footprint, and the Annex F
// threshold of 290 J, doubled for aircraft no wider than a metre.
func jarusAreas(in modelInput) (float64, float64) {
	keLethal := 290.0
	if in.aircraft.Width <= 1 {
		keLethal = 2 * 290
	}
	if in.threshold != DefaultThreshold {
		keLethal = in.threshold
	}

	velocityMinKill := math.Sqrt(2 * keLethal / in.aircraft.Mass)
	acceleration := in.aircraft.FrictionCoefficient * units.Gravity

	reboundSpeed := in.aircraft.CoefficientOfRestitution * in.horizontalSpeed
	tSafe := math.Max(0, (reboundSpeed-velocityMinKill)/acceleration)
	lethalSlideDistance := reboundSpeed*tSafe - 0.5*acceleration*tSafe*tSafe

	r := in.buffer + in.aircraft.Width/2
	glideArea := 2*r*in.glideDistance + math.Pi*r*r
	slideArea := lethalSlideDistance * (2*in.buffer + in.aircraft.Width)

	return glideArea, slideArea
}
