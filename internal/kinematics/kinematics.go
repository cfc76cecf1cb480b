// Package kinematics holds the glide/slide geometry underlying the
// critical-area models. Everything here is a pure function of its inputs;
// range violations are coerced and reported as diagnostics instead of
// mutating shared state or failing.
package kinematics

import (
	"math"

	"github.com/uasrisk/casex/internal/diag"
	"github.com/uasrisk/casex/internal/units"
)

// HorizontalSpeed returns the horizontal component of the impact speed for
// an impact angle in degrees (90 is straight down). Cosine is negative for
// angles between 90 and 180, so the magnitude is used.
func HorizontalSpeed(impactAngleDeg, impactSpeed float64) float64 {
	return math.Abs(math.Cos(radians(impactAngleDeg))) * impactSpeed
}

// VerticalSpeed returns the vertical component of the impact speed for an
// impact angle in degrees.
func VerticalSpeed(impactAngleDeg, impactSpeed float64) float64 {
	return math.Sin(radians(impactAngleDeg)) * impactSpeed
}

// HorizontalSpeedFromRatio returns the horizontal speed component for a
// glide ratio (horizontal distance per unit of altitude lost).
func HorizontalSpeedFromRatio(glideRatio, impactSpeed float64) float64 {
	return glideRatio / math.Sqrt(glideRatio*glideRatio+1) * impactSpeed
}

// GlideAngleFromRatio converts a glide ratio to a glide angle in degrees.
func GlideAngleFromRatio(glideRatio float64) float64 {
	return degrees(math.Atan2(1, glideRatio))
}

// SpeedFromKineticEnergy returns the speed of a mass with the given kinetic
// energy in joules.
func SpeedFromKineticEnergy(kineticEnergy, mass float64) float64 {
	return math.Sqrt(2 * kineticEnergy / mass)
}

// SlideDistance returns the ground distance travelled from the given
// horizontal velocity until rest, assuming the only decelerating force is
// kinetic friction F = -f·w.
func SlideDistance(velocity, frictionCoefficient float64) float64 {
	return velocity * velocity / (2 * frictionCoefficient * units.Gravity)
}

// NormalizeGlideAngle coerces a glide angle into the usable (0, 90] range:
// values outside [0, 180] are replaced with 90, values above 90 are folded
// to 180 - angle, and values below 1 degree are clamped to 1 to keep
// height/tan(angle) numerically stable. Every coercion is reported.
func NormalizeGlideAngle(glideAngleDeg float64) (float64, []diag.Diagnostic) {
	var ds []diag.Diagnostic

	if glideAngleDeg < 0 || glideAngleDeg > 180 {
		ds = append(ds, diag.Newf(diag.CodeAngleOutOfRange,
			"glide angle %.3g outside [0, 180], using 90", glideAngleDeg))
		glideAngleDeg = 90
	}

	if glideAngleDeg > 90 {
		glideAngleDeg = 180 - glideAngleDeg
	}

	if glideAngleDeg < 1 {
		ds = append(ds, diag.Newf(diag.CodeAngleTooShallow,
			"glide angle %.3g below 1 degree is numerically unstable, using 1", glideAngleDeg))
		glideAngleDeg = 1
	}

	return glideAngleDeg, ds
}

// GlideDistance returns the horizontal distance covered while descending
// from height to the ground at the given glide angle. A negative height is
// coerced to 0 and reported; the caller's configured height is never
// touched.
func GlideDistance(height, glideAngleDeg float64) (float64, []diag.Diagnostic) {
	var ds []diag.Diagnostic

	if height < 0 {
		ds = append(ds, diag.Newf(diag.CodeNegativeHeight,
			"height %.3g is negative, using 0", height))
		height = 0
	}

	angle, angleDiags := NormalizeGlideAngle(glideAngleDeg)
	ds = append(ds, angleDiags...)

	return height / math.Tan(radians(angle)), ds
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
