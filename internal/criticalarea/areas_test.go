package criticalarea

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInput() modelInput {
	return modelInput{
		aircraft:        testAircraft(),
		buffer:          0.3,
		height:          1.8,
		impactAngleDeg:  30,
		horizontalSpeed: math.Cos(30*math.Pi/180) * 20,
		glideDistance:   1.8 / math.Tan(30*math.Pi/180),
		threshold:       DefaultThreshold,
	}
}

func TestFAA_DiscriminantClamp(t *testing.T) {
	// A near-vertical impact makes hs tiny while the secondary debris disc
	// dwarfs the primary one, driving the discriminant y2m negative. That
	// must not produce a NaN; the lens contribution simply vanishes and the
	// inert area is the bare secondary disc.
	in := testInput()
	in.aircraft.Width = 10
	in.impactAngleDeg = 89.9
	in.threshold = 100 // F_A

	glide, slide := faaAreas(in)
	require.False(t, math.IsNaN(glide) || math.IsNaN(slide), "discriminant clamp must avoid NaN")

	rAc := in.buffer + in.aircraft.Width/2*math.Sqrt(100)
	rD := in.buffer + in.aircraft.Width/2
	assert.InDelta(t, math.Pi*rAc*rAc, glide+slide, 1e-6, "inert area is the secondary disc alone")
	assert.InDelta(t, math.Pi*rD*rD, glide, 1e-9)
}

func TestFAA_VerticalImpactHasNoLens(t *testing.T) {
	// Straight down, hs = 0: the lens term is undefined in the raw formula
	// (division by 2·hs) and must be treated as zero.
	in := testInput()
	in.impactAngleDeg = 90

	glide, slide := faaAreas(in)
	require.False(t, math.IsNaN(glide) || math.IsNaN(slide))

	rAc := in.buffer + in.aircraft.Width/2*math.Sqrt(4.36)
	assert.InDelta(t, math.Pi*rAc*rAc, glide+slide, 1e-9)
}

func TestFAA_SlideIsRemainder(t *testing.T) {
	in := testInput()
	glide, slide := faaAreas(in)

	rD := in.buffer + in.aircraft.Width/2
	assert.InDelta(t, math.Pi*rD*rD, glide, 1e-9, "FAA glide area is the primary disc")
	// The slide area is inert - glide by construction, not an independent
	// geometric quantity, and is allowed to be negative.
	assert.InDelta(t, (glide+slide)-glide, slide, 1e-9)
}

func TestNAWCAD_SubThresholdImpactHasNoSlide(t *testing.T) {
	in := testInput()
	// 0.2 m/s horizontal at 4 kg is 0.08 J, far below 54 ft·lb.
	in.horizontalSpeed = 0.2

	_, slide := nawcadAreas(in)
	assert.Zero(t, slide, "t_safe clamps to 0 below the lethality threshold")
}

func TestNAWCAD_GlideAreaIsRectangular(t *testing.T) {
	in := testInput()
	glide, _ := nawcadAreas(in)
	assert.InDelta(t, in.glideDistance*(2*in.buffer+in.aircraft.Width), glide, 1e-9)
}

func TestJARUS_SubThresholdImpactHasNoSlide(t *testing.T) {
	in := testInput()
	// Restitution-scaled speed of 0.7·1 m/s at 4 kg is ~0.25 J, below the
	// 580 J small-aircraft threshold.
	in.horizontalSpeed = 1

	_, slide := jarusAreas(in)
	assert.Zero(t, slide)
}

func TestJARUS_SmallAircraftThresholdDoubles(t *testing.T) {
	in := testInput()
	in.aircraft.Width = 1.0 // at the boundary: 580 J applies
	// Fast enough that the rebound speed clears both thresholds.
	in.horizontalSpeed = 40

	_, defSlide := jarusAreas(in)

	in.threshold = 580
	_, overrideSlide := jarusAreas(in)
	assert.InDelta(t, defSlide, overrideSlide, 1e-9, "width <= 1 m default equals explicit 580 J")

	in.threshold = 290
	_, singleSlide := jarusAreas(in)
	assert.Greater(t, singleSlide, defSlide, "halving the threshold lengthens the lethal slide")
}

func TestJARUS_GlideIsCapsule(t *testing.T) {
	in := testInput()
	glide, _ := jarusAreas(in)

	r := in.buffer + in.aircraft.Width/2
	assert.InDelta(t, 2*r*in.glideDistance+math.Pi*r*r, glide, 1e-9)
}

func TestRTI_RestitutionShortensSlide(t *testing.T) {
	in := testInput()
	_, rtiSlide := rtiAreas(in)
	_, rccSlide := rccAreas(in)

	// RTI slides at restitution-scaled speed, RCC at the raw speed; with
	// the same corridor width the RTI slide must be cor² shorter.
	cor := in.aircraft.CoefficientOfRestitution
	assert.InDelta(t, rccSlide*cor*cor, rtiSlide, 1e-9)
}
