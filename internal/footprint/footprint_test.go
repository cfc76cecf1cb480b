package footprint

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uasrisk/casex/internal/aircraft"
	"github.com/uasrisk/casex/internal/criticalarea"
)

func TestCorridor(t *testing.T) {
	poly, err := Corridor(50, 1.6)
	require.NoError(t, err)

	assert.InDelta(t, 50*1.6, poly.Area(), 1e-9)
	assert.True(t, strings.HasPrefix(WKT(poly), "POLYGON"))
}

func TestCorridor_Invalid(t *testing.T) {
	_, err := Corridor(0, 1.6)
	assert.Error(t, err)

	_, err = Corridor(50, -1)
	assert.Error(t, err)
}

func TestDisc_AreaApproximation(t *testing.T) {
	poly, err := Disc(5)
	require.NoError(t, err)

	// The polygonal disc slightly underestimates the true circle.
	want := math.Pi * 25
	assert.InEpsilon(t, want, poly.Area(), 0.01)
	assert.Less(t, poly.Area(), want)
}

func TestCapsule_Area(t *testing.T) {
	poly, err := Capsule(10, 0.8)
	require.NoError(t, err)

	// Rectangle + half disc, within the polygonisation error of the cap.
	want := 10*1.6 + math.Pi*0.64/2
	assert.InEpsilon(t, want, poly.Area(), 0.01)
}

func TestCapsule_ZeroLengthIsDisc(t *testing.T) {
	poly, err := Capsule(0, 1)
	require.NoError(t, err)
	assert.InEpsilon(t, math.Pi, poly.Area(), 0.01)
}

func TestForResult_ShapesEncloseInertArea(t *testing.T) {
	ac := aircraft.Aircraft{
		Width:                    1.0,
		Length:                   1.5,
		Mass:                     4.0,
		FrictionCoefficient:      0.6,
		CoefficientOfRestitution: 0.7,
	}
	// FuelNone gives a zero deflagration footprint, so Inert is exact.
	g, err := criticalarea.NewGenerator()
	require.NoError(t, err)

	for _, model := range []criticalarea.Model{
		criticalarea.RCC, criticalarea.RTI, criticalarea.FAA,
		criticalarea.NAWCAD, criticalarea.JARUS,
	} {
		res, err := g.Compute(model, ac, 20, 30, 0, criticalarea.DefaultThreshold)
		require.NoError(t, err, "model %v", model)

		poly, err := ForResult(model, ac, g.Buffer(), res)
		require.NoError(t, err, "model %v", model)

		// Within the polygonisation error of the curved edges.
		assert.InEpsilon(t, res.Inert, poly.Area(), 0.01, "model %v", model)
	}
}

func TestForResult_UnknownModel(t *testing.T) {
	_, err := ForResult(criticalarea.Model(99), aircraft.Aircraft{Width: 1}, 0.3, criticalarea.Result{Inert: 10})
	assert.Error(t, err)
}
