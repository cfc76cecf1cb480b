package criticalarea

import (
	"fmt"

	"github.com/uasrisk/casex/internal/aircraft"
)

// SweepField names the single input that varies across a batch computation.
// The original formulation relied on implicit array broadcasting with the
// documented precondition that only one input may be a vector per call;
// Sweep makes that axis explicit.
type SweepField int

const (
	SweepImpactSpeed SweepField = iota
	SweepImpactAngle
	SweepOverlap
	SweepWidth
	SweepLength
	SweepFuelQuantity
)

var sweepNames = map[SweepField]string{
	SweepImpactSpeed:  "impact_speed",
	SweepImpactAngle:  "impact_angle",
	SweepOverlap:      "overlap",
	SweepWidth:        "width",
	SweepLength:       "length",
	SweepFuelQuantity: "fuel_quantity",
}

func (f SweepField) String() string {
	if name, ok := sweepNames[f]; ok {
		return name
	}
	return fmt.Sprintf("sweep(%d)", int(f))
}

// Sweep describes the varying axis of a batch computation.
type Sweep struct {
	Field  SweepField
	Values []float64
}

// ComputeBatch maps the scalar Compute over the sweep, substituting each
// value into the named field while holding every other input at the scalar
// given here. Results come back in sweep order.
func (g *Generator) ComputeBatch(model Model, ac aircraft.Aircraft, impactSpeed, impactAngleDeg, overlap, threshold float64, sweep Sweep) ([]Result, error) {
	if len(sweep.Values) == 0 {
		return nil, fmt.Errorf("sweep over %v has no values", sweep.Field)
	}

	results := make([]Result, 0, len(sweep.Values))
	for _, v := range sweep.Values {
		speed, angle, ovl := impactSpeed, impactAngleDeg, overlap
		a := ac

		switch sweep.Field {
		case SweepImpactSpeed:
			speed = v
		case SweepImpactAngle:
			angle = v
		case SweepOverlap:
			ovl = v
		case SweepWidth:
			a.Width = v
		case SweepLength:
			a.Length = v
		case SweepFuelQuantity:
			a.FuelQuantity = v
		default:
			return nil, fmt.Errorf("unknown sweep field %v", sweep.Field)
		}

		r, err := g.Compute(model, a, speed, angle, ovl, threshold)
		if err != nil {
			return nil, fmt.Errorf("sweep %v=%g: %w", sweep.Field, v, err)
		}
		results = append(results, r)
	}
	return results, nil
}
