// Package obstacles estimates how obstacle density inside the glide/slide
// corridor reduces the effective critical area. Three estimators are
// provided: a closed-form approximate CDF of the distance to the first
// obstacle, the exact CDF under a homogeneous Poisson point process, and a
// Monte-Carlo simulation that converges to the Poisson result.
//
// Obstacle density is given per km²; corridor width and length in metres.
package obstacles

import (
	"fmt"
	"math"
)

// CDF is a sampled cumulative distribution of the distance to the first
// obstacle along the corridor, together with the probability that the
// corridor contains no obstacle at all.
type CDF struct {
	Curve []float64 // P(first obstacle within X[i])
	X     []float64 // [m] sample positions, 0..length
	PNone float64   // probability of an obstacle-free corridor
}

// Approximation is the closed-form approximate CDF plus the corridor area
// remaining after the obstacle-density reduction at the target probability.
type Approximation struct {
	CDF
	ReducedArea float64 // [m²]
}

func validateCorridor(density, width, length float64, resolution int) error {
	if density < 0 {
		return fmt.Errorf("obstacle density %g must be >= 0", density)
	}
	if width <= 0 || length <= 0 {
		return fmt.Errorf("corridor %g x %g m must have positive dimensions", width, length)
	}
	if resolution < 2 {
		return fmt.Errorf("resolution %d must be at least 2", resolution)
	}
	return nil
}

// linspace samples n evenly spaced values from 0 to max inclusive.
func linspace(max float64, n int) []float64 {
	xs := make([]float64, n)
	step := max / float64(n-1)
	for i := range xs {
		xs[i] = float64(i) * step
	}
	xs[n-1] = max
	return xs
}

// ApproximateCDF computes the discrete-thinning approximation
//
//	CDF(x) = 1 - (1 - x/L)^(density·W·L/1e6)
//
// along with the zero-obstacle probability (1 - W·L/1e6)^density and, for
// the target cumulative probability targetP, the corridor area remaining
// after the reduction. When targetP is not reachable (targetP >= 1 - pNone)
// the full corridor area is returned unreduced.
func ApproximateCDF(density, width, length float64, resolution int, targetP float64) (Approximation, error) {
	if err := validateCorridor(density, width, length, resolution); err != nil {
		return Approximation{}, err
	}

	area := width * length
	exponent := density * area / 1e6

	xs := linspace(length, resolution)
	curve := make([]float64, resolution)
	for i, x := range xs {
		curve[i] = 1 - math.Pow(1-x/length, exponent)
	}

	pNone := math.Pow(1-area/1e6, density)

	reduced := area
	if targetP < 1-pNone {
		reduction := 1 - math.Pow(1-targetP/(1-pNone), 1/((density/1e6)*area))
		reduced = area * reduction
	}

	return Approximation{
		CDF:         CDF{Curve: curve, X: xs, PNone: pNone},
		ReducedArea: reduced,
	}, nil
}

// PoissonCDF computes the exact first-obstacle CDF under a homogeneous
// Poisson point process:
//
//	CDF(x) = 1 - exp(-density/1e6 · W · x)
func PoissonCDF(density, width, length float64, resolution int) (CDF, error) {
	if err := validateCorridor(density, width, length, resolution); err != nil {
		return CDF{}, err
	}

	rate := density / 1e6 * width

	xs := linspace(length, resolution)
	curve := make([]float64, resolution)
	for i, x := range xs {
		curve[i] = 1 - math.Exp(-rate*x)
	}

	return CDF{
		Curve: curve,
		X:     xs,
		PNone: math.Exp(-rate * length),
	}, nil
}
