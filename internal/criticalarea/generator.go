// Package criticalarea implements the multi-model critical-area engine for
// unmanned-aircraft ground impacts. Five closed-form models (RCC, RTI, FAA,
// NAWCAD, JARUS) estimate the inert glide+slide footprint, which is then
// combined with the fuel deflagration footprint through an overlap rule.
package criticalarea

import (
	"fmt"

	"github.com/uasrisk/casex/internal/aircraft"
	"github.com/uasrisk/casex/internal/diag"
	"github.com/uasrisk/casex/internal/explosion"
	"github.com/uasrisk/casex/internal/kinematics"
)

// Defaults for the engine geometry: the radius of a person seen from above
// and the altitude at which the aircraft can first strike a person.
const (
	DefaultBuffer = 0.3 // [m]
	DefaultHeight = 1.8 // [m]
)

// thermalLethality is the fixed probability at which the thermal lethal
// area is evaluated when sizing the deflagration footprint.
const thermalLethality = 0.1

// Result holds the five output areas of a critical-area computation, all in
// m², together with any advisory diagnostics raised along the way.
//
// Invariants: Total ≤ Inert + Deflagration (equality at zero overlap) and
// Total ≥ max(Inert, Deflagration).
type Result struct {
	Total        float64 `json:"total"`
	Glide        float64 `json:"glide"`
	Slide        float64 `json:"slide"`
	Inert        float64 `json:"inert"`
	Deflagration float64 `json:"deflagration"`

	Diagnostics []diag.Diagnostic `json:"-"`
}

// Generator is the configured critical-area engine. Buffer and height are
// fixed at construction and never mutated by a computation.
type Generator struct {
	buffer float64
	height float64

	exp explosion.Model
	log diag.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithBuffer sets the person silhouette radius in metres.
func WithBuffer(buffer float64) Option {
	return func(g *Generator) { g.buffer = buffer }
}

// WithHeight sets the first-contact altitude in metres.
func WithHeight(height float64) Option {
	return func(g *Generator) { g.height = height }
}

// WithExplosionModel substitutes the deflagration model.
func WithExplosionModel(m explosion.Model) Option {
	return func(g *Generator) { g.exp = m }
}

// WithLogger sets the sink that receives diagnostics as they occur, in
// addition to them being returned on the Result.
func WithLogger(l diag.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// NewGenerator builds an engine with the given options. Buffer and height
// must be non-negative.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		buffer: DefaultBuffer,
		height: DefaultHeight,
		exp:    explosion.NewStandardModel(),
		log:    diag.NopLogger{},
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.buffer < 0 {
		return nil, fmt.Errorf("buffer %g must be >= 0", g.buffer)
	}
	if g.height < 0 {
		return nil, fmt.Errorf("height %g must be >= 0", g.height)
	}
	return g, nil
}

// Buffer returns the configured person silhouette radius.
func (g *Generator) Buffer() float64 { return g.buffer }

// Height returns the configured first-contact altitude.
func (g *Generator) Height() float64 { return g.height }

// Compute runs the selected model for a single impact scenario.
//
// overlap is the fraction of the deflagration footprint assumed to coincide
// with the inert footprint; values outside [0, 1] are clamped. threshold is
// model-specific (F_A for FAA, lethal kinetic energy in joules for NAWCAD
// and JARUS); pass DefaultThreshold to use the published defaults.
//
// An unrecognized model degrades to RCC with a diagnostic. A non-conforming
// aircraft is a fatal error.
func (g *Generator) Compute(model Model, ac aircraft.Aircraft, impactSpeed, impactAngleDeg, overlap, threshold float64) (Result, error) {
	ac, err := aircraft.New(ac)
	if err != nil {
		return Result{}, err
	}

	var diags []diag.Diagnostic
	if !model.valid() {
		d := diag.Newf(diag.CodeModelFallback,
			"critical-area model %v not recognized, using RCC", model)
		diags = append(diags, d)
		g.log.Warn(d.Message, "code", d.Code)
		model = RCC
	}

	// Normalize once so the horizontal speed, the glide distance and the
	// per-model geometry all see the same coerced angle.
	angleDeg, angleDiags := kinematics.NormalizeGlideAngle(impactAngleDeg)
	horizontalSpeed := kinematics.HorizontalSpeed(angleDeg, impactSpeed)
	glideDistance, heightDiags := kinematics.GlideDistance(g.height, angleDeg)
	for _, d := range append(angleDiags, heightDiags...) {
		diags = append(diags, d)
		g.log.Warn(d.Message, "code", d.Code)
	}

	glideArea, slideArea := areaFuncs[model](modelInput{
		aircraft:        ac,
		buffer:          g.buffer,
		height:          g.height,
		impactAngleDeg:  angleDeg,
		horizontalSpeed: horizontalSpeed,
		glideDistance:   glideDistance,
		threshold:       threshold,
	})
	inertArea := glideArea + slideArea

	tnt := g.exp.TNTEquivalentMass(ac.FuelType, ac.FuelQuantity)
	fireball := g.exp.FireballArea(tnt)
	thermal := g.exp.LethalAreaThermal(tnt, thermalLethality)
	deflagrationArea := max(fireball, thermal)

	overlappingArea := min(inertArea, deflagrationArea) * clamp01(overlap)

	return Result{
		Total:        inertArea + deflagrationArea - overlappingArea,
		Glide:        glideArea,
		Slide:        slideArea,
		Inert:        inertArea,
		Deflagration: deflagrationArea,
		Diagnostics:  diags,
	}, nil
}

func clamp01(v float64) float64 {
	return max(0, min(v, 1))
}
