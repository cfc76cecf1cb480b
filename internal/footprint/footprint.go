// Package footprint builds the ground footprint of a critical-area result
// as a polygon in a local metric frame: the impact point sits at the
// origin and the glide/slide track runs along +X. The polygons are meant
// for GIS layers and plotting; WKT output comes straight from the geometry
// library.
package footprint

import (
	"fmt"
	"math"

	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/uasrisk/casex/internal/aircraft"
	"github.com/uasrisk/casex/internal/criticalarea"
)

// capSegments is the number of segments used to approximate a semicircular
// cap; a full circle uses twice as many.
const capSegments = 32

// Corridor returns the rectangular footprint [0, length] × [-width/2, width/2].
func Corridor(length, width float64) (geom.Polygon, error) {
	if length <= 0 || width <= 0 {
		return geom.Polygon{}, fmt.Errorf("corridor %g x %g m must have positive dimensions", length, width)
	}
	h := width / 2
	coords := []float64{
		0, -h,
		length, -h,
		length, h,
		0, h,
		0, -h,
	}
	return ringPolygon(coords)
}

// Capsule returns a rectangle [0, length] × [-r, r] closed by a
// semicircular cap of radius r at x = length. A zero length degenerates to
// a disc centred on the far end of the cap.
func Capsule(length, radius float64) (geom.Polygon, error) {
	if radius <= 0 {
		return geom.Polygon{}, fmt.Errorf("capsule radius %g must be positive", radius)
	}
	if length < 0 {
		return geom.Polygon{}, fmt.Errorf("capsule length %g must be >= 0", length)
	}
	if length == 0 {
		return Disc(radius)
	}

	coords := []float64{0, -radius}
	// Cap sweeps from -90° to +90° around (length, 0).
	for i := 0; i <= capSegments; i++ {
		theta := -math.Pi/2 + math.Pi*float64(i)/capSegments
		coords = append(coords, length+radius*math.Cos(theta), radius*math.Sin(theta))
	}
	coords = append(coords, 0, radius, 0, -radius)
	return ringPolygon(coords)
}

// Disc returns a polygonal approximation of a circle of the given radius
// centred on the origin.
func Disc(radius float64) (geom.Polygon, error) {
	if radius <= 0 {
		return geom.Polygon{}, fmt.Errorf("disc radius %g must be positive", radius)
	}
	var coords []float64
	n := 2 * capSegments
	for i := 0; i <= n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		coords = append(coords, radius*math.Cos(theta), radius*math.Sin(theta))
	}
	// Close the ring on the exact starting vertex.
	coords[len(coords)-2] = radius
	coords[len(coords)-1] = 0
	return ringPolygon(coords)
}

// ForResult derives the footprint shape implied by a model's area result:
// a swept rectangle for RCC and NAWCAD, a capsule for RTI and JARUS, and
// the equivalent debris disc for FAA. The shape always encloses exactly
// the inert area of the result.
func ForResult(model criticalarea.Model, ac aircraft.Aircraft, buffer float64, res criticalarea.Result) (geom.Polygon, error) {
	switch model {
	case criticalarea.RCC, criticalarea.NAWCAD:
		width := ac.Width + 2*buffer
		return Corridor(res.Inert/width, width)

	case criticalarea.RTI, criticalarea.JARUS:
		r := buffer + ac.Width/2
		straight := (res.Inert - math.Pi*r*r) / (2 * r)
		if straight < 0 {
			straight = 0
		}
		return Capsule(straight, r)

	case criticalarea.FAA:
		if res.Inert <= 0 {
			return geom.Polygon{}, fmt.Errorf("FAA inert area %g has no disc equivalent", res.Inert)
		}
		return Disc(math.Sqrt(res.Inert / math.Pi))

	default:
		return geom.Polygon{}, fmt.Errorf("no footprint shape for model %v", model)
	}
}

// WKT renders the footprint for downstream GIS/plot consumers.
func WKT(p geom.Polygon) string {
	return p.AsText()
}

func ringPolygon(coords []float64) (geom.Polygon, error) {
	seq := geom.NewSequence(coords, geom.DimXY)
	ring := geom.NewLineString(seq)
	poly := geom.NewPolygon([]geom.LineString{ring})
	if err := poly.Validate(); err != nil {
		return geom.Polygon{}, fmt.Errorf("building footprint ring: %w", err)
	}
	return poly, nil
}
