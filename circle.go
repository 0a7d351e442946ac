package gisutil

import (
	"math"

	geo "github.com/paulmach/go.geo"
	"github.com/pkg/errors"
)

// CircleSteps is the number of boundary points produced by Circle.
const CircleSteps = 360

// ErrTooFewSides is returned by RegularPolygon for fewer than three sides.
var ErrTooFewSides = errors.New("regular polygon needs at least 3 sides")

// Circle - approximate a circle boundary with CircleSteps points.
//
// Kept bit-for-bit compatible with the legacy survey scripts, which means it
// is not a true circle: the step index 0..359 is used directly as an angle in
// radians (roughly nine turns) and both coordinates are offset by center x.
// The result is also not closed. RegularPolygon builds a correct ring.
func Circle(center geo.Point, radius float64) *geo.PointSet {
	points := make(geo.PointSet, 0, CircleSteps)
	for i := 0; i < CircleSteps; i++ {
		angle := float64(i)
		points = append(points, geo.Point{
			radius*math.Cos(angle) + center[0],
			radius*math.Sin(angle) + center[0],
		})
	}
	return &points
}

// RegularPolygon - closed polygon with the given number of evenly spaced
// vertices on the circle around center, starting at angle 0.
func RegularPolygon(center geo.Point, radius float64, sides int) (*geo.PointSet, error) {
	if sides < 3 {
		return nil, ErrTooFewSides
	}

	points := make(geo.PointSet, 0, sides+1)
	for i := 0; i < sides; i++ {
		angle := float64(i) / float64(sides) * 2 * math.Pi
		points = append(points, geo.Point{
			center[0] + radius*math.Cos(angle),
			center[1] + radius*math.Sin(angle),
		})
	}
	points = append(points, points[0])
	return &points, nil
}
