package gisutil

import (
	"math"

	geo "github.com/paulmach/go.geo"
)

// PolygonArea - compute the planar area of a polygon using the shoelace
// (trapezoid) sum. The first and last point should be the same, see ClosePolygon.
// Winding direction does not matter. Fewer than two points has no area.
func PolygonArea(polygon *geo.PointSet) float64 {
	if polygon == nil {
		return 0
	}

	var sum float64
	for i := 0; i < len(*polygon)-1; i++ {
		a, b := (*polygon)[i], (*polygon)[i+1]
		sum += (b[1] + a[1]) * (b[0] - a[0])
	}
	return math.Abs(sum / 2.0)
}
