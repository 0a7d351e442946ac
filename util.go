package gisutil

import (
	geo "github.com/paulmach/go.geo"
)

// IsPointSetClosed - true for rings of more than two points whose ends meet
func IsPointSetClosed(points *geo.PointSet) bool {
	if points != nil && points.Length() > 2 {
		return points.First().Equals(points.Last())
	}
	return false
}

// ClosePolygon - copy of the point set with the first point repeated at the
// end, unless the ends already meet
func ClosePolygon(points *geo.PointSet) *geo.PointSet {
	closed := geo.NewPointSet()
	if points == nil || points.Length() == 0 {
		return closed
	}

	*closed = append(*closed, *points...)
	if !points.First().Equals(points.Last()) {
		closed.Push(points.First())
	}
	return closed
}
