package gisutil

import (
	"math"

	geo "github.com/paulmach/go.geo"
)

func radians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// TraverseSurveyLine - determine the point at the given distance and bearing
// from the start point. Bearing is in degrees and is not normalized.
//
// The bearing is applied as a mathematical angle (counter-clockwise from the
// x axis), not as a compass bearing: a bearing of 0 moves along +x.
// Existing survey scripts depend on this, use TraverseCompassBearing for
// clockwise-from-North semantics.
func TraverseSurveyLine(from geo.Point, distance float64, bearing float64) geo.Point {
	theta := radians(bearing)
	return geo.Point{
		from[0] + distance*math.Cos(theta),
		from[1] + distance*math.Sin(theta),
	}
}

// TraverseCompassBearing - as TraverseSurveyLine but the bearing is measured
// clockwise from North, so 0 moves along +y and 90 along +x.
func TraverseCompassBearing(from geo.Point, distance float64, bearing float64) geo.Point {
	theta := radians(bearing)
	return geo.Point{
		from[0] + distance*math.Sin(theta),
		from[1] + distance*math.Cos(theta),
	}
}

// SurveyLine - the segment travelled by TraverseSurveyLine
func SurveyLine(from geo.Point, distance float64, bearing float64) *geo.Line {
	to := TraverseSurveyLine(from, distance, bearing)
	return geo.NewLine(&from, &to)
}
