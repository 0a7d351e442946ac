package gisutil

import (
	geo "github.com/paulmach/go.geo"
	geojson "github.com/paulmach/go.geojson"
)

func coords(p geo.Point) []float64 {
	return []float64{p[0], p[1]}
}

// PointFeature - geojson Point feature for p
func PointFeature(p geo.Point) *geojson.Feature {
	return geojson.NewPointFeature(coords(p))
}

// SurveyLineFeature - geojson LineString for a survey segment, with its
// planar length as the "length" property
func SurveyLineFeature(line *geo.Line) *geojson.Feature {
	feature := geojson.NewLineStringFeature([][]float64{coords(*line.A()), coords(*line.B())})
	feature.SetProperty("length", line.Distance())
	return feature
}

// PolygonFeature - geojson Polygon with a single ring taken as-is, plus the
// ring's planar "area". Open rings are not closed here, run ClosePolygon
// first when the consumer requires valid geojson.
func PolygonFeature(ps *geo.PointSet) *geojson.Feature {
	ring := make([][]float64, 0)
	if ps != nil {
		for _, p := range *ps {
			ring = append(ring, coords(p))
		}
	}
	feature := geojson.NewPolygonFeature([][][]float64{ring})
	feature.SetProperty("area", PolygonArea(ps))
	return feature
}

// NewFeatureCollection - wrap features in a collection, in order
func NewFeatureCollection(features ...*geojson.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		fc.AddFeature(f)
	}
	return fc
}
