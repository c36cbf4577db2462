// Package geo bridges area annotations to simplefeatures geometries for the
// polygon computations the rendering surface needs (label anchors,
// renderability).
package geo

import (
	"fmt"

	geom "github.com/peterstace/simplefeatures/geom"

	"github.com/lorekeep/atlas/pkg/core"
)

// AreaPolygon builds a closed polygon from the area's vertices. The
// constructor validates the ring, so a degenerate ring (self-intersecting,
// zero area) comes back as an error, as does an area with fewer than 3
// vertices. Both are expected draw-in-progress states for the caller to
// fall back from, not failures to report.
func AreaPolygon(a core.Area) (geom.Polygon, error) {
	if !a.HasGeometry() {
		return geom.Polygon{}, fmt.Errorf("polygon needs at least 3 vertices, have %d", len(a.Points))
	}

	// Close the ring: repeat the first vertex at the end.
	coords := make([]float64, 0, (len(a.Points)+1)*2)
	for _, v := range a.Points {
		coords = append(coords, v.Coordinates[0], v.Coordinates[1])
	}
	coords = append(coords, a.Points[0].Coordinates[0], a.Points[0].Coordinates[1])

	ring, err := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	if err != nil {
		return geom.Polygon{}, fmt.Errorf("building area ring: %w", err)
	}
	poly, err := geom.NewPolygon([]geom.LineString{ring})
	if err != nil {
		return geom.Polygon{}, fmt.Errorf("building area ring: %w", err)
	}
	return poly, nil
}

// VertexMean averages the area's vertices. Used as the label anchor while
// the polygon is not yet valid, and as a fallback for degenerate rings.
func VertexMean(points core.VertexList) core.Position {
	if len(points) == 0 {
		return core.Position{}
	}
	var sum core.Position
	for _, v := range points {
		sum[0] += v.Coordinates[0]
		sum[1] += v.Coordinates[1]
	}
	n := float64(len(points))
	return core.Position{sum[0] / n, sum[1] / n}
}

// LabelAnchor returns where the area's label should be placed: the manual
// labelPosition override when present, the polygon centroid when the ring
// builds cleanly, and the vertex mean otherwise.
func LabelAnchor(a core.Area) core.Position {
	if a.LabelPosition != nil {
		return *a.LabelPosition
	}
	poly, err := AreaPolygon(a)
	if err != nil {
		return VertexMean(a.Points)
	}
	coord, ok := poly.Centroid().Coordinates()
	if !ok {
		return VertexMean(a.Points)
	}
	return core.Position{coord.XY.X, coord.XY.Y}
}
