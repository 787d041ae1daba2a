package city

import "github.com/kdenny/city-doodle-sub000/pkg/geo"

// PolygonsOverlap reports whether two polygons overlap. The test is
// symmetric: a vertex of either inside the other, or any pair of edges
// crossing. Degenerate polygons overlap nothing.
func PolygonsOverlap(a, b geo.Polygon) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	for _, v := range a.Vertices {
		if b.Contains(v) {
			return true
		}
	}
	for _, v := range b.Vertices {
		if a.Contains(v) {
			return true
		}
	}
	for i := 0; i < a.Len(); i++ {
		a1, a2 := a.Edge(i)
		if b.IntersectsSegment(a1, a2) {
			return true
		}
	}
	return false
}

// WouldOverlap reports whether candidate overlaps any existing district
// polygon. Used as the placement collision check.
func WouldOverlap(candidate geo.Polygon, existing []District) bool {
	for _, d := range existing {
		if PolygonsOverlap(candidate, d.Polygon) {
			return true
		}
	}
	return false
}

// OverlapArea returns the approximate overlap area of two polygons via
// convex clipping. For the near-convex shapes the generators emit this is
// a usable diagnostic; it is not exact for concave inputs.
func OverlapArea(a, b geo.Polygon) float64 {
	return geo.ClipToConvex(a, b).Area()
}
