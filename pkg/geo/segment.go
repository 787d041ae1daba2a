package geo

import "math"

// parallelEpsilon is the denominator threshold below which two segments are
// treated as parallel and reported as non-intersecting.
const parallelEpsilon = 1e-4

// SegmentIntersection returns the intersection point of segments p1→p2 and
// p3→p4, solved parametrically. It reports false when the segments are
// near-parallel or when the intersection falls outside either segment.
func SegmentIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	denom := (p4.Y-p3.Y)*(p2.X-p1.X) - (p4.X-p3.X)*(p2.Y-p1.Y)
	if math.Abs(denom) < parallelEpsilon {
		return Point{}, false
	}
	t := ((p4.X-p3.X)*(p1.Y-p3.Y) - (p4.Y-p3.Y)*(p1.X-p3.X)) / denom
	u := ((p2.X-p1.X)*(p1.Y-p3.Y) - (p2.Y-p1.Y)*(p1.X-p3.X)) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return p1.Lerp(p2, t), true
}

// NearestPointOnSegment returns the closest point on segment ab to p, and
// the distance to it. Zero-length segments degrade to point distance.
func NearestPointOnSegment(p, a, b Point) (Point, float64) {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 < 1e-12 {
		return a, p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / abLen2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	closest := a.Add(ab.Scale(t))
	return closest, p.Distance(closest)
}

// PointToSegmentDistance returns the distance from p to segment ab.
func PointToSegmentDistance(p, a, b Point) float64 {
	_, d := NearestPointOnSegment(p, a, b)
	return d
}
