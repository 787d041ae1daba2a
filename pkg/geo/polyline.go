package geo

import "math"

// Polyline is an ordered sequence of points forming a path.
type Polyline struct {
	Points []Point `json:"points"`
	Width  float64 `json:"width,omitempty"`
}

// NewPolyline creates a polyline from a list of points.
func NewPolyline(pts ...Point) Polyline {
	return Polyline{Points: pts}
}

// Length returns the total arc length of the polyline.
func (pl Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(pl.Points); i++ {
		total += pl.Points[i-1].Distance(pl.Points[i])
	}
	return total
}

// PointAt returns the point at fraction t in [0,1] along the polyline length.
func (pl Polyline) PointAt(t float64) Point {
	if len(pl.Points) == 0 {
		return Point{}
	}
	if len(pl.Points) == 1 || t <= 0 {
		return pl.Points[0]
	}
	if t >= 1 {
		return pl.Points[len(pl.Points)-1]
	}

	totalLen := pl.Length()
	if totalLen < 1e-12 {
		return pl.Points[0]
	}
	targetLen := t * totalLen
	walked := 0.0

	for i := 1; i < len(pl.Points); i++ {
		segLen := pl.Points[i-1].Distance(pl.Points[i])
		if walked+segLen >= targetLen {
			frac := (targetLen - walked) / segLen
			return pl.Points[i-1].Lerp(pl.Points[i], frac)
		}
		walked += segLen
	}
	return pl.Points[len(pl.Points)-1]
}

// Sample returns n points evenly spaced by arc length along the polyline,
// endpoints included.
func (pl Polyline) Sample(n int) []Point {
	if n <= 0 || len(pl.Points) == 0 {
		return nil
	}
	if n == 1 {
		return []Point{pl.PointAt(0.5)}
	}
	samples := make([]Point, n)
	for i := 0; i < n; i++ {
		samples[i] = pl.PointAt(float64(i) / float64(n-1))
	}
	return samples
}

// NearestPoint returns the closest point on the polyline to p, and the distance.
func (pl Polyline) NearestPoint(p Point) (Point, float64) {
	if len(pl.Points) == 0 {
		return Point{}, math.MaxFloat64
	}
	if len(pl.Points) == 1 {
		return pl.Points[0], p.Distance(pl.Points[0])
	}

	bestPt := pl.Points[0]
	bestDist := p.Distance(pl.Points[0])

	for i := 1; i < len(pl.Points); i++ {
		pt, dist := NearestPointOnSegment(p, pl.Points[i-1], pl.Points[i])
		if dist < bestDist {
			bestDist = dist
			bestPt = pt
		}
	}
	return bestPt, bestDist
}

// Distance returns the distance from p to the polyline.
func (pl Polyline) Distance(p Point) float64 {
	_, d := pl.NearestPoint(p)
	return d
}

// Intersections returns every crossing of segment a→b with the polyline,
// in segment order along the polyline.
func (pl Polyline) Intersections(a, b Point) []Point {
	var crossings []Point
	for i := 1; i < len(pl.Points); i++ {
		if pt, ok := SegmentIntersection(a, b, pl.Points[i-1], pl.Points[i]); ok {
			crossings = append(crossings, pt)
		}
	}
	return crossings
}

// Offset returns a polyline offset by distance to the left (positive = left
// when walking along the polyline direction).
func (pl Polyline) Offset(distance float64) Polyline {
	n := len(pl.Points)
	if n < 2 {
		return pl
	}

	result := make([]Point, n)
	for i := 0; i < n; i++ {
		var normal Point
		switch {
		case i == 0:
			normal = pl.Points[1].Sub(pl.Points[0]).Normalize().Perp()
		case i == n-1:
			normal = pl.Points[n-1].Sub(pl.Points[n-2]).Normalize().Perp()
		default:
			dir1 := pl.Points[i].Sub(pl.Points[i-1]).Normalize()
			dir2 := pl.Points[i+1].Sub(pl.Points[i]).Normalize()
			normal = dir1.Add(dir2).Normalize().Perp()
		}
		result[i] = pl.Points[i].Add(normal.Scale(distance))
	}
	return Polyline{Points: result, Width: pl.Width}
}

// BoundingBox returns the axis-aligned bounding box as (min, max) points.
func (pl Polyline) BoundingBox() (Point, Point) {
	if len(pl.Points) == 0 {
		return Point{}, Point{}
	}
	minP := pl.Points[0]
	maxP := pl.Points[0]
	for _, v := range pl.Points[1:] {
		minP.X = math.Min(minP.X, v.X)
		minP.Y = math.Min(minP.Y, v.Y)
		maxP.X = math.Max(maxP.X, v.X)
		maxP.Y = math.Max(maxP.Y, v.Y)
	}
	return minP, maxP
}
