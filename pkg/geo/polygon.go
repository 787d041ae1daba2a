package geo

import (
	"math"
	"sort"

	"github.com/golang/geo/r2"
)

// Polygon is an ordered vertex loop, implicitly closed (an edge runs from the
// last vertex back to the first). Fewer than 3 vertices is degenerate: such a
// polygon contains nothing, clips nothing, and overlaps nothing.
type Polygon struct {
	Vertices []Point `json:"points"`
}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...Point) Polygon {
	return Polygon{Vertices: pts}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// IsEmpty returns true if the polygon has fewer than 3 vertices.
func (p Polygon) IsEmpty() bool {
	return len(p.Vertices) < 3
}

// Edge returns the i-th edge as (start, end). Wraps around.
func (p Polygon) Edge(i int) (Point, Point) {
	n := len(p.Vertices)
	return p.Vertices[i%n], p.Vertices[(i+1)%n]
}

// Contains reports whether pt is inside the polygon, using ray casting with
// the even-odd rule. Degenerate polygons contain nothing.
func (p Polygon) Contains(pt Point) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// Centroid returns the vertex average of the polygon. This is deliberately
// not the area centroid: generated district shapes are near-regular, and the
// vertex average is what grid rotation and seeding key off.
func (p Polygon) Centroid() Point {
	n := len(p.Vertices)
	if n == 0 {
		return Point{}
	}
	sum := Point{}
	for _, v := range p.Vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1.0 / float64(n))
}

// Bounds returns the axis-aligned bounding rectangle of the polygon.
// An empty polygon yields the empty rect.
func (p Polygon) Bounds() r2.Rect {
	if len(p.Vertices) == 0 {
		return r2.EmptyRect()
	}
	pts := make([]r2.Point, len(p.Vertices))
	for i, v := range p.Vertices {
		pts[i] = r2.Point{X: v.X, Y: v.Y}
	}
	return r2.RectFromPoints(pts...)
}

// BoundingBox returns the axis-aligned bounding box as (min, max) points.
func (p Polygon) BoundingBox() (Point, Point) {
	if len(p.Vertices) == 0 {
		return Point{}, Point{}
	}
	minP := p.Vertices[0]
	maxP := p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		minP.X = math.Min(minP.X, v.X)
		minP.Y = math.Min(minP.Y, v.Y)
		maxP.X = math.Max(maxP.X, v.X)
		maxP.Y = math.Max(maxP.Y, v.Y)
	}
	return minP, maxP
}

// BoundingDiameter returns the larger side of the bounding box.
func (p Polygon) BoundingDiameter() float64 {
	minP, maxP := p.BoundingBox()
	return math.Max(maxP.X-minP.X, maxP.Y-minP.Y)
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Vertices[i].X * p.Vertices[j].Y
		area -= p.Vertices[j].X * p.Vertices[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// EnsureCCW returns the polygon with vertices in counterclockwise order.
func (p Polygon) EnsureCCW() Polygon {
	if p.SignedArea() < 0 {
		return p.Reverse()
	}
	return p
}

// Reverse returns the polygon with reversed vertex order.
func (p Polygon) Reverse() Polygon {
	n := len(p.Vertices)
	rev := make([]Point, n)
	for i, v := range p.Vertices {
		rev[n-1-i] = v
	}
	return Polygon{Vertices: rev}
}

// Perimeter returns the total perimeter length.
func (p Polygon) Perimeter() float64 {
	n := len(p.Vertices)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += p.Vertices[i].Distance(p.Vertices[j])
	}
	return total
}

// DistanceToBoundary returns the distance from pt to the nearest polygon
// edge. Returns +Inf for degenerate polygons.
func (p Polygon) DistanceToBoundary(pt Point) float64 {
	n := len(p.Vertices)
	if n < 2 {
		return math.Inf(1)
	}
	best := math.Inf(1)
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		if d := PointToSegmentDistance(pt, a, b); d < best {
			best = d
		}
	}
	return best
}

// DistanceTo returns the distance from pt to the polygon: zero when the
// point is inside, otherwise the distance to the nearest edge.
func (p Polygon) DistanceTo(pt Point) float64 {
	if p.Contains(pt) {
		return 0
	}
	return p.DistanceToBoundary(pt)
}

// ClipSegment returns every crossing of segment a→b with the polygon
// boundary, sorted by distance from a. Consecutive pairs of the returned
// points bound the sub-segments that lie alternately inside and outside the
// polygon.
func (p Polygon) ClipSegment(a, b Point) []Point {
	n := len(p.Vertices)
	if n < 3 {
		return nil
	}
	var crossings []Point
	for i := 0; i < n; i++ {
		e1, e2 := p.Edge(i)
		if pt, ok := SegmentIntersection(a, b, e1, e2); ok {
			crossings = append(crossings, pt)
		}
	}
	sort.Slice(crossings, func(i, j int) bool {
		return a.Distance(crossings[i]) < a.Distance(crossings[j])
	})
	return crossings
}

// IntersectsSegment reports whether segment a→b crosses any polygon edge.
func (p Polygon) IntersectsSegment(a, b Point) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		e1, e2 := p.Edge(i)
		if _, ok := SegmentIntersection(a, b, e1, e2); ok {
			return true
		}
	}
	return false
}
