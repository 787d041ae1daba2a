// Package spatial provides grid-bucket indexes for O(1) candidate lookup.
// An index is a pure derived cache over a feature list: Build replaces it
// wholesale, and Candidates may return false positives but never false
// negatives within the query buffer. Callers run precise distance or
// point-in-polygon checks on the candidates.
package spatial

import (
	"math"

	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/geo"
)

// Default cell sizes in world units.
const (
	RoadCellSize     = 50.0
	POICellSize      = 50.0
	DistrictCellSize = 100.0
)

// Grid is a generic grid-bucket index keyed by packed integer cells.
type Grid[T any] struct {
	cellSize float64
	buffer   float64
	cells    map[[2]int][]T
}

// NewGrid creates an index with the given cell size and query buffer. The
// buffer expands every inserted bounding box so a query at a cell edge
// still finds features just across it.
func NewGrid[T any](cellSize, buffer float64) *Grid[T] {
	if cellSize <= 0 {
		cellSize = RoadCellSize
	}
	return &Grid[T]{
		cellSize: cellSize,
		buffer:   buffer,
		cells:    make(map[[2]int][]T),
	}
}

// Clear drops every bucket. Build passes call this first so a rebuilt index
// fully replaces the previous one.
func (g *Grid[T]) Clear() {
	g.cells = make(map[[2]int][]T)
}

// Insert adds an item to every cell overlapped by its bounding box expanded
// by the query buffer.
func (g *Grid[T]) Insert(item T, min, max geo.Point) {
	minCX := int(math.Floor((min.X - g.buffer) / g.cellSize))
	minCY := int(math.Floor((min.Y - g.buffer) / g.cellSize))
	maxCX := int(math.Floor((max.X + g.buffer) / g.cellSize))
	maxCY := int(math.Floor((max.Y + g.buffer) / g.cellSize))

	for cx := minCX; cx <= maxCX; cx++ {
		for cy := minCY; cy <= maxCY; cy++ {
			key := [2]int{cx, cy}
			g.cells[key] = append(g.cells[key], item)
		}
	}
}

// Candidates returns the bucket containing (x, y) in O(1). The result may
// contain false positives; it is nil when the cell is empty.
func (g *Grid[T]) Candidates(x, y float64) []T {
	key := [2]int{
		int(math.Floor(x / g.cellSize)),
		int(math.Floor(y / g.cellSize)),
	}
	return g.cells[key]
}

// CellCount returns the number of non-empty cells.
func (g *Grid[T]) CellCount() int {
	return len(g.cells)
}

// BuildRoadIndex indexes roads with a hit-test buffer. Each road is
// inserted into every cell its bounding box (plus buffer) overlaps.
func BuildRoadIndex(roads []city.Road, hitRadius float64) *Grid[city.Road] {
	g := NewGrid[city.Road](RoadCellSize, hitRadius)
	for _, r := range roads {
		if len(r.Line.Points) == 0 {
			continue
		}
		min, max := r.Line.BoundingBox()
		g.Insert(r, min, max)
	}
	return g
}

// BuildPOIIndex indexes point features with a hit-test buffer.
func BuildPOIIndex(pois []city.POI, hitRadius float64) *Grid[city.POI] {
	g := NewGrid[city.POI](POICellSize, hitRadius)
	for _, p := range pois {
		g.Insert(p, p.Position, p.Position)
	}
	return g
}

// BuildDistrictIndex indexes districts by precise bounding box, no buffer:
// district hit-testing is point-in-polygon, which needs no hit radius.
func BuildDistrictIndex(districts []city.District) *Grid[city.District] {
	g := NewGrid[city.District](DistrictCellSize, 0)
	for _, d := range districts {
		if d.Polygon.IsEmpty() {
			continue
		}
		rect := d.Polygon.Bounds()
		g.Insert(d, geo.Pt(rect.X.Lo, rect.Y.Lo), geo.Pt(rect.X.Hi, rect.Y.Hi))
	}
	return g
}
