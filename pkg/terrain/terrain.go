// Package terrain defines the terrain input contract. The geometry core
// only reads terrain; the production adapter that turns backend tiles into
// these shapes lives outside this module. A perlin-based synthesizer is
// provided for fixtures and the CLI demo.
package terrain

import "github.com/kdenny/city-doodle-sub000/pkg/geo"

// WaterFeature is a standing water body (lake, bay) as a polygon.
type WaterFeature struct {
	ID      string      `json:"id"`
	Polygon geo.Polygon `json:"polygon"`
}

// RiverFeature is a flowing water course as a width-annotated centerline.
type RiverFeature struct {
	ID         string       `json:"id"`
	Centerline geo.Polyline `json:"centerline"`
	Width      float64      `json:"width"`
}

// BeachFeature is a sandy strip as a polygon.
type BeachFeature struct {
	ID      string      `json:"id"`
	Polygon geo.Polygon `json:"polygon"`
}

// Coastline is the land/sea boundary as a polyline.
type Coastline struct {
	ID   string       `json:"id"`
	Line geo.Polyline `json:"line"`
}

// Contour is an elevation isoline.
type Contour struct {
	Elevation float64      `json:"elevation"`
	Line      geo.Polyline `json:"line"`
}

// TerrainData is everything the geometry core reads about the landscape.
type TerrainData struct {
	Water      []WaterFeature `json:"water"`
	Rivers     []RiverFeature `json:"rivers"`
	Beaches    []BeachFeature `json:"beaches"`
	Coastlines []Coastline    `json:"coastlines"`
	Contours   []Contour      `json:"contours"`
}

// HasWater reports whether any water polygon or river is present.
func (t TerrainData) HasWater() bool {
	return len(t.Water) > 0 || len(t.Rivers) > 0
}

// SegmentCrossesWater reports whether segment a→b crosses or enters any
// water polygon.
func (t TerrainData) SegmentCrossesWater(a, b geo.Point) bool {
	for _, w := range t.Water {
		if w.Polygon.IntersectsSegment(a, b) {
			return true
		}
		if w.Polygon.Contains(geo.MidPoint(a, b)) {
			return true
		}
	}
	return false
}
