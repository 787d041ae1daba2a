package terrain

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/kdenny/city-doodle-sub000/pkg/geo"
)

// SynthConfig controls the fixture terrain synthesizer.
type SynthConfig struct {
	// Extent is the side length of the square world region to fill.
	Extent float64 `yaml:"extent"`
	// Lakes is the number of water bodies to attempt.
	Lakes int `yaml:"lakes"`
	// LakeRadius is the mean lake radius in world units.
	LakeRadius float64 `yaml:"lake_radius"`
	// River enables one meandering river crossing the extent.
	River bool `yaml:"river"`
	// RiverWidth is the river width in world units.
	RiverWidth float64 `yaml:"river_width"`
	// Beaches enables beach strips along lake shores.
	Beaches bool `yaml:"beaches"`
}

// DefaultSynthConfig returns the demo terrain profile.
func DefaultSynthConfig() SynthConfig {
	return SynthConfig{
		Extent:     400,
		Lakes:      2,
		LakeRadius: 30,
		River:      true,
		RiverWidth: 6,
		Beaches:    true,
	}
}

// Synthesize builds a deterministic terrain fixture from perlin noise. The
// same config and seed always produce the same shapes.
func Synthesize(cfg SynthConfig, seed int64) TerrainData {
	if cfg.Extent <= 0 {
		cfg = DefaultSynthConfig()
	}
	noise := perlin.NewPerlin(2, 2, 3, seed)

	var data TerrainData

	// Water lobes: radially perturbed blobs, displaced across the extent by
	// hashing the lake index through the noise field.
	for i := 0; i < cfg.Lakes; i++ {
		fi := float64(i)
		cx := cfg.Extent * (0.25 + 0.5*noiseUnit(noise, fi*3.7+0.1, 11.3))
		cy := cfg.Extent * (0.25 + 0.5*noiseUnit(noise, 17.9, fi*5.1+0.2))
		center := geo.Pt(cx, cy)
		radius := cfg.LakeRadius * (0.7 + 0.6*noiseUnit(noise, fi+31.1, fi+7.7))

		data.Water = append(data.Water, WaterFeature{
			ID:      fmt.Sprintf("lake_%d", i),
			Polygon: lobePolygon(noise, center, radius, 16, fi*100),
		})
	}

	if cfg.River {
		data.Rivers = append(data.Rivers, RiverFeature{
			ID:         "river_0",
			Centerline: riverLine(noise, cfg.Extent),
			Width:      cfg.RiverWidth,
		})
	}

	if cfg.Beaches {
		for i, w := range data.Water {
			data.Beaches = append(data.Beaches, BeachFeature{
				ID:      fmt.Sprintf("beach_%d", i),
				Polygon: shoreStrip(w.Polygon, 4),
			})
		}
	}

	return data
}

// noiseUnit maps 2D perlin noise into [0,1].
func noiseUnit(p *perlin.Perlin, x, y float64) float64 {
	v := p.Noise2D(x*0.13, y*0.13)
	v = (v + 1) / 2
	return math.Max(0, math.Min(1, v))
}

// lobePolygon builds an organic blob by perturbing a circle's radius with
// noise sampled around the perimeter.
func lobePolygon(p *perlin.Perlin, center geo.Point, radius float64, segments int, phase float64) geo.Polygon {
	pts := make([]geo.Point, segments)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		r := radius * (0.75 + 0.5*noiseUnit(p, phase+math.Cos(angle)*3, phase+math.Sin(angle)*3))
		pts[i] = geo.Pt(
			center.X+r*math.Cos(angle),
			center.Y+r*math.Sin(angle),
		)
	}
	return geo.Polygon{Vertices: pts}
}

// riverLine meanders a polyline across the extent left to right, offsetting
// each station vertically by noise.
func riverLine(p *perlin.Perlin, extent float64) geo.Polyline {
	const stations = 24
	pts := make([]geo.Point, stations)
	for i := 0; i < stations; i++ {
		t := float64(i) / float64(stations-1)
		x := t * extent
		y := extent*0.5 + (noiseUnit(p, t*40, 99.5)-0.5)*extent*0.35
		pts[i] = geo.Pt(x, y)
	}
	return geo.Polyline{Points: pts}
}

// shoreStrip returns a thin band hugging the water polygon's boundary,
// built by scaling the polygon outward about its centroid.
func shoreStrip(water geo.Polygon, width float64) geo.Polygon {
	if water.IsEmpty() {
		return geo.Polygon{}
	}
	c := water.Centroid()
	pts := make([]geo.Point, len(water.Vertices))
	for i, v := range water.Vertices {
		dir := v.Sub(c).Normalize()
		pts[i] = v.Add(dir.Scale(width))
	}
	return geo.Polygon{Vertices: pts}
}
