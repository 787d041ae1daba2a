package layout

import (
	"math"

	"github.com/kdenny/city-doodle-sub000/pkg/geo"
	"github.com/kdenny/city-doodle-sub000/pkg/rng"
)

// RoundedRect builds a rounded-rectangle footprint centered at center.
// cornerFrac is the corner radius as a fraction of the shorter side.
func RoundedRect(center geo.Point, width, height, cornerFrac float64) geo.Polygon {
	if width <= 0 || height <= 0 {
		return geo.Polygon{}
	}
	if cornerFrac < 0 {
		cornerFrac = 0
	}
	if cornerFrac > 0.5 {
		cornerFrac = 0.5
	}
	r := cornerFrac * math.Min(width, height)
	hw, hh := width/2, height/2

	const cornerSegs = 3
	var pts []geo.Point

	// Corner centers in CCW order starting bottom-right, with the angle at
	// which each corner arc begins.
	corners := []struct {
		cx, cy, start float64
	}{
		{center.X + hw - r, center.Y - hh + r, -math.Pi / 2},
		{center.X + hw - r, center.Y + hh - r, 0},
		{center.X - hw + r, center.Y + hh - r, math.Pi / 2},
		{center.X - hw + r, center.Y - hh + r, math.Pi},
	}
	for _, c := range corners {
		for i := 0; i <= cornerSegs; i++ {
			a := c.start + (math.Pi/2)*float64(i)/float64(cornerSegs)
			pts = append(pts, geo.Pt(c.cx+r*math.Cos(a), c.cy+r*math.Sin(a)))
		}
	}
	return geo.Polygon{Vertices: pts}
}

// OrganicPolygon builds an irregular blob of n vertices around center. Each
// vertex radius is drawn from radius*(1±variance), so variance 0 yields a
// regular polygon.
func OrganicPolygon(center geo.Point, radius float64, n int, variance float64, r *rng.Source) geo.Polygon {
	if n < 3 || radius <= 0 {
		return geo.Polygon{}
	}
	pts := make([]geo.Point, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		rad := radius * r.Range(1-variance, 1+variance)
		pts[i] = geo.Pt(
			center.X+rad*math.Cos(angle),
			center.Y+rad*math.Sin(angle),
		)
	}
	return geo.Polygon{Vertices: pts}
}
