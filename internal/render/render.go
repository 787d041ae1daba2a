// Package render paints a top-down debug PNG of a city model. It exists
// for the CLI and for eyeballing generator output; the production renderer
// lives outside this module.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/geo"
)

// Scheme defines the colors used for each feature kind.
type Scheme struct {
	Background  color.Color
	Water       color.Color
	Beach       color.Color
	Bridge      color.Color
	Interchange color.Color
	POI         color.Color
	Roads       map[city.RoadClass]color.Color
	Districts   map[city.DistrictType]color.Color
}

// DefaultScheme returns a reasonable default palette.
func DefaultScheme() *Scheme {
	return &Scheme{
		Background:  colornames.Whitesmoke,
		Water:       colornames.Steelblue,
		Beach:       colornames.Wheat,
		Bridge:      colornames.Darkgray,
		Interchange: colornames.Crimson,
		POI:         colornames.Darkorange,
		Roads: map[city.RoadClass]color.Color{
			city.ClassTrail:     colornames.Tan,
			city.ClassLocal:     colornames.Silver,
			city.ClassCollector: colornames.Gray,
			city.ClassArterial:  colornames.Dimgray,
			city.ClassHighway:   colornames.Black,
		},
		Districts: map[city.DistrictType]color.Color{
			city.TypeDowntown:    colornames.Lightsteelblue,
			city.TypeMixedUse:    colornames.Thistle,
			city.TypeCommercial:  colornames.Mistyrose,
			city.TypeResidential: colornames.Honeydew,
			city.TypeIndustrial:  colornames.Gainsboro,
			city.TypePark:        colornames.Lightgreen,
			city.TypeAirport:     colornames.Lavender,
		},
	}
}

const pad = 20 // pixels around the drawn extent

// Image paints the model at the given pixel-per-unit scale.
func Image(m city.Model, scheme *Scheme, scale float64) image.Image {
	if scheme == nil {
		scheme = DefaultScheme()
	}
	if scale <= 0 {
		scale = 2
	}

	min, max := modelBounds(m)
	w := int((max.X-min.X)*scale) + 2*pad
	h := int((max.Y-min.Y)*scale) + 2*pad
	ctx := gg.NewContext(w, h)
	ctx.SetColor(scheme.Background)
	ctx.Clear()

	px := func(p geo.Point) (float64, float64) {
		return (p.X-min.X)*scale + pad, (p.Y-min.Y)*scale + pad
	}

	for _, b := range m.Terrain.Beaches {
		fillPolygon(ctx, b.Polygon, scheme.Beach, px)
	}
	for _, wf := range m.Terrain.Water {
		fillPolygon(ctx, wf.Polygon, scheme.Water, px)
	}
	for _, r := range m.Terrain.Rivers {
		strokeLine(ctx, r.Centerline.Points, scheme.Water, math.Max(1, r.Width*scale), px)
	}

	for _, d := range m.Districts {
		fill, ok := scheme.Districts[d.Type]
		if !ok {
			fill = colornames.Gainsboro
		}
		fillPolygon(ctx, d.Polygon, fill, px)
		for _, pond := range d.Ponds {
			fillPolygon(ctx, pond, scheme.Water, px)
		}
	}

	for _, r := range m.Roads {
		col, ok := scheme.Roads[r.Class]
		if !ok {
			col = colornames.Silver
		}
		width := math.Max(1, r.Class.DefaultWidth()*10*scale)
		strokeLine(ctx, r.Line.Points, col, width, px)
	}

	ctx.SetDash(4, 4)
	for _, b := range m.Bridges {
		strokeLine(ctx, []geo.Point{b.Start, b.End}, scheme.Bridge, math.Max(2, 4*scale), px)
	}
	ctx.SetDash()

	for _, ic := range m.Interchanges {
		x, y := px(ic.Position)
		ctx.SetColor(scheme.Interchange)
		ctx.DrawCircle(x, y, math.Max(3, 3*scale))
		ctx.Stroke()
	}

	for _, p := range m.POIs {
		x, y := px(p.Position)
		ctx.SetColor(scheme.POI)
		ctx.DrawCircle(x, y, math.Max(2, 2*scale))
		ctx.Fill()
	}

	return ctx.Image()
}

// SavePNG paints the model and writes it to path.
func SavePNG(path string, m city.Model, scheme *Scheme, scale float64) error {
	img := Image(m, scheme, scale)
	ctx := gg.NewContextForImage(img)
	return ctx.SavePNG(path)
}

func fillPolygon(ctx *gg.Context, poly geo.Polygon, col color.Color, px func(geo.Point) (float64, float64)) {
	if poly.Len() < 3 {
		return
	}
	ctx.SetColor(col)
	for i, v := range poly.Vertices {
		x, y := px(v)
		if i == 0 {
			ctx.MoveTo(x, y)
		} else {
			ctx.LineTo(x, y)
		}
	}
	ctx.ClosePath()
	ctx.Fill()
}

func strokeLine(ctx *gg.Context, pts []geo.Point, col color.Color, width float64, px func(geo.Point) (float64, float64)) {
	if len(pts) < 2 {
		return
	}
	ctx.SetColor(col)
	ctx.SetLineWidth(width)
	for i, p := range pts {
		x, y := px(p)
		if i == 0 {
			ctx.MoveTo(x, y)
		} else {
			ctx.LineTo(x, y)
		}
	}
	ctx.Stroke()
}

// modelBounds covers every feature, with a fallback square for empty
// models.
func modelBounds(m city.Model) (geo.Point, geo.Point) {
	min := geo.Pt(math.Inf(1), math.Inf(1))
	max := geo.Pt(math.Inf(-1), math.Inf(-1))
	grow := func(p geo.Point) {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	for _, d := range m.Districts {
		for _, v := range d.Polygon.Vertices {
			grow(v)
		}
	}
	for _, r := range m.Roads {
		for _, p := range r.Line.Points {
			grow(p)
		}
	}
	for _, w := range m.Terrain.Water {
		for _, v := range w.Polygon.Vertices {
			grow(v)
		}
	}
	for _, r := range m.Terrain.Rivers {
		for _, p := range r.Centerline.Points {
			grow(p)
		}
	}
	for _, b := range m.Terrain.Beaches {
		for _, v := range b.Polygon.Vertices {
			grow(v)
		}
	}
	for _, p := range m.POIs {
		grow(p.Position)
	}
	if math.IsInf(min.X, 1) {
		return geo.Pt(0, 0), geo.Pt(100, 100)
	}
	return min, max
}
