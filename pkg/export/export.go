// Package export assembles the plain-data output contract handed to the
// rendering layer, plus a GeoJSON view for external tools.
package export

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/geo"
)

// Snapshot is the serializable output contract: plain arrays plus the
// waterfront tag map, no behavior attached. Suitable for crossing a
// process boundary.
type Snapshot struct {
	Districts    []city.District                `json:"districts"`
	Roads        []city.Road                    `json:"roads"`
	POIs         []city.POI                     `json:"pois"`
	Bridges      []city.Bridge                  `json:"bridges"`
	Interchanges []city.Interchange             `json:"interchanges"`
	Waterfront   map[string]city.WaterfrontType `json:"waterfront"`
}

// Build assembles a snapshot from a model. Slices are copied so later
// engine calls cannot alias the snapshot.
func Build(m city.Model) Snapshot {
	clone := m.Clone()
	return Snapshot{
		Districts:    clone.Districts,
		Roads:        clone.Roads,
		POIs:         clone.POIs,
		Bridges:      clone.Bridges,
		Interchanges: clone.Interchanges,
		Waterfront:   clone.Waterfront,
	}
}

// FeatureCollection renders the model as GeoJSON: roads and bridges as
// LineStrings, districts and water as Polygons, POIs and interchanges as
// Points. Waterfront tags are merged onto the road properties.
func FeatureCollection(m city.Model) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, d := range m.Districts {
		f := geojson.NewFeature(orb.Polygon{ring(d.Polygon)})
		f.Properties["feature"] = "district"
		f.Properties["id"] = d.ID
		f.Properties["type"] = string(d.Type)
		if d.Name != "" {
			f.Properties["name"] = d.Name
		}
		fc.Append(f)
	}

	for _, r := range m.Roads {
		f := geojson.NewFeature(lineString(r.Line))
		f.Properties["feature"] = "road"
		f.Properties["id"] = r.ID
		f.Properties["class"] = string(r.Class)
		if r.Name != "" {
			f.Properties["name"] = r.Name
		}
		if r.DistrictID != "" {
			f.Properties["district"] = r.DistrictID
		}
		if tag, ok := m.Waterfront[r.ID]; ok {
			f.Properties["waterfront"] = string(tag)
		}
		fc.Append(f)
	}

	for _, p := range m.POIs {
		f := geojson.NewFeature(orb.Point{p.Position.X, p.Position.Y})
		f.Properties["feature"] = "poi"
		f.Properties["id"] = p.ID
		f.Properties["type"] = string(p.Type)
		if p.Name != "" {
			f.Properties["name"] = p.Name
		}
		fc.Append(f)
	}

	for _, b := range m.Bridges {
		f := geojson.NewFeature(orb.LineString{
			{b.Start.X, b.Start.Y},
			{b.End.X, b.End.Y},
		})
		f.Properties["feature"] = "bridge"
		f.Properties["id"] = b.ID
		f.Properties["road"] = b.RoadID
		f.Properties["water"] = b.WaterFeatureID
		f.Properties["length"] = b.Length
		fc.Append(f)
	}

	for _, ic := range m.Interchanges {
		f := geojson.NewFeature(orb.Point{ic.Position.X, ic.Position.Y})
		f.Properties["feature"] = "interchange"
		f.Properties["id"] = ic.ID
		f.Properties["type"] = string(ic.Type)
		f.Properties["highway"] = ic.HighwayID
		f.Properties["road"] = ic.ConnectedRoadID
		fc.Append(f)
	}

	for _, w := range m.Terrain.Water {
		f := geojson.NewFeature(orb.Polygon{ring(w.Polygon)})
		f.Properties["feature"] = "water"
		f.Properties["id"] = w.ID
		fc.Append(f)
	}
	for _, r := range m.Terrain.Rivers {
		f := geojson.NewFeature(lineString(r.Centerline))
		f.Properties["feature"] = "river"
		f.Properties["id"] = r.ID
		f.Properties["width"] = r.Width
		fc.Append(f)
	}
	for _, b := range m.Terrain.Beaches {
		f := geojson.NewFeature(orb.Polygon{ring(b.Polygon)})
		f.Properties["feature"] = "beach"
		f.Properties["id"] = b.ID
		fc.Append(f)
	}

	return fc
}

func lineString(pl geo.Polyline) orb.LineString {
	ls := make(orb.LineString, 0, len(pl.Points))
	for _, p := range pl.Points {
		ls = append(ls, orb.Point{p.X, p.Y})
	}
	return ls
}

// ring closes the polygon: GeoJSON rings repeat the first coordinate.
func ring(p geo.Polygon) orb.Ring {
	r := make(orb.Ring, 0, len(p.Vertices)+1)
	for _, v := range p.Vertices {
		r = append(r, orb.Point{v.X, v.Y})
	}
	if len(r) > 0 {
		r = append(r, r[0])
	}
	return r
}
