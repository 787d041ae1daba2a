package layout

import (
	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/config"
	"github.com/kdenny/city-doodle-sub000/pkg/geo"
	"github.com/kdenny/city-doodle-sub000/pkg/rng"
	"github.com/kdenny/city-doodle-sub000/pkg/validation"
)

// District name fragments, drawn per type for flavor.
var districtNames = map[city.DistrictType][]string{
	city.TypeDowntown:    {"Downtown", "City Center", "The Loop", "Civic Core"},
	city.TypeMixedUse:    {"Midtown", "Old Market", "The Wharf", "Uptown"},
	city.TypeCommercial:  {"Commerce Park", "Market District", "Exchange Quarter", "Trade Row"},
	city.TypeResidential: {"Oakwood", "Riverside", "Maple Heights", "Lakeview", "Fairfield"},
	city.TypeIndustrial:  {"Ironworks", "Millyard", "Foundry District", "Port Lands"},
	city.TypePark:        {"Greenway", "Commons", "Meadowbrook", "Willow Park"},
	city.TypeAirport:     {"Municipal Airport", "Regional Airfield", "International Airport"},
}

// DistrictResult is a generated district and its internal road grid.
type DistrictResult struct {
	District city.District
	Roads    []city.Road
}

// GenerateDistrict builds a district footprint at pos and fills it with a
// street grid when the type calls for one. The seed comes from the config
// or, by default, from the position, so placing at the same spot always
// regenerates the same district.
func GenerateDistrict(pos geo.Point, dtype city.DistrictType, cfg config.DistrictGenerationConfig, ids *city.IDSource) (DistrictResult, *validation.Report) {
	report := validation.NewReport()
	resolved := config.ResolveDistrict(cfg, dtype)
	spec := city.SpecFor(dtype)

	seed := resolved.Seed
	if seed == 0 {
		seed = rng.PositionSeed(pos.X, pos.Y)
	}
	r := rng.New(seed)

	size := r.Range(resolved.MinSize, resolved.MaxSize)

	var poly geo.Polygon
	switch spec.Shape {
	case city.ShapeRoundedRect:
		w := size * 2 * r.Range(0.9, 1.1)
		h := size * 2 * r.Range(0.8, 1.0)
		poly = RoundedRect(pos, w, h, 0.15)
	default:
		poly = OrganicPolygon(pos, size, resolved.PolygonPoints, resolved.OrganicFactor, r)
	}
	if poly.IsEmpty() {
		report.AddError(validation.Result{
			Level:   validation.LevelGeometry,
			Message: "district footprint degenerate",
		})
		return DistrictResult{}, report
	}

	d := city.District{
		ID:      ids.Next("district"),
		Type:    dtype,
		Name:    rng.Pick(r.Fork("name"), districtNames[dtype]),
		Polygon: poly,
	}

	var roads []city.Road
	if spec.Grid && resolved.StreetSpacing > 0 {
		grid := GenerateStreetGrid(poly, resolved.StreetSpacing, r, ids, GridOptions{
			DistrictID:   d.ID,
			DistrictType: dtype,
		})
		roads = grid.Roads
		d.GridAngle = grid.Angle
		report.Infof(validation.LevelGeometry,
			"district %s: %d grid roads at spacing %.2f", d.ID, len(roads), resolved.StreetSpacing)
	}

	return DistrictResult{District: d, Roads: roads}, report
}
