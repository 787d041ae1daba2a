package layout

import (
	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/config"
	"github.com/kdenny/city-doodle-sub000/pkg/geo"
	"github.com/kdenny/city-doodle-sub000/pkg/rng"
	"github.com/kdenny/city-doodle-sub000/pkg/validation"
)

// ParkSize selects the park footprint preset.
type ParkSize string

const (
	ParkPocket       ParkSize = "pocket"
	ParkNeighborhood ParkSize = "neighborhood"
	ParkCommunity    ParkSize = "community"
	ParkRegional     ParkSize = "regional"
	ParkCity         ParkSize = "city"
)

// sizeFactor scales the resolved district size range per preset.
func (s ParkSize) sizeFactor() float64 {
	switch s {
	case ParkPocket:
		return 0.25
	case ParkNeighborhood:
		return 0.5
	case ParkCommunity:
		return 0.8
	case ParkRegional:
		return 1.1
	case ParkCity:
		return 1.4
	}
	return 0.5
}

// hasTrails reports whether the preset is large enough for internal trails.
func (s ParkSize) hasTrails() bool {
	switch s {
	case ParkCommunity, ParkRegional, ParkCity:
		return true
	}
	return false
}

// ParkResult is a generated park with its trails, ponds, and optional
// connection to the existing road network.
type ParkResult struct {
	District        city.District
	Paths           []city.Road
	ConnectionPoint *geo.Point
}

// GeneratePark builds an organic park footprint at pos. Larger presets get
// curved internal trails; higher feature density can add ponds; and if an
// existing road passes within searchRadius, a short local connector road is
// appended.
func GeneratePark(pos geo.Point, size ParkSize, featureDensity float64, existingRoads []city.Road, cfg config.DistrictGenerationConfig, searchRadius float64, ids *city.IDSource) (ParkResult, *validation.Report) {
	report := validation.NewReport()
	resolved := config.ResolveDistrict(cfg, city.TypePark)
	if searchRadius <= 0 {
		searchRadius = 50
	}

	seed := resolved.Seed
	if seed == 0 {
		seed = rng.PositionSeed(pos.X, pos.Y)
	}
	r := rng.New(seed)

	radius := r.Range(resolved.MinSize, resolved.MaxSize) * size.sizeFactor()
	// Parks read as natural shapes: higher radial variance than districts.
	variance := resolved.OrganicFactor * 1.6
	if variance > 0.45 {
		variance = 0.45
	}
	poly := OrganicPolygon(pos, radius, resolved.PolygonPoints+2, variance, r)
	if poly.IsEmpty() {
		report.AddError(validation.Result{
			Level:   validation.LevelGeometry,
			Message: "park footprint degenerate",
		})
		return ParkResult{}, report
	}

	park := city.District{
		ID:      ids.Next("park"),
		Type:    city.TypePark,
		Name:    rng.Pick(r.Fork("name"), districtNames[city.TypePark]),
		Polygon: poly,
	}

	result := ParkResult{District: park}

	if size.hasTrails() {
		trailRng := r.Fork("trails")
		nTrails := trailRng.IntRange(1, 4)
		for i := 0; i < nTrails; i++ {
			if trail := generateTrail(poly, radius, trailRng, ids, park.ID); trail != nil {
				result.Paths = append(result.Paths, *trail)
			}
		}
	}

	if featureDensity >= 0.6 {
		pondRng := r.Fork("ponds")
		if pondRng.Chance(0.5) {
			nPonds := pondRng.IntRange(1, 3)
			for i := 0; i < nPonds; i++ {
				if pond, ok := generatePond(poly, pos, radius, pondRng); ok {
					park.Ponds = append(park.Ponds, pond)
				}
			}
			result.District = park
		}
	}

	// Connect to the nearest existing road within the search radius.
	if conn := nearestRoadPoint(pos, existingRoads, searchRadius); conn != nil {
		boundary, _ := nearestBoundaryPoint(poly, *conn)
		connector := city.Road{
			ID:         ids.Nextf("road", "connection"),
			Class:      city.ClassLocal,
			DistrictID: park.ID,
			Line: geo.Polyline{
				Points: []geo.Point{boundary, *conn},
				Width:  city.ClassLocal.DefaultWidth(),
			},
		}
		result.Paths = append(result.Paths, connector)
		result.ConnectionPoint = conn
	} else {
		report.Warnf(validation.LevelNetwork,
			"park %s: no road within %.0f units, left unconnected", park.ID, searchRadius)
	}

	return result, report
}

// generateTrail lays a curved trail through randomly offset waypoints,
// keeping only the sampled points that fall inside the park.
func generateTrail(poly geo.Polygon, radius float64, r *rng.Source, ids *city.IDSource, parkID string) *city.Road {
	centroid := poly.Centroid()
	nWaypoints := r.IntRange(3, 6)
	waypoints := make([]geo.Point, 0, nWaypoints)
	for i := 0; i < nWaypoints; i++ {
		offset := geo.Pt(r.Range(-radius, radius), r.Range(-radius, radius)).Scale(0.8)
		waypoints = append(waypoints, centroid.Add(offset))
	}

	spline := geo.CatmullRomSpline(waypoints, 6, 0.5)
	inside := make([]geo.Point, 0, len(spline.Points))
	for _, pt := range spline.Points {
		if poly.Contains(pt) {
			inside = append(inside, pt)
		}
	}
	if len(inside) < 2 {
		return nil
	}
	return &city.Road{
		ID:         ids.Next("trail"),
		Class:      city.ClassTrail,
		DistrictID: parkID,
		Line: geo.Polyline{
			Points: inside,
			Width:  city.ClassTrail.DefaultWidth(),
		},
	}
}

// generatePond tries a few placements for a small organic pond fully inside
// the park polygon.
func generatePond(poly geo.Polygon, center geo.Point, radius float64, r *rng.Source) (geo.Polygon, bool) {
	for attempt := 0; attempt < 4; attempt++ {
		pondCenter := center.Add(geo.Pt(
			r.Range(-radius, radius)*0.5,
			r.Range(-radius, radius)*0.5,
		))
		pond := OrganicPolygon(pondCenter, radius*r.Range(0.1, 0.2), 8, 0.25, r)
		if pond.IsEmpty() {
			continue
		}
		allInside := true
		for _, v := range pond.Vertices {
			if !poly.Contains(v) {
				allInside = false
				break
			}
		}
		if allInside {
			return pond, true
		}
	}
	return geo.Polygon{}, false
}

// nearestRoadPoint returns the closest point on any existing road within
// maxDist of pos, or nil when nothing qualifies.
func nearestRoadPoint(pos geo.Point, roads []city.Road, maxDist float64) *geo.Point {
	var best *geo.Point
	bestDist := maxDist
	for _, road := range roads {
		pt, d := road.Line.NearestPoint(pos)
		if d <= bestDist {
			p := pt
			best = &p
			bestDist = d
		}
	}
	return best
}

// nearestBoundaryPoint returns the closest point on the polygon boundary
// to target.
func nearestBoundaryPoint(poly geo.Polygon, target geo.Point) (geo.Point, float64) {
	best := poly.Vertices[0]
	bestDist := target.Distance(best)
	for i := 0; i < poly.Len(); i++ {
		a, b := poly.Edge(i)
		pt, d := geo.NearestPointOnSegment(target, a, b)
		if d < bestDist {
			best = pt
			bestDist = d
		}
	}
	return best, bestDist
}
