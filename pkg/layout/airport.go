package layout

import (
	"math"
	"sort"

	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/config"
	"github.com/kdenny/city-doodle-sub000/pkg/geo"
	"github.com/kdenny/city-doodle-sub000/pkg/rng"
	"github.com/kdenny/city-doodle-sub000/pkg/validation"
)

// AirportResult is a generated airport footprint with its runways, taxiways,
// and arterial access roads.
type AirportResult struct {
	District    city.District
	Runways     []city.Road
	Taxiways    []city.Road
	AccessRoads []city.Road
}

// GenerateAirport builds a large airport footprint at pos with 1–3 parallel
// near-horizontal runways, a taxiway per runway leading toward the terminal
// area, and up to 2 arterial access roads that prefer connecting to
// existing arterial or highway segments over plain proximity.
func GenerateAirport(pos geo.Point, existingRoads []city.Road, cfg config.DistrictGenerationConfig, ids *city.IDSource) (AirportResult, *validation.Report) {
	report := validation.NewReport()
	resolved := config.ResolveDistrict(cfg, city.TypeAirport)

	seed := resolved.Seed
	if seed == 0 {
		seed = rng.PositionSeed(pos.X, pos.Y)
	}
	r := rng.New(seed)

	size := r.Range(resolved.MinSize, resolved.MaxSize)
	// Airports are broad and squarish: a low-variance organic footprint
	// wider than tall.
	poly := OrganicPolygon(pos, size, resolved.PolygonPoints, 0.12, r)
	if poly.IsEmpty() {
		report.AddError(validation.Result{
			Level:   validation.LevelGeometry,
			Message: "airport footprint degenerate",
		})
		return AirportResult{}, report
	}

	airport := city.District{
		ID:      ids.Next("airport"),
		Type:    city.TypeAirport,
		Name:    rng.Pick(r.Fork("name"), districtNames[city.TypeAirport]),
		Polygon: poly,
	}
	result := AirportResult{District: airport}

	// Runways: parallel, near-horizontal, rendered at highway weight.
	runwayAngle := r.Range(-8, 8) * math.Pi / 180
	dir := geo.Pt(math.Cos(runwayAngle), math.Sin(runwayAngle))
	perp := dir.Perp()
	halfLen := size * 0.7
	nRunways := r.IntRange(1, 4)
	runwayGap := size * 0.35

	for i := 0; i < nRunways; i++ {
		offset := (float64(i) - float64(nRunways-1)/2) * runwayGap
		center := pos.Add(perp.Scale(offset))
		start := center.Sub(dir.Scale(halfLen))
		end := center.Add(dir.Scale(halfLen))

		result.Runways = append(result.Runways, city.Road{
			ID:         ids.Nextf("road", "runway"),
			Class:      city.ClassHighway,
			DistrictID: airport.ID,
			Line: geo.Polyline{
				Points: []geo.Point{start, end},
				Width:  city.ClassHighway.DefaultWidth(),
			},
		})

		// Taxiway: from the runway midpoint toward the terminal area at
		// the footprint centroid.
		mid := geo.MidPoint(start, end)
		toward := poly.Centroid().Sub(mid)
		if toward.Length() > 1e-9 {
			taxiEnd := mid.Add(toward.Scale(0.6))
			result.Taxiways = append(result.Taxiways, city.Road{
				ID:         ids.Nextf("road", "taxiway"),
				Class:      city.ClassLocal,
				DistrictID: airport.ID,
				Line: geo.Polyline{
					Points: []geo.Point{mid, taxiEnd},
					Width:  city.ClassLocal.DefaultWidth(),
				},
			})
		}
	}

	// Access roads: up to 2 arterials out of the footprint, preferring
	// existing arterial/highway targets.
	targets := accessTargets(pos, existingRoads, size*4)
	for i, target := range targets {
		if i >= 2 {
			break
		}
		boundary, _ := nearestBoundaryPoint(poly, target)
		result.AccessRoads = append(result.AccessRoads, city.Road{
			ID:         ids.Nextf("road", "access"),
			Class:      city.ClassArterial,
			DistrictID: airport.ID,
			Line: geo.Polyline{
				Points: []geo.Point{boundary, target},
				Width:  city.ClassArterial.DefaultWidth(),
			},
		})
	}
	if len(result.AccessRoads) == 0 && len(existingRoads) > 0 {
		report.Warnf(validation.LevelNetwork,
			"airport %s: no reachable road for access connection", airport.ID)
	}

	return result, report
}

// accessTargets returns candidate connection points sorted by preference:
// arterial/highway roads first (nearest first), then other roads.
func accessTargets(pos geo.Point, roads []city.Road, maxDist float64) []geo.Point {
	type candidate struct {
		pt    geo.Point
		dist  float64
		major bool
	}
	var cands []candidate
	for _, road := range roads {
		pt, d := road.Line.NearestPoint(pos)
		if d > maxDist {
			continue
		}
		cands = append(cands, candidate{
			pt:    pt,
			dist:  d,
			major: road.Class.AtLeast(city.ClassArterial),
		})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].major != cands[j].major {
			return cands[i].major
		}
		return cands[i].dist < cands[j].dist
	})
	out := make([]geo.Point, len(cands))
	for i, c := range cands {
		out[i] = c.pt
	}
	return out
}
