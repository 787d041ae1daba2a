package routing

import (
	"fmt"
	"sort"

	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/config"
	"github.com/kdenny/city-doodle-sub000/pkg/geo"
	"github.com/kdenny/city-doodle-sub000/pkg/validation"
)

// StitchDistricts joins the collector grids of two neighboring districts
// with short connectors. Only collectors are bridged: local streets
// intentionally dead-end at the boundary, since two independently rotated
// grids never line up and forcing every street across reads as clutter.
func StitchDistricts(a, b city.District, roads []city.Road, cfg config.StitchConfig, ids *city.IDSource) ([]city.Road, *validation.Report) {
	report := validation.NewReport()
	cfg = config.ResolveStitch(cfg)

	if !Adjacent(a.Polygon, b.Polygon, cfg.AdjacencyThreshold) {
		return nil, report
	}

	endpointsA := collectorEndpoints(roads, a.ID)
	endpointsB := collectorEndpoints(roads, b.ID)
	if len(endpointsA) == 0 || len(endpointsB) == 0 {
		return nil, report
	}

	type pair struct {
		a, b geo.Point
		ka   string
		kb   string
		dist float64
	}
	var pairs []pair
	for ka, pa := range endpointsA {
		for kb, pb := range endpointsB {
			d := pa.Distance(pb)
			if d <= cfg.MaxEndpointDistance {
				pairs = append(pairs, pair{a: pa, b: pb, ka: ka, kb: kb, dist: d})
			}
		}
	}
	// Closest pairs first; map iteration order must not leak into output.
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].dist != pairs[j].dist {
			return pairs[i].dist < pairs[j].dist
		}
		if pairs[i].ka != pairs[j].ka {
			return pairs[i].ka < pairs[j].ka
		}
		return pairs[i].kb < pairs[j].kb
	})

	usedA := map[string]bool{}
	usedB := map[string]bool{}
	var connectors []city.Road
	for _, p := range pairs {
		if len(connectors) >= cfg.MaxLinksPerPair {
			break
		}
		if usedA[p.ka] || usedB[p.kb] {
			continue
		}
		usedA[p.ka] = true
		usedB[p.kb] = true
		connectors = append(connectors, city.Road{
			ID:    ids.Nextf("road", "stitch"),
			Class: city.ClassCollector,
			Line: geo.Polyline{
				Points: []geo.Point{p.a, p.b},
				Width:  city.ClassCollector.DefaultWidth(),
			},
		})
	}

	if len(connectors) > 0 {
		report.Infof(validation.LevelNetwork,
			"stitched %s and %s with %d collector connectors", a.ID, b.ID, len(connectors))
	}
	return connectors, report
}

// Adjacent reports whether two polygons come within threshold of each
// other, measured vertex to vertex.
func Adjacent(a, b geo.Polygon, threshold float64) bool {
	for _, va := range a.Vertices {
		for _, vb := range b.Vertices {
			if va.Distance(vb) <= threshold {
				return true
			}
		}
	}
	return false
}

// collectorEndpoints gathers the endpoints of a district's collector roads,
// deduplicated on a 2-decimal rounding key so grid lines meeting at a
// corner contribute one endpoint.
func collectorEndpoints(roads []city.Road, districtID string) map[string]geo.Point {
	out := make(map[string]geo.Point)
	for _, r := range roads {
		if r.DistrictID != districtID || r.Class != city.ClassCollector {
			continue
		}
		if len(r.Line.Points) < 2 {
			continue
		}
		for _, pt := range []geo.Point{r.Start(), r.End()} {
			key := fmt.Sprintf("%.2f,%.2f", pt.X, pt.Y)
			if _, seen := out[key]; !seen {
				out[key] = pt
			}
		}
	}
	return out
}
