// Package routing links generated features into one road network:
// inter-district connections with water avoidance and highway-style naming,
// arterial adjacency enforcement for demanding POIs, cross-boundary
// collector stitching, and station access roads.
package routing

import (
	"fmt"
	"math"
	"sort"

	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/config"
	"github.com/kdenny/city-doodle-sub000/pkg/geo"
	"github.com/kdenny/city-doodle-sub000/pkg/terrain"
	"github.com/kdenny/city-doodle-sub000/pkg/validation"
)

// ConnectResult is the generated connection set plus the route-number
// counter after the call. The counter is threaded explicitly: callers pass
// zero at the start of each generation call, keeping numbering
// deterministic across repeated invocations.
type ConnectResult struct {
	Roads       []city.Road
	NextCounter int
}

// ConnectDistrict links a newly placed district into the existing set. The
// nearest neighbor link is mandatory; up to MaxExtraLinks more districts
// are connected within the distance cap, prioritized downtown > commercial
// > density-weighted residential, skipping candidates that sit close to an
// already-connected district. Highways are never drawn between district
// pairs by class rules; only links at Interstate length are promoted.
func ConnectDistrict(newDistrict city.District, existing []city.District, terr terrain.TerrainData, cfg config.ConnectConfig, ids *city.IDSource, counter int) (ConnectResult, *validation.Report) {
	report := validation.NewReport()
	cfg = config.ResolveConnect(cfg)
	result := ConnectResult{NextCounter: counter}

	if len(existing) == 0 {
		report.Infof(validation.LevelNetwork, "district %s: first placement, nothing to connect", newDistrict.ID)
		return result, report
	}

	from := newDistrict.Polygon.Centroid()

	type candidate struct {
		district city.District
		center   geo.Point
		dist     float64
	}
	cands := make([]candidate, 0, len(existing))
	for _, d := range existing {
		c := d.Polygon.Centroid()
		cands = append(cands, candidate{district: d, center: c, dist: from.Distance(c)})
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

	// Mandatory nearest link.
	nearest := cands[0]
	road, next := buildLink(newDistrict, nearest.district, from, nearest.center, terr, cfg, ids, result.NextCounter)
	result.Roads = append(result.Roads, road)
	result.NextCounter = next
	connected := []geo.Point{nearest.center}

	// Optional extras by priority within the distance cap.
	extras := cands[1:]
	sort.SliceStable(extras, func(i, j int) bool {
		pi, pj := connectionPriority(extras[i].district), connectionPriority(extras[j].district)
		if pi != pj {
			return pi > pj
		}
		return extras[i].dist < extras[j].dist
	})

	linked := 0
	for _, c := range extras {
		if linked >= cfg.MaxExtraLinks {
			break
		}
		if c.dist > cfg.MaxLinkDistance {
			continue
		}
		// A candidate already near a connected district would produce a
		// near-parallel redundant link.
		if redundant(c.center, connected, c.dist) {
			continue
		}
		road, next := buildLink(newDistrict, c.district, from, c.center, terr, cfg, ids, result.NextCounter)
		result.Roads = append(result.Roads, road)
		result.NextCounter = next
		connected = append(connected, c.center)
		linked++
	}

	report.Infof(validation.LevelNetwork, "district %s: %d connections", newDistrict.ID, len(result.Roads))
	return result, report
}

// redundant reports whether the candidate center lies closer to an
// already-connected district than half its own link distance.
func redundant(center geo.Point, connected []geo.Point, ownDist float64) bool {
	for _, c := range connected {
		if center.Distance(c) < ownDist/2 {
			return true
		}
	}
	return false
}

// connectionPriority ranks districts for optional links.
func connectionPriority(d city.District) float64 {
	switch d.Type {
	case city.TypeDowntown:
		return 3
	case city.TypeCommercial:
		return 2
	case city.TypeResidential:
		return 1 + d.Density()
	default:
		return 1
	}
}

// buildLink routes one connection, classifies it, and names it.
func buildLink(a, b city.District, from, to geo.Point, terr terrain.TerrainData, cfg config.ConnectConfig, ids *city.IDSource, counter int) (city.Road, int) {
	points := routeAroundWater(from, to, terr)
	line := geo.Polyline{Points: points}
	length := line.Length()

	class := city.ClassCollector
	if city.IsMajor(a.Type) || city.IsMajor(b.Type) {
		class = city.ClassArterial
	}
	if length >= cfg.InterstateLength {
		class = city.ClassHighway
	}
	line.Width = class.DefaultWidth()

	name, counter := routeName(length, to.Sub(from), cfg, counter)

	return city.Road{
		ID:    ids.Next("road"),
		Name:  name,
		Class: class,
		Line:  line,
	}, counter
}

// routeName names a connection following the real-world convention:
// Interstate style for long links, US route for medium, state route for
// short, with odd numbers for predominantly north/south bearings and even
// for east/west.
func routeName(length float64, bearing geo.Point, cfg config.ConnectConfig, counter int) (string, int) {
	counter++
	northSouth := math.Abs(bearing.Y) > math.Abs(bearing.X)
	num := counter * 2
	if northSouth {
		num = counter*2 - 1
	}
	switch {
	case length >= cfg.InterstateLength:
		return fmt.Sprintf("I-%d", num), counter
	case length >= cfg.USRouteLength:
		return fmt.Sprintf("US-%d", num), counter
	default:
		return fmt.Sprintf("SR %d", num), counter
	}
}

// routeAroundWater returns the route points from a to b. If the direct
// segment crosses a water polygon, a single perpendicular waypoint offset
// by 60% of that feature's bounding diagonal is tried on either side; the
// first side whose both sub-segments clear the water wins. When neither
// clears, the direct crossing is kept for the bridge pass to resolve.
func routeAroundWater(a, b geo.Point, terr terrain.TerrainData) []geo.Point {
	direct := []geo.Point{a, b}

	var blocking *terrain.WaterFeature
	for i := range terr.Water {
		w := &terr.Water[i]
		if w.Polygon.IntersectsSegment(a, b) || w.Polygon.Contains(geo.MidPoint(a, b)) {
			blocking = w
			break
		}
	}
	if blocking == nil {
		return direct
	}

	minP, maxP := blocking.Polygon.BoundingBox()
	offset := 0.6 * minP.Distance(maxP)
	mid := geo.MidPoint(a, b)
	perp := b.Sub(a).Normalize().Perp()

	for _, sign := range []float64{1, -1} {
		wp := mid.Add(perp.Scale(sign * offset))
		if !terr.SegmentCrossesWater(a, wp) && !terr.SegmentCrossesWater(wp, b) {
			return []geo.Point{a, wp, b}
		}
	}
	return direct
}
