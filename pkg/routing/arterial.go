package routing

import (
	"sort"

	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/config"
	"github.com/kdenny/city-doodle-sub000/pkg/geo"
	"github.com/kdenny/city-doodle-sub000/pkg/validation"
)

// EnforceArterialAdjacency makes sure a demanding POI (hospital,
// university, large shopping) sits within the arterial radius of an
// arterial-or-better road. When it does not, arterial connectors are drawn
// to up to 3 nearby districts, chosen by distance with downtown breaking
// ties upward.
func EnforceArterialAdjacency(poi city.POI, districts []city.District, roads []city.Road, cfg config.ConnectConfig, ids *city.IDSource) ([]city.Road, *validation.Report) {
	report := validation.NewReport()
	cfg = config.ResolveConnect(cfg)

	if !poi.RequiresArterial() {
		return nil, report
	}
	if nearArterial(poi.Position, roads, cfg.ArterialRadius) {
		return nil, report
	}

	type candidate struct {
		center geo.Point
		dist   float64
		prio   float64
	}
	var cands []candidate
	for _, d := range districts {
		c := d.Polygon.Centroid()
		cands = append(cands, candidate{
			center: c,
			dist:   poi.Position.Distance(c),
			prio:   connectionPriority(d),
		})
	}
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].dist != cands[j].dist {
			return cands[i].dist < cands[j].dist
		}
		return cands[i].prio > cands[j].prio
	})

	var connectors []city.Road
	for i, c := range cands {
		if i >= 3 {
			break
		}
		connectors = append(connectors, city.Road{
			ID:    ids.Next("road"),
			Class: city.ClassArterial,
			Line: geo.Polyline{
				Points: []geo.Point{poi.Position, c.center},
				Width:  city.ClassArterial.DefaultWidth(),
			},
		})
	}

	if len(connectors) == 0 {
		report.Warnf(validation.LevelNetwork,
			"poi %s requires arterial access but no district is reachable", poi.ID)
	} else {
		report.Infof(validation.LevelNetwork,
			"poi %s: %d arterial connectors added", poi.ID, len(connectors))
	}
	return connectors, report
}

// nearArterial reports whether pt is within radius of any arterial-or-better road.
func nearArterial(pt geo.Point, roads []city.Road, radius float64) bool {
	for _, r := range roads {
		if !r.Class.AtLeast(city.ClassArterial) {
			continue
		}
		if r.Line.Distance(pt) <= radius {
			return true
		}
	}
	return false
}
