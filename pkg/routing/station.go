package routing

import (
	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/config"
	"github.com/kdenny/city-doodle-sub000/pkg/geo"
	"github.com/kdenny/city-doodle-sub000/pkg/validation"
)

// EnsureStationAccess gives a transit station a local access road when it
// sits farther than the station radius from every existing road. Returns
// nil when the station is already served.
func EnsureStationAccess(station city.POI, roads []city.Road, cfg config.ConnectConfig, ids *city.IDSource) (*city.Road, *validation.Report) {
	report := validation.NewReport()
	cfg = config.ResolveConnect(cfg)

	var bestPt geo.Point
	bestDist := -1.0
	for _, r := range roads {
		pt, d := r.Line.NearestPoint(station.Position)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			bestPt = pt
		}
	}
	if bestDist < 0 {
		report.Warnf(validation.LevelNetwork,
			"station %s: no roads exist to connect to", station.ID)
		return nil, report
	}
	if bestDist <= cfg.StationRadius {
		return nil, report
	}

	road := &city.Road{
		ID:    ids.Nextf("road", "station_access"),
		Class: city.ClassLocal,
		Line: geo.Polyline{
			Points: []geo.Point{station.Position, bestPt},
			Width:  city.ClassLocal.DefaultWidth(),
		},
	}
	report.Infof(validation.LevelNetwork,
		"station %s: access road added (%.1f units to network)", station.ID, bestDist)
	return road, report
}
