// Package engine sequences one editor action through the full pipeline:
// shape generation, network connection, detection passes, and index
// rebuild. The engine holds configuration and the ID source; city state
// goes in and comes out by value, so callers own history and undo.
package engine

import (
	"fmt"

	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/config"
	"github.com/kdenny/city-doodle-sub000/pkg/detect"
	"github.com/kdenny/city-doodle-sub000/pkg/geo"
	"github.com/kdenny/city-doodle-sub000/pkg/layout"
	"github.com/kdenny/city-doodle-sub000/pkg/routing"
	"github.com/kdenny/city-doodle-sub000/pkg/spatial"
	"github.com/kdenny/city-doodle-sub000/pkg/validation"
)

// RoadHitRadius is the default hit-test slop around road lines, in world
// units.
const RoadHitRadius = 2

// Options collects the pass configurations. Zero values resolve to the
// documented defaults inside each pass.
type Options struct {
	District   config.DistrictGenerationConfig
	Bridges    config.BridgeDetectionConfig
	Waterfront config.WaterfrontDetectionConfig
	Connect    config.ConnectConfig
	Stitch     config.StitchConfig
}

// Indexes bundles the hit-test grids rebuilt after every apply.
type Indexes struct {
	Roads     *spatial.Grid[city.Road]
	POIs      *spatial.Grid[city.POI]
	Districts *spatial.Grid[city.District]
}

// BuildIndexes rebuilds all three hit-test grids from scratch.
func BuildIndexes(m city.Model) Indexes {
	return Indexes{
		Roads:     spatial.BuildRoadIndex(m.Roads, RoadHitRadius),
		POIs:      spatial.BuildPOIIndex(m.POIs, RoadHitRadius),
		Districts: spatial.BuildDistrictIndex(m.Districts),
	}
}

// Engine applies placements to a city model. It retains only
// configuration, the ID counters, and the derived hit-test indexes; the
// model itself is never stored.
type Engine struct {
	opts Options
	ids  *city.IDSource
	idx  Indexes
}

// New creates an engine with fresh ID counters.
func New(opts Options) *Engine {
	return &Engine{opts: opts, ids: city.NewIDSource()}
}

// Indexes returns the hit-test grids from the most recent Apply or
// Recompute.
func (e *Engine) Indexes() Indexes {
	return e.idx
}

// Apply runs one placement through generate, connect, and detect, and
// returns the new model. The input model is not mutated. Stitching and
// inter-district links are decided at placement time; reshaping a district
// afterwards does not regenerate them.
func (e *Engine) Apply(model city.Model, pl config.Placement) (city.Model, *validation.Report) {
	out := model.Clone()
	report := validation.NewReport()
	pos := geo.Pt(pl.X, pl.Y)

	switch pl.Type {
	case "district":
		e.applyDistrict(&out, pos, pl, report)
	case "park":
		e.applyPark(&out, pos, pl, report)
	case "airport":
		e.applyAirport(&out, pos, pl, report)
	case "poi":
		e.applyPOI(&out, pos, pl, report)
	case "station":
		e.applyStation(&out, pos, pl, report)
	default:
		report.AddError(validation.Result{
			Level:   validation.LevelConfig,
			Message: fmt.Sprintf("unknown placement type %q", pl.Type),
		})
		return out, report
	}

	e.refresh(&out)
	return out, report
}

// Recompute re-runs the detection passes and index rebuild without
// placing anything. Used after a terrain swap.
func (e *Engine) Recompute(model city.Model) city.Model {
	out := model.Clone()
	e.refresh(&out)
	return out
}

func (e *Engine) applyDistrict(m *city.Model, pos geo.Point, pl config.Placement, report *validation.Report) {
	cfg := e.opts.District
	if pl.Seed != 0 {
		cfg.Seed = pl.Seed
	}
	res, rep := layout.GenerateDistrict(pos, pl.DistrictType, cfg, e.ids)
	report.Merge(rep)
	if res.District.Polygon.IsEmpty() {
		return
	}
	if pl.Name != "" {
		res.District.Name = pl.Name
	}
	if city.WouldOverlap(res.District.Polygon, m.Districts) {
		report.Warnf(validation.LevelGeometry, "district %s overlaps an existing district", res.District.ID)
	}

	conn, crep := routing.ConnectDistrict(res.District, m.Districts, m.Terrain, e.opts.Connect, e.ids, 0)
	report.Merge(crep)

	existing := m.Districts
	m.Districts = append(m.Districts, res.District)
	m.Roads = append(m.Roads, res.Roads...)
	m.Roads = append(m.Roads, conn.Roads...)

	stitchCfg := config.ResolveStitch(e.opts.Stitch)
	for _, other := range existing {
		if !routing.Adjacent(res.District.Polygon, other.Polygon, stitchCfg.AdjacencyThreshold) {
			continue
		}
		links, srep := routing.StitchDistricts(res.District, other, m.Roads, e.opts.Stitch, e.ids)
		report.Merge(srep)
		m.Roads = append(m.Roads, links...)
	}
}

func (e *Engine) applyPark(m *city.Model, pos geo.Point, pl config.Placement, report *validation.Report) {
	cfg := e.opts.District
	if pl.Seed != 0 {
		cfg.Seed = pl.Seed
	}
	size := layout.ParkSize(pl.ParkSize)
	if size == "" {
		size = layout.ParkNeighborhood
	}
	density := pl.FeatureDensity
	if density == 0 {
		density = 0.5
	}
	connect := config.ResolveConnect(e.opts.Connect)
	res, rep := layout.GeneratePark(pos, size, density, m.Roads, cfg, connect.SearchRadius, e.ids)
	report.Merge(rep)
	if res.District.Polygon.IsEmpty() {
		return
	}
	if pl.Name != "" {
		res.District.Name = pl.Name
	}
	m.Districts = append(m.Districts, res.District)
	m.Roads = append(m.Roads, res.Paths...)
}

func (e *Engine) applyAirport(m *city.Model, pos geo.Point, pl config.Placement, report *validation.Report) {
	cfg := e.opts.District
	if pl.Seed != 0 {
		cfg.Seed = pl.Seed
	}
	res, rep := layout.GenerateAirport(pos, m.Roads, cfg, e.ids)
	report.Merge(rep)
	if res.District.Polygon.IsEmpty() {
		return
	}
	if pl.Name != "" {
		res.District.Name = pl.Name
	}
	m.Districts = append(m.Districts, res.District)
	m.Roads = append(m.Roads, res.Runways...)
	m.Roads = append(m.Roads, res.Taxiways...)
	m.Roads = append(m.Roads, res.AccessRoads...)
}

func (e *Engine) applyPOI(m *city.Model, pos geo.Point, pl config.Placement, report *validation.Report) {
	poi := city.POI{
		ID:       e.ids.Next("poi"),
		Type:     pl.POIType,
		Name:     pl.Name,
		Position: pos,
	}
	m.POIs = append(m.POIs, poi)

	roads, rep := routing.EnforceArterialAdjacency(poi, m.Districts, m.Roads, e.opts.Connect, e.ids)
	report.Merge(rep)
	m.Roads = append(m.Roads, roads...)
}

func (e *Engine) applyStation(m *city.Model, pos geo.Point, pl config.Placement, report *validation.Report) {
	station := city.POI{
		ID:       e.ids.Next("poi"),
		Type:     city.POIStation,
		Name:     pl.Name,
		Position: pos,
	}
	m.POIs = append(m.POIs, station)

	access, rep := routing.EnsureStationAccess(station, m.Roads, e.opts.Connect, e.ids)
	report.Merge(rep)
	if access != nil {
		m.Roads = append(m.Roads, *access)
	}
}

// refresh recomputes every derived entity and the hit-test grids. Nothing
// is diffed: bridges, interchanges, and waterfront tags are rebuilt from
// the full road set each time.
func (e *Engine) refresh(m *city.Model) {
	m.Bridges = detect.DetectBridges(m.Roads, m.Terrain, e.opts.Bridges)
	m.Interchanges = nil
	for _, road := range m.Roads {
		if road.Class != city.ClassHighway {
			continue
		}
		m.Interchanges = append(m.Interchanges, detect.DetectInterchanges(road, m.Roads)...)
	}
	m.Waterfront = detect.ClassifyWaterfront(m.Roads, m.Terrain, e.opts.Waterfront)
	e.idx = BuildIndexes(*m)
}
