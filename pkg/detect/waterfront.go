package detect

import (
	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/config"
	"github.com/kdenny/city-doodle-sub000/pkg/geo"
	"github.com/kdenny/city-doodle-sub000/pkg/terrain"
)

// ClassifyWaterfront samples points along every road and tags roads that
// hug water. Trails and local streets near a beach become boardwalks;
// any road near a water polygon or river becomes a riverfront drive. A
// road gets at most one tag, and the returned map is built from scratch
// so roads that no longer qualify lose their old tag.
func ClassifyWaterfront(roads []city.Road, terr terrain.TerrainData, cfg config.WaterfrontDetectionConfig) map[string]city.WaterfrontType {
	cfg = config.ResolveWaterfront(cfg)
	tags := make(map[string]city.WaterfrontType)
	for _, road := range roads {
		samples := road.Line.Sample(cfg.SampleCount)
		if len(samples) == 0 {
			continue
		}
		if road.Class == city.ClassTrail || road.Class == city.ClassLocal {
			if fraction(samples, func(p geo.Point) bool {
				return nearBeach(p, terr.Beaches, cfg.BoardwalkThreshold)
			}) >= cfg.MinWaterfrontFraction {
				tags[road.ID] = city.WaterfrontBoardwalk
				continue
			}
		}
		if fraction(samples, func(p geo.Point) bool {
			return nearWater(p, terr, cfg.WaterfrontThreshold)
		}) >= cfg.MinWaterfrontFraction {
			tags[road.ID] = city.WaterfrontRiverfront
		}
	}
	return tags
}

func fraction(samples []geo.Point, near func(geo.Point) bool) float64 {
	hits := 0
	for _, p := range samples {
		if near(p) {
			hits++
		}
	}
	return float64(hits) / float64(len(samples))
}

// nearWater checks water polygons and rivers; river distance is measured
// to the bank, not the centerline.
func nearWater(p geo.Point, terr terrain.TerrainData, threshold float64) bool {
	for _, w := range terr.Water {
		if w.Polygon.DistanceTo(p) <= threshold {
			return true
		}
	}
	for _, r := range terr.Rivers {
		if r.Centerline.Distance(p)-r.Width/2 <= threshold {
			return true
		}
	}
	return false
}

func nearBeach(p geo.Point, beaches []terrain.BeachFeature, threshold float64) bool {
	for _, b := range beaches {
		if b.Polygon.DistanceTo(p) <= threshold {
			return true
		}
	}
	return false
}
