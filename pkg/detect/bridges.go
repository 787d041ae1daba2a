// Package detect holds the post-generation passes that derive bridges,
// highway interchanges, and waterfront tags from the road network and
// terrain. Every pass recomputes its output from scratch; derived entity
// IDs are content-addressed so a recompute never renames a surviving
// feature.
package detect

import (
	"fmt"

	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/config"
	"github.com/kdenny/city-doodle-sub000/pkg/terrain"
)

// DetectBridges finds every road/water overlap long enough to need a
// bridge. Water polygons contribute one bridge per entry/exit crossing
// pair; rivers contribute one bridge per centerline crossing, spanning the
// river width along the road direction. Crossings shorter than
// MinBridgeLength are ignored.
func DetectBridges(roads []city.Road, terr terrain.TerrainData, cfg config.BridgeDetectionConfig) []city.Bridge {
	cfg = config.ResolveBridge(cfg)
	var bridges []city.Bridge
	for _, road := range roads {
		bridges = append(bridges, waterBridges(road, terr.Water, cfg.MinBridgeLength)...)
		bridges = append(bridges, riverBridges(road, terr.Rivers, cfg.MinBridgeLength)...)
	}
	return bridges
}

// waterBridges pairs consecutive boundary crossings of each road segment
// against each water polygon. An odd trailing crossing (segment ends in
// the water) spans no exit and is dropped.
func waterBridges(road city.Road, water []terrain.WaterFeature, minLength float64) []city.Bridge {
	var bridges []city.Bridge
	for seg := 0; seg < len(road.Line.Points)-1; seg++ {
		a := road.Line.Points[seg]
		b := road.Line.Points[seg+1]
		for _, w := range water {
			crossings := w.Polygon.ClipSegment(a, b)
			for pair := 0; pair+1 < len(crossings); pair += 2 {
				entry := crossings[pair]
				exit := crossings[pair+1]
				length := entry.Distance(exit)
				if length < minLength {
					continue
				}
				bridges = append(bridges, city.Bridge{
					ID:             bridgeID(road.ID, w.ID, seg, pair/2),
					RoadID:         road.ID,
					WaterType:      "water",
					WaterFeatureID: w.ID,
					Start:          entry,
					End:            exit,
					Length:         length,
					AutoGenerated:  true,
				})
			}
		}
	}
	return bridges
}

// riverBridges spans each centerline crossing by half the river width on
// both sides, along the road direction.
func riverBridges(road city.Road, rivers []terrain.RiverFeature, minLength float64) []city.Bridge {
	var bridges []city.Bridge
	for seg := 0; seg < len(road.Line.Points)-1; seg++ {
		a := road.Line.Points[seg]
		b := road.Line.Points[seg+1]
		dir := b.Sub(a).Normalize()
		for _, river := range rivers {
			half := river.Width / 2
			for ci, crossing := range river.Centerline.Intersections(a, b) {
				if river.Width < minLength {
					continue
				}
				bridges = append(bridges, city.Bridge{
					ID:             bridgeID(road.ID, river.ID, seg, ci),
					RoadID:         road.ID,
					WaterType:      "river",
					WaterFeatureID: river.ID,
					Start:          crossing.Sub(dir.Scale(half)),
					End:            crossing.Add(dir.Scale(half)),
					Length:         river.Width,
					AutoGenerated:  true,
				})
			}
		}
	}
	return bridges
}

func bridgeID(roadID, waterID string, seg, crossing int) string {
	return fmt.Sprintf("bridge_%s_%s_%d_%d", roadID, waterID, seg, crossing)
}
