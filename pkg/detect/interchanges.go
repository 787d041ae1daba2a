package detect

import (
	"fmt"

	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/geo"
)

// DetectInterchanges finds every crossing of the given highway with an
// arterial or collector road and emits a diamond interchange at each
// crossing point. Other highways, local streets, and trails never produce
// interchanges.
func DetectInterchanges(highway city.Road, roads []city.Road) []city.Interchange {
	return DetectInterchangesTyped(highway, roads, city.InterchangeDiamond)
}

// DetectInterchangesTyped is DetectInterchanges with an explicit ramp
// layout for every emitted interchange.
func DetectInterchangesTyped(highway city.Road, roads []city.Road, typ city.InterchangeType) []city.Interchange {
	var interchanges []city.Interchange
	for _, road := range roads {
		if road.ID == highway.ID {
			continue
		}
		switch road.Class {
		case city.ClassArterial, city.ClassCollector:
		default:
			continue
		}
		for _, pt := range crossings(highway.Line, road.Line) {
			interchanges = append(interchanges, city.Interchange{
				ID:              fmt.Sprintf("interchange_%s_%s_%d", highway.ID, road.ID, len(interchanges)),
				Type:            typ,
				Position:        pt,
				HighwayID:       highway.ID,
				ConnectedRoadID: road.ID,
			})
		}
	}
	return interchanges
}

// crossings returns every intersection point between two polylines, in
// segment order along a.
func crossings(a, b geo.Polyline) []geo.Point {
	var points []geo.Point
	for i := 0; i < len(a.Points)-1; i++ {
		points = append(points, b.Intersections(a.Points[i], a.Points[i+1])...)
	}
	return points
}
