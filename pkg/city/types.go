// Package city defines the plain serializable data model shared by the
// generators, connectivity passes, and detection passes. Entities carry no
// behavior beyond accessors; everything derived (bridges, interchanges,
// waterfront tags) is recomputable from the authoritative feature lists.
package city

import "github.com/kdenny/city-doodle-sub000/pkg/geo"

// RoadClass is the functional hierarchy of a road. The order is total:
// lower classes terminate into higher ones, and rendering priority follows
// the same order.
type RoadClass string

const (
	ClassTrail     RoadClass = "trail"
	ClassLocal     RoadClass = "local"
	ClassCollector RoadClass = "collector"
	ClassArterial  RoadClass = "arterial"
	ClassHighway   RoadClass = "highway"
)

// Rank returns the position of the class in the hierarchy, trail lowest.
func (c RoadClass) Rank() int {
	switch c {
	case ClassTrail:
		return 0
	case ClassLocal:
		return 1
	case ClassCollector:
		return 2
	case ClassArterial:
		return 3
	case ClassHighway:
		return 4
	}
	return -1
}

// AtLeast reports whether c ranks at or above other.
func (c RoadClass) AtLeast(other RoadClass) bool {
	return c.Rank() >= other.Rank()
}

// DefaultWidth returns the rendered width of a road class in world units.
func (c RoadClass) DefaultWidth() float64 {
	switch c {
	case ClassTrail:
		return 0.05
	case ClassLocal:
		return 0.1
	case ClassCollector:
		return 0.15
	case ClassArterial:
		return 0.25
	case ClassHighway:
		return 0.4
	}
	return 0.1
}

// Road is a polyline street with a hierarchy class. Roads generated inside
// a district carry its ID; connective roads between districts carry none.
type Road struct {
	ID         string       `json:"id"`
	Name       string       `json:"name,omitempty"`
	Class      RoadClass    `json:"roadClass"`
	Line       geo.Polyline `json:"line"`
	DistrictID string       `json:"districtId,omitempty"`
}

// Start returns the first point of the road line.
func (r Road) Start() geo.Point {
	if len(r.Line.Points) == 0 {
		return geo.Point{}
	}
	return r.Line.Points[0]
}

// End returns the last point of the road line.
func (r Road) End() geo.Point {
	if len(r.Line.Points) == 0 {
		return geo.Point{}
	}
	return r.Line.Points[len(r.Line.Points)-1]
}

// DistrictType drives block size, shape style, and whether a street grid is
// generated at all.
type DistrictType string

const (
	TypeDowntown    DistrictType = "downtown"
	TypeMixedUse    DistrictType = "mixed_use"
	TypeCommercial  DistrictType = "commercial"
	TypeResidential DistrictType = "residential"
	TypeIndustrial  DistrictType = "industrial"
	TypePark        DistrictType = "park"
	TypeAirport     DistrictType = "airport"
)

// District owns zero or more generated roads, linked by DistrictID.
// The polygon and its roads are immutable once generated; edits replace
// them wholesale.
type District struct {
	ID          string        `json:"id"`
	Type        DistrictType  `json:"type"`
	Name        string        `json:"name"`
	Polygon     geo.Polygon   `json:"polygon"`
	Historic    bool          `json:"isHistoric,omitempty"`
	Personality string        `json:"personality,omitempty"`
	GridAngle   float64       `json:"gridAngle,omitempty"`
	Ponds       []geo.Polygon `json:"ponds,omitempty"`
	FillColor   string        `json:"fillColor,omitempty"`
}

// Density is a rough population-density weight used when prioritizing
// inter-district connections. Residential districts compete on it.
func (d District) Density() float64 {
	switch d.Type {
	case TypeDowntown:
		return 1.0
	case TypeMixedUse:
		return 0.8
	case TypeCommercial:
		return 0.7
	case TypeResidential:
		return 0.5
	case TypeIndustrial:
		return 0.3
	}
	return 0.1
}

// POIType identifies a placed point of interest.
type POIType string

const (
	POIHospital      POIType = "hospital"
	POIUniversity    POIType = "university"
	POILargeShopping POIType = "large_shopping"
	POIStation       POIType = "transit_station"
)

// POI is a placed point feature. Hospitals, universities, and large
// shopping features demand arterial adjacency; stations demand road access.
type POI struct {
	ID       string    `json:"id"`
	Type     POIType   `json:"type"`
	Name     string    `json:"name,omitempty"`
	Position geo.Point `json:"position"`
}

// RequiresArterial reports whether the POI type must sit near an arterial.
func (p POI) RequiresArterial() bool {
	switch p.Type {
	case POIHospital, POIUniversity, POILargeShopping:
		return true
	}
	return false
}

// Bridge is a derived entity: one per contiguous overlap of a road with a
// water feature. Recomputed from scratch after any road or terrain change;
// IDs are content-derived so recomputation does not churn them.
type Bridge struct {
	ID             string    `json:"id"`
	RoadID         string    `json:"roadId"`
	WaterType      string    `json:"waterType"`
	WaterFeatureID string    `json:"waterFeatureId,omitempty"`
	Start          geo.Point `json:"startPoint"`
	End            geo.Point `json:"endPoint"`
	Length         float64   `json:"length"`
	AutoGenerated  bool      `json:"autoGenerated"`
}

// InterchangeType names the ramp layout of a highway interchange.
type InterchangeType string

const (
	InterchangeDiamond    InterchangeType = "diamond"
	InterchangeCloverleaf InterchangeType = "cloverleaf"
	InterchangeTrumpet    InterchangeType = "trumpet"
)

// Interchange is derived at each crossing of a highway with an arterial or
// collector road.
type Interchange struct {
	ID              string          `json:"id"`
	Type            InterchangeType `json:"type"`
	Position        geo.Point       `json:"position"`
	HighwayID       string          `json:"highwayId"`
	ConnectedRoadID string          `json:"connectedRoadId"`
}

// WaterfrontType tags a road classified by proximity to water.
type WaterfrontType string

const (
	WaterfrontRiverfront WaterfrontType = "riverfront_drive"
	WaterfrontBoardwalk  WaterfrontType = "boardwalk"
)
