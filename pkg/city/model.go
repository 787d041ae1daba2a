package city

import "github.com/kdenny/city-doodle-sub000/pkg/terrain"

// Model is the aggregate city state handed between the engine and the
// caller. Districts, roads, and POIs are authoritative; bridges,
// interchanges, and waterfront tags are derived and fully recomputed after
// any road or terrain change. All fields are plain serializable data.
type Model struct {
	Districts    []District                `json:"districts"`
	Roads        []Road                    `json:"roads"`
	POIs         []POI                     `json:"pois"`
	Terrain      terrain.TerrainData       `json:"terrain"`
	Bridges      []Bridge                  `json:"bridges"`
	Interchanges []Interchange             `json:"interchanges"`
	Waterfront   map[string]WaterfrontType `json:"waterfront"`
}

// Clone returns a deep-enough copy of the model: the slices are fresh so
// appends by a caller do not alias, while the immutable value entities are
// shared.
func (m Model) Clone() Model {
	out := Model{
		Districts:    append([]District(nil), m.Districts...),
		Roads:        append([]Road(nil), m.Roads...),
		POIs:         append([]POI(nil), m.POIs...),
		Terrain:      m.Terrain,
		Bridges:      append([]Bridge(nil), m.Bridges...),
		Interchanges: append([]Interchange(nil), m.Interchanges...),
	}
	if m.Waterfront != nil {
		out.Waterfront = make(map[string]WaterfrontType, len(m.Waterfront))
		for k, v := range m.Waterfront {
			out.Waterfront[k] = v
		}
	}
	return out
}

// RoadByID returns the road with the given ID, or nil.
func (m Model) RoadByID(id string) *Road {
	for i := range m.Roads {
		if m.Roads[i].ID == id {
			return &m.Roads[i]
		}
	}
	return nil
}

// DistrictByID returns the district with the given ID, or nil.
func (m Model) DistrictByID(id string) *District {
	for i := range m.Districts {
		if m.Districts[i].ID == id {
			return &m.Districts[i]
		}
	}
	return nil
}

// DistrictRoads returns the roads owned by a district.
func (m Model) DistrictRoads(districtID string) []Road {
	var out []Road
	for _, r := range m.Roads {
		if r.DistrictID == districtID {
			out = append(out, r)
		}
	}
	return out
}
