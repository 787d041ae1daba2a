package city

import (
	"math"
	"testing"

	"github.com/kdenny/city-doodle-sub000/pkg/geo"
)

func TestRoadClassOrder(t *testing.T) {
	order := []RoadClass{ClassTrail, ClassLocal, ClassCollector, ClassArterial, ClassHighway}
	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Errorf("%s should rank above %s", order[i], order[i-1])
		}
	}
	if !ClassHighway.AtLeast(ClassArterial) {
		t.Error("highway should rank at least arterial")
	}
	if ClassLocal.AtLeast(ClassCollector) {
		t.Error("local should not rank at least collector")
	}
}

func TestPolygonsOverlapScenario(t *testing.T) {
	a := geo.NewPolygon(geo.Pt(0, 0), geo.Pt(100, 0), geo.Pt(100, 100), geo.Pt(0, 100))
	b := geo.NewPolygon(geo.Pt(50, 50), geo.Pt(150, 50), geo.Pt(150, 150), geo.Pt(50, 150))

	if !WouldOverlap(b, []District{{ID: "a", Polygon: a}}) {
		t.Error("expected overlap between offset squares")
	}
}

func TestPolygonsOverlapSymmetric(t *testing.T) {
	cases := []struct {
		name string
		a, b geo.Polygon
	}{
		{
			"offset squares",
			geo.NewPolygon(geo.Pt(0, 0), geo.Pt(100, 0), geo.Pt(100, 100), geo.Pt(0, 100)),
			geo.NewPolygon(geo.Pt(50, 50), geo.Pt(150, 50), geo.Pt(150, 150), geo.Pt(50, 150)),
		},
		{
			"disjoint squares",
			geo.NewPolygon(geo.Pt(0, 0), geo.Pt(10, 0), geo.Pt(10, 10), geo.Pt(0, 10)),
			geo.NewPolygon(geo.Pt(50, 50), geo.Pt(60, 50), geo.Pt(60, 60), geo.Pt(50, 60)),
		},
		{
			"contained square",
			geo.NewPolygon(geo.Pt(0, 0), geo.Pt(100, 0), geo.Pt(100, 100), geo.Pt(0, 100)),
			geo.NewPolygon(geo.Pt(40, 40), geo.Pt(60, 40), geo.Pt(60, 60), geo.Pt(40, 60)),
		},
		{
			"edge crossing without contained vertices",
			geo.NewPolygon(geo.Pt(0, 40), geo.Pt(100, 40), geo.Pt(100, 60), geo.Pt(0, 60)),
			geo.NewPolygon(geo.Pt(40, 0), geo.Pt(60, 0), geo.Pt(60, 100), geo.Pt(40, 100)),
		},
	}

	for _, tc := range cases {
		ab := PolygonsOverlap(tc.a, tc.b)
		ba := PolygonsOverlap(tc.b, tc.a)
		if ab != ba {
			t.Errorf("%s: overlap not symmetric (%v vs %v)", tc.name, ab, ba)
		}
	}
}

func TestOverlapAreaCross(t *testing.T) {
	// Two crossing strips overlap in a 20x20 square.
	a := geo.NewPolygon(geo.Pt(0, 40), geo.Pt(100, 40), geo.Pt(100, 60), geo.Pt(0, 60))
	b := geo.NewPolygon(geo.Pt(40, 0), geo.Pt(60, 0), geo.Pt(60, 100), geo.Pt(40, 100))
	area := OverlapArea(a, b)
	if math.Abs(area-400) > 1 {
		t.Errorf("expected overlap area 400, got %f", area)
	}
}

func TestIDSourceMonotonic(t *testing.T) {
	ids := NewIDSource()
	a := ids.Next("road")
	b := ids.Next("road")
	if a == b {
		t.Error("IDs must be unique")
	}
	if a != "road_0000" || b != "road_0001" {
		t.Errorf("unexpected IDs %q, %q", a, b)
	}
	if got := ids.Nextf("road", "connection"); got != "road_0002_connection" {
		t.Errorf("unexpected suffixed ID %q", got)
	}
}

func TestTypeTable(t *testing.T) {
	cases := []struct {
		dtype  DistrictType
		blockM float64
		grid   bool
		major  bool
	}{
		{TypeDowntown, 60, true, true},
		{TypeMixedUse, 90, true, false},
		{TypeCommercial, 100, true, true},
		{TypeResidential, 120, true, false},
		{TypeIndustrial, 200, true, true},
		{TypePark, 0, false, false},
		{TypeAirport, 0, false, true},
	}
	for _, tc := range cases {
		spec := SpecFor(tc.dtype)
		if spec.BlockSizeMeters != tc.blockM {
			t.Errorf("%s: block size %f, want %f", tc.dtype, spec.BlockSizeMeters, tc.blockM)
		}
		if spec.Grid != tc.grid {
			t.Errorf("%s: grid %v, want %v", tc.dtype, spec.Grid, tc.grid)
		}
		if spec.Major != tc.major {
			t.Errorf("%s: major %v, want %v", tc.dtype, spec.Major, tc.major)
		}
	}
}

func TestUnitsRoundTrip(t *testing.T) {
	if math.Abs(UnitsToMeters(MetersToUnits(500))-500) > 1e-9 {
		t.Error("unit conversion should round-trip")
	}
	// 768 units span 50 miles.
	if math.Abs(UnitsToMeters(768)-50*1609.344) > 1e-6 {
		t.Errorf("768 units should be 50 miles, got %f m", UnitsToMeters(768))
	}
}

func TestModelClone(t *testing.T) {
	m := Model{
		Roads:      []Road{{ID: "r1", Class: ClassLocal}},
		Waterfront: map[string]WaterfrontType{"r1": WaterfrontRiverfront},
	}
	c := m.Clone()
	c.Roads = append(c.Roads, Road{ID: "r2"})
	c.Waterfront["r2"] = WaterfrontBoardwalk

	if len(m.Roads) != 1 {
		t.Error("clone should not alias the roads slice")
	}
	if _, ok := m.Waterfront["r2"]; ok {
		t.Error("clone should not alias the waterfront map")
	}
}
