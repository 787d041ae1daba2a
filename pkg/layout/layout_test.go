package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/config"
	"github.com/kdenny/city-doodle-sub000/pkg/geo"
	"github.com/kdenny/city-doodle-sub000/pkg/rng"
)

func TestRoundedRectShape(t *testing.T) {
	poly := RoundedRect(geo.Pt(50, 50), 40, 20, 0.2)
	if poly.IsEmpty() {
		t.Fatal("expected polygon")
	}
	minP, maxP := poly.BoundingBox()
	if math.Abs((maxP.X-minP.X)-40) > 0.5 || math.Abs((maxP.Y-minP.Y)-20) > 0.5 {
		t.Errorf("unexpected extents: %v %v", minP, maxP)
	}
	if !poly.Contains(geo.Pt(50, 50)) {
		t.Error("center should be inside")
	}
	// Corner is rounded off: the sharp corner point lies outside.
	if poly.Contains(geo.Pt(30.2, 40.2)) {
		t.Error("sharp corner should be rounded away")
	}
}

func TestOrganicPolygonVariance(t *testing.T) {
	r := rng.New(5)
	poly := OrganicPolygon(geo.Pt(0, 0), 20, 10, 0.3, r)
	if poly.Len() != 10 {
		t.Fatalf("expected 10 vertices, got %d", poly.Len())
	}
	for _, v := range poly.Vertices {
		d := v.Length()
		if d < 20*0.69 || d > 20*1.31 {
			t.Errorf("vertex radius %v outside variance band", d)
		}
	}
}

func TestOrganicPolygonDegenerate(t *testing.T) {
	if !OrganicPolygon(geo.Pt(0, 0), 20, 2, 0.3, rng.New(1)).IsEmpty() {
		t.Error("fewer than 3 points should yield empty polygon")
	}
	if !OrganicPolygon(geo.Pt(0, 0), 0, 8, 0.3, rng.New(1)).IsEmpty() {
		t.Error("zero radius should yield empty polygon")
	}
}

func TestGenerateDistrictDeterministic(t *testing.T) {
	cfg := config.DistrictGenerationConfig{}
	a, _ := GenerateDistrict(geo.Pt(100, 100), city.TypeResidential, cfg, city.NewIDSource())
	b, _ := GenerateDistrict(geo.Pt(100, 100), city.TypeResidential, cfg, city.NewIDSource())

	if a.District.Polygon.Len() != b.District.Polygon.Len() {
		t.Fatal("polygon vertex counts differ")
	}
	for i := range a.District.Polygon.Vertices {
		if a.District.Polygon.Vertices[i] != b.District.Polygon.Vertices[i] {
			t.Fatal("same position should regenerate the same footprint")
		}
	}
	if len(a.Roads) != len(b.Roads) {
		t.Fatal("road counts differ")
	}
}

func TestGenerateDistrictPositionsDiffer(t *testing.T) {
	cfg := config.DistrictGenerationConfig{}
	a, _ := GenerateDistrict(geo.Pt(100, 100), city.TypeResidential, cfg, city.NewIDSource())
	b, _ := GenerateDistrict(geo.Pt(180, 40), city.TypeResidential, cfg, city.NewIDSource())

	ca := a.District.Polygon.Centroid()
	cb := b.District.Polygon.Centroid()
	if ca == cb {
		t.Error("different positions should produce different districts")
	}
}

func TestGenerateDistrictGridByType(t *testing.T) {
	cfg := config.DistrictGenerationConfig{}
	downtown, _ := GenerateDistrict(geo.Pt(50, 50), city.TypeDowntown, cfg, city.NewIDSource())
	if len(downtown.Roads) == 0 {
		t.Error("downtown should get a street grid")
	}
	for _, r := range downtown.Roads {
		if r.DistrictID != downtown.District.ID {
			t.Error("grid roads should belong to the district")
		}
	}
	if downtown.District.GridAngle == 0 {
		t.Log("grid angle may legitimately be zero, but is usually not")
	}
}

func TestGenerateDistrictBlockSizes(t *testing.T) {
	// Downtown blocks (60 m) are finer than industrial blocks (200 m), so
	// at equal size the downtown grid carries more roads.
	cfg := config.DistrictGenerationConfig{Size: 15}
	downtown, _ := GenerateDistrict(geo.Pt(50, 50), city.TypeDowntown, cfg, city.NewIDSource())
	industrial, _ := GenerateDistrict(geo.Pt(50, 50), city.TypeIndustrial, cfg, city.NewIDSource())

	if len(downtown.Roads) <= len(industrial.Roads) {
		t.Errorf("downtown should out-grid industrial: %d vs %d",
			len(downtown.Roads), len(industrial.Roads))
	}
}

func TestGenerateParkNoGrid(t *testing.T) {
	result, _ := GeneratePark(geo.Pt(70, 70), ParkPocket, 0, nil,
		config.DistrictGenerationConfig{}, 50, city.NewIDSource())
	if result.District.Type != city.TypePark {
		t.Error("park district type expected")
	}
	for _, p := range result.Paths {
		if p.Class == city.ClassLocal && !strings.Contains(p.ID, "connection") {
			t.Errorf("pocket park should have no non-connector local roads, got %s", p.ID)
		}
	}
}

func TestGenerateParkTrailsInside(t *testing.T) {
	result, _ := GeneratePark(geo.Pt(70, 70), ParkRegional, 0, nil,
		config.DistrictGenerationConfig{}, 50, city.NewIDSource())

	trailCount := 0
	for _, p := range result.Paths {
		if p.Class != city.ClassTrail {
			continue
		}
		trailCount++
		for _, pt := range p.Line.Points {
			if !result.District.Polygon.Contains(pt) {
				t.Errorf("trail point %v escapes the park", pt)
			}
		}
	}
	if trailCount == 0 {
		t.Error("regional park should carry internal trails")
	}
}

func TestGenerateParkConnection(t *testing.T) {
	road := city.Road{
		ID:    "existing",
		Class: city.ClassCollector,
		Line:  geo.NewPolyline(geo.Pt(40, 100), geo.Pt(120, 100)),
	}
	result, _ := GeneratePark(geo.Pt(80, 80), ParkNeighborhood, 0, []city.Road{road},
		config.DistrictGenerationConfig{}, 50, city.NewIDSource())

	if result.ConnectionPoint == nil {
		t.Fatal("park near a road should connect")
	}
	var connector *city.Road
	for i := range result.Paths {
		if strings.Contains(result.Paths[i].ID, "connection") {
			connector = &result.Paths[i]
		}
	}
	if connector == nil {
		t.Fatal("expected a connector road with 'connection' in its ID")
	}
	if connector.Class != city.ClassLocal {
		t.Errorf("connector class %s, want local", connector.Class)
	}
}

func TestGenerateParkNoRoadInRange(t *testing.T) {
	far := city.Road{
		ID:   "far",
		Line: geo.NewPolyline(geo.Pt(500, 500), geo.Pt(600, 500)),
	}
	result, report := GeneratePark(geo.Pt(80, 80), ParkNeighborhood, 0, []city.Road{far},
		config.DistrictGenerationConfig{}, 50, city.NewIDSource())

	if result.ConnectionPoint != nil {
		t.Error("no road within radius: connection point should be nil")
	}
	if len(report.Warnings) == 0 {
		t.Error("expected an unconnected-park warning")
	}
}

func TestGenerateParkPonds(t *testing.T) {
	// High feature density gives ponds a 50% shot; scan seeds until one
	// fires to verify containment.
	found := false
	for seed := int64(1); seed <= 20 && !found; seed++ {
		cfg := config.DistrictGenerationConfig{Seed: seed}
		result, _ := GeneratePark(geo.Pt(70, 70), ParkRegional, 1.0, nil, cfg, 50, city.NewIDSource())
		for _, pond := range result.District.Ponds {
			found = true
			for _, v := range pond.Vertices {
				if !result.District.Polygon.Contains(v) {
					t.Errorf("pond vertex %v outside park", v)
				}
			}
		}
	}
	if !found {
		t.Error("expected at least one pond across 20 seeds")
	}
}

func TestGenerateAirport(t *testing.T) {
	result, _ := GenerateAirport(geo.Pt(150, 150), nil,
		config.DistrictGenerationConfig{}, city.NewIDSource())

	if result.District.Type != city.TypeAirport {
		t.Fatal("airport district type expected")
	}
	if len(result.Runways) < 1 || len(result.Runways) > 3 {
		t.Fatalf("expected 1-3 runways, got %d", len(result.Runways))
	}
	for _, rw := range result.Runways {
		if rw.Class != city.ClassHighway {
			t.Errorf("runway %s class %s, want highway", rw.ID, rw.Class)
		}
		// Near-horizontal: within 8 degrees.
		dir := rw.Line.Points[1].Sub(rw.Line.Points[0])
		angle := math.Abs(dir.Angle())
		if angle > 8*math.Pi/180+1e-9 {
			t.Errorf("runway %s angle %v exceeds near-horizontal limit", rw.ID, angle)
		}
	}
	if len(result.Taxiways) != len(result.Runways) {
		t.Errorf("expected one taxiway per runway, got %d for %d runways",
			len(result.Taxiways), len(result.Runways))
	}
}

func TestGenerateAirportRunwaysParallel(t *testing.T) {
	// Seeded so at least some seeds give multiple runways.
	for seed := int64(1); seed <= 10; seed++ {
		cfg := config.DistrictGenerationConfig{Seed: seed}
		result, _ := GenerateAirport(geo.Pt(150, 150), nil, cfg, city.NewIDSource())
		if len(result.Runways) < 2 {
			continue
		}
		first := result.Runways[0].Line.Points[1].Sub(result.Runways[0].Line.Points[0]).Angle()
		for _, rw := range result.Runways[1:] {
			a := rw.Line.Points[1].Sub(rw.Line.Points[0]).Angle()
			if math.Abs(a-first) > 1e-9 {
				t.Errorf("seed %d: runways not parallel: %v vs %v", seed, first, a)
			}
		}
		return
	}
	t.Skip("no multi-runway airport in seed range")
}

func TestGenerateAirportPrefersArterialTargets(t *testing.T) {
	// A nearer local road and a farther arterial: access roads should go
	// to the arterial.
	local := city.Road{
		ID:    "local",
		Class: city.ClassLocal,
		Line:  geo.NewPolyline(geo.Pt(150, 120), geo.Pt(160, 120)),
	}
	arterial := city.Road{
		ID:    "arterial",
		Class: city.ClassArterial,
		Line:  geo.NewPolyline(geo.Pt(150, 60), geo.Pt(160, 60)),
	}
	result, _ := GenerateAirport(geo.Pt(150, 150), []city.Road{local, arterial},
		config.DistrictGenerationConfig{}, city.NewIDSource())

	if len(result.AccessRoads) == 0 {
		t.Fatal("expected access roads")
	}
	end := result.AccessRoads[0].Line.Points[len(result.AccessRoads[0].Line.Points)-1]
	if _, d := arterial.Line.NearestPoint(end); d > 1 {
		t.Errorf("first access road should target the arterial, ended at %v", end)
	}
	if result.AccessRoads[0].Class != city.ClassArterial {
		t.Errorf("access road class %s, want arterial", result.AccessRoads[0].Class)
	}
}
