package routing

import (
	"regexp"
	"strings"
	"testing"

	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/config"
	"github.com/kdenny/city-doodle-sub000/pkg/geo"
	"github.com/kdenny/city-doodle-sub000/pkg/terrain"
)

func districtAt(id string, dtype city.DistrictType, cx, cy, half float64) city.District {
	return city.District{
		ID:   id,
		Type: dtype,
		Polygon: geo.NewPolygon(
			geo.Pt(cx-half, cy-half), geo.Pt(cx+half, cy-half),
			geo.Pt(cx+half, cy+half), geo.Pt(cx-half, cy+half),
		),
	}
}

func TestConnectDistrictMandatoryNearest(t *testing.T) {
	newD := districtAt("new", city.TypeResidential, 100, 100, 10)
	existing := []city.District{
		districtAt("near", city.TypeResidential, 140, 100, 10),
		districtAt("far", city.TypeResidential, 400, 400, 10),
	}

	result, _ := ConnectDistrict(newD, existing, terrain.TerrainData{},
		config.ConnectConfig{}, city.NewIDSource(), 0)

	if len(result.Roads) == 0 {
		t.Fatal("expected at least the mandatory nearest link")
	}
	end := result.Roads[0].End()
	if end.Distance(geo.Pt(140, 100)) > 1 {
		t.Errorf("first link should reach the nearest district, ended at %v", end)
	}
}

func TestConnectDistrictNoExisting(t *testing.T) {
	newD := districtAt("new", city.TypeResidential, 100, 100, 10)
	result, report := ConnectDistrict(newD, nil, terrain.TerrainData{},
		config.ConnectConfig{}, city.NewIDSource(), 0)
	if len(result.Roads) != 0 {
		t.Error("first placement should produce no links")
	}
	if !report.Valid {
		t.Error("empty network is not an error")
	}
}

func TestConnectDistrictHighwayNamingScenario(t *testing.T) {
	// Distance ~141 exceeds the 120-unit Interstate threshold: the link is
	// promoted to highway class and named like a numbered route.
	newD := districtAt("new", city.TypeResidential, 200, 200, 10)
	existing := []city.District{districtAt("old", city.TypeResidential, 100, 100, 10)}

	result, _ := ConnectDistrict(newD, existing, terrain.TerrainData{},
		config.ConnectConfig{}, city.NewIDSource(), 0)

	if len(result.Roads) != 1 {
		t.Fatalf("expected 1 link, got %d", len(result.Roads))
	}
	link := result.Roads[0]
	if link.Class != city.ClassHighway {
		t.Errorf("link class %s, want highway", link.Class)
	}
	if !regexp.MustCompile(`^(I-|US-|SR )\d+$`).MatchString(link.Name) {
		t.Errorf("name %q does not match route convention", link.Name)
	}
	if !strings.HasPrefix(link.Name, "I-") {
		t.Errorf("141-unit link should be Interstate style, got %q", link.Name)
	}
	if result.NextCounter != 1 {
		t.Errorf("counter should have advanced to 1, got %d", result.NextCounter)
	}
}

func TestRouteNameParity(t *testing.T) {
	cfg := config.ResolveConnect(config.ConnectConfig{})
	// North/south bearing gets an odd number.
	name, _ := routeName(130, geo.Pt(10, 100), cfg, 0)
	if name != "I-1" {
		t.Errorf("north/south Interstate should be I-1, got %q", name)
	}
	// East/west bearing gets an even number.
	name, _ = routeName(130, geo.Pt(100, 10), cfg, 0)
	if name != "I-2" {
		t.Errorf("east/west Interstate should be I-2, got %q", name)
	}
	// Medium and short lengths step down the route classes.
	name, _ = routeName(90, geo.Pt(100, 10), cfg, 0)
	if name != "US-2" {
		t.Errorf("medium link should be US route, got %q", name)
	}
	name, counter := routeName(30, geo.Pt(100, 10), cfg, 0)
	if name != "SR 2" {
		t.Errorf("short link should be state route, got %q", name)
	}
	if counter != 1 {
		t.Errorf("counter should thread through, got %d", counter)
	}
}

func TestRouteNameCounterAdvances(t *testing.T) {
	cfg := config.ResolveConnect(config.ConnectConfig{})
	_, c := routeName(130, geo.Pt(0, 100), cfg, 0)
	name, _ := routeName(130, geo.Pt(0, 100), cfg, c)
	if name != "I-3" {
		t.Errorf("second north/south route should be I-3, got %q", name)
	}
}

func TestConnectDistrictClassByMajorType(t *testing.T) {
	newD := districtAt("new", city.TypeResidential, 100, 100, 10)

	minor := []city.District{districtAt("res", city.TypeResidential, 130, 100, 10)}
	result, _ := ConnectDistrict(newD, minor, terrain.TerrainData{},
		config.ConnectConfig{}, city.NewIDSource(), 0)
	if result.Roads[0].Class != city.ClassCollector {
		t.Errorf("residential-residential link should be collector, got %s", result.Roads[0].Class)
	}

	major := []city.District{districtAt("dt", city.TypeDowntown, 130, 100, 10)}
	result, _ = ConnectDistrict(newD, major, terrain.TerrainData{},
		config.ConnectConfig{}, city.NewIDSource(), 0)
	if result.Roads[0].Class != city.ClassArterial {
		t.Errorf("link to downtown should be arterial, got %s", result.Roads[0].Class)
	}
}

func TestConnectDistrictSkipsRedundant(t *testing.T) {
	// Two districts side by side: once the nearer is connected, the one
	// just behind it is redundant (its distance to the connected district
	// is far less than half its own link distance).
	newD := districtAt("new", city.TypeResidential, 0, 0, 5)
	existing := []city.District{
		districtAt("a", city.TypeResidential, 60, 0, 5),
		districtAt("b", city.TypeResidential, 75, 0, 5),
	}
	result, _ := ConnectDistrict(newD, existing, terrain.TerrainData{},
		config.ConnectConfig{}, city.NewIDSource(), 0)

	if len(result.Roads) != 1 {
		t.Errorf("redundant near-parallel link should be skipped, got %d links", len(result.Roads))
	}
}

func TestConnectDistrictMaxLinks(t *testing.T) {
	newD := districtAt("new", city.TypeResidential, 0, 0, 5)
	var existing []city.District
	// A ring of well-separated districts, all inside the cap.
	positions := [][2]float64{{80, 0}, {0, 80}, {-80, 0}, {0, -80}, {60, 60}, {-60, 60}}
	for i, p := range positions {
		existing = append(existing, districtAt(
			string(rune('a'+i)), city.TypeDowntown, p[0], p[1], 5))
	}
	result, _ := ConnectDistrict(newD, existing, terrain.TerrainData{},
		config.ConnectConfig{}, city.NewIDSource(), 0)

	// 1 mandatory + at most 3 extras.
	if len(result.Roads) > 4 {
		t.Errorf("expected at most 4 links, got %d", len(result.Roads))
	}
}

func TestRouteAroundWater(t *testing.T) {
	lake := terrain.WaterFeature{
		ID: "lake",
		Polygon: geo.NewPolygon(
			geo.Pt(40, 30), geo.Pt(60, 30), geo.Pt(60, 70), geo.Pt(40, 70)),
	}
	terr := terrain.TerrainData{Water: []terrain.WaterFeature{lake}}

	points := routeAroundWater(geo.Pt(0, 50), geo.Pt(100, 50), terr)
	if len(points) != 3 {
		t.Fatalf("expected a waypoint detour, got %d points", len(points))
	}
	for i := 1; i < len(points); i++ {
		if terr.SegmentCrossesWater(points[i-1], points[i]) {
			t.Error("detour sub-segment still crosses water")
		}
	}
}

func TestRouteAroundWaterFallsBackToDirect(t *testing.T) {
	// A central lake blocks the direct path and flanking lakes cover both
	// perpendicular waypoints: the direct crossing is kept for the bridge
	// pass to resolve.
	center := terrain.WaterFeature{
		ID: "center",
		Polygon: geo.NewPolygon(
			geo.Pt(40, 40), geo.Pt(60, 40), geo.Pt(60, 60), geo.Pt(40, 60)),
	}
	north := terrain.WaterFeature{
		ID: "north",
		Polygon: geo.NewPolygon(
			geo.Pt(45, 62), geo.Pt(55, 62), geo.Pt(55, 72), geo.Pt(45, 72)),
	}
	south := terrain.WaterFeature{
		ID: "south",
		Polygon: geo.NewPolygon(
			geo.Pt(45, 28), geo.Pt(55, 28), geo.Pt(55, 38), geo.Pt(45, 38)),
	}
	terr := terrain.TerrainData{Water: []terrain.WaterFeature{center, north, south}}

	points := routeAroundWater(geo.Pt(0, 50), geo.Pt(100, 50), terr)
	if len(points) != 2 {
		t.Errorf("blocked detours should keep the direct path, got %d points", len(points))
	}
}

func TestEnforceArterialAdjacencyAlreadyServed(t *testing.T) {
	poi := city.POI{ID: "h1", Type: city.POIHospital, Position: geo.Pt(50, 50)}
	arterial := city.Road{
		ID:    "a1",
		Class: city.ClassArterial,
		Line:  geo.NewPolyline(geo.Pt(0, 50.2), geo.Pt(100, 50.2)),
	}
	roads, _ := EnforceArterialAdjacency(poi, nil, []city.Road{arterial},
		config.ConnectConfig{}, city.NewIDSource())
	if len(roads) != 0 {
		t.Error("POI within arterial radius needs no connectors")
	}
}

func TestEnforceArterialAdjacencyGeneratesConnectors(t *testing.T) {
	poi := city.POI{ID: "u1", Type: city.POIUniversity, Position: geo.Pt(50, 50)}
	districts := []city.District{
		districtAt("d1", city.TypeDowntown, 100, 50, 10),
		districtAt("d2", city.TypeResidential, 50, 120, 10),
		districtAt("d3", city.TypeResidential, 200, 200, 10),
		districtAt("d4", city.TypeResidential, 300, 300, 10),
	}
	roads, _ := EnforceArterialAdjacency(poi, districts, nil,
		config.ConnectConfig{}, city.NewIDSource())

	if len(roads) == 0 || len(roads) > 3 {
		t.Fatalf("expected 1-3 connectors, got %d", len(roads))
	}
	for _, r := range roads {
		if r.Class != city.ClassArterial {
			t.Errorf("connector %s class %s, want arterial", r.ID, r.Class)
		}
	}
	// Nearest district first.
	if roads[0].End().Distance(geo.Pt(100, 50)) > 1 {
		t.Errorf("first connector should reach the nearest district, got %v", roads[0].End())
	}
}

func TestEnforceArterialAdjacencyIgnoresStations(t *testing.T) {
	poi := city.POI{ID: "s1", Type: city.POIStation, Position: geo.Pt(50, 50)}
	roads, _ := EnforceArterialAdjacency(poi, nil, nil,
		config.ConnectConfig{}, city.NewIDSource())
	if len(roads) != 0 {
		t.Error("stations do not require arterial adjacency")
	}
}

func stitchFixture(t *testing.T) (city.District, city.District, []city.Road) {
	t.Helper()
	a := districtAt("a", city.TypeResidential, 0, 0, 10)
	b := districtAt("b", city.TypeResidential, 22, 0, 10)
	roads := []city.Road{
		{ID: "a1", DistrictID: "a", Class: city.ClassCollector,
			Line: geo.NewPolyline(geo.Pt(-10, 0), geo.Pt(10, 0))},
		{ID: "a2", DistrictID: "a", Class: city.ClassCollector,
			Line: geo.NewPolyline(geo.Pt(-10, 5), geo.Pt(10, 5))},
		{ID: "a3", DistrictID: "a", Class: city.ClassLocal,
			Line: geo.NewPolyline(geo.Pt(-10, 2), geo.Pt(10, 2))},
		{ID: "b1", DistrictID: "b", Class: city.ClassCollector,
			Line: geo.NewPolyline(geo.Pt(12, 0), geo.Pt(32, 0))},
		{ID: "b2", DistrictID: "b", Class: city.ClassCollector,
			Line: geo.NewPolyline(geo.Pt(12, 5), geo.Pt(32, 5))},
		{ID: "b3", DistrictID: "b", Class: city.ClassLocal,
			Line: geo.NewPolyline(geo.Pt(12, 2), geo.Pt(32, 2))},
	}
	return a, b, roads
}

func TestStitchDistricts(t *testing.T) {
	a, b, roads := stitchFixture(t)
	connectors, _ := StitchDistricts(a, b, roads, config.StitchConfig{}, city.NewIDSource())

	if len(connectors) == 0 {
		t.Fatal("adjacent districts should be stitched")
	}
	for _, c := range connectors {
		if c.Class != city.ClassCollector {
			t.Errorf("stitch connector %s class %s, want collector", c.ID, c.Class)
		}
	}
}

func TestStitchSkipsLocals(t *testing.T) {
	a, b, roads := stitchFixture(t)
	connectors, _ := StitchDistricts(a, b, roads, config.StitchConfig{}, city.NewIDSource())

	// The local endpoints at y=2 are 2 units apart, far closer than any
	// collector pair; if locals were stitched we would see a connector at
	// that height.
	for _, c := range connectors {
		for _, pt := range c.Line.Points {
			if pt.Y > 1.5 && pt.Y < 2.5 {
				t.Errorf("local street endpoint was stitched at %v", pt)
			}
		}
	}
}

func TestStitchEndpointsUsedOnce(t *testing.T) {
	a, b, roads := stitchFixture(t)
	connectors, _ := StitchDistricts(a, b, roads, config.StitchConfig{}, city.NewIDSource())

	seen := map[geo.Point]int{}
	for _, c := range connectors {
		seen[c.Start()]++
		seen[c.End()]++
	}
	for pt, n := range seen {
		if n > 1 {
			t.Errorf("endpoint %v used %d times", pt, n)
		}
	}
}

func TestStitchRequiresAdjacency(t *testing.T) {
	a := districtAt("a", city.TypeResidential, 0, 0, 10)
	b := districtAt("b", city.TypeResidential, 500, 0, 10)
	connectors, _ := StitchDistricts(a, b, nil, config.StitchConfig{}, city.NewIDSource())
	if len(connectors) != 0 {
		t.Error("distant districts should not be stitched")
	}
}

func TestStitchDeterministicOrder(t *testing.T) {
	a, b, roads := stitchFixture(t)
	c1, _ := StitchDistricts(a, b, roads, config.StitchConfig{}, city.NewIDSource())
	c2, _ := StitchDistricts(a, b, roads, config.StitchConfig{}, city.NewIDSource())

	if len(c1) != len(c2) {
		t.Fatal("stitch counts differ between runs")
	}
	for i := range c1 {
		if c1[i].Start() != c2[i].Start() || c1[i].End() != c2[i].End() {
			t.Error("stitch output order must not depend on map iteration")
		}
	}
}

func TestStationAccessFarStation(t *testing.T) {
	station := city.POI{ID: "s1", Type: city.POIStation, Position: geo.Pt(50, 50)}
	road := city.Road{ID: "r1", Class: city.ClassLocal,
		Line: geo.NewPolyline(geo.Pt(0, 0), geo.Pt(100, 0))}

	access, _ := EnsureStationAccess(station, []city.Road{road},
		config.ConnectConfig{}, city.NewIDSource())
	if access == nil {
		t.Fatal("station 50 units from the network should get an access road")
	}
	if access.Class != city.ClassLocal {
		t.Errorf("access road class %s, want local", access.Class)
	}
	// It should land on the closest point of the nearest segment.
	if access.End().Distance(geo.Pt(50, 0)) > 1 {
		t.Errorf("access road should reach (50,0), got %v", access.End())
	}
}

func TestStationAccessNearStation(t *testing.T) {
	station := city.POI{ID: "s1", Type: city.POIStation, Position: geo.Pt(50, 3)}
	road := city.Road{ID: "r1", Class: city.ClassLocal,
		Line: geo.NewPolyline(geo.Pt(0, 0), geo.Pt(100, 0))}

	access, _ := EnsureStationAccess(station, []city.Road{road},
		config.ConnectConfig{}, city.NewIDSource())
	if access != nil {
		t.Error("station within 5 units needs no access road")
	}
}
