package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/kdenny/city-doodle-sub000/pkg/city"
	"github.com/kdenny/city-doodle-sub000/pkg/terrain"
)

// Placement is one feature placement event in a project file.
type Placement struct {
	// Type is one of district, park, airport, poi, station.
	Type string `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	// DistrictType applies to district placements.
	DistrictType city.DistrictType `yaml:"district_type"`
	// POIType applies to poi placements.
	POIType city.POIType `yaml:"poi_type"`
	// ParkSize is the park footprint preset (pocket through city).
	ParkSize string `yaml:"park_size"`
	// FeatureDensity drives park ponds and trails, in [0,1].
	FeatureDensity float64 `yaml:"feature_density"`
	// Name labels the placed feature.
	Name string `yaml:"name"`
	// Seed overrides the position-derived seed when non-zero.
	Seed int64 `yaml:"seed"`
}

// Project is a full city project file: terrain profile, scale settings, and
// an ordered list of placements.
type Project struct {
	Seed       int64                     `yaml:"seed"`
	Scale      ScaleSettings             `yaml:"scale"`
	Terrain    terrain.SynthConfig       `yaml:"terrain"`
	Bridges    BridgeDetectionConfig     `yaml:"bridges"`
	Waterfront WaterfrontDetectionConfig `yaml:"waterfront"`
	Connect    ConnectConfig             `yaml:"connect"`
	Stitch     StitchConfig              `yaml:"stitch"`
	Placements []Placement               `yaml:"placements"`
}

// Load reads a project from a YAML file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading project file")
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "parsing project YAML")
	}
	return &p, nil
}

// LoadProject loads a project from a directory, looking for city.yaml.
func LoadProject(projectDir string) (*Project, error) {
	return Load(filepath.Join(projectDir, "city.yaml"))
}

// ErrNoPlacements is returned for a project with nothing to place.
var ErrNoPlacements = errors.New("project has no placements")

// Validate checks a project for structural problems before generation.
func (p *Project) Validate() error {
	if len(p.Placements) == 0 {
		return ErrNoPlacements
	}
	if p.Scale.SprawlCompact < 0 || p.Scale.SprawlCompact > 1 {
		return errors.Errorf("sprawl_compact %v out of [0,1]", p.Scale.SprawlCompact)
	}
	for i, pl := range p.Placements {
		switch pl.Type {
		case "district":
			if pl.DistrictType == "" {
				return errors.Errorf("placement %d: district without district_type", i)
			}
		case "park", "airport", "station":
		case "poi":
			if pl.POIType == "" {
				return errors.Errorf("placement %d: poi without poi_type", i)
			}
		default:
			return errors.Errorf("placement %d: unknown type %q", i, pl.Type)
		}
	}
	return nil
}
