// Package config defines the option records that parameterize generation
// and detection. Defaults are applied field-by-field by explicit resolver
// functions; an explicitly set field always wins over a value computed from
// scale settings.
package config

import (
	"github.com/kdenny/city-doodle-sub000/pkg/city"
)

// ScaleSettings maps editor-level sizing sliders to world measurements.
type ScaleSettings struct {
	// BlockSizeMeters overrides the per-type base block size when set.
	BlockSizeMeters float64 `yaml:"block_size_meters"`
	// DistrictSizeMeters is the nominal district diameter.
	DistrictSizeMeters float64 `yaml:"district_size_meters"`
	// SprawlCompact is in [0,1]: 0 sprawling, 1 compact.
	SprawlCompact float64 `yaml:"sprawl_compact"`
}

// DefaultScaleSettings returns the neutral scale profile.
func DefaultScaleSettings() ScaleSettings {
	return ScaleSettings{
		DistrictSizeMeters: 2500,
		SprawlCompact:      0.5,
	}
}

// Density maps SprawlCompact into the 0–10 density scale.
func (s ScaleSettings) Density() float64 {
	return s.SprawlCompact * 10
}

// SizeMultiplier returns the district size multiplier: 1.5 at full sprawl
// down to 0.7 at full compactness.
func (s ScaleSettings) SizeMultiplier() float64 {
	return 1.5 - s.SprawlCompact*0.8
}

// DistrictGenerationConfig parameterizes a single district generation call.
// Zero-valued fields are resolved from the district type table and scale
// settings.
type DistrictGenerationConfig struct {
	// Size fixes the district radius in world units; overrides Min/MaxSize.
	Size float64 `yaml:"size"`
	// MinSize and MaxSize bound the random radius draw, in world units.
	MinSize float64 `yaml:"min_size"`
	MaxSize float64 `yaml:"max_size"`
	// PolygonPoints is the vertex count for organic footprints.
	PolygonPoints int `yaml:"polygon_points"`
	// OrganicFactor is the radial variance of organic footprints in [0,1].
	OrganicFactor float64 `yaml:"organic_factor"`
	// StreetSpacing fixes grid spacing in world units; overrides the
	// type-table block size.
	StreetSpacing float64 `yaml:"street_spacing"`
	// Scale supplies the computed defaults when explicit fields are unset.
	Scale ScaleSettings `yaml:"scale"`
	// Seed overrides position-derived seeding when non-zero.
	Seed int64 `yaml:"seed"`
}

// ResolvedDistrict is a DistrictGenerationConfig with every field decided.
type ResolvedDistrict struct {
	MinSize       float64
	MaxSize       float64
	PolygonPoints int
	OrganicFactor float64
	StreetSpacing float64
	Seed          int64
}

// ResolveDistrict applies defaults for a district type, field by field.
// Explicit values override computed ones.
func ResolveDistrict(cfg DistrictGenerationConfig, dtype city.DistrictType) ResolvedDistrict {
	spec := city.SpecFor(dtype)
	scale := cfg.Scale
	if scale == (ScaleSettings{}) {
		scale = DefaultScaleSettings()
	}

	out := ResolvedDistrict{Seed: cfg.Seed}

	mult := scale.SizeMultiplier() * spec.SizeScale
	base := city.MetersToUnits(scale.DistrictSizeMeters) / 2
	out.MinSize = base * 0.7 * mult
	out.MaxSize = base * 1.3 * mult
	if cfg.MinSize > 0 {
		out.MinSize = cfg.MinSize
	}
	if cfg.MaxSize > 0 {
		out.MaxSize = cfg.MaxSize
	}
	if cfg.Size > 0 {
		out.MinSize = cfg.Size
		out.MaxSize = cfg.Size
	}
	if out.MaxSize < out.MinSize {
		out.MaxSize = out.MinSize
	}

	out.PolygonPoints = 8
	if spec.Shape == city.ShapeOrganic {
		out.PolygonPoints = 10
	}
	if cfg.PolygonPoints >= 3 {
		out.PolygonPoints = cfg.PolygonPoints
	}

	out.OrganicFactor = 0.25
	if cfg.OrganicFactor > 0 {
		out.OrganicFactor = cfg.OrganicFactor
	}

	blockM := spec.BlockSizeMeters
	if scale.BlockSizeMeters > 0 {
		blockM = scale.BlockSizeMeters
	}
	if blockM > 0 {
		out.StreetSpacing = city.MetersToUnits(blockM)
	}
	if cfg.StreetSpacing > 0 {
		out.StreetSpacing = cfg.StreetSpacing
	}

	return out
}

// BridgeDetectionConfig parameterizes the bridge pass.
type BridgeDetectionConfig struct {
	// MaxBridgesPerDistrict is accepted but not enforced. The original
	// design documents a per-district cap that was never implemented;
	// the field is kept so configs round-trip, pending a decision.
	MaxBridgesPerDistrict int `yaml:"max_bridges_per_district"`
	// MinBridgeLength drops crossings shorter than this, in world units.
	MinBridgeLength float64 `yaml:"min_bridge_length"`
}

// ResolveBridge applies bridge-pass defaults field by field.
func ResolveBridge(cfg BridgeDetectionConfig) BridgeDetectionConfig {
	if cfg.MaxBridgesPerDistrict == 0 {
		cfg.MaxBridgesPerDistrict = 2
	}
	if cfg.MinBridgeLength == 0 {
		cfg.MinBridgeLength = 5
	}
	return cfg
}

// WaterfrontDetectionConfig parameterizes waterfront classification.
type WaterfrontDetectionConfig struct {
	// WaterfrontThreshold is the water proximity distance in world units.
	WaterfrontThreshold float64 `yaml:"waterfront_threshold"`
	// BoardwalkThreshold is the tighter beach proximity distance.
	BoardwalkThreshold float64 `yaml:"boardwalk_threshold"`
	// MinWaterfrontFraction is the sample fraction needed to classify.
	MinWaterfrontFraction float64 `yaml:"min_waterfront_fraction"`
	// SampleCount is the number of points sampled along each road.
	SampleCount int `yaml:"sample_count"`
}

// ResolveWaterfront applies waterfront-pass defaults field by field.
func ResolveWaterfront(cfg WaterfrontDetectionConfig) WaterfrontDetectionConfig {
	if cfg.WaterfrontThreshold == 0 {
		cfg.WaterfrontThreshold = 5
	}
	if cfg.BoardwalkThreshold == 0 {
		cfg.BoardwalkThreshold = 3
	}
	if cfg.MinWaterfrontFraction == 0 {
		cfg.MinWaterfrontFraction = 0.4
	}
	if cfg.SampleCount == 0 {
		cfg.SampleCount = 8
	}
	return cfg
}

// ConnectConfig parameterizes inter-district road generation.
type ConnectConfig struct {
	// MaxExtraLinks caps the optional connections beyond the mandatory
	// nearest-neighbor link.
	MaxExtraLinks int `yaml:"max_extra_links"`
	// MaxLinkDistance caps the distance of optional connections.
	MaxLinkDistance float64 `yaml:"max_link_distance"`
	// InterstateLength is the length at which a link is named I-N and
	// promoted to highway class.
	InterstateLength float64 `yaml:"interstate_length"`
	// USRouteLength is the length at which a link is named US-N.
	USRouteLength float64 `yaml:"us_route_length"`
	// SearchRadius is how far park/station connectors look for a road.
	SearchRadius float64 `yaml:"search_radius"`
	// ArterialRadius is the arterial adjacency requirement distance.
	ArterialRadius float64 `yaml:"arterial_radius"`
	// StationRadius is the distance beyond which a station gets an
	// access road.
	StationRadius float64 `yaml:"station_radius"`
}

// ResolveConnect applies connectivity defaults field by field.
func ResolveConnect(cfg ConnectConfig) ConnectConfig {
	if cfg.MaxExtraLinks == 0 {
		cfg.MaxExtraLinks = 3
	}
	if cfg.MaxLinkDistance == 0 {
		cfg.MaxLinkDistance = 150
	}
	if cfg.InterstateLength == 0 {
		cfg.InterstateLength = 120
	}
	if cfg.USRouteLength == 0 {
		cfg.USRouteLength = 75
	}
	if cfg.SearchRadius == 0 {
		cfg.SearchRadius = 50
	}
	if cfg.ArterialRadius == 0 {
		cfg.ArterialRadius = 0.5
	}
	if cfg.StationRadius == 0 {
		cfg.StationRadius = 5
	}
	return cfg
}

// StitchConfig parameterizes cross-boundary collector stitching.
type StitchConfig struct {
	// AdjacencyThreshold is the max vertex-to-vertex distance at which two
	// districts count as neighbors.
	AdjacencyThreshold float64 `yaml:"adjacency_threshold"`
	// MaxLinksPerPair caps connectors between one district pair.
	MaxLinksPerPair int `yaml:"max_links_per_pair"`
	// MaxEndpointDistance caps the length of a single stitch connector.
	MaxEndpointDistance float64 `yaml:"max_endpoint_distance"`
}

// ResolveStitch applies stitching defaults field by field.
func ResolveStitch(cfg StitchConfig) StitchConfig {
	if cfg.AdjacencyThreshold == 0 {
		cfg.AdjacencyThreshold = 20
	}
	if cfg.MaxLinksPerPair == 0 {
		cfg.MaxLinksPerPair = 4
	}
	if cfg.MaxEndpointDistance == 0 {
		cfg.MaxEndpointDistance = 15
	}
	return cfg
}
