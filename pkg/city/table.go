package city

// ShapeStyle selects how a district footprint is built.
type ShapeStyle string

const (
	ShapeRoundedRect ShapeStyle = "rounded_rect"
	ShapeOrganic     ShapeStyle = "organic"
)

// TypeSpec is the per-district-type generation profile.
type TypeSpec struct {
	// BlockSizeMeters is the base street-grid spacing in meters.
	BlockSizeMeters float64
	// Shape selects the footprint builder.
	Shape ShapeStyle
	// Major marks types whose inter-district connections are arterial.
	Major bool
	// Grid is false for types that get no internal street grid.
	Grid bool
	// SizeScale multiplies the configured district size range.
	SizeScale float64
}

// typeTable is the generation profile per district type.
var typeTable = map[DistrictType]TypeSpec{
	TypeDowntown:    {BlockSizeMeters: 60, Shape: ShapeRoundedRect, Major: true, Grid: true, SizeScale: 1.0},
	TypeMixedUse:    {BlockSizeMeters: 90, Shape: ShapeOrganic, Major: false, Grid: true, SizeScale: 1.0},
	TypeCommercial:  {BlockSizeMeters: 100, Shape: ShapeRoundedRect, Major: true, Grid: true, SizeScale: 1.0},
	TypeResidential: {BlockSizeMeters: 120, Shape: ShapeOrganic, Major: false, Grid: true, SizeScale: 1.0},
	TypeIndustrial:  {BlockSizeMeters: 200, Shape: ShapeOrganic, Major: true, Grid: true, SizeScale: 1.1},
	TypePark:        {Shape: ShapeOrganic, Major: false, Grid: false, SizeScale: 1.3},
	TypeAirport:     {Shape: ShapeOrganic, Major: true, Grid: false, SizeScale: 1.5},
}

// SpecFor returns the generation profile for a district type. Unknown types
// fall back to the residential profile.
func SpecFor(t DistrictType) TypeSpec {
	if spec, ok := typeTable[t]; ok {
		return spec
	}
	return typeTable[TypeResidential]
}

// IsMajor reports whether the district type is a "major" destination for
// connectivity purposes (arterial-class links).
func IsMajor(t DistrictType) bool {
	return SpecFor(t).Major
}
