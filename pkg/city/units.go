package city

// The world is 768 units across, representing 50 miles.
const (
	worldUnits  = 768.0
	worldMiles  = 50.0
	metersMile  = 1609.344
	worldMeters = worldMiles * metersMile

	// MetersPerUnit converts world units to meters (~104.75 m/unit).
	MetersPerUnit = worldMeters / worldUnits
)

// MetersToUnits converts a length in meters to world units.
func MetersToUnits(m float64) float64 {
	return m / MetersPerUnit
}

// UnitsToMeters converts a length in world units to meters.
func UnitsToMeters(u float64) float64 {
	return u * MetersPerUnit
}
