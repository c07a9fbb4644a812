package models

// GeoPointType is the only GeoJSON geometry kind stored on entities.
const GeoPointType = "Point"

// GeoLocation is a GeoJSON point with free-text address fields.
// Coordinates are always ordered [longitude, latitude]. The default
// [0, 0] pair means "no location set" and must not be treated as a
// real position.
type GeoLocation struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	City        string    `bson:"city,omitempty" json:"city,omitempty"`
	Governorate string    `bson:"governorate,omitempty" json:"governorate,omitempty"`
}

// UnsetLocation returns the default location for documents created
// without coordinates.
func UnsetLocation() GeoLocation {
	return GeoLocation{
		Type:        GeoPointType,
		Coordinates: []float64{0, 0},
	}
}

// IsSet reports whether the location holds real coordinates.
func (l GeoLocation) IsSet() bool {
	return len(l.Coordinates) == 2 && (l.Coordinates[0] != 0 || l.Coordinates[1] != 0)
}

// Longitude returns the first coordinate, or 0 when unset.
func (l GeoLocation) Longitude() float64 {
	if len(l.Coordinates) != 2 {
		return 0
	}
	return l.Coordinates[0]
}

// Latitude returns the second coordinate, or 0 when unset.
func (l GeoLocation) Latitude() float64 {
	if len(l.Coordinates) != 2 {
		return 0
	}
	return l.Coordinates[1]
}

// ValidCoordinates reports whether the pair lies within the WGS84 range.
func ValidCoordinates(longitude, latitude float64) bool {
	return longitude >= -180 && longitude <= 180 && latitude >= -90 && latitude <= 90
}
