package constants

// Redis key formats
const (
	// GeoHash set of available technician positions, member = technician id hex
	KeyTechnicianGeo = "technicians:geo"

	// Format: technician:location:{technician_id}, hash of last reported position
	KeyTechnicianLocation = "technician:location:%s"
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldGeohash   = "geohash"
	FieldUpdatedAt = "updated_at"
)
