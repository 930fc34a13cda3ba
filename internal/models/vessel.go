package models

// Position is a latitude/longitude pair in decimal degrees.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// VesselRecord is one entry of the SignalK vessel registry.
// Position is nil when the vessel has not reported one.
type VesselRecord struct {
	ID       string    // Registry key, e.g. "urn:mrn:imo:mmsi:230099999"
	Position *Position // Last reported position
	AISClass string    // AIS transponder class ("A", "B", "BASE", ...)
}

// HasPosition reports whether the vessel has a known position.
func (v VesselRecord) HasPosition() bool {
	return v.Position != nil
}

// Registry maps a vessel identifier to its record.
type Registry map[string]VesselRecord

// NearestVessel is the closest AIS contact to our own vessel.
type NearestVessel struct {
	MMSI           string
	VesselClass    string
	DistanceMeters float64
}
