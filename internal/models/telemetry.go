package models

// Telemetry is the full message published per cycle. Field names match
// the schema the TruFurrs backend ingests.
type Telemetry struct {
	DeviceID        string       `json:"device_id"`
	FirmwareVersion string       `json:"firmware_version"`
	PetID           string       `json:"pet_id"`
	UserID          string       `json:"user_id"`
	AlertID         string       `json:"alert_id"`
	Location        Location     `json:"location"`
	Device          DeviceStatus `json:"device"`
	Fence           FenceStatus  `json:"fence"`
}

// Location carries the sampled GPS reading and its capture time.
type Location struct {
	GPSSignal string  `json:"GPS_signal"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Altitude  float64 `json:"altitude"`
	Timestamp string  `json:"timestamp"`
}

// DeviceStatus carries the fabricated device health readings.
type DeviceStatus struct {
	BatteryLevel float64 `json:"battery_level"`
	StepCount    int     `json:"step_count"`
	Heartbeat    int     `json:"heartbeat"`
}

// FenceStatus carries the geofence evaluation for the sampled location.
type FenceStatus struct {
	FenceID   string  `json:"fence_id"`
	Status    string  `json:"status"`
	CenterLat float64 `json:"center_lat"`
	CenterLon float64 `json:"center_lon"`
	RadiusM   float64 `json:"radius_m"`
	DistanceM float64 `json:"distance_m"`
}
