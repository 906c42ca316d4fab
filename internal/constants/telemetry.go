package constants

// Telemetry payload constants.
const (
	// GPSSignalAvailable is the fixed GPS signal state reported by the
	// simulated tag.
	GPSSignalAvailable = "Available"

	// DeviceHeartbeat is the fixed heartbeat value reported in the
	// device status block.
	DeviceHeartbeat = 2
)
