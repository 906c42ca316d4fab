package utils

import (
	"time"

	"github.com/trufurrs/tagsim/pkg/file"
)

// Config represents the structure of the configuration file.
type Config struct {
	MQTT struct {
		Broker   string `yaml:"broker"`    // MQTT broker address
		ClientID string `yaml:"client_id"` // MQTT client ID prefix
		Username string `yaml:"username"`  // Broker username
		Password string `yaml:"password"`  // Broker password
		Topic    string `yaml:"topic"`     // Topic telemetry is published to
		QOS      int    `yaml:"qos"`       // MQTT QoS level for telemetry messages
	} `yaml:"mqtt"`

	Identity struct {
		TagFile         string `yaml:"tag_file"`         // Optional JSON file overriding the identity below
		DeviceID        string `yaml:"device_id"`        // Simulated device ID
		PetID           string `yaml:"pet_id"`           // Pet the device is attached to
		UserID          string `yaml:"user_id"`          // Owning user account
		FirmwareVersion string `yaml:"firmware_version"` // Firmware tag reported in every message
	} `yaml:"identity"`

	Simulation struct {
		DurationMinutes int           `yaml:"duration_minutes"` // Run length; one message per minute
		Interval        time.Duration `yaml:"interval"`         // Delay between messages
		StartupDelay    time.Duration `yaml:"startup_delay"`    // Settle time after connect, before the first publish
		BaseLatitude    float64       `yaml:"base_latitude"`    // Base location the samples jitter around
		BaseLongitude   float64       `yaml:"base_longitude"`
		BaseAltitude    float64       `yaml:"base_altitude"`
		LatJitter       float64       `yaml:"lat_jitter"` // Max perturbation per axis
		LonJitter       float64       `yaml:"lon_jitter"`
		AltJitter       float64       `yaml:"alt_jitter"`
		AlertIDs        []string      `yaml:"alert_ids"` // Drawn uniformly; repetition encodes the no-alert bias
	} `yaml:"simulation"`

	Fence struct {
		ID        string  `yaml:"id"`         // Fence identifier reported in telemetry
		CenterLat float64 `yaml:"center_lat"` // Fence center
		CenterLon float64 `yaml:"center_lon"`
		RadiusM   float64 `yaml:"radius_m"` // Fence radius in meters
	} `yaml:"fence"`
}

// DefaultConfig returns the compiled-in configuration matching the
// TruFurrs staging broker and test tag.
func DefaultConfig() Config {
	var config Config

	config.MQTT.Broker = "tcp://mqtt.therednerds.com:1883"
	config.MQTT.ClientID = "tagsim"
	config.MQTT.Username = "pettracker"
	config.MQTT.Password = "Trufurrs123"
	config.MQTT.Topic = "trufurrs/active/telemetry"
	config.MQTT.QOS = 2

	config.Identity.DeviceID = "e9774B0cbF604C1d8A82"
	config.Identity.PetID = "CAE1530A53FA43D297BB"
	config.Identity.UserID = "4No48hqwn9OhfAJ6PyFuJVWo9Az1"
	config.Identity.FirmwareVersion = "Tag-Active"

	config.Simulation.DurationMinutes = 150
	config.Simulation.Interval = 60 * time.Second
	config.Simulation.StartupDelay = 2 * time.Second
	config.Simulation.BaseLatitude = 12.860855
	config.Simulation.BaseLongitude = 77.659462
	config.Simulation.BaseAltitude = 864.14
	config.Simulation.LatJitter = 0.0001 // ~11 meters
	config.Simulation.LonJitter = 0.0001 // ~11 meters
	config.Simulation.AltJitter = 2.0    // meters
	config.Simulation.AlertIDs = []string{
		"", // No alert (most common)
		"",
		"",
		"",
		"ALR-BAT-001", // Battery low
		"ALT-LOC-001", // Out of zone
	}

	config.Fence.ID = "FENCE001"
	config.Fence.CenterLat = 12.860779
	config.Fence.CenterLon = 77.659538
	config.Fence.RadiusM = 20.0

	return config
}

// LoadConfig loads the YAML configuration from the specified file on top of
// the compiled-in defaults. A missing file leaves the defaults untouched.
func LoadConfig(filename string, fileClient file.FileOperations) (Config, error) {
	config := DefaultConfig()

	if filename == "" {
		return config, nil
	}

	exists, err := fileClient.IsFileExists(filename)
	if err != nil {
		return config, err
	}
	if !exists {
		return config, nil
	}

	if err := fileClient.ReadYamlFile(filename, &config); err != nil {
		return config, err
	}

	return config, nil
}
