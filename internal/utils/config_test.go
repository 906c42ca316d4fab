package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trufurrs/tagsim/internal/utils"
	"github.com/trufurrs/tagsim/pkg/file"
)

// TestDefaultConfig tests the compiled-in defaults the simulator runs with
// when no config file is present.
func TestDefaultConfig(t *testing.T) {
	config := utils.DefaultConfig()

	assert.Equal(t, "trufurrs/active/telemetry", config.MQTT.Topic)
	assert.Equal(t, 2, config.MQTT.QOS)
	assert.Equal(t, 150, config.Simulation.DurationMinutes)
	assert.Equal(t, 60*time.Second, config.Simulation.Interval)
	assert.Equal(t, 12.860855, config.Simulation.BaseLatitude)
	assert.Equal(t, 77.659462, config.Simulation.BaseLongitude)
	assert.Equal(t, "FENCE001", config.Fence.ID)
	assert.Equal(t, 20.0, config.Fence.RadiusM)

	// The alert vocabulary encodes a 4:1:1 no-alert bias by repetition.
	assert.Len(t, config.Simulation.AlertIDs, 6)
	empty := 0
	for _, id := range config.Simulation.AlertIDs {
		if id == "" {
			empty++
		}
	}
	assert.Equal(t, 4, empty)
}

// TestLoadConfig_MissingFileReturnsDefaults tests the fallback when the
// config file does not exist.
func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	config, err := utils.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), file.NewFileService())

	assert.NoError(t, err)
	assert.Equal(t, utils.DefaultConfig(), config)
}

// TestLoadConfig_OverlaysFileOnDefaults tests that a partial YAML file
// overrides only the fields it names.
func TestLoadConfig_OverlaysFileOnDefaults(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "mqtt:\n  topic: \"test/telemetry\"\nsimulation:\n  duration_minutes: 3\n"
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	// Execute
	config, err := utils.LoadConfig(path, file.NewFileService())

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "test/telemetry", config.MQTT.Topic)
	assert.Equal(t, 3, config.Simulation.DurationMinutes)
	assert.Equal(t, utils.DefaultConfig().MQTT.Broker, config.MQTT.Broker)
	assert.Equal(t, utils.DefaultConfig().Fence.RadiusM, config.Fence.RadiusM)
}
