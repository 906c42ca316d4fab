package identity_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trufurrs/tagsim/pkg/file"
	"github.com/trufurrs/tagsim/pkg/identity"
)

// TestTagInfo_LoadTagInfo_NoFileKeepsDefaults tests that an empty file path
// leaves the compiled-in identity in place.
func TestTagInfo_LoadTagInfo_NoFileKeepsDefaults(t *testing.T) {
	// Setup
	defaults := identity.Identity{
		DeviceID:        "device-1",
		PetID:           "pet-1",
		UserID:          "user-1",
		FirmwareVersion: "Tag-Active",
	}
	tagInfo := identity.NewTagInfo("", defaults, file.NewFileService())

	// Execute
	err := tagInfo.LoadTagInfo()

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "device-1", tagInfo.GetDeviceID())
	assert.Equal(t, defaults, *tagInfo.GetIdentity())
}

// TestTagInfo_LoadTagInfo_MissingFileKeepsDefaults tests the fallback when
// the configured identity file does not exist.
func TestTagInfo_LoadTagInfo_MissingFileKeepsDefaults(t *testing.T) {
	defaults := identity.Identity{DeviceID: "device-1"}
	tagInfo := identity.NewTagInfo(filepath.Join(t.TempDir(), "missing.json"), defaults, file.NewFileService())

	err := tagInfo.LoadTagInfo()

	assert.NoError(t, err)
	assert.Equal(t, "device-1", tagInfo.GetDeviceID())
}

// TestTagInfo_LoadTagInfo_ReadsFile tests loading the identity from a JSON
// file.
func TestTagInfo_LoadTagInfo_ReadsFile(t *testing.T) {
	// Setup
	path := filepath.Join(t.TempDir(), "tag.json")
	contents := `{"device_id":"device-2","pet_id":"pet-2","user_id":"user-2","firmware_version":"Tag-Beta"}`
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	tagInfo := identity.NewTagInfo(path, identity.Identity{DeviceID: "device-1"}, file.NewFileService())

	// Execute
	err := tagInfo.LoadTagInfo()

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "device-2", tagInfo.GetDeviceID())
	assert.Equal(t, "pet-2", tagInfo.GetIdentity().PetID)
	assert.Equal(t, "user-2", tagInfo.GetIdentity().UserID)
	assert.Equal(t, "Tag-Beta", tagInfo.GetIdentity().FirmwareVersion)
}
