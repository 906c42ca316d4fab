package identity

import (
	"os"

	"github.com/trufurrs/tagsim/pkg/file"
)

// Identity holds the simulated tag's identifiers and firmware tag.
type Identity struct {
	DeviceID        string `json:"device_id,omitempty"`
	PetID           string `json:"pet_id,omitempty"`
	UserID          string `json:"user_id,omitempty"`
	FirmwareVersion string `json:"firmware_version,omitempty"`
}

// TagInfoInterface defines methods for managing the simulated tag identity.
type TagInfoInterface interface {
	LoadTagInfo() error
	GetDeviceID() string
	GetIdentity() *Identity
}

// TagInfo manages the tag identity and its associated file operations.
type TagInfo struct {
	TagInfoFile string
	Identity    Identity
	fileOps     file.FileOperations
}

// NewTagInfo initializes a new TagInfo instance. The defaults are used
// whenever the identity file is absent.
func NewTagInfo(filePath string, defaults Identity, fileOps file.FileOperations) TagInfoInterface {
	return &TagInfo{
		TagInfoFile: filePath,
		fileOps:     fileOps,
		Identity:    defaults,
	}
}

// LoadTagInfo reads the tag identity from the file and populates the Identity
// field. A missing file leaves the compiled-in defaults in place.
func (t *TagInfo) LoadTagInfo() error {
	if t.TagInfoFile == "" {
		return nil
	}

	err := t.fileOps.ReadJsonFile(t.TagInfoFile, &t.Identity)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return nil
}

// GetIdentity returns the current tag Identity.
func (t *TagInfo) GetIdentity() *Identity {
	return &t.Identity
}

// GetDeviceID returns the current device ID.
func (t *TagInfo) GetDeviceID() string {
	return t.Identity.DeviceID
}
