package cloud

import (
	"fmt"
	"io"

	"github.com/stemforge/cli/pkg/di"
)

// The LocalDriver materializes stemcell images as files in a directory on the
// local machine, which is what development and CI targets use. It refuses to
// copy when the target filesystem lacks room for the image.

// =============================================================================
// Types
// =============================================================================

// LocalSettings holds the configuration for a local backend
type LocalSettings struct {
	Path string `json:"path"`
}

// LocalDriver implements the Driver interface against the local filesystem
type LocalDriver struct {
	injector di.Injector
	settings LocalSettings
	shims    *Shims
}

// =============================================================================
// Constructor
// =============================================================================

// NewLocalDriver creates a new LocalDriver instance
func NewLocalDriver(injector di.Injector) *LocalDriver {
	return &LocalDriver{
		injector: injector,
		shims:    NewShims(),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Initialize validates the driver settings
func (d *LocalDriver) Initialize(injector di.Injector) error {
	if d.settings.Path == "" {
		return fmt.Errorf("local driver requires a path setting")
	}
	return nil
}

// CreateImage copies the image payload into the configured directory under a
// freshly generated image id and returns that id as the image handle.
func (d *LocalDriver) CreateImage(imagePath string, properties map[string]interface{}) (string, error) {
	info, err := d.shims.Stat(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to stat image: %w", err)
	}

	if err := d.shims.MkdirAll(d.settings.Path, 0755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}

	usage, err := d.shims.DiskUsage(d.settings.Path)
	if err != nil {
		return "", fmt.Errorf("failed to check free space on %s: %w", d.settings.Path, err)
	}
	if usage.Free < uint64(info.Size()) {
		return "", fmt.Errorf("not enough free space on %s: need %d bytes, have %d", d.settings.Path, info.Size(), usage.Free)
	}

	imageID, err := d.generateImageID()
	if err != nil {
		return "", err
	}

	src, err := d.shims.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer src.Close()

	destPath := d.shims.Join(d.settings.Path, imageID+".img")
	dest, err := d.shims.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		return "", fmt.Errorf("failed to copy image: %w", err)
	}

	return imageID, nil
}

// =============================================================================
// Private Methods
// =============================================================================

// generateImageID produces a collision-resistant image identifier
func (d *LocalDriver) generateImageID() (string, error) {
	buf := make([]byte, 6)
	if _, err := d.shims.RandRead(buf); err != nil {
		return "", fmt.Errorf("failed to generate image id: %w", err)
	}
	return fmt.Sprintf("img-%x", buf), nil
}

// Ensure LocalDriver implements Driver interface
var _ Driver = (*LocalDriver)(nil)
