package cloud

import (
	"fmt"

	"sigs.k8s.io/yaml"

	"github.com/stemforge/cli/pkg/config"
	"github.com/stemforge/cli/pkg/di"
)

// The cloud package holds the backend drivers that materialize a stemcell
// image on an infrastructure target. Every platform difference lives behind
// the single CreateImage capability; the publication loop is written once
// against the Driver interface.

// =============================================================================
// Types
// =============================================================================

// Driver defines the single capability a backend must provide
type Driver interface {
	Initialize(injector di.Injector) error
	CreateImage(imagePath string, properties map[string]interface{}) (string, error)
}

// ImageCreationError indicates a backend driver failed to materialize an image.
// The backend identity travels with the underlying error.
type ImageCreationError struct {
	BackendID string
	Err       error
}

// Error returns the error message for ImageCreationError
func (e *ImageCreationError) Error() string {
	return fmt.Sprintf("backend %s failed to create image: %v", e.BackendID, e.Err)
}

// Unwrap returns the underlying error
func (e *ImageCreationError) Unwrap() error {
	return e.Err
}

// =============================================================================
// Helpers
// =============================================================================

// NewDriver constructs the driver for a configured backend by its driver kind
func NewDriver(injector di.Injector, backend config.Backend) (Driver, error) {
	var driver Driver
	switch backend.Driver {
	case "local":
		driver = NewLocalDriver(injector)
	case "exec":
		driver = NewExecDriver(injector)
	case "ssh":
		driver = NewSSHDriver(injector)
	default:
		return nil, fmt.Errorf("unknown driver %q for backend %s", backend.Driver, backend.ID)
	}

	if err := decodeSettings(backend.Settings, driver); err != nil {
		return nil, fmt.Errorf("invalid settings for backend %s: %w", backend.ID, err)
	}

	if err := driver.Initialize(injector); err != nil {
		return nil, fmt.Errorf("failed to initialize driver for backend %s: %w", backend.ID, err)
	}

	return driver, nil
}

// decodeSettings decodes the free-form settings mapping into the driver's
// typed settings via a yaml round trip, so drivers declare their settings with
// plain JSON-tagged structs.
func decodeSettings(settings map[string]interface{}, driver Driver) error {
	if settings == nil {
		settings = map[string]interface{}{}
	}
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("error marshalling settings: %w", err)
	}

	switch d := driver.(type) {
	case *LocalDriver:
		return yaml.Unmarshal(data, &d.settings)
	case *ExecDriver:
		return yaml.Unmarshal(data, &d.settings)
	case *SSHDriver:
		return yaml.Unmarshal(data, &d.settings)
	}
	return nil
}
