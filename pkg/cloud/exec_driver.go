package cloud

import (
	"fmt"
	"strings"

	"github.com/stemforge/cli/pkg/di"
	"github.com/stemforge/cli/pkg/shell"
)

// The ExecDriver delegates image creation to an external platform CLI, the
// same way the aws/gcloud tooling is normally driven. The tool receives the
// image path and the descriptor's cloud properties as JSON and must print a
// JSON object carrying the resulting image id.

// =============================================================================
// Types
// =============================================================================

// ExecSettings holds the configuration for an exec backend
type ExecSettings struct {
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
}

// ExecDriver implements the Driver interface by shelling out to a platform CLI
type ExecDriver struct {
	injector di.Injector
	settings ExecSettings
	shell    shell.Shell
	shims    *Shims
}

// =============================================================================
// Constructor
// =============================================================================

// NewExecDriver creates a new ExecDriver instance
func NewExecDriver(injector di.Injector) *ExecDriver {
	return &ExecDriver{
		injector: injector,
		shims:    NewShims(),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Initialize resolves the shell and validates the driver settings
func (d *ExecDriver) Initialize(injector di.Injector) error {
	if d.settings.Command == "" {
		return fmt.Errorf("exec driver requires a command setting")
	}
	sh, ok := injector.Resolve("shell").(shell.Shell)
	if !ok {
		return fmt.Errorf("failed to resolve shell from injector")
	}
	d.shell = sh
	return nil
}

// CreateImage invokes the configured platform CLI and parses the image id from
// its JSON output.
func (d *ExecDriver) CreateImage(imagePath string, properties map[string]interface{}) (string, error) {
	propsJSON, err := d.shims.JsonMarshal(properties)
	if err != nil {
		return "", fmt.Errorf("failed to encode cloud properties: %w", err)
	}

	args := append([]string{}, d.settings.Args...)
	args = append(args, "--image", imagePath, "--properties", string(propsJSON))

	out, err := d.shell.ExecSilent(d.settings.Command, args...)
	if err != nil {
		return "", err
	}

	var result struct {
		ImageID string `json:"image_id"`
	}
	if err := d.shims.JsonUnmarshal([]byte(strings.TrimSpace(out)), &result); err != nil {
		return "", fmt.Errorf("failed to parse %s output: %w", d.settings.Command, err)
	}
	if result.ImageID == "" {
		return "", fmt.Errorf("%s did not report an image id", d.settings.Command)
	}

	return result.ImageID, nil
}

// Ensure ExecDriver implements Driver interface
var _ Driver = (*ExecDriver)(nil)
