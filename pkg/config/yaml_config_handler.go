package config

import (
	"fmt"
	"os"

	"github.com/stemforge/cli/pkg/di"
)

// The ConfigHandler is the backend configuration provider for stemforge.
// It loads stemforge.yaml from the project root and exposes the ordered backend
// list plus publication options to the rest of the system.

// =============================================================================
// Constants
// =============================================================================

// supportedVersion is the only stemforge.yaml schema version this build understands
const supportedVersion = "v1alpha1"

// =============================================================================
// Types
// =============================================================================

// Handler defines the interface for configuration access
type Handler interface {
	Initialize() error
	LoadConfig(path string) error
	Backends() []Backend
	ContinueOnBackendFailure() bool
}

// YamlConfigHandler implements the Handler interface using goccy/go-yaml
type YamlConfigHandler struct {
	injector di.Injector
	config   Config
	path     string
	shims    *Shims
}

// =============================================================================
// Constructor
// =============================================================================

// NewYamlConfigHandler creates a new instance of YamlConfigHandler
func NewYamlConfigHandler(injector di.Injector) *YamlConfigHandler {
	return &YamlConfigHandler{
		injector: injector,
		shims:    NewShims(),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Initialize initializes the config handler
func (y *YamlConfigHandler) Initialize() error {
	return nil
}

// LoadConfig loads the configuration from the specified path. If the file does not exist, it does nothing.
func (y *YamlConfigHandler) LoadConfig(path string) error {
	y.path = path
	if _, err := y.shims.Stat(path); os.IsNotExist(err) {
		return nil
	}

	data, err := y.shims.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	if err := y.shims.YamlUnmarshal(data, &y.config); err != nil {
		return fmt.Errorf("error unmarshalling yaml: %w", err)
	}

	// Check and set the config version
	if y.config.Version == "" {
		y.config.Version = supportedVersion
	} else if y.config.Version != supportedVersion {
		return fmt.Errorf("unsupported config version: %s", y.config.Version)
	}

	for _, backend := range y.config.Backends {
		if backend.ID == "" {
			return fmt.Errorf("backend entry is missing an id")
		}
		if backend.Driver == "" {
			return fmt.Errorf("backend %q is missing a driver", backend.ID)
		}
	}

	return nil
}

// Backends returns the configured backends in the order they appear in stemforge.yaml
func (y *YamlConfigHandler) Backends() []Backend {
	return y.config.Backends
}

// ContinueOnBackendFailure reports whether the publication loop should keep going
// after a backend fails. Defaults to false (fail fast).
func (y *YamlConfigHandler) ContinueOnBackendFailure() bool {
	if y.config.Publish == nil || y.config.Publish.ContinueOnFailure == nil {
		return false
	}
	return *y.config.Publish.ContinueOnFailure
}

// Ensure YamlConfigHandler implements Handler interface
var _ Handler = (*YamlConfigHandler)(nil)
