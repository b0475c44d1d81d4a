package pipelines

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/stemforge/cli/pkg/config"
	"github.com/stemforge/cli/pkg/di"
	"github.com/stemforge/cli/pkg/shell"
)

// The BasePipeline is a foundational component that provides common pipeline
// functionality for command execution. Specific pipelines embed it and add
// their own collaborators, resolved from the injector during Initialize.

// =============================================================================
// Types
// =============================================================================

// Pipeline defines the interface for all command pipelines
type Pipeline interface {
	Initialize(injector di.Injector) error
	Execute(ctx context.Context) error
}

// BasePipeline provides common pipeline functionality including config loading
type BasePipeline struct {
	injector      di.Injector
	shell         shell.Shell
	configHandler config.Handler
}

// =============================================================================
// Constructor
// =============================================================================

// NewBasePipeline creates a new BasePipeline instance
func NewBasePipeline() *BasePipeline {
	return &BasePipeline{}
}

// =============================================================================
// Public Methods
// =============================================================================

// Initialize resolves the shell and config handler shared by all pipelines
func (p *BasePipeline) Initialize(injector di.Injector) error {
	p.injector = injector

	if sh, ok := injector.Resolve("shell").(shell.Shell); ok {
		p.shell = sh
	}
	if handler, ok := injector.Resolve("configHandler").(config.Handler); ok {
		p.configHandler = handler
	}

	return nil
}

// Execute provides a default implementation that can be overridden by specific pipelines
func (p *BasePipeline) Execute(ctx context.Context) error {
	return nil
}

// =============================================================================
// Protected Methods
// =============================================================================

// loadConfig loads the stemforge.yaml config file from the project root into the config handler.
func (p *BasePipeline) loadConfig() error {
	if p.shell == nil {
		return fmt.Errorf("shell not initialized")
	}
	if p.configHandler == nil {
		return fmt.Errorf("config handler not initialized")
	}

	projectRoot, err := p.shell.GetProjectRoot()
	if err != nil {
		return fmt.Errorf("error retrieving project root: %w", err)
	}

	yamlPath := filepath.Join(projectRoot, "stemforge.yaml")
	ymlPath := filepath.Join(projectRoot, "stemforge.yml")

	var configPath string
	shims := NewShims()
	if _, err := shims.Stat(yamlPath); err == nil {
		configPath = yamlPath
	} else if _, err := shims.Stat(ymlPath); err == nil {
		configPath = ymlPath
	}

	if configPath != "" {
		if err := p.configHandler.LoadConfig(configPath); err != nil {
			return fmt.Errorf("error loading config file: %w", err)
		}
	}

	return nil
}
