package shell

import (
	"github.com/stemforge/cli/pkg/di"
)

// MockShell is a struct that simulates a shell environment for testing purposes.
type MockShell struct {
	DefaultShell
	InitializeFunc     func() error
	SetVerbosityFunc   func(verbose bool)
	GetProjectRootFunc func() (string, error)
	ExecFunc           func(command string, args ...string) (string, error)
	ExecSilentFunc     func(command string, args ...string) (string, error)
	ExecCombinedFunc   func(command string, args ...string) (string, int, error)
}

// NewMockShell creates a new instance of MockShell. If injector is provided, it sets the injector on MockShell.
func NewMockShell(injectors ...di.Injector) *MockShell {
	var injector di.Injector
	if len(injectors) > 0 {
		injector = injectors[0]
	}

	return &MockShell{
		DefaultShell: DefaultShell{
			injector: injector,
			shims:    NewShims(),
		},
	}
}

// Initialize calls the custom InitializeFunc if provided.
func (s *MockShell) Initialize() error {
	if s.InitializeFunc != nil {
		return s.InitializeFunc()
	}
	return nil
}

// SetVerbosity calls the custom SetVerbosityFunc if provided.
func (s *MockShell) SetVerbosity(verbose bool) {
	if s.SetVerbosityFunc != nil {
		s.SetVerbosityFunc(verbose)
	}
}

// GetProjectRoot calls the custom GetProjectRootFunc if provided.
func (s *MockShell) GetProjectRoot() (string, error) {
	if s.GetProjectRootFunc != nil {
		return s.GetProjectRootFunc()
	}
	return "", nil
}

// Exec calls the custom ExecFunc if provided.
func (s *MockShell) Exec(command string, args ...string) (string, error) {
	if s.ExecFunc != nil {
		return s.ExecFunc(command, args...)
	}
	return "", nil
}

// ExecSilent calls the custom ExecSilentFunc if provided.
func (s *MockShell) ExecSilent(command string, args ...string) (string, error) {
	if s.ExecSilentFunc != nil {
		return s.ExecSilentFunc(command, args...)
	}
	return "", nil
}

// ExecCombined calls the custom ExecCombinedFunc if provided.
func (s *MockShell) ExecCombined(command string, args ...string) (string, int, error) {
	if s.ExecCombinedFunc != nil {
		return s.ExecCombinedFunc(command, args...)
	}
	return "", 0, nil
}

// Ensure MockShell implements Shell interface
var _ Shell = (*MockShell)(nil)
