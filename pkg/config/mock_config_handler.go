package config

// MockConfigHandler is a mock implementation of the Handler interface for testing
type MockConfigHandler struct {
	InitializeFunc               func() error
	LoadConfigFunc               func(path string) error
	BackendsFunc                 func() []Backend
	ContinueOnBackendFailureFunc func() bool
}

// NewMockConfigHandler creates a new instance of MockConfigHandler
func NewMockConfigHandler() *MockConfigHandler {
	return &MockConfigHandler{}
}

// Initialize calls the custom InitializeFunc if provided.
func (m *MockConfigHandler) Initialize() error {
	if m.InitializeFunc != nil {
		return m.InitializeFunc()
	}
	return nil
}

// LoadConfig calls the custom LoadConfigFunc if provided.
func (m *MockConfigHandler) LoadConfig(path string) error {
	if m.LoadConfigFunc != nil {
		return m.LoadConfigFunc(path)
	}
	return nil
}

// Backends calls the custom BackendsFunc if provided.
func (m *MockConfigHandler) Backends() []Backend {
	if m.BackendsFunc != nil {
		return m.BackendsFunc()
	}
	return nil
}

// ContinueOnBackendFailure calls the custom ContinueOnBackendFailureFunc if provided.
func (m *MockConfigHandler) ContinueOnBackendFailure() bool {
	if m.ContinueOnBackendFailureFunc != nil {
		return m.ContinueOnBackendFailureFunc()
	}
	return false
}

// Ensure MockConfigHandler implements Handler interface
var _ Handler = (*MockConfigHandler)(nil)
