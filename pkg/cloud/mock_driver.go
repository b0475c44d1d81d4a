package cloud

import (
	"github.com/stemforge/cli/pkg/di"
)

// MockDriver is a mock implementation of the Driver interface for testing
type MockDriver struct {
	InitializeFunc  func(injector di.Injector) error
	CreateImageFunc func(imagePath string, properties map[string]interface{}) (string, error)
}

// NewMockDriver creates a new MockDriver instance
func NewMockDriver() *MockDriver {
	return &MockDriver{}
}

// Initialize calls the custom InitializeFunc if provided.
func (m *MockDriver) Initialize(injector di.Injector) error {
	if m.InitializeFunc != nil {
		return m.InitializeFunc(injector)
	}
	return nil
}

// CreateImage calls the custom CreateImageFunc if provided.
func (m *MockDriver) CreateImage(imagePath string, properties map[string]interface{}) (string, error) {
	if m.CreateImageFunc != nil {
		return m.CreateImageFunc(imagePath, properties)
	}
	return "mock-image-id", nil
}

// Ensure MockDriver implements Driver interface
var _ Driver = (*MockDriver)(nil)
