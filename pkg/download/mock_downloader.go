package download

import (
	"github.com/stemforge/cli/pkg/di"
)

// MockDownloader is a mock implementation of the Downloader interface for testing
type MockDownloader struct {
	InitializeFunc func(injector di.Injector) error
	FetchFunc      func(locator string, destPath string) error
}

// NewMockDownloader creates a new MockDownloader instance
func NewMockDownloader() *MockDownloader {
	return &MockDownloader{}
}

// Initialize calls the custom InitializeFunc if provided.
func (m *MockDownloader) Initialize(injector di.Injector) error {
	if m.InitializeFunc != nil {
		return m.InitializeFunc(injector)
	}
	return nil
}

// Fetch calls the custom FetchFunc if provided.
func (m *MockDownloader) Fetch(locator string, destPath string) error {
	if m.FetchFunc != nil {
		return m.FetchFunc(locator, destPath)
	}
	return nil
}

// Ensure MockDownloader implements Downloader interface
var _ Downloader = (*MockDownloader)(nil)
