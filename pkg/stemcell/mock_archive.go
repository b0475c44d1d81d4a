package stemcell

import (
	"github.com/stemforge/cli/pkg/di"
)

// MockArchive is a mock implementation of the Archive interface for testing
type MockArchive struct {
	InitializeFunc   func(injector di.Injector) error
	ExtractFunc      func(archivePath string) (string, error)
	ReadManifestFunc func(workDir string) (*Descriptor, error)
	ImagePathFunc    func(workDir string) (string, error)
}

// NewMockArchive creates a new MockArchive instance
func NewMockArchive() *MockArchive {
	return &MockArchive{}
}

// Initialize calls the custom InitializeFunc if provided.
func (m *MockArchive) Initialize(injector di.Injector) error {
	if m.InitializeFunc != nil {
		return m.InitializeFunc(injector)
	}
	return nil
}

// Extract calls the custom ExtractFunc if provided.
func (m *MockArchive) Extract(archivePath string) (string, error) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(archivePath)
	}
	return "", nil
}

// ReadManifest calls the custom ReadManifestFunc if provided.
func (m *MockArchive) ReadManifest(workDir string) (*Descriptor, error) {
	if m.ReadManifestFunc != nil {
		return m.ReadManifestFunc(workDir)
	}
	return &Descriptor{}, nil
}

// ImagePath calls the custom ImagePathFunc if provided.
func (m *MockArchive) ImagePath(workDir string) (string, error) {
	if m.ImagePathFunc != nil {
		return m.ImagePathFunc(workDir)
	}
	return "", nil
}

// Ensure MockArchive implements Archive interface
var _ Archive = (*MockArchive)(nil)

// MockVerifier is a mock implementation of the Verifier interface for testing
type MockVerifier struct {
	InitializeFunc func(injector di.Injector) error
	FileSHA1Func   func(path string) (string, error)
	VerifyFunc     func(path string, expectedSHA1 string) error
}

// NewMockVerifier creates a new MockVerifier instance
func NewMockVerifier() *MockVerifier {
	return &MockVerifier{}
}

// Initialize calls the custom InitializeFunc if provided.
func (m *MockVerifier) Initialize(injector di.Injector) error {
	if m.InitializeFunc != nil {
		return m.InitializeFunc(injector)
	}
	return nil
}

// FileSHA1 calls the custom FileSHA1Func if provided.
func (m *MockVerifier) FileSHA1(path string) (string, error) {
	if m.FileSHA1Func != nil {
		return m.FileSHA1Func(path)
	}
	return "", nil
}

// Verify calls the custom VerifyFunc if provided.
func (m *MockVerifier) Verify(path string, expectedSHA1 string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(path, expectedSHA1)
	}
	return nil
}

// Ensure MockVerifier implements Verifier interface
var _ Verifier = (*MockVerifier)(nil)
