package catalog

// MockStore is a mock implementation of the Store interface for testing
type MockStore struct {
	InitializeFunc               func() error
	FindByNameVersionBackendFunc func(name, version, backendID string) (*Record, error)
	SaveFunc                     func(record *Record) error
}

// NewMockStore creates a new MockStore instance
func NewMockStore() *MockStore {
	return &MockStore{}
}

// Initialize calls the custom InitializeFunc if provided.
func (m *MockStore) Initialize() error {
	if m.InitializeFunc != nil {
		return m.InitializeFunc()
	}
	return nil
}

// FindByNameVersionBackend calls the custom FindByNameVersionBackendFunc if provided.
// The default behavior reports no record found.
func (m *MockStore) FindByNameVersionBackend(name, version, backendID string) (*Record, error) {
	if m.FindByNameVersionBackendFunc != nil {
		return m.FindByNameVersionBackendFunc(name, version, backendID)
	}
	return nil, ErrRecordNotFound
}

// Save calls the custom SaveFunc if provided.
func (m *MockStore) Save(record *Record) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(record)
	}
	return nil
}

// Ensure MockStore implements Store interface
var _ Store = (*MockStore)(nil)
