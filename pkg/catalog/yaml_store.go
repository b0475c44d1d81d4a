package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stemforge/cli/pkg/di"
	"github.com/stemforge/cli/pkg/shell"
)

// The YamlStore keeps the stemcell catalog in a yaml file under the project
// root (.stemforge/catalog.yaml). The file is read on demand and rewritten
// atomically on save, so a failed save never leaves a truncated catalog behind.

// =============================================================================
// Constants
// =============================================================================

// catalogDirName is the directory under the project root holding stemforge state
const catalogDirName = ".stemforge"

// catalogFileName is the name of the catalog file
const catalogFileName = "catalog.yaml"

// =============================================================================
// Types
// =============================================================================

// Store defines the interface for catalog persistence
type Store interface {
	Initialize() error
	FindByNameVersionBackend(name, version, backendID string) (*Record, error)
	Save(record *Record) error
}

// catalogFile is the on-disk structure of the catalog
type catalogFile struct {
	Version   string   `yaml:"version"`
	Stemcells []Record `yaml:"stemcells"`
}

// YamlStore implements the Store interface using a yaml file
type YamlStore struct {
	injector di.Injector
	shell    shell.Shell
	shims    *Shims
	path     string
}

// =============================================================================
// Constructor
// =============================================================================

// NewYamlStore creates a new YamlStore instance
func NewYamlStore(injector di.Injector) *YamlStore {
	return &YamlStore{
		injector: injector,
		shims:    NewShims(),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Initialize resolves the shell and locates the catalog file under the project root
func (s *YamlStore) Initialize() error {
	sh, ok := s.injector.Resolve("shell").(shell.Shell)
	if !ok {
		return fmt.Errorf("failed to resolve shell from injector")
	}
	s.shell = sh

	projectRoot, err := s.shell.GetProjectRoot()
	if err != nil {
		return fmt.Errorf("error retrieving project root: %w", err)
	}
	s.path = filepath.Join(projectRoot, catalogDirName, catalogFileName)

	return nil
}

// FindByNameVersionBackend looks up the record for (name, version, backendID).
// Returns ErrRecordNotFound when no such record exists.
func (s *YamlStore) FindByNameVersionBackend(name, version, backendID string) (*Record, error) {
	file, err := s.load()
	if err != nil {
		return nil, err
	}

	for i := range file.Stemcells {
		record := file.Stemcells[i]
		if record.Name == name && record.Version == version && record.BackendID == backendID {
			return &record, nil
		}
	}

	return nil, ErrRecordNotFound
}

// Save persists the record, replacing any existing record with the same
// (name, version, backend) key. A record without an image id is rejected.
func (s *YamlStore) Save(record *Record) error {
	if record.ImageID == "" {
		return fmt.Errorf("refusing to save stemcell record %s/%s for backend %s without an image id", record.Name, record.Version, record.BackendID)
	}

	file, err := s.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range file.Stemcells {
		existing := &file.Stemcells[i]
		if existing.Name == record.Name && existing.Version == record.Version && existing.BackendID == record.BackendID {
			*existing = *record
			replaced = true
			break
		}
	}
	if !replaced {
		file.Stemcells = append(file.Stemcells, *record)
	}

	return s.write(file)
}

// =============================================================================
// Private Methods
// =============================================================================

// load reads the catalog file, returning an empty catalog when the file does not exist
func (s *YamlStore) load() (*catalogFile, error) {
	file := &catalogFile{Version: "v1alpha1"}

	data, err := s.shims.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return file, nil
		}
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}

	if err := s.shims.YamlUnmarshal(data, file); err != nil {
		return nil, fmt.Errorf("error unmarshalling catalog file: %w", err)
	}

	return file, nil
}

// write rewrites the catalog file atomically via a temp file and rename
func (s *YamlStore) write(file *catalogFile) error {
	dir := filepath.Dir(s.path)
	if err := s.shims.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating catalog directory: %w", err)
	}

	data, err := s.shims.YamlMarshal(file)
	if err != nil {
		return fmt.Errorf("error marshalling catalog file: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := s.shims.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("error writing catalog file: %w", err)
	}
	if err := s.shims.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("error replacing catalog file: %w", err)
	}

	return nil
}

// Ensure YamlStore implements Store interface
var _ Store = (*YamlStore)(nil)
