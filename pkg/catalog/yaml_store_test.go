package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stemforge/cli/pkg/di"
	"github.com/stemforge/cli/pkg/shell"
)

// The YamlStore tests cover catalog lookups, record persistence with
// replace-on-save semantics, and the rejection of records without an image id.

// =============================================================================
// Test Setup
// =============================================================================

type Mocks struct {
	Injector  di.Injector
	MockShell *shell.MockShell
	TempDir   string
}

func setupMocks(t *testing.T) *Mocks {
	t.Helper()

	tmpDir := t.TempDir()
	injector := di.NewMockInjector()
	mockShell := shell.NewMockShell()
	mockShell.GetProjectRootFunc = func() (string, error) {
		return tmpDir, nil
	}
	injector.Register("shell", mockShell)

	return &Mocks{
		Injector:  injector,
		MockShell: mockShell,
		TempDir:   tmpDir,
	}
}

func setupStore(t *testing.T, mocks *Mocks) *YamlStore {
	t.Helper()
	store := NewYamlStore(mocks.Injector)
	if err := store.Initialize(); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	return store
}

func sampleRecord() *Record {
	return &Record{
		Name:            "bosh-ubuntu",
		OperatingSystem: "ubuntu-jammy",
		Version:         "1.0",
		SHA1:            "abc123",
		BackendID:       "aws-east",
		ImageID:         "ami-12345",
	}
}

// =============================================================================
// Test Public Methods
// =============================================================================

func TestYamlStore_Initialize(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Given an injector with a shell registered
		mocks := setupMocks(t)

		// When initializing the store
		store := NewYamlStore(mocks.Injector)
		err := store.Initialize()

		// Then the catalog path should sit under the project root
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		expected := filepath.Join(mocks.TempDir, ".stemforge", "catalog.yaml")
		if store.path != expected {
			t.Errorf("Expected catalog path %s, got %s", expected, store.path)
		}
	})

	t.Run("ShellNotRegistered", func(t *testing.T) {
		// Given an injector without a shell
		injector := di.NewMockInjector()
		store := NewYamlStore(injector)

		// When initializing the store
		err := store.Initialize()

		// Then an error should be returned
		if err == nil {
			t.Error("Expected error when shell is not registered")
		}
	})
}

func TestYamlStore_FindByNameVersionBackend(t *testing.T) {
	t.Run("NotFoundOnEmptyCatalog", func(t *testing.T) {
		// Given a store with no catalog file
		mocks := setupMocks(t)
		store := setupStore(t, mocks)

		// When looking up a record
		_, err := store.FindByNameVersionBackend("bosh-ubuntu", "1.0", "aws-east")

		// Then ErrRecordNotFound should be returned
		if !errors.Is(err, ErrRecordNotFound) {
			t.Errorf("Expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("FindsSavedRecord", func(t *testing.T) {
		// Given a store holding a saved record
		mocks := setupMocks(t)
		store := setupStore(t, mocks)
		if err := store.Save(sampleRecord()); err != nil {
			t.Fatalf("Failed to save record: %v", err)
		}

		// When looking it up by its key
		record, err := store.FindByNameVersionBackend("bosh-ubuntu", "1.0", "aws-east")

		// Then the record should be returned intact
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if record.ImageID != "ami-12345" {
			t.Errorf("Expected image id ami-12345, got %s", record.ImageID)
		}
		if record.OperatingSystem != "ubuntu-jammy" {
			t.Errorf("Expected operating system ubuntu-jammy, got %s", record.OperatingSystem)
		}
	})

	t.Run("KeyIncludesBackend", func(t *testing.T) {
		// Given a record saved for one backend
		mocks := setupMocks(t)
		store := setupStore(t, mocks)
		if err := store.Save(sampleRecord()); err != nil {
			t.Fatalf("Failed to save record: %v", err)
		}

		// When looking up the same name and version on another backend
		_, err := store.FindByNameVersionBackend("bosh-ubuntu", "1.0", "gcp-west")

		// Then no record should be found
		if !errors.Is(err, ErrRecordNotFound) {
			t.Errorf("Expected ErrRecordNotFound, got %v", err)
		}
	})
}

func TestYamlStore_Save(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Given a store and a complete record
		mocks := setupMocks(t)
		store := setupStore(t, mocks)

		// When saving the record
		err := store.Save(sampleRecord())

		// Then the catalog file should exist on disk
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if _, err := os.Stat(filepath.Join(mocks.TempDir, ".stemforge", "catalog.yaml")); err != nil {
			t.Errorf("Expected catalog file to exist: %v", err)
		}
	})

	t.Run("RejectsEmptyImageID", func(t *testing.T) {
		// Given a record without an image id
		mocks := setupMocks(t)
		store := setupStore(t, mocks)
		record := sampleRecord()
		record.ImageID = ""

		// When saving the record
		err := store.Save(record)

		// Then the save should be rejected
		if err == nil {
			t.Error("Expected error when saving a record without an image id")
		}
	})

	t.Run("ReplacesExistingRecord", func(t *testing.T) {
		// Given a store holding a record
		mocks := setupMocks(t)
		store := setupStore(t, mocks)
		if err := store.Save(sampleRecord()); err != nil {
			t.Fatalf("Failed to save record: %v", err)
		}

		// When saving a record with the same key and a new image id
		updated := sampleRecord()
		updated.ImageID = "ami-99999"
		if err := store.Save(updated); err != nil {
			t.Fatalf("Failed to save updated record: %v", err)
		}

		// Then the lookup should return the new image id and only one record should exist
		record, err := store.FindByNameVersionBackend("bosh-ubuntu", "1.0", "aws-east")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if record.ImageID != "ami-99999" {
			t.Errorf("Expected image id ami-99999, got %s", record.ImageID)
		}
		file, err := store.load()
		if err != nil {
			t.Fatalf("Failed to load catalog: %v", err)
		}
		if len(file.Stemcells) != 1 {
			t.Errorf("Expected 1 record, got %d", len(file.Stemcells))
		}
	})

	t.Run("KeepsDistinctBackends", func(t *testing.T) {
		// Given two records for the same stemcell on different backends
		mocks := setupMocks(t)
		store := setupStore(t, mocks)
		first := sampleRecord()
		second := sampleRecord()
		second.BackendID = "gcp-west"
		second.ImageID = "gce-67890"

		// When saving both
		if err := store.Save(first); err != nil {
			t.Fatalf("Failed to save first record: %v", err)
		}
		if err := store.Save(second); err != nil {
			t.Fatalf("Failed to save second record: %v", err)
		}

		// Then both should be retrievable
		file, err := store.load()
		if err != nil {
			t.Fatalf("Failed to load catalog: %v", err)
		}
		if len(file.Stemcells) != 2 {
			t.Errorf("Expected 2 records, got %d", len(file.Stemcells))
		}
	})
}
