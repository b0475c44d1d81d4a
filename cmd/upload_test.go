package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stemforge/cli/pkg/catalog"
	"github.com/stemforge/cli/pkg/di"
	"github.com/stemforge/cli/pkg/download"
	"github.com/stemforge/cli/pkg/progress"
	"github.com/stemforge/cli/pkg/shell"
	"github.com/stemforge/cli/pkg/stemcell"
)

// =============================================================================
// Test Setup
// =============================================================================

// setupUploadMocks pre-registers mock collaborators so the upload command runs
// without touching the filesystem, network, or external processes.
func setupUploadMocks(t *testing.T) (*di.BaseInjector, *download.MockDownloader, *stemcell.MockVerifier) {
	t.Helper()

	injector := di.NewInjector()

	mockShell := shell.NewMockShell()
	projectRoot := t.TempDir()
	mockShell.GetProjectRootFunc = func() (string, error) {
		return projectRoot, nil
	}
	injector.Register("shell", mockShell)

	mockArchive := stemcell.NewMockArchive()
	mockArchive.ExtractFunc = func(archivePath string) (string, error) {
		return t.TempDir(), nil
	}
	mockArchive.ReadManifestFunc = func(workDir string) (*stemcell.Descriptor, error) {
		return &stemcell.Descriptor{Name: "bosh-ubuntu", OperatingSystem: "ubuntu-jammy", Version: "2", SHA1: "abc123"}, nil
	}
	mockArchive.ImagePathFunc = func(workDir string) (string, error) {
		return filepath.Join(workDir, "image"), nil
	}
	injector.Register("archive", mockArchive)

	mockDownloader := download.NewMockDownloader()
	injector.Register("downloader", mockDownloader)

	mockVerifier := stemcell.NewMockVerifier()
	injector.Register("verifier", mockVerifier)

	injector.Register("catalogStore", catalog.NewMockStore())
	injector.Register("progressReporter", progress.NewMockReporter())

	return injector, mockDownloader, mockVerifier
}

// resetUploadFlags restores the upload command's flags between runs
func resetUploadFlags(t *testing.T) {
	t.Helper()
	for name, value := range map[string]string{"sha1": "", "fix": "false", "remote": "false"} {
		if err := uploadCmd.Flags().Set(name, value); err != nil {
			t.Fatalf("Failed to reset flag %s: %v", name, err)
		}
	}
}

// =============================================================================
// Test Commands
// =============================================================================

func TestUploadCmd(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Given a set of pre-registered mock collaborators
		injector, _, _ := setupUploadMocks(t)
		resetUploadFlags(t)

		// When running the upload command with a local archive
		_, err := executeCommand(t, injector, "upload", "/tmp/stemcell.tgz")

		// Then no error should be returned
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("RequiresArchiveArgument", func(t *testing.T) {
		// Given no archive argument
		injector, _, _ := setupUploadMocks(t)
		resetUploadFlags(t)

		// When running the upload command without args
		_, err := executeCommand(t, injector, "upload")

		// Then an argument error should be returned
		if err == nil {
			t.Error("Expected error for missing archive argument")
		}
	})

	t.Run("PassesFlagsToPipeline", func(t *testing.T) {
		// Given mocks that record the download and verification
		injector, mockDownloader, mockVerifier := setupUploadMocks(t)
		resetUploadFlags(t)
		fetched := false
		mockDownloader.FetchFunc = func(locator, destPath string) error {
			fetched = true
			return nil
		}
		var verifiedSHA1 string
		mockVerifier.VerifyFunc = func(path, expectedSHA1 string) error {
			verifiedSHA1 = expectedSHA1
			return nil
		}

		// When running the upload command with remote and checksum flags
		_, err := executeCommand(t, injector, "upload", "mirror/stemcell.tgz", "--remote", "--sha1", "abc123")

		// Then both options should reach the workflow
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
		if !fetched {
			t.Error("Expected remote flag to force a fetch")
		}
		if verifiedSHA1 != "abc123" {
			t.Errorf("Expected sha1 flag to reach verification, got %q", verifiedSHA1)
		}
	})

	t.Run("SurfacesWorkflowFailure", func(t *testing.T) {
		// Given an archive whose manifest is invalid
		injector, _, _ := setupUploadMocks(t)
		resetUploadFlags(t)
		mockArchive := injector.Resolve("archive").(*stemcell.MockArchive)
		mockArchive.ReadManifestFunc = func(workDir string) (*stemcell.Descriptor, error) {
			return nil, &stemcell.MissingFieldError{Field: "version", ExpectedType: "scalar"}
		}

		// When running the upload command
		_, err := executeCommand(t, injector, "upload", "/tmp/stemcell.tgz")

		// Then the manifest error should be surfaced
		if err == nil {
			t.Error("Expected manifest error to surface")
		}
	})
}

func TestRegisterUploadComponents(t *testing.T) {
	t.Run("HonorsExistingRegistrations", func(t *testing.T) {
		// Given an injector with a pre-registered downloader
		injector := di.NewInjector()
		mockDownloader := download.NewMockDownloader()
		injector.Register("downloader", mockDownloader)

		// When registering the upload components
		registerUploadComponents(injector)

		// Then the pre-registered instance should be kept
		if injector.Resolve("downloader") != mockDownloader {
			t.Error("Expected pre-registered downloader to be kept")
		}
	})

	t.Run("FillsMissingRegistrations", func(t *testing.T) {
		// Given an empty injector
		injector := di.NewInjector()

		// When registering the upload components
		registerUploadComponents(injector)

		// Then every collaborator should be registered
		for _, name := range []string{"shell", "configHandler", "downloader", "verifier", "archive", "catalogStore", "progressReporter"} {
			if injector.Resolve(name) == nil {
				t.Errorf("Expected %s to be registered", name)
			}
		}
	})
}
