package stemcell

import (
	"fmt"
	"os"

	"github.com/stemforge/cli/pkg/di"
	"github.com/stemforge/cli/pkg/shell"
)

// The Archive service unpacks a stemcell archive into a working directory and
// interprets its contents. Extraction shells out to tar, so a broken archive
// surfaces as the tool's exit code plus its combined output. Manifest reading
// and payload verification are separate operations with distinct failure modes.

// =============================================================================
// Types
// =============================================================================

// Archive defines the interface for stemcell archive operations
type Archive interface {
	Initialize(injector di.Injector) error
	Extract(archivePath string) (string, error)
	ReadManifest(workDir string) (*Descriptor, error)
	ImagePath(workDir string) (string, error)
}

// TarArchive implements the Archive interface using the external tar tool
type TarArchive struct {
	shims *Shims
	shell shell.Shell
}

// =============================================================================
// Constructor
// =============================================================================

// NewTarArchive creates a new TarArchive instance
func NewTarArchive() *TarArchive {
	return &TarArchive{
		shims: NewShims(),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Initialize initializes the TarArchive with dependency injection
func (a *TarArchive) Initialize(injector di.Injector) error {
	if injector != nil {
		sh, ok := injector.Resolve("shell").(shell.Shell)
		if !ok {
			return fmt.Errorf("failed to resolve shell from injector")
		}
		a.shell = sh
	}
	return nil
}

// Extract unpacks the archive into a freshly created temporary directory and
// returns its path. The directory is returned even when extraction fails so the
// caller can remove it; a non-zero tar exit status yields an ExtractionError
// carrying the exit code and the tool's combined output.
func (a *TarArchive) Extract(archivePath string) (string, error) {
	workDir, err := a.shims.MkdirTemp("", "stemforge-stemcell-")
	if err != nil {
		return "", fmt.Errorf("failed to create extraction directory: %w", err)
	}

	output, exitCode, err := a.shell.ExecCombined("tar", "-xzf", archivePath, "-C", workDir)
	if err != nil {
		return workDir, &ExtractionError{ExitCode: exitCode, Output: output}
	}

	return workDir, nil
}

// ReadManifest reads and validates the manifest at the working directory root
func (a *TarArchive) ReadManifest(workDir string) (*Descriptor, error) {
	manifestPath := a.shims.Join(workDir, ManifestFileName)
	data, err := a.shims.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read stemcell manifest: %w", err)
	}

	return ParseManifest(data)
}

// ImagePath verifies the image payload exists at the working directory root and
// returns its path. Absence is reported as ErrImagePayloadMissing, distinct
// from any manifest validation failure.
func (a *TarArchive) ImagePath(workDir string) (string, error) {
	imagePath := a.shims.Join(workDir, ImageFileName)
	if _, err := a.shims.Stat(imagePath); err != nil {
		if os.IsNotExist(err) {
			return "", ErrImagePayloadMissing
		}
		return "", fmt.Errorf("failed to stat stemcell image: %w", err)
	}
	return imagePath, nil
}

// Ensure TarArchive implements Archive interface
var _ Archive = (*TarArchive)(nil)
