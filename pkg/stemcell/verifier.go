package stemcell

import (
	"crypto/sha1"
	"fmt"
	"io"

	"github.com/stemforge/cli/pkg/di"
)

// The Verifier validates a fetched artifact against an expected content hash.
// The digest is SHA-1, matching the content addressing used by stemcell
// manifests. Integrity failures are never transient and are never retried.

// =============================================================================
// Types
// =============================================================================

// Verifier defines the interface for artifact integrity checking
type Verifier interface {
	Initialize(injector di.Injector) error
	FileSHA1(path string) (string, error)
	Verify(path string, expectedSHA1 string) error
}

// SHA1Verifier implements the Verifier interface using crypto/sha1
type SHA1Verifier struct {
	shims *Shims
}

// =============================================================================
// Constructor
// =============================================================================

// NewSHA1Verifier creates a new SHA1Verifier instance
func NewSHA1Verifier() *SHA1Verifier {
	return &SHA1Verifier{
		shims: NewShims(),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Initialize initializes the verifier
func (v *SHA1Verifier) Initialize(injector di.Injector) error {
	return nil
}

// FileSHA1 computes the hex-encoded SHA-1 digest of the file at path
func (v *SHA1Verifier) FileSHA1(path string) (string, error) {
	file, err := v.shims.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open artifact for hashing: %w", err)
	}
	defer file.Close()

	hasher := sha1.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to hash artifact: %w", err)
	}

	return fmt.Sprintf("%x", hasher.Sum(nil)), nil
}

// Verify compares the file's digest byte-for-byte against the expected value.
// A mismatch yields an IntegrityError naming both hashes.
func (v *SHA1Verifier) Verify(path string, expectedSHA1 string) error {
	actual, err := v.FileSHA1(path)
	if err != nil {
		return err
	}
	if actual != expectedSHA1 {
		return &IntegrityError{ExpectedSHA1: expectedSHA1, ActualSHA1: actual}
	}
	return nil
}

// Ensure SHA1Verifier implements Verifier interface
var _ Verifier = (*SHA1Verifier)(nil)
