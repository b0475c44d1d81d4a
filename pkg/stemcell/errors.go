package stemcell

import (
	"errors"
	"fmt"
)

// Error types for the stemcell ingestion path. Each failure mode gets its own
// type so callers can tell an invalid manifest from a bad archive or a
// checksum mismatch with errors.As.

// ErrImagePayloadMissing indicates the extracted archive has no image file at its root.
// It is distinct from manifest validation errors: the manifest may be perfectly
// valid while the payload itself is absent.
var ErrImagePayloadMissing = errors.New("stemcell archive is missing the image payload")

// ExtractionError indicates the external extraction tool exited non-zero.
// Output is captured for diagnostics only and is never parsed.
type ExtractionError struct {
	ExitCode int
	Output   string
}

// Error returns the error message for ExtractionError
func (e *ExtractionError) Error() string {
	return fmt.Sprintf("stemcell archive extraction failed with exit code %d: %s", e.ExitCode, e.Output)
}

// IntegrityError indicates the artifact's digest did not match the expected value
type IntegrityError struct {
	ExpectedSHA1 string
	ActualSHA1   string
}

// Error returns the error message for IntegrityError
func (e *IntegrityError) Error() string {
	return fmt.Sprintf("stemcell integrity check failed: expected sha1 %s, got %s", e.ExpectedSHA1, e.ActualSHA1)
}

// MissingFieldError indicates a required manifest field is absent
type MissingFieldError struct {
	Field        string
	ExpectedType string
}

// Error returns the error message for MissingFieldError
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("stemcell manifest is missing required field %q of type %s", e.Field, e.ExpectedType)
}

// TypeMismatchError indicates a manifest field has the wrong type
type TypeMismatchError struct {
	Field        string
	ExpectedType string
	ActualType   string
}

// Error returns the error message for TypeMismatchError
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("stemcell manifest field %q must be of type %s, got %s", e.Field, e.ExpectedType, e.ActualType)
}
