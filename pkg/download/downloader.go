package download

import (
	"fmt"
	"io"
	"strings"

	"github.com/stemforge/cli/pkg/di"
)

// The Downloader materializes a remote stemcell locator as a local file.
// The publication workflow only depends on the Fetch contract; the default
// implementation performs a plain HTTP GET into the destination path.

// =============================================================================
// Types
// =============================================================================

// Downloader defines the interface for fetching remote artifacts
type Downloader interface {
	Initialize(injector di.Injector) error
	Fetch(locator string, destPath string) error
}

// FetchError indicates a remote artifact could not be materialized locally
type FetchError struct {
	Locator string
	Err     error
}

// Error returns the error message for FetchError
func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch stemcell from %s: %v", e.Locator, e.Err)
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// HTTPDownloader implements the Downloader interface over HTTP(S)
type HTTPDownloader struct {
	shims *Shims
}

// =============================================================================
// Constructor
// =============================================================================

// NewHTTPDownloader creates a new HTTPDownloader instance
func NewHTTPDownloader() *HTTPDownloader {
	return &HTTPDownloader{
		shims: NewShims(),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Initialize initializes the downloader
func (d *HTTPDownloader) Initialize(injector di.Injector) error {
	return nil
}

// Fetch retrieves the remote content at locator into destPath. Any transport
// or HTTP status failure is returned as a FetchError.
func (d *HTTPDownloader) Fetch(locator string, destPath string) error {
	resp, err := d.shims.HttpGet(locator)
	if err != nil {
		return &FetchError{Locator: locator, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return &FetchError{Locator: locator, Err: fmt.Errorf("unexpected HTTP status %s", resp.Status)}
	}

	dest, err := d.shims.Create(destPath)
	if err != nil {
		return &FetchError{Locator: locator, Err: err}
	}
	defer dest.Close()

	if _, err := io.Copy(dest, resp.Body); err != nil {
		return &FetchError{Locator: locator, Err: err}
	}

	return nil
}

// =============================================================================
// Helpers
// =============================================================================

// IsRemoteLocator reports whether the locator refers to a remote resource
func IsRemoteLocator(locator string) bool {
	return strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://")
}

// Ensure HTTPDownloader implements Downloader interface
var _ Downloader = (*HTTPDownloader)(nil)
