package download

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
)

// The HTTPDownloader tests cover fetching into a destination file, HTTP status
// handling, and the remote locator detection helper, with the HTTP transport
// shimmed so no network access occurs.

// =============================================================================
// Test Helpers
// =============================================================================

func httpResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d status", status),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

// =============================================================================
// Test Public Methods
// =============================================================================

func TestHTTPDownloader_Fetch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Given a downloader with a stubbed 200 response
		downloader := NewHTTPDownloader()
		downloader.shims.HttpGet = func(url string) (*http.Response, error) {
			return httpResponse(200, "archive-bits"), nil
		}
		destPath := filepath.Join(t.TempDir(), "archive.tgz")

		// When fetching
		err := downloader.Fetch("https://example.com/stemcell.tgz", destPath)

		// Then the destination file should hold the body
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		data, err := os.ReadFile(destPath)
		if err != nil {
			t.Fatalf("Failed to read destination: %v", err)
		}
		if string(data) != "archive-bits" {
			t.Errorf("Expected archive-bits, got %s", string(data))
		}
	})

	t.Run("TransportError", func(t *testing.T) {
		// Given a downloader whose transport fails
		downloader := NewHTTPDownloader()
		downloader.shims.HttpGet = func(url string) (*http.Response, error) {
			return nil, fmt.Errorf("connection refused")
		}

		// When fetching
		err := downloader.Fetch("https://example.com/stemcell.tgz", filepath.Join(t.TempDir(), "archive.tgz"))

		// Then a FetchError naming the locator should be returned
		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) {
			t.Fatalf("Expected FetchError, got %v", err)
		}
		if fetchErr.Locator != "https://example.com/stemcell.tgz" {
			t.Errorf("Expected locator in error, got %s", fetchErr.Locator)
		}
	})

	t.Run("NonOKStatus", func(t *testing.T) {
		// Given a downloader with a stubbed 404 response
		downloader := NewHTTPDownloader()
		downloader.shims.HttpGet = func(url string) (*http.Response, error) {
			return httpResponse(404, "not found"), nil
		}

		// When fetching
		err := downloader.Fetch("https://example.com/missing.tgz", filepath.Join(t.TempDir(), "archive.tgz"))

		// Then a FetchError should be returned
		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) {
			t.Fatalf("Expected FetchError, got %v", err)
		}
	})

	t.Run("DestinationNotWritable", func(t *testing.T) {
		// Given a destination path in a directory that does not exist
		downloader := NewHTTPDownloader()
		downloader.shims.HttpGet = func(url string) (*http.Response, error) {
			return httpResponse(200, "archive-bits"), nil
		}

		// When fetching
		err := downloader.Fetch("https://example.com/stemcell.tgz", "/nonexistent/dir/archive.tgz")

		// Then a FetchError should be returned
		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) {
			t.Fatalf("Expected FetchError, got %v", err)
		}
	})
}

func TestIsRemoteLocator(t *testing.T) {
	t.Run("DetectsSchemes", func(t *testing.T) {
		// Given a set of locators
		cases := map[string]bool{
			"https://example.com/stemcell.tgz": true,
			"http://example.com/stemcell.tgz":  true,
			"/var/stemcells/stemcell.tgz":      false,
			"stemcell.tgz":                     false,
			"ftp://example.com/stemcell.tgz":   false,
		}

		// When classifying each locator
		// Then the classification should match the expectation
		for locator, expected := range cases {
			if IsRemoteLocator(locator) != expected {
				t.Errorf("Expected IsRemoteLocator(%q) = %v", locator, expected)
			}
		}
	})
}
