package download

import (
	"io"
	"net/http"
	"os"
)

// Shims provides mockable wrappers around network and file operations
type Shims struct {
	HttpGet func(url string) (*http.Response, error)
	Create  func(name string) (io.WriteCloser, error)
}

// NewShims creates a new Shims instance with default implementations
func NewShims() *Shims {
	return &Shims{
		HttpGet: http.Get,
		Create:  func(name string) (io.WriteCloser, error) { return os.Create(name) },
	}
}
