package stemcell

import (
	"io"
	"os"
	"path/filepath"
)

// Shims provides mockable wrappers around system and file operations
type Shims struct {
	MkdirTemp func(dir, pattern string) (string, error)
	ReadFile  func(name string) ([]byte, error)
	Stat      func(name string) (os.FileInfo, error)
	Open      func(name string) (io.ReadCloser, error)
	Join      func(elem ...string) string
}

// NewShims creates a new Shims instance with default implementations
func NewShims() *Shims {
	return &Shims{
		MkdirTemp: os.MkdirTemp,
		ReadFile:  os.ReadFile,
		Stat:      os.Stat,
		Open:      func(name string) (io.ReadCloser, error) { return os.Open(name) },
		Join:      filepath.Join,
	}
}
