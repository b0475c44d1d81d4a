package catalog

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Shims provides mockable wrappers around system and file operations
type Shims struct {
	ReadFile      func(name string) ([]byte, error)
	WriteFile     func(name string, data []byte, perm os.FileMode) error
	MkdirAll      func(path string, perm os.FileMode) error
	Rename        func(oldpath, newpath string) error
	YamlUnmarshal func(data []byte, v any) error
	YamlMarshal   func(v any) ([]byte, error)
}

// NewShims creates a new Shims instance with default implementations
func NewShims() *Shims {
	return &Shims{
		ReadFile:      os.ReadFile,
		WriteFile:     os.WriteFile,
		MkdirAll:      os.MkdirAll,
		Rename:        os.Rename,
		YamlUnmarshal: yaml.Unmarshal,
		YamlMarshal:   yaml.Marshal,
	}
}
