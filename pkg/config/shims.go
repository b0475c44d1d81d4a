package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Shims provides mockable wrappers around system and file operations
type Shims struct {
	Stat          func(name string) (os.FileInfo, error)
	ReadFile      func(name string) ([]byte, error)
	YamlUnmarshal func(data []byte, v any) error
}

// NewShims creates a new Shims instance with default implementations
func NewShims() *Shims {
	return &Shims{
		Stat:          os.Stat,
		ReadFile:      os.ReadFile,
		YamlUnmarshal: yaml.Unmarshal,
	}
}
