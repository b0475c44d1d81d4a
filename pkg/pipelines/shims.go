package pipelines

import (
	"crypto/rand"
	"os"

	"github.com/stemforge/cli/pkg/cloud"
	"github.com/stemforge/cli/pkg/config"
	"github.com/stemforge/cli/pkg/di"
)

// Shims provides mockable wrappers around system operations and driver construction
type Shims struct {
	Stat      func(name string) (os.FileInfo, error)
	TempDir   func() string
	RandRead  func(b []byte) (int, error)
	Remove    func(name string) error
	RemoveAll func(path string) error
	NewDriver func(injector di.Injector, backend config.Backend) (cloud.Driver, error)
}

// NewShims creates a new Shims instance with default implementations
func NewShims() *Shims {
	return &Shims{
		Stat:      os.Stat,
		TempDir:   os.TempDir,
		RandRead:  rand.Read,
		Remove:    os.Remove,
		RemoveAll: os.RemoveAll,
		NewDriver: cloud.NewDriver,
	}
}
