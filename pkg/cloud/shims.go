package cloud

import (
	"crypto/rand"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/shirou/gopsutil/disk"
	gossh "golang.org/x/crypto/ssh"
)

// Shims provides mockable wrappers around system, file and crypto operations
type Shims struct {
	Stat            func(name string) (os.FileInfo, error)
	MkdirAll        func(path string, perm os.FileMode) error
	Open            func(name string) (io.ReadCloser, error)
	Create          func(name string) (io.WriteCloser, error)
	Join            func(elem ...string) string
	ReadFile        func(name string) ([]byte, error)
	RandRead        func(b []byte) (int, error)
	DiskUsage       func(path string) (*disk.UsageStat, error)
	JsonMarshal     func(v any) ([]byte, error)
	JsonUnmarshal   func(data []byte, v any) error
	ParsePrivateKey func(pemBytes []byte) (gossh.Signer, error)
}

// NewShims creates a new Shims instance with default implementations
func NewShims() *Shims {
	return &Shims{
		Stat:            os.Stat,
		MkdirAll:        os.MkdirAll,
		Open:            func(name string) (io.ReadCloser, error) { return os.Open(name) },
		Create:          func(name string) (io.WriteCloser, error) { return os.Create(name) },
		Join:            filepath.Join,
		ReadFile:        os.ReadFile,
		RandRead:        rand.Read,
		DiskUsage:       disk.Usage,
		JsonMarshal:     json.Marshal,
		JsonUnmarshal:   json.Unmarshal,
		ParsePrivateKey: gossh.ParsePrivateKey,
	}
}
