package catalog

import (
	"errors"
	"fmt"
)

// The catalog package persists one Record per (name, version, backend) as the
// durable outcome of stemcell publication. The workflow owns a Record in memory
// until Save; afterwards the store owns it.

// ErrRecordNotFound indicates no record exists for the requested key
var ErrRecordNotFound = errors.New("stemcell record not found")

// Record is the persisted catalog entry for one published stemcell image
type Record struct {
	Name            string `yaml:"name"`
	OperatingSystem string `yaml:"operating_system"`
	Version         string `yaml:"version"`
	SHA1            string `yaml:"sha1"`
	BackendID       string `yaml:"backend_id"`
	ImageID         string `yaml:"image_id"`
}

// DuplicateRecordError indicates a record already exists for (name, version, backend)
// and override mode was not requested.
type DuplicateRecordError struct {
	Name      string
	Version   string
	BackendID string
}

// Error returns the error message for DuplicateRecordError
func (e *DuplicateRecordError) Error() string {
	return fmt.Sprintf("stemcell %s/%s already exists on backend %s, use --fix to republish", e.Name, e.Version, e.BackendID)
}
