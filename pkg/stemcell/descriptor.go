package stemcell

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// The Descriptor is the validated, structured form of a stemcell manifest.
// It is parsed exactly once per publication run and shared read-only across
// every backend iteration.

// =============================================================================
// Constants
// =============================================================================

// ManifestFileName is the fixed name of the manifest at the archive root
const ManifestFileName = "stemcell.MF"

// ImageFileName is the fixed name of the image payload at the archive root
const ImageFileName = "image"

// =============================================================================
// Types
// =============================================================================

// Descriptor holds the validated manifest fields of a stemcell archive
type Descriptor struct {
	Name            string
	OperatingSystem string
	Version         string
	CloudProperties map[string]interface{}
	SHA1            string
}

// =============================================================================
// Helpers
// =============================================================================

// ParseManifest decodes manifest data into a Descriptor, validating every field
// against the manifest contract. Name, version and sha1 are required; the
// operating system defaults to the name when absent; cloud_properties must be
// a mapping when present. Version may be written as a number and is normalized
// to a string.
func ParseManifest(data []byte) (*Descriptor, error) {
	var manifest map[string]interface{}
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse stemcell manifest: %w", err)
	}

	name, err := requiredString(manifest, "name")
	if err != nil {
		return nil, err
	}

	version, err := requiredScalar(manifest, "version")
	if err != nil {
		return nil, err
	}

	sha1, err := requiredString(manifest, "sha1")
	if err != nil {
		return nil, err
	}

	operatingSystem, err := optionalString(manifest, "operating_system")
	if err != nil {
		return nil, err
	}
	if operatingSystem == "" {
		operatingSystem = name
	}

	cloudProperties, err := optionalMapping(manifest, "cloud_properties")
	if err != nil {
		return nil, err
	}

	return &Descriptor{
		Name:            name,
		OperatingSystem: operatingSystem,
		Version:         version,
		CloudProperties: cloudProperties,
		SHA1:            sha1,
	}, nil
}

// requiredString extracts a mandatory string field from the manifest mapping
func requiredString(manifest map[string]interface{}, field string) (string, error) {
	value, ok := manifest[field]
	if !ok || value == nil {
		return "", &MissingFieldError{Field: field, ExpectedType: "string"}
	}
	str, ok := value.(string)
	if !ok {
		return "", &TypeMismatchError{Field: field, ExpectedType: "string", ActualType: typeName(value)}
	}
	return str, nil
}

// requiredScalar extracts a mandatory field that may be written as a string or
// a number, normalizing it to its string form.
func requiredScalar(manifest map[string]interface{}, field string) (string, error) {
	value, ok := manifest[field]
	if !ok || value == nil {
		return "", &MissingFieldError{Field: field, ExpectedType: "string"}
	}
	switch v := value.(type) {
	case string:
		return v, nil
	case int, int64, uint64, float64:
		return fmt.Sprintf("%v", v), nil
	default:
		return "", &TypeMismatchError{Field: field, ExpectedType: "string", ActualType: typeName(value)}
	}
}

// optionalString extracts an optional string field from the manifest mapping
func optionalString(manifest map[string]interface{}, field string) (string, error) {
	value, ok := manifest[field]
	if !ok || value == nil {
		return "", nil
	}
	str, ok := value.(string)
	if !ok {
		return "", &TypeMismatchError{Field: field, ExpectedType: "string", ActualType: typeName(value)}
	}
	return str, nil
}

// optionalMapping extracts an optional mapping field from the manifest
func optionalMapping(manifest map[string]interface{}, field string) (map[string]interface{}, error) {
	value, ok := manifest[field]
	if !ok || value == nil {
		return nil, nil
	}
	mapping, ok := value.(map[string]interface{})
	if !ok {
		return nil, &TypeMismatchError{Field: field, ExpectedType: "mapping", ActualType: typeName(value)}
	}
	return mapping, nil
}

// typeName reports a human-readable type name for validation errors
func typeName(value interface{}) string {
	switch value.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int64, uint64, float64:
		return "number"
	case []interface{}:
		return "list"
	case map[string]interface{}:
		return "mapping"
	default:
		return fmt.Sprintf("%T", value)
	}
}
