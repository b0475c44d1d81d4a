package config

// The Config types model the stemforge.yaml document. The backends list is the
// ordered set of publication targets; its order is significant, publication
// walks it exactly as written.

// Config is the top-level stemforge.yaml structure
type Config struct {
	Version  string    `yaml:"version"`
	Publish  *Publish  `yaml:"publish,omitempty"`
	Backends []Backend `yaml:"backends,omitempty"`
}

// Publish holds options controlling the publication loop
type Publish struct {
	ContinueOnFailure *bool `yaml:"continue_on_failure,omitempty"`
}

// Backend describes one configured infrastructure target
type Backend struct {
	ID       string                 `yaml:"id"`
	Driver   string                 `yaml:"driver"`
	Settings map[string]interface{} `yaml:"settings,omitempty"`
}
