package entity

// ConfigKeyInfo documents one config.toml key for `colorline config keys`.
type ConfigKeyInfo struct {
	// Key is the dotted TOML path, e.g. "colors.start_color".
	Key string `json:"key"`
	// Type is "string" or "int".
	Type string `json:"type"`
	// Default is the built-in value rendered as text.
	Default string `json:"default"`
	// Description is a one-line summary shown next to the key.
	Description string `json:"description"`
	// Values lists accepted values for enumerated keys such as logging.level.
	Values []string `json:"values,omitempty"`
	// Range bounds numeric keys, e.g. "1-64" for colors.steps.
	Range string `json:"range,omitempty"`
	// Section is the TOML table the key belongs to: Database, Logging, Colors or CLI.
	Section string `json:"section"`
}
