package config

// Config represents the complete configuration for colorline.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	// Colors seeds every settings profile that has not overridden a field.
	Colors ColorsConfig `mapstructure:"colors" yaml:"colors" toml:"colors" json:"colors"`
	CLI    CLIConfig    `mapstructure:"cli" yaml:"cli" toml:"cli" json:"cli"`
}

// DatabaseConfig holds the settings database location.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/colorline/colorline.sqlite when empty.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path,omitempty" jsonschema:"description=SQLite settings database path"`
}

// LoggingConfig controls log verbosity and output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// ColorsConfig holds the default gradient.
type ColorsConfig struct {
	StartColor   string `mapstructure:"start_color" yaml:"start_color" toml:"start_color" json:"start_color" jsonschema:"pattern=^#?[0-9a-fA-F]{6}$"`
	EndColor     string `mapstructure:"end_color" yaml:"end_color" toml:"end_color" json:"end_color" jsonschema:"pattern=^#?[0-9a-fA-F]{6}$"`
	PreviewColor string `mapstructure:"preview_color" yaml:"preview_color" toml:"preview_color" json:"preview_color" jsonschema:"pattern=^#?[0-9a-fA-F]{6}$"`
	// FontSize is a percentage applied to recolored text; 0 leaves it alone.
	FontSize int `mapstructure:"font_size" yaml:"font_size" toml:"font_size" json:"font_size" jsonschema:"minimum=0,maximum=500"`
	Steps    int `mapstructure:"steps" yaml:"steps" toml:"steps" json:"steps" jsonschema:"minimum=1,maximum=64"`
}

// CLIConfig tunes command-line behavior.
type CLIConfig struct {
	// Jobs bounds how many documents are recolored in parallel.
	Jobs int `mapstructure:"jobs" yaml:"jobs" toml:"jobs" json:"jobs" jsonschema:"minimum=1"`
}
