package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/bnema/colorline/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionDatabase = "Database"
	SectionLogging  = "Logging"
	SectionColors   = "Colors"
	SectionCLI      = "CLI"
)

// Schema reflects the JSON schema of Config.
func Schema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/colorline/config.schema.json"
	schema.Title = "colorline configuration"
	schema.Description = "Configuration schema for colorline, a gradient text recolorer for HTML documents"
	return schema
}

// SchemaJSON returns the indented JSON schema.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes the JSON schema to path.
func WriteSchemaFile(path string) error {
	data, err := SchemaJSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 10)
	keys = append(keys, p.getDatabaseKeys()...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getColorsKeys(defaults)...)
	keys = append(keys, p.getCLIKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "$XDG_DATA_HOME/" + appName + "/" + databaseName,
			Description: "SQLite database holding settings profiles",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getColorsKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "colors.start_color",
			Type:        "string",
			Default:     defaults.Colors.StartColor,
			Description: "Gradient start color (#rrggbb)",
			Section:     SectionColors,
		},
		{
			Key:         "colors.end_color",
			Type:        "string",
			Default:     defaults.Colors.EndColor,
			Description: "Gradient end color (#rrggbb)",
			Section:     SectionColors,
		},
		{
			Key:         "colors.preview_color",
			Type:        "string",
			Default:     defaults.Colors.PreviewColor,
			Description: "Background of preview highlights (#rrggbb)",
			Section:     SectionColors,
		},
		{
			Key:         "colors.font_size",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Colors.FontSize),
			Description: "Font size of recolored text in percent, 0 keeps the page size",
			Range:       "0-500",
			Section:     SectionColors,
		},
		{
			Key:         "colors.steps",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Colors.Steps),
			Description: "Gradient interpolation steps",
			Range:       "1-64",
			Section:     SectionColors,
		},
	}
}

func (*SchemaProvider) getCLIKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "cli.jobs",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.CLI.Jobs),
			Description: "Documents recolored in parallel by the color command",
			Range:       "1+",
			Section:     SectionCLI,
		},
	}
}
