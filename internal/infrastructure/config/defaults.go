package config

import (
	"github.com/bnema/colorline/internal/domain/entity"
)

// Default configuration constants
const (
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultJobs      = 4
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Colors: ColorsConfig{
			StartColor:   entity.DefaultStartColor,
			EndColor:     entity.DefaultEndColor,
			PreviewColor: entity.DefaultPreviewColor,
			Steps:        entity.DefaultGradientSteps,
		},
		CLI: CLIConfig{
			Jobs: defaultJobs,
		},
	}
}

// Settings converts the color section into default settings.
func (c ColorsConfig) Settings() entity.Settings {
	return entity.Settings{
		Profile:      entity.DefaultProfile,
		StartColor:   c.StartColor,
		EndColor:     c.EndColor,
		PreviewColor: c.PreviewColor,
		FontSize:     c.FontSize,
		Steps:        c.Steps,
	}
}
