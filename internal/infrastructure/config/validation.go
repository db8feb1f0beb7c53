package config

import (
	"fmt"
	"strings"

	"github.com/bnema/colorline/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateColors(config)...)
	validationErrors = append(validationErrors, validateCLI(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	switch config.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
		return nil
	default:
		return []string{fmt.Sprintf("logging.level %q is not a known level", config.Logging.Level)}
	}
}

func validateColors(config *Config) []string {
	return validation.ValidateSettings("colors.", config.Colors.Settings())
}

func validateCLI(config *Config) []string {
	if config.CLI.Jobs < 1 {
		return []string{"cli.jobs must be at least 1"}
	}
	return nil
}
