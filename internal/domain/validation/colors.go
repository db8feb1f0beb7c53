package validation

import (
	"fmt"
	"regexp"

	"github.com/bnema/colorline/internal/domain/entity"
)

var hexColorRE = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// Limits for tunable settings.
const (
	MaxGradientSteps = 64
	MaxFontSize      = 500
)

// IsHexColor reports whether value is #RRGGBB or RRGGBB.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidateHexColor returns a message when value is not a hex color.
func ValidateHexColor(field, value string) []string {
	if !IsHexColor(value) {
		return []string{field + " must be a hex color like #RRGGBB"}
	}
	return nil
}

// ValidateSettings checks every field of a settings profile.
func ValidateSettings(prefix string, s entity.Settings) []string {
	var errs []string

	errs = append(errs, ValidateHexColor(prefix+"start_color", s.StartColor)...)
	errs = append(errs, ValidateHexColor(prefix+"end_color", s.EndColor)...)
	errs = append(errs, ValidateHexColor(prefix+"preview_color", s.PreviewColor)...)

	if s.Steps < 1 || s.Steps > MaxGradientSteps {
		errs = append(errs, fmt.Sprintf("%ssteps must be between 1 and %d", prefix, MaxGradientSteps))
	}
	if s.FontSize < 0 || s.FontSize > MaxFontSize {
		errs = append(errs, fmt.Sprintf("%sfont_size must be between 0 and %d", prefix, MaxFontSize))
	}

	return errs
}
