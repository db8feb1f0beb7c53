package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/colorline/internal/domain/entity"
)

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#a0b1c2"))
	assert.True(t, IsHexColor("A0B1C2"))
	assert.False(t, IsHexColor("#abc"))
	assert.False(t, IsHexColor("#a0b1c2ff"))
	assert.False(t, IsHexColor("red"))
}

func TestValidateSettings(t *testing.T) {
	assert.Empty(t, ValidateSettings("colors.", entity.DefaultSettings()))

	bad := entity.Settings{StartColor: "red", EndColor: "#0000ff", PreviewColor: "#ccc", Steps: 0, FontSize: -5}
	errs := ValidateSettings("colors.", bad)

	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "colors.start_color must be a hex color like #RRGGBB")
	assert.Contains(t, errs, "colors.preview_color must be a hex color like #RRGGBB")
	assert.Contains(t, errs, "colors.steps must be between 1 and 64")
	assert.Contains(t, errs, "colors.font_size must be between 0 and 500")
}
