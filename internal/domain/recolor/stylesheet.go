package recolor

import (
	"fmt"
	"strings"

	"github.com/bnema/colorline/internal/domain/entity"
)

// Style element ids and the preview highlight class.
const (
	StyleID        = "clr-text-styles"
	PreviewStyleID = "clr-text-preview"
	PreviewClass   = "clr-text-preview"
)

// Stylesheet maps every palette index class to its color. A positive
// fontSize (percent) adds a size rule for recolored text.
func Stylesheet(palette entity.Palette, fontSize int) string {
	var b strings.Builder
	if fontSize > 0 {
		fmt.Fprintf(&b, "%s.%s{font-size:%d%%;}", TagName, WrapperClass, fontSize)
	}
	for i, c := range palette {
		fmt.Fprintf(&b, "%s.%s %s.%s%d{color: %s;}", TagName, WrapperClass, TagName, IndexClassPrefix, i, c)
	}
	return b.String()
}

// PreviewStylesheet highlights preview targets with a background color.
func PreviewStylesheet(color string) string {
	if color == "" {
		color = entity.DefaultPreviewColor
	}
	return fmt.Sprintf(".%s{background-color:%s;}", PreviewClass, color)
}
