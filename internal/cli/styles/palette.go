package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/bnema/colorline/internal/domain/entity"
)

// PaletteRenderer draws gradient palettes as terminal swatches.
type PaletteRenderer struct {
	theme *Theme
}

// NewPaletteRenderer creates a new palette renderer with the given theme.
func NewPaletteRenderer(theme *Theme) *PaletteRenderer {
	return &PaletteRenderer{theme: theme}
}

// RenderStrip renders the palette as one line of color blocks.
func (r *PaletteRenderer) RenderStrip(p entity.Palette) string {
	var sb strings.Builder
	for _, c := range p {
		sb.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  "))
	}
	return sb.String()
}

// RenderTable renders one labelled swatch per palette index.
func (r *PaletteRenderer) RenderTable(p entity.Palette) string {
	indexStyle := r.theme.Subtle
	var sb strings.Builder
	for i, c := range p {
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Foreground(lipgloss.Color(ContrastText(c.Hex()))).
			Padding(0, 1).
			Render(c.Hex())
		sb.WriteString(fmt.Sprintf("  %s %s  %s\n", indexStyle.Render(fmt.Sprintf("%3d", i)), swatch, indexStyle.Render(c.String())))
	}
	return sb.String()
}

// RenderSample colors text the way a recoloring pass would, given the
// palette indices assigned to each rune.
func (r *PaletteRenderer) RenderSample(text string, p entity.Palette, indices []int) string {
	runes := []rune(text)
	if len(p) == 0 || len(indices) != len(runes) {
		return text
	}
	var sb strings.Builder
	for i, ch := range runes {
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(p[indices[i]].Hex())).Render(string(ch)))
	}
	return sb.String()
}

// ContrastText returns black or white, whichever reads better on hex.
func ContrastText(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "#ffffff"
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}

// GradientText renders str rune by rune along a Luv blend from start to end.
func GradientText(str, start, end string) string {
	runes := []rune(str)
	from, err := colorful.Hex(start)
	if err != nil || len(runes) < 2 {
		return str
	}
	to, err := colorful.Hex(end)
	if err != nil {
		return str
	}

	var sb strings.Builder
	for i, ch := range runes {
		step := from.BlendLuv(to, float64(i)/float64(len(runes)-1)).Clamped()
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(step.Hex())).Render(string(ch)))
	}
	return sb.String()
}
