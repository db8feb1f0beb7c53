package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/colorline/internal/domain/entity"
)

// ColorRenderer renders recoloring results.
type ColorRenderer struct {
	theme *Theme
}

// NewColorRenderer creates a new color renderer with the given theme.
func NewColorRenderer(theme *Theme) *ColorRenderer {
	return &ColorRenderer{theme: theme}
}

// RenderColored reports one recolored document.
func (r *ColorRenderer) RenderColored(path string, units, characters int) string {
	if units == 0 {
		return fmt.Sprintf("  %s %s %s",
			r.theme.WarningStyle.Render(IconWarning),
			r.theme.Subtle.Render(path),
			r.theme.Subtle.Render("nothing to color"),
		)
	}
	return fmt.Sprintf("  %s %s %s text nodes, %s characters",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
		r.theme.Highlight.Render(fmt.Sprintf("%d", units)),
		r.theme.Highlight.Render(fmt.Sprintf("%d", characters)),
	)
}

// RenderPreview reports how many elements a preview highlighted.
func (r *ColorRenderer) RenderPreview(path string, count int) string {
	return fmt.Sprintf("  %s %s %s elements highlighted",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconEye),
		r.theme.Subtle.Render(path),
		r.theme.Highlight.Render(fmt.Sprintf("%d", count)),
	)
}

// RenderFailure reports a document that could not be processed.
func (r *ColorRenderer) RenderFailure(path string, err error) string {
	return fmt.Sprintf("  %s %s %v",
		r.theme.ErrorStyle.Render(IconX),
		r.theme.Subtle.Render(path),
		err,
	)
}

// RenderSettings renders a settings profile with its gradient.
func (r *ColorRenderer) RenderSettings(s entity.Settings, strip string) string {
	label := r.theme.Subtle
	value := r.theme.Title

	rows := []string{
		fmt.Sprintf("%s %s", r.theme.Badge.Render(s.Profile), strip),
		fmt.Sprintf("%s %s", label.Render("start   "), value.Render(s.StartColor)),
		fmt.Sprintf("%s %s", label.Render("end     "), value.Render(s.EndColor)),
		fmt.Sprintf("%s %s", label.Render("preview "), value.Render(s.PreviewColor)),
		fmt.Sprintf("%s %s", label.Render("steps   "), value.Render(fmt.Sprintf("%d", s.Steps))),
		fmt.Sprintf("%s %s", label.Render("font    "), value.Render(fontSizeLabel(s.FontSize))),
	}
	if !s.UpdatedAt.IsZero() {
		rows = append(rows, fmt.Sprintf("%s %s", label.Render("updated "), label.Render(s.UpdatedAt.Local().Format("2006-01-02 15:04"))))
	}
	return r.theme.Box.Render(strings.Join(rows, "\n"))
}

func fontSizeLabel(size int) string {
	if size <= 0 {
		return "unchanged"
	}
	return fmt.Sprintf("%d%%", size)
}
