package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/colorline/internal/domain/entity"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths renders the config file and database locations.
func (r *ConfigRenderer) RenderPaths(configFile, dbPath string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	status := ""
	if !exists {
		status = "\n  " + r.theme.Subtle.Render("Config file will be created on first run with all defaults.")
	}

	return fmt.Sprintf(
		"\n  %s Config   %s\n  %s Database %s%s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(configFile),
		iconStyle.Render(IconDatabase),
		pathStyle.Render(dbPath),
		status,
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderKeys renders configuration keys grouped by section.
func (r *ConfigRenderer) RenderKeys(keys []entity.ConfigKeyInfo) string {
	var sb strings.Builder
	section := ""
	for _, k := range keys {
		if k.Section != section {
			section = k.Section
			sb.WriteString("\n  " + r.theme.Title.Render(section) + "\n")
		}
		line := fmt.Sprintf("    %s %s %s",
			r.theme.Highlight.Render(k.Key),
			r.theme.Subtle.Render("("+k.Type+")"),
			k.Default,
		)
		switch {
		case len(k.Values) > 0:
			line += r.theme.Subtle.Render(" [" + strings.Join(k.Values, "|") + "]")
		case k.Range != "":
			line += r.theme.Subtle.Render(" [" + k.Range + "]")
		}
		sb.WriteString(line + "\n      " + r.theme.Subtle.Render(k.Description) + "\n")
	}
	return sb.String()
}
