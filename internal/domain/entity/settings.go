package entity

import "time"

// Default color settings.
const (
	DefaultStartColor   = "#ff0000"
	DefaultEndColor     = "#0000ff"
	DefaultPreviewColor = "#cccccc"
	DefaultProfile      = "default"
)

// Settings holds the user-tunable inputs of a recoloring pass.
type Settings struct {
	Profile      string
	StartColor   string
	EndColor     string
	PreviewColor string
	// FontSize is a percentage; zero leaves the page font size alone.
	FontSize  int
	Steps     int
	UpdatedAt time.Time
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Profile:      DefaultProfile,
		StartColor:   DefaultStartColor,
		EndColor:     DefaultEndColor,
		PreviewColor: DefaultPreviewColor,
		Steps:        DefaultGradientSteps,
	}
}

// Merge returns s with every zero field taken from fallback.
func (s Settings) Merge(fallback Settings) Settings {
	if s.Profile == "" {
		s.Profile = fallback.Profile
	}
	if s.StartColor == "" {
		s.StartColor = fallback.StartColor
	}
	if s.EndColor == "" {
		s.EndColor = fallback.EndColor
	}
	if s.PreviewColor == "" {
		s.PreviewColor = fallback.PreviewColor
	}
	if s.FontSize == 0 {
		s.FontSize = fallback.FontSize
	}
	if s.Steps == 0 {
		s.Steps = fallback.Steps
	}
	return s
}

// Palette builds the cyclic gradient described by the settings.
func (s Settings) Palette() (Palette, error) {
	return BuildCyclicGradient(s.StartColor, s.EndColor, s.Steps)
}
