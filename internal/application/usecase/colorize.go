package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/net/html"

	"github.com/bnema/colorline/internal/application/port"
	"github.com/bnema/colorline/internal/domain/dom"
	"github.com/bnema/colorline/internal/domain/entity"
	"github.com/bnema/colorline/internal/domain/recolor"
	"github.com/bnema/colorline/internal/logging"
)

// ColorizeInput holds the input for a recoloring pass.
type ColorizeInput struct {
	// Document is the page being recolored in place.
	Document *dom.Document
	// Selection yields the active range; nil means nothing is selected.
	Selection port.SelectionSource
	// Mode picks which nodes the selection expands to.
	Mode entity.SelectionMode
	// Settings supplies colors, steps and font size.
	Settings entity.Settings
}

// ColorizeOutput holds the result of a recoloring pass.
type ColorizeOutput struct {
	Palette entity.Palette
	Units   []recolor.Unit
	// Characters is the number of runes wrapped across all units.
	Characters int
}

// ColorizeUseCase recolors the text covered by a selection.
type ColorizeUseCase struct {
	random port.RandomSource
}

// NewColorizeUseCase creates a new colorize use case. A nil random source
// keeps every walk at the full palette length.
func NewColorizeUseCase(random port.RandomSource) *ColorizeUseCase {
	return &ColorizeUseCase{random: random}
}

// Execute resolves the selection, wraps every unprocessed text node in
// colored markup and installs the palette stylesheet. An empty selection
// leaves the document untouched.
func (uc *ColorizeUseCase) Execute(ctx context.Context, input ColorizeInput) (*ColorizeOutput, error) {
	log := logging.FromContext(ctx)

	if input.Document == nil {
		return nil, dom.ErrNoDocument
	}

	palette, err := input.Settings.Palette()
	if err != nil {
		return nil, fmt.Errorf("failed to build palette: %w", err)
	}

	output := &ColorizeOutput{Palette: palette}

	nodes, err := resolveTextNodes(ctx, input.Document, input.Selection, input.Mode)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		log.Debug().Str("mode", input.Mode.String()).Msg("nothing to color")
		return output, nil
	}

	var rnd recolor.RandomSource
	if uc.random != nil {
		rnd = uc.random
	}
	output.Units = recolor.NewRecolorer(rnd).Recolor(input.Document, nodes, palette)
	if len(output.Units) == 0 {
		return output, nil
	}
	for _, u := range output.Units {
		output.Characters += len(u.Indices)
	}

	if err := uc.UpdateStyles(ctx, input.Document, input.Settings); err != nil {
		return nil, err
	}

	log.Info().
		Str("mode", input.Mode.String()).
		Int("units", len(output.Units)).
		Int("characters", output.Characters).
		Int("palette", len(palette)).
		Msg("recolored selection")

	return output, nil
}

// UpdateStyles regenerates the palette stylesheet without touching any text.
// Markup from earlier passes picks up the new colors.
func (uc *ColorizeUseCase) UpdateStyles(ctx context.Context, injector port.StyleInjector, settings entity.Settings) error {
	if injector == nil {
		return errors.New("style injector is nil")
	}

	palette, err := settings.Palette()
	if err != nil {
		return fmt.Errorf("failed to build palette: %w", err)
	}

	if err := injector.InjectStyle(recolor.StyleID, recolor.Stylesheet(palette, settings.FontSize)); err != nil {
		return fmt.Errorf("failed to inject stylesheet: %w", err)
	}

	logging.FromContext(ctx).Debug().
		Int("palette", len(palette)).
		Int("font_size", settings.FontSize).
		Msg("stylesheet updated")
	return nil
}

// resolveTextNodes runs the selection through strategy and expansion.
func resolveTextNodes(
	ctx context.Context,
	doc *dom.Document,
	selection port.SelectionSource,
	mode entity.SelectionMode,
) ([]*html.Node, error) {
	if selection == nil {
		return nil, nil
	}
	rng, err := selection.ActiveRange(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}
	if rng == nil {
		return nil, nil
	}
	return recolor.Expand(doc, recolor.Resolve(mode, doc, rng)), nil
}
