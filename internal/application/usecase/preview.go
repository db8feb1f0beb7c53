package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/colorline/internal/application/port"
	"github.com/bnema/colorline/internal/domain/dom"
	"github.com/bnema/colorline/internal/domain/entity"
	"github.com/bnema/colorline/internal/domain/recolor"
	"github.com/bnema/colorline/internal/logging"
)

// PreviewInput holds the input for highlighting what a pass would color.
type PreviewInput struct {
	Document  *dom.Document
	Selection port.SelectionSource
	Mode      entity.SelectionMode
	// Color is the highlight background; empty uses the default preview color.
	Color string
}

// PreviewUseCase highlights the elements a recoloring pass would touch.
// It never changes text structure.
type PreviewUseCase struct{}

// NewPreviewUseCase creates a new preview use case.
func NewPreviewUseCase() *PreviewUseCase {
	return &PreviewUseCase{}
}

// Show clears any earlier preview and highlights the parents of every text
// node the selection resolves to. It returns the number of highlighted elements.
func (uc *PreviewUseCase) Show(ctx context.Context, input PreviewInput) (int, error) {
	log := logging.FromContext(ctx)

	if input.Document == nil {
		return 0, dom.ErrNoDocument
	}

	nodes, err := resolveTextNodes(ctx, input.Document, input.Selection, input.Mode)
	if err != nil {
		return 0, err
	}

	count := recolor.ShowPreview(input.Document, nodes)
	if count == 0 {
		input.Document.RemoveStyle(recolor.PreviewStyleID)
		return 0, nil
	}

	if err := input.Document.InjectStyle(recolor.PreviewStyleID, recolor.PreviewStylesheet(input.Color)); err != nil {
		return 0, fmt.Errorf("failed to inject preview stylesheet: %w", err)
	}

	log.Debug().Str("mode", input.Mode.String()).Int("elements", count).Msg("preview shown")
	return count, nil
}

// Clear removes every preview highlight and the preview stylesheet.
func (uc *PreviewUseCase) Clear(ctx context.Context, doc *dom.Document) int {
	if doc == nil {
		return 0
	}
	count := recolor.ClearPreview(doc)
	doc.RemoveStyle(recolor.PreviewStyleID)

	logging.FromContext(ctx).Debug().Int("elements", count).Msg("preview cleared")
	return count
}
