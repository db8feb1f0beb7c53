package port

import (
	"context"

	"github.com/bnema/colorline/internal/domain/dom"
)

// SelectionSource provides the user's active selection within a document.
// A nil range with a nil error means nothing is selected.
type SelectionSource interface {
	ActiveRange(ctx context.Context, doc *dom.Document) (*dom.Range, error)
}
