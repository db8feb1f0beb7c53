package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	portmocks "github.com/bnema/colorline/internal/application/port/mocks"
	"github.com/bnema/colorline/internal/domain/dom"
	"github.com/bnema/colorline/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

const page = `<!DOCTYPE html><html><head></head><body>` +
	`<div id="root">` +
	`<p id="p1" class="para">first <em>second</em></p>` +
	`<p id="p2" class="para">third</p>` +
	`<p id="p3">fourth</p>` +
	`</div>` +
	`<p id="p4" class="para">fifth</p>` +
	`</body></html>`

func parse(t *testing.T) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	return doc
}

func elem(t *testing.T, doc *dom.Document, id string) *html.Node {
	t.Helper()
	sel := doc.Query().Find("#" + id)
	require.Equal(t, 1, sel.Length(), "#%s", id)
	return sel.Get(0)
}

// selectIDs returns a selection mock spanning the text of two elements.
func selectIDs(t *testing.T, startID, endID string) *portmocks.MockSelectionSource {
	t.Helper()
	sel := portmocks.NewMockSelectionSource(t)
	sel.EXPECT().ActiveRange(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, doc *dom.Document) (*dom.Range, error) {
			return dom.NewRange(dom.FirstText(elem(t, doc, startID)), dom.LastText(elem(t, doc, endID)))
		})
	return sel
}

// fixed always draws the same value.
type fixed float64

func (f fixed) Float64() float64 { return float64(f) }
