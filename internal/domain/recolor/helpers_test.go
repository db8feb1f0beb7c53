package recolor

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/bnema/colorline/internal/domain/dom"
)

// sequence replays fixed draws, cycling when exhausted.
type sequence struct {
	vals []float64
	i    int
}

func (s *sequence) Float64() float64 {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

const page = `<!DOCTYPE html><html><head></head><body>` +
	`<div id="root">` +
	`<p id="p1" class="para">first <em>second</em></p>` +
	`<p id="p2" class="para">third</p>` +
	`<p id="p3">fourth</p>` +
	`</div>` +
	`<p id="p4" class="para">fifth</p>` +
	`</body></html>`

func parse(t *testing.T, src string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(src)
	require.NoError(t, err)
	return doc
}

func elem(t *testing.T, doc *dom.Document, id string) *html.Node {
	t.Helper()
	sel := doc.Query().Find("#" + id)
	require.Equal(t, 1, sel.Length(), "#%s", id)
	return sel.Get(0)
}

func textRange(t *testing.T, doc *dom.Document, startID, endID string) *dom.Range {
	t.Helper()
	r, err := dom.NewRange(dom.FirstText(elem(t, doc, startID)), dom.LastText(elem(t, doc, endID)))
	require.NoError(t, err)
	return r
}

func texts(nodes []*html.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if dom.IsText(n) {
			out = append(out, n.Data)
		}
	}
	return out
}
