package recolor

import (
	"strconv"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/bnema/colorline/internal/domain/dom"
	"github.com/bnema/colorline/internal/domain/entity"
)

// Markup produced by a pass.
const (
	TagName          = "clr"
	WrapperClass     = "clr-text"
	IndexClassPrefix = "clr-text-"
)

// Unit is one recolored text node.
type Unit struct {
	Source  string
	Wrapper *html.Node
	Indices []int
}

// Recolorer replaces text nodes with per-character colored markup.
type Recolorer struct {
	rnd RandomSource
}

// NewRecolorer creates a recolorer drawing walk ceilings from rnd.
func NewRecolorer(rnd RandomSource) *Recolorer {
	return &Recolorer{rnd: rnd}
}

// Recolor paints each text node and marks the output processed. Nodes
// without a parent are skipped; empty ones are marked but left in place.
func (r *Recolorer) Recolor(doc *dom.Document, nodes []*html.Node, palette entity.Palette) []Unit {
	if doc == nil || len(palette) == 0 {
		return nil
	}

	var units []Unit
	for _, node := range nodes {
		if node == nil || node.Parent == nil {
			continue
		}
		if node.Data == "" {
			doc.MarkProcessed(node)
			continue
		}

		unit := r.build(node, len(palette))
		doc.MarkProcessed(unit.Wrapper)
		if err := dom.Replace(node, unit.Wrapper); err != nil {
			continue
		}
		units = append(units, unit)
	}
	return units
}

// build assembles the replacement off-tree so the document sees a single
// substitution. Each character keeps its original bytes, so invalid UTF-8
// passes through unchanged as one single-byte character.
func (r *Recolorer) build(node *html.Node, size int) Unit {
	text := node.Data
	indices := Indices(utf8.RuneCountInString(text), size, r.rnd)

	wrapper := &html.Node{
		Type: html.ElementNode,
		Data: TagName,
		Attr: []html.Attribute{{Key: "class", Val: WrapperClass}},
	}
	for i, pos := 0, 0; pos < len(text); i++ {
		_, width := utf8.DecodeRuneInString(text[pos:])
		el := &html.Node{
			Type: html.ElementNode,
			Data: TagName,
			Attr: []html.Attribute{{Key: "class", Val: IndexClassPrefix + strconv.Itoa(indices[i])}},
		}
		el.AppendChild(&html.Node{Type: html.TextNode, Data: text[pos : pos+width]})
		wrapper.AppendChild(el)
		pos += width
	}

	return Unit{Source: text, Wrapper: wrapper, Indices: indices}
}
