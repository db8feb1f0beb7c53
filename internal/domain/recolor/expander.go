package recolor

import (
	"golang.org/x/net/html"

	"github.com/bnema/colorline/internal/domain/dom"
)

// Expand walks each candidate subtree and returns the text nodes that no
// earlier pass has produced, in discovery order and without duplicates.
// Script, style, title and other raw-text content is never returned.
func Expand(doc *dom.Document, candidates []*html.Node) []*html.Node {
	if doc == nil {
		return nil
	}

	seen := make(map[*html.Node]struct{})
	var out []*html.Node
	for _, candidate := range candidates {
		dom.Walk(candidate, func(n *html.Node) bool {
			if !dom.IsText(n) || dom.InRawText(n) || doc.IsProcessed(n) {
				return true
			}
			if _, dup := seen[n]; dup {
				return true
			}
			seen[n] = struct{}{}
			out = append(out, n)
			return true
		})
	}
	return out
}
