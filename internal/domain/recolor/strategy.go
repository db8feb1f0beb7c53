// Package recolor paints runs of document text with a gradient palette.
//
// A pass resolves the active range into candidate nodes (Resolve), narrows
// them to text not yet painted (Expand), then replaces every text node with
// one element per character carrying a palette index (Recolorer).
package recolor

import (
	"golang.org/x/net/html"

	"github.com/bnema/colorline/internal/domain/dom"
	"github.com/bnema/colorline/internal/domain/entity"
)

// Resolve turns the active range into candidate nodes for the given mode.
// A nil range, like a selection without a usable class, yields no nodes.
func Resolve(mode entity.SelectionMode, doc *dom.Document, rng *dom.Range) []*html.Node {
	if doc == nil || rng == nil {
		return nil
	}
	switch mode {
	case entity.SelectionExactRange:
		return resolveExact(rng)
	case entity.SelectionEnclosingNode:
		return resolveEnclosing(rng)
	case entity.SelectionSimilarByClass:
		return resolveSimilar(doc, rng)
	default:
		return nil
	}
}

// resolveExact collects intersecting nodes under the common ancestor,
// from the start container through the end container inclusive.
func resolveExact(rng *dom.Range) []*html.Node {
	var nodes []*html.Node
	dom.Walk(rng.CommonAncestor, func(n *html.Node) bool {
		if !rng.Intersects(n) {
			return true
		}
		if len(nodes) == 0 && n != rng.StartContainer {
			return true
		}
		nodes = append(nodes, n)
		return n != rng.EndContainer
	})
	return nodes
}

func resolveEnclosing(rng *dom.Range) []*html.Node {
	if rng.CommonAncestor == nil {
		return nil
	}
	return []*html.Node{rng.CommonAncestor}
}

// resolveSimilar finds every element sharing the class of the end
// container's parent.
func resolveSimilar(doc *dom.Document, rng *dom.Range) []*html.Node {
	if rng.EndContainer == nil {
		return nil
	}
	parent := rng.EndContainer.Parent
	if parent == nil || parent.Type != html.ElementNode {
		return nil
	}
	class := dom.ClassOf(parent)
	if class == "" {
		return nil
	}
	return doc.FindByClass(class)
}
