package recolor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/bnema/colorline/internal/domain/dom"
)

// ShowPreview highlights the parent element of every text node and returns
// how many elements were highlighted. Earlier highlights are cleared first.
func ShowPreview(doc *dom.Document, textNodes []*html.Node) int {
	if doc == nil {
		return 0
	}
	ClearPreview(doc)

	seen := make(map[*html.Node]struct{})
	var parents []*html.Node
	for _, n := range textNodes {
		p := n.Parent
		if p == nil || p.Type != html.ElementNode || dom.InRawText(n) {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		parents = append(parents, p)
	}
	if len(parents) == 0 {
		return 0
	}

	doc.Query().FindNodes(parents...).AddClass(PreviewClass)
	return len(parents)
}

// ClearPreview removes every preview highlight and returns how many were removed.
func ClearPreview(doc *dom.Document) int {
	if doc == nil {
		return 0
	}
	sel := doc.Query().Find("." + PreviewClass)
	sel.RemoveClass(PreviewClass)
	sel.Each(func(_ int, s *goquery.Selection) {
		if v, _ := s.Attr("class"); strings.TrimSpace(v) == "" {
			s.RemoveAttr("class")
		}
	})
	return sel.Length()
}
