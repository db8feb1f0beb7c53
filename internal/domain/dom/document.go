// Package dom is the document model the recoloring engine operates on:
// a parsed HTML tree plus the set of nodes produced by earlier passes.
package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ProcessedAttr marks elements produced by a recoloring pass so that a
// serialised document keeps its processed state when parsed again.
const ProcessedAttr = "data-clr-recolored"

// ErrNoDocument is returned when a document has no root node.
var ErrNoDocument = errors.New("document has no root node")

// Document wraps an HTML tree and tracks processed output nodes.
type Document struct {
	root      *html.Node
	processed map[*html.Node]struct{}
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return NewDocument(root)
}

// ParseString parses an HTML document held in a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// NewDocument wraps an existing tree. Elements carrying ProcessedAttr are
// registered as processed.
func NewDocument(root *html.Node) (*Document, error) {
	if root == nil {
		return nil, ErrNoDocument
	}
	d := &Document{root: root, processed: make(map[*html.Node]struct{})}
	Walk(root, func(n *html.Node) bool {
		if v, ok := Attr(n, ProcessedAttr); ok && v == "true" {
			d.processed[n] = struct{}{}
		}
		return true
	})
	return d, nil
}

// Root returns the document node.
func (d *Document) Root() *html.Node {
	return d.root
}

// Query returns a goquery view over the live tree.
func (d *Document) Query() *goquery.Document {
	return goquery.NewDocumentFromNode(d.root)
}

// MarkProcessed flags n (and so its whole subtree) as recoloring output.
func (d *Document) MarkProcessed(n *html.Node) {
	if n == nil {
		return
	}
	d.processed[n] = struct{}{}
	if n.Type == html.ElementNode {
		SetAttr(n, ProcessedAttr, "true")
	}
}

// IsProcessed reports whether n or one of its ancestors is marked.
func (d *Document) IsProcessed(n *html.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if _, ok := d.processed[cur]; ok {
			return true
		}
	}
	return false
}

// FindByClass returns every element whose class attribute equals class,
// compared after whitespace normalisation.
func (d *Document) FindByClass(class string) []*html.Node {
	want := NormalizeClass(class)
	if want == "" {
		return nil
	}
	return d.Query().Find("[class]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("class")
		return NormalizeClass(v) == want
	}).Nodes
}

// InjectStyle creates or replaces <style id="id"> in the document head.
func (d *Document) InjectStyle(id, css string) error {
	if d.root == nil {
		return ErrNoDocument
	}

	q := d.Query()
	style := q.Find("style#" + id).First()
	if style.Length() > 0 {
		n := style.Get(0)
		for c := n.FirstChild; c != nil; c = n.FirstChild {
			n.RemoveChild(c)
		}
		n.AppendChild(&html.Node{Type: html.TextNode, Data: css})
		d.processed[n] = struct{}{}
		return nil
	}

	el := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
		Attr:     []html.Attribute{{Key: "id", Val: id}},
	}
	el.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	d.head().AppendChild(el)
	d.processed[el] = struct{}{}
	return nil
}

// RemoveStyle drops <style id="id"> if present.
func (d *Document) RemoveStyle(id string) {
	d.Query().Find("style#" + id).Remove()
}

func (d *Document) head() *html.Node {
	q := d.Query()
	if head := q.Find("head").First(); head.Length() > 0 {
		return head.Get(0)
	}

	head := &html.Node{Type: html.ElementNode, DataAtom: atom.Head, Data: "head"}
	parent := d.root
	if htmlEl := q.Find("html").First(); htmlEl.Length() > 0 {
		parent = htmlEl.Get(0)
	}
	parent.InsertBefore(head, parent.FirstChild)
	return head
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if d.root == nil {
		return ErrNoDocument
	}
	return html.Render(w, d.root)
}

// String renders the document, returning an empty string on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}
