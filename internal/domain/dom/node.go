package dom

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
)

// ErrDetached is returned when a node without a parent is replaced.
var ErrDetached = errors.New("node has no parent")

// Walk visits root and its descendants in document (pre-)order. It stops as
// soon as visit returns false and reports whether the walk completed.
func Walk(root *html.Node, visit func(*html.Node) bool) bool {
	if root == nil {
		return true
	}
	if !visit(root) {
		return false
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if !Walk(c, visit) {
			return false
		}
	}
	return true
}

// IsText reports whether n is a text node.
func IsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// rawTextElements hold text the parser never reads as markup.
var rawTextElements = map[string]struct{}{
	"script":    {},
	"style":     {},
	"title":     {},
	"textarea":  {},
	"xmp":       {},
	"iframe":    {},
	"noembed":   {},
	"noframes":  {},
	"noscript":  {},
	"plaintext": {},
}

// InRawText reports whether n is the content of a raw-text element such as
// script, style, title or textarea.
func InRawText(n *html.Node) bool {
	if n == nil || n.Parent == nil || n.Parent.Type != html.ElementNode {
		return false
	}
	_, ok := rawTextElements[n.Parent.Data]
	return ok
}

// Attr returns the value of attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets attribute key on n, replacing any existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// ClassOf returns the normalised class attribute of n.
func ClassOf(n *html.Node) string {
	v, _ := Attr(n, "class")
	return NormalizeClass(v)
}

// NormalizeClass collapses whitespace in a class attribute value.
func NormalizeClass(v string) string {
	return strings.Join(strings.Fields(v), " ")
}

// ParentElement returns the nearest ancestor element of n.
func ParentElement(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return p
		}
	}
	return nil
}

// FirstText returns the first text node in n's subtree, or nil.
func FirstText(n *html.Node) *html.Node {
	var found *html.Node
	Walk(n, func(c *html.Node) bool {
		if IsText(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// LastText returns the last text node in n's subtree, or nil.
func LastText(n *html.Node) *html.Node {
	var found *html.Node
	Walk(n, func(c *html.Node) bool {
		if IsText(c) {
			found = c
		}
		return true
	})
	return found
}

// CommonAncestor returns the deepest node containing both a and b
// (either may be the answer itself), or nil when they share no tree.
func CommonAncestor(a, b *html.Node) *html.Node {
	seen := make(map[*html.Node]struct{})
	for n := a; n != nil; n = n.Parent {
		seen[n] = struct{}{}
	}
	for n := b; n != nil; n = n.Parent {
		if _, ok := seen[n]; ok {
			return n
		}
	}
	return nil
}

// Replace swaps old for replacement in old's parent.
func Replace(old, replacement *html.Node) error {
	parent := old.Parent
	if parent == nil {
		return ErrDetached
	}
	parent.InsertBefore(replacement, old)
	parent.RemoveChild(old)
	return nil
}
