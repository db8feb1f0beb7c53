// Package selection provides port.SelectionSource adapters that derive an
// active range from a static document.
package selection

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/bnema/colorline/internal/application/port"
	"github.com/bnema/colorline/internal/domain/dom"
)

// ErrInvalidSelector is returned when a CSS selector does not compile.
var ErrInvalidSelector = errors.New("invalid selector")

var (
	_ port.SelectionSource = SelectorSource{}
	_ port.SelectionSource = TextMatchSource{}
	_ port.SelectionSource = EmptySource{}
)

// SelectorSource selects from the first element matching Start through the
// first element matching End. An empty End reuses Start.
type SelectorSource struct {
	Start string
	End   string
}

// ActiveRange implements port.SelectionSource.
func (s SelectorSource) ActiveRange(_ context.Context, doc *dom.Document) (*dom.Range, error) {
	if doc == nil {
		return nil, dom.ErrNoDocument
	}
	if strings.TrimSpace(s.Start) == "" {
		return nil, nil
	}
	end := s.End
	if strings.TrimSpace(end) == "" {
		end = s.Start
	}

	startEl, err := first(doc, s.Start)
	if err != nil || startEl == nil {
		return nil, err
	}
	endEl, err := first(doc, end)
	if err != nil || endEl == nil {
		return nil, err
	}

	return dom.NewRange(orSelf(dom.FirstText(startEl), startEl), orSelf(dom.LastText(endEl), endEl))
}

func first(doc *dom.Document, selector string) (*html.Node, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSelector, selector, err)
	}
	sel := doc.Query().FindMatcher(matcher)
	if sel.Length() == 0 {
		return nil, nil
	}
	return sel.Get(0), nil
}

func orSelf(n, fallback *html.Node) *html.Node {
	if n != nil {
		return n
	}
	return fallback
}

// TextMatchSource selects from the first text node containing Start through
// the first text node containing End. An empty End reuses Start.
type TextMatchSource struct {
	Start string
	End   string
}

// ActiveRange implements port.SelectionSource.
func (s TextMatchSource) ActiveRange(_ context.Context, doc *dom.Document) (*dom.Range, error) {
	if doc == nil {
		return nil, dom.ErrNoDocument
	}
	if s.Start == "" {
		return nil, nil
	}

	start := findText(doc, s.Start)
	if start == nil {
		return nil, nil
	}
	end := start
	if s.End != "" {
		if end = findText(doc, s.End); end == nil {
			return nil, nil
		}
	}
	return dom.NewRange(start, end)
}

func findText(doc *dom.Document, phrase string) *html.Node {
	var found *html.Node
	dom.Walk(doc.Root(), func(n *html.Node) bool {
		if dom.IsText(n) && strings.Contains(n.Data, phrase) && !dom.InRawText(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// EmptySource never has a selection.
type EmptySource struct{}

// ActiveRange implements port.SelectionSource.
func (EmptySource) ActiveRange(context.Context, *dom.Document) (*dom.Range, error) {
	return nil, nil
}
