package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSelectionMode is returned for unrecognised selection mode names.
var ErrUnknownSelectionMode = errors.New("unknown selection mode")

// SelectionMode picks how the active selection turns into candidate nodes.
type SelectionMode int

const (
	// SelectionExactRange collects the nodes between the range boundaries.
	SelectionExactRange SelectionMode = iota
	// SelectionEnclosingNode takes the range's common ancestor.
	SelectionEnclosingNode
	// SelectionSimilarByClass takes every element sharing the selection's class.
	SelectionSimilarByClass
)

// SelectionModes lists every mode in declaration order.
var SelectionModes = []SelectionMode{
	SelectionExactRange,
	SelectionEnclosingNode,
	SelectionSimilarByClass,
}

func (m SelectionMode) String() string {
	switch m {
	case SelectionExactRange:
		return "exact"
	case SelectionEnclosingNode:
		return "enclosing"
	case SelectionSimilarByClass:
		return "similar"
	default:
		return fmt.Sprintf("SelectionMode(%d)", int(m))
	}
}

// ParseSelectionMode accepts canonical names, short aliases and the
// action mode names used by the message protocol.
func ParseSelectionMode(name string) (SelectionMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exact", "text", "selected", "colorselectedtext", "previewselectedtext":
		return SelectionExactRange, nil
	case "enclosing", "parent", "colorparentnode", "previewparentnode":
		return SelectionEnclosingNode, nil
	case "similar", "class", "colorsimilarnodes", "previewsimilarnodes":
		return SelectionSimilarByClass, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSelectionMode, name)
	}
}
