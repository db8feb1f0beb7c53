package dom

import (
	"errors"

	"golang.org/x/net/html"
)

// ErrDisjointRange is returned when range boundaries live in different trees.
var ErrDisjointRange = errors.New("range boundaries share no common ancestor")

// Range is a contiguous selection between two container nodes, covering the
// whole of both containers.
type Range struct {
	CommonAncestor *html.Node
	StartContainer *html.Node
	EndContainer   *html.Node

	pos  map[*html.Node]int
	last map[*html.Node]int
}

// NewRange builds a range over start..end, swapping them when end precedes
// start in document order.
func NewRange(start, end *html.Node) (*Range, error) {
	ancestor := CommonAncestor(start, end)
	if ancestor == nil {
		return nil, ErrDisjointRange
	}

	r := &Range{CommonAncestor: ancestor, StartContainer: start, EndContainer: end}
	r.index()
	if r.pos[end] < r.pos[start] {
		r.StartContainer, r.EndContainer = end, start
	}
	return r, nil
}

// Intersects reports whether any part of n lies inside the range.
func (r *Range) Intersects(n *html.Node) bool {
	p, ok := r.pos[n]
	if !ok {
		return false
	}
	return p <= r.last[r.EndContainer] && r.last[n] >= r.pos[r.StartContainer]
}

// index records each node's pre-order position and the position of the last
// node in its subtree, over the whole tree containing the range.
func (r *Range) index() {
	top := r.CommonAncestor
	for top.Parent != nil {
		top = top.Parent
	}

	r.pos = make(map[*html.Node]int)
	r.last = make(map[*html.Node]int)
	counter := 0

	var visit func(n *html.Node) int
	visit = func(n *html.Node) int {
		r.pos[n] = counter
		end := counter
		counter++
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			end = visit(c)
		}
		r.last[n] = end
		return end
	}
	visit(top)
}
