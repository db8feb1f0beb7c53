package recolor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/bnema/colorline/internal/domain/dom"
	"github.com/bnema/colorline/internal/domain/entity"
)

func threeColors(t *testing.T) entity.Palette {
	t.Helper()
	p, err := entity.BuildGradient("#ff0000", "#0000ff", 2)
	require.NoError(t, err)
	return p
}

func TestRecolor_ReplacesTextWithIndexedCharacters(t *testing.T) {
	doc := parse(t, page)
	p2 := elem(t, doc, "p2")

	units := NewRecolorer(nil).Recolor(doc, []*html.Node{p2.FirstChild}, threeColors(t))

	require.Len(t, units, 1)
	assert.Equal(t, "third", units[0].Source)
	assert.Equal(t, []int{0, 1, 2, 1, 0}, units[0].Indices)
	assert.Contains(t, doc.String(),
		`<p id="p2" class="para"><clr class="clr-text" data-clr-recolored="true">`+
			`<clr class="clr-text-0">t</clr><clr class="clr-text-1">h</clr><clr class="clr-text-2">i</clr>`+
			`<clr class="clr-text-1">r</clr><clr class="clr-text-0">d</clr></clr></p>`)
}

func TestRecolor_PreservesCharacterCount(t *testing.T) {
	doc := parse(t, `<html><body><p id="x">héllo ✓ wörld</p></body></html>`)
	x := elem(t, doc, "x")

	units := NewRecolorer(&sequence{vals: []float64{0.5}}).Recolor(doc, []*html.Node{x.FirstChild}, threeColors(t))

	require.Len(t, units, 1)
	want := len([]rune("héllo ✓ wörld"))
	count := 0
	for c := units[0].Wrapper.FirstChild; c != nil; c = c.NextSibling {
		count++
		assert.Len(t, []rune(c.FirstChild.Data), 1)
	}
	assert.Equal(t, want, count)
	assert.Len(t, units[0].Indices, want)
}

func TestRecolor_SecondPassIsNoop(t *testing.T) {
	doc := parse(t, page)
	rc := NewRecolorer(&sequence{vals: []float64{0.3, 0.7}})
	palette, err := entity.BuildCyclicGradient("#ff0000", "#0000ff", 10)
	require.NoError(t, err)

	pass := func() int {
		rng := textRange(t, doc, "p1", "p4")
		nodes := Expand(doc, Resolve(entity.SelectionEnclosingNode, doc, rng))
		return len(rc.Recolor(doc, nodes, palette))
	}

	assert.Equal(t, 5, pass())
	after := doc.String()
	assert.Equal(t, 0, pass())
	assert.Equal(t, after, doc.String())

	reparsed := parse(t, after)
	root := reparsed.Root()
	assert.Empty(t, Expand(reparsed, []*html.Node{root}))
}

func TestRecolor_EmptyAndDetachedNodes(t *testing.T) {
	doc := parse(t, page)
	p3 := elem(t, doc, "p3")
	empty := &html.Node{Type: html.TextNode}
	p3.AppendChild(empty)
	detached := &html.Node{Type: html.TextNode, Data: "loose"}

	before := doc.String()
	units := NewRecolorer(nil).Recolor(doc, []*html.Node{empty, detached, nil}, threeColors(t))

	assert.Empty(t, units)
	assert.Equal(t, before, doc.String())
	assert.True(t, doc.IsProcessed(empty))
	assert.Equal(t, p3, empty.Parent)
	assert.False(t, doc.IsProcessed(detached))
}

func TestRecolor_WrapperCarriesOnlyItsOwnClass(t *testing.T) {
	doc := parse(t, page)
	p2 := elem(t, doc, "p2")

	units := NewRecolorer(nil).Recolor(doc, []*html.Node{p2.FirstChild}, threeColors(t))

	require.Len(t, units, 1)
	assert.Equal(t, WrapperClass, dom.ClassOf(units[0].Wrapper))
	assert.Equal(t, "para", dom.ClassOf(p2))
}

func TestRecolor_KeepsInvalidUTF8Bytes(t *testing.T) {
	doc := parse(t, page)
	p3 := elem(t, doc, "p3")
	n := &html.Node{Type: html.TextNode, Data: "a\xffé"}
	p3.AppendChild(n)

	units := NewRecolorer(nil).Recolor(doc, []*html.Node{n}, threeColors(t))

	require.Len(t, units, 1)
	var chars []string
	for c := units[0].Wrapper.FirstChild; c != nil; c = c.NextSibling {
		chars = append(chars, c.FirstChild.Data)
	}
	assert.Equal(t, []string{"a", "\xff", "é"}, chars)
	assert.Len(t, units[0].Indices, 3)
	assert.Equal(t, "a\xffé", strings.Join(chars, ""))
}

func TestRecolor_EmptyPalette(t *testing.T) {
	doc := parse(t, page)
	before := doc.String()
	units := NewRecolorer(nil).Recolor(doc, Expand(doc, []*html.Node{doc.Root()}), nil)
	assert.Nil(t, units)
	assert.Equal(t, before, doc.String())
}

func TestRecolor_KeepsSurroundingText(t *testing.T) {
	doc := parse(t, page)
	rng := textRange(t, doc, "p1", "p1")
	NewRecolorer(nil).Recolor(doc, Expand(doc, Resolve(entity.SelectionExactRange, doc, rng)), threeColors(t))

	p1 := elem(t, doc, "p1")
	var b strings.Builder
	dom.Walk(p1, func(n *html.Node) bool {
		if dom.IsText(n) {
			b.WriteString(n.Data)
		}
		return true
	})
	assert.Equal(t, "first second", b.String())
}
