package selection_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/colorline/internal/domain/dom"
	"github.com/bnema/colorline/internal/infrastructure/selection"
)

const page = `<html><head><style>.alpha{}</style></head><body>` +
	`<h1 id="title">Colorline <span>demo</span></h1>` +
	`<p id="one" class="para">alpha beta</p>` +
	`<p id="two" class="para">gamma delta</p>` +
	`<div id="empty"></div>` +
	`</body></html>`

func parse(t *testing.T) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(page)
	require.NoError(t, err)
	return doc
}

func TestSelectorSource_UsesBoundaryTextNodes(t *testing.T) {
	doc := parse(t)

	rng, err := selection.SelectorSource{Start: "#title", End: "#two"}.ActiveRange(context.Background(), doc)
	require.NoError(t, err)
	require.NotNil(t, rng)

	assert.Equal(t, "Colorline ", rng.StartContainer.Data)
	assert.Equal(t, "gamma delta", rng.EndContainer.Data)
	assert.Equal(t, "body", rng.CommonAncestor.Data)
}

func TestSelectorSource_EndDefaultsToStart(t *testing.T) {
	doc := parse(t)

	rng, err := selection.SelectorSource{Start: "h1"}.ActiveRange(context.Background(), doc)
	require.NoError(t, err)
	require.NotNil(t, rng)

	assert.Equal(t, "Colorline ", rng.StartContainer.Data)
	assert.Equal(t, "demo", rng.EndContainer.Data)
}

func TestSelectorSource_ElementWithoutTextIsItsOwnContainer(t *testing.T) {
	doc := parse(t)

	rng, err := selection.SelectorSource{Start: "#empty"}.ActiveRange(context.Background(), doc)
	require.NoError(t, err)
	require.NotNil(t, rng)
	assert.Equal(t, "div", rng.StartContainer.Data)
}

func TestSelectorSource_NoMatchIsNoSelection(t *testing.T) {
	doc := parse(t)

	rng, err := selection.SelectorSource{Start: "#missing", End: "#two"}.ActiveRange(context.Background(), doc)
	require.NoError(t, err)
	assert.Nil(t, rng)

	rng, err = selection.SelectorSource{}.ActiveRange(context.Background(), doc)
	require.NoError(t, err)
	assert.Nil(t, rng)
}

func TestSelectorSource_InvalidSelector(t *testing.T) {
	_, err := selection.SelectorSource{Start: "p[[["}.ActiveRange(context.Background(), parse(t))
	assert.ErrorIs(t, err, selection.ErrInvalidSelector)
}

func TestTextMatchSource(t *testing.T) {
	doc := parse(t)

	t.Run("spans two phrases", func(t *testing.T) {
		rng, err := selection.TextMatchSource{Start: "beta", End: "gamma"}.ActiveRange(context.Background(), doc)
		require.NoError(t, err)
		require.NotNil(t, rng)
		assert.Equal(t, "alpha beta", rng.StartContainer.Data)
		assert.Equal(t, "gamma delta", rng.EndContainer.Data)
	})

	t.Run("single phrase", func(t *testing.T) {
		rng, err := selection.TextMatchSource{Start: "demo"}.ActiveRange(context.Background(), doc)
		require.NoError(t, err)
		require.NotNil(t, rng)
		assert.Same(t, rng.StartContainer, rng.EndContainer)
	})

	t.Run("skips style content", func(t *testing.T) {
		rng, err := selection.TextMatchSource{Start: "alpha"}.ActiveRange(context.Background(), doc)
		require.NoError(t, err)
		require.NotNil(t, rng)
		assert.Equal(t, "alpha beta", rng.StartContainer.Data)
	})

	t.Run("missing phrase", func(t *testing.T) {
		rng, err := selection.TextMatchSource{Start: "alpha", End: "omega"}.ActiveRange(context.Background(), doc)
		require.NoError(t, err)
		assert.Nil(t, rng)
	})
}

func TestEmptySource(t *testing.T) {
	rng, err := selection.EmptySource{}.ActiveRange(context.Background(), parse(t))
	require.NoError(t, err)
	assert.Nil(t, rng)
}

func TestSources_RequireDocument(t *testing.T) {
	_, err := selection.SelectorSource{Start: "p"}.ActiveRange(context.Background(), nil)
	assert.ErrorIs(t, err, dom.ErrNoDocument)

	_, err = selection.TextMatchSource{Start: "p"}.ActiveRange(context.Background(), nil)
	assert.ErrorIs(t, err, dom.ErrNoDocument)
}
