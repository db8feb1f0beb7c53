package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/colorline/internal/application/port/mocks"
	"github.com/bnema/colorline/internal/application/usecase"
	"github.com/bnema/colorline/internal/domain/dom"
	"github.com/bnema/colorline/internal/domain/entity"
	"github.com/bnema/colorline/internal/domain/recolor"
)

func redBlue(steps int) entity.Settings {
	s := entity.DefaultSettings()
	s.StartColor = "#ff0000"
	s.EndColor = "#0000ff"
	s.Steps = steps
	return s
}

func TestColorizeUseCase_Execute_RecolorsExactSelection(t *testing.T) {
	ctx := testContext()
	doc := parse(t)

	uc := usecase.NewColorizeUseCase(nil)
	out, err := uc.Execute(ctx, usecase.ColorizeInput{
		Document:  doc,
		Selection: selectIDs(t, "p2", "p2"),
		Mode:      entity.SelectionExactRange,
		Settings:  redBlue(2),
	})
	require.NoError(t, err)

	require.Len(t, out.Units, 1)
	assert.Equal(t, "third", out.Units[0].Source)
	assert.Equal(t, 5, out.Characters)
	assert.Len(t, out.Palette, 3)

	rendered := doc.String()
	assert.Contains(t, rendered, `<style id="clr-text-styles">`)
	assert.Contains(t, rendered, `clr.clr-text clr.clr-text-0{color: rgb(255, 0, 0);}`)
	assert.Contains(t, rendered, `clr.clr-text clr.clr-text-2{color: rgb(0, 0, 255);}`)
	assert.Contains(t, rendered, `<p id="p4" class="para">fifth</p>`)
}

func TestColorizeUseCase_Execute_SimilarModeColorsEveryMatchingClass(t *testing.T) {
	ctx := testContext()
	doc := parse(t)

	uc := usecase.NewColorizeUseCase(fixed(0.5))
	out, err := uc.Execute(ctx, usecase.ColorizeInput{
		Document:  doc,
		Selection: selectIDs(t, "p2", "p2"),
		Mode:      entity.SelectionSimilarByClass,
		Settings:  redBlue(10),
	})
	require.NoError(t, err)

	sources := make([]string, 0, len(out.Units))
	for _, u := range out.Units {
		sources = append(sources, u.Source)
	}
	assert.Equal(t, []string{"first ", "second", "third", "fifth"}, sources)
	assert.Contains(t, doc.String(), `<p id="p3">fourth</p>`)
}

func TestColorizeUseCase_Execute_IsIdempotent(t *testing.T) {
	ctx := testContext()
	doc := parse(t)
	uc := usecase.NewColorizeUseCase(nil)

	input := usecase.ColorizeInput{
		Document:  doc,
		Selection: selectIDs(t, "p1", "p3"),
		Mode:      entity.SelectionEnclosingNode,
		Settings:  redBlue(4),
	}

	first, err := uc.Execute(ctx, input)
	require.NoError(t, err)
	require.NotEmpty(t, first.Units)
	after := doc.String()

	second, err := uc.Execute(ctx, input)
	require.NoError(t, err)
	assert.Empty(t, second.Units)
	assert.Equal(t, after, doc.String())
}

func TestColorizeUseCase_Execute_RangeOverHeadIsIdempotent(t *testing.T) {
	ctx := testContext()
	doc, err := dom.ParseString(`<!DOCTYPE html><html><head><title>Title</title></head><body>` +
		`<p id="a">hello</p><script>var x = 1;</script><p id="b">world</p></body></html>`)
	require.NoError(t, err)

	// From the <title> text to the end of #b: the common ancestor is <html>.
	fromTitle := portmocks.NewMockSelectionSource(t)
	fromTitle.EXPECT().ActiveRange(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, d *dom.Document) (*dom.Range, error) {
			title := d.Query().Find("title").Get(0)
			return dom.NewRange(title.FirstChild, dom.LastText(elem(t, d, "b")))
		})
	input := func(mode entity.SelectionMode) usecase.ColorizeInput {
		return usecase.ColorizeInput{Document: doc, Selection: fromTitle, Mode: mode, Settings: redBlue(4)}
	}
	uc := usecase.NewColorizeUseCase(nil)

	first, err := uc.Execute(ctx, input(entity.SelectionEnclosingNode))
	require.NoError(t, err)
	assert.Len(t, first.Units, 2)

	after := doc.String()
	assert.Contains(t, after, "<title>Title</title>")
	assert.Contains(t, after, "<script>var x = 1;</script>")
	assert.Contains(t, after, `<style id="`+recolor.StyleID+`">`)

	second, err := uc.Execute(ctx, input(entity.SelectionEnclosingNode))
	require.NoError(t, err)
	assert.Empty(t, second.Units)
	assert.Equal(t, after, doc.String())

	third, err := uc.Execute(ctx, input(entity.SelectionExactRange))
	require.NoError(t, err)
	assert.Empty(t, third.Units)
	assert.Equal(t, after, doc.String())

	reparsed, err := dom.ParseString(after)
	require.NoError(t, err)
	again, err := uc.Execute(ctx, usecase.ColorizeInput{Document: reparsed, Selection: fromTitle, Mode: entity.SelectionEnclosingNode, Settings: redBlue(4)})
	require.NoError(t, err)
	assert.Empty(t, again.Units)
	assert.Equal(t, after, reparsed.String())
}

func TestColorizeUseCase_Execute_NoSelectionLeavesDocumentUntouched(t *testing.T) {
	ctx := testContext()
	doc := parse(t)
	before := doc.String()

	sel := portmocks.NewMockSelectionSource(t)
	sel.EXPECT().ActiveRange(mock.Anything, mock.Anything).Return(nil, nil)

	uc := usecase.NewColorizeUseCase(nil)
	out, err := uc.Execute(ctx, usecase.ColorizeInput{
		Document:  doc,
		Selection: sel,
		Mode:      entity.SelectionExactRange,
		Settings:  redBlue(10),
	})
	require.NoError(t, err)
	assert.Empty(t, out.Units)
	assert.Zero(t, out.Characters)
	assert.Equal(t, before, doc.String())
}

func TestColorizeUseCase_Execute_InvalidColorFailsBeforeSelection(t *testing.T) {
	ctx := testContext()
	doc := parse(t)
	before := doc.String()

	// No expectations: the selection must not be consulted.
	sel := portmocks.NewMockSelectionSource(t)

	settings := redBlue(10)
	settings.StartColor = "red"

	uc := usecase.NewColorizeUseCase(nil)
	_, err := uc.Execute(ctx, usecase.ColorizeInput{
		Document:  doc,
		Selection: sel,
		Mode:      entity.SelectionExactRange,
		Settings:  settings,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidColorFormat)
	assert.Equal(t, before, doc.String())
}

func TestColorizeUseCase_Execute_PropagatesSelectionError(t *testing.T) {
	ctx := testContext()

	sel := portmocks.NewMockSelectionSource(t)
	sel.EXPECT().ActiveRange(mock.Anything, mock.Anything).Return(nil, errors.New("selector failed"))

	uc := usecase.NewColorizeUseCase(nil)
	_, err := uc.Execute(ctx, usecase.ColorizeInput{
		Document:  parse(t),
		Selection: sel,
		Settings:  redBlue(10),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selector failed")
}

func TestColorizeUseCase_Execute_RequiresDocument(t *testing.T) {
	uc := usecase.NewColorizeUseCase(nil)
	_, err := uc.Execute(testContext(), usecase.ColorizeInput{Settings: redBlue(10)})
	assert.ErrorIs(t, err, dom.ErrNoDocument)
}

type failingInjector struct{}

func (failingInjector) InjectStyle(string, string) error { return errors.New("read-only") }
func (failingInjector) RemoveStyle(string)               {}

func TestColorizeUseCase_UpdateStyles(t *testing.T) {
	ctx := testContext()
	uc := usecase.NewColorizeUseCase(nil)

	t.Run("replaces stylesheet with font size", func(t *testing.T) {
		doc := parse(t)
		settings := redBlue(2)

		require.NoError(t, uc.UpdateStyles(ctx, doc, settings))
		settings.FontSize = 120
		settings.EndColor = "#00ff00"
		require.NoError(t, uc.UpdateStyles(ctx, doc, settings))

		rendered := doc.String()
		assert.Equal(t, 1, strings.Count(rendered, `id="`+recolor.StyleID+`"`))
		assert.Contains(t, rendered, `clr.clr-text{font-size:120%;}`)
		assert.Contains(t, rendered, `clr.clr-text-2{color: rgb(0, 255, 0);}`)
	})

	t.Run("wraps injector failure", func(t *testing.T) {
		err := uc.UpdateStyles(ctx, failingInjector{}, redBlue(2))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read-only")
	})

	t.Run("rejects invalid steps", func(t *testing.T) {
		err := uc.UpdateStyles(ctx, parse(t), redBlue(0))
		assert.ErrorIs(t, err, entity.ErrInvalidSteps)
	})
}
