package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/colorline/internal/app/messaging"
	"github.com/bnema/colorline/internal/domain/entity"
	"github.com/bnema/colorline/internal/domain/recolor"
	"github.com/bnema/colorline/internal/infrastructure/selection"
)

const page = `<html><head></head><body><p id="a">Hello</p><p id="b">World</p></body></html>`

// setupHome isolates config and data directories for one test.
func setupHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return dir
}

func writePage(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte(page), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--log-level", "disabled"))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestColorInPlace(t *testing.T) {
	dir := setupHome(t)
	path := writePage(t, dir)

	out, err := run(t, "color", path, "--start", "#a", "--seed", "7", "--in-place")
	require.NoError(t, err)
	assert.Contains(t, out, "1 text nodes")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, `id="`+recolor.StyleID+`"`)
	assert.Contains(t, html, `<clr class="`+recolor.WrapperClass+`">`)
	assert.Contains(t, html, "World</p>", "text outside the selection stays plain")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestExecReplaysMessages(t *testing.T) {
	dir := setupHome(t)
	path := writePage(t, dir)
	outPath := filepath.Join(dir, "out.html")
	msgPath := filepath.Join(dir, "messages.jsonl")
	messages := `# color the first paragraph
{"action":"makeColor","mode":"colorSelectedText","steps":"4","selection":{"start":"#a"}}

{"action":"noSuchAction"}
`
	require.NoError(t, os.WriteFile(msgPath, []byte(messages), 0o600))

	out, err := run(t, "exec", path, "--messages", msgPath, "--seed", "1", "-o", outPath)
	require.NoError(t, err)
	assert.Contains(t, out, "makeColor: 1 text nodes, 5 characters")
	assert.Contains(t, out, "noSuchAction: ignored")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), recolor.IndexClassPrefix)
}

func TestPaletteLinear(t *testing.T) {
	setupHome(t)

	out, err := run(t, "palette", "--left", "#000000", "--right", "#ffffff", "--steps", "2", "--linear", "--seed", "3", "--sample", "ab")
	require.NoError(t, err)
	assert.Contains(t, out, "#000000")
	assert.Contains(t, out, "#ffffff")
}

func TestConfigSchema(t *testing.T) {
	setupHome(t)

	out, err := run(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "colorline configuration")
}

func TestSelectionFlagsSource(t *testing.T) {
	tests := []struct {
		name  string
		flags selectionFlags
		want  any
	}{
		{"empty", selectionFlags{}, selection.EmptySource{}},
		{"selectors", selectionFlags{start: "h1", end: "p"}, selection.SelectorSource{Start: "h1", End: "p"}},
		{"phrases", selectionFlags{match: "Once", matchEnd: "after"}, selection.TextMatchSource{Start: "Once", End: "after"}},
		{"selectors win", selectionFlags{start: "h1", match: "Once"}, selection.SelectorSource{Start: "h1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flags.source())
		})
	}
}

func TestParseModeFlag(t *testing.T) {
	mode, err := parseModeFlag("similar")
	require.NoError(t, err)
	assert.Equal(t, entity.SelectionSimilarByClass, mode)

	_, err = parseModeFlag("sideways")
	assert.ErrorIs(t, err, entity.ErrUnknownSelectionMode)
}

func TestDescribeResult(t *testing.T) {
	saved := entity.Settings{Profile: "night"}
	assert.Equal(t, "makeColor: 2 text nodes, 9 characters",
		describeResult(&messaging.Result{Action: messaging.ActionMakeColor, Units: 2, Characters: 9}))
	assert.Equal(t, "showPreview: 3 elements highlighted",
		describeResult(&messaging.Result{Action: messaging.ActionShowPreview, Highlighted: 3}))
	assert.Equal(t, "saveSettings: profile night stored",
		describeResult(&messaging.Result{Action: messaging.ActionSaveSettings, Saved: &saved}))
	assert.Equal(t, "updateStyles: ok",
		describeResult(&messaging.Result{Action: messaging.ActionUpdateStyles}))
}

func TestConfigKeysSection(t *testing.T) {
	setupHome(t)

	out, err := run(t, "config", "keys", "--section", "colors")
	require.NoError(t, err)
	assert.Contains(t, out, "colors.start_color")
	assert.NotContains(t, out, "logging.level")
}
