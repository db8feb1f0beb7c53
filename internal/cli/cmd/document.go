package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/colorline/internal/application/port"
	"github.com/bnema/colorline/internal/domain/dom"
	"github.com/bnema/colorline/internal/domain/entity"
	"github.com/bnema/colorline/internal/infrastructure/selection"
)

// stdio names standard input or output in file arguments.
const stdio = "-"

// selectionFlags describes the active range of a command.
type selectionFlags struct {
	start    string
	end      string
	match    string
	matchEnd string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.start, "start", "", "CSS selector of the element where the selection starts")
	cmd.Flags().StringVar(&f.end, "end", "", "CSS selector of the element where the selection ends (default: --start)")
	cmd.Flags().StringVar(&f.match, "match", "", "text phrase where the selection starts")
	cmd.Flags().StringVar(&f.matchEnd, "match-end", "", "text phrase where the selection ends (default: --match)")
	cmd.MarkFlagsMutuallyExclusive("start", "match")
}

// source returns the selection described by the flags; selectors win over phrases.
func (f *selectionFlags) source() port.SelectionSource {
	switch {
	case f.start != "":
		return selection.SelectorSource{Start: f.start, End: f.end}
	case f.match != "":
		return selection.TextMatchSource{Start: f.match, End: f.matchEnd}
	default:
		return selection.EmptySource{}
	}
}

func parseModeFlag(mode string) (entity.SelectionMode, error) {
	m, err := entity.ParseSelectionMode(mode)
	if err != nil {
		return 0, fmt.Errorf("invalid --mode: %w", err)
	}
	return m, nil
}

// readDocument parses path, or stdin for "-".
func readDocument(cmd *cobra.Command, path string) (*dom.Document, error) {
	var r io.Reader
	if path == stdio {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open document: %w", err)
		}
		defer f.Close()
		r = f
	}

	doc, err := dom.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}

// writeDocument renders doc to path, or stdout for "" and "-". Existing files
// keep their permissions.
func writeDocument(cmd *cobra.Command, doc *dom.Document, path string) error {
	if path == "" || path == stdio {
		return doc.Render(cmd.OutOrStdout())
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, buf.Bytes(), perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// reportWriter keeps status lines off stdout when the document goes there.
func reportWriter(cmd *cobra.Command, output string) io.Writer {
	if output == "" || output == stdio {
		return cmd.ErrOrStderr()
	}
	return cmd.OutOrStdout()
}
