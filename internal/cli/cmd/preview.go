package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/colorline/internal/application/usecase"
	"github.com/bnema/colorline/internal/cli/styles"
	"github.com/bnema/colorline/internal/domain/entity"
	"github.com/bnema/colorline/internal/logging"
)

var previewOpts struct {
	mode      string
	selection selectionFlags
	color     string
	profile   string
	output    string
}

var previewClearOutput string

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Highlight the elements a recoloring pass would touch",
	Long: `Mark the parent element of every text node the selection resolves to with a
highlight class and install the preview stylesheet. The text itself is not
changed; a new preview replaces the previous one.

Examples:
  colorline preview page.html --match "Chapter 1" --mode similar -o preview.html
  colorline preview clear preview.html -o page.html`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

var previewClearCmd = &cobra.Command{
	Use:   "clear FILE",
	Short: "Remove every preview highlight from a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreviewClear,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.AddCommand(previewClearCmd)

	f := previewCmd.Flags()
	f.StringVar(&previewOpts.mode, "mode", entity.SelectionExactRange.String(), "selection mode: exact, enclosing or similar")
	previewOpts.selection.register(previewCmd)
	f.StringVar(&previewOpts.color, "color", "", "highlight color (default: preview color of the profile)")
	f.StringVar(&previewOpts.profile, "profile", "", "settings profile to take the preview color from")
	f.StringVarP(&previewOpts.output, "output", "o", "", "write the document here instead of stdout")

	previewClearCmd.Flags().StringVarP(&previewClearOutput, "output", "o", "", "write the document here instead of stdout")
}

func runPreview(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	mode, err := parseModeFlag(previewOpts.mode)
	if err != nil {
		return err
	}

	color := previewOpts.color
	if color == "" {
		settings, err := app.Settings(previewOpts.profile)
		if err != nil {
			return err
		}
		color = settings.PreviewColor
	}
	if _, err := entity.ParseHexColor(color); err != nil {
		return fmt.Errorf("invalid --color: %w", err)
	}

	path := args[0]
	doc, err := readDocument(cmd, path)
	if err != nil {
		return err
	}

	ctx := logging.WithDocument(app.Ctx(), path)
	count, err := app.PreviewUC.Show(ctx, usecase.PreviewInput{
		Document:  doc,
		Selection: previewOpts.selection.source(),
		Mode:      mode,
		Color:     color,
	})
	if err != nil {
		return err
	}
	if err := writeDocument(cmd, doc, previewOpts.output); err != nil {
		return err
	}

	fmt.Fprintln(reportWriter(cmd, previewOpts.output), styles.NewColorRenderer(app.Theme).RenderPreview(path, count))
	return nil
}

func runPreviewClear(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	path := args[0]
	doc, err := readDocument(cmd, path)
	if err != nil {
		return err
	}

	count := app.PreviewUC.Clear(logging.WithDocument(app.Ctx(), path), doc)
	if err := writeDocument(cmd, doc, previewClearOutput); err != nil {
		return err
	}

	fmt.Fprintf(reportWriter(cmd, previewClearOutput), "  %s %s %d highlights removed\n",
		app.Theme.SuccessStyle.Render(styles.IconCheck),
		app.Theme.Subtle.Render(path),
		count,
	)
	return nil
}
