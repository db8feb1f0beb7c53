package cmd

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/colorline/internal/application/port"
	"github.com/bnema/colorline/internal/application/usecase"
	"github.com/bnema/colorline/internal/cli/styles"
	"github.com/bnema/colorline/internal/domain/entity"
	"github.com/bnema/colorline/internal/infrastructure/random"
	"github.com/bnema/colorline/internal/logging"
)

var colorOpts struct {
	mode      string
	selection selectionFlags
	palette   paletteFlags
	fontSize  int
	profile   string
	seed      uint64
	output    string
	inPlace   bool
	jobs      int
}

var colorCmd = &cobra.Command{
	Use:   "color FILE...",
	Short: "Recolor the selected text of HTML documents",
	Long: `Wrap every character of the selection in a span colored from the gradient
and install the gradient stylesheet in the document head.

Text that was already recolored is left alone, so running the command twice
over the same range changes nothing. A selection that matches nothing leaves
the document untouched.

Examples:
  colorline color page.html --start h1 --end "p:last-of-type"
  colorline color page.html --match "Once upon" --mode enclosing -o out.html
  colorline color docs/*.html --start article --mode similar --in-place --jobs 8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runColor,
}

func init() {
	rootCmd.AddCommand(colorCmd)

	f := colorCmd.Flags()
	f.StringVar(&colorOpts.mode, "mode", entity.SelectionExactRange.String(), "selection mode: exact, enclosing or similar")
	colorOpts.selection.register(colorCmd)
	colorOpts.palette.register(colorCmd)
	f.IntVar(&colorOpts.fontSize, "font-size", 0, "font size of recolored text in percent (0 keeps the page size)")
	f.StringVar(&colorOpts.profile, "profile", "", "settings profile to start from")
	f.Uint64Var(&colorOpts.seed, "seed", 0, "seed the random walk for reproducible output")
	f.StringVarP(&colorOpts.output, "output", "o", "", "write the document here instead of stdout (single file only)")
	f.BoolVar(&colorOpts.inPlace, "in-place", false, "rewrite every input file")
	f.IntVar(&colorOpts.jobs, "jobs", 0, "documents processed in parallel (default: cli.jobs from config)")
	colorCmd.MarkFlagsMutuallyExclusive("output", "in-place")
}

func runColor(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	if len(args) > 1 && !colorOpts.inPlace {
		return errors.New("multiple documents require --in-place")
	}
	mode, err := parseModeFlag(colorOpts.mode)
	if err != nil {
		return err
	}

	settings, err := app.Settings(colorOpts.profile)
	if err != nil {
		return err
	}
	settings = colorOpts.palette.apply(cmd, settings)
	if cmd.Flags().Changed("font-size") {
		settings.FontSize = colorOpts.fontSize
	}
	if _, err := settings.Palette(); err != nil {
		return fmt.Errorf("invalid gradient: %w", err)
	}

	jobs := colorOpts.jobs
	if jobs <= 0 {
		jobs = app.Config.CLI.Jobs
	}
	seeded := cmd.Flags().Changed("seed")
	renderer := styles.NewColorRenderer(app.Theme)

	var (
		mu       sync.Mutex
		failures int
	)
	lines := make([]string, len(args))

	g, ctx := errgroup.WithContext(app.Ctx())
	g.SetLimit(jobs)
	for i, path := range args {
		g.Go(func() error {
			var rnd port.RandomSource
			if seeded {
				rnd = random.NewSeeded(colorOpts.seed + uint64(i))
			} else {
				rnd = random.New()
			}

			docCtx := logging.WithDocument(ctx, path)
			units, chars, err := colorDocument(cmd, docCtx, rnd, path, mode, settings)
			if err != nil {
				logging.FromContext(docCtx).Error().Err(err).Msg("recoloring failed")
				mu.Lock()
				failures++
				mu.Unlock()
				lines[i] = renderer.RenderFailure(path, err)
				return nil
			}
			lines[i] = renderer.RenderColored(path, units, chars)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := reportWriter(cmd, destination(args[0]))
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d documents failed", failures, len(args))
	}
	return nil
}

// destination is where a recolored document is written.
func destination(path string) string {
	if colorOpts.inPlace {
		return path
	}
	return colorOpts.output
}

func colorDocument(
	cmd *cobra.Command,
	ctx context.Context,
	rnd port.RandomSource,
	path string,
	mode entity.SelectionMode,
	settings entity.Settings,
) (units, characters int, err error) {
	doc, err := readDocument(cmd, path)
	if err != nil {
		return 0, 0, err
	}

	out, err := usecase.NewColorizeUseCase(rnd).Execute(ctx, usecase.ColorizeInput{
		Document:  doc,
		Selection: colorOpts.selection.source(),
		Mode:      mode,
		Settings:  settings,
	})
	if err != nil {
		return 0, 0, err
	}

	// Untouched documents are only rewritten when they go to a new place.
	if len(out.Units) == 0 && colorOpts.inPlace {
		return 0, 0, nil
	}
	if err := writeDocument(cmd, doc, destination(path)); err != nil {
		return 0, 0, err
	}
	return len(out.Units), out.Characters, nil
}
