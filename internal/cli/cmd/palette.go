package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/colorline/internal/application/port"
	"github.com/bnema/colorline/internal/cli/styles"
	"github.com/bnema/colorline/internal/domain/entity"
	"github.com/bnema/colorline/internal/domain/recolor"
	"github.com/bnema/colorline/internal/infrastructure/random"
)

// paletteFlags override the gradient of a settings profile.
type paletteFlags struct {
	left  string
	right string
	steps int
}

func (f *paletteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.left, "left", "", "gradient start color (#rrggbb)")
	cmd.Flags().StringVar(&f.right, "right", "", "gradient end color (#rrggbb)")
	cmd.Flags().IntVar(&f.steps, "steps", 0, "gradient interpolation steps")
}

// apply overlays the flags the user actually set.
func (f *paletteFlags) apply(cmd *cobra.Command, s entity.Settings) entity.Settings {
	if cmd.Flags().Changed("left") {
		s.StartColor = f.left
	}
	if cmd.Flags().Changed("right") {
		s.EndColor = f.right
	}
	if cmd.Flags().Changed("steps") {
		s.Steps = f.steps
	}
	return s
}

var paletteOpts struct {
	palette paletteFlags
	profile string
	linear  bool
	sample  string
	seed    uint64
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show a gradient palette in the terminal",
	Long: `Print the palette a recoloring pass would use, with a sample line colored by
the same random walk.

By default the palette is cyclic: the linear gradient followed by its mirror,
so the walk can drift back toward the start color. Use --linear to show only
the interpolated gradient.`,
	Args: cobra.NoArgs,
	RunE: runPalette,
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteOpts.palette.register(paletteCmd)
	f := paletteCmd.Flags()
	f.StringVar(&paletteOpts.profile, "profile", "", "settings profile to start from")
	f.BoolVar(&paletteOpts.linear, "linear", false, "show the gradient without its mirrored half")
	f.StringVar(&paletteOpts.sample, "sample", "The quick brown fox jumps over the lazy dog", "text colored with the walk")
	f.Uint64Var(&paletteOpts.seed, "seed", 0, "seed the random walk for reproducible output")
}

func runPalette(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	settings := app.SettingsUC.Defaults()
	if paletteOpts.profile != "" {
		var err error
		if settings, err = app.Settings(paletteOpts.profile); err != nil {
			return err
		}
	}
	settings = paletteOpts.palette.apply(cmd, settings)

	var (
		palette entity.Palette
		err     error
	)
	if paletteOpts.linear {
		palette, err = entity.BuildGradient(settings.StartColor, settings.EndColor, settings.Steps)
	} else {
		palette, err = settings.Palette()
	}
	if err != nil {
		return fmt.Errorf("invalid gradient: %w", err)
	}

	var rnd port.RandomSource = random.New()
	if cmd.Flags().Changed("seed") {
		rnd = random.NewSeeded(paletteOpts.seed)
	}

	renderer := styles.NewPaletteRenderer(app.Theme)
	sample := []rune(paletteOpts.sample)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderer.RenderStrip(palette))
	fmt.Fprintln(out, renderer.RenderTable(palette))
	fmt.Fprintln(out, renderer.RenderSample(paletteOpts.sample, palette, recolor.Indices(len(sample), len(palette), rnd)))
	return nil
}
