package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/colorline/internal/cli/styles"
	"github.com/bnema/colorline/internal/domain/entity"
)

var settingsProfile string

var settingsSetOpts struct {
	start    string
	end      string
	preview  string
	steps    int
	fontSize int
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage stored settings profiles",
	Long: `Settings profiles hold the gradient colors, steps, preview color and font
size used by color and preview. Unset fields fall back to the [colors] section
of the config file.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show a settings profile",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored settings profiles",
	Args:  cobra.NoArgs,
	RunE:  runSettingsList,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update and store a settings profile",
	Long: `Update the given fields of a profile and store it. Fields that are not passed
keep their current value.

Example:
  colorline settings set --profile night --start "#1e1e2e" --end "#f5c2e7" --steps 16`,
	Args: cobra.NoArgs,
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete a stored profile so it falls back to defaults",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsListCmd, settingsSetCmd, settingsResetCmd)
	settingsCmd.PersistentFlags().StringVar(&settingsProfile, "profile", entity.DefaultProfile, "settings profile name")

	f := settingsSetCmd.Flags()
	f.StringVar(&settingsSetOpts.start, "start", "", "gradient start color (#rrggbb)")
	f.StringVar(&settingsSetOpts.end, "end", "", "gradient end color (#rrggbb)")
	f.StringVar(&settingsSetOpts.preview, "preview", "", "preview highlight color (#rrggbb)")
	f.IntVar(&settingsSetOpts.steps, "steps", 0, "gradient interpolation steps")
	f.IntVar(&settingsSetOpts.fontSize, "font-size", 0, "font size of recolored text in percent")
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	s, err := app.Settings(settingsProfile)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderSettings(app.Theme, s))
	return nil
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	profiles, err := app.SettingsUC.List(app.Ctx())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(profiles) == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("  No stored profiles, defaults apply."))
		return nil
	}
	for _, s := range profiles {
		fmt.Fprintln(out, renderSettings(app.Theme, s))
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	s, err := app.Settings(settingsProfile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		s.StartColor = settingsSetOpts.start
	}
	if flags.Changed("end") {
		s.EndColor = settingsSetOpts.end
	}
	if flags.Changed("preview") {
		s.PreviewColor = settingsSetOpts.preview
	}
	if flags.Changed("steps") {
		s.Steps = settingsSetOpts.steps
	}
	if flags.Changed("font-size") {
		s.FontSize = settingsSetOpts.fontSize
	}

	saved, err := app.SettingsUC.Save(app.Ctx(), s)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderSettings(app.Theme, saved))
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	if err := app.SettingsUC.Reset(app.Ctx(), settingsProfile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %s profile %s reset to defaults\n",
		app.Theme.SuccessStyle.Render(styles.IconCheck),
		app.Theme.Highlight.Render(settingsProfile),
	)
	return nil
}

func renderSettings(theme *styles.Theme, s entity.Settings) string {
	strip := ""
	if palette, err := s.Palette(); err == nil {
		strip = styles.NewPaletteRenderer(theme).RenderStrip(palette)
	}
	return styles.NewColorRenderer(theme).RenderSettings(s, strip)
}
