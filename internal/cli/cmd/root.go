// Package cmd provides Cobra CLI commands for colorline.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/colorline/internal/cli"
	"github.com/bnema/colorline/internal/domain/build"
)

var errAppNotInitialized = errors.New("app not initialized")

var (
	app       *cli.App
	buildInfo build.Info
	rootOpts  cli.Options
	rootCmd   = &cobra.Command{
		Use:   "colorline",
		Short: "Recolor HTML text with random-walk gradients",
		Long: `colorline wraps every character of a selection in an HTML document with a
color drawn from a gradient, walking the palette randomly from character to
character.

A selection is given by CSS selectors (--start/--end) or by text phrases
(--match/--match-end) and expands to text nodes in one of three modes:
  exact      the text nodes between the two boundaries
  enclosing  every text node under their common ancestor
  similar    every element sharing the selection's class

Settings profiles (colors, steps, font size) live in a local SQLite store;
defaults come from the config file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			rootOpts.LogOutput = cmd.ErrOrStderr()
			app, err = cli.NewApp(rootOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootOpts.ConfigDir, "config-dir", "", "read config.toml from this directory instead of the XDG location")
	rootCmd.PersistentFlags().StringVar(&rootOpts.LogLevel, "log-level", "", "override the configured log level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
}
