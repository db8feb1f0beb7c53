package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/colorline/internal/application/usecase"
	"github.com/bnema/colorline/internal/cli/styles"
	"github.com/bnema/colorline/internal/infrastructure/config"
)

var (
	configSchemaOutput string
	configKeysSection  string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where colorline reads its configuration and stores settings profiles.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file and database locations",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every configuration key with its default",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configSchemaCmd, configKeysCmd)
	configKeysCmd.Flags().StringVar(&configKeysSection, "section", "", "only show one section (database, logging, colors, cli)")
	configSchemaCmd.Flags().StringVarP(&configSchemaOutput, "output", "o", "", "write the schema to this file")
}

// runConfigPath shows config file path and database location.
func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	configFile := app.ConfigManager.ConfigFilePath()
	_, statErr := os.Stat(configFile)
	fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderPaths(configFile, app.DatabasePath(), statErr == nil))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaOutput != "" {
		return config.WriteSchemaFile(configSchemaOutput)
	}

	data, err := config.SchemaJSON()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errAppNotInitialized
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	result, err := uc.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return err
	}
	if len(result.Keys) == 0 {
		return fmt.Errorf("no configuration keys in section %q", configKeysSection)
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(app.Theme).RenderKeys(result.Keys))
	return nil
}
