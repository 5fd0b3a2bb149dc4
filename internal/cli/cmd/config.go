package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/bnema/meikai/internal/cli/styles"
	"github.com/bnema/meikai/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var (
	configForce       bool
	configSchemaWrite bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show configuration paths, print the effective configuration, or write defaults and the JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, schema and log locations",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after defaults, the config file and MEIKAI_*
environment overrides are merged.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE:  runConfigSchema,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with all defaults",
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configSchemaCmd, configInitCmd)
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write config.schema.json next to the config file")
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(GetApp().Theme)

	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	schemaFile, err := config.GetSchemaFile()
	if err != nil {
		return err
	}
	logDir, err := config.GetLogDir()
	if err != nil {
		return err
	}

	_, statErr := os.Stat(configFile)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderPaths(configFile, statErr == nil, schemaFile, logDir))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	cfg, err := app.Config()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.NewConfigRenderer(app.Theme).RenderError(err))
		return err
	}

	data, err := config.EncodeConfigOrdered(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if configSchemaWrite {
		if err := config.EnsureDirectories(); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		path, err := config.GenerateSchemaFile()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(GetApp().Theme).RenderWritten("schema", path))
		return nil
	}

	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(GetApp().Theme)

	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(path); statErr == nil && !configForce {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderExists(path))
		return nil
	} else if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("failed to stat config file: %w", statErr)
	}

	if err := config.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderError(err))
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderWritten("defaults", path))
	return nil
}
