package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/lintrc/lintrc/internal/cli"
	"github.com/lintrc/lintrc/internal/constants"
	"github.com/lintrc/lintrc/internal/logging"
)

// createRootCommand creates the main root command that shows help by default.
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lintrc",
		Short: "Resolve the active rule set from an .eslintrc-style config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", constants.DefaultConfigName, "Path to config file")

	rootCmd.AddCommand(
		createRulesCommand(),
		createValidateCommand(),
		createStatusCommand(),
		createInitCommand(),
	)

	return rootCmd
}

// createAppFromCommand extracts the config path and creates the CLI app.
func createAppFromCommand(cmd *cobra.Command) (*cli.App, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	return cli.NewApp(configPath), nil
}

// commandContext attaches the file logger to the command's context. Logging
// setup trouble never blocks a command.
func commandContext(cmd *cobra.Command) context.Context {
	ctx, err := logging.New(cmd.Context(), afero.NewOsFs(), logging.Config{Level: zerolog.InfoLevel})
	if err != nil {
		return cmd.Context()
	}
	return ctx
}
