package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lintrc/lintrc/internal/prompt"
)

// createInitCommand creates the command that writes a starter config.
func createInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}

			prompter := prompt.NewLinerPrompter()
			defer func() { _ = prompter.Close() }()

			output, err := app.InitConfig(commandContext(cmd), prompter)
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}
}
