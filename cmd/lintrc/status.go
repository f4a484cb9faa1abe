package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createStatusCommand creates the status command.
func createStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the cached resolution for the config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}

			status, err := app.Status(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), status)
			return nil
		},
	}
}
