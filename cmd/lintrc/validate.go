package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createValidateCommand creates the validate command.
func createValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long:  "Load the configuration file and resolve it against the full rule catalog, reporting the first error found",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}

			result, err := app.ValidateConfig(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("validation error: %w", err)
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
