package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createRulesCommand creates the command that lists the resolved rule set.
func createRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the active rules for the config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := createAppFromCommand(cmd)
			if err != nil {
				return err
			}

			output, err := app.Rules(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to resolve rules: %w", err)
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), output)
			return nil
		},
	}
}
