package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the built-in fixture molecules available to the normalise command",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range fixtureNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
