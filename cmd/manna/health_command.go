package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the daemon and the generation service",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := ctx.apiAddr()
			if err != nil {
				return err
			}
			if err := apiGet(cmd.Context(), addr, "/healthz", nil); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Daemon and generation service are healthy.")
			return nil
		},
	}
}
