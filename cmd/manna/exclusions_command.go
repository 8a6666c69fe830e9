package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"manna/internal/exclusion"
	"manna/internal/logging"
)

func newExclusionsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exclusions",
		Short: "Inspect or reset the used-verse list",
	}
	cmd.AddCommand(newExclusionsListCommand(ctx))
	cmd.AddCommand(newExclusionsResetCommand(ctx))
	return cmd
}

func newExclusionsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show citations already used for generation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			set := exclusion.NewStore(cfg.Paths.ExclusionFile, logging.NewNop()).Load()

			out := cmd.OutOrStdout()
			citations := set.Citations()
			if len(citations) == 0 {
				fmt.Fprintln(out, "No citations excluded yet.")
				return nil
			}
			for _, citation := range citations {
				fmt.Fprintln(out, citation)
			}
			fmt.Fprintf(out, "%d citation(s) excluded\n", len(citations))
			return nil
		},
	}
}

func newExclusionsResetCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear the used-verse list so every citation becomes available again",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store := exclusion.NewStore(cfg.Paths.ExclusionFile, logging.NewNop())
			count := store.Load().Len()
			if count == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "The exclusion list is already empty.")
				return nil
			}
			if !force {
				return fmt.Errorf("this discards %d excluded citation(s); re-run with --force to confirm", count)
			}
			store.Save(exclusion.NewSet())
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d excluded citation(s).\n", count)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation check")
	return cmd
}
