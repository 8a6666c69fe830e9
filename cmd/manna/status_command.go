package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show daemon status",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := ctx.apiAddr()
			if err != nil {
				return err
			}

			var status struct {
				Running       bool   `json:"batch_running"`
				Model         string `json:"model"`
				UptimeSeconds int64  `json:"uptime_seconds"`
				Exclusions    int    `json:"exclusions"`
				Archived      int    `json:"archived"`
			}
			if err := apiGet(cmd.Context(), addr, "/api/status", &status); err != nil {
				return err
			}

			rows := [][]string{
				{"Daemon", addr},
				{"Uptime", (time.Duration(status.UptimeSeconds) * time.Second).String()},
				{"Model", status.Model},
				{"Batch running", strconv.FormatBool(status.Running)},
				{"Excluded citations", strconv.Itoa(status.Exclusions)},
				{"Archived devotionals", strconv.Itoa(status.Archived)},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Field", "Value"},
				rows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}
}
