package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"manna/internal/archive"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var (
		fromFlag    string
		toFlag      string
		langFlag    string
		versionFlag string
		limitFlag   int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived devotionals",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.Archive.Enabled {
				return fmt.Errorf("the history archive is disabled in the configuration")
			}
			store, err := archive.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context(), archive.Filter{
				From:     fromFlag,
				To:       toFlag,
				Language: langFlag,
				Version:  versionFlag,
				Limit:    limitFlag,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No archived devotionals match.")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, rec := range records {
				verse := rec.VerseText
				if len([]rune(verse)) > 60 {
					verse = string([]rune(verse)[:57]) + "..."
				}
				rows = append(rows, []string{rec.Date, rec.Language, rec.Version, rec.ID, verse})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Date", "Lang", "Version", "ID", "Verse"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "%d record(s)\n", len(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromFlag, "from", "", "Earliest date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&toFlag, "to", "", "Latest date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&langFlag, "lang", "", "Filter by language code")
	cmd.Flags().StringVar(&versionFlag, "version", "", "Filter by translation version")
	cmd.Flags().IntVar(&limitFlag, "limit", 0, "Maximum rows to return")
	return cmd
}
