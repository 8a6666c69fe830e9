package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"manna/internal/batch"
	"manna/internal/devotional"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var (
		startFlag   string
		endFlag     string
		langFlag    string
		versionFlag string
		topicFlag   string
		hintFlag    string
		otherFlags  []string
		outputFlag  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate devotionals for a date range",
		Long: `Generate runs a batch in-process: one devotional per day for the master
language/version, plus one per additional version requested with --other.
Interrupted runs resume from the last completed day.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			start := strings.TrimSpace(startFlag)
			if start == "" {
				start = time.Now().Format(devotional.DateFormat)
			}
			end := strings.TrimSpace(endFlag)
			if end == "" {
				end = start
			}
			lang := strings.TrimSpace(langFlag)
			if lang == "" {
				lang = cfg.Generation.DefaultLanguage
			}
			version := strings.TrimSpace(versionFlag)
			if version == "" {
				version = cfg.Generation.DefaultVersion
			}
			others, err := parseOtherVersions(otherFlags)
			if err != nil {
				return err
			}

			rt, err := ctx.newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			resp, err := rt.controller.Run(cmd.Context(), batch.Request{
				StartDate:     start,
				EndDate:       end,
				MasterLang:    lang,
				MasterVersion: version,
				Topic:         strings.TrimSpace(topicFlag),
				MainVerseHint: strings.TrimSpace(hintFlag),
				OtherVersions: others,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, resp.Message)

			payload, err := json.MarshalIndent(resp.Data, "", "  ")
			if err != nil {
				return fmt.Errorf("encode results: %w", err)
			}
			if target := strings.TrimSpace(outputFlag); target != "" {
				if err := os.WriteFile(target, append(payload, '\n'), 0o644); err != nil {
					return fmt.Errorf("write output file: %w", err)
				}
				fmt.Fprintf(out, "Results written to %s\n", target)
				return nil
			}
			fmt.Fprintln(out, string(payload))
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "First date to generate (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&endFlag, "end", "", "Last date to generate (default --start)")
	cmd.Flags().StringVar(&langFlag, "lang", "", "Master language code")
	cmd.Flags().StringVar(&versionFlag, "version", "", "Master translation version")
	cmd.Flags().StringVar(&topicFlag, "topic", "", "Optional theme woven into every devotional")
	cmd.Flags().StringVar(&hintFlag, "verse-hint", "", "Preferred citation for the first available day")
	cmd.Flags().StringArrayVar(&otherFlags, "other", nil, "Additional versions as lang=V1,V2 (repeatable)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the result JSON to a file instead of stdout")
	return cmd
}

// parseOtherVersions turns repeated lang=V1,V2 flags into the request map.
func parseOtherVersions(flags []string) (map[string][]string, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	out := make(map[string][]string)
	for _, raw := range flags {
		lang, versions, ok := strings.Cut(raw, "=")
		lang = strings.TrimSpace(lang)
		if !ok || lang == "" {
			return nil, fmt.Errorf("invalid --other value %q, expected lang=V1,V2", raw)
		}
		for _, version := range strings.Split(versions, ",") {
			version = strings.TrimSpace(version)
			if version == "" {
				continue
			}
			out[lang] = append(out[lang], version)
		}
		if len(out[lang]) == 0 {
			return nil, fmt.Errorf("no versions listed for language %q in --other value %q", lang, raw)
		}
	}
	return out, nil
}
