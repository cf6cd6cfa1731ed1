package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"recast/internal/config"
	"recast/internal/search"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string
	var contextLines int
	var limit int

	cmd := &cobra.Command{
		Use:   "search QUERY",
		Short: "Search saved transcripts for a phrase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dir := cfg.Paths.OutputDir
			if trimmed := strings.TrimSpace(dirFlag); trimmed != "" {
				expanded, err := config.ExpandPath(trimmed)
				if err != nil {
					return err
				}
				dir = expanded
			}

			result, err := search.Run(cmd.Context(), dir, args[0], search.Options{
				Context: contextLines,
				Limit:   limit,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, hit := range result.Hits {
				if len(hit.Context) == 0 {
					fmt.Fprintf(out, "%s:%d: %s\n", hit.File, hit.Line, hit.Text)
					continue
				}
				fmt.Fprintf(out, "%s:%d:\n", hit.File, hit.Line)
				for _, line := range hit.Context {
					fmt.Fprintf(out, "    %s\n", line)
				}
			}

			fmt.Fprintf(out, "%d match(es) across %d transcript(s)\n", len(result.Hits), result.FilesScanned)
			if result.Truncated {
				fmt.Fprintln(out, "Result limit reached; raise --limit to see more")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Transcript directory to search (defaults to the output directory)")
	cmd.Flags().IntVarP(&contextLines, "context", "C", 0, "Lines of context to print around each match")
	cmd.Flags().IntVarP(&limit, "limit", "n", search.DefaultLimit, "Maximum matches to return (0 for unlimited)")
	return cmd
}
