package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"recast/internal/config"
	"recast/internal/library"
	"recast/internal/logging"
	"recast/internal/reconcile"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var outputDir string
	var singleFile string
	var timestamps bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract cached transcripts and reconcile them with the library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg, err = applyExtractOverrides(cfg, outputDir)
			if err != nil {
				return err
			}

			logger, err := ctx.newLogger(verbose)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			index, err := library.Load(cmd.Context(), cfg.Paths.DatabasePath)
			if err != nil {
				if !errors.Is(err, library.ErrStoreMissing) {
					return err
				}
				index = library.Empty()
				logger.Warn("metadata store unavailable; continuing in degraded mode",
					logging.String("database", cfg.Paths.DatabasePath))
				fmt.Fprintln(out, renderStatusLine("Library", statusWarn,
					"metadata store not found; filenames will use trackids", shouldColorize(out)))
			}

			opts := reconcile.Options{
				IncludeTimestamps: timestamps || cfg.Extraction.IncludeTimestamps,
			}
			if file := strings.TrimSpace(singleFile); file != "" {
				expanded, err := config.ExpandPath(file)
				if err != nil {
					return err
				}
				opts.SingleFile = expanded
			}

			result, err := reconcile.NewExtractor(cfg, index, logger).Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, renderSummaryTable(result.Summary))
			fmt.Fprintf(out, "Transcripts: %s\n", cfg.Paths.OutputDir)
			fmt.Fprintf(out, "Reports:     %s\n", cfg.Paths.ReportDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for extracted transcripts")
	cmd.Flags().StringVarP(&singleFile, "file", "f", "", "Process a single transcript file instead of the cache")
	cmd.Flags().BoolVarP(&timestamps, "timestamps", "t", false, "Prefix each paragraph with its start time")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

// applyExtractOverrides clones the configuration with the command-line output
// directory applied. The report directory follows the override so one run's
// artifacts stay together.
func applyExtractOverrides(cfg *config.Config, outputDir string) (*config.Config, error) {
	target := strings.TrimSpace(outputDir)
	if target == "" {
		return cfg, nil
	}
	expanded, err := config.ExpandPath(target)
	if err != nil {
		return nil, err
	}
	adjusted := *cfg
	adjusted.Paths.OutputDir = expanded
	adjusted.Paths.ReportDir = filepath.Join(expanded, "reports")
	if err := adjusted.Validate(); err != nil {
		return nil, err
	}
	return &adjusted, nil
}

func renderSummaryTable(summary reconcile.Summary) string {
	headers := []string{"Metric", "Count"}
	rows := [][]string{
		{"Discovered", strconv.Itoa(summary.Discovered)},
		{"Matched", strconv.Itoa(summary.Matched)},
		{"Unmatched", strconv.Itoa(summary.Unmatched)},
		{"Failed parses", strconv.Itoa(summary.FailedParses)},
		{"Unmatched library entries", strconv.Itoa(summary.UnmatchedDBEntries)},
	}
	return renderTable(headers, rows, []columnAlignment{alignLeft, alignRight})
}
