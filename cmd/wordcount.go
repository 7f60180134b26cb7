package cmd

import (
	"fmt"
	"path/filepath"

	"specsim/internal/reporter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var wordcountCmd = &cobra.Command{
	Use:   "wordcount",
	Short: "Show word count statistics of product specifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		refine, _ := cmd.Flags().GetBool("refine")
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		snap, err := a.source.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		counts, err := reporter.WordCounts(snap, refine, a.cfg.Engine.RefinedSections)
		if err != nil {
			return fmt.Errorf("failed to count words: %w", err)
		}
		stats := reporter.Summarize(counts)
		fmt.Fprintln(cmd.OutOrStdout(), reporter.StatsTable(stats))

		if a.cfg.Reporting.Charts {
			name := "wordcount.html"
			if refine {
				name = "wordcount_refined.html"
			}
			path := filepath.Join(a.cfg.Reporting.Path, name)
			if err := reporter.WriteChart(reporter.WordCountChart(counts, stats, reporter.DefaultChartConfig()), path); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			log.Info().Str("path", path).Msg("Chart saved successfully.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wordcountCmd)
	wordcountCmd.Flags().BoolP("refine", "r", false, "Count only the refined specification sections")
}
