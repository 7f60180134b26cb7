package cmd

import (
	"fmt"
	"path/filepath"

	"specsim/internal/reporter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a product's model neighbors with its curated related products",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt("id")
		top, _ := cmd.Flags().GetInt("top")
		field, _ := cmd.Flags().GetString("field")
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		engine, _, _, err := a.train(ctx, field)
		if err != nil {
			return err
		}

		parent, err := engine.Product(id)
		if err != nil {
			return err
		}
		list, _ := engine.NeighborsOf(id)
		if top > 0 && top < len(list) {
			list = list[:top]
		}

		out := cmd.OutOrStdout()
		cmp := reporter.CompareScores(parent, list)
		fmt.Fprintf(out, "Product %d: %s\n", parent.ID, productLabel(parent))
		fmt.Fprintln(out, reporter.ComparisonTable(cmp))
		fmt.Fprintln(out, reporter.CoverageTable(reporter.Coverage(parent, list)))

		if a.cfg.Reporting.Charts {
			cfg := reporter.DefaultChartConfig()
			cfg.Title = fmt.Sprintf("Product %d: matching vs similarity", parent.ID)
			path := filepath.Join(a.cfg.Reporting.Path, fmt.Sprintf("scores_%d.html", parent.ID))
			if err := reporter.WriteChart(reporter.ScoreChart(cmp, cfg), path); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			log.Info().Str("path", path).Msg("Chart saved successfully.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().Int("id", 0, "Product id")
	compareCmd.Flags().IntP("top", "n", 10, "Number of neighbors to compare")
	compareCmd.Flags().StringP("field", "f", "", "Product field to train on (overrides config)")
	compareCmd.MarkFlagRequired("id")
}
