package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"specsim/internal/models"
	"specsim/internal/reporter"

	"github.com/spf13/cobra"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the similarity model and write a report",
	Long: `Train loads the catalog, vectorizes the chosen field of every product,
ranks the neighbors of each one and writes JSON and TXT training reports.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		field, _ := cmd.Flags().GetString("field")
		ctx := cmd.Context()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		engine, model, start, err := a.train(ctx, field)
		if err != nil {
			return err
		}
		end := engine.TrainedAt()

		c := engine.Corpus()
		report := reporter.Report{
			Summary: reporter.TrainingSummary{
				Field:         engine.Field(),
				Products:      c.Len(),
				Terms:         len(model.Terms),
				NeighborLimit: engine.NeighborLimit(),
				StartTime:     start,
				EndTime:       end,
				TotalDuration: end.Sub(start).Round(time.Millisecond).String(),
			},
			Configuration: &a.cfg,
		}
		report.Neighbors = make(map[int]models.NeighborList, c.Len())
		for _, id := range c.IDs() {
			report.Neighbors[id], _ = engine.NeighborsOf(id)
		}

		jsonExporter, err := reporter.NewJSONExporter(filepath.Join(a.cfg.Reporting.Path, "training_report.json"))
		if err != nil {
			return err
		}
		txtExporter, err := reporter.NewTxtExporter(filepath.Join(a.cfg.Reporting.Path, "training_report.txt"))
		if err != nil {
			return err
		}
		for _, exp := range []reporter.Exporter{jsonExporter, txtExporter} {
			if err := exp.Export(report); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Trained %d products on %q: %d terms in %s\n",
			report.Summary.Products, report.Summary.Field, report.Summary.Terms, report.Summary.TotalDuration)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trainCmd)
	trainCmd.Flags().StringP("field", "f", "", "Product field to train on (overrides config)")
}
