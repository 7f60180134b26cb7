package cmd

import (
	"fmt"

	"specsim/internal/core"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Look up one product's score in another's neighbor list",
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := cmd.Flags().GetInt("id")
		of, _ := cmd.Flags().GetInt("of")
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

		list, ok := engine.NeighborsOf(of)
		if !ok {
			return fmt.Errorf("product %d is not in the trained catalog", of)
		}
		out := cmd.OutOrStdout()
		score, ok := core.ScoreOf(id, list)
		if !ok {
			fmt.Fprintf(out, "Product %d is not among the %d neighbors of product %d\n", id, len(list), of)
			return nil
		}
		fmt.Fprintf(out, "%.4f\n", score)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().Int("id", 0, "Product id to look up")
	scoreCmd.Flags().Int("of", 0, "Product id whose neighbor list is searched")
	scoreCmd.Flags().StringP("field", "f", "", "Product field to train on (overrides config)")
	scoreCmd.MarkFlagRequired("id")
	scoreCmd.MarkFlagRequired("of")
}
