package cmd

import (
	"fmt"

	"specsim/internal/reporter"

	"github.com/spf13/cobra"
)

var neighborsCmd = &cobra.Command{
	Use:   "neighbors",
	Short: "Show the ranked neighbors of a product",
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

		list, ok := engine.NeighborsOf(id)
		if !ok {
			return fmt.Errorf("product %d is not in the trained catalog", id)
		}
		if top > 0 && top < len(list) {
			list = list[:top]
		}
		fmt.Fprintln(cmd.OutOrStdout(), reporter.NeighborTable(list, shortName(engine)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(neighborsCmd)
	neighborsCmd.Flags().Int("id", 0, "Product id")
	neighborsCmd.Flags().IntP("top", "n", 0, "Show only the first n neighbors")
	neighborsCmd.Flags().StringP("field", "f", "", "Product field to train on (overrides config)")
	neighborsCmd.MarkFlagRequired("id")
}
