package cmd

import (
	"fmt"

	"specsim/internal/reporter"

	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Rank products against free text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, _ := cmd.Flags().GetString("text")
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

		list, err := engine.Similar(text, top)
		if err != nil {
			return fmt.Errorf("query failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), reporter.NeighborTable(list, shortName(engine)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringP("text", "t", "", "Free text to match")
	queryCmd.Flags().IntP("top", "n", 10, "Number of products to show")
	queryCmd.Flags().StringP("field", "f", "", "Product field to train on (overrides config)")
	queryCmd.MarkFlagRequired("text")
}
