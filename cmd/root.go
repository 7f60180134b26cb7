// Package cmd contains the command-line interface logic for specsim.
// It uses the Cobra library to expose training and lookup commands.
package cmd

import (
	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var (
	configDir string
	outputDir string

	rootCmd = &cobra.Command{
		Use:   "specsim",
		Short: "specsim ranks similar products by their specifications.",
		Long: `Content-based product similarity: product specifications are parsed,
vectorized with TF-IDF and compared pairwise by cosine similarity to build
ranked related-product lists.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Commands return their errors so deferred cleanup runs before the exit.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", ".", "Directory containing specsim.yaml")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "Directory to save reports and charts (overrides config)")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
