package cmd

import (
	"fmt"
	"os"

	app "github.com/jimiaki7/gegraptai/pkg"
	"github.com/jimiaki7/gegraptai/pkg/config"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", app.Version, app.Build)
		os.Exit(0)
	}
}

// formatFlag adds the output format flag shared by commands that print
// results.
func formatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "format", "o", "",
		"output format: text, compact, pretty, csv, tsv")
}

// applyFormat overrides the configured output format when the flag was
// given.
func applyFormat(cmd *cobra.Command, format string) {
	if cmd.Flags().Changed("format") {
		cfg.Update([]config.Option{config.OptOutputFormat(format)})
	}
}
