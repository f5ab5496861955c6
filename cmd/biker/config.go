package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-biker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in biker.yaml. Save it to ~/.biker/configs/biker.yaml
or ./configs/biker.yaml and edit it, or pass it with --config.

Example:
  biker config > ~/.biker/configs/biker.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
