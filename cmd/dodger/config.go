package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rhythm-dodger/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Print the embedded default configuration.

Save it to ~/.arcade/configs/dodger.yaml or ./configs/dodger.yaml and edit
it to change the tuning. Partial files are merged over the defaults.

Examples:
  dodger config > ~/.arcade/configs/dodger.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.GetDefaultYAML())
		return err
	},
}
