package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slots/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the machine would run with, after the config
search order and the --speed preset are applied.

Config search order:
  --config <path>
  ~/.slots/configs/slots.yaml
  ./configs/slots.yaml
  built-in defaults

Examples:
  slots config
  slots config --speed fast
  slots config --defaults > ~/.slots/configs/slots.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
