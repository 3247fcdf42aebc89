// slots is a terminal slot machine with falling symbols and count-based matches.
//
// Usage:
//
//	slots                    - Play in the terminal (same as "slots play")
//	slots play               - Play in the terminal
//	slots simulate           - Run spins headless and print the outcomes
//	slots symbols            - List the symbol catalog
//	slots paytable           - Show points per match size
//	slots config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible spins
//	--config <path>     - Load a custom slots.yaml
//	--speed <preset>    - Animation speed: slow, normal, fast
//	--log-file <path>   - Write logs to a file while playing
//	--verbose           - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slots/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagSpeed   string
	flagLogFile string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slots",
	Short: "TUI Slots - a slot machine in your terminal",
	Long: `TUI Slots drops a fresh grid of symbols on every spin and pays out
for any symbol that shows up three or more times, wherever it lands.

Available commands:
  play      - Play interactively (default)
  simulate  - Run spins without a terminal UI
  symbols   - Show the symbol catalog
  paytable  - Show points per match size
  config    - Print the effective configuration

Examples:
  slots
  slots play --speed fast
  slots simulate --spins 50 --seed 42
  slots paytable`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom slots config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Animation speed preset: slow, normal, fast")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(symbolsCmd)
	rootCmd.AddCommand(paytableCmd)
}

// newLogger returns the structured logger shared by all commands.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "slots",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig resolves the slots config and applies the speed preset.
func loadConfig() (config.SlotsConfig, error) {
	cfg, err := config.LoadSlots(flagConfig)
	if err != nil {
		return config.SlotsConfig{}, err
	}
	if err := config.ApplySpeedPreset(&cfg, config.SpeedPreset(flagSpeed)); err != nil {
		return config.SlotsConfig{}, err
	}
	return cfg, cfg.Validate()
}
