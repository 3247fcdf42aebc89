package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slots/internal/core"
	"github.com/vovakirdan/tui-slots/internal/games/slots"
	"github.com/vovakirdan/tui-slots/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the slot machine",
	Long: `Start the slot machine in the terminal.

Controls:
  Space/Enter  - Spin
  P            - Pause
  R            - Reset credits (between spins)
  ?            - Show all keys
  Ctrl+S       - Save a screenshot to ~/.slots/screenshots
  Q/Ctrl+C     - Quit

Speed options:
  slow    - Half speed falls and fades
  normal  - Default timing
  fast    - Double speed falls and fades

Examples:
  slots play
  slots play --speed fast
  slots play --seed 42 --log-file slots.log
  slots play --config ./my-slots.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Logs would corrupt the alt screen, so they only go to a file.
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := newLogger(out)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := slots.New(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("starting", "fps", flagFPS, "seed", flagSeed, "speed", flagSpeed)
	return tui.Run(game, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}, logger)
}
