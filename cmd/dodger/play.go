package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
	"github.com/vovakirdan/rhythm-dodger/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Open the main menu and play.

Controls:
  Left/Right, A/D  - Move
  Space/Up         - Jump (unlocks 10s into stage 1, 3s into stage 2)
  Enter            - Start / restart
  Esc              - Back to menu
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Longer spawn intervals
  normal - Default tuning
  hard   - Shorter spawn intervals
  fixed  - No difficulty progression

Examples:
  dodger play
  dodger play --difficulty hard
  dodger play --seed 42 --fps 30
  dodger play --config ./my-dodger.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Scale:    1,
	}

	if err := tui.Run(cfg, preset, rc); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
