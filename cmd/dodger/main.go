// dodger is a terminal obstacle-dodging arcade game.
//
// Usage:
//
//	dodger play              - Play in the terminal
//	dodger serve             - Start SSH server for remote play
//	dodger simulate          - Run headless bot sessions
//	dodger tuning            - Show the spawn schedule of a preset
//	dodger config            - Print the default config YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rhythm-dodger/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Rhythm Dodger - dodge obstacles in your terminal",
	Long: `Rhythm Dodger is a single-player arcade game. Survive 2:10 of beams,
lasers, rain and sweepers. Stage 2 starts at 1:00 and shrinks the floor.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  simulate  - Run headless bot sessions
  tuning    - Show the spawn schedule
  config    - Print the default config

Examples:
  dodger play
  dodger play --difficulty hard
  dodger serve --ssh :2222
  dodger simulate --runs 20 --seed 42
  dodger tuning --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(tuningCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game config and parses the difficulty flag.
func loadConfig() (config.DodgerConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadDodger(flagConfig)
	if err != nil {
		return config.DodgerConfig{}, "", err
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return config.DodgerConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return cfg, preset, nil
}
