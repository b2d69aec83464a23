package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rhythm-dodger/internal/config"
	"github.com/vovakirdan/rhythm-dodger/internal/platform/tui"
	"github.com/vovakirdan/rhythm-dodger/internal/sim"
)

var flagInteractive bool

var tuningCmd = &cobra.Command{
	Use:   "tuning",
	Short: "Show the spawn schedule",
	Long: `Print the difficulty multiplier and the spawn interval of every obstacle
family at 10 second steps of game time. A "-" means the family is silent.

Examples:
  dodger tuning
  dodger tuning --difficulty hard
  dodger tuning --interactive`,
	Args: cobra.NoArgs,
	RunE: runTuning,
}

func init() {
	tuningCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse presets in a table view")
}

func runTuning(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunTuning(cfg, preset, width, height)
	}

	config.ApplyDodgerPreset(&cfg, preset)
	rows := sim.Schedule(cfg, tui.TuningStepMs)

	fmt.Printf("Spawn schedule (%s)\n\n", presetName(preset))

	names := sim.FamilyNames()
	fmt.Printf("  %-6s  %-5s  %-5s", "Time", "Stage", "Mult")
	for _, n := range names {
		fmt.Printf("  %-8s", n)
	}
	fmt.Println()
	fmt.Printf("  %-6s  %-5s  %-5s", "----", "-----", "----")
	for _, n := range names {
		fmt.Printf("  %-8s", strings.Repeat("-", len(n)))
	}
	fmt.Println()

	for _, row := range tui.ScheduleTableRows(rows) {
		fmt.Printf("  %-6s  %-5s  %-5s", row[0], row[1], row[2])
		for _, cell := range row[3:] {
			fmt.Printf("  %-8s", cell)
		}
		fmt.Println()
	}
	return nil
}
