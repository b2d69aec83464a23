package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rhythm-dodger/internal/config"
	"github.com/vovakirdan/rhythm-dodger/internal/core"
	"github.com/vovakirdan/rhythm-dodger/internal/games/dodger"
)

var (
	flagRuns       int
	flagDeltaMs    float64
	flagInvincible bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless sessions with a scripted bot",
	Long: `Run sessions without a terminal UI. A scripted bot dodges by picking the
least threatened column and jumping over sweepers. Each run is logged with
its outcome, score, best combo and time reached.

Run i uses seed+i, so a fixed --seed reproduces the whole batch.

Examples:
  dodger simulate
  dodger simulate --runs 50 --seed 7
  dodger simulate --difficulty hard --delta 33
  dodger simulate --invincible`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of sessions to run")
	simulateCmd.Flags().Float64Var(&flagDeltaMs, "delta", 16, "Frame delta in milliseconds")
	simulateCmd.Flags().BoolVar(&flagInvincible, "invincible", false, "Ignore collisions")
}

// simResult is the outcome of one headless session.
type simResult struct {
	Finished bool // false when the step bound ran out before a terminal phase
	Victory  bool
	Score    int
	MaxCombo int
	TimeMs   float64
	Stage    int
}

func runSimulate(_ *cobra.Command, _ []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}
	config.ApplyDodgerPreset(&cfg, preset)

	if flagRuns <= 0 {
		return fmt.Errorf("--runs must be positive, got %d", flagRuns)
	}
	if err := checkDelta(flagDeltaMs, cfg.Session); err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "simulate",
	})

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	wins, best, total := 0, 0, 0
	for i := range flagRuns {
		r := simulateRun(cfg, seed+int64(i), flagDeltaMs, flagInvincible)
		outcome := r.outcome()
		if r.Victory {
			wins++
		}
		best = max(best, r.Score)
		total += r.Score

		logger.Info("run finished",
			"run", i+1,
			"seed", seed+int64(i),
			"outcome", outcome,
			"score", r.Score,
			"max_combo", r.MaxCombo,
			"stage", r.Stage,
			"time", time.Duration(r.TimeMs)*time.Millisecond,
		)
	}

	logger.Info("summary",
		"runs", flagRuns,
		"victories", wins,
		"best", best,
		"avg", total/flagRuns,
		"difficulty", presetName(preset),
	)
	return nil
}

// checkDelta rejects frame deltas the engine would clamp. A delta above the
// clamp limit runs at the nominal delta instead, so the batch would not
// simulate what was asked for.
func checkDelta(deltaMs float64, session config.SessionConfig) error {
	if !(deltaMs > 0) || deltaMs > session.MaxFrameDeltaMs {
		return fmt.Errorf("--delta must be in (0, %v], got %v", session.MaxFrameDeltaMs, deltaMs)
	}
	return nil
}

func (r simResult) outcome() string {
	switch {
	case !r.Finished:
		return "unfinished"
	case r.Victory:
		return "victory"
	default:
		return "game over"
	}
}

// simulateRun plays one bot session to a terminal phase.
func simulateRun(cfg config.DodgerConfig, seed int64, deltaMs float64, invincible bool) simResult {
	g := dodger.New(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: seed, Scale: 1})
	g.Sim().SetInvincible(invincible)
	g.Start()

	bot := dodger.NewBot(cfg)
	// Bound the loop in case a tuning never ends the session. The engine
	// replaces deltas above the clamp limit with the nominal one.
	stepMs := deltaMs
	if stepMs > cfg.Session.MaxFrameDeltaMs {
		stepMs = cfg.Session.NominalDeltaMs
	}
	maxSteps := int((cfg.Session.DurationMs+cfg.Session.DeathMs)/max(stepMs, 1)) + 1000
	for range maxSteps {
		if g.Step(deltaMs, bot.Intents(g.Sim())).State.GameOver {
			break
		}
	}

	s := g.Sim()
	st := g.State()
	return simResult{
		Finished: st.GameOver,
		Victory:  st.Victory,
		Score:    s.Score(),
		MaxCombo: s.MaxCombo(),
		TimeMs:   s.GameTime(),
		Stage:    s.Stage(),
	}
}

func presetName(p config.DifficultyPreset) string {
	if p == "" {
		return string(config.DifficultyNormal)
	}
	return string(p)
}
