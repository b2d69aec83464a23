package config

import "math"

// MinIntervalMs is the smallest spawn interval the scheduler will ever use.
// It keeps every family from spawning more than once per couple of ticks.
const MinIntervalMs = 50

// DifficultyManager calculates the difficulty multiplier and spawn intervals
// from elapsed game time and the current stage.
type DifficultyManager struct {
	cfg    DifficultyConfig
	stages StagesConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, stages StagesConfig) *DifficultyManager {
	if cfg.IntervalScale <= 0 {
		cfg.IntervalScale = 1
	}
	return &DifficultyManager{
		cfg:    cfg,
		stages: stages,
	}
}

// Multiplier returns the difficulty multiplier for the given stage.
// Growth is linear in the time spent inside the stage; stage 2 starts from a
// higher base and grows on a steeper slope.
func (d *DifficultyManager) Multiplier(stage int, stageTimeMs float64) float64 {
	sc := d.stages.Stage(stage)
	if !d.cfg.Enabled {
		return sc.DifficultyBase
	}
	return sc.DifficultyBase + math.Max(0, stageTimeMs)/1000*sc.DifficultySlope
}

// Interval returns the spawn interval of a family at the given game time.
// The result is monotonically non-increasing in time and never below MinIntervalMs.
func (d *DifficultyManager) Interval(f FamilyConfig, gameTimeMs float64) float64 {
	t := gameTimeMs
	if !d.cfg.Enabled {
		t = 0
	}
	interval := math.Max(f.FloorMs, f.BaseMs-t*f.Rate) * d.cfg.IntervalScale
	return math.Max(MinIntervalMs, interval)
}
