package config

import (
	"errors"
	"fmt"
)

// Validate checks that every duration, size and rate can drive the simulation.
func (c DodgerConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("session.duration_ms", c.Session.DurationMs)
	positive("session.death_ms", c.Session.DeathMs)
	positive("session.max_frame_delta_ms", c.Session.MaxFrameDeltaMs)
	positive("session.nominal_delta_ms", c.Session.NominalDeltaMs)
	if c.Session.NominalDeltaMs > c.Session.MaxFrameDeltaMs {
		errs = append(errs, errors.New("session.nominal_delta_ms must not exceed max_frame_delta_ms"))
	}

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.gravity", c.Player.Gravity)
	if c.Player.JumpPower >= 0 {
		errs = append(errs, fmt.Errorf("player.jump_power must be negative (upward), got %v", c.Player.JumpPower))
	}
	if c.Player.Smoothing <= 0 || c.Player.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("player.smoothing must be in (0, 1], got %v", c.Player.Smoothing))
	}

	for name, sc := range map[string]StageConfig{"stage1": c.Stages.Stage1, "stage2": c.Stages.Stage2} {
		if sc.PlatformFraction <= 0 || sc.PlatformFraction > 1 {
			errs = append(errs, fmt.Errorf("stages.%s.platform_fraction must be in (0, 1], got %v", name, sc.PlatformFraction))
		}
		if sc.ScorePerTick < 0 {
			errs = append(errs, fmt.Errorf("stages.%s.score_per_tick must not be negative", name))
		}
	}
	positive("stages.stage2_at_ms", c.Stages.Stage2AtMs)
	positive("stages.transition_ms", c.Stages.TransitionMs)
	if c.Stages.GraceMs < 0 || c.Stages.GraceMs > c.Stages.TransitionMs {
		errs = append(errs, errors.New("stages.grace_ms must be within [0, transition_ms]"))
	}

	families := map[string]FamilyConfig{
		"beam":        c.Spawner.Beam,
		"rain":        c.Spawner.Rain,
		"laser":       c.Spawner.Laser,
		"diagonal":    c.Spawner.Diagonal,
		"flash_laser": c.Spawner.FlashLaser,
		"sweeper":     c.Spawner.Sweeper,
	}
	for name, f := range families {
		positive("spawner."+name+".base_ms", f.BaseMs)
		positive("spawner."+name+".floor_ms", f.FloorMs)
		if f.Rate < 0 {
			errs = append(errs, fmt.Errorf("spawner.%s.rate must not be negative", name))
		}
	}
	positive("spawner.max_speed", c.Spawner.MaxSpeed)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid dodger config: %w", err)
	}
	return nil
}
