package config

import "testing"

func TestMultiplierPerStage(t *testing.T) {
	cfg := DefaultDodgerConfig()
	dm := NewDifficultyManager(cfg.Difficulty, cfg.Stages)

	if got := dm.Multiplier(1, 0); got != 1.0 {
		t.Errorf("stage 1 base = %v, expected 1.0", got)
	}
	if got := dm.Multiplier(1, 10000); got < 1.79 || got > 1.81 {
		t.Errorf("stage 1 after 10s = %v, expected 1.8", got)
	}
	if got := dm.Multiplier(2, 0); got != 1.5 {
		t.Errorf("stage 2 base = %v, expected 1.5", got)
	}

	// Stage 2 grows faster than stage 1
	s1 := dm.Multiplier(1, 20000) - dm.Multiplier(1, 10000)
	s2 := dm.Multiplier(2, 20000) - dm.Multiplier(2, 10000)
	if s2 <= s1 {
		t.Errorf("stage 2 slope %v should exceed stage 1 slope %v", s2, s1)
	}
}

func TestMultiplierDisabled(t *testing.T) {
	cfg := DefaultDodgerConfig()
	cfg.Difficulty.Enabled = false
	dm := NewDifficultyManager(cfg.Difficulty, cfg.Stages)

	if got := dm.Multiplier(1, 50000); got != 1.0 {
		t.Errorf("disabled multiplier = %v, expected base 1.0", got)
	}
}

func TestIntervalMonotonicWithFloor(t *testing.T) {
	cfg := DefaultDodgerConfig()
	dm := NewDifficultyManager(cfg.Difficulty, cfg.Stages)
	beam := cfg.Spawner.Beam

	if got := dm.Interval(beam, 0); got != 1500 {
		t.Errorf("beam interval at 0 = %v, expected 1500", got)
	}

	prev := dm.Interval(beam, 0)
	for ms := 0.0; ms <= 200000; ms += 1000 {
		got := dm.Interval(beam, ms)
		if got > prev {
			t.Fatalf("interval grew from %v to %v at %vms", prev, got, ms)
		}
		if got < beam.FloorMs {
			t.Fatalf("interval %v dropped below floor %v", got, beam.FloorMs)
		}
		prev = got
	}
	if prev != beam.FloorMs {
		t.Errorf("late interval = %v, expected floor %v", prev, beam.FloorMs)
	}
}

func TestIntervalNeverBelowMinimum(t *testing.T) {
	cfg := DefaultDodgerConfig()
	cfg.Difficulty.IntervalScale = 0.01
	dm := NewDifficultyManager(cfg.Difficulty, cfg.Stages)

	f := FamilyConfig{BaseMs: 10, Rate: 1, FloorMs: 1}
	if got := dm.Interval(f, 1e9); got != MinIntervalMs {
		t.Errorf("interval = %v, expected MinIntervalMs", got)
	}
}

func TestIntervalScaleAndFixed(t *testing.T) {
	cfg := DefaultDodgerConfig()
	ApplyDodgerPreset(&cfg, DifficultyEasy)
	easy := NewDifficultyManager(cfg.Difficulty, cfg.Stages)
	if got := easy.Interval(cfg.Spawner.Beam, 0); got != 1950 {
		t.Errorf("easy beam interval = %v, expected 1950", got)
	}

	cfg = DefaultDodgerConfig()
	ApplyDodgerPreset(&cfg, DifficultyFixed)
	fixed := NewDifficultyManager(cfg.Difficulty, cfg.Stages)
	if fixed.Interval(cfg.Spawner.Beam, 100000) != fixed.Interval(cfg.Spawner.Beam, 0) {
		t.Error("fixed preset should freeze intervals")
	}
}
