package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

// DefaultDodgerConfig returns the built-in dodger configuration.
// It mirrors defaults/dodger.yaml and is the base every loaded file is merged onto.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		Session: SessionConfig{
			DurationMs:      130000,
			DeathMs:         1200,
			MaxFrameDeltaMs: 100,
			NominalDeltaMs:  16,
		},
		Player: PlayerConfig{
			Width:           35,
			Height:          35,
			GroundOffset:    100,
			Speed:           7,
			MinSpeed:        5,
			SpeedDecay:      1.5,
			MoveFactor:      8,
			Smoothing:       0.2,
			JumpPower:       -18,
			Gravity:         0.8,
			FallGravityMult: 1.5,
			JumpParticles:   5,
			LandParticles:   3,
		},
		Stages: StagesConfig{
			Stage1: StageConfig{
				JumpUnlockMs:     10000,
				ScorePerTick:     1,
				PlatformFraction: 1.0,
				DifficultyBase:   1.0,
				DifficultySlope:  0.08,
			},
			Stage2: StageConfig{
				JumpUnlockMs:     3000,
				ScorePerTick:     2,
				PlatformFraction: 0.6,
				DifficultyBase:   1.5,
				DifficultySlope:  0.10,
			},
			Stage2AtMs:   60000,
			TransitionMs: 3000,
			GraceMs:      1500,
		},
		Spawner: SpawnerConfig{
			Beam:       FamilyConfig{StartMs: 0, BaseMs: 1500, Rate: 0.008, FloorMs: 400},
			Rain:       FamilyConfig{StartMs: 0, BaseMs: 600, Rate: 0.004, FloorMs: 100},
			Laser:      FamilyConfig{StartMs: 15000, BaseMs: 2500, Rate: 0.012, FloorMs: 600},
			Diagonal:   FamilyConfig{StartMs: 25000, BaseMs: 1800, Rate: 0.010, FloorMs: 500},
			FlashLaser: FamilyConfig{StartMs: 40000, BaseMs: 3200, Rate: 0.012, FloorMs: 900},
			Sweeper:    FamilyConfig{StartMs: 0, BaseMs: 3000, Rate: 0.015, FloorMs: 800, Stage2Only: true},

			MaxSpeed:            40,
			BigRainAfterMs:      45000,
			BigRainChance:       0.15,
			ChaosBeamAfterMs:    90000,
			ChaosBeamChance:     0.03,
			ChaosSweeperAfterMs: 90000,
			ChaosSweeperChance:  0.02,
			ChaosRainAfterMs:    110000,
			ChaosRainChance:     0.05,
			ChaosLaserAfterMs:   110000,
			ChaosLaserChance:    0.02,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			IntervalScale: 1.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML document.
func GetDefaultYAML() []byte {
	return defaultDodgerYAML
}
