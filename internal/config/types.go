// Package config provides YAML-based game configuration loading and
// difficulty management for the dodger.
package config

// DodgerConfig contains all tuning for a dodger session.
type DodgerConfig struct {
	Session    SessionConfig    `yaml:"session"`
	Player     PlayerConfig     `yaml:"player"`
	Stages     StagesConfig     `yaml:"stages"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SessionConfig defines session timing. All durations are milliseconds of game time.
type SessionConfig struct {
	DurationMs      float64 `yaml:"duration_ms"`        // Survive this long to win
	DeathMs         float64 `yaml:"death_ms"`           // Length of the dying sequence
	MaxFrameDeltaMs float64 `yaml:"max_frame_delta_ms"` // Deltas above this are treated as a stall
	NominalDeltaMs  float64 `yaml:"nominal_delta_ms"`   // Substitute delta after a stall
}

// PlayerConfig defines player hitbox and physics.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	GroundOffset    float64 `yaml:"ground_offset"`     // Ground line distance from the viewport bottom
	Speed           float64 `yaml:"speed"`             // Horizontal speed at session start
	MinSpeed        float64 `yaml:"min_speed"`         // Speed never decays below this
	SpeedDecay      float64 `yaml:"speed_decay"`       // Speed lost per minute of game time
	MoveFactor      float64 `yaml:"move_factor"`       // Target nudge multiplier per directional intent
	Smoothing       float64 `yaml:"smoothing"`         // Fraction of the target gap closed per tick
	JumpPower       float64 `yaml:"jump_power"`        // Initial vertical velocity (negative = up)
	Gravity         float64 `yaml:"gravity"`           // Vertical acceleration per nominal tick
	FallGravityMult float64 `yaml:"fall_gravity_mult"` // Gravity multiplier once falling off stage
	JumpParticles   int     `yaml:"jump_particles"`
	LandParticles   int     `yaml:"land_particles"`
}

// StageConfig defines the rule-set of a single stage.
type StageConfig struct {
	JumpUnlockMs     float64 `yaml:"jump_unlock_ms"`    // Jumping allowed this long after the stage starts
	ScorePerTick     int     `yaml:"score_per_tick"`    // Score added per surviving tick
	PlatformFraction float64 `yaml:"platform_fraction"` // Walkable share of the viewport width
	DifficultyBase   float64 `yaml:"difficulty_base"`   // Multiplier at stage start
	DifficultySlope  float64 `yaml:"difficulty_slope"`  // Multiplier growth per second
}

// StagesConfig defines both stages and the transition between them.
type StagesConfig struct {
	Stage1       StageConfig `yaml:"stage1"`
	Stage2       StageConfig `yaml:"stage2"`
	Stage2AtMs   float64     `yaml:"stage2_at_ms"`  // Game time of the one-shot transition
	TransitionMs float64     `yaml:"transition_ms"` // Acknowledgment window length
	GraceMs      float64     `yaml:"grace_ms"`      // Spawning suppressed this long after the transition
}

// Stage returns the rule-set for stage n (1 or 2).
func (s StagesConfig) Stage(n int) StageConfig {
	if n >= 2 {
		return s.Stage2
	}
	return s.Stage1
}

// FamilyConfig defines the cadence of one obstacle family.
// The spawn interval is max(FloorMs, BaseMs - gameTime*Rate).
type FamilyConfig struct {
	StartMs    float64 `yaml:"start_ms"`    // Family stays silent before this game time
	BaseMs     float64 `yaml:"base_ms"`     // Interval at game time zero
	Rate       float64 `yaml:"rate"`        // Interval shrink per ms of game time
	FloorMs    float64 `yaml:"floor_ms"`    // Interval never drops below this
	Stage2Only bool    `yaml:"stage2_only"` // Family only spawns in stage 2
}

// SpawnerConfig defines every obstacle family plus the escalation thresholds.
type SpawnerConfig struct {
	Beam       FamilyConfig `yaml:"beam"`
	Rain       FamilyConfig `yaml:"rain"`
	Laser      FamilyConfig `yaml:"laser"`
	Diagonal   FamilyConfig `yaml:"diagonal"`
	FlashLaser FamilyConfig `yaml:"flash_laser"`
	Sweeper    FamilyConfig `yaml:"sweeper"`

	MaxSpeed            float64 `yaml:"max_speed"`           // Cap for sweeper and rain speeds
	BigRainAfterMs      float64 `yaml:"big_rain_after_ms"`   // Rain may upgrade to big rain after this
	BigRainChance       float64 `yaml:"big_rain_chance"`     // Per-drop upgrade probability
	ChaosBeamAfterMs    float64 `yaml:"chaos_beam_after_ms"` // Per-tick bonus beams after this
	ChaosBeamChance     float64 `yaml:"chaos_beam_chance"`
	ChaosSweeperAfterMs float64 `yaml:"chaos_sweeper_after_ms"` // Per-tick bonus floor sweepers after this
	ChaosSweeperChance  float64 `yaml:"chaos_sweeper_chance"`
	ChaosRainAfterMs    float64 `yaml:"chaos_rain_after_ms"` // Per-tick bonus rain after this
	ChaosRainChance     float64 `yaml:"chaos_rain_chance"`
	ChaosLaserAfterMs   float64 `yaml:"chaos_laser_after_ms"` // Per-tick bonus lasers after this
	ChaosLaserChance    float64 `yaml:"chaos_laser_chance"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`        // false freezes the multiplier and intervals at their base
	IntervalScale float64 `yaml:"interval_scale"` // Multiplies every spawn interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI flag value to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IntervalScaleForPreset returns the spawn interval scale for a preset.
func IntervalScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.3
	case DifficultyHard:
		return 0.8
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
