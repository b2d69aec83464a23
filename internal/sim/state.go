// Package sim is the real-time simulation core of the dodger: the session
// state machine, player physics, the obstacle lifecycle, the spawn scheduler
// with its stage transition, and collision detection.
//
// A State is owned by a single goroutine. Hosts feed it elapsed milliseconds
// and intents through Update, poll the queries for drawing, and drain
// presentation events with DrainEvents. The package does no I/O.
package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rhythm-dodger/internal/config"
	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

// Viewport is the logical playfield size plus the geometry scale factor.
type Viewport struct {
	W, H  float64
	Scale float64 // Multiplies obstacle sizes and speeds; 0 means 1
}

// State is the complete simulation state of one dodger instance.
type State struct {
	cfg        config.DodgerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	viewportW float64
	viewportH float64
	scale     float64
	groundY   float64

	phase      Phase
	generation uint64
	gameTime   float64
	deathTimer float64
	score      int
	combo      int
	maxCombo   int
	multiplier float64

	stage           int
	stageStartedAt  float64
	transitionTimer float64
	transitioning   bool

	player    Player
	platform  Platform
	obstacles []Obstacle
	warnings  []Warning
	deferred  deferredQueue
	lastSpawn [familyCount]float64

	events []Event
}

// New creates a simulation in the menu phase. The seed drives every random
// roll, so equal seeds and equal inputs replay identically.
func New(cfg config.DodgerConfig, vp Viewport, seed int64) *State {
	s := &State{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty, cfg.Stages),
		rng:        rand.New(rand.NewSource(seed)),
		phase:      PhaseMenu,
	}
	s.scale = vp.Scale
	if s.scale <= 0 {
		s.scale = 1
	}
	s.setViewport(vp.W, vp.H)
	s.reset()
	return s
}

// reset restores every per-session field to its initial value.
func (s *State) reset() {
	s.gameTime = 0
	s.deathTimer = 0
	s.score = 0
	s.combo = 0
	s.maxCombo = 0
	s.stage = 1
	s.stageStartedAt = 0
	s.transitionTimer = 0
	s.transitioning = false
	s.multiplier = s.difficulty.Multiplier(1, 0)
	s.obstacles = s.obstacles[:0]
	s.warnings = s.warnings[:0]
	s.deferred.clear()
	s.resetSpawnTimers(0)
	s.platform = newPlatform(s.viewportW, s.cfg.Stages.Stage1.PlatformFraction)
	invincible := s.player.Invincible
	s.resetPlayer()
	s.player.Invincible = invincible
}

// Start begins a fresh session from the menu or a finished session.
// It returns false, and changes nothing, while a session is running.
func (s *State) Start() bool {
	if !s.phase.canStart() {
		return false
	}
	s.reset()
	s.generation++
	s.events = nil
	s.phase = PhasePlaying
	return true
}

// clampDelta guards against stalls: oversized deltas become one nominal tick.
func (s *State) clampDelta(deltaMs float64) float64 {
	sc := s.cfg.Session
	switch {
	case !(deltaMs >= 0):
		return 0
	case deltaMs > sc.MaxFrameDeltaMs:
		return sc.NominalDeltaMs
	default:
		return deltaMs
	}
}

// Update advances the simulation by deltaMs of wall-clock time.
// Intents are ignored outside the playing phase.
func (s *State) Update(deltaMs float64, in core.Intents) {
	dt := s.clampDelta(deltaMs)
	switch s.phase {
	case PhasePlaying:
		s.tick(dt, in)
	case PhaseDying:
		s.deathTimer += dt
		if s.deathTimer >= s.cfg.Session.DeathMs {
			s.phase = PhaseGameOver
			s.emit(Event{Kind: EventShake, Intensity: 20})
		}
	}
}

// tick runs one playing frame in dependency order.
func (s *State) tick(dt float64, in core.Intents) {
	s.gameTime += dt
	if s.gameTime >= s.cfg.Session.DurationMs {
		s.phase = PhaseVictory
		s.emit(Event{Kind: EventVictory, X: s.player.X, Y: s.player.Y, Count: 50})
		return
	}

	s.updateStage(dt)
	s.multiplier = s.difficulty.Multiplier(s.stage, s.gameTime-s.stageStartedAt)

	s.updatePlayer(dt, in)
	if s.phase != PhasePlaying {
		// Fell off the stage
		return
	}

	s.updateObstacles(dt)
	s.updateWarnings(dt)
	s.drainDeferred()
	if !s.spawnSuppressed() {
		s.spawn(dt)
	}

	s.checkCollisions()
	if s.phase == PhasePlaying {
		s.score += s.cfg.Stages.Stage(s.stage).ScorePerTick
	}
}

func (s *State) setViewport(w, h float64) {
	s.viewportW = math.Max(1, w)
	s.viewportH = math.Max(1, h)
	s.groundY = s.viewportH - s.cfg.Player.GroundOffset
}

// Resize changes the viewport. Ground line, platform span and player bounds
// follow; the phase and the obstacle field are left untouched.
func (s *State) Resize(w, h float64) {
	s.setViewport(w, h)
	s.platform = s.stagePlatform()

	p := &s.player
	minX, maxX := s.playerBounds()
	p.X = core.ClampF(p.X, minX, maxX)
	p.TargetX = core.ClampF(p.TargetX, minX, maxX)
	if p.Grounded() {
		p.Y = s.groundY
	}
}

// SetInvincible toggles the collision hook on the player. It survives Start.
func (s *State) SetInvincible(on bool) {
	s.player.Invincible = on
}

// Phase returns the session phase.
func (s *State) Phase() Phase { return s.phase }

// Score returns the session score.
func (s *State) Score() int { return s.score }

// Combo returns the current run of collision-free ticks.
func (s *State) Combo() int { return s.combo }

// MaxCombo returns the best combo of the session.
func (s *State) MaxCombo() int { return s.maxCombo }

// GameTime returns elapsed playing time in milliseconds.
func (s *State) GameTime() float64 { return s.gameTime }

// Duration returns the session length in milliseconds.
func (s *State) Duration() float64 { return s.cfg.Session.DurationMs }

// Progress returns GameTime as a fraction of Duration in [0, 1].
func (s *State) Progress() float64 {
	return core.ClampF(s.gameTime/s.cfg.Session.DurationMs, 0, 1)
}

// Stage returns the current stage, 1 or 2.
func (s *State) Stage() int { return s.stage }

// TransitionTimer returns milliseconds since the stage transition while it is acknowledged.
func (s *State) TransitionTimer() float64 { return s.transitionTimer }

// Transitioning reports whether the stage transition window is open.
func (s *State) Transitioning() bool { return s.transitioning }

// Player returns a copy of the player.
func (s *State) Player() Player { return s.player }

// Obstacles returns a copy of the live obstacles.
func (s *State) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// Warnings returns a copy of the live warnings.
func (s *State) Warnings() []Warning {
	out := make([]Warning, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// Platform returns the walkable span for the current stage.
func (s *State) Platform() Platform { return s.platform }

// GroundY returns the y of the player's center when standing.
func (s *State) GroundY() float64 { return s.groundY }

// Viewport returns the current logical viewport.
func (s *State) Viewport() Viewport {
	return Viewport{W: s.viewportW, H: s.viewportH, Scale: s.scale}
}

// DifficultyMultiplier returns the multiplier used by this tick's spawns.
func (s *State) DifficultyMultiplier() float64 { return s.multiplier }

// Generation counts started sessions.
func (s *State) Generation() uint64 { return s.generation }

// PendingDeferred returns the number of scheduled follow-up spawns.
func (s *State) PendingDeferred() int { return s.deferred.Len() }

// DeathProgress returns how far the dying sequence has run, in [0, 1].
func (s *State) DeathProgress() float64 {
	switch s.phase {
	case PhaseDying:
		return core.ClampF(s.deathTimer/s.cfg.Session.DeathMs, 0, 1)
	case PhaseGameOver:
		return 1
	default:
		return 0
	}
}

// JumpUnlocked reports whether jumping is allowed at the current game time.
func (s *State) JumpUnlocked() bool { return s.jumpUnlocked() }
