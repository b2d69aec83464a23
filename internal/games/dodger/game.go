// Package dodger adapts the simulation core to the arcade platform.
// It maps terminal cells to logical pixels, drives the simulation with
// elapsed time and held intents, and renders into a core.Screen.
package dodger

import (
	"github.com/vovakirdan/rhythm-dodger/internal/config"
	"github.com/vovakirdan/rhythm-dodger/internal/core"
	"github.com/vovakirdan/rhythm-dodger/internal/sim"
)

// Effect decay per step, matching a 60 FPS frame driver.
const (
	flashDecay = 0.85
	shakeDecay = 0.9
)

// Stats counts presentation events over the lifetime of a Game.
type Stats struct {
	Jumps       int
	Landings    int
	Flashes     int
	Transitions int
}

// Game implements the dodger for the arcade platform.
type Game struct {
	sim     *sim.State
	runtime core.RuntimeConfig
	cfg     config.DodgerConfig
	stats   Stats

	flash     float64 // Screen flash intensity in [0, 1]
	shake     float64 // Shake magnitude in logical pixels
	stepCount int
}

// New creates a game with the given tuning. Reset must be called before use.
func New(cfg config.DodgerConfig) *Game {
	return &Game{cfg: cfg}
}

// Reset creates a fresh simulation in the menu phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	w, h := runtime.ViewportSize()
	g.sim = sim.New(g.cfg, sim.Viewport{W: w, H: h, Scale: runtime.ScaleFactor()}, runtime.Seed)
	g.flash = 0
	g.shake = 0
	g.stepCount = 0
	g.stats = Stats{}
}

// Start begins a new session. It is a no-op while a session is running.
func (g *Game) Start() bool {
	if !g.sim.Start() {
		return false
	}
	g.flash, g.shake = 0, 0
	return true
}

// Resize adapts the playfield to a new terminal size without a restart.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	w, h := g.runtime.ViewportSize()
	g.sim.Resize(w, h)
}

// Step advances the game by deltaMs with the given intents and applies
// the resulting presentation events.
func (g *Game) Step(deltaMs float64, in core.Intents) core.StepResult {
	g.stepCount++
	g.sim.Update(deltaMs, in)

	g.flash *= flashDecay
	g.shake *= shakeDecay
	if g.shake < 0.5 {
		g.shake = 0
	}
	for _, e := range g.sim.DrainEvents() {
		g.apply(e)
	}
	return core.StepResult{State: g.State()}
}

// apply folds one event into the render effects and counters.
func (g *Game) apply(e sim.Event) {
	switch e.Kind {
	case sim.EventFlash:
		g.flash = max(g.flash, e.Intensity)
		g.stats.Flashes++
	case sim.EventShake:
		g.shake = max(g.shake, e.Intensity)
	case sim.EventJump:
		g.stats.Jumps++
	case sim.EventLand:
		g.stats.Landings++
	case sim.EventStageTransition:
		g.stats.Transitions++
		g.flash = 1
	case sim.EventCollision, sim.EventVictory, sim.EventFallTick:
		// Drawn from the phase
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	ph := g.sim.Phase()
	return core.GameState{
		Score:    g.sim.Score(),
		MaxCombo: g.sim.MaxCombo(),
		Phase:    ph.String(),
		GameOver: ph.Terminal(),
		Victory:  ph == sim.PhaseVictory,
	}
}

// Sim exposes the simulation for read-only queries.
func (g *Game) Sim() *sim.State {
	return g.sim
}

// Stats returns the event counters.
func (g *Game) Stats() Stats {
	return g.stats
}
