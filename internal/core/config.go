package core

// Logical pixel size of one terminal cell. Terminal cells are roughly twice as
// tall as they are wide.
const (
	CellWidthPx  = 10
	CellHeightPx = 20
)

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	TickRate int     // Frame driver ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
	Scale    float64 // Viewport scale factor applied to obstacle geometry (0 means 1)
}

// ViewportSize returns the logical pixel size covered by the terminal screen.
func (c RuntimeConfig) ViewportSize() (float64, float64) {
	return float64(c.ScreenW * CellWidthPx), float64(c.ScreenH * CellHeightPx)
}

// ScaleFactor returns Scale, treating unset values as 1.
func (c RuntimeConfig) ScaleFactor() float64 {
	if c.Scale <= 0 {
		return 1
	}
	return c.Scale
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	MaxCombo int    // Best combo of the session
	Phase    string // Session phase name
	GameOver bool   // Whether the session reached a terminal phase
	Victory  bool   // Whether the terminal phase is a victory
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
