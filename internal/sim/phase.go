package sim

// Phase is the session phase. Transitions:
//
//	menu -> playing -> dying -> gameover
//	             \-> victory
//
// Start leaves menu, gameover and victory for a fresh playing session.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseDying
	PhaseGameOver
	PhaseVictory
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseDying:
		return "dying"
	case PhaseGameOver:
		return "gameover"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the session until the next Start.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory
}

// canStart reports whether Start is accepted from this phase.
func (p Phase) canStart() bool {
	return p == PhaseMenu || p.Terminal()
}
