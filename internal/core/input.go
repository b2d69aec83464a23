package core

// Intents is the tri-state input the simulation consumes each tick.
// Physical keys, touches and bots all reduce to these three booleans.
type Intents struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

// Any returns true if at least one intent is held.
func (i Intents) Any() bool {
	return i.MoveLeft || i.MoveRight || i.Jump
}

// Action represents a semantic host action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionJump           // Space, W, Up arrow
	ActionConfirm        // Enter - start or restart a session
	ActionBack           // B, Escape - back to menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// HeldInput turns discrete key presses into held intents.
// Terminals report presses and auto-repeat but never releases, so each press
// keeps its intent alive for a hold window measured in host milliseconds.
type HeldInput struct {
	holdMs  float64
	clock   float64
	leftTo  float64
	rightTo float64
	jumpTo  float64
}

// NewHeldInput creates a HeldInput with the given hold window.
func NewHeldInput(holdMs float64) *HeldInput {
	return &HeldInput{holdMs: holdMs}
}

// Press records a key press for the action at the current host time.
func (h *HeldInput) Press(a Action) {
	until := h.clock + h.holdMs
	switch a {
	case ActionLeft:
		h.leftTo = until
		h.rightTo = 0 // opposite direction cancels, like a swipe
	case ActionRight:
		h.rightTo = until
		h.leftTo = 0
	case ActionJump:
		h.jumpTo = until
	}
}

// Advance moves the host clock forward by deltaMs.
func (h *HeldInput) Advance(deltaMs float64) {
	if deltaMs > 0 {
		h.clock += deltaMs
	}
}

// Intents returns the intents held at the current host time.
func (h *HeldInput) Intents() Intents {
	return Intents{
		MoveLeft:  h.clock < h.leftTo,
		MoveRight: h.clock < h.rightTo,
		Jump:      h.clock < h.jumpTo,
	}
}

// Release drops every held intent.
func (h *HeldInput) Release() {
	h.leftTo, h.rightTo, h.jumpTo = 0, 0, 0
}
