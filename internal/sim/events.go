package sim

// EventKind identifies a presentation event emitted by the simulation.
type EventKind int

const (
	EventJump            EventKind = iota // Jump started; Count particles at the feet
	EventLand                             // Landed on the platform
	EventFallTick                         // One tick of falling off stage
	EventCollision                        // Player hit; session is dying
	EventStageTransition                  // Stage 2 started
	EventVictory                          // Session survived to the end
	EventFlash                            // Screen flash; Intensity in [0, 1]
	EventShake                            // Screen shake; Intensity in pixels
)

// String returns a short name for logs and tests.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventLand:
		return "land"
	case EventFallTick:
		return "fall"
	case EventCollision:
		return "collision"
	case EventStageTransition:
		return "stage"
	case EventVictory:
		return "victory"
	case EventFlash:
		return "flash"
	case EventShake:
		return "shake"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification for renderers and audio.
// It only carries a position and magnitudes; consumers decide what to draw.
type Event struct {
	Kind      EventKind
	X, Y      float64
	Count     int
	Intensity float64
}

// maxPendingEvents bounds the event buffer when the host never drains it.
const maxPendingEvents = 256

func (s *State) emit(e Event) {
	if len(s.events) >= maxPendingEvents {
		s.events = s.events[1:]
	}
	s.events = append(s.events, e)
}

// DrainEvents returns all pending events in emission order and clears the buffer.
func (s *State) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}
