package sim

import (
	"math"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

// Kind identifies an obstacle family.
type Kind int

const (
	KindBeam Kind = iota
	KindLaser
	KindFlashLaser
	KindSweeper
	KindRain
	KindBigRain
	KindDiagonal
)

// String returns the family name.
func (k Kind) String() string {
	switch k {
	case KindBeam:
		return "beam"
	case KindLaser:
		return "laser"
	case KindFlashLaser:
		return "flashLaser"
	case KindSweeper:
		return "sweeper"
	case KindRain:
		return "rain"
	case KindBigRain:
		return "bigRain"
	case KindDiagonal:
		return "diagonal"
	default:
		return "unknown"
	}
}

// IsBand reports whether the kind is a full-height vertical band.
func (k Kind) IsBand() bool {
	return k == KindBeam || k == KindLaser || k == KindFlashLaser
}

// Body holds the kind-specific fields of an obstacle.
// Exactly one of Band, Sweeper, Drop or Diagonal.
type Body interface {
	isBody()
}

// Band is the body of beams and lasers: a vertical band that grows to MaxWidth on activation.
type Band struct {
	MaxWidth float64
}

// Sweeper is a horizontal bar travelling across the floor.
type Sweeper struct {
	Speed     float64
	Direction float64 // +1 moves right, -1 moves left
}

// Drop is a falling rain drop.
type Drop struct {
	Speed float64
}

// Diagonal travels along a fixed velocity vector.
type Diagonal struct {
	VX, VY float64
}

func (Band) isBody()     {}
func (Sweeper) isBody()  {}
func (Drop) isBody()     {}
func (Diagonal) isBody() {}

// LifecycleState is the derived lifecycle state of an obstacle.
type LifecycleState int

const (
	LifecycleWarning LifecycleState = iota
	LifecycleActive
	LifecycleFading
	LifecycleDead
)

// String returns the state name.
func (l LifecycleState) String() string {
	switch l {
	case LifecycleWarning:
		return "warning"
	case LifecycleActive:
		return "active"
	case LifecycleFading:
		return "fading"
	case LifecycleDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Obstacle is a hazard. X and Y are the center in logical pixels.
type Obstacle struct {
	Kind        Kind
	X, Y        float64
	Width       float64
	Height      float64
	Timer       float64 // Milliseconds since spawn
	WarningTime float64
	ActiveTime  float64 // Only meaningful for bands
	Alpha       float64
	Active      bool // Collidable
	Dead        bool
	Body        Body
}

// State derives the lifecycle state from the flags and timer.
func (o *Obstacle) State() LifecycleState {
	switch {
	case o.Dead:
		return LifecycleDead
	case o.Active:
		return LifecycleActive
	case o.Kind.IsBand() && o.Timer >= o.WarningTime+o.ActiveTime:
		return LifecycleFading
	default:
		return LifecycleWarning
	}
}

// Box returns the obstacle's bounding box.
func (o *Obstacle) Box() core.Rect {
	return core.RectFromCenter(o.X, o.Y, o.Width, o.Height)
}

// Hits reports whether the obstacle collides with the given player box.
// Bands span the full height, so only the horizontal extent is tested.
func (o *Obstacle) Hits(player core.Rect) bool {
	if !o.Active || o.Dead {
		return false
	}
	if o.Kind.IsBand() {
		return o.Box().OverlapsX(player)
	}
	return o.Box().Intersects(player)
}

// advance runs one tick of the lifecycle and reports whether the obstacle
// became active this tick for a kind that flashes the screen.
func (o *Obstacle) advance(dt, vw, vh float64) (flashed bool) {
	o.Timer += dt
	step := dt / physicsTickMs

	switch b := o.Body.(type) {
	case Band:
		// Bands always span the full viewport height
		o.Y = vh / 2
		o.Height = vh
		switch {
		case o.Timer < o.WarningTime:
			o.Alpha = 0.3 + math.Sin(o.Timer*0.02)*0.2
		case o.Timer < o.WarningTime+o.ActiveTime:
			flashed = !o.Active && o.Kind != KindBeam
			o.Active = true
			o.Alpha = 1
			o.Width = b.MaxWidth
		default:
			o.Active = false
			o.Alpha -= dt * 0.008
			if o.Alpha <= 0 {
				o.Alpha = 0
				o.Dead = true
			}
		}

	case Sweeper:
		if o.Timer < o.WarningTime {
			o.Alpha = 0.3
			return false
		}
		o.Active = true
		o.Alpha = 1
		o.X += b.Speed * b.Direction * step
		if (b.Direction > 0 && o.X > vw+100) || (b.Direction < 0 && o.X < -100) {
			o.kill()
		}

	case Drop:
		o.Active = true
		o.Y += b.Speed * step
		if o.Y > vh+50 {
			o.kill()
		}

	case Diagonal:
		if o.Timer < o.WarningTime {
			return false
		}
		o.Active = true
		o.X += b.VX * step
		o.Y += b.VY * step
		if o.Y > vh+50 || o.X < -50 || o.X > vw+50 {
			o.kill()
		}
	}
	return flashed
}

// kill marks the obstacle dead. A dead obstacle is never collidable.
func (o *Obstacle) kill() {
	o.Dead = true
	o.Active = false
}

// Warning is a telegraph indicator shown ahead of a band obstacle.
type Warning struct {
	X        float64
	Width    float64
	Duration float64
	Timer    float64
	Alpha    float64
}

// advance runs one tick and reports whether the warning has expired.
func (w *Warning) advance(dt float64) bool {
	w.Timer += dt
	w.Alpha = 0.5 + math.Sin(w.Timer*0.03)*0.4
	return w.Timer >= w.Duration
}

// updateObstacles advances every obstacle and compacts out the dead ones.
func (s *State) updateObstacles(dt float64) {
	valid := s.obstacles[:0]
	for i := range s.obstacles {
		o := s.obstacles[i]
		if o.advance(dt, s.viewportW, s.viewportH) {
			intensity := 0.3
			if o.Kind == KindFlashLaser {
				intensity = 0.5
			}
			s.emit(Event{Kind: EventFlash, X: o.X, Y: o.Y, Intensity: intensity})
		}
		if !o.Dead {
			valid = append(valid, o)
		}
	}
	s.obstacles = valid
}

// updateWarnings advances every warning and drops the expired ones.
func (s *State) updateWarnings(dt float64) {
	valid := s.warnings[:0]
	for i := range s.warnings {
		w := s.warnings[i]
		if !w.advance(dt) {
			valid = append(valid, w)
		}
	}
	s.warnings = valid
}
