package sim

import (
	"math"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

// physicsTickMs is the frame length all per-tick speeds are expressed in.
// A delta of 32ms moves things twice as far as a delta of 16ms.
const physicsTickMs = 16.0

// Player is the avatar. X and Y are the hitbox center in logical pixels.
type Player struct {
	X, Y      float64
	TargetX   float64 // Smoothing goal for horizontal motion
	Width     float64
	Height    float64
	VelocityY float64
	Jumping   bool
	Falling   bool
	Speed     float64 // Horizontal speed, decays with game time

	// Invincible suppresses collision checks. Nothing in the engine sets it;
	// it exists for hosts and tests.
	Invincible bool
}

// Box returns the player's hitbox.
func (p Player) Box() core.Rect {
	return core.RectFromCenter(p.X, p.Y, p.Width, p.Height)
}

// Grounded reports whether the player stands on the ground line.
func (p Player) Grounded() bool {
	return !p.Jumping && !p.Falling
}

// resetPlayer places the player centered on the ground at rest.
func (s *State) resetPlayer() {
	pc := s.cfg.Player
	s.player = Player{
		X:       s.viewportW / 2,
		Y:       s.groundY,
		TargetX: s.viewportW / 2,
		Width:   pc.Width,
		Height:  pc.Height,
		Speed:   pc.Speed,
	}
}

// playerBounds returns the clamp range for the player's center.
func (s *State) playerBounds() (float64, float64) {
	half := s.player.Width / 2
	return half, math.Max(half, s.viewportW-half)
}

// jumpUnlocked reports whether the current stage allows jumping yet.
func (s *State) jumpUnlocked() bool {
	unlock := s.cfg.Stages.Stage(s.stage).JumpUnlockMs
	return s.gameTime-s.stageStartedAt >= unlock
}

// updatePlayer integrates one tick of horizontal and vertical motion.
func (s *State) updatePlayer(dt float64, in core.Intents) {
	p := &s.player
	pc := s.cfg.Player
	step := dt / physicsTickMs

	p.Speed = math.Max(pc.MinSpeed, pc.Speed-s.gameTime/60000*pc.SpeedDecay)

	move := p.Speed * step * pc.MoveFactor
	if in.MoveLeft {
		p.TargetX -= move
	}
	if in.MoveRight {
		p.TargetX += move
	}
	minX, maxX := s.playerBounds()
	p.TargetX = core.ClampF(p.TargetX, minX, maxX)
	p.X += (p.TargetX - p.X) * pc.Smoothing
	p.X = core.ClampF(p.X, minX, maxX)

	platform := s.Platform()

	if p.Grounded() {
		switch {
		case !platform.Supports(p.X):
			// Walked off the edge
			p.Falling = true
			p.VelocityY = 0
		case in.Jump && s.jumpUnlocked():
			p.Jumping = true
			p.VelocityY = pc.JumpPower
			s.emit(Event{Kind: EventJump, X: p.X, Y: p.Y + p.Height/2, Count: pc.JumpParticles})
		}
	}

	switch {
	case p.Jumping:
		p.VelocityY += pc.Gravity * step
		p.Y += p.VelocityY * step
		if p.Y < s.groundY {
			return
		}
		p.Jumping = false
		if platform.Supports(p.X) {
			p.Y = s.groundY
			p.VelocityY = 0
			s.emit(Event{Kind: EventLand, X: p.X, Y: p.Y + p.Height/2, Count: pc.LandParticles})
			return
		}
		// Came down past the edge: keep the downward velocity
		p.Falling = true

	case p.Falling:
		p.VelocityY += pc.Gravity * pc.FallGravityMult * step
		p.Y += p.VelocityY * step
		s.emit(Event{Kind: EventFallTick, X: p.X, Y: p.Y, Count: 1})
		if p.Y > s.viewportH {
			s.collide()
		}
	}
}
