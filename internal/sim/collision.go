package sim

// checkCollisions tests the player against every active obstacle.
// The first hit ends the run; a clean tick extends the combo.
func (s *State) checkCollisions() {
	p := &s.player
	if p.Falling || p.Invincible {
		return
	}
	box := p.Box()
	for i := range s.obstacles {
		if s.obstacles[i].Hits(box) {
			s.collide()
			return
		}
	}
	s.combo++
	s.maxCombo = max(s.maxCombo, s.combo)
}

// collide moves a playing session into the death sequence.
func (s *State) collide() {
	if s.phase != PhasePlaying {
		return
	}
	s.combo = 0
	s.phase = PhaseDying
	s.deathTimer = 0
	s.emit(Event{Kind: EventCollision, X: s.player.X, Y: s.player.Y, Count: 30})
	s.emit(Event{Kind: EventShake, Intensity: 15})
	s.emit(Event{Kind: EventFlash, Intensity: 0.5})
}
