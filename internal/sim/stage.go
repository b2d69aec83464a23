package sim

// updateStage advances the acknowledgment window and fires the one-shot
// stage 2 transition once game time crosses the threshold.
func (s *State) updateStage(dt float64) {
	st := s.cfg.Stages
	if s.transitioning {
		shrinking := s.floorShrinking()
		s.transitionTimer += dt
		if shrinking && !s.floorShrinking() {
			s.platform = s.stagePlatform()
		}
		if s.transitionTimer >= st.TransitionMs {
			s.transitioning = false
		}
	}
	if s.stage == 1 && s.gameTime >= st.Stage2AtMs {
		s.enterStage2()
	}
}

// enterStage2 resets the field for the second stage. It is a reset, not a pause:
// pending hazards and deferred spawns from stage 1 are discarded.
func (s *State) enterStage2() {
	s.obstacles = s.obstacles[:0]
	s.warnings = s.warnings[:0]
	s.deferred.clear()

	s.stage = 2
	s.stageStartedAt = s.gameTime
	s.transitionTimer = 0
	s.transitioning = true
	s.resetSpawnTimers(s.gameTime)
	s.platform = s.stagePlatform()

	s.emit(Event{Kind: EventStageTransition, X: s.viewportW / 2, Y: s.viewportH / 2})
	s.emit(Event{Kind: EventShake, Intensity: 10})
}

// spawnSuppressed reports whether the post-transition grace window is open.
func (s *State) spawnSuppressed() bool {
	return s.transitioning && s.transitionTimer < s.cfg.Stages.GraceMs
}

// floorShrinking reports whether stage 2 has begun but its narrower floor
// has not replaced the stage 1 span yet.
func (s *State) floorShrinking() bool {
	return s.stage == 2 && s.spawnSuppressed()
}

// stagePlatform returns the floor for the current stage. The stage 2 floor
// takes effect once the grace window closes.
func (s *State) stagePlatform() Platform {
	stage := s.stage
	if s.floorShrinking() {
		stage = 1
	}
	return newPlatform(s.viewportW, s.cfg.Stages.Stage(stage).PlatformFraction)
}

// PendingPlatform returns the floor that replaces the current one when the
// grace window closes. ok is false when no shrink is pending.
func (s *State) PendingPlatform() (p Platform, ok bool) {
	if !s.floorShrinking() {
		return s.platform, false
	}
	return newPlatform(s.viewportW, s.cfg.Stages.Stage2.PlatformFraction), true
}
