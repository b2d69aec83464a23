package sim

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/rhythm-dodger/internal/config"
	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

func newTestState(seed int64) *State {
	return New(config.DefaultDodgerConfig(), Viewport{W: 800, H: 600}, seed)
}

// startInvincible starts a session the player cannot lose to obstacles.
func startInvincible(seed int64) *State {
	s := newTestState(seed)
	s.SetInvincible(true)
	s.Start()
	return s
}

// advance feeds whole 16ms ticks plus a remainder until ms of game time has passed.
func advance(s *State, ms float64, in core.Intents, each func()) {
	for ms > 0 && s.Phase() == PhasePlaying {
		dt := min(16, ms)
		s.Update(dt, in)
		ms -= dt
		if each != nil {
			each()
		}
	}
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestNewStartsInMenu(t *testing.T) {
	s := newTestState(1)
	if s.Phase() != PhaseMenu {
		t.Errorf("New should start in menu, got %v", s.Phase())
	}
	s.Update(16, core.Intents{MoveLeft: true})
	if s.GameTime() != 0 {
		t.Errorf("Menu should not advance game time, got %v", s.GameTime())
	}
	if s.Player().X != 400 {
		t.Errorf("Menu should ignore intents, player x %v", s.Player().X)
	}
}

func TestStartOnlyFromIdlePhases(t *testing.T) {
	s := newTestState(1)
	if !s.Start() {
		t.Fatal("Start from menu should succeed")
	}
	if s.Generation() != 1 {
		t.Errorf("Start should bump generation, got %d", s.Generation())
	}
	if s.Start() {
		t.Error("Start while playing should be rejected")
	}
	if s.Generation() != 1 {
		t.Errorf("Rejected start should keep generation, got %d", s.Generation())
	}
}

func TestUpdateClampsDelta(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"nominal", 16, 16},
		{"short", 5, 5},
		{"at limit", 100, 100},
		{"stall", 150, 16},
		{"huge stall", 5000, 16},
		{"negative", -20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := startInvincible(1)
			s.Update(tt.delta, core.Intents{})
			if s.GameTime() != tt.want {
				t.Errorf("GameTime after delta %v = %v, want %v", tt.delta, s.GameTime(), tt.want)
			}
		})
	}
}

func TestGameTimeAdvancesByClampedDelta(t *testing.T) {
	s := startInvincible(3)
	rng := rand.New(rand.NewSource(99))

	want := s.GameTime()
	for i := 0; i < 2000 && s.Phase() == PhasePlaying; i++ {
		delta := rng.Float64()*140 - 10
		want += s.clampDelta(delta)
		s.Update(delta, core.Intents{})
		if s.Phase() != PhasePlaying {
			break
		}
		if got := s.GameTime(); got != want {
			t.Fatalf("tick %d: game time = %v, want %v", i, got, want)
		}
	}
}

func TestPlayerStaysInBounds(t *testing.T) {
	s := startInvincible(5)
	rng := rand.New(rand.NewSource(11))
	half := s.Player().Width / 2

	for i := 0; i < 6000 && s.Phase() == PhasePlaying; i++ {
		in := core.Intents{
			MoveLeft:  rng.Intn(3) == 0,
			MoveRight: rng.Intn(3) == 0,
			Jump:      rng.Intn(10) == 0,
		}
		s.Update(16, in)

		p := s.Player()
		if p.X < half || p.X > 800-half {
			t.Fatalf("tick %d: player x %v outside [%v, %v]", i, p.X, half, 800-half)
		}
		if p.Grounded() && p.Y != s.GroundY() {
			t.Fatalf("tick %d: grounded player at y %v, ground %v", i, p.Y, s.GroundY())
		}
	}
}

func TestObstaclesNeverActiveAndDead(t *testing.T) {
	s := startInvincible(8)
	advance(s, 100000, core.Intents{}, func() {
		for _, o := range s.obstacles {
			if o.Active && o.Dead {
				t.Fatalf("%v obstacle is active and dead at %v", o.Kind, s.GameTime())
			}
			if o.Dead {
				t.Fatalf("dead %v obstacle left in the field at %v", o.Kind, s.GameTime())
			}
		}
	})
}

func TestStageTransitionScenario(t *testing.T) {
	s := startInvincible(21)

	// 59999ms of stage 1
	sawSweeper := false
	advance(s, 59999, core.Intents{}, func() {
		for _, o := range s.obstacles {
			if o.Kind == KindSweeper {
				sawSweeper = true
			}
		}
	})
	if s.GameTime() != 59999 {
		t.Fatalf("GameTime = %v, want 59999", s.GameTime())
	}
	if s.Stage() != 1 {
		t.Errorf("Stage before 60s = %d, want 1", s.Stage())
	}
	if sawSweeper {
		t.Error("Sweeper should never spawn in stage 1")
	}
	if len(s.Obstacles()) == 0 {
		t.Error("Stage 1 should have spawned obstacles by 60s")
	}
	s.DrainEvents()

	// One more millisecond crosses the threshold
	s.Update(1, core.Intents{})
	if s.Stage() != 2 {
		t.Fatalf("Stage after 60s = %d, want 2", s.Stage())
	}
	if n := len(s.Obstacles()); n != 0 {
		t.Errorf("Transition should clear obstacles, %d left", n)
	}
	if n := len(s.Warnings()); n != 0 {
		t.Errorf("Transition should clear warnings, %d left", n)
	}
	if s.PendingDeferred() != 0 {
		t.Errorf("Transition should clear deferred spawns, %d left", s.PendingDeferred())
	}
	if !s.Transitioning() || s.TransitionTimer() != 0 {
		t.Errorf("Transition window should open at 0, transitioning=%v timer=%v", s.Transitioning(), s.TransitionTimer())
	}
	if !hasEvent(s.DrainEvents(), EventStageTransition) {
		t.Error("Transition should emit a stage transition event")
	}
	if got := s.Platform().Width; !approx(got, 800) {
		t.Errorf("Floor during grace = %v, want the stage 1 width %v", got, 800)
	}
	if next, ok := s.PendingPlatform(); !ok || !approx(next.Width, 480) {
		t.Errorf("Pending floor = %v (ok=%v), want width %v", next.Width, ok, 800*0.6)
	}

	// Spawning stays suppressed for the grace window
	for s.TransitionTimer() < 1500 {
		s.Update(16, core.Intents{})
		if s.TransitionTimer() < 1500 && len(s.obstacles) != 0 {
			t.Fatalf("Obstacle spawned during grace at timer %v", s.TransitionTimer())
		}
	}
	if got := s.Platform().Width; !approx(got, 480) {
		t.Errorf("Stage 2 platform width = %v, want %v", got, 800*0.6)
	}
	if _, ok := s.PendingPlatform(); ok {
		t.Error("No floor change should be pending after grace")
	}

	// Spawning resumes, sweepers join, and the window closes
	advance(s, 5000, core.Intents{}, func() {
		for _, o := range s.obstacles {
			if o.Kind == KindSweeper {
				sawSweeper = true
			}
		}
	})
	if !sawSweeper {
		t.Error("Sweeper should spawn in stage 2")
	}
	if s.Transitioning() {
		t.Error("Transition window should close after 3s")
	}
	if s.Stage() != 2 {
		t.Errorf("Stage should remain 2, got %d", s.Stage())
	}
}

func TestStage2DoublesScorePerTick(t *testing.T) {
	s := startInvincible(4)
	s.Update(16, core.Intents{})
	if s.Score() != 1 {
		t.Errorf("Stage 1 score per tick = %d, want 1", s.Score())
	}

	advance(s, 60000-s.GameTime(), core.Intents{}, nil)
	before := s.Score()
	s.Update(16, core.Intents{})
	if got := s.Score() - before; got != 2 {
		t.Errorf("Stage 2 score per tick = %d, want 2", got)
	}
}

func TestDifficultyMultiplierPerStage(t *testing.T) {
	s := startInvincible(4)
	advance(s, 10000, core.Intents{}, nil)
	if got, want := s.DifficultyMultiplier(), 1+10*0.08; !approx(got, want) {
		t.Errorf("Stage 1 multiplier at 10s = %v, want %v", got, want)
	}

	advance(s, 55000, core.Intents{}, nil)
	stageTime := s.GameTime() - 60000
	if got, want := s.DifficultyMultiplier(), 1.5+stageTime/1000*0.10; !approx(got, want) {
		t.Errorf("Stage 2 multiplier at %vms into the stage = %v, want %v", stageTime, got, want)
	}
}

func TestJumpGatedByUnlockTime(t *testing.T) {
	s := startInvincible(6)

	s.Update(16, core.Intents{Jump: true})
	p := s.Player()
	if p.Jumping || p.VelocityY != 0 {
		t.Errorf("Jump before unlock: jumping=%v vy=%v, want false and 0", p.Jumping, p.VelocityY)
	}

	advance(s, 10000-s.GameTime(), core.Intents{}, nil)
	s.DrainEvents()
	s.Update(16, core.Intents{Jump: true})
	p = s.Player()
	if !p.Jumping || p.VelocityY >= 0 {
		t.Errorf("Jump after unlock: jumping=%v vy=%v, want true and upward", p.Jumping, p.VelocityY)
	}
	var jump *Event
	for _, e := range s.DrainEvents() {
		if e.Kind == EventJump {
			jump = &e
		}
	}
	if jump == nil || jump.Count != 5 {
		t.Errorf("Jump should emit a jump event with count 5, got %+v", jump)
	}

	// The jump lands back on the ground
	landed := false
	for i := 0; i < 200 && !landed; i++ {
		s.Update(16, core.Intents{})
		landed = hasEvent(s.DrainEvents(), EventLand)
	}
	if !landed {
		t.Fatal("Jump should land")
	}
	if p := s.Player(); p.Y != s.GroundY() || p.VelocityY != 0 || p.Jumping {
		t.Errorf("Landing should snap to ground, got y=%v vy=%v jumping=%v", p.Y, p.VelocityY, p.Jumping)
	}
}

func TestStage2JumpUnlock(t *testing.T) {
	s := startInvincible(6)
	advance(s, 60000, core.Intents{}, nil)
	if s.Stage() != 2 {
		t.Fatalf("Stage = %d, want 2", s.Stage())
	}

	s.Update(16, core.Intents{Jump: true})
	if s.Player().Jumping {
		t.Error("Jump should be locked right after the stage transition")
	}

	advance(s, 3000, core.Intents{}, nil)
	s.Update(16, core.Intents{Jump: true})
	if !s.Player().Jumping {
		t.Error("Jump should unlock 3s into stage 2")
	}
}

// enterStage2At parks the player at x just before the stage threshold and
// ticks once into stage 2.
func enterStage2At(t *testing.T, seed int64, x float64) *State {
	t.Helper()
	s := startInvincible(seed)
	advance(s, 59990, core.Intents{}, nil)
	s.player.X, s.player.TargetX = x, x
	s.Update(16, core.Intents{})
	if s.Stage() != 2 {
		t.Fatalf("Stage = %d, want 2", s.Stage())
	}
	return s
}

func TestStage2FloorShrinksAfterGrace(t *testing.T) {
	t.Run("walking inside during grace survives", func(t *testing.T) {
		s := enterStage2At(t, 4, 17.5)

		for s.TransitionTimer() < 1000 {
			s.Update(16, core.Intents{})
			if !s.Player().Grounded() {
				t.Fatalf("Player left the floor during grace at timer %v", s.TransitionTimer())
			}
		}
		for s.Player().X < 200 && s.TransitionTimer() < 1500 {
			s.Update(16, core.Intents{MoveRight: true})
		}
		if s.TransitionTimer() >= 1500 {
			t.Fatalf("Player did not reach the new floor before grace closed, x=%v", s.Player().X)
		}

		for s.TransitionTimer() < 1600 {
			s.Update(16, core.Intents{})
		}
		if s.Phase() != PhasePlaying {
			t.Fatalf("Phase = %v, want playing", s.Phase())
		}
		if p := s.Player(); !p.Grounded() || !s.Platform().Supports(p.X) {
			t.Errorf("Player should stand on the stage 2 floor, x=%v falling=%v", p.X, p.Falling)
		}
	})

	t.Run("staying outside falls once grace closes", func(t *testing.T) {
		s := enterStage2At(t, 5, 17.5)

		for s.TransitionTimer() < 1500 {
			if s.Player().Falling {
				t.Fatalf("Player fell during grace at timer %v", s.TransitionTimer())
			}
			s.Update(16, core.Intents{})
		}
		if !s.Player().Falling {
			t.Error("Player outside the stage 2 floor should fall when grace closes")
		}
	})
}

func TestWalkingOffPlatformFalls(t *testing.T) {
	s := startInvincible(2)
	s.stage = 2
	s.platform = newPlatform(800, 0.6)
	s.player.X, s.player.TargetX = 100, 100

	s.Update(16, core.Intents{})
	if !s.Player().Falling {
		t.Fatal("Grounded player off the platform should fall")
	}

	fallTicks := 0
	for i := 0; i < 200 && s.Phase() == PhasePlaying; i++ {
		s.Update(16, core.Intents{Jump: true})
		for _, e := range s.DrainEvents() {
			if e.Kind == EventFallTick {
				fallTicks++
			}
		}
	}
	if s.Phase() != PhaseDying {
		t.Errorf("Falling past the viewport should kill even when invincible, phase %v", s.Phase())
	}
	if s.Player().Y <= 600 {
		t.Errorf("Player should be below the viewport, y=%v", s.Player().Y)
	}
	if fallTicks == 0 {
		t.Error("Falling should emit fall tick events")
	}
}

func TestJumpLandingOffPlatformFalls(t *testing.T) {
	s := startInvincible(2)
	advance(s, 10000, core.Intents{}, nil)
	s.Update(16, core.Intents{Jump: true})
	if !s.Player().Jumping {
		t.Fatal("Jump should start")
	}

	// Platform shrinks away while airborne
	s.platform = Platform{LeftEdge: 0, RightEdge: 10, Width: 10}
	for i := 0; i < 200 && s.Player().Jumping; i++ {
		s.Update(16, core.Intents{})
	}
	p := s.Player()
	if !p.Falling {
		t.Fatal("Landing outside the platform should switch to falling")
	}
	if p.Y < s.GroundY() {
		t.Errorf("Falling player should be past the ground line, y=%v ground=%v", p.Y, s.GroundY())
	}
}

func TestVictoryAtDuration(t *testing.T) {
	s := startInvincible(13)
	sawVictory := false
	advance(s, 200000, core.Intents{}, func() {
		if hasEvent(s.DrainEvents(), EventVictory) {
			sawVictory = true
		}
	})

	if s.Phase() != PhaseVictory {
		t.Fatalf("Phase at 130s = %v, want victory", s.Phase())
	}
	if s.GameTime() != 130000 {
		t.Errorf("GameTime = %v, want 130000", s.GameTime())
	}
	if !sawVictory {
		t.Error("Victory should emit a victory event")
	}
	if s.Progress() != 1 {
		t.Errorf("Progress = %v, want 1", s.Progress())
	}

	// Terminal phase ignores further updates
	s.Update(16, core.Intents{})
	if s.GameTime() != 130000 {
		t.Errorf("Victory should freeze game time, got %v", s.GameTime())
	}
}

func TestDyingRunsDeathSequence(t *testing.T) {
	s := newTestState(3)
	s.Start()
	s.Update(16, core.Intents{})
	s.collide()

	if s.Phase() != PhaseDying {
		t.Fatalf("Phase after collision = %v, want dying", s.Phase())
	}
	x := s.Player().X
	timeAtDeath := s.GameTime()
	for i := 0; i < 74; i++ {
		s.Update(16, core.Intents{MoveLeft: true})
	}
	if s.Player().X != x {
		t.Error("Dying should not consume input")
	}
	if s.GameTime() != timeAtDeath {
		t.Error("Dying should not advance game time")
	}
	if s.Phase() != PhaseDying {
		t.Errorf("Phase at 1184ms of dying = %v, want dying", s.Phase())
	}

	s.Update(16, core.Intents{})
	if s.Phase() != PhaseGameOver {
		t.Errorf("Phase after 1200ms of dying = %v, want gameover", s.Phase())
	}
	if s.DeathProgress() != 1 {
		t.Errorf("DeathProgress = %v, want 1", s.DeathProgress())
	}
}

func TestRestartResetsSession(t *testing.T) {
	s := startInvincible(17)
	advance(s, 70000, core.Intents{}, nil)
	s.SetInvincible(false)
	s.combo, s.maxCombo = 40, 40
	s.collide()
	for s.Phase() == PhaseDying {
		s.Update(16, core.Intents{})
	}
	if s.Phase() != PhaseGameOver {
		t.Fatalf("Phase = %v, want gameover", s.Phase())
	}
	if s.Score() == 0 || s.MaxCombo() == 0 || s.Stage() != 2 {
		t.Fatalf("Session should have progressed: score=%d maxCombo=%d stage=%d", s.Score(), s.MaxCombo(), s.Stage())
	}

	if !s.Start() {
		t.Fatal("Start from gameover should succeed")
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("Phase = %v, want playing", s.Phase())
	}
	if s.Score() != 0 || s.Combo() != 0 || s.MaxCombo() != 0 {
		t.Errorf("Start should clear score and combos: %d %d %d", s.Score(), s.Combo(), s.MaxCombo())
	}
	if s.GameTime() != 0 || s.Stage() != 1 || s.Transitioning() {
		t.Errorf("Start should reset time and stage: t=%v stage=%d transitioning=%v", s.GameTime(), s.Stage(), s.Transitioning())
	}
	if len(s.Obstacles()) != 0 || len(s.Warnings()) != 0 || s.PendingDeferred() != 0 {
		t.Error("Start should clear obstacles, warnings and deferred spawns")
	}
	if s.Platform().Width != 800 {
		t.Errorf("Start should restore the full platform, width %v", s.Platform().Width)
	}
	p := s.Player()
	if p.X != 400 || p.Y != s.GroundY() || p.Jumping || p.Falling {
		t.Errorf("Start should reset the player pose, got %+v", p)
	}
	for f, at := range s.lastSpawn {
		if at != 0 {
			t.Errorf("Start should reset %v spawn timer, got %v", family(f), at)
		}
	}
	if s.Generation() != 2 {
		t.Errorf("Generation = %d, want 2", s.Generation())
	}
}

func TestStaleDeferredSpawnIsNoop(t *testing.T) {
	s := newTestState(1)
	s.Start()

	staleFired, freshFired := false, false
	s.deferred.schedule(0, s.Generation()-1, func(*State) { staleFired = true })
	s.deferred.schedule(10, s.Generation(), func(*State) { freshFired = true })
	s.deferred.schedule(5000, s.Generation(), func(*State) {})

	s.Update(16, core.Intents{})
	if staleFired {
		t.Error("Deferred spawn from an older session should not run")
	}
	if !freshFired {
		t.Error("Due deferred spawn should run")
	}
	if s.PendingDeferred() != 1 {
		t.Errorf("PendingDeferred = %d, want 1", s.PendingDeferred())
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := func(i int) core.Intents {
		return core.Intents{
			MoveLeft:  i%90 < 30,
			MoveRight: i%90 >= 60,
			Jump:      i%120 == 0,
		}
	}
	run := func() *State {
		s := startInvincible(777)
		for i := 0; i < 5000 && s.Phase() == PhasePlaying; i++ {
			s.Update(16, script(i))
		}
		return s
	}

	a, b := run(), run()
	if a.Score() != b.Score() || a.GameTime() != b.GameTime() || a.Phase() != b.Phase() {
		t.Errorf("Replays differ: score %d/%d time %v/%v phase %v/%v",
			a.Score(), b.Score(), a.GameTime(), b.GameTime(), a.Phase(), b.Phase())
	}
	if !reflect.DeepEqual(a.Obstacles(), b.Obstacles()) {
		t.Error("Replays produced different obstacle fields")
	}
	if !reflect.DeepEqual(a.Player(), b.Player()) {
		t.Error("Replays produced different player states")
	}
}

func TestResizeKeepsPhase(t *testing.T) {
	s := startInvincible(1)
	s.player.X, s.player.TargetX = 780, 780

	s.Resize(400, 300)
	if s.Phase() != PhasePlaying {
		t.Errorf("Resize should not change phase, got %v", s.Phase())
	}
	if s.GroundY() != 200 {
		t.Errorf("GroundY = %v, want 200", s.GroundY())
	}
	p := s.Player()
	if p.X > 400-p.Width/2 || p.TargetX > 400-p.Width/2 {
		t.Errorf("Resize should clamp the player, x=%v target=%v", p.X, p.TargetX)
	}
	if p.Y != 200 {
		t.Errorf("Grounded player should follow the ground, y=%v", p.Y)
	}
	if s.Platform().Width != 400 {
		t.Errorf("Platform width = %v, want 400", s.Platform().Width)
	}
}

func TestEventBufferIsBounded(t *testing.T) {
	s := newTestState(1)
	for i := 0; i < maxPendingEvents+44; i++ {
		s.emit(Event{Kind: EventFallTick, Count: i})
	}
	events := s.DrainEvents()
	if len(events) != maxPendingEvents {
		t.Fatalf("Pending events = %d, want %d", len(events), maxPendingEvents)
	}
	if events[0].Count != 44 {
		t.Errorf("Oldest events should be dropped first, head count %d", events[0].Count)
	}
	if s.DrainEvents() != nil {
		t.Error("Drain should empty the buffer")
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

var noIntents core.Intents
