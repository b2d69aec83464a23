package sim

import (
	"math"

	"github.com/vovakirdan/rhythm-dodger/internal/config"
)

// family indexes the per-family spawn bookkeeping.
type family int

const (
	familyBeam family = iota
	familyRain
	familyLaser
	familyDiagonal
	familyFlashLaser
	familySweeper
	familyCount
)

// String returns the family name used by config and tuning output.
func (f family) String() string {
	switch f {
	case familyBeam:
		return "beam"
	case familyRain:
		return "rain"
	case familyLaser:
		return "laser"
	case familyDiagonal:
		return "diagonal"
	case familyFlashLaser:
		return "flashLaser"
	case familySweeper:
		return "sweeper"
	default:
		return "unknown"
	}
}

func (s *State) familyConfig(f family) config.FamilyConfig {
	sp := s.cfg.Spawner
	switch f {
	case familyBeam:
		return sp.Beam
	case familyRain:
		return sp.Rain
	case familyLaser:
		return sp.Laser
	case familyDiagonal:
		return sp.Diagonal
	case familyFlashLaser:
		return sp.FlashLaser
	default:
		return sp.Sweeper
	}
}

// resetSpawnTimers marks every family as having just spawned at t.
func (s *State) resetSpawnTimers(t float64) {
	for i := range s.lastSpawn {
		s.lastSpawn[i] = t
	}
}

// familyDue reports whether family f should spawn this tick and records the spawn.
func (s *State) familyDue(f family) bool {
	fc := s.familyConfig(f)
	if fc.Stage2Only && s.stage < 2 {
		return false
	}
	t := s.gameTime
	if t < fc.StartMs {
		return false
	}
	if t-s.lastSpawn[f] <= s.difficulty.Interval(fc, t) {
		return false
	}
	s.lastSpawn[f] = t
	return true
}

// spawn runs every family scheduler plus the late-session chaos rolls.
func (s *State) spawn(dt float64) {
	if s.familyDue(familyBeam) {
		s.spawnBeams()
	}
	if s.familyDue(familySweeper) {
		s.spawnSweepers()
	}
	if s.familyDue(familyRain) {
		s.spawnRainBurst()
	}
	if s.familyDue(familyLaser) {
		s.spawnLasers()
	}
	if s.familyDue(familyDiagonal) {
		s.spawnDiagonals()
	}
	if s.familyDue(familyFlashLaser) {
		s.spawnFlashLaser()
	}
	s.spawnChaos(dt)
}

func (s *State) spawnBeams() {
	t := s.gameTime
	n := int(math.Min(5, 1+math.Floor(t/20000)))
	for range n {
		x := s.rng.Float64()*s.viewportW*0.8 + s.viewportW*0.1
		width := 50 + s.rng.Float64()*40 + t/2000
		warning := math.Max(300, 800-t*0.004)
		active := 300 + s.rng.Float64()*200 + t/500
		s.addBand(KindBeam, x, width, warning, active)
	}
}

func (s *State) spawnRainBurst() {
	t := s.gameTime
	n := int(math.Min(8, 1+math.Floor(t/10000)))
	for range n {
		x := s.rng.Float64() * s.viewportW
		speed := math.Min(s.cfg.Spawner.MaxSpeed, 8+(t/5000)*s.multiplier+s.rng.Float64()*4)
		big := t > s.cfg.Spawner.BigRainAfterMs && s.rng.Float64() < s.cfg.Spawner.BigRainChance
		s.addRain(x, speed, big)
	}
}

func (s *State) spawnLasers() {
	t := s.gameTime
	w := s.viewportW
	x := s.rng.Float64()*w*0.7 + w*0.15
	width := 35 + t/4000
	warning := math.Max(400, 1000-t*0.005)
	s.addBand(KindLaser, x, width, warning, 250)

	// Mirrored second laser
	if t > 45000 && s.rng.Float64() < 0.6 {
		x2 := x + w*0.3
		if x > w/2 {
			x2 = x - w*0.3
		}
		s.addBand(KindLaser, x2, width, warning+100, 250)
	}
	// Center laser
	if t > 80000 && s.rng.Float64() < 0.5 {
		s.addBand(KindLaser, w/2, width*1.2, warning, 300)
	}
}

func (s *State) spawnDiagonals() {
	n := int(math.Min(3, 1+math.Floor(s.multiplier/4)))
	for range n {
		fromLeft := s.rng.Float64() > 0.5
		vx := 6 + s.rng.Float64()*4
		x := -20.0
		if !fromLeft {
			vx = -vx
			x = s.viewportW + 20
		}
		vy := 8 + s.rng.Float64()*4
		s.addDiagonal(x, vx, vy)
	}
}

func (s *State) spawnFlashLaser() {
	t := s.gameTime
	x := s.rng.Float64()*s.viewportW*0.8 + s.viewportW*0.1
	width := 25 + t/5000
	warning := math.Max(180, 350-t*0.002)
	s.addBand(KindFlashLaser, x, width, warning, 150)
}

// spawnSweepers sends a sweeper along the floor and may schedule follow-ups.
func (s *State) spawnSweepers() {
	stageTime := s.gameTime - s.stageStartedAt
	fromLeft := s.rng.Float64() > 0.5
	y := s.viewportH - 60 - s.rng.Float64()*80
	speed := math.Min(s.cfg.Spawner.MaxSpeed, 12+(stageTime/3000)*s.multiplier)
	height := 50 + s.rng.Float64()*30
	s.addSweeper(fromLeft, y, speed, height)

	if stageTime > 20000 && s.rng.Float64() < 0.5 {
		yy := s.viewportH - 80 - s.rng.Float64()*60
		s.deferred.schedule(s.gameTime+200, s.generation, func(st *State) {
			st.addSweeper(!fromLeft, yy, math.Min(st.cfg.Spawner.MaxSpeed, speed*1.1), height)
		})
	}
	if stageTime > 40000 && s.rng.Float64() < 0.4 {
		s.deferred.schedule(s.gameTime+400, s.generation, func(st *State) {
			st.addSweeper(fromLeft, st.viewportH-100, speed*0.9, height)
		})
	}
}

// spawnChaos rolls the late-session bonus spawns. Chances are per 16ms tick.
func (s *State) spawnChaos(dt float64) {
	t := s.gameTime
	sp := s.cfg.Spawner
	step := dt / physicsTickMs
	if t > sp.ChaosBeamAfterMs && s.rng.Float64() < sp.ChaosBeamChance*step {
		s.addBand(KindBeam, s.rng.Float64()*s.viewportW, 60, 250, 400)
	}
	if t > sp.ChaosSweeperAfterMs && s.rng.Float64() < sp.ChaosSweeperChance*step {
		fromLeft := s.rng.Float64() > 0.5
		s.addSweeper(fromLeft, s.viewportH-70, 25+s.rng.Float64()*10, 60)
	}
	if t > sp.ChaosRainAfterMs && s.rng.Float64() < sp.ChaosRainChance*step {
		s.addRain(s.rng.Float64()*s.viewportW, 15+s.rng.Float64()*8, false)
	}
	if t > sp.ChaosLaserAfterMs && s.rng.Float64() < sp.ChaosLaserChance*step {
		x := s.rng.Float64()*s.viewportW*0.8 + s.viewportW*0.1
		s.addBand(KindLaser, x, 50, 300, 300)
	}
}

// addBand spawns a beam, laser or flash laser together with its warning.
func (s *State) addBand(kind Kind, x, width, warningMs, activeMs float64) {
	sliver := 10.0
	switch kind {
	case KindLaser:
		sliver = 5
	case KindFlashLaser:
		sliver = 3
	}
	maxWidth := width * s.scale
	s.obstacles = append(s.obstacles, Obstacle{
		Kind:        kind,
		X:           x,
		Y:           s.viewportH / 2,
		Width:       sliver * s.scale,
		Height:      s.viewportH,
		WarningTime: warningMs,
		ActiveTime:  activeMs,
		Alpha:       0.3,
		Body:        Band{MaxWidth: maxWidth},
	})
	s.warnings = append(s.warnings, Warning{
		X:        x,
		Width:    maxWidth,
		Duration: warningMs,
		Alpha:    0.5,
	})
}

func (s *State) addRain(x, speed float64, big bool) {
	kind, w, h := KindRain, 18.0, 35.0
	if big {
		kind, w, h = KindBigRain, 40, 60
		speed *= 0.7
	}
	s.obstacles = append(s.obstacles, Obstacle{
		Kind:   kind,
		X:      x,
		Y:      -50 * s.scale,
		Width:  w * s.scale,
		Height: h * s.scale,
		Alpha:  1,
		Active: true,
		Body:   Drop{Speed: speed * s.scale},
	})
}

func (s *State) addDiagonal(x, vx, vy float64) {
	s.obstacles = append(s.obstacles, Obstacle{
		Kind:        KindDiagonal,
		X:           x,
		Y:           -30 * s.scale,
		Width:       20 * s.scale,
		Height:      40 * s.scale,
		WarningTime: 200,
		Alpha:       1,
		Body:        Diagonal{VX: vx * s.scale, VY: vy * s.scale},
	})
}

func (s *State) addSweeper(fromLeft bool, y, speed, height float64) {
	x, dir := s.viewportW+100, -1.0
	if fromLeft {
		x, dir = -100, 1
	}
	s.obstacles = append(s.obstacles, Obstacle{
		Kind:        KindSweeper,
		X:           x,
		Y:           y,
		Width:       150 * s.scale,
		Height:      height * s.scale,
		WarningTime: 300,
		Alpha:       0.3,
		Body:        Sweeper{Speed: speed * s.scale, Direction: dir},
	})
}
