package dodger

import (
	"math"

	"github.com/vovakirdan/rhythm-dodger/internal/config"
	"github.com/vovakirdan/rhythm-dodger/internal/core"
	"github.com/vovakirdan/rhythm-dodger/internal/sim"
)

// Bot tuning in logical pixels.
const (
	botSamples       = 24
	botMargin        = 12
	botDeadZone      = 30 // About half of one tick of target motion
	botEdgeMargin    = 30
	botJumpLookahead = 140
	botStage2LeadMs  = 2000
)

// Bot is a scripted player for headless runs. It picks the least
// threatened column of the walkable span and jumps over approaching
// sweepers once jumping is unlocked.
type Bot struct {
	stage2AtMs     float64
	stage2Fraction float64
}

// NewBot creates a bot that knows when the floor shrinks.
func NewBot(cfg config.DodgerConfig) Bot {
	return Bot{
		stage2AtMs:     cfg.Stages.Stage2AtMs,
		stage2Fraction: cfg.Stages.Stage2.PlatformFraction,
	}
}

// Intents returns the bot's input for the current frame.
func (b Bot) Intents(s *sim.State) core.Intents {
	var in core.Intents
	if s.Phase() != sim.PhasePlaying {
		return in
	}

	p := s.Player()
	obstacles := s.Obstacles()
	warnings := s.Warnings()

	vw := s.Viewport().W
	lo, hi := p.Width/2, vw-p.Width/2
	switch {
	case s.Stage() == 2:
		pf := s.Platform()
		lo, hi = pf.LeftEdge+botEdgeMargin, pf.RightEdge-botEdgeMargin
	case b.stage2AtMs > 0 && s.GameTime() >= b.stage2AtMs-botStage2LeadMs:
		// Be on the smaller floor before it appears
		edge := vw * (1 - b.stage2Fraction) / 2
		lo, hi = edge+botEdgeMargin, vw-edge-botEdgeMargin
	}
	if hi < lo {
		lo, hi = hi, lo
	}

	// Steer by the smoothing target, since X lags behind it
	bestX, bestCost := p.TargetX, math.Inf(1)
	for i := range botSamples + 1 {
		x := lo + (hi-lo)*float64(i)/botSamples
		cost := columnThreat(x, p, obstacles, warnings) + math.Abs(x-p.TargetX)/1000
		if cost < bestCost {
			bestX, bestCost = x, cost
		}
	}

	switch dx := bestX - p.TargetX; {
	case dx < -botDeadZone:
		in.MoveLeft = true
	case dx > botDeadZone:
		in.MoveRight = true
	}

	if p.Grounded() && s.JumpUnlocked() && sweeperIncoming(p, obstacles) {
		in.Jump = true
	}
	return in
}

// columnThreat scores how dangerous it is to stand at x.
func columnThreat(x float64, p sim.Player, obstacles []sim.Obstacle, warnings []sim.Warning) float64 {
	half := p.Width/2 + botMargin
	covers := func(cx, w float64) bool {
		return math.Abs(cx-x) < w/2+half
	}

	threat := 0.0
	for _, w := range warnings {
		if covers(w.X, w.Width) {
			threat += 2
		}
	}
	for i := range obstacles {
		o := &obstacles[i]
		if o.Dead {
			continue
		}
		switch body := o.Body.(type) {
		case sim.Band:
			if o.State() != sim.LifecycleFading && covers(o.X, body.MaxWidth) {
				threat += 4
			}
		case sim.Drop:
			if o.Y < p.Y && covers(o.X, o.Width) {
				threat += 3
			}
		case sim.Diagonal:
			// Project to the player's height
			if body.VY > 0 && o.Y < p.Y {
				t := (p.Y - o.Y) / body.VY
				if covers(o.X+body.VX*t, o.Width) {
					threat += 3
				}
			}
		}
	}
	return threat
}

// sweeperIncoming reports whether an active sweeper is about to reach the player.
func sweeperIncoming(p sim.Player, obstacles []sim.Obstacle) bool {
	for i := range obstacles {
		o := &obstacles[i]
		sw, ok := o.Body.(sim.Sweeper)
		if !ok || !o.Active {
			continue
		}
		gap := (p.X - o.X) * sw.Direction
		if gap > 0 && gap-o.Width/2 < botJumpLookahead {
			return true
		}
	}
	return false
}
