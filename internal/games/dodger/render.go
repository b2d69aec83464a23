package dodger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
	"github.com/vovakirdan/rhythm-dodger/internal/sim"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	GroundChar   = '═'
	CrumbleChar  = '▒'
	VoidChar     = '╌'
	BandChar     = '█'
	BandWarnChar = '┊'
	BandFadeChar = '░'
	SweeperChar  = '▬'
	RainChar     = '│'
	BigRainChar  = '█'
	DiagonalChar = '◆'
	DiagWarnChar = '◇'
	WarningChar  = '▼'
	EdgeArrowR   = '»'
	EdgeArrowL   = '«'
)

// ComboShowFrom is the combo at which the HUD starts showing it.
const ComboShowFrom = 50

// cellX converts a logical x to a column, applying the shake offset.
func (g *Game) cellX(x float64) int {
	return int(math.Floor((x + g.shakeOffset()) / core.CellWidthPx))
}

// cellY converts a logical y to a row.
func cellY(y float64) int {
	return int(math.Floor(y / core.CellHeightPx))
}

// cellSpan returns the first column and width covering [x-w/2, x+w/2).
// Anything visible is at least one cell wide.
func (g *Game) cellSpan(x, w float64) (int, int) {
	x0 := g.cellX(x - w/2)
	x1 := g.cellX(x + w/2)
	return x0, max(1, x1-x0)
}

// shakeOffset alternates sides every step while a shake is running.
func (g *Game) shakeOffset() float64 {
	if g.shake == 0 {
		return 0
	}
	if g.stepCount%2 == 0 {
		return g.shake
	}
	return -g.shake
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.sim

	g.drawGround(dst)
	for _, w := range s.Warnings() {
		g.drawWarning(dst, w)
	}
	for _, o := range s.Obstacles() {
		g.drawObstacle(dst, o)
	}
	if s.Phase() != sim.PhaseMenu {
		g.drawPlayer(dst)
	}
	g.drawHUD(dst)

	if g.flash > 0.2 {
		dst.DrawBox(0, 0, dst.Width(), dst.Height(), core.ColorHighlight)
	}

	switch s.Phase() {
	case sim.PhaseMenu:
		g.drawCenteredMessage(dst, core.ColorTitle, "R H Y T H M   D O D G E R",
			"Survive 2:10 of hazards",
			"Left/Right move  |  Space jump  |  Enter start")
	case sim.PhasePlaying:
		if s.Transitioning() {
			dst.DrawTextCentered(dst.Height()/3, "═══  S T A G E  2  ═══", core.ColorLaser)
			dst.DrawTextCentered(dst.Height()/3+1, "Mind the edges", core.ColorHeavy)
		}
	case sim.PhaseDying:
		dst.DrawTextCentered(dst.Height()/3, "✖  H I T  ✖", core.ColorPlayerHit)
	case sim.PhaseGameOver:
		g.drawCenteredMessage(dst, core.ColorLaser, "GAME OVER",
			g.summary(),
			"Enter: restart  |  Esc: menu  |  Q: quit")
	case sim.PhaseVictory:
		g.drawCenteredMessage(dst, core.ColorBeam, "Y O U   S U R V I V E D",
			g.summary(),
			"Enter: play again  |  Esc: menu  |  Q: quit")
	}
}

// summary is the result line of the end screens.
func (g *Game) summary() string {
	s := g.sim
	return fmt.Sprintf("Score %d  |  Max combo %d  |  %d%%", s.Score(), s.MaxCombo(), int(s.Progress()*100))
}

// drawGround draws the walkable platform and the void around it.
func (g *Game) drawGround(dst *core.Screen) {
	s := g.sim
	p := s.Player()
	row := cellY(s.GroundY()+p.Height/2) + 1
	pf := s.Platform()
	left := g.cellX(pf.LeftEdge)
	right := g.cellX(pf.RightEdge)
	// Cells about to drop away crumble until the grace window closes
	keepL, keepR := left, right
	if next, ok := s.PendingPlatform(); ok {
		keepL, keepR = g.cellX(next.LeftEdge), g.cellX(next.RightEdge)
	}
	for x := range dst.Width() {
		switch {
		case x < left || x >= right:
			dst.SetColor(x, row, VoidChar, core.ColorFaint)
		case x < keepL || x >= keepR:
			dst.SetColor(x, row, CrumbleChar, core.ColorLaser)
		default:
			dst.SetColor(x, row, GroundChar, core.ColorGround)
		}
	}
}

// drawWarning draws the telegraph marker along the top edge.
func (g *Game) drawWarning(dst *core.Screen, w sim.Warning) {
	c := core.ColorRain
	if w.Alpha > 0.5 {
		c = core.ColorBeam
	}
	x0, n := g.cellSpan(w.X, w.Width)
	dst.DrawHLine(x0, 1, n, WarningChar, c)
}

func (g *Game) drawObstacle(dst *core.Screen, o sim.Obstacle) {
	state := o.State()
	switch body := o.Body.(type) {
	case sim.Band:
		g.drawBand(dst, o, state)

	case sim.Sweeper:
		if state == sim.LifecycleWarning {
			// Still off screen: point at the entry edge
			row := cellY(o.Y)
			if body.Direction > 0 {
				dst.SetColor(0, row, EdgeArrowR, core.ColorSweeper)
			} else {
				dst.SetColor(dst.Width()-1, row, EdgeArrowL, core.ColorSweeper)
			}
			return
		}
		g.fillBox(dst, o, SweeperChar, core.ColorSweeper)

	case sim.Drop:
		if o.Kind == sim.KindBigRain {
			g.fillBox(dst, o, BigRainChar, core.ColorHeavy)
			return
		}
		g.fillBox(dst, o, RainChar, core.ColorRain)

	case sim.Diagonal:
		if state == sim.LifecycleWarning {
			g.fillBox(dst, o, DiagWarnChar, core.ColorFaint)
			return
		}
		g.fillBox(dst, o, DiagonalChar, core.ColorHeavy)
	}
}

// drawBand draws a beam or laser column from the HUD row to the bottom.
func (g *Game) drawBand(dst *core.Screen, o sim.Obstacle, state sim.LifecycleState) {
	color := core.ColorBeam
	switch o.Kind {
	case sim.KindLaser:
		color = core.ColorLaser
	case sim.KindFlashLaser:
		color = core.ColorFlashLaser
	}

	r := BandChar
	switch state {
	case sim.LifecycleWarning:
		r = BandWarnChar
		color = core.ColorFaint
		if o.Alpha > 0.3 {
			color = core.ColorTelegraph
		}
	case sim.LifecycleFading:
		r = BandFadeChar
		if o.Alpha < 0.5 {
			color = core.ColorFaint
		}
	}

	x0, n := g.cellSpan(o.X, o.Width)
	dst.DrawRect(x0, 1, n, dst.Height()-1, r, color)
}

// fillBox fills the cells covered by an obstacle's box.
func (g *Game) fillBox(dst *core.Screen, o sim.Obstacle, r rune, c core.Color) {
	x0, w := g.cellSpan(o.X, o.Width)
	y0 := cellY(o.Y - o.Height/2)
	y1 := cellY(o.Y + o.Height/2)
	dst.DrawRect(x0, y0, w, max(1, y1-y0), r, c)
}

func (g *Game) drawPlayer(dst *core.Screen) {
	p := g.sim.Player()
	c := core.ColorPlayer
	switch {
	case g.sim.Phase() == sim.PhaseDying || g.sim.Phase() == sim.PhaseGameOver:
		c = core.ColorPlayerHit
	case p.Falling:
		c = core.ColorPlayerFall
	case p.Jumping:
		c = core.ColorPlayerAir
	}
	x0, w := g.cellSpan(p.X, p.Width)
	y0 := cellY(p.Y - p.Height/2)
	y1 := cellY(p.Y + p.Height/2)
	dst.DrawRect(x0, y0, w, max(1, y1-y0+1), PlayerChar, c)
}

// drawHUD draws score, clock, stage and combo on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.sim
	dst.DrawTextColor(1, 0, fmt.Sprintf(" Score: %d ", s.Score()), core.ColorHighlight)

	clock := fmt.Sprintf(" %s / %s ", formatClock(s.GameTime()), formatClock(s.Duration()))
	dst.DrawTextCentered(0, clock, core.ColorText)

	right := fmt.Sprintf(" Stage %d ", s.Stage())
	if s.Combo() >= ComboShowFrom {
		right = fmt.Sprintf(" Combo x%d %s", s.Combo(), right)
	}
	dst.DrawTextColor(dst.Width()-len(right)-1, 0, right, core.ColorBeam)

	// Progress bar under the clock
	barW := len(clock)
	filled := int(s.Progress() * float64(barW))
	x0 := (dst.Width() - barW) / 2
	dst.DrawHLine(x0, 1, filled, '▔', core.ColorProgress)
}

// formatClock renders milliseconds as m:ss.
func formatClock(ms float64) string {
	sec := int(ms / 1000)
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, c core.Color, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := 4 + len(lines)
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)

	dst.DrawTextCentered(boxY+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorText)
	}
}
