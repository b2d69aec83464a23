package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rhythm-dodger/internal/config"
	"github.com/vovakirdan/rhythm-dodger/internal/core"
	"github.com/vovakirdan/rhythm-dodger/internal/games/dodger"
)

// HoldWindowMs is how long a key press keeps its intent held.
// Terminals have no key-up events, so auto-repeat refreshes the window.
const HoldWindowMs = 200

// RunResult describes a finished session.
type RunResult struct {
	Score      int
	MaxCombo   int
	GameTimeMs float64
	Victory    bool
}

// GameModel is the Bubble Tea model that drives one dodger game.
type GameModel struct {
	game       *dodger.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	held       *core.HeldInput
	keys       KeyMap
	help       help.Model
	lastTick   time.Time
	gameState  core.GameState
	reported   bool
	onResult   func(RunResult)
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model and starts a session right away.
// onResult, if set, is called once per finished session.
func NewGameModel(cfg config.DodgerConfig, rc core.RuntimeConfig, onResult func(RunResult)) GameModel {
	// Use time-based seed if not specified
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	game := dodger.New(cfg)
	game.Reset(playfield(rc))
	game.Start()

	return GameModel{
		game:     game,
		screen:   core.NewScreen(rc.ScreenW, max(1, rc.ScreenH-1)),
		config:   rc,
		held:     core.NewHeldInput(HoldWindowMs),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		onResult: onResult,
	}
}

// playfield reserves the bottom row for the help bar.
func playfield(rc core.RuntimeConfig) core.RuntimeConfig {
	rc.ScreenH = max(1, rc.ScreenH-1)
	return rc
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		pf := playfield(m.config)
		m.screen.Resize(pf.ScreenW, pf.ScreenH)
		m.game.Resize(pf.ScreenW, pf.ScreenH)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		m.held.Press(action)
	case core.ActionConfirm:
		if m.game.Start() {
			m.held.Release()
			m.reported = false
		}
	case core.ActionBack:
		m.backToMenu = true
	}
	return m, nil
}

// handleTick advances the game by the wall-clock time since the last tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := frameDelta(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	m.held.Advance(delta)
	result := m.game.Step(delta, m.held.Intents())
	m.gameState = result.State

	if m.gameState.GameOver && !m.reported {
		m.reported = true
		if m.onResult != nil {
			s := m.game.Sim()
			m.onResult(RunResult{
				Score:      s.Score(),
				MaxCombo:   s.MaxCombo(),
				GameTimeMs: s.GameTime(),
				Victory:    m.gameState.Victory,
			})
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}
