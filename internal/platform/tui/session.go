package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rhythm-dodger/internal/config"
	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

// sessionScreen is the screen a SessionModel currently shows.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenTuning
)

// SessionModel manages the full flow: menu -> game or tuning -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	base     config.DodgerConfig
	config   core.RuntimeConfig
	onResult func(RunResult)
	current  sessionScreen
	menu     MenuModel
	game     *GameModel
	tuning   *TuningModel
	quitting bool
}

// NewSessionModel creates a new session model. onResult is passed to every
// game started from the menu.
func NewSessionModel(base config.DodgerConfig, preset config.DifficultyPreset, rc core.RuntimeConfig, onResult func(RunResult)) SessionModel {
	return SessionModel{
		base:     base,
		config:   rc,
		onResult: onResult,
		menu:     NewMenuModel(preset, rc.ScreenW, rc.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenTuning:
		return m.updateTuning(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Selected() {
	case ChoicePlay:
		cfg := m.base
		config.ApplyDodgerPreset(&cfg, m.menu.Preset())
		gameModel := NewGameModel(cfg, m.config, m.onResult)
		m.game = &gameModel
		m.current = screenGame
		return m, m.game.Init()

	case ChoiceTuning:
		tuning := NewTuningModel(m.base, m.menu.Preset(), m.config.ScreenW, m.config.ScreenH)
		m.tuning = &tuning
		m.current = screenTuning
		return m, m.tuning.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.game = nil
		return m.returnToMenu()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateTuning handles updates when the tuning inspector is open.
func (m SessionModel) updateTuning(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.tuning.Update(msg)
	if tuningModel, ok := newModel.(TuningModel); ok {
		m.tuning = &tuningModel
	}

	if m.tuning.IsGoingBack() {
		m.tuning = nil
		return m.returnToMenu()
	}

	if m.tuning.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// returnToMenu shows a fresh menu that keeps the chosen preset.
func (m SessionModel) returnToMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.menu = NewMenuModel(m.menu.Preset(), m.config.ScreenW, m.config.ScreenH)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenTuning:
		return m.tuning.View()
	default:
		return m.menu.View()
	}
}

// Run starts a local Bubble Tea program showing the menu.
func Run(base config.DodgerConfig, preset config.DifficultyPreset, rc core.RuntimeConfig) error {
	model := NewSessionModel(base, preset, rc, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
