package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rhythm-dodger/internal/config"
	"github.com/vovakirdan/rhythm-dodger/internal/sim"
)

// TuningStepMs is the sampling step of the tuning table.
const TuningStepMs = 10000

// TuningKeyMap defines the key bindings for the tuning inspector.
type TuningKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	NextPreset key.Binding
	PrevPreset key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k TuningKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PrevPreset, k.NextPreset, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k TuningKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPreset, k.NextPreset},
		{k.Back, k.Quit},
	}
}

// DefaultTuningKeyMap returns default key bindings.
func DefaultTuningKeyMap() TuningKeyMap {
	return TuningKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPreset: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/tab", "next preset"),
		),
		PrevPreset: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "prev preset"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// TuningModel shows the spawn interval schedule of each difficulty preset.
type TuningModel struct {
	base      config.DodgerConfig
	presetIdx int
	rows      []sim.ScheduleRow
	table     table.Model
	help      help.Model
	keys      TuningKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewTuningModel creates a tuning inspector over base with preset selected.
func NewTuningModel(base config.DodgerConfig, preset config.DifficultyPreset, width, height int) TuningModel {
	h := help.New()
	h.ShowAll = false

	m := TuningModel{
		base:   base,
		keys:   DefaultTuningKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	for i, p := range presetCycle {
		if p == preset {
			m.presetIdx = i
		}
	}
	if preset == "" {
		m.presetIdx = 1
	}

	m.table = m.createTable()
	m.loadSchedule()
	return m
}

// Preset returns the preset currently shown.
func (m TuningModel) Preset() config.DifficultyPreset {
	return presetCycle[m.presetIdx]
}

// createTable creates a table with one column per obstacle family.
func (m *TuningModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Time", Width: 6},
		{Title: "Stage", Width: 5},
		{Title: "Mult", Width: 5},
	}
	famW := 8
	if avail := m.width - 4 - 16 - 3*len(columns); avail > 0 {
		famW = min(12, max(6, avail/len(sim.FamilyNames())-2))
	}
	for _, name := range sim.FamilyNames() {
		columns = append(columns, table.Column{Title: name, Width: famW})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSchedule recomputes the rows for the selected preset.
func (m *TuningModel) loadSchedule() {
	cfg := m.base
	config.ApplyDodgerPreset(&cfg, m.Preset())
	m.rows = sim.Schedule(cfg, TuningStepMs)
	m.table.SetRows(ScheduleTableRows(m.rows))
	m.table.GotoTop()
}

// ScheduleTableRows formats schedule rows as table cells.
func ScheduleTableRows(rows []sim.ScheduleRow) []table.Row {
	out := make([]table.Row, len(rows))
	for i, r := range rows {
		row := table.Row{
			fmt.Sprintf("%3.0fs", r.GameTimeMs/1000),
			fmt.Sprintf("%d", r.Stage),
			fmt.Sprintf("%.2f", r.Multiplier),
		}
		for _, iv := range r.Intervals {
			if iv == 0 {
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%.0fms", iv))
		}
		out[i] = row
	}
	return out
}

// Init initializes the tuning model.
func (m TuningModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the tuning inspector.
func (m TuningModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextPreset):
			m.presetIdx = (m.presetIdx + 1) % len(presetCycle)
			m.loadSchedule()
			return m, nil

		case key.Matches(msg, m.keys.PrevPreset):
			m.presetIdx = (m.presetIdx + len(presetCycle) - 1) % len(presetCycle)
			m.loadSchedule()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadSchedule()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the tuning inspector.
func (m TuningModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SPAWN SCHEDULE", m.width)))
	b.WriteString("\n\n")

	// Preset tabs
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tabs := make([]string, len(presetCycle))
	for i, p := range presetCycle {
		if i == m.presetIdx {
			tabs[i] = activeTabStyle.Render(string(p))
		} else {
			tabs[i] = tabStyle.Render(" " + string(p) + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.table.View()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m TuningModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m TuningModel) IsQuitting() bool {
	return m.quitting
}

// RunTuning runs the tuning inspector as a standalone program.
func RunTuning(base config.DodgerConfig, preset config.DifficultyPreset, width, height int) error {
	model := NewTuningModel(base, preset, width, height)
	p := tea.NewProgram(
		standaloneTuning{model},
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// standaloneTuning quits on back, since there is no menu to return to.
type standaloneTuning struct {
	TuningModel
}

func (s standaloneTuning) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.TuningModel.Update(msg)
	if tm, ok := next.(TuningModel); ok {
		s.TuningModel = tm
	}
	if s.IsGoingBack() {
		return s, tea.Quit
	}
	return s, cmd
}
