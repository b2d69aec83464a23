package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rhythm-dodger/internal/config"
)

// MenuChoice is what the user picked in the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceDifficulty
	ChoiceTuning
	ChoiceQuit
)

// presetCycle is the order the difficulty entry cycles through.
var presetCycle = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyFixed,
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items    []MenuChoice
	cursor   int
	width    int
	height   int
	preset   config.DifficultyPreset
	selected MenuChoice
	quitting bool
}

// NewMenuModel creates a new menu model with the given preset selected.
func NewMenuModel(preset config.DifficultyPreset, width, height int) MenuModel {
	if preset == "" {
		preset = config.DifficultyNormal
	}
	return MenuModel{
		items:  []MenuChoice{ChoicePlay, ChoiceDifficulty, ChoiceTuning, ChoiceQuit},
		width:  width,
		height: height,
		preset: preset,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Left/right cycle the preset from anywhere in the menu
	switch msg.String() {
	case "left", "a", "h":
		m.cyclePreset(-1)
		return m, nil
	case "right", "d", "l":
		m.cyclePreset(1)
		return m, nil
	}

	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		switch choice := m.items[m.cursor]; choice {
		case ChoiceDifficulty:
			m.cyclePreset(1)
		case ChoiceQuit:
			m.quitting = true
		default:
			m.selected = choice
		}
	}

	return m, nil
}

func (m *MenuModel) cyclePreset(dir int) {
	i := 0
	for j, p := range presetCycle {
		if p == m.preset {
			i = j
		}
	}
	n := len(presetCycle)
	m.preset = presetCycle[((i+dir)%n+n)%n]
}

// label returns the display text of a menu entry.
func (m MenuModel) label(c MenuChoice) string {
	switch c {
	case ChoicePlay:
		return "Play"
	case ChoiceDifficulty:
		return fmt.Sprintf("Difficulty: < %s >", m.preset)
	case ChoiceTuning:
		return "Spawn tuning"
	case ChoiceQuit:
		return "Quit"
	default:
		return ""
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("R H Y T H M   D O D G E R", m.width)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(centerText("Dodge everything for 2:10. Stage 2 starts at 1:00.", m.width)))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + m.label(item)
		style := lipgloss.NewStyle()
		if i == m.cursor {
			line = "> " + m.label(item)
			style = activeStyle
		}
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or ChoiceNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// Preset returns the selected difficulty preset.
func (m MenuModel) Preset() config.DifficultyPreset {
	return m.preset
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
