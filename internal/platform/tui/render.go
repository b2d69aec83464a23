package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rhythm-dodger/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorText:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorHighlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	core.ColorFaint:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorProgress:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorPlayer:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorPlayerAir:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorPlayerFall: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorPlayerHit:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorBeam:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorLaser:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorFlashLaser: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorRain:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorHeavy:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorSweeper:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	core.ColorTelegraph:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorGround:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
