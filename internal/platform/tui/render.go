package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-skyline/internal/core"
)

// cellStyles maps each palette index to a background style.
var cellStyles = buildCellStyles()

func buildCellStyles() [256]lipgloss.Style {
	var styles [256]lipgloss.Style
	for i := range styles {
		styles[i] = lipgloss.NewStyle().Background(lipgloss.Color(strconv.Itoa(i)))
	}
	return styles
}

var (
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
)

// RenderCanvas converts a palette grid to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderCanvas(g *core.Grid) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(g.Width()*g.Height() + g.Height()*32)

	g.Rows(func(y int, row []core.PaletteColor) {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < len(row) {
			start := x
			c := row[x]
			for x < len(row) && row[x] == c {
				x++
			}
			sb.WriteString(cellStyles[c].Render(strings.Repeat(" ", x-start)))
		}
	})
	return sb.String()
}
