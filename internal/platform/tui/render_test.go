package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-skyline/internal/core"
)

func setCell(g *core.Grid, x, y int, c core.PaletteColor) {
	g.Row(y)[x] = c
}

func TestRenderCanvasDimensions(t *testing.T) {
	g := core.NewGrid(12, 4, core.PaletteNavy)
	setCell(g, 3, 1, core.PaletteAmber)
	setCell(g, 4, 1, core.PaletteAmber)
	setCell(g, 11, 3, core.PaletteWhite)

	out := RenderCanvas(g)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("RenderCanvas() produced %d lines, expected 4", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d width = %d, expected 12", i, w)
		}
	}
}

func TestRenderCanvasEmpty(t *testing.T) {
	g := core.NewGrid(0, 0, core.PaletteBlack)
	if out := RenderCanvas(g); out != "" {
		t.Errorf("RenderCanvas(empty) = %q, expected empty string", out)
	}
}
