// Package snapshot exports skyline canvases as PNG images.
package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-skyline/internal/core"
)

// DefaultScale is the pixel size of one grid cell.
const DefaultScale = 8

// newContext draws the grid into a fresh gg context.
// Every cell becomes a scale x 2*scale block, since terminal cells are
// roughly twice as tall as wide.
func newContext(g *core.Grid, scale int) *gg.Context {
	if scale < 1 {
		scale = 1
	}
	cellW, cellH := scale, scale*2

	dc := gg.NewContext(g.Width()*cellW, g.Height()*cellH)

	// Group consecutive cells with the same color into one rectangle
	g.Rows(func(y int, row []core.PaletteColor) {
		x := 0
		for x < len(row) {
			start := x
			c := row[x]
			for x < len(row) && row[x] == c {
				x++
			}
			dc.SetColor(RGBA(c))
			dc.DrawRectangle(float64(start*cellW), float64(y*cellH), float64((x-start)*cellW), float64(cellH))
			dc.Fill()
		}
	})
	return dc
}

// Encode writes the grid as PNG to w.
func Encode(w io.Writer, g *core.Grid, scale int) error {
	if err := newContext(g, scale).EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: cannot encode png: %w", err)
	}
	return nil
}

// WritePNG saves the grid as a PNG file, creating parent directories.
func WritePNG(path string, g *core.Grid, scale int) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("snapshot: cannot create directory %s: %w", dir, err)
		}
	}
	if err := newContext(g, scale).SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: cannot save %s: %w", path, err)
	}
	return nil
}
