package city

import "github.com/vovakirdan/tui-skyline/internal/core"

// Building texture layout, in building-local cells.
const (
	roofMargin = 1 // Roof columns left unpainted at each corner

	windowPadTop = 2 // Rows above the first window band
	windowPadX   = 1 // Columns left and right of the window grid
	windowW      = 2
	windowH      = 1
	windowGapX   = 1
	windowGapY   = 1

	windowPeriodX = windowW + windowGapX
	windowPeriodY = windowH + windowGapY

	// Narrower buildings cannot hold both roof corners and one window.
	minDrawWidth = 2*roofMargin + windowW

	windowSalt uint32 = 0x5EEDC17E
)

// drawBuilding paints the visible part of b into the canvas.
// dst is the canvas rectangle; offX and offY locate its top-left corner
// inside the building.
func (c *City) drawBuilding(b *Building, d *LayerDesc, dst core.Rect, offX, offY int) {
	if dst.Empty() || b.Width < minDrawWidth {
		return
	}

	windows := d.Windows && len(d.WindowColors) > 0

	for y := dst.Y; y < dst.Bottom(); y++ {
		by := offY + y - dst.Y
		row := c.canvas.Row(y)[dst.X:dst.Right()]

		if by == 0 {
			for cx := range row {
				bx := offX + cx
				if bx >= roofMargin && bx < b.Width-roofMargin {
					row[cx] = b.Color
				}
			}
			continue
		}

		if !windows || !inWindowBand(by) {
			for cx := range row {
				row[cx] = b.Color
			}
			continue
		}

		bandTop := by - (by-windowPadTop)%windowPeriodY
		cellLeft := -1
		var lit core.PaletteColor
		for cx := range row {
			left, ok := windowCell(offX+cx, b.Width)
			if !ok {
				row[cx] = b.Color
				continue
			}
			if left != cellLeft {
				cellLeft = left
				lit = c.windowColor(b, d, left, bandTop)
			}
			row[cx] = lit
		}
	}
}

// inWindowBand reports whether building row by crosses a row of windows.
func inWindowBand(by int) bool {
	return by >= windowPadTop && (by-windowPadTop)%windowPeriodY < windowH
}

// windowCell returns the left column of the window covering building column
// bx. Partial windows at the right edge are not drawn.
func windowCell(bx, width int) (int, bool) {
	if bx < windowPadX {
		return 0, false
	}
	phase := (bx - windowPadX) % windowPeriodX
	if phase >= windowW {
		return 0, false
	}
	left := bx - phase
	if left+windowW > width-windowPadX {
		return 0, false
	}
	return left, true
}

// windowColor picks the color of the window whose top-left building cell is
// (col, row). The choice depends only on the building seed and the cell.
func (c *City) windowColor(b *Building, d *LayerDesc, col, row int) core.PaletteColor {
	h := NewHasher().Absorb(windowSalt).Absorb(uint32(col)).Absorb(uint32(row)).Finish()
	c.cellSrc.Seed(b.Seed, uint64(h))
	return d.WindowColors[c.cellRNG.IntN(len(d.WindowColors))]
}
