package core

// Grid is a flat row-major buffer of palette colors.
// The buffer length always equals Width*Height.
type Grid struct {
	width  int
	height int
	cells  []PaletteColor
}

// NewGrid creates a grid with the given dimensions filled with fill.
func NewGrid(width, height int, fill PaletteColor) *Grid {
	g := &Grid{}
	g.Resize(width, height, fill)
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// Index returns the linear buffer index for (x, y).
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Resize reallocates the buffer and fills it with fill.
// Prior contents are discarded.
func (g *Grid) Resize(width, height int, fill PaletteColor) {
	g.width = Max(width, 0)
	g.height = Max(height, 0)
	g.cells = make([]PaletteColor, g.width*g.height)
	g.Fill(fill)
}

// Fill overwrites every cell with c.
func (g *Grid) Fill(c PaletteColor) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

// Row returns a mutable view of row y.
// Writes through the returned slice modify the grid.
func (g *Grid) Row(y int) []PaletteColor {
	start := g.Index(0, y)
	return g.cells[start : start+g.width : start+g.width]
}

// Rows calls fn for each row from top to bottom.
func (g *Grid) Rows(fn func(y int, row []PaletteColor)) {
	for y := 0; y < g.height; y++ {
		fn(y, g.Row(y))
	}
}

// Equal reports whether two grids have identical size and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{width: g.width, height: g.height, cells: make([]PaletteColor, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}
