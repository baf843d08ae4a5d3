// Package city implements the procedural skyline engine.
// Buildings spawn at the right edge of each parallax layer, scroll left at the
// layer's speed and are dropped once they leave the viewport. All state is
// advanced one tick at a time into a palette grid.
package city

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/tui-skyline/internal/core"
)

// Engine tuning values.
const (
	// TickWrap is the largest tick value before the counter restarts at 1.
	TickWrap Tick = math.MaxUint32 / 4

	// CollisionGap is added to a building's right edge when deciding whether
	// a layer is congested.
	CollisionGap = 2

	// SpawnCurve is the exponent applied to a layer's spawn threshold.
	SpawnCurve = 2.5
)

// City owns the skyline simulation and its canvas.
type City struct {
	rng        *rand.Rand
	width      int
	height     int
	step       Tick
	tick       Tick
	background core.PaletteColor
	descs      []LayerDesc
	layers     []layer
	canvas     *core.Grid

	// Window colors draw from this generator instead of rng so they depend
	// only on the building seed and the cell, not on draw order or clipping.
	cellSrc *rand.PCG
	cellRNG *rand.Rand
}

// New creates a city with the given viewport and layers.
// step multiplies every layer's scroll speed and must be in [1, width/2];
// the caller validates it along with the layer descriptors.
func New(width, height int, step Tick, rng *rand.Rand, background core.PaletteColor, descs []LayerDesc) *City {
	cellSrc := rand.NewPCG(0, 0)
	return &City{
		rng:        rng,
		width:      width,
		height:     height,
		step:       step,
		tick:       1,
		background: background,
		descs:      descs,
		layers:     make([]layer, len(descs)),
		canvas:     core.NewGrid(width, height, background),
		cellSrc:    cellSrc,
		cellRNG:    rand.New(cellSrc),
	}
}

// Tick returns the current tick counter.
func (c *City) Tick() Tick {
	return c.tick
}

// Size returns the viewport width and height.
func (c *City) Size() (int, int) {
	return c.width, c.height
}

// Canvas returns the grid painted by the last AdvanceTick.
// Callers must treat it as read-only.
func (c *City) Canvas() *core.Grid {
	return c.canvas
}

// LayerCount returns the number of configured layers.
func (c *City) LayerCount() int {
	return len(c.layers)
}

// Buildings returns a copy of the live buildings of layer i, oldest first.
func (c *City) Buildings(i int) []Building {
	out := make([]Building, len(c.layers[i].buildings))
	copy(out, c.layers[i].buildings)
	return out
}

// BuildingCount returns the number of live buildings across all layers.
func (c *City) BuildingCount() int {
	n := 0
	for i := range c.layers {
		n += len(c.layers[i].buildings)
	}
	return n
}

// Resize replaces the canvas. Buildings are kept as they are and get clipped
// against the new viewport on the next tick.
func (c *City) Resize(width, height int) {
	c.width = width
	c.height = height
	c.canvas.Resize(width, height, c.background)
}

// AdvanceTick runs one simulation step: wipe, spawn and draw every layer in
// order, then advance the tick counter.
func (c *City) AdvanceTick() {
	c.canvas.Fill(c.background)

	for i := range c.descs {
		c.advanceLayer(&c.descs[i], &c.layers[i])
	}

	c.tick++
	if c.tick > TickWrap {
		c.tick = 1
	}
}

// advanceLayer spawns into and redraws a single layer.
func (c *City) advanceLayer(d *LayerDesc, l *layer) {
	// Buildings spawned below are not drawn until the next tick
	pending := len(l.buildings)

	threshold := d.Density
	if l.rightmost > c.width {
		threshold = d.Collision
	}
	if c.tick%d.Speed == 0 && c.rng.Float64() < math.Pow(threshold, SpawnCurve) {
		l.buildings = append(l.buildings, c.spawn(d))
	}

	rightmost := 0
	live := l.buildings[:0]
	for i := 0; i < pending; i++ {
		b := l.buildings[i]

		dst, offX, offY, visible := c.place(&b, d)
		if !visible {
			continue
		}

		rightmost = core.Max(rightmost, dst.X+b.Width+CollisionGap)
		c.drawBuilding(&b, d, dst, offX, offY)
		live = append(live, b)
	}
	l.buildings = append(live, l.buildings[pending:]...)
	l.rightmost = rightmost
}

// spawn creates a new building for the layer at the current tick.
func (c *City) spawn(d *LayerDesc) Building {
	heightRange := core.Max(c.height+BuildingOverhang-MinBuildingHeight+1, 1)

	b := Building{
		Width:     MinBuildingWidth + c.rng.IntN(MaxBuildingWidth-MinBuildingWidth+1),
		Height:    MinBuildingHeight + c.rng.IntN(heightRange),
		SpawnTick: c.tick,
		Color:     d.Walls[0],
	}
	if len(d.Walls) > 1 {
		b.Color = d.Walls[c.rng.IntN(len(d.Walls))]
	}
	b.Seed = c.rng.Uint64()
	return b
}

// elapsed returns the ticks since spawn, unwrapping a counter reset.
func (c *City) elapsed(b *Building) uint64 {
	now := uint64(c.tick)
	if b.SpawnTick > c.tick {
		now += uint64(TickWrap)
	}
	return now - uint64(b.SpawnTick)
}

// place computes where a building lands on the canvas this tick.
// dst is the visible rectangle, offX/offY the clipped amount of the building.
// visible is false once the building has scrolled fully past the left edge.
func (c *City) place(b *Building, d *LayerDesc) (dst core.Rect, offX, offY int, visible bool) {
	scrolled := c.elapsed(b) * uint64(c.step) / uint64(d.Speed)
	x := c.width - int(scrolled)
	if x < 0 {
		offX = -x
		x = 0
	}

	y := c.height - b.Height
	if b.Height > c.height {
		offY = b.Height - c.height
		y = 0
	}

	if offX > b.Width {
		return core.Rect{}, 0, 0, false
	}

	w := core.Clamp(b.Width-offX, 0, c.width-x)
	h := core.Clamp(b.Height-offY, 0, c.height)
	return core.NewRect(x, y, w, h), offX, offY, true
}
