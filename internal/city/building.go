package city

import "github.com/vovakirdan/tui-skyline/internal/core"

// Tick is the engine's logical clock.
type Tick uint32

// Building size limits in cells. Height is bounded above by the viewport height.
const (
	MinBuildingWidth  = 6
	MaxBuildingWidth  = 25
	MinBuildingHeight = 10
	BuildingOverhang  = 2 // Buildings may be up to this many rows taller than the viewport
)

// Building is a single skyline element. It never changes after spawn.
type Building struct {
	Width     int               // Width in cells
	Height    int               // Height in cells
	SpawnTick Tick              // Tick the building was created on
	Color     core.PaletteColor // Wall color
	Seed      uint64            // Drives the window texture
}

// LayerDesc is the static description of one parallax layer.
type LayerDesc struct {
	Name         string
	Density      float64 // Spawn threshold base while the layer has room (0..1)
	Collision    float64 // Spawn threshold base while the layer is congested (0..1)
	Speed        Tick    // Ticks per column of scroll, 1 is fastest
	Walls        []core.PaletteColor
	Windows      bool
	WindowColors []core.PaletteColor
}

// layer is the mutable state of one layer.
type layer struct {
	buildings []Building // Oldest spawn first
	rightmost int        // Max right edge plus collision gap drawn on the previous tick
}
