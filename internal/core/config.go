package core

// RuntimeConfig contains configuration handed to the engine and driver at startup.
type RuntimeConfig struct {
	ScreenW  int    // Viewport width in cells
	ScreenH  int    // Viewport height in cells
	TickRate int    // Frames per second (default 30)
	Step     uint32 // Scroll multiplier of the scene
	Seed     uint64 // RNG seed, 0 means time-based
	AutoSize bool   // Follow terminal size changes
}

// Viewport limits shared by the CLI and the driver.
const (
	DefaultWidth  = 150
	DefaultHeight = 40
	MinWidth      = 30
	MinHeight     = 10

	// Cells reserved from the terminal size when sizing automatically.
	AutoPadW = 0
	AutoPadH = 5
)

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  DefaultWidth,
		ScreenH:  DefaultHeight,
		TickRate: 30,
		Step:     1,
		Seed:     0, // 0 means use current time in platform layer
	}
}
