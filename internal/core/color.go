package core

// PaletteColor is an xterm 256-color palette index.
// The renderer paints each grid cell as a background of this color.
type PaletteColor uint8

// A few palette entries used by defaults and tests.
const (
	PaletteBlack     PaletteColor = 0
	PaletteNavy      PaletteColor = 17
	PaletteGray      PaletteColor = 240
	PaletteLightGray PaletteColor = 250
	PaletteWhite     PaletteColor = 15
	PaletteAmber     PaletteColor = 214
)
