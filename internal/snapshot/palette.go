package snapshot

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-skyline/internal/core"
)

// systemColors are the xterm defaults for indices 0-15.
var systemColors = [16]string{
	"#000000", "#800000", "#008000", "#808000",
	"#000080", "#800080", "#008080", "#c0c0c0",
	"#808080", "#ff0000", "#00ff00", "#ffff00",
	"#0000ff", "#ff00ff", "#00ffff", "#ffffff",
}

// cubeLevels are the channel intensities of the 6x6x6 color cube.
var cubeLevels = [6]float64{0, 95, 135, 175, 215, 255}

var palette = buildPalette()

func buildPalette() [256]color.RGBA {
	var p [256]color.RGBA
	for i := range p {
		r, g, b := PaletteRGB(core.PaletteColor(i)).RGB255()
		p[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return p
}

// PaletteRGB returns the display color of an xterm 256-color index.
func PaletteRGB(c core.PaletteColor) colorful.Color {
	i := int(c)
	switch {
	case i < 16:
		col, err := colorful.Hex(systemColors[i])
		if err != nil {
			return colorful.Color{}
		}
		return col
	case i < 232:
		i -= 16
		return colorful.Color{
			R: cubeLevels[i/36] / 255,
			G: cubeLevels[(i/6)%6] / 255,
			B: cubeLevels[i%6] / 255,
		}
	default:
		v := float64(8+(i-232)*10) / 255
		return colorful.Color{R: v, G: v, B: v}
	}
}

// RGBA returns the cached 8-bit color for a palette index.
func RGBA(c core.PaletteColor) color.RGBA {
	return palette[c]
}
