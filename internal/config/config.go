// Package config provides YAML-based scene configuration loading and
// validation for the skyline.
package config

import (
	"github.com/vovakirdan/tui-skyline/internal/city"
	"github.com/vovakirdan/tui-skyline/internal/core"
)

// Scene describes a complete skyline: background, scroll step and layers.
type Scene struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Step        uint32            `yaml:"step"`       // Ticks consumed per frame
	Background  core.PaletteColor `yaml:"background"` // xterm 256-color index
	Layers      []LayerConfig     `yaml:"layers"`     // Back to front
}

// LayerConfig defines one parallax layer of a scene.
type LayerConfig struct {
	Name         string              `yaml:"name"`
	Density      float64             `yaml:"density"`   // 0.0 = never spawn, 1.0 = always
	Collision    float64             `yaml:"collision"` // Used instead of density while congested
	Speed        uint32              `yaml:"speed"`     // Ticks per column, 1 is fastest
	Walls        []core.PaletteColor `yaml:"walls"`
	Windows      bool                `yaml:"windows"`
	WindowColors []core.PaletteColor `yaml:"window_colors"`
}

// LayerDescs converts the scene layers to engine descriptors.
func (s Scene) LayerDescs() []city.LayerDesc {
	descs := make([]city.LayerDesc, len(s.Layers))
	for i, l := range s.Layers {
		descs[i] = city.LayerDesc{
			Name:         l.Name,
			Density:      l.Density,
			Collision:    l.Collision,
			Speed:        city.Tick(l.Speed),
			Walls:        append([]core.PaletteColor(nil), l.Walls...),
			Windows:      l.Windows,
			WindowColors: append([]core.PaletteColor(nil), l.WindowColors...),
		}
	}
	return descs
}

// DensityPreset represents a named spawn density.
type DensityPreset string

const (
	DensitySparse DensityPreset = "sparse"
	DensityNormal DensityPreset = "normal"
	DensityDense  DensityPreset = "dense"
)

// ParseDensityPreset maps a flag value to a preset. Unknown values yield "".
func ParseDensityPreset(s string) DensityPreset {
	switch DensityPreset(s) {
	case DensitySparse, DensityNormal, DensityDense:
		return DensityPreset(s)
	default:
		return ""
	}
}

// densityFactor returns the multiplier applied to spawn thresholds.
func densityFactor(preset DensityPreset) float64 {
	switch preset {
	case DensitySparse:
		return 0.8
	case DensityDense:
		return 1.25
	default:
		return 1.0
	}
}

// ApplyDensityPreset scales every layer's spawn thresholds.
func ApplyDensityPreset(s *Scene, preset DensityPreset) {
	f := densityFactor(preset)
	for i := range s.Layers {
		s.Layers[i].Density = core.ClampF(s.Layers[i].Density*f, 0, 1)
		s.Layers[i].Collision = core.ClampF(s.Layers[i].Collision*f, 0, 1)
	}
}
