package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-skyline/internal/core"
)

//go:embed defaults/night.yaml
var defaultNightYAML []byte

//go:embed defaults/dusk.yaml
var defaultDuskYAML []byte

//go:embed defaults/mono.yaml
var defaultMonoYAML []byte

// DefaultSceneName is used when no scene is given on the command line.
const DefaultSceneName = "night"

// DefaultScene returns the hardcoded night scene.
func DefaultScene() Scene {
	return Scene{
		Name:        "night",
		Description: "Dark towers with scattered lit windows",
		Step:        1,
		Background:  16,
		Layers: []LayerConfig{
			{
				Name:         "far",
				Density:      0.75,
				Collision:    0.3,
				Speed:        4,
				Walls:        []core.PaletteColor{233, 234},
				Windows:      true,
				WindowColors: []core.PaletteColor{234, 234, 234, 58, 94},
			},
			{
				Name:         "mid",
				Density:      0.7,
				Collision:    0.25,
				Speed:        2,
				Walls:        []core.PaletteColor{236, 237},
				Windows:      true,
				WindowColors: []core.PaletteColor{237, 237, 136, 178, 222},
			},
			{
				Name:         "near",
				Density:      0.65,
				Collision:    0.2,
				Speed:        1,
				Walls:        []core.PaletteColor{239, 240},
				Windows:      true,
				WindowColors: []core.PaletteColor{240, 240, 220, 228, 230},
			},
		},
	}
}

// SceneNames returns the names of the embedded scenes, sorted.
func SceneNames() []string {
	return []string{"dusk", "mono", "night"}
}

// GetDefaultYAML returns the embedded default YAML for a scene.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "night":
		return defaultNightYAML
	case "dusk":
		return defaultDuskYAML
	case "mono":
		return defaultMonoYAML
	default:
		return nil
	}
}
