package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownScene is returned when a scene name matches no file and no
// embedded default.
var ErrUnknownScene = errors.New("config: unknown scene")

// LoadScene loads a scene configuration.
// Search order: customPath -> ~/.skyline/scenes/<name>.yaml -> ./scenes/<name>.yaml -> embedded default
func LoadScene(name, customPath string) (Scene, error) {
	var scene Scene

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return scene, fmt.Errorf("config: failed to read scene %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &scene); err != nil {
			return scene, fmt.Errorf("config: failed to parse scene %s: %w", customPath, err)
		}
		return withDefaults(scene, name), nil
	}

	if name == "" {
		name = DefaultSceneName
	}
	filename := name + ".yaml"

	// Try user config directory
	if userPath := userScenePath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &scene); err == nil {
				return withDefaults(scene, name), nil
			}
		}
	}

	// Try local scenes directory
	if data, err := os.ReadFile(filepath.Join("scenes", filename)); err == nil {
		if err := yaml.Unmarshal(data, &scene); err == nil {
			return withDefaults(scene, name), nil
		}
	}

	// Use embedded default YAML
	data := GetDefaultYAML(name)
	if data == nil {
		return scene, fmt.Errorf("%w %q", ErrUnknownScene, name)
	}
	if err := yaml.Unmarshal(data, &scene); err != nil {
		if name == DefaultSceneName {
			return DefaultScene(), nil // Fallback to hardcoded if embed fails
		}
		return scene, fmt.Errorf("config: failed to parse embedded scene %q: %w", name, err)
	}
	return withDefaults(scene, name), nil
}

// withDefaults fills fields a hand-written scene file may leave out.
func withDefaults(s Scene, name string) Scene {
	if s.Name == "" {
		s.Name = name
	}
	if s.Step == 0 {
		s.Step = 1
	}
	for i := range s.Layers {
		if s.Layers[i].Name == "" {
			s.Layers[i].Name = fmt.Sprintf("layer%d", i+1)
		}
	}
	return s
}

// userScenePath returns the path to a user scene file, or empty if home is unavailable.
func userScenePath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyline", "scenes", filename)
}
