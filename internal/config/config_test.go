package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-skyline/internal/core"
)

// isolateHome points the user scene directory at an empty temp dir.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestEmbeddedScenesLoadAndValidate(t *testing.T) {
	isolateHome(t)

	for _, name := range SceneNames() {
		t.Run(name, func(t *testing.T) {
			scene, err := LoadScene(name, "")
			if err != nil {
				t.Fatalf("LoadScene(%q) failed: %v", name, err)
			}
			if scene.Name != name {
				t.Errorf("Name = %q, expected %q", scene.Name, name)
			}
			if err := Validate(scene, core.DefaultWidth, core.DefaultHeight); err != nil {
				t.Errorf("Validate() failed: %v", err)
			}
		})
	}
}

func TestEmbeddedNightMatchesHardcoded(t *testing.T) {
	isolateHome(t)

	scene, err := LoadScene("night", "")
	if err != nil {
		t.Fatalf("LoadScene() failed: %v", err)
	}
	if !reflect.DeepEqual(scene, DefaultScene()) {
		t.Errorf("embedded night scene differs from DefaultScene():\n%+v\n%+v", scene, DefaultScene())
	}
}

func TestLoadSceneDefaultName(t *testing.T) {
	isolateHome(t)

	scene, err := LoadScene("", "")
	if err != nil {
		t.Fatalf("LoadScene() failed: %v", err)
	}
	if scene.Name != DefaultSceneName {
		t.Errorf("Name = %q, expected %q", scene.Name, DefaultSceneName)
	}
}

func TestLoadSceneUnknown(t *testing.T) {
	isolateHome(t)

	_, err := LoadScene("atlantis", "")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("LoadScene(atlantis) error = %v, expected ErrUnknownScene", err)
	}
}

func TestLoadSceneCustomPath(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	data := []byte(`
background: 0
layers:
  - density: 1
    collision: 0.5
    speed: 2
    walls: [240]
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	scene, err := LoadScene("tiny", path)
	if err != nil {
		t.Fatalf("LoadScene() failed: %v", err)
	}

	if scene.Name != "tiny" {
		t.Errorf("Name = %q, expected tiny", scene.Name)
	}
	if scene.Step != 1 {
		t.Errorf("Step = %d, expected default 1", scene.Step)
	}
	if len(scene.Layers) != 1 || scene.Layers[0].Name != "layer1" {
		t.Fatalf("Layers = %+v, expected one layer named layer1", scene.Layers)
	}
	if scene.Layers[0].Speed != 2 || scene.Layers[0].Walls[0] != 240 {
		t.Errorf("layer = %+v, expected speed 2 and wall 240", scene.Layers[0])
	}
}

func TestLoadSceneCustomPathErrors(t *testing.T) {
	isolateHome(t)

	if _, err := LoadScene("x", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom scene file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("layers: [:::"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadScene("x", bad); err == nil {
		t.Error("expected error for malformed custom scene file")
	}
}

func TestLoadSceneUserOverride(t *testing.T) {
	home := isolateHome(t)
	dir := filepath.Join(home, ".skyline", "scenes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	data := []byte("name: night\nbackground: 4\nlayers:\n  - speed: 1\n    walls: [7]\n")
	if err := os.WriteFile(filepath.Join(dir, "night.yaml"), data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	scene, err := LoadScene("night", "")
	if err != nil {
		t.Fatalf("LoadScene() failed: %v", err)
	}
	if scene.Background != 4 || len(scene.Layers) != 1 {
		t.Errorf("user scene not used: %+v", scene)
	}
}

func TestValidate(t *testing.T) {
	valid := func() Scene {
		return Scene{
			Name: "test",
			Step: 1,
			Layers: []LayerConfig{
				{Name: "a", Density: 0.5, Collision: 0.1, Speed: 1, Walls: []core.PaletteColor{1}},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(s *Scene)
		width  int
		height int
		code   string
	}{
		{"valid", func(s *Scene) {}, 80, 24, ""},
		{"viewport too narrow", func(s *Scene) {}, core.MinWidth - 1, 24, "VIEWPORT_TOO_SMALL"},
		{"viewport too short", func(s *Scene) {}, 80, core.MinHeight - 1, "VIEWPORT_TOO_SMALL"},
		{"zero step", func(s *Scene) { s.Step = 0 }, 80, 24, "INVALID_STEP"},
		{"step at half width", func(s *Scene) { s.Step = 40 }, 80, 24, ""},
		{"step above half width", func(s *Scene) { s.Step = 41 }, 80, 24, "INVALID_STEP"},
		{"no layers", func(s *Scene) { s.Layers = nil }, 80, 24, "NO_LAYERS"},
		{"zero speed", func(s *Scene) { s.Layers[0].Speed = 0 }, 80, 24, "INVALID_SPEED"},
		{"density above one", func(s *Scene) { s.Layers[0].Density = 1.5 }, 80, 24, "INVALID_THRESHOLD"},
		{"negative collision", func(s *Scene) { s.Layers[0].Collision = -0.1 }, 80, 24, "INVALID_THRESHOLD"},
		{"no walls", func(s *Scene) { s.Layers[0].Walls = nil }, 80, 24, "INVALID_WALLS"},
		{"too many walls", func(s *Scene) { s.Layers[0].Walls = make([]core.PaletteColor, 33) }, 80, 24, "INVALID_WALLS"},
		{"too many window colors", func(s *Scene) { s.Layers[0].WindowColors = make([]core.PaletteColor, 33) }, 80, 24, "INVALID_WINDOWS"},
		{"windows without colors", func(s *Scene) { s.Layers[0].Windows = true }, 80, 24, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.mutate(&s)
			err := Validate(s, tc.width, tc.height)

			if tc.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}

			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, expected ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("Code = %q, expected %q", verr.Code, tc.code)
			}
		})
	}
}

func TestApplyDensityPreset(t *testing.T) {
	tests := []struct {
		preset    DensityPreset
		density   float64
		collision float64
	}{
		{DensitySparse, 0.4, 0.08},
		{DensityNormal, 0.5, 0.1},
		{DensityDense, 0.625, 0.125},
		{"", 0.5, 0.1},
	}

	for _, tc := range tests {
		s := Scene{Layers: []LayerConfig{{Density: 0.5, Collision: 0.1}, {Density: 0.9, Collision: 0.9}}}
		ApplyDensityPreset(&s, tc.preset)

		if diff := s.Layers[0].Density - tc.density; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%q: Density = %f, expected %f", tc.preset, s.Layers[0].Density, tc.density)
		}
		if diff := s.Layers[0].Collision - tc.collision; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%q: Collision = %f, expected %f", tc.preset, s.Layers[0].Collision, tc.collision)
		}
		if s.Layers[1].Density > 1 || s.Layers[1].Collision > 1 {
			t.Errorf("%q: thresholds not clamped to 1: %+v", tc.preset, s.Layers[1])
		}
	}
}

func TestParseDensityPreset(t *testing.T) {
	if ParseDensityPreset("dense") != DensityDense {
		t.Error("ParseDensityPreset(dense) should return DensityDense")
	}
	if ParseDensityPreset("crowded") != "" {
		t.Error("ParseDensityPreset(crowded) should return empty preset")
	}
}

func TestLayerDescs(t *testing.T) {
	s := DefaultScene()
	descs := s.LayerDescs()

	if len(descs) != len(s.Layers) {
		t.Fatalf("len(LayerDescs()) = %d, expected %d", len(descs), len(s.Layers))
	}
	for i, d := range descs {
		l := s.Layers[i]
		if d.Name != l.Name || d.Density != l.Density || d.Collision != l.Collision ||
			uint32(d.Speed) != l.Speed || d.Windows != l.Windows {
			t.Errorf("descriptor %d = %+v, does not match layer %+v", i, d, l)
		}
		if !reflect.DeepEqual(d.Walls, l.Walls) || !reflect.DeepEqual(d.WindowColors, l.WindowColors) {
			t.Errorf("descriptor %d palettes differ from layer", i)
		}
	}

	// Descriptors own their palettes
	descs[0].Walls[0] = 1
	if s.Layers[0].Walls[0] == 1 {
		t.Error("LayerDescs() shares wall slices with the scene")
	}
}
