package config

import (
	"fmt"

	"github.com/vovakirdan/tui-skyline/internal/core"
)

// Palette size limits per layer.
const (
	MaxWallColors   = 32
	MaxWindowColors = 32
)

// ValidationError describes why a scene or viewport was rejected.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks a scene against the viewport it will run in.
// Checks:
//   - Viewport is at least core.MinWidth x core.MinHeight
//   - Step is within [1, width/2]
//   - Every layer has a usable speed, thresholds and palette
func Validate(s Scene, width, height int) error {
	if err := ValidateViewport(width, height); err != nil {
		return err
	}

	if s.Step < 1 || int(s.Step) > width/2 {
		return ValidationError{
			Code:    "INVALID_STEP",
			Message: fmt.Sprintf("step %d must be between 1 and %d for width %d", s.Step, width/2, width),
		}
	}

	if len(s.Layers) == 0 {
		return ValidationError{
			Code:    "NO_LAYERS",
			Message: fmt.Sprintf("scene %q has no layers", s.Name),
		}
	}

	for _, l := range s.Layers {
		if err := validateLayer(l); err != nil {
			return err
		}
	}

	return nil
}

// ValidateViewport checks the minimum viewport size.
func ValidateViewport(width, height int) error {
	if width < core.MinWidth || height < core.MinHeight {
		return ValidationError{
			Code: "VIEWPORT_TOO_SMALL",
			Message: fmt.Sprintf("viewport %dx%d is smaller than the minimum %dx%d",
				width, height, core.MinWidth, core.MinHeight),
		}
	}
	return nil
}

// validateLayer checks a single layer definition.
func validateLayer(l LayerConfig) error {
	if l.Speed < 1 {
		return ValidationError{
			Code:    "INVALID_SPEED",
			Message: fmt.Sprintf("layer %q: speed must be at least 1", l.Name),
		}
	}

	if l.Density < 0 || l.Density > 1 || l.Collision < 0 || l.Collision > 1 {
		return ValidationError{
			Code:    "INVALID_THRESHOLD",
			Message: fmt.Sprintf("layer %q: density and collision must be within [0, 1]", l.Name),
		}
	}

	if len(l.Walls) == 0 || len(l.Walls) > MaxWallColors {
		return ValidationError{
			Code:    "INVALID_WALLS",
			Message: fmt.Sprintf("layer %q: needs 1 to %d wall colors, got %d", l.Name, MaxWallColors, len(l.Walls)),
		}
	}

	if len(l.WindowColors) > MaxWindowColors {
		return ValidationError{
			Code:    "INVALID_WINDOWS",
			Message: fmt.Sprintf("layer %q: at most %d window colors, got %d", l.Name, MaxWindowColors, len(l.WindowColors)),
		}
	}

	return nil
}
