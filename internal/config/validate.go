package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/hornview/internal/engine/color"
	"github.com/Faultbox/hornview/internal/logger"
	"github.com/Faultbox/hornview/internal/surface"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		add("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.Samples < 0 {
		add("window.samples %d must not be negative", c.Window.Samples)
	}

	if err := c.Surface.Params().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	if err := c.Surface.Resolution().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalid, err))
	}
	if c.Surface.ParamStep <= 0 || math.IsInf(c.Surface.ParamStep, 0) || math.IsNaN(c.Surface.ParamStep) {
		add("surface.param_step %v must be positive", c.Surface.ParamStep)
	}
	if c.Surface.StepDelta < 1 {
		add("surface.step_delta %d must be at least 1", c.Surface.StepDelta)
	}
	if c.Surface.MaxSteps < 1 || c.Surface.MaxSteps > surface.MaxSteps {
		add("surface.max_steps %d outside [1, %d]", c.Surface.MaxSteps, surface.MaxSteps)
	}

	colors := []struct {
		name, value string
	}{
		{"surface", c.Material.Surface},
		{"diffuse", c.Material.Diffuse},
		{"ambient", c.Material.Ambient},
		{"specular", c.Material.Specular},
		{"light", c.Material.Light},
		{"marker", c.Material.Marker},
		{"background", c.Material.Background},
	}
	for _, col := range colors {
		if _, err := color.ParseHex(col.value); err != nil {
			add("material.%s: %v", col.name, err)
		}
	}

	if c.Marker.Step <= 0 || c.Marker.Step > 1 {
		add("marker.step %v outside (0, 1]", c.Marker.Step)
	}
	if c.Marker.Size <= 0 {
		add("marker.size %v must be positive", c.Marker.Size)
	}

	if c.Camera.Sensitivity <= 0 {
		add("camera.sensitivity %v must be positive", c.Camera.Sensitivity)
	}
	if c.Camera.FPS <= 0 {
		add("camera.fps %d must be positive", c.Camera.FPS)
	}

	if _, err := logger.ParseLevel(c.Logging.Level); err != nil {
		add("logging.level: %v", err)
	}

	return errors.Join(errs...)
}
