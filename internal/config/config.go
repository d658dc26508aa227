// Package config handles viewer configuration loading and management.
package config

import (
	"github.com/Faultbox/hornview/internal/surface"
)

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Surface  SurfaceConfig  `yaml:"surface"`
	Material MaterialConfig `yaml:"material"`
	Marker   MarkerConfig   `yaml:"marker"`
	Camera   CameraConfig   `yaml:"camera"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Samples    int  `yaml:"samples"`
}

// SurfaceConfig holds the initial shape and the interactive step sizes.
type SurfaceConfig struct {
	A         float64 `yaml:"a"`
	B         float64 `yaml:"b"`
	StepsU    int     `yaml:"steps_u"`
	StepsV    int     `yaml:"steps_v"`
	ParamStep float64 `yaml:"param_step"`
	StepDelta int     `yaml:"step_delta"`
	MaxSteps  int     `yaml:"max_steps"` // upper bound for interactive changes
}

// Params returns the configured shape parameters.
func (s SurfaceConfig) Params() surface.Params {
	return surface.Params{A: s.A, B: s.B}
}

// Resolution returns the configured tessellation resolution.
func (s SurfaceConfig) Resolution() surface.Resolution {
	return surface.Resolution{StepsU: s.StepsU, StepsV: s.StepsV}
}

// MaterialConfig holds #RRGGBB colors and the optional texture.
type MaterialConfig struct {
	Surface    string `yaml:"surface"`
	Diffuse    string `yaml:"diffuse"`
	Ambient    string `yaml:"ambient"`
	Specular   string `yaml:"specular"`
	Light      string `yaml:"light"`
	Marker     string `yaml:"marker"`
	Background string `yaml:"background"`
	Texture    string `yaml:"texture"`  // image path; empty uses a checkerboard
	Textured   bool   `yaml:"textured"` // start with texturing on
}

// MarkerConfig holds the texture-translation marker settings.
type MarkerConfig struct {
	Step float32 `yaml:"step"`
	Size float32 `yaml:"size"` // point size in pixels
}

// CameraConfig holds trackball settings.
type CameraConfig struct {
	Sensitivity float32 `yaml:"sensitivity"` // radians per pixel dragged
	Inertia     bool    `yaml:"inertia"`
	FPS         int     `yaml:"fps"` // frame rate the inertia spring is tuned for
}

// OutputConfig holds where screenshots and exports are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      800,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
			Samples:    4,
		},
		Surface: SurfaceConfig{
			A:         0.5,
			B:         2.0,
			StepsU:    60,
			StepsV:    60,
			ParamStep: 0.1,
			StepDelta: 4,
			MaxSteps:  512,
		},
		Material: MaterialConfig{
			Surface:    "#ffff00",
			Diffuse:    "#cccccc",
			Ambient:    "#333333",
			Specular:   "#ffffff",
			Light:      "#ffff00",
			Marker:     "#ff0000",
			Background: "#000000",
			Texture:    "",
			Textured:   false,
		},
		Marker: MarkerConfig{
			Step: 0.05,
			Size: 8,
		},
		Camera: CameraConfig{
			Sensitivity: 0.01,
			Inertia:     true,
			FPS:         60,
		},
		Output: OutputConfig{
			Dir: "output",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
