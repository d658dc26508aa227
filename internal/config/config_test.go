package config

import (
	"errors"
	"flag"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/hornview/internal/surface"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 800 {
		t.Errorf("expected height 800, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Surface.Params() != (surface.Params{A: 0.5, B: 2}) {
		t.Errorf("expected params {0.5 2}, got %+v", cfg.Surface.Params())
	}
	if cfg.Surface.Resolution() != (surface.Resolution{StepsU: 60, StepsV: 60}) {
		t.Errorf("expected resolution 60x60, got %+v", cfg.Surface.Resolution())
	}

	if cfg.Material.Diffuse != "#cccccc" {
		t.Errorf("expected diffuse #cccccc, got %s", cfg.Material.Diffuse)
	}
	if cfg.Marker.Step != 0.05 {
		t.Errorf("expected marker step 0.05, got %f", cfg.Marker.Step)
	}
	if !cfg.Camera.Inertia {
		t.Error("expected inertia to be on by default")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

surface:
  a: 0.8
  b: 1.5
  steps_u: 100
  steps_v: 120

material:
  diffuse: "#ff8000"
  texture: "textures/wood.png"
  textured: true

marker:
  step: 0.1

camera:
  inertia: false

logging:
  level: "debug"
  log_file: "hornview.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Window.Width)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}

	if cfg.Surface.A != 0.8 || cfg.Surface.B != 1.5 {
		t.Errorf("expected a=0.8 b=1.5, got a=%v b=%v", cfg.Surface.A, cfg.Surface.B)
	}
	if cfg.Surface.StepsV != 120 {
		t.Errorf("expected steps_v 120, got %d", cfg.Surface.StepsV)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Surface.ParamStep != 0.1 {
		t.Errorf("expected param_step 0.1, got %v", cfg.Surface.ParamStep)
	}

	if cfg.Material.Diffuse != "#ff8000" {
		t.Errorf("expected diffuse #ff8000, got %s", cfg.Material.Diffuse)
	}
	if cfg.Material.Specular != "#ffffff" {
		t.Errorf("expected specular default #ffffff, got %s", cfg.Material.Specular)
	}
	if !cfg.Material.Textured || cfg.Material.Texture != "textures/wood.png" {
		t.Errorf("expected texture textures/wood.png enabled, got %q %v", cfg.Material.Texture, cfg.Material.Textured)
	}

	if cfg.Marker.Step != 0.1 {
		t.Errorf("expected marker step 0.1, got %f", cfg.Marker.Step)
	}
	if cfg.Camera.Inertia {
		t.Error("expected inertia to be false")
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "hornview.log" {
		t.Errorf("expected log file 'hornview.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := map[string]string{
		"syntax":      "window:\n  width: not a number\n  invalid syntax here\n",
		"unknown key": "surface:\n  c: 3\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			if err := loadFromFile(Default(), configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("expected empty file to load, got %v", err)
	}
	if cfg.Surface.StepsU != 60 {
		t.Errorf("expected defaults untouched, got steps_u %d", cfg.Surface.StepsU)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/hornview.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"nan a", func(c *Config) { c.Surface.A = math.NaN() }, "a=NaN"},
		{"zero steps", func(c *Config) { c.Surface.StepsU = 0 }, "steps_u=0"},
		{"too many steps", func(c *Config) { c.Surface.StepsV = surface.MaxSteps + 1 }, "steps_v"},
		{"bad color", func(c *Config) { c.Material.Ambient = "#12345" }, "material.ambient"},
		{"marker step", func(c *Config) { c.Marker.Step = 1.5 }, "marker.step"},
		{"log level", func(c *Config) { c.Logging.Level = "chatty" }, "logging.level"},
		{"sensitivity", func(c *Config) { c.Camera.Sensitivity = 0 }, "camera.sensitivity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Window.Height = -1
	cfg.Material.Light = "yellow"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	for _, want := range []string{"window size", "material.light"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error mentioning %q, got %v", want, err)
		}
	}
}

func TestValidateSurfaceErrorsKeepSentinel(t *testing.T) {
	cfg := Default()
	cfg.Surface.B = math.Inf(1)

	if err := cfg.Validate(); !errors.Is(err, surface.ErrInvalidParameter) {
		t.Errorf("expected surface.ErrInvalidParameter, got %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("window:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Errorf("expected to find %s in current directory", FileName)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		set      []string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			set:   []string{"debug"},
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "surface flags",
			set:  []string{"a", "b", "u-steps", "v-steps"},
			setup: func() {
				*flagA = 1.25
				*flagB = 3
				*flagStepsU = 12
				*flagStepsV = 18
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Surface.Params() != (surface.Params{A: 1.25, B: 3}) {
					t.Errorf("expected params {1.25 3}, got %+v", cfg.Surface.Params())
				}
				if cfg.Surface.Resolution() != (surface.Resolution{StepsU: 12, StepsV: 18}) {
					t.Errorf("expected resolution 12x18, got %+v", cfg.Surface.Resolution())
				}
			},
			teardown: func() {
				*flagA, *flagB = 0, 0
				*flagStepsU, *flagStepsV = 0, 0
			},
		},
		{
			name:  "texture flag",
			set:   []string{"texture"},
			setup: func() { *flagTexture = "checker.bmp" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Material.Texture != "checker.bmp" || !cfg.Material.Textured {
					t.Errorf("expected textured with checker.bmp, got %q %v", cfg.Material.Texture, cfg.Material.Textured)
				}
			},
			teardown: func() { *flagTexture = "" },
		},
		{
			name:  "windowed flag",
			set:   []string{"windowed"},
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			set:   []string{"fullscreen"},
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			set:  []string{"width", "height"},
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "output flag",
			set:   []string{"output"},
			setup: func() { *flagOutput = "/tmp/shots" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Output.Dir != "/tmp/shots" {
					t.Errorf("expected output /tmp/shots, got %s", cfg.Output.Dir)
				}
			},
			teardown: func() { *flagOutput = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			set := make(map[string]bool)
			for _, name := range tt.set {
				set[name] = true
			}

			cfg := Default()
			applyFlags(cfg, set)
			tt.verify(t, cfg)
		})
	}
}

func TestApplyFlagsHonorsExplicitZero(t *testing.T) {
	*flagA = 0
	*flagWidth = 0

	cfg := Default()
	applyFlags(cfg, map[string]bool{"a": true})
	if cfg.Surface.A != 0 {
		t.Errorf("expected a 0 from flag, got %v", cfg.Surface.A)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected a=0 to be valid, got %v", err)
	}
	if cfg.Window.Width != 800 {
		t.Errorf("expected width 800 when flag not given, got %d", cfg.Window.Width)
	}
}

func TestSetFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Float64("a", 0, "")
	fs.Float64("b", 0, "")
	if err := fs.Parse([]string{"-a", "0"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	set := setFlags(fs)
	if !set["a"] {
		t.Error("expected a to be reported as set")
	}
	if set["b"] {
		t.Error("expected b to be reported as unset")
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)

	yamlContent := `
window:
  width: 1600
  height: 900
surface:
  steps_u: 30
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := load(map[string]bool{"width": true})
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
	if cfg.Surface.StepsU != 30 {
		t.Errorf("expected steps_u 30 from file, got %d", cfg.Surface.StepsU)
	}
}

func TestLoadRejectsInvalidResult(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(configPath, []byte("surface:\n  steps_v: 0\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Surface.A = 0.75
	cfg.Material.Surface = "#00ff00"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Surface.A != 0.75 {
		t.Errorf("expected a 0.75, got %v", loaded.Surface.A)
	}
	if loaded.Material.Surface != "#00ff00" {
		t.Errorf("expected surface #00ff00, got %s", loaded.Material.Surface)
	}
}
