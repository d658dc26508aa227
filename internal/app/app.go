// Package app runs the interactive horn-surface viewer.
package app

import (
	"fmt"
	"image"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/hornview/internal/config"
	"github.com/Faultbox/hornview/internal/controls"
	"github.com/Faultbox/hornview/internal/engine/camera"
	"github.com/Faultbox/hornview/internal/engine/color"
	"github.com/Faultbox/hornview/internal/engine/debug"
	"github.com/Faultbox/hornview/internal/engine/input"
	"github.com/Faultbox/hornview/internal/engine/renderer"
	"github.com/Faultbox/hornview/internal/engine/texture"
	"github.com/Faultbox/hornview/internal/engine/window"
	"github.com/Faultbox/hornview/internal/export"
	"github.com/Faultbox/hornview/internal/logger"
	"github.com/Faultbox/hornview/internal/scene"
)

// Title is the window title prefix.
const Title = "hornview"

// App is the viewer instance.
type App struct {
	cfg     *config.Config
	running bool

	window    *window.Window
	renderer  *renderer.Renderer
	input     *input.Input
	scene     *scene.Scene
	trackball *camera.Trackball
	controls  *controls.Controls
	shots     *debug.ScreenshotCapture

	start time.Time
	log   *zap.Logger
}

// New opens the window and prepares the first mesh.
func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg, log: logger.Named("app")}
	a.log.Info("initializing viewer",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Float64("a", cfg.Surface.A),
		zap.Float64("b", cfg.Surface.B),
	)

	material, err := scene.MaterialFromConfig(cfg.Material)
	if err != nil {
		return nil, err
	}

	// Create window (this also creates the OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the context made current by the window
	a.renderer, err = renderer.New()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	w, h := a.window.DrawableSize()
	a.scene, err = scene.New(a.renderer, scene.Config{
		Material:   material,
		MarkerStep: cfg.Marker.Step,
		MarkerSize: cfg.Marker.Size,
		Width:      w,
		Height:     h,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	limits := controls.DefaultLimits()
	limits.ParamStep = cfg.Surface.ParamStep
	limits.StepDelta = cfg.Surface.StepDelta
	limits.MaxSteps = cfg.Surface.MaxSteps
	a.controls = controls.New(cfg.Surface.Params(), cfg.Surface.Resolution(), a.scene.Marker(), limits)
	a.controls.Textured = cfg.Material.Textured

	if err := a.scene.Regenerate(a.controls.Resolution, a.controls.Params); err != nil {
		a.Close()
		return nil, fmt.Errorf("initial mesh: %w", err)
	}
	a.scene.SetTexture(a.loadTexture(material))
	a.scene.SetUseTexture(a.controls.Textured)

	a.trackball = camera.NewTrackball(cfg.Camera.FPS, cfg.Camera.Sensitivity, cfg.Camera.Inertia)
	a.input = input.New(nil)
	a.shots = debug.NewScreenshotCapture(cfg.Output.Dir, Title)
	a.updateTitle()

	a.log.Info("viewer initialized")
	return a, nil
}

// loadTexture reads the configured image, falling back to a checkerboard.
func (a *App) loadTexture(m scene.Material) *image.RGBA {
	if path := a.cfg.Material.Texture; path != "" {
		img, err := texture.Load(path)
		if err == nil {
			a.log.Info("texture loaded", zap.String("path", path), zap.Int("width", img.Rect.Dx()), zap.Int("height", img.Rect.Dy()))
			return img
		}
		a.log.Warn("texture unavailable, using checkerboard", zap.String("path", path), zap.Error(err))
	}
	return texture.Checker(256, 8, m.Surface, color.White)
}

// Run drives the frame loop until the window closes.
func (a *App) Run() error {
	a.running = true
	a.start = time.Now()

	lastTime := a.start
	frameCount := 0
	fpsTimer := a.start

	a.log.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}
		for _, ev := range a.input.Events() {
			a.handle(ev)
		}
		if !a.running {
			break
		}

		a.trackball.Update()
		path, err := a.scene.Present(a.trackball.ViewMatrix(), time.Since(a.start).Seconds(), a.shots, a.window.SwapBuffers)
		if err != nil {
			a.log.Warn("screenshot failed", zap.Error(err))
		} else if path != "" {
			a.log.Info("screenshot saved", zap.String("path", path))
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handle(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		a.running = false
	case input.EventWindowResize:
		a.scene.Resize(a.window.DrawableSize())
	case input.EventDrag:
		a.trackball.Drag(ev.DX, ev.DY)
	case input.EventRelease:
		a.trackball.Release()
	case input.EventKeyDown:
		a.apply(ev.Action)
	}
}

func (a *App) apply(action controls.Action) {
	switch a.controls.Apply(action) {
	case controls.EffectRegenerate:
		if err := a.scene.Regenerate(a.controls.Resolution, a.controls.Params); err != nil {
			a.log.Warn("regenerate failed", zap.Error(err))
			return
		}
		a.updateTitle()
	case controls.EffectMarker:
		a.scene.SyncMarker()
	case controls.EffectTexture:
		a.scene.SetUseTexture(a.controls.Textured)
	case controls.EffectExport:
		a.export()
	case controls.EffectScreenshot:
		// Taken in Present, before the swap.
		a.shots.Request()
	case controls.EffectResetView:
		a.trackball.Reset()
		a.scene.ResetMarker()
	case controls.EffectQuit:
		a.running = false
	}
}

func (a *App) export() {
	name := fmt.Sprintf("%s_%s.glb", Title, time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(a.cfg.Output.Dir, name)
	if err := export.WriteGLB(path, a.scene.Mesh()); err != nil {
		a.log.Warn("export failed", zap.Error(err))
		return
	}
	a.log.Info("mesh exported", zap.String("path", path))
}

func (a *App) updateTitle() {
	p, r := a.controls.Params, a.controls.Resolution
	a.window.SetTitle(fmt.Sprintf("%s  a=%.2f b=%.2f  %dx%d", Title, p.A, p.B, r.StepsU, r.StepsV))
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.scene != nil {
		a.scene.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
