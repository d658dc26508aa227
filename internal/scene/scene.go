// Package scene composes the per-frame transforms and draws the surface,
// the light axis and the marker through a gpu.Device.
package scene

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/hornview/internal/engine/color"
	"github.com/Faultbox/hornview/internal/engine/debug"
	"github.com/Faultbox/hornview/internal/engine/gpu"
	"github.com/Faultbox/hornview/internal/engine/model"
	"github.com/Faultbox/hornview/internal/engine/shader"
	"github.com/Faultbox/hornview/internal/engine/shader/shaders"
	"github.com/Faultbox/hornview/internal/engine/texture"
	"github.com/Faultbox/hornview/internal/logger"
	"github.com/Faultbox/hornview/internal/surface"
	"github.com/Faultbox/hornview/pkg/math"
)

// Uniform semantics resolved by the surface program.
const (
	UniformMVP            = "mvp"
	UniformNormalMatrix   = "normal_matrix"
	UniformColor          = "color"
	UniformDiffuse        = "diffuse"
	UniformAmbient        = "ambient"
	UniformSpecular       = "specular"
	UniformLightDir       = "light_dir"
	UniformTexture        = "texture"
	UniformUseTexture     = "use_texture"
	UniformTexTranslation = "tex_translation"
	UniformShaded         = "shaded"
	UniformPointSize      = "point_size"
)

// Layout maps the semantics above onto the embedded surface shader.
var Layout = shader.Layout{
	Attributes: map[string]string{
		shader.AttribPosition: "aVertex",
		shader.AttribNormal:   "aNormal",
		shader.AttribTexCoord: "aTexCoord",
	},
	Uniforms: map[string]string{
		UniformMVP:            "uModelViewProjection",
		UniformNormalMatrix:   "uNormalMatrix",
		UniformColor:          "uColor",
		UniformDiffuse:        "uDiffuseColor",
		UniformAmbient:        "uAmbientColor",
		UniformSpecular:       "uSpecularColor",
		UniformLightDir:       "uLightDir",
		UniformTexture:        "uTexture",
		UniformUseTexture:     "uUseTexture",
		UniformTexTranslation: "uTexTranslation",
		UniformShaded:         "uShaded",
		UniformPointSize:      "uPointSize",
	},
}

// Material holds the colors fed to the shader.
type Material struct {
	Surface    color.RGB
	Diffuse    color.RGB
	Ambient    color.RGB
	Specular   color.RGB
	Light      color.RGB
	Marker     color.RGB
	Background color.RGB
}

// DefaultMaterial is a yellow surface under white light on black.
func DefaultMaterial() Material {
	return Material{
		Surface:    color.MustParseHex("#ffff00"),
		Diffuse:    color.MustParseHex("#cccccc"),
		Ambient:    color.MustParseHex("#333333"),
		Specular:   color.MustParseHex("#ffffff"),
		Light:      color.MustParseHex("#ffff00"),
		Marker:     color.MustParseHex("#ff0000"),
		Background: color.Black,
	}
}

// Config configures a Scene.
type Config struct {
	Material   Material
	MarkerStep float32
	MarkerSize float32
	Width      int
	Height     int
}

// Scene owns the surface program and models. Not safe for concurrent use.
type Scene struct {
	dev     gpu.Device
	binding *shader.Binding

	surface *model.Model
	light   *model.Model
	point   *model.Model

	marker   *Marker
	mesh     *surface.Mesh
	material Material
	pointSz  float32

	texture    gpu.Texture
	hasTexture bool
	useTexture bool

	width, height int
	log           *zap.Logger
}

// New compiles the surface program and creates the models. Nothing is
// drawn until Regenerate uploads a mesh.
func New(dev gpu.Device, cfg Config) (*Scene, error) {
	b, err := shader.New(dev, shader.Source{
		Vertex:   shaders.SurfaceVertexShader,
		Fragment: shaders.SurfaceFragmentShader,
	}, Layout)
	if err != nil {
		return nil, fmt.Errorf("surface program: %w", err)
	}

	size := cfg.MarkerSize
	if size <= 0 {
		size = 8
	}

	s := &Scene{
		dev:      dev,
		binding:  b,
		surface:  model.New(dev, b),
		light:    model.New(dev, b),
		point:    model.New(dev, b),
		marker:   NewMarker(cfg.MarkerStep),
		material: cfg.Material,
		pointSz:  size,
		log:      logger.Named("scene"),
	}
	s.Resize(cfg.Width, cfg.Height)
	return s, nil
}

// Regenerate tessellates the surface and replaces the GPU buffers.
// On error the previous mesh stays uploaded.
func (s *Scene) Regenerate(res surface.Resolution, p surface.Params) error {
	mesh, err := surface.Tessellate(res, p, true)
	if err != nil {
		s.log.Warn("regeneration rejected",
			zap.Int("steps_u", res.StepsU),
			zap.Int("steps_v", res.StepsV),
			zap.Float64("a", p.A),
			zap.Float64("b", p.B),
			zap.Error(err),
		)
		return err
	}

	s.surface.Upload(mesh)
	s.mesh = mesh
	s.SyncMarker()

	s.log.Debug("mesh regenerated",
		zap.Int("steps_u", res.StepsU),
		zap.Int("steps_v", res.StepsV),
		zap.Float64("a", p.A),
		zap.Float64("b", p.B),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("degenerate_facets", mesh.DegenerateFacets),
	)
	return nil
}

// Mesh returns the mesh currently on the GPU, or nil before the first Regenerate.
func (s *Scene) Mesh() *surface.Mesh {
	return s.mesh
}

// Marker returns the texture-translation marker.
func (s *Scene) Marker() *Marker {
	return s.marker
}

// MoveMarker moves the marker and re-places its point.
func (s *Scene) MoveMarker(d Direction) bool {
	if !s.marker.Move(d) {
		return false
	}
	s.SyncMarker()
	return true
}

// ResetMarker puts the marker back at the origin.
func (s *Scene) ResetMarker() {
	s.marker.Reset()
	s.SyncMarker()
}

// SyncMarker re-places the marker point after the marker was changed directly.
func (s *Scene) SyncMarker() {
	if s.mesh == nil {
		return
	}
	p := math.FromVec64(s.marker.Position(s.mesh.Params))
	s.point.UploadPositions(p.Slice(nil))
}

// SetTexture replaces the surface texture. A nil image removes it.
func (s *Scene) SetTexture(img *image.RGBA) {
	if s.hasTexture {
		s.dev.DeleteTexture(s.texture)
		s.hasTexture = false
	}
	if img == nil {
		return
	}
	s.texture = texture.Upload(s.dev, img)
	s.hasTexture = true
	s.useTexture = true
}

// SetUseTexture toggles texturing without discarding the texture.
func (s *Scene) SetUseTexture(on bool) {
	s.useTexture = on
}

// Textured reports whether the surface will be drawn with its texture.
func (s *Scene) Textured() bool {
	return s.useTexture && s.hasTexture
}

// Resize sets the viewport for a framebuffer of width x height pixels.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
	s.dev.Viewport(width, height)
}

// Aspect is the framebuffer width over height.
func (s *Scene) Aspect() float32 {
	if s.height == 0 {
		return 1
	}
	return float32(s.width) / float32(s.height)
}

// Render draws one frame with the trackball view at elapsed seconds.
func (s *Scene) Render(view math.Mat4, elapsed float64) {
	bg := s.material.Background
	s.dev.Clear(bg.R, bg.G, bg.B, 1)

	b := s.binding
	b.Activate()

	t := Compose(view, s.Aspect())
	b.SetMat4(UniformMVP, t.MVP)
	b.SetMat4(UniformNormalMatrix, t.NormalMatrix)
	b.SetVec3(UniformDiffuse, s.material.Diffuse.Vec3())
	b.SetVec3(UniformAmbient, s.material.Ambient.Vec3())
	b.SetVec3(UniformSpecular, s.material.Specular.Vec3())
	b.SetVec3(UniformLightDir, debug.LightDirection(elapsed))
	b.SetVec2(UniformTexTranslation, s.marker.Translation())
	b.SetFloat(UniformPointSize, s.pointSz)

	textured := s.Textured()
	if textured {
		s.dev.BindTexture(0, s.texture)
		b.SetInt(UniformTexture, 0)
	}
	b.SetBool(UniformUseTexture, textured)

	b.SetBool(UniformShaded, true)
	s.setColor(s.material.Surface)
	s.surface.Draw()

	b.SetBool(UniformShaded, false)
	s.light.UploadPositions(debug.LightAxis(elapsed))
	s.setColor(s.material.Light)
	s.light.DrawLine()

	s.setColor(s.material.Marker)
	s.point.DrawPoints()
}

// Present renders a frame, takes any screenshot requested on shots while
// the back buffer still holds it, then calls swap. shots may be nil.
func (s *Scene) Present(view math.Mat4, elapsed float64, shots *debug.ScreenshotCapture, swap func()) (string, error) {
	s.Render(view, elapsed)

	var (
		path string
		err  error
	)
	if shots != nil {
		path, err = shots.CapturePending(s.dev, s.width, s.height)
	}
	swap()
	return path, err
}

func (s *Scene) setColor(c color.RGB) {
	s.binding.SetVec4(UniformColor, c.R, c.G, c.B, 1)
}

// Size returns the framebuffer size last passed to Resize.
func (s *Scene) Size() (int, int) {
	return s.width, s.height
}

// Close releases every GPU object the scene owns.
func (s *Scene) Close() {
	s.SetTexture(nil)
	s.point.Close()
	s.light.Close()
	s.surface.Close()
	s.binding.Close()
}
