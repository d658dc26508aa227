// Package gpu defines the graphics device context that GPU resources are
// created against. Resources hold a Device explicitly instead of reaching
// for a process-wide GL context, so they can be exercised without one.
package gpu

import "github.com/Faultbox/hornview/pkg/math"

// Handles are opaque device-side object names.
type (
	Buffer  uint32
	Shader  uint32
	Program uint32
	Texture uint32
)

// Primitive selects how DrawArrays assembles vertices.
type Primitive int

const (
	Triangles Primitive = iota
	LineStrip
	Points
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case LineStrip:
		return "line_strip"
	case Points:
		return "points"
	default:
		return "unknown"
	}
}

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// Device is the subset of a graphics API the renderer needs.
// Locations follow GL conventions: -1 means inactive or not found.
type Device interface {
	// Buffers
	CreateBuffer() Buffer
	BufferData(b Buffer, data []float32)
	DeleteBuffer(b Buffer)
	BindAttribute(location int32, b Buffer, components int32)
	DisableAttribute(location int32)
	DrawArrays(mode Primitive, first, count int32)

	// Shaders
	CreateShader(stage ShaderStage) Shader
	CompileShader(s Shader, source string) bool
	ShaderInfoLog(s Shader) string
	DeleteShader(s Shader)
	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program) bool
	ProgramInfoLog(p Program) string
	DeleteProgram(p Program)
	UseProgram(p Program)
	AttribLocation(p Program, name string) int32
	UniformLocation(p Program, name string) int32

	// Uniforms on the current program
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform2f(location int32, x, y float32)
	Uniform3f(location int32, x, y, z float32)
	Uniform4f(location int32, x, y, z, w float32)
	UniformMatrix4(location int32, m math.Mat4)

	// Textures
	CreateTexture(width, height int, rgba []byte) Texture
	BindTexture(unit int32, t Texture)
	DeleteTexture(t Texture)

	// Frame
	Viewport(width, height int)
	Clear(r, g, b, a float32)
	ReadPixels(width, height int) []byte
}
