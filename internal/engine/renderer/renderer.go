// Package renderer implements gpu.Device on OpenGL 4.1 core.
package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hornview/internal/engine/gpu"
	"github.com/Faultbox/hornview/internal/logger"
	"github.com/Faultbox/hornview/pkg/math"
)

// Renderer issues GL calls for every gpu.Device operation.
// IMPORTANT: Must be created AFTER the window's OpenGL context is current!
type Renderer struct {
	vao uint32
}

// New loads GL function pointers and sets up default state.
func New() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	// Core profile refuses to draw without a bound vertex array object.
	d := &Renderer{}
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	return d, nil
}

// Close releases the vertex array object.
func (d *Renderer) Close() {
	if d.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

func (d *Renderer) CreateBuffer() gpu.Buffer {
	var id uint32
	gl.GenBuffers(1, &id)
	return gpu.Buffer(id)
}

func (d *Renderer) BufferData(b gpu.Buffer, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STREAM_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STREAM_DRAW)
}

func (d *Renderer) DeleteBuffer(b gpu.Buffer) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

func (d *Renderer) BindAttribute(location int32, b gpu.Buffer, components int32) {
	if location < 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
	gl.VertexAttribPointer(uint32(location), components, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(uint32(location))
}

func (d *Renderer) DisableAttribute(location int32) {
	if location < 0 {
		return
	}
	gl.DisableVertexAttribArray(uint32(location))
}

func (d *Renderer) DrawArrays(mode gpu.Primitive, first, count int32) {
	gl.DrawArrays(glPrimitive(mode), first, count)
}

func (d *Renderer) CreateShader(stage gpu.ShaderStage) gpu.Shader {
	if stage == gpu.FragmentStage {
		return gpu.Shader(gl.CreateShader(gl.FRAGMENT_SHADER))
	}
	return gpu.Shader(gl.CreateShader(gl.VERTEX_SHADER))
}

func (d *Renderer) CompileShader(s gpu.Shader, source string) bool {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(s), 1, csource, nil)
	free()
	gl.CompileShader(uint32(s))

	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (d *Renderer) ShaderInfoLog(s gpu.Shader) string {
	var logLen int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetShaderInfoLog(uint32(s), logLen, nil, &log[0])
	return strings.TrimRight(string(log), "\x00\n")
}

func (d *Renderer) DeleteShader(s gpu.Shader) {
	gl.DeleteShader(uint32(s))
}

func (d *Renderer) CreateProgram() gpu.Program {
	return gpu.Program(gl.CreateProgram())
}

func (d *Renderer) AttachShader(p gpu.Program, s gpu.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (d *Renderer) LinkProgram(p gpu.Program) bool {
	gl.LinkProgram(uint32(p))

	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (d *Renderer) ProgramInfoLog(p gpu.Program) string {
	var logLen int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &logLen)
	if logLen == 0 {
		return ""
	}
	log := make([]byte, logLen)
	gl.GetProgramInfoLog(uint32(p), logLen, nil, &log[0])
	return strings.TrimRight(string(log), "\x00\n")
}

func (d *Renderer) DeleteProgram(p gpu.Program) {
	gl.DeleteProgram(uint32(p))
}

func (d *Renderer) UseProgram(p gpu.Program) {
	gl.UseProgram(uint32(p))
}

func (d *Renderer) AttribLocation(p gpu.Program, name string) int32 {
	return gl.GetAttribLocation(uint32(p), gl.Str(name+"\x00"))
}

func (d *Renderer) UniformLocation(p gpu.Program, name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}

func (d *Renderer) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (d *Renderer) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

func (d *Renderer) Uniform2f(location int32, x, y float32) {
	gl.Uniform2f(location, x, y)
}

func (d *Renderer) Uniform3f(location int32, x, y, z float32) {
	gl.Uniform3f(location, x, y, z)
}

func (d *Renderer) Uniform4f(location int32, x, y, z, w float32) {
	gl.Uniform4f(location, x, y, z, w)
}

func (d *Renderer) UniformMatrix4(location int32, m math.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, m.Ptr())
}

func (d *Renderer) CreateTexture(width, height int, rgba []byte) gpu.Texture {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(width), int32(height),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	// Texture translation scrolls past the edges.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)

	return gpu.Texture(id)
}

func (d *Renderer) BindTexture(unit int32, t gpu.Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(t))
}

func (d *Renderer) DeleteTexture(t gpu.Texture) {
	id := uint32(t)
	gl.DeleteTextures(1, &id)
}

func (d *Renderer) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Renderer) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *Renderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

func glPrimitive(p gpu.Primitive) uint32 {
	switch p {
	case gpu.LineStrip:
		return gl.LINE_STRIP
	case gpu.Points:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}

var _ gpu.Device = (*Renderer)(nil)
