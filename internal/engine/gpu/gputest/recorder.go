// Package gputest provides an in-memory gpu.Device for tests.
package gputest

import (
	"fmt"

	"github.com/Faultbox/hornview/internal/engine/gpu"
	"github.com/Faultbox/hornview/pkg/math"
)

// DrawCall is one recorded DrawArrays invocation.
type DrawCall struct {
	Mode    gpu.Primitive
	First   int32
	Count   int32
	Program gpu.Program
}

// Attribute is the buffer currently bound to an attribute location.
type Attribute struct {
	Buffer     gpu.Buffer
	Components int32
}

// TextureData is the pixel payload handed to CreateTexture.
type TextureData struct {
	Width, Height int
	RGBA          []byte
}

// Recorder implements gpu.Device by recording every call.
// Locations are handed out per name, starting at 0; names in Missing
// resolve to -1 the way GL reports inactive variables.
type Recorder struct {
	// Failure injection.
	FailCompile map[gpu.ShaderStage]string
	FailLink    string
	Missing     map[string]bool

	// Live objects.
	Buffers  map[gpu.Buffer][]float32
	Shaders  map[gpu.Shader]gpu.ShaderStage
	Programs map[gpu.Program]bool
	Textures map[gpu.Texture]TextureData

	// Bound state.
	Program    gpu.Program
	Attributes map[int32]Attribute
	BoundTex   map[int32]gpu.Texture
	Uniforms   map[int32]any
	ViewportW  int
	ViewportH  int
	ClearColor [4]float32

	Draws []DrawCall
	// Calls logs frame-level calls in order: "clear", "draw", "read_pixels".
	Calls []string
	// Pixels is returned from ReadPixels, cropped or zero-padded to size.
	Pixels []byte

	next      uint32
	locations map[string]int32
	deleted   int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		FailCompile: make(map[gpu.ShaderStage]string),
		Missing:     make(map[string]bool),
		Buffers:     make(map[gpu.Buffer][]float32),
		Shaders:     make(map[gpu.Shader]gpu.ShaderStage),
		Programs:    make(map[gpu.Program]bool),
		Textures:    make(map[gpu.Texture]TextureData),
		Attributes:  make(map[int32]Attribute),
		BoundTex:    make(map[int32]gpu.Texture),
		Uniforms:    make(map[int32]any),
		locations:   make(map[string]int32),
	}
}

func (r *Recorder) id() uint32 {
	r.next++
	return r.next
}

// Live reports how many device objects have not been deleted.
func (r *Recorder) Live() int {
	return len(r.Buffers) + len(r.Shaders) + len(r.Programs) + len(r.Textures)
}

// Deleted reports how many delete calls have been made.
func (r *Recorder) Deleted() int {
	return r.deleted
}

// Location returns the location previously assigned to name, or -1.
func (r *Recorder) Location(name string) int32 {
	if loc, ok := r.locations[name]; ok {
		return loc
	}
	return -1
}

// Uniform returns the last value set on the named uniform.
func (r *Recorder) Uniform(name string) (any, bool) {
	loc, ok := r.locations[name]
	if !ok {
		return nil, false
	}
	v, ok := r.Uniforms[loc]
	return v, ok
}

// Attribute returns the binding of the named attribute.
func (r *Recorder) Attribute(name string) (Attribute, bool) {
	loc, ok := r.locations[name]
	if !ok {
		return Attribute{}, false
	}
	a, ok := r.Attributes[loc]
	return a, ok
}

// LastDraw returns the most recent draw call.
func (r *Recorder) LastDraw() (DrawCall, bool) {
	if len(r.Draws) == 0 {
		return DrawCall{}, false
	}
	return r.Draws[len(r.Draws)-1], true
}

// Reset forgets recorded draws and uniform values but keeps objects.
func (r *Recorder) Reset() {
	r.Draws = nil
	r.Calls = nil
	r.Uniforms = make(map[int32]any)
}

func (r *Recorder) CreateBuffer() gpu.Buffer {
	b := gpu.Buffer(r.id())
	r.Buffers[b] = nil
	return b
}

func (r *Recorder) BufferData(b gpu.Buffer, data []float32) {
	if _, ok := r.Buffers[b]; !ok {
		panic(fmt.Sprintf("gputest: BufferData on unknown buffer %d", b))
	}
	r.Buffers[b] = append([]float32(nil), data...)
}

func (r *Recorder) DeleteBuffer(b gpu.Buffer) {
	delete(r.Buffers, b)
	r.deleted++
}

func (r *Recorder) BindAttribute(location int32, b gpu.Buffer, components int32) {
	if location < 0 {
		return
	}
	r.Attributes[location] = Attribute{Buffer: b, Components: components}
}

func (r *Recorder) DisableAttribute(location int32) {
	delete(r.Attributes, location)
}

func (r *Recorder) DrawArrays(mode gpu.Primitive, first, count int32) {
	r.Draws = append(r.Draws, DrawCall{Mode: mode, First: first, Count: count, Program: r.Program})
	r.Calls = append(r.Calls, "draw")
}

func (r *Recorder) CreateShader(stage gpu.ShaderStage) gpu.Shader {
	s := gpu.Shader(r.id())
	r.Shaders[s] = stage
	return s
}

func (r *Recorder) CompileShader(s gpu.Shader, source string) bool {
	_, fail := r.FailCompile[r.Shaders[s]]
	return !fail && source != ""
}

func (r *Recorder) ShaderInfoLog(s gpu.Shader) string {
	return r.FailCompile[r.Shaders[s]]
}

func (r *Recorder) DeleteShader(s gpu.Shader) {
	delete(r.Shaders, s)
	r.deleted++
}

func (r *Recorder) CreateProgram() gpu.Program {
	p := gpu.Program(r.id())
	r.Programs[p] = true
	return p
}

func (r *Recorder) AttachShader(p gpu.Program, s gpu.Shader) {}

func (r *Recorder) LinkProgram(p gpu.Program) bool {
	return r.FailLink == ""
}

func (r *Recorder) ProgramInfoLog(p gpu.Program) string {
	return r.FailLink
}

func (r *Recorder) DeleteProgram(p gpu.Program) {
	delete(r.Programs, p)
	if r.Program == p {
		r.Program = 0
	}
	r.deleted++
}

func (r *Recorder) UseProgram(p gpu.Program) {
	r.Program = p
}

func (r *Recorder) lookup(name string) int32 {
	if r.Missing[name] {
		return -1
	}
	if loc, ok := r.locations[name]; ok {
		return loc
	}
	loc := int32(len(r.locations))
	r.locations[name] = loc
	return loc
}

func (r *Recorder) AttribLocation(p gpu.Program, name string) int32 {
	return r.lookup(name)
}

func (r *Recorder) UniformLocation(p gpu.Program, name string) int32 {
	return r.lookup(name)
}

func (r *Recorder) setUniform(location int32, v any) {
	if location < 0 {
		return
	}
	r.Uniforms[location] = v
}

func (r *Recorder) Uniform1i(location int32, v int32)   { r.setUniform(location, v) }
func (r *Recorder) Uniform1f(location int32, v float32) { r.setUniform(location, v) }

func (r *Recorder) Uniform2f(location int32, x, y float32) {
	r.setUniform(location, [2]float32{x, y})
}

func (r *Recorder) Uniform3f(location int32, x, y, z float32) {
	r.setUniform(location, [3]float32{x, y, z})
}

func (r *Recorder) Uniform4f(location int32, x, y, z, w float32) {
	r.setUniform(location, [4]float32{x, y, z, w})
}

func (r *Recorder) UniformMatrix4(location int32, m math.Mat4) {
	r.setUniform(location, m)
}

func (r *Recorder) CreateTexture(width, height int, rgba []byte) gpu.Texture {
	t := gpu.Texture(r.id())
	r.Textures[t] = TextureData{Width: width, Height: height, RGBA: append([]byte(nil), rgba...)}
	return t
}

func (r *Recorder) BindTexture(unit int32, t gpu.Texture) {
	r.BoundTex[unit] = t
}

func (r *Recorder) DeleteTexture(t gpu.Texture) {
	delete(r.Textures, t)
	r.deleted++
}

func (r *Recorder) Viewport(width, height int) {
	r.ViewportW, r.ViewportH = width, height
}

func (r *Recorder) Clear(red, green, blue, alpha float32) {
	r.ClearColor = [4]float32{red, green, blue, alpha}
	r.Calls = append(r.Calls, "clear")
}

func (r *Recorder) ReadPixels(width, height int) []byte {
	r.Calls = append(r.Calls, "read_pixels")
	out := make([]byte, width*height*4)
	copy(out, r.Pixels)
	return out
}

var _ gpu.Device = (*Recorder)(nil)
