// Package shader compiles GLSL programs and resolves their attribute and
// uniform slots by semantic name.
package shader

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/hornview/internal/engine/gpu"
	"github.com/Faultbox/hornview/internal/logger"
	"github.com/Faultbox/hornview/pkg/math"
)

// Semantic attribute names consumed by model.Model.
const (
	AttribPosition = "position"
	AttribNormal   = "normal"
	AttribTexCoord = "texcoord"
)

// Source holds the GLSL text for both stages.
type Source struct {
	Vertex   string
	Fragment string
}

// Layout maps semantic names to the variable names declared in the source.
type Layout struct {
	Attributes map[string]string
	Uniforms   map[string]string
}

// CompileError reports a stage that failed to compile.
type CompileError struct {
	Stage gpu.ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link: %s", e.Log)
}

// Binding is a linked program plus its resolved slot locations.
type Binding struct {
	dev      gpu.Device
	program  gpu.Program
	attribs  map[string]int32
	uniforms map[string]int32
}

// New compiles and links src, then resolves every name in layout once.
// On failure every object created so far is deleted.
func New(dev gpu.Device, src Source, layout Layout) (*Binding, error) {
	vert, err := compile(dev, gpu.VertexStage, src.Vertex)
	if err != nil {
		return nil, err
	}
	defer dev.DeleteShader(vert)

	frag, err := compile(dev, gpu.FragmentStage, src.Fragment)
	if err != nil {
		return nil, err
	}
	defer dev.DeleteShader(frag)

	program := dev.CreateProgram()
	dev.AttachShader(program, vert)
	dev.AttachShader(program, frag)
	if !dev.LinkProgram(program) {
		log := dev.ProgramInfoLog(program)
		dev.DeleteProgram(program)
		return nil, &LinkError{Log: log}
	}

	b := &Binding{
		dev:      dev,
		program:  program,
		attribs:  make(map[string]int32, len(layout.Attributes)),
		uniforms: make(map[string]int32, len(layout.Uniforms)),
	}
	for semantic, name := range layout.Attributes {
		b.attribs[semantic] = dev.AttribLocation(program, name)
	}
	for semantic, name := range layout.Uniforms {
		b.uniforms[semantic] = dev.UniformLocation(program, name)
	}

	logger.Debug("shader program linked",
		zap.Uint32("program", uint32(program)),
		zap.Int("attributes", len(b.attribs)),
		zap.Int("uniforms", len(b.uniforms)),
	)
	return b, nil
}

func compile(dev gpu.Device, stage gpu.ShaderStage, source string) (gpu.Shader, error) {
	s := dev.CreateShader(stage)
	if !dev.CompileShader(s, source) {
		log := dev.ShaderInfoLog(s)
		dev.DeleteShader(s)
		return 0, &CompileError{Stage: stage, Log: log}
	}
	return s, nil
}

// Program returns the underlying program handle.
func (b *Binding) Program() gpu.Program {
	return b.program
}

// Activate makes the program current.
func (b *Binding) Activate() {
	b.dev.UseProgram(b.program)
}

// Attrib returns the location of a semantic attribute, or -1.
func (b *Binding) Attrib(name string) int32 {
	if loc, ok := b.attribs[name]; ok {
		return loc
	}
	return -1
}

// Uniform returns the location of a semantic uniform, or -1.
func (b *Binding) Uniform(name string) int32 {
	if loc, ok := b.uniforms[name]; ok {
		return loc
	}
	return -1
}

// Setters below act on the current program and ignore inactive slots.

func (b *Binding) SetMat4(name string, m math.Mat4) {
	if loc := b.Uniform(name); loc >= 0 {
		b.dev.UniformMatrix4(loc, m)
	}
}

func (b *Binding) SetVec2(name string, v math.Vec2) {
	if loc := b.Uniform(name); loc >= 0 {
		b.dev.Uniform2f(loc, v.X, v.Y)
	}
}

func (b *Binding) SetVec3(name string, v math.Vec3) {
	if loc := b.Uniform(name); loc >= 0 {
		b.dev.Uniform3f(loc, v.X, v.Y, v.Z)
	}
}

func (b *Binding) SetVec4(name string, x, y, z, w float32) {
	if loc := b.Uniform(name); loc >= 0 {
		b.dev.Uniform4f(loc, x, y, z, w)
	}
}

func (b *Binding) SetInt(name string, v int32) {
	if loc := b.Uniform(name); loc >= 0 {
		b.dev.Uniform1i(loc, v)
	}
}

func (b *Binding) SetFloat(name string, v float32) {
	if loc := b.Uniform(name); loc >= 0 {
		b.dev.Uniform1f(loc, v)
	}
}

// SetBool uploads v as 0 or 1.
func (b *Binding) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	b.SetInt(name, i)
}

// Close deletes the program.
func (b *Binding) Close() {
	if b.program != 0 {
		b.dev.DeleteProgram(b.program)
		b.program = 0
	}
}
