// Package model owns the GPU buffers of one non-indexed mesh and draws it
// through a shader binding.
package model

import (
	"github.com/Faultbox/hornview/internal/engine/gpu"
	"github.com/Faultbox/hornview/internal/engine/shader"
	"github.com/Faultbox/hornview/internal/surface"
)

// Model holds one buffer per vertex channel.
type Model struct {
	dev     gpu.Device
	binding *shader.Binding

	positions gpu.Buffer
	normals   gpu.Buffer
	texCoords gpu.Buffer

	count       int32
	hasNormals  bool
	hasTexCoord bool
}

// New creates the position, normal and texcoord buffers. They start empty.
func New(dev gpu.Device, binding *shader.Binding) *Model {
	return &Model{
		dev:       dev,
		binding:   binding,
		positions: dev.CreateBuffer(),
		normals:   dev.CreateBuffer(),
		texCoords: dev.CreateBuffer(),
	}
}

// VertexCount is the number of vertices the next draw will submit.
func (m *Model) VertexCount() int {
	return int(m.count)
}

// UploadPositions replaces the xyz position data and resets the vertex count.
func (m *Model) UploadPositions(data []float32) {
	m.dev.BufferData(m.positions, data)
	m.count = int32(len(data) / 3)
}

// UploadNormals replaces the xyz normal data.
func (m *Model) UploadNormals(data []float32) {
	m.dev.BufferData(m.normals, data)
	m.hasNormals = len(data) > 0
}

// UploadTexCoords replaces the uv data.
func (m *Model) UploadTexCoords(data []float32) {
	m.dev.BufferData(m.texCoords, data)
	m.hasTexCoord = len(data) > 0
}

// Upload replaces every channel with the mesh's data. Channels the mesh
// lacks are emptied so stale data is never drawn.
func (m *Model) Upload(mesh *surface.Mesh) {
	m.UploadPositions(mesh.Positions)
	m.UploadNormals(mesh.Normals)
	m.UploadTexCoords(mesh.TexCoords)
}

// Draw renders the buffers as a triangle list.
func (m *Model) Draw() {
	m.draw(gpu.Triangles, true)
}

// DrawLine renders the positions as a connected line strip.
func (m *Model) DrawLine() {
	m.draw(gpu.LineStrip, false)
}

// DrawPoints renders each position as a point.
func (m *Model) DrawPoints() {
	m.draw(gpu.Points, false)
}

func (m *Model) draw(mode gpu.Primitive, surfaceChannels bool) {
	if m.count == 0 {
		return
	}

	m.dev.BindAttribute(m.binding.Attrib(shader.AttribPosition), m.positions, 3)

	normalLoc := m.binding.Attrib(shader.AttribNormal)
	if surfaceChannels && m.hasNormals {
		m.dev.BindAttribute(normalLoc, m.normals, 3)
	} else {
		m.dev.DisableAttribute(normalLoc)
	}

	texLoc := m.binding.Attrib(shader.AttribTexCoord)
	if surfaceChannels && m.hasTexCoord {
		m.dev.BindAttribute(texLoc, m.texCoords, 2)
	} else {
		m.dev.DisableAttribute(texLoc)
	}

	m.dev.DrawArrays(mode, 0, m.count)
}

// Close deletes the buffers. The model must not be used afterwards.
func (m *Model) Close() {
	if m.dev == nil {
		return
	}
	m.dev.DeleteBuffer(m.positions)
	m.dev.DeleteBuffer(m.normals)
	m.dev.DeleteBuffer(m.texCoords)
	m.dev = nil
	m.count = 0
}
