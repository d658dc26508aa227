package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/hornview/internal/engine/gpu"
	"github.com/Faultbox/hornview/internal/engine/gpu/gputest"
	"github.com/Faultbox/hornview/internal/engine/shader"
	"github.com/Faultbox/hornview/internal/surface"
)

func newBinding(t *testing.T, dev *gputest.Recorder) *shader.Binding {
	t.Helper()
	b, err := shader.New(dev, shader.Source{Vertex: "v", Fragment: "f"}, shader.Layout{
		Attributes: map[string]string{
			shader.AttribPosition: "aVertex",
			shader.AttribNormal:   "aNormal",
			shader.AttribTexCoord: "aTexCoord",
		},
	})
	require.NoError(t, err)
	return b
}

func TestNewModelDrawsNothing(t *testing.T) {
	dev := gputest.NewRecorder()
	m := New(dev, newBinding(t, dev))

	assert.Len(t, dev.Buffers, 3)
	assert.Zero(t, m.VertexCount())

	m.Draw()
	m.DrawLine()
	m.DrawPoints()
	assert.Empty(t, dev.Draws)
}

func TestUploadPositionsSetsCount(t *testing.T) {
	dev := gputest.NewRecorder()
	m := New(dev, newBinding(t, dev))

	m.UploadPositions([]float32{0, 0, 0, 1, 1, 1})
	assert.Equal(t, 2, m.VertexCount())

	m.DrawLine()
	draw, ok := dev.LastDraw()
	require.True(t, ok)
	assert.Equal(t, gpu.LineStrip, draw.Mode)
	assert.Equal(t, int32(0), draw.First)
	assert.Equal(t, int32(2), draw.Count)

	// Replacing contents replaces the count.
	m.UploadPositions(nil)
	assert.Zero(t, m.VertexCount())
}

func TestDrawBindsChannels(t *testing.T) {
	dev := gputest.NewRecorder()
	m := New(dev, newBinding(t, dev))

	mesh, err := surface.Tessellate(surface.Resolution{StepsU: 2, StepsV: 2}, surface.Params{A: 0.5, B: 2}, true)
	require.NoError(t, err)
	m.Upload(mesh)

	assert.Equal(t, 24, m.VertexCount())
	assert.Equal(t, mesh.Positions, dev.Buffers[m.positions])
	assert.Equal(t, mesh.Normals, dev.Buffers[m.normals])
	assert.Equal(t, mesh.TexCoords, dev.Buffers[m.texCoords])

	m.Draw()
	draw, ok := dev.LastDraw()
	require.True(t, ok)
	assert.Equal(t, gpu.Triangles, draw.Mode)
	assert.Equal(t, int32(24), draw.Count)

	pos, ok := dev.Attribute("aVertex")
	require.True(t, ok)
	assert.Equal(t, gputest.Attribute{Buffer: m.positions, Components: 3}, pos)

	tex, ok := dev.Attribute("aTexCoord")
	require.True(t, ok)
	assert.Equal(t, int32(2), tex.Components)
}

func TestDrawDisablesAbsentChannels(t *testing.T) {
	dev := gputest.NewRecorder()
	m := New(dev, newBinding(t, dev))

	mesh, err := surface.Tessellate(surface.Resolution{StepsU: 3, StepsV: 3}, surface.Params{A: 0.5, B: 2}, false)
	require.NoError(t, err)
	m.Upload(mesh)
	m.Draw()

	_, ok := dev.Attribute("aNormal")
	assert.True(t, ok)
	_, ok = dev.Attribute("aTexCoord")
	assert.False(t, ok, "texcoords were not uploaded")

	// Points use positions only.
	m.DrawPoints()
	_, ok = dev.Attribute("aNormal")
	assert.False(t, ok)
	draw, _ := dev.LastDraw()
	assert.Equal(t, gpu.Points, draw.Mode)
}

func TestCloseDeletesBuffers(t *testing.T) {
	dev := gputest.NewRecorder()
	m := New(dev, newBinding(t, dev))
	m.UploadPositions([]float32{1, 2, 3})

	m.Close()
	m.Close()
	assert.Empty(t, dev.Buffers)
	assert.Zero(t, m.VertexCount())
}
