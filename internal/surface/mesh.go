package surface

// Mesh is a non-indexed triangle mesh: every triangle owns its three
// vertices and the channels line up positionally.
type Mesh struct {
	Positions []float32 // 3 per vertex
	Normals   []float32 // 3 per vertex
	TexCoords []float32 // 2 per vertex, nil unless requested

	Params     Params
	Resolution Resolution
	Bounds     Bounds

	// DegenerateFacets counts facets the normal estimator skipped while
	// building this mesh.
	DegenerateFacets int
}

// Bounds is the axis-aligned bounding box of the mesh positions.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return m.VertexCount() / 3
}

// HasTexCoords reports whether texture coordinates were generated.
func (m *Mesh) HasTexCoords() bool {
	return len(m.TexCoords) > 0
}

// Center returns the midpoint of the bounding box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

func emptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e30, 1e30, 1e30},
		Max: [3]float32{-1e30, -1e30, -1e30},
	}
}

func (b *Bounds) extend(p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}
