// Package export writes tessellated meshes as binary glTF.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/hornview/internal/surface"
)

// ErrEmptyMesh is returned for a nil mesh or one without vertices.
var ErrEmptyMesh = errors.New("mesh has no vertices")

// Generator is recorded in the asset block of every exported document.
const Generator = "hornview"

// Document builds a glTF document holding mesh as one non-indexed triangle
// primitive with POSITION, NORMAL and, when present, TEXCOORD_0.
func Document(mesh *surface.Mesh) (*gltf.Document, error) {
	if mesh == nil || mesh.VertexCount() == 0 {
		return nil, ErrEmptyMesh
	}
	if len(mesh.Normals) != len(mesh.Positions) {
		return nil, fmt.Errorf("normal count %d does not match position count %d",
			len(mesh.Normals)/3, mesh.VertexCount())
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = Generator

	attrs := map[string]int{
		gltf.POSITION: modeler.WritePosition(doc, vec3s(mesh.Positions)),
		gltf.NORMAL:   modeler.WriteNormal(doc, vec3s(mesh.Normals)),
	}
	if mesh.HasTexCoords() {
		attrs[gltf.TEXCOORD_0] = modeler.WriteTextureCoord(doc, vec2s(mesh.TexCoords))
	}

	// The horn is an open surface; both sides are visible.
	doc.Materials = []*gltf.Material{{
		Name:        "surface",
		DoubleSided: true,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(0.8),
		},
	}}

	prim := &gltf.Primitive{
		Attributes: attrs,
		Mode:       gltf.PrimitiveTriangles,
		Material:   gltf.Index(0),
	}
	doc.Meshes = []*gltf.Mesh{{
		Name:       meshName(mesh),
		Primitives: []*gltf.Primitive{prim},
		Extras: map[string]any{
			"a":       mesh.Params.A,
			"b":       mesh.Params.B,
			"steps_u": mesh.Resolution.StepsU,
			"steps_v": mesh.Resolution.StepsV,
		},
	}}
	doc.Nodes = []*gltf.Node{{Name: "surface", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return doc, nil
}

// WriteGLB writes mesh to path as a .glb file, creating parent directories.
func WriteGLB(path string, mesh *surface.Mesh) error {
	doc, err := Document(mesh)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

func meshName(m *surface.Mesh) string {
	return fmt.Sprintf("horn_a%g_b%g_%dx%d", m.Params.A, m.Params.B, m.Resolution.StepsU, m.Resolution.StepsV)
}

func vec3s(flat []float32) [][3]float32 {
	out := make([][3]float32, len(flat)/3)
	for i := range out {
		out[i] = [3]float32{flat[i*3], flat[i*3+1], flat[i*3+2]}
	}
	return out
}

func vec2s(flat []float32) [][2]float32 {
	out := make([][2]float32, len(flat)/2)
	for i := range out {
		out[i] = [2]float32{flat[i*2], flat[i*2+1]}
	}
	return out
}
