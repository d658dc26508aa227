package surface

import (
	"fmt"
	"math"
)

// corners are the six grid corners of one cell, as (di, dj) offsets from
// the cell's lower-left index. Triangle A then triangle B.
var corners = [6][2]int{
	{0, 0}, {1, 0}, {0, 1},
	{0, 1}, {1, 0}, {1, 1},
}

// Tessellate walks a regular (u, v) grid over u in [0, π] and v in [0, 2π]
// and emits two triangles per cell, row-major over (i, j). The result is a
// pure function of its inputs, so repeated calls are bit-identical.
//
// Texture coordinates are grid-index ratios of each corner.
func Tessellate(res Resolution, p Params, wantTexCoords bool) (*Mesh, error) {
	if err := res.Validate(); err != nil {
		return nil, fmt.Errorf("tessellate: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("tessellate: %w", err)
	}

	n := res.VertexCount()
	m := &Mesh{
		Positions:  make([]float32, 0, n*3),
		Normals:    make([]float32, 0, n*3),
		Params:     p,
		Resolution: res,
		Bounds:     emptyBounds(),
	}
	if wantTexCoords {
		m.TexCoords = make([]float32, 0, n*2)
	}

	stepsU := float64(res.StepsU)
	stepsV := float64(res.StepsV)
	uStep := math.Pi / stepsU
	vStep := 2 * math.Pi / stepsV

	for i := 0; i < res.StepsU; i++ {
		u := float64(i) / stepsU * math.Pi
		for j := 0; j < res.StepsV; j++ {
			v := float64(j) / stepsV * 2 * math.Pi

			for _, c := range corners {
				cu := u + float64(c[0])*uStep
				cv := v + float64(c[1])*vStep

				pos := Evaluate(cu, cv, p.A, p.B)
				nrm, skipped := EstimateNormalStats(cu, cv, p.A, p.B)
				m.DegenerateFacets += skipped

				p32 := [3]float32{float32(pos[0]), float32(pos[1]), float32(pos[2])}
				m.Positions = append(m.Positions, p32[0], p32[1], p32[2])
				m.Normals = append(m.Normals, float32(nrm[0]), float32(nrm[1]), float32(nrm[2]))
				m.Bounds.extend(p32)

				if wantTexCoords {
					m.TexCoords = append(m.TexCoords,
						float32(float64(i+c[0])/stepsU),
						float32(float64(j+c[1])/stepsV),
					)
				}
			}
		}
	}

	return m, nil
}
