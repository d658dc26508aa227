package surface

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var horn = Params{A: 0.5, B: 2.0}

func TestEvaluateKnownPoints(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, Evaluate(0, 0, horn.A, horn.B))

	// Equator: radius a*b, z = cos(π/2).
	p := Evaluate(math.Pi/2, 0, horn.A, horn.B)
	assert.InDelta(t, 1.0, p[0], 1e-12)
	assert.InDelta(t, 0.0, p[1], 1e-12)
	assert.InDelta(t, 0.0, p[2], 1e-12)

	p = Evaluate(math.Pi/2, math.Pi/2, horn.A, horn.B)
	assert.InDelta(t, 0.0, p[0], 1e-12)
	assert.InDelta(t, 1.0, p[1], 1e-12)
}

func TestEvaluatePeriodic(t *testing.T) {
	for _, u := range []float64{-2.1, 0, 0.3, 1.7, math.Pi, 5.5} {
		for _, v := range []float64{-1, 0, 0.9, 2.5, 4 * math.Pi} {
			base := Evaluate(u, v, horn.A, horn.B)
			shiftU := Evaluate(u+2*math.Pi, v, horn.A, horn.B)
			shiftV := Evaluate(u, v+2*math.Pi, horn.A, horn.B)
			for k := 0; k < 3; k++ {
				assert.InDelta(t, base[k], shiftU[k], 1e-9, "u period at (%v, %v)", u, v)
				assert.InDelta(t, base[k], shiftV[k], 1e-9, "v period at (%v, %v)", u, v)
			}
		}
	}
}

func TestEstimateNormalUnitLength(t *testing.T) {
	for u := 0.2; u < math.Pi-0.2; u += 0.17 {
		for v := 0.0; v < 2*math.Pi; v += 0.31 {
			n, skipped := EstimateNormalStats(u, v, horn.A, horn.B)
			assert.Zero(t, skipped, "unexpected degenerate facet at (%v, %v)", u, v)
			assert.InDelta(t, 1.0, n.Len(), 1e-5, "normal at (%v, %v)", u, v)
		}
	}
}

func TestEstimateNormalFollowsSurfaceOrientation(t *testing.T) {
	const h = 1e-6
	u, v := 1.0, 0.5
	du := Evaluate(u+h, v, horn.A, horn.B).Sub(Evaluate(u-h, v, horn.A, horn.B))
	dv := Evaluate(u, v+h, horn.A, horn.B).Sub(Evaluate(u, v-h, horn.A, horn.B))
	analytic := du.Cross(dv).Normalize()

	n := EstimateNormal(u, v, horn.A, horn.B)
	assert.Greater(t, n.Dot(analytic), 0.95)
}

func TestEstimateNormalAtPole(t *testing.T) {
	n, skipped := EstimateNormalStats(0, 0, horn.A, horn.B)
	assert.Greater(t, skipped, 0, "pole facets should be detected as degenerate")
	for k := 0; k < 3; k++ {
		assert.False(t, math.IsNaN(n[k]) || math.IsInf(n[k], 0), "component %d not finite: %v", k, n)
	}
	assert.InDelta(t, 1.0, n.Len(), 1e-9)
}

func TestEstimateNormalFullyDegenerate(t *testing.T) {
	// With a = 0 the surface collapses onto the z axis and every facet vanishes.
	n, skipped := EstimateNormalStats(1, 0, 0, horn.B)
	assert.Equal(t, 6, skipped)
	assert.InDelta(t, 0.0, n[0], 1e-12)
	assert.InDelta(t, 0.0, n[1], 1e-12)
	assert.InDelta(t, 1.0, n[2], 1e-12)

	// At u = π/2 the collapsed point is the origin itself.
	n = EstimateNormal(math.Pi/2, 0, 0, horn.B)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, n)
}

func TestTessellateVertexCount(t *testing.T) {
	tests := []struct {
		stepsU, stepsV int
	}{
		{1, 1},
		{2, 2},
		{3, 5},
		{10, 7},
	}

	for _, tt := range tests {
		res := Resolution{StepsU: tt.stepsU, StepsV: tt.stepsV}
		m, err := Tessellate(res, horn, true)
		require.NoError(t, err)

		want := 6 * tt.stepsU * tt.stepsV
		assert.Equal(t, want, m.VertexCount())
		assert.Len(t, m.Positions, want*3)
		assert.Len(t, m.Normals, want*3)
		assert.Len(t, m.TexCoords, want*2)
		assert.Equal(t, want/3, m.TriangleCount())
	}
}

func TestTessellateScenario(t *testing.T) {
	m, err := Tessellate(Resolution{StepsU: 2, StepsV: 2}, horn, true)
	require.NoError(t, err)

	assert.Len(t, m.Positions, 24*3)
	assert.Len(t, m.Normals, 24*3)
	assert.Len(t, m.TexCoords, 24*2)
	assert.Equal(t, []float32{0, 0, 1}, m.Positions[:3])

	// First cell: triangle A then triangle B, as grid-index ratios.
	assert.Equal(t, []float32{
		0, 0, 0.5, 0, 0, 0.5,
		0, 0.5, 0.5, 0, 0.5, 0.5,
	}, m.TexCoords[:12])

	assert.InDelta(t, -1, m.Bounds.Min[2], 1e-6)
	assert.InDelta(t, 1, m.Bounds.Max[2], 1e-6)
}

func TestTessellateIdempotent(t *testing.T) {
	res := Resolution{StepsU: 13, StepsV: 17}
	first, err := Tessellate(res, Params{A: 0.7, B: 1.4}, true)
	require.NoError(t, err)
	second, err := Tessellate(res, Params{A: 0.7, B: 1.4}, true)
	require.NoError(t, err)

	assert.Equal(t, first.Positions, second.Positions)
	assert.Equal(t, first.Normals, second.Normals)
	assert.Equal(t, first.TexCoords, second.TexCoords)
}

func TestTessellateMinimalGrid(t *testing.T) {
	m, err := Tessellate(Resolution{StepsU: 1, StepsV: 1}, horn, false)
	require.NoError(t, err)

	assert.Equal(t, 6, m.VertexCount())
	assert.False(t, m.HasTexCoords())
	assert.Nil(t, m.TexCoords)

	// Second corner of triangle A sits at u = π, the bottom pole.
	assert.InDelta(t, -1.0, m.Positions[5], 1e-6)
	assertFinite(t, m.Positions)
	assertFinite(t, m.Normals)
}

func TestTessellateNormalsAreFiniteUnitVectors(t *testing.T) {
	m, err := Tessellate(Resolution{StepsU: 24, StepsV: 24}, horn, false)
	require.NoError(t, err)
	assertFinite(t, m.Normals)

	for i := 0; i < len(m.Normals); i += 3 {
		n := mgl64.Vec3{float64(m.Normals[i]), float64(m.Normals[i+1]), float64(m.Normals[i+2])}
		assert.InDelta(t, 1.0, n.Len(), 1e-5, "normal %d", i/3)
	}
	assert.Greater(t, m.DegenerateFacets, 0, "grid touches the poles")
}

func TestTessellateNormalsIndependentOfResolution(t *testing.T) {
	coarse, err := Tessellate(Resolution{StepsU: 2, StepsV: 2}, horn, false)
	require.NoError(t, err)
	fine, err := Tessellate(Resolution{StepsU: 40, StepsV: 30}, horn, false)
	require.NoError(t, err)

	// Both grids start at (u, v) = (0, 0).
	assert.Equal(t, coarse.Normals[:3], fine.Normals[:3])
}

func TestTessellateRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		res  Resolution
		p    Params
	}{
		{"zero steps u", Resolution{0, 4}, horn},
		{"negative steps v", Resolution{4, -1}, horn},
		{"too many steps", Resolution{MaxSteps + 1, 4}, horn},
		{"nan a", Resolution{4, 4}, Params{A: math.NaN(), B: 2}},
		{"infinite b", Resolution{4, 4}, Params{A: 0.5, B: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Tessellate(tt.res, tt.p, true)
			assert.ErrorIs(t, err, ErrInvalidParameter)
			assert.Nil(t, m)
		})
	}
}

func assertFinite(t *testing.T, values []float32) {
	t.Helper()
	for i, f := range values {
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
			t.Fatalf("value %d is not finite: %v", i, f)
		}
	}
}
