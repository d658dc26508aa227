package surface

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Angular sample steps for normal estimation. They are fixed so normal
// smoothness does not depend on how coarsely the mesh is tessellated.
const (
	NormalStepU = math.Pi / 30
	NormalStepV = 2 * math.Pi / 30
)

// DegenerateEpsilon is the cross-product length below which a facet is
// treated as degenerate and left out of the average.
const DegenerateEpsilon = 1e-12

// fan lists the six neighbour offsets, in units of (NormalStepU, NormalStepV),
// in the winding order the facets are formed.
var fan = [6][2]float64{
	{1, 0},
	{0, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
	{0, -1},
}

// EstimateNormal returns the unit normal at (u, v), averaged from the six
// facets of a hexagonal fan around the point.
func EstimateNormal(u, v, a, b float64) mgl64.Vec3 {
	n, _ := EstimateNormalStats(u, v, a, b)
	return n
}

// EstimateNormalStats is EstimateNormal that also reports how many of the
// six facets were skipped as degenerate.
func EstimateNormalStats(u, v, a, b float64) (mgl64.Vec3, int) {
	p0 := Evaluate(u, v, a, b)

	var edges [6]mgl64.Vec3
	for i, off := range fan {
		p := Evaluate(u+off[0]*NormalStepU, v+off[1]*NormalStepV, a, b)
		edges[i] = p.Sub(p0)
	}

	var sum mgl64.Vec3
	used := 0
	for i := range edges {
		c := edges[i].Cross(edges[(i+1)%len(edges)])
		l := c.Len()
		if l < DegenerateEpsilon || !finiteVec(c) {
			continue
		}
		sum = sum.Add(c.Mul(1 / l))
		used++
	}
	skipped := len(edges) - used

	if used > 0 {
		avg := sum.Mul(1 / float64(used))
		if l := avg.Len(); l >= DegenerateEpsilon {
			return avg.Mul(1 / l), skipped
		}
	}
	return fallbackNormal(p0), skipped
}

// fallbackNormal is used when every facet around a point collapsed, which
// happens at the poles where sin(u) is zero.
func fallbackNormal(p mgl64.Vec3) mgl64.Vec3 {
	if l := p.Len(); l >= DegenerateEpsilon && finiteVec(p) {
		return p.Mul(1 / l)
	}
	return mgl64.Vec3{0, 0, 1}
}

func finiteVec(v mgl64.Vec3) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}
