// Package surface turns the closed-form horn surface into a renderable
// triangle mesh: point evaluation, numerically estimated normals and a
// regular (u, v) grid tessellator.
package surface

import (
	"errors"
	"fmt"
	"math"
)

// MaxSteps bounds each tessellation axis.
const MaxSteps = 4096

// ErrInvalidParameter is returned when shape or resolution values are
// rejected before any geometry is generated.
var ErrInvalidParameter = errors.New("invalid surface parameter")

// Params are the scalars that control the surface's form.
// B > 1 avoids self-intersection but is not enforced.
type Params struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
}

// Resolution is the number of grid subdivisions along u and v.
type Resolution struct {
	StepsU int `yaml:"steps_u"`
	StepsV int `yaml:"steps_v"`
}

// Validate reports whether both shape parameters are finite.
func (p Params) Validate() error {
	if !finite(p.A) {
		return fmt.Errorf("%w: a=%v is not finite", ErrInvalidParameter, p.A)
	}
	if !finite(p.B) {
		return fmt.Errorf("%w: b=%v is not finite", ErrInvalidParameter, p.B)
	}
	return nil
}

// Validate reports whether both step counts are within [1, MaxSteps].
func (r Resolution) Validate() error {
	if r.StepsU < 1 || r.StepsU > MaxSteps {
		return fmt.Errorf("%w: steps_u=%d outside [1, %d]", ErrInvalidParameter, r.StepsU, MaxSteps)
	}
	if r.StepsV < 1 || r.StepsV > MaxSteps {
		return fmt.Errorf("%w: steps_v=%d outside [1, %d]", ErrInvalidParameter, r.StepsV, MaxSteps)
	}
	return nil
}

// VertexCount is the number of vertices a mesh at this resolution holds:
// two triangles per grid cell, six independent vertices per cell.
func (r Resolution) VertexCount() int {
	return 6 * r.StepsU * r.StepsV
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
