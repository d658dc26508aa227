package surface

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Evaluate maps the parameters (u, v) to a point on the surface with shape
// parameters a and b. It is pure and periodic in both u and v with period 2π.
func Evaluate(u, v, a, b float64) mgl64.Vec3 {
	su, cu := math.Sincos(u)
	sv, cv := math.Sincos(v)
	r := a * (b - cu) * su
	return mgl64.Vec3{r * cv, r * sv, cu}
}
