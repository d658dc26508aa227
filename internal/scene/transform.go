package scene

import (
	gomath "math"

	"github.com/Faultbox/hornview/pkg/math"
)

// Fixed projection and centering used for every frame.
const (
	FieldOfView = float32(gomath.Pi / 8)
	NearPlane   = float32(8)
	FarPlane    = float32(12)

	centeringDistance = float32(10)
	centeringAngle    = float32(0.7)
)

var centeringAxis = math.Vec3{X: 0.707, Y: 0.707}

// Transforms holds the matrices uploaded for one frame.
type Transforms struct {
	Projection   math.Mat4
	ModelView    math.Mat4
	MVP          math.Mat4
	NormalMatrix math.Mat4
}

// Compose combines the trackball view with the fixed centering and projection.
// The normal matrix is the inverse transpose of view alone; a singular view
// falls back to identity.
func Compose(view math.Mat4, aspect float32) Transforms {
	if aspect <= 0 || gomath.IsNaN(float64(aspect)) || gomath.IsInf(float64(aspect), 0) {
		aspect = 1
	}

	projection := math.Perspective(FieldOfView, aspect, NearPlane, FarPlane)
	rotate := math.RotateAxis(centeringAxis, centeringAngle)
	translate := math.Translate(0, 0, -centeringDistance)
	modelView := translate.Mul(rotate.Mul(view))

	inv, _ := view.Inverse()

	return Transforms{
		Projection:   projection,
		ModelView:    modelView,
		MVP:          projection.Mul(modelView),
		NormalMatrix: inv.Transpose(),
	}
}
