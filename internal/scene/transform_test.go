package scene

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/hornview/pkg/math"
)

func assertMatNear(t *testing.T, want, got math.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "element %d", i)
	}
}

func TestComposeOrder(t *testing.T) {
	view := math.RotateAxis(math.Vec3{Y: 1}, 0.4)
	tr := Compose(view, 1.5)

	p := math.Perspective(gomath.Pi/8, 1.5, 8, 12)
	c := math.Translate(0, 0, -10).Mul(math.RotateAxis(math.Vec3{X: 0.707, Y: 0.707}, 0.7))
	assertMatNear(t, p.Mul(c).Mul(view), tr.MVP)
	assertMatNear(t, p, tr.Projection)
}

func TestComposeCentersOriginInFrustum(t *testing.T) {
	tr := Compose(math.Identity(), 1)

	// The origin lands 10 units in front of the camera, between near and far.
	eye := tr.ModelView.TransformPoint(math.Vec3{})
	assert.InDelta(t, -10.0, eye.Z, 1e-5)
	assert.Greater(t, -eye.Z, float32(8))
	assert.Less(t, -eye.Z, float32(12))
}

func TestComposeNormalMatrix(t *testing.T) {
	assertMatNear(t, math.Identity(), Compose(math.Identity(), 1).NormalMatrix)

	// For a pure rotation the inverse transpose is the rotation itself.
	view := math.RotateAxis(math.Vec3{X: 1, Z: 1}, 1.1)
	assertMatNear(t, view, Compose(view, 1).NormalMatrix)

	// Singular views fall back to identity.
	assertMatNear(t, math.Identity(), Compose(math.Mat4{}, 1).NormalMatrix)
}

func TestComposeRejectsBadAspect(t *testing.T) {
	want := Compose(math.Identity(), 1)
	for _, aspect := range []float32{0, -2, float32(gomath.NaN()), float32(gomath.Inf(1))} {
		assert.Equal(t, want, Compose(math.Identity(), aspect))
	}
}
