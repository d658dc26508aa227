// Package math provides the float32 vector, matrix and quaternion types used
// to build camera and view transforms for the GPU. Surface geometry is
// computed in float64 with mgl64 and narrowed here.
package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// FromVec64 narrows a float64 surface point.
func FromVec64(v mgl64.Vec3) Vec3 {
	return Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns a unit vector, or the zero vector when v has no length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Slice appends the components to dst, the layout vertex buffers expect.
func (v Vec3) Slice(dst []float32) []float32 {
	return append(dst, v.X, v.Y, v.Z)
}
