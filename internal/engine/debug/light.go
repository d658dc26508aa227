// Package debug provides debug geometry and screenshot capture.
package debug

import (
	gomath "math"

	"github.com/Faultbox/hornview/pkg/math"
)

// LightDirection returns the animated light direction at elapsed seconds.
// It swings up and down along Y while X and Z stay fixed.
func LightDirection(elapsed float64) math.Vec3 {
	return math.Vec3{X: 1, Y: float32(gomath.Sin(elapsed)), Z: 1}
}

// LightAxis returns a two-vertex line strip from the origin to the light
// direction at elapsed seconds.
func LightAxis(elapsed float64) []float32 {
	d := LightDirection(elapsed)
	return []float32{0, 0, 0, d.X, d.Y, d.Z}
}
