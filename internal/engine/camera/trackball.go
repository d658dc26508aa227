// Package camera provides the trackball that turns mouse drags into a view rotation.
package camera

import (
	gomath "math"

	"github.com/charmbracelet/harmonica"

	"github.com/Faultbox/hornview/pkg/math"
)

// Default trackball settings.
const (
	DefaultSensitivity = 0.01 // radians per pixel
	DefaultFPS         = 60

	// Spring frequency and damping used to decay spin velocity.
	// Damping 1.0 is critically damped: the spin slows without reversing.
	springFrequency = 4.0
	springDamping   = 1.0

	// Spin below this many radians per frame stops.
	restThreshold = 1e-5
)

// Trackball accumulates drag rotations into a quaternion and keeps spinning
// after release, slowing down on a spring.
type Trackball struct {
	Sensitivity float32
	Inertia     bool

	rotation math.Quat
	axis     math.Vec3
	velocity float64 // radians per frame
	accel    float64 // spring's internal velocity for the decay
	spring   harmonica.Spring
	dragging bool
	fps      int
}

// NewTrackball creates a trackball updated fps times per second.
func NewTrackball(fps int, sensitivity float32, inertia bool) *Trackball {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	return &Trackball{
		Sensitivity: sensitivity,
		Inertia:     inertia,
		rotation:    math.QuatIdentity(),
		spring:      harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		fps:         fps,
	}
}

// Drag rotates by a mouse movement of (dx, dy) pixels. Horizontal motion
// turns about the screen Y axis, vertical motion about the screen X axis.
func (t *Trackball) Drag(dx, dy float32) {
	t.dragging = true

	dist := float32(gomath.Hypot(float64(dx), float64(dy)))
	if dist == 0 {
		return
	}

	angle := dist * t.Sensitivity
	t.axis = math.Vec3{X: dy, Y: dx}
	t.rotate(t.axis, angle)

	t.velocity = float64(angle)
	t.accel = 0
}

// Release ends the drag. With inertia enabled the last drag keeps spinning.
func (t *Trackball) Release() {
	t.dragging = false
	if !t.Inertia {
		t.stop()
	}
}

// Update advances one frame of inertial spin.
func (t *Trackball) Update() {
	if t.velocity == 0 {
		return
	}

	// A held button without motion bleeds off velocity but does not spin.
	if !t.dragging {
		t.rotate(t.axis, float32(t.velocity))
	}

	t.velocity, t.accel = t.spring.Update(t.velocity, t.accel, 0)
	if gomath.Abs(t.velocity) < restThreshold {
		t.stop()
	}
}

// Spinning reports whether the trackball is still moving on its own.
func (t *Trackball) Spinning() bool {
	return !t.dragging && t.velocity != 0
}

// Rotation returns the accumulated rotation.
func (t *Trackball) Rotation() math.Quat {
	return t.rotation
}

// ViewMatrix returns the rotation as a view matrix.
func (t *Trackball) ViewMatrix() math.Mat4 {
	return t.rotation.ToMat4()
}

// Reset returns to the identity orientation and stops any spin.
func (t *Trackball) Reset() {
	t.rotation = math.QuatIdentity()
	t.dragging = false
	t.stop()
}

func (t *Trackball) rotate(axis math.Vec3, angle float32) {
	// Rotations are applied in view space, after the current orientation.
	t.rotation = math.QuatFromAxisAngle(axis, angle).Mul(t.rotation).Normalize()
}

func (t *Trackball) stop() {
	t.velocity = 0
	t.accel = 0
}
