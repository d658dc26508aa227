package scene

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/hornview/internal/surface"
	"github.com/Faultbox/hornview/pkg/math"
)

// DefaultMarkerStep is the texture translation applied per key press.
const DefaultMarkerStep = 0.05

// Direction is one of the four marker moves.
type Direction int

const (
	Left Direction = iota
	Right
	Down
	Up
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	case Up:
		return "up"
	default:
		return "unknown"
	}
}

// Marker is the texture translation, each component kept in [0, 1].
// It also places a point on the surface at (U·π, V·2π).
type Marker struct {
	U, V float32
	Step float32
}

// NewMarker creates a marker at the origin moving step per press.
func NewMarker(step float32) *Marker {
	if step <= 0 || step > 1 {
		step = DefaultMarkerStep
	}
	return &Marker{Step: step}
}

// Move shifts the marker one step and reports whether it changed.
// Left/Right move U, Down/Up move V.
func (m *Marker) Move(d Direction) bool {
	u, v := m.U, m.V
	switch d {
	case Left:
		u -= m.Step
	case Right:
		u += m.Step
	case Down:
		v -= m.Step
	case Up:
		v += m.Step
	default:
		return false
	}

	u, v = math.Clamp(u, 0, 1), math.Clamp(v, 0, 1)
	if u == m.U && v == m.V {
		return false
	}
	m.U, m.V = u, v
	return true
}

// Translation returns the marker as the shader's texture translation.
func (m *Marker) Translation() math.Vec2 {
	return math.Vec2{X: m.U, Y: m.V}
}

// Position returns the surface point under the marker for the given shape.
func (m *Marker) Position(p surface.Params) mgl64.Vec3 {
	return surface.Evaluate(float64(m.U)*gomath.Pi, float64(m.V)*2*gomath.Pi, p.A, p.B)
}

// Reset moves the marker back to the origin.
func (m *Marker) Reset() {
	m.U, m.V = 0, 0
}
