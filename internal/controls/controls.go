// Package controls applies discrete user actions to the surface parameters,
// the tessellation resolution and the marker.
package controls

import (
	gomath "math"

	"github.com/Faultbox/hornview/internal/scene"
	"github.com/Faultbox/hornview/internal/surface"
)

// Action is a discrete user command.
type Action int

const (
	None Action = iota
	MarkerLeft
	MarkerRight
	MarkerDown
	MarkerUp
	IncreaseA
	DecreaseA
	IncreaseB
	DecreaseB
	IncreaseStepsU
	DecreaseStepsU
	IncreaseStepsV
	DecreaseStepsV
	ToggleTexture
	Export
	Screenshot
	ResetView
	Quit
)

var actionNames = map[Action]string{
	None:           "none",
	MarkerLeft:     "marker_left",
	MarkerRight:    "marker_right",
	MarkerDown:     "marker_down",
	MarkerUp:       "marker_up",
	IncreaseA:      "increase_a",
	DecreaseA:      "decrease_a",
	IncreaseB:      "increase_b",
	DecreaseB:      "decrease_b",
	IncreaseStepsU: "increase_steps_u",
	DecreaseStepsU: "decrease_steps_u",
	IncreaseStepsV: "increase_steps_v",
	DecreaseStepsV: "decrease_steps_v",
	ToggleTexture:  "toggle_texture",
	Export:         "export",
	Screenshot:     "screenshot",
	ResetView:      "reset_view",
	Quit:           "quit",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Repeatable reports whether a held key should keep applying a. Only
// marker and parameter stepping repeat; one-shot actions fire once per press.
func (a Action) Repeatable() bool {
	return a >= MarkerLeft && a <= DecreaseStepsV
}

// Effect tells the caller what to do after an action was applied.
type Effect int

const (
	EffectNone Effect = iota
	EffectRegenerate
	EffectMarker
	EffectTexture
	EffectExport
	EffectScreenshot
	EffectResetView
	EffectQuit
)

// Limits bounds the values the controls may produce.
type Limits struct {
	ParamStep float64
	AMin      float64
	AMax      float64
	BMin      float64
	BMax      float64
	StepDelta int
	MinSteps  int
	MaxSteps  int
}

// DefaultLimits keeps the surface recognisable and tessellation interactive.
func DefaultLimits() Limits {
	return Limits{
		ParamStep: 0.1,
		AMin:      0,
		AMax:      5,
		BMin:      0.1,
		BMax:      10,
		StepDelta: 4,
		MinSteps:  2,
		MaxSteps:  512,
	}
}

// Controls holds the interactive state. Its values are always valid input
// for surface.Tessellate.
type Controls struct {
	Params     surface.Params
	Resolution surface.Resolution
	Marker     *scene.Marker
	Textured   bool
	Limits     Limits
}

// New creates controls starting from the given state. Out-of-range values
// are clamped into limits.
func New(p surface.Params, res surface.Resolution, marker *scene.Marker, limits Limits) *Controls {
	if limits.MaxSteps > surface.MaxSteps || limits.MaxSteps < 1 {
		limits.MaxSteps = surface.MaxSteps
	}
	if limits.MinSteps < 1 {
		limits.MinSteps = 1
	}
	if limits.MinSteps > limits.MaxSteps {
		limits.MinSteps = limits.MaxSteps
	}

	c := &Controls{
		Params:     p,
		Resolution: res,
		Marker:     marker,
		Limits:     limits,
	}
	c.Params.A = clampParam(c.Params.A, limits.AMin, limits.AMax)
	c.Params.B = clampParam(c.Params.B, limits.BMin, limits.BMax)
	c.Resolution.StepsU = clampSteps(c.Resolution.StepsU, limits)
	c.Resolution.StepsV = clampSteps(c.Resolution.StepsV, limits)
	return c
}

// Apply performs a and reports what changed. Parameter and resolution
// changes that hit a limit report EffectNone.
func (c *Controls) Apply(a Action) Effect {
	switch a {
	case MarkerLeft:
		return c.moveMarker(scene.Left)
	case MarkerRight:
		return c.moveMarker(scene.Right)
	case MarkerDown:
		return c.moveMarker(scene.Down)
	case MarkerUp:
		return c.moveMarker(scene.Up)

	case IncreaseA:
		return c.setA(c.Params.A + c.Limits.ParamStep)
	case DecreaseA:
		return c.setA(c.Params.A - c.Limits.ParamStep)
	case IncreaseB:
		return c.setB(c.Params.B + c.Limits.ParamStep)
	case DecreaseB:
		return c.setB(c.Params.B - c.Limits.ParamStep)

	case IncreaseStepsU:
		return c.setSteps(&c.Resolution.StepsU, c.Resolution.StepsU+c.Limits.StepDelta)
	case DecreaseStepsU:
		return c.setSteps(&c.Resolution.StepsU, c.Resolution.StepsU-c.Limits.StepDelta)
	case IncreaseStepsV:
		return c.setSteps(&c.Resolution.StepsV, c.Resolution.StepsV+c.Limits.StepDelta)
	case DecreaseStepsV:
		return c.setSteps(&c.Resolution.StepsV, c.Resolution.StepsV-c.Limits.StepDelta)

	case ToggleTexture:
		c.Textured = !c.Textured
		return EffectTexture
	case Export:
		return EffectExport
	case Screenshot:
		return EffectScreenshot
	case ResetView:
		return EffectResetView
	case Quit:
		return EffectQuit
	default:
		return EffectNone
	}
}

func (c *Controls) moveMarker(d scene.Direction) Effect {
	if c.Marker == nil || !c.Marker.Move(d) {
		return EffectNone
	}
	return EffectMarker
}

func (c *Controls) setA(v float64) Effect {
	v = clampParam(round(v), c.Limits.AMin, c.Limits.AMax)
	if v == c.Params.A {
		return EffectNone
	}
	c.Params.A = v
	return EffectRegenerate
}

func (c *Controls) setB(v float64) Effect {
	v = clampParam(round(v), c.Limits.BMin, c.Limits.BMax)
	if v == c.Params.B {
		return EffectNone
	}
	c.Params.B = v
	return EffectRegenerate
}

func (c *Controls) setSteps(field *int, v int) Effect {
	v = clampSteps(v, c.Limits)
	if v == *field {
		return EffectNone
	}
	*field = v
	return EffectRegenerate
}

// round trims accumulated float error so repeated steps land on tidy values.
func round(v float64) float64 {
	return gomath.Round(v*1e6) / 1e6
}

func clampParam(v, lo, hi float64) float64 {
	if gomath.IsNaN(v) {
		return lo
	}
	return gomath.Max(lo, gomath.Min(hi, v))
}

func clampSteps(v int, l Limits) int {
	return max(l.MinSteps, min(l.MaxSteps, v))
}
