// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/hornview/internal/controls"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventDrag
	EventRelease
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Action controls.Action // mapped from Key for EventKeyDown
	Width  int
	Height int
	DX, DY float32 // drag delta in pixels
}

// KeyMap binds scancodes to actions.
type KeyMap map[sdl.Scancode]controls.Action

// DefaultKeyMap returns the built-in bindings: arrows move the marker,
// Q/A W/S change a and b, E/D R/F change the u and v steps.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		sdl.SCANCODE_LEFT:  controls.MarkerLeft,
		sdl.SCANCODE_RIGHT: controls.MarkerRight,
		sdl.SCANCODE_DOWN:  controls.MarkerDown,
		sdl.SCANCODE_UP:    controls.MarkerUp,

		sdl.SCANCODE_Q: controls.IncreaseA,
		sdl.SCANCODE_A: controls.DecreaseA,
		sdl.SCANCODE_W: controls.IncreaseB,
		sdl.SCANCODE_S: controls.DecreaseB,
		sdl.SCANCODE_E: controls.IncreaseStepsU,
		sdl.SCANCODE_D: controls.DecreaseStepsU,
		sdl.SCANCODE_R: controls.IncreaseStepsV,
		sdl.SCANCODE_F: controls.DecreaseStepsV,

		sdl.SCANCODE_T:      controls.ToggleTexture,
		sdl.SCANCODE_G:      controls.Export,
		sdl.SCANCODE_F12:    controls.Screenshot,
		sdl.SCANCODE_SPACE:  controls.ResetView,
		sdl.SCANCODE_ESCAPE: controls.Quit,
	}
}

// Input polls SDL and translates events.
type Input struct {
	keys     KeyMap
	events   []Event
	dragging bool
}

// New creates an input handler using keys.
func New(keys KeyMap) *Input {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	return &Input{
		keys:   keys,
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them.
// Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			action := i.keys[e.Keysym.Scancode]
			// Held keys repeat only for stepping actions.
			if e.Repeat != 0 && !action.Repeatable() {
				continue
			}
			i.events = append(i.events, Event{
				Type:   EventKeyDown,
				Key:    e.Keysym.Scancode,
				Action: action,
			})

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			if e.State == sdl.PRESSED {
				i.dragging = true
			} else if i.dragging {
				i.dragging = false
				i.events = append(i.events, Event{Type: EventRelease})
			}

		case *sdl.MouseMotionEvent:
			if i.dragging {
				i.events = append(i.events, Event{
					Type: EventDrag,
					DX:   float32(e.XRel),
					DY:   float32(e.YRel),
				})
			}
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

