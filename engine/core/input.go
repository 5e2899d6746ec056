package core

import "github.com/hubastard/groveui/engine/ui"

// Input tracks the keyboard, cursor and mouse buttons from the event stream.
type Input struct {
	keys           map[Key]bool
	buttons        map[MouseButton]bool
	mouseX, mouseY float64
}

func NewInput() *Input {
	return &Input{keys: map[Key]bool{}, buttons: map[MouseButton]bool{}}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		in.buttons[e.Button] = e.Down
	}
}

func (in *Input) IsKeyDown(k Key) bool            { return in.keys[k] }
func (in *Input) IsButtonDown(b MouseButton) bool { return in.buttons[b] }
func (in *Input) Mouse() (float64, float64)       { return in.mouseX, in.mouseY }

// UIMouse is the pointer as the UI context consumes it.
func (in *Input) UIMouse() ui.Mouse {
	left := ui.ButtonUp
	if in.buttons[MouseLeft] {
		left = ui.ButtonDown
	}
	return ui.Mouse{XY: ui.Point{float32(in.mouseX), float32(in.mouseY)}, Left: left}
}
