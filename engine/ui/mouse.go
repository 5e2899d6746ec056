package ui

import "math"

type ButtonState uint8

const (
	ButtonUp ButtonState = iota
	ButtonDown
)

func (b ButtonState) String() string {
	if b == ButtonDown {
		return "down"
	}
	return "up"
}

// Mouse is the pointer as seen by one widget for one frame.
type Mouse struct {
	XY   Point
	Left ButtonState
}

// RelativeTo returns the mouse with XY expressed relative to xy.
func (m Mouse) RelativeTo(xy Point) Mouse {
	m.XY = m.XY.Sub(xy)
	return m
}

// farAway is handed to widgets that do not own a captured mouse.
var farAway = Mouse{XY: Point{math.MaxFloat32, math.MaxFloat32}, Left: ButtonUp}
