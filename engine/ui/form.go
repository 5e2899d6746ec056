package ui

import "github.com/hubastard/groveui/engine/colors"

type FormKind uint8

const (
	FormRect FormKind = iota
	FormText
)

// Form is one primitive of a widget's visual description.
//
// For FormRect, X/Y is the centre of the rectangle (the renderer draws
// centred quads). For FormText, X/Y is the top-left of the text box, W is the
// measured text width and H the font size.
type Form struct {
	Kind     FormKind
	X, Y     float32
	W, H     float32
	Color    colors.Color
	Text     string
	FontSize FontSize
}

func RectForm(cx, cy, w, h float32, c colors.Color) Form {
	return Form{Kind: FormRect, X: cx, Y: cy, W: w, H: h, Color: c}
}

func TextForm(x, y, w float32, s string, size FontSize, c colors.Color) Form {
	return Form{Kind: FormText, X: x, Y: y, W: w, H: float32(size), Color: c, Text: s, FontSize: size}
}

func (f Form) Shift(dx, dy float32) Form {
	f.X += dx
	f.Y += dy
	return f
}

// Element is a collage of forms in screen coordinates, ready for a renderer.
type Element struct {
	XY    Point
	Dim   Dimensions
	Depth Depth
	Forms []Form
}
