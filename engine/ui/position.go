package ui

import "github.com/chewxy/math32"

// Point is an x/y pair in pixels. Y grows downward.
type Point [2]float32

// Dimensions is a width/height pair in pixels.
type Dimensions [2]float32

// Depth orders elements; greater depth is drawn further back.
type Depth float32

// FontSize is a label height in pixels.
type FontSize uint32

func (p Point) Add(o Point) Point { return Point{p[0] + o[0], p[1] + o[1]} }
func (p Point) Sub(o Point) Point { return Point{p[0] - o[0], p[1] - o[1]} }
func (p Point) Floor() Point      { return Point{math32.Floor(p[0]), math32.Floor(p[1])} }

type HorizontalAlign uint8

const (
	AlignLeft HorizontalAlign = iota
	AlignMiddleX
	AlignRight
)

type VerticalAlign uint8

const (
	AlignTop VerticalAlign = iota
	AlignMiddleY
	AlignBottom
)

type Direction uint8

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight
)

type positionKind uint8

const (
	posAbsolute positionKind = iota
	posRelative
	posDirection
)

// Position is a placement request. It is resolved against the previously
// placed widget by ResolvePosition.
type Position struct {
	kind positionKind
	xy   Point
	dir  Direction
	pad  float32
}

// Absolute places the widget's top-left at (x, y) in window coordinates.
func Absolute(x, y float32) Position { return Position{kind: posAbsolute, xy: Point{x, y}} }

// Relative offsets the widget's top-left from the previous widget's top-left.
func Relative(dx, dy float32) Position { return Position{kind: posRelative, xy: Point{dx, dy}} }

func Down(pad float32) Position  { return Position{kind: posDirection, dir: DirDown, pad: pad} }
func Up(pad float32) Position    { return Position{kind: posDirection, dir: DirUp, pad: pad} }
func Left(pad float32) Position  { return Position{kind: posDirection, dir: DirLeft, pad: pad} }
func Right(pad float32) Position { return Position{kind: posDirection, dir: DirRight, pad: pad} }

// Rect is a placed widget rectangle.
type Rect struct {
	XY  Point
	Dim Dimensions
}

// ResolvePosition turns a placement request into a top-left screen position.
// prev is the previously placed widget; when hasPrev is false, directional
// and relative placements start from origin.
func ResolvePosition(pos Position, dim Dimensions, h HorizontalAlign, v VerticalAlign, prev Rect, hasPrev bool, origin Point) Point {
	switch pos.kind {
	case posAbsolute:
		return pos.xy
	case posRelative:
		if !hasPrev {
			return origin.Add(pos.xy)
		}
		return prev.XY.Add(pos.xy)
	}

	if !hasPrev {
		return origin
	}
	switch pos.dir {
	case DirUp:
		return Point{alignX(h, prev, dim), prev.XY[1] - pos.pad - dim[1]}
	case DirLeft:
		return Point{prev.XY[0] - pos.pad - dim[0], alignY(v, prev, dim)}
	case DirRight:
		return Point{prev.XY[0] + prev.Dim[0] + pos.pad, alignY(v, prev, dim)}
	default:
		return Point{alignX(h, prev, dim), prev.XY[1] + prev.Dim[1] + pos.pad}
	}
}

func alignX(h HorizontalAlign, prev Rect, dim Dimensions) float32 {
	switch h {
	case AlignMiddleX:
		return prev.XY[0] + (prev.Dim[0]-dim[0])/2
	case AlignRight:
		return prev.XY[0] + prev.Dim[0] - dim[0]
	default:
		return prev.XY[0]
	}
}

func alignY(v VerticalAlign, prev Rect, dim Dimensions) float32 {
	switch v {
	case AlignMiddleY:
		return prev.XY[1] + (prev.Dim[1]-dim[1])/2
	case AlignBottom:
		return prev.XY[1] + prev.Dim[1] - dim[1]
	default:
		return prev.XY[1]
	}
}

// IsOverRect reports whether point lies inside the rectangle spanning
// origin..origin+dim, edges included.
func IsOverRect(origin, point Point, dim Dimensions) bool {
	x, y := point[0]-origin[0], point[1]-origin[1]
	return x >= 0 && x <= dim[0] && y >= 0 && y <= dim[1]
}
