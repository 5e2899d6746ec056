package ui

import (
	"strings"

	"github.com/chewxy/math32"
	"github.com/hubastard/groveui/engine/colors"
)

// SliderKind is the kind name sliders are stored under.
const SliderKind = "Slider"

const labelPadding = 10

// Interaction is how the pointer currently relates to a widget.
type Interaction uint8

const (
	Normal Interaction = iota
	Highlighted
	Clicked
)

func (i Interaction) String() string {
	switch i {
	case Highlighted:
		return "highlighted"
	case Clicked:
		return "clicked"
	default:
		return "normal"
	}
}

// Slider selects a value in [min, max]. It is horizontal when wider than it
// is tall and vertical otherwise. Its reaction fires when the value changes
// or when the button is pressed or released while over it.
//
// Slider is a value type: every setter returns an updated copy.
type Slider[T Float] struct {
	value, min, max T
	pos             Position
	hAlign          *HorizontalAlign
	vAlign          *VerticalAlign
	dim             Dimensions
	depth           Depth
	react           func(T)
	label           string
	style           SliderStyle
	enabled         bool
}

// SliderStyle holds per-instance overrides. Nil fields fall back to the theme.
type SliderStyle struct {
	Color         *colors.Color
	Frame         *float32
	FrameColor    *colors.Color
	LabelColor    *colors.Color
	LabelFontSize *FontSize
}

// SliderState is what survives between frames. It is replaced, never mutated.
type SliderState[T Float] struct {
	Value, Min, Max T
	// Label is owned by the state; it never aliases the caller's buffer.
	Label       string
	Interaction Interaction
}

func NewSlider[T Float](value, min, max T) Slider[T] {
	return Slider[T]{
		value:   value,
		min:     min,
		max:     max,
		pos:     Down(20),
		dim:     Dimensions{192, 48},
		enabled: true,
	}
}

func (s Slider[T]) Value(v T) Slider[T]            { s.value = v; return s }
func (s Slider[T]) Range(min, max T) Slider[T]     { s.min, s.max = min, max; return s }
func (s Slider[T]) Position(p Position) Slider[T]  { s.pos = p; return s }
func (s Slider[T]) XY(x, y float32) Slider[T]      { s.pos = Absolute(x, y); return s }
func (s Slider[T]) Dim(w, h float32) Slider[T]     { s.dim = Dimensions{w, h}; return s }
func (s Slider[T]) Width(w float32) Slider[T]      { s.dim[0] = w; return s }
func (s Slider[T]) Height(h float32) Slider[T]     { s.dim[1] = h; return s }
func (s Slider[T]) Depth(d Depth) Slider[T]        { s.depth = d; return s }
func (s Slider[T]) Enabled(flag bool) Slider[T]    { s.enabled = flag; return s }
func (s Slider[T]) React(fn func(T)) Slider[T]     { s.react = fn; return s }
func (s Slider[T]) Label(text string) Slider[T]    { s.label = text; return s }
func (s Slider[T]) Color(c colors.Color) Slider[T] { s.style.Color = &c; return s }
func (s Slider[T]) Frame(w float32) Slider[T]      { s.style.Frame = &w; return s }

func (s Slider[T]) HAlign(a HorizontalAlign) Slider[T] { s.hAlign = &a; return s }
func (s Slider[T]) VAlign(a VerticalAlign) Slider[T]   { s.vAlign = &a; return s }

func (s Slider[T]) FrameColor(c colors.Color) Slider[T] { s.style.FrameColor = &c; return s }
func (s Slider[T]) LabelColor(c colors.Color) Slider[T] { s.style.LabelColor = &c; return s }
func (s Slider[T]) LabelFontSize(size FontSize) Slider[T] {
	s.style.LabelFontSize = &size
	return s
}

func (s Slider[T]) Kind() string { return SliderKind }

func (s Slider[T]) InitState() SliderState[T] {
	return SliderState[T]{Value: s.value, Min: s.min, Max: s.max, Interaction: Normal}
}

func (s Slider[T]) Style() SliderStyle { return s.style }

// classify maps the pointer relationship for this frame to an interaction.
// A press that lands while the slider is still Normal stays Normal for one
// frame, so a click that starts elsewhere and slides in never grabs it.
// Once Clicked, the slider keeps the pointer while the button is held, even
// outside its bounds.
func classify(isOver bool, prev Interaction, left ButtonState) Interaction {
	switch {
	case isOver && prev == Normal && left == ButtonDown:
		return Normal
	case isOver && left == ButtonDown:
		return Clicked
	case isOver && left == ButtonUp:
		return Highlighted
	case !isOver && prev == Clicked && left == ButtonDown:
		return Clicked
	default:
		return Normal
	}
}

// Update runs one frame of the slider against its previous state. It
// returns a replacement state only when something the draw depends on
// changed; the geometry is always returned.
func (s Slider[T]) Update(prev WidgetState[SliderState[T]], style SliderStyle, env UpdateEnv) (*SliderState[T], Geometry) {
	theme := env.Theme()
	state := prev.State
	dim := s.dim

	hAlign, vAlign := theme.Align.Horizontal, theme.Align.Vertical
	if s.hAlign != nil {
		hAlign = *s.hAlign
	}
	if s.vAlign != nil {
		vAlign = *s.vAlign
	}
	xy := env.ScreenPosition(s.pos, dim, hAlign, vAlign)
	mouse := env.Mouse().RelativeTo(xy)
	isOver := IsOverRect(Point{}, mouse.XY, dim)

	interaction := Normal
	if s.enabled {
		interaction = classify(isOver, state.Interaction, mouse.Left)
	}

	frame := style.FrameOf(theme)
	innerW, innerH := dim[0]-frame*2, dim[1]-frame*2

	dragging := interaction == Clicked &&
		(state.Interaction == Clicked || (isOver && state.Interaction == Highlighted))

	var newValue T
	if dim[0] > dim[1] {
		newValue = s.valueAlong(dragging, mouse.XY[0]-frame, innerW)
	} else {
		// Vertical sliders grow upward from the bottom interior edge.
		newValue = s.valueAlong(dragging, frame+innerH-mouse.XY[1], innerH)
	}

	var next *SliderState[T]
	if state.Interaction != interaction ||
		state.Value != s.value ||
		state.Min != s.min || state.Max != s.max ||
		state.Label != s.label {
		next = &SliderState[T]{
			Value:       s.value,
			Min:         s.min,
			Max:         s.max,
			Label:       strings.Clone(s.label),
			Interaction: interaction,
		}
	}

	if s.react != nil && (newValue != s.value || pressedOrReleased(state.Interaction, interaction)) {
		s.react(newValue)
	}

	return next, Geometry{XY: xy, Dim: dim, Depth: s.depth}
}

// valueAlong computes the slider value from an extent along an interior of
// the given length. While dragging the extent comes from the pointer,
// otherwise from the configured value. Without an interior there is no
// extent and the configured value is only clamped.
func (s Slider[T]) valueAlong(dragging bool, pointer, length float32) T {
	if length <= 0 {
		return clampValue(s.value, s.min, s.max)
	}
	var extent float32
	if dragging {
		extent = clampf(pointer, 0, length)
	} else {
		// An in-range value maps onto itself within float32 precision, so
		// the round trip is skipped and rounding noise never fires the
		// reaction.
		if inRange(s.value, s.min, s.max) {
			return s.value
		}
		extent = clampf(percentage(s.value, s.min, s.max)*length, 0, length)
	}
	return valueFromPerc(extent/length, s.min, s.max)
}

func pressedOrReleased(prev, next Interaction) bool {
	return (prev == Highlighted && next == Clicked) || (prev == Clicked && next == Highlighted)
}

func (s Slider[T]) Draw(state WidgetState[SliderState[T]], style SliderStyle, env DrawEnv) Element {
	return DrawSlider(state, style, env)
}

// CapturesMouse reports whether the slider holds the pointer.
func (st SliderState[T]) CapturesMouse() bool { return st.Interaction == Clicked }

func (st SliderState[T]) color(c colors.Color) colors.Color {
	switch st.Interaction {
	case Highlighted:
		return c.Highlighted()
	case Clicked:
		return c.Clicked()
	default:
		return c
	}
}

// DrawSlider builds the slider's visual description from its persisted state
// alone: a frame-coloured backdrop, a fill proportional to the value and an
// optional label.
func DrawSlider[T Float](state WidgetState[SliderState[T]], style SliderStyle, env DrawEnv) Element {
	theme := env.Theme()
	st := state.State
	dim := state.Dim
	xy := state.XY

	frame := style.FrameOf(theme)
	innerW := math32.Max(0, dim[0]-frame*2)
	innerH := math32.Max(0, dim[1]-frame*2)
	frameColor := st.color(style.FrameColorOf(theme))
	fillColor := st.color(style.ColorOf(theme))

	horizontal := dim[0] > dim[1]
	perc := percentage(st.Value, st.Min, st.Max)
	cx, cy := dim[0]/2, dim[1]/2

	var fill Form
	if horizontal {
		w := clampf(perc*innerW, 0, innerW)
		fill = RectForm(cx-(innerW-w)/2, cy, w, innerH, fillColor)
	} else {
		h := clampf(perc*innerH, 0, innerH)
		fill = RectForm(cx, cy+(innerH-h)/2, innerW, h, fillColor)
	}

	forms := make([]Form, 0, 3)
	forms = append(forms,
		RectForm(cx, cy, dim[0], dim[1], frameColor).Shift(xy[0], xy[1]),
		fill.Shift(xy[0], xy[1]),
	)

	if st.Label != "" {
		size := style.LabelFontSizeOf(theme)
		w := env.TextWidth(size, st.Label)
		var lx, ly float32
		if horizontal {
			lx = labelPadding
			ly = (dim[1] - float32(size)) / 2
		} else {
			lx = (dim[0] - w) / 2
			ly = dim[1] - labelPadding - float32(size)
		}
		at := xy.Floor()
		forms = append(forms, TextForm(math32.Floor(lx), math32.Floor(ly), w, st.Label, size, style.LabelColorOf(theme)).
			Shift(at[0], at[1]))
	}

	return Element{XY: xy, Dim: dim, Depth: state.Depth, Forms: forms}
}

func (s SliderStyle) ColorOf(t *Theme) colors.Color {
	return resolve(s.Color, t.Slider, func(k *SliderStyle) *colors.Color { return k.Color }, t.ShapeColor)
}

func (s SliderStyle) FrameOf(t *Theme) float32 {
	return resolve(s.Frame, t.Slider, func(k *SliderStyle) *float32 { return k.Frame }, t.FrameWidth)
}

func (s SliderStyle) FrameColorOf(t *Theme) colors.Color {
	return resolve(s.FrameColor, t.Slider, func(k *SliderStyle) *colors.Color { return k.FrameColor }, t.FrameColor)
}

func (s SliderStyle) LabelColorOf(t *Theme) colors.Color {
	return resolve(s.LabelColor, t.Slider, func(k *SliderStyle) *colors.Color { return k.LabelColor }, t.LabelColor)
}

func (s SliderStyle) LabelFontSizeOf(t *Theme) FontSize {
	return resolve(s.LabelFontSize, t.Slider, func(k *SliderStyle) *FontSize { return k.LabelFontSize }, t.FontSizeMedium)
}

// resolve picks the instance override, then the theme's per-kind override,
// then the theme's global default.
func resolve[V any, K any](instance *V, kind *K, field func(*K) *V, global V) V {
	if instance != nil {
		return *instance
	}
	if kind != nil {
		if v := field(kind); v != nil {
			return *v
		}
	}
	return global
}
