package ui

// WidgetID identifies a widget across frames.
type WidgetID int

// Geometry is what a widget reports to the layout system every frame.
type Geometry struct {
	XY    Point
	Dim   Dimensions
	Depth Depth
}

// WidgetState pairs a widget's persisted state with its last geometry.
type WidgetState[S any] struct {
	State S
	Geometry
}

// UpdateEnv is everything a widget may consult while updating.
type UpdateEnv interface {
	Theme() *Theme
	ScreenPosition(pos Position, dim Dimensions, h HorizontalAlign, v VerticalAlign) Point
	// Mouse returns the pointer in window coordinates as seen by this widget.
	Mouse() Mouse
	TextWidth(size FontSize, s string) float32
}

// DrawEnv is everything a widget may consult while drawing. It has no pointer
// access: drawing is a function of persisted state.
type DrawEnv interface {
	Theme() *Theme
	TextWidth(size FontSize, s string) float32
}

// TextMeasurer measures rendered text widths.
type TextMeasurer interface {
	TextWidth(size FontSize, s string) float32
}

// Widget is a per-frame widget description of kind-specific state S and
// style St.
type Widget[S, St any] interface {
	Kind() string
	InitState() S
	Style() St
	// Update returns the replacement state, or nil when nothing changed,
	// plus the geometry to record for layout.
	Update(prev WidgetState[S], style St, env UpdateEnv) (*S, Geometry)
	Draw(state WidgetState[S], style St, env DrawEnv) Element
}

// mouseCapturer is implemented by states that hold the mouse while set.
type mouseCapturer interface {
	CapturesMouse() bool
}
