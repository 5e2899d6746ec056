package ui

import (
	"context"
	"log/slog"
	"sort"
	"unicode/utf8"
)

// ===== Immediate-UI context =====

// Ctx owns widget state between frames and collects what widgets draw.
// It is single-threaded: call BeginFrame, Set widgets, then EndFrame.
type Ctx struct {
	theme *Theme
	text  TextMeasurer
	log   *slog.Logger

	win   Dimensions
	mouse Mouse

	// Stable widget state, keyed by id. No per-frame inserts after bootstrap.
	widgets map[WidgetID]*widgetRecord

	// Buffers reused every frame.
	elements []Element

	prev     Rect
	hasPrev  bool
	captured WidgetID
	capture  bool
	redraws  int
}

type widgetRecord struct {
	kind  string
	state any
	geom  Geometry
}

// New creates a context. text may be nil, in which case label widths are
// estimated from the font size.
func New(theme *Theme, text TextMeasurer, capWidgets int) *Ctx {
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Ctx{
		theme:    theme,
		text:     text,
		log:      slog.Default(),
		widgets:  make(map[WidgetID]*widgetRecord, capWidgets),
		elements: make([]Element, 0, capWidgets),
	}
}

func (c *Ctx) SetLogger(l *slog.Logger) { c.log = l }
func (c *Ctx) SetTheme(t *Theme)        { c.theme = t }
func (c *Ctx) Theme() *Theme            { return c.theme }

// Redraws counts how many times a widget state was replaced.
func (c *Ctx) Redraws() int { return c.redraws }

// BeginFrame resets per-frame buffers and records the window size and the
// pointer for this frame.
func (c *Ctx) BeginFrame(win Dimensions, mouse Mouse) {
	c.win = win
	c.mouse = mouse
	c.elements = c.elements[:0]
	c.hasPrev = false
	if mouse.Left == ButtonUp && c.capture {
		c.releaseCapture()
	}
}

// EndFrame returns this frame's elements ordered back to front. The slice is
// reused by the next BeginFrame.
func (c *Ctx) EndFrame() []Element {
	sort.SliceStable(c.elements, func(i, j int) bool {
		return c.elements[i].Depth > c.elements[j].Depth
	})
	return c.elements
}

// State returns the persisted state stored for id.
func (c *Ctx) State(id WidgetID) (any, bool) {
	rec, ok := c.widgets[id]
	if !ok {
		return nil, false
	}
	return rec.state, true
}

// Set runs one widget for this frame: update against its previous state,
// store the replacement state if any, then queue its drawing.
func Set[S, St any](c *Ctx, id WidgetID, w Widget[S, St]) {
	kind := w.Kind()
	rec, ok := c.widgets[id]
	var prev WidgetState[S]
	if ok && rec.kind == kind {
		st, isS := rec.state.(S)
		ok = isS
		prev = WidgetState[S]{State: st, Geometry: rec.geom}
	} else {
		ok = false
	}
	if !ok {
		prev = WidgetState[S]{State: w.InitState()}
		rec = &widgetRecord{kind: kind, state: prev.State}
		c.widgets[id] = rec
	}

	style := w.Style()
	next, geom := w.Update(prev, style, widgetEnv{ctx: c, id: id})

	cur := prev.State
	if next != nil {
		cur = *next
		rec.state = cur
		c.redraws++
		if c.log.Enabled(context.Background(), slog.LevelDebug) {
			c.log.Debug("ui: widget state replaced", "id", int(id), "kind", kind)
		}
	}
	rec.geom = geom
	c.trackCapture(id, cur)

	c.prev = Rect{XY: geom.XY, Dim: geom.Dim}
	c.hasPrev = true

	c.elements = append(c.elements, w.Draw(WidgetState[S]{State: cur, Geometry: geom}, style, c))
}

func (c *Ctx) trackCapture(id WidgetID, state any) {
	mc, ok := state.(mouseCapturer)
	if !ok {
		return
	}
	switch {
	case mc.CapturesMouse() && !c.capture:
		c.capture, c.captured = true, id
		c.log.Debug("ui: mouse captured", "id", int(id))
	case !mc.CapturesMouse() && c.capture && c.captured == id:
		c.releaseCapture()
	}
}

func (c *Ctx) releaseCapture() {
	c.log.Debug("ui: mouse released", "id", int(c.captured))
	c.capture = false
}

// mouseFor returns the pointer as widget id sees it: widgets other than the
// capture owner see it far away with the button up.
func (c *Ctx) mouseFor(id WidgetID) Mouse {
	if c.capture && c.captured != id {
		return farAway
	}
	return c.mouse
}

func (c *Ctx) ScreenPosition(pos Position, dim Dimensions, h HorizontalAlign, v VerticalAlign) Point {
	pad := c.theme.Padding
	return ResolvePosition(pos, dim, h, v, c.prev, c.hasPrev, Point{pad, pad})
}

func (c *Ctx) TextWidth(size FontSize, s string) float32 {
	if c.text == nil {
		return float32(utf8.RuneCountInString(s)) * float32(size) * 0.5
	}
	return c.text.TextWidth(size, s)
}

// widgetEnv binds the context to one widget id for its update.
type widgetEnv struct {
	ctx *Ctx
	id  WidgetID
}

func (e widgetEnv) Theme() *Theme { return e.ctx.theme }
func (e widgetEnv) Mouse() Mouse  { return e.ctx.mouseFor(e.id) }
func (e widgetEnv) TextWidth(size FontSize, s string) float32 {
	return e.ctx.TextWidth(size, s)
}
func (e widgetEnv) ScreenPosition(pos Position, dim Dimensions, h HorizontalAlign, v VerticalAlign) Point {
	return e.ctx.ScreenPosition(pos, dim, h, v)
}
