package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recLayer struct {
	name   string
	handle bool
	log    *[]string
}

func (l recLayer) OnAttach(*Engine)          {}
func (l recLayer) OnDetach(*Engine)          {}
func (l recLayer) OnUpdate(*Engine, float64) {}
func (l recLayer) OnRender(*Engine, float64) {}
func (l recLayer) OnEvent(_ *Engine, _ Event) bool {
	*l.log = append(*l.log, l.name)
	return l.handle
}

type recApp struct{ events []Event }

func (a *recApp) OnStart(*Engine)             {}
func (a *recApp) OnUpdate(*Engine, float64)   {}
func (a *recApp) OnRender(*Engine, float64)   {}
func (a *recApp) OnEvent(_ *Engine, ev Event) { a.events = append(a.events, ev) }
func (a *recApp) OnShutdown(*Engine)          {}

type stubWindow struct{ closing bool }

func (w *stubWindow) PollEvents()                  {}
func (w *stubWindow) SwapBuffers()                 {}
func (w *stubWindow) ShouldClose() bool            { return w.closing }
func (w *stubWindow) RequestClose()                { w.closing = true }
func (w *stubWindow) FramebufferSize() (int, int)  { return 800, 600 }
func (w *stubWindow) SetTitle(string)              {}
func (w *stubWindow) SetEventCallback(func(Event)) {}

type stubRenderer struct {
	Renderer
	w, h int
}

func (r *stubRenderer) Resize(w, h int) { r.w, r.h = w, h }

func newTestEngine() (*Engine, *stubWindow, *stubRenderer) {
	win, rend := &stubWindow{}, &stubRenderer{}
	return &Engine{Window: win, Renderer: rend, Input: NewInput(), Layers: &LayerStack{}}, win, rend
}

func TestLayerStackOrder(t *testing.T) {
	var log []string
	ls := &LayerStack{}
	ls.Push(recLayer{name: "a", log: &log})
	ls.Push(recLayer{name: "b", log: &log})

	var names []string
	ls.ForEach(func(l Layer) { names = append(names, l.(recLayer).name) })
	assert.Equal(t, []string{"a", "b"}, names)

	l, ok := ls.Pop()
	assert.True(t, ok)
	assert.Equal(t, "b", l.(recLayer).name)
	assert.Equal(t, 1, ls.Len())
}

func TestDispatchStopsAtHandlingLayer(t *testing.T) {
	var log []string
	e, _, _ := newTestEngine()
	app := &recApp{}
	e.Layers.Push(recLayer{name: "bottom", log: &log})
	e.Layers.Push(recLayer{name: "ui", handle: true, log: &log})

	dispatch(e, app, EventMouseButton{Button: MouseLeft, Down: true})
	assert.Equal(t, []string{"ui"}, log)
	assert.Empty(t, app.events)
	assert.True(t, e.Input.IsButtonDown(MouseLeft), "input sees events before layers")
}

func TestDispatchWindowEvents(t *testing.T) {
	e, win, rend := newTestEngine()
	app := &recApp{}

	dispatch(e, app, EventResize{W: 1024, H: 768})
	assert.Equal(t, [2]int{1024, 768}, [2]int{rend.w, rend.h})
	dispatch(e, app, EventResize{W: 0, H: 768})
	assert.Equal(t, 1024, rend.w, "minimised windows keep the last size")

	dispatch(e, app, EventCloseRequested{})
	assert.True(t, win.ShouldClose())
	assert.Len(t, app.events, 3)
}
