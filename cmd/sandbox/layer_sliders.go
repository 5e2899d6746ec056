package main

import (
	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/gfx/renderer2d"
	"github.com/hubastard/groveui/engine/scene"
	"github.com/hubastard/groveui/engine/scratch"
	"github.com/hubastard/groveui/engine/text"
	"github.com/hubastard/groveui/engine/ui"
)

const (
	idTitle ui.WidgetID = iota + 1
	idVolume
	idHue
	idLevel
	idLocked
)

// LayerSliders shows a few sliders driving each other.
type LayerSliders struct {
	cam  *scene.OrthoCamera2D
	r2d  *renderer2d.Renderer2D
	font *text.Font
	ui   *ui.Ctx

	volume float64
	hue    float32
	level  float64
}

func (l *LayerSliders) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewScreen2D(w, h)
}

func (l *LayerSliders) OnDetach(e *core.Engine) {}

func (l *LayerSliders) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerSliders) OnRender(e *core.Engine, alpha float64) {
	w, h := e.Window.FramebufferSize()
	l.ui.BeginFrame(ui.Dimensions{float32(w), float32(h)}, e.Input.UIMouse())

	ui.Set(l.ui, idTitle, ui.NewLabel("Drag a slider, or press Space to toggle the stats overlay.").
		MaxWidth(320).
		FontSize(16))

	ui.Set(l.ui, idVolume, ui.NewSlider(l.volume, 0, 1).
		Dim(320, 40).
		Label(scratch.F().S("Volume ").F64(l.volume*100, 0).C('%').View()).
		React(func(v float64) { l.volume = v }))

	ui.Set(l.ui, idHue, ui.NewSlider(l.hue, 0, 360).
		Dim(320, 40).
		Color(colors.HSV(l.hue, 0.7, 0.9)).
		LabelColor(colors.Black).
		Label(scratch.F().S("Hue ").I(int(l.hue)).View()).
		React(func(v float32) { l.hue = v }))

	ui.Set(l.ui, idLevel, ui.NewSlider(l.level, 0, 10).
		Dim(56, 240).
		Frame(3).
		Label(scratch.F().F64(l.level, 1).View()).
		React(func(v float64) { l.level = v }))

	ui.Set(l.ui, idLocked, ui.NewSlider(l.volume, 0, 1).
		Position(ui.Right(24)).
		VAlign(ui.AlignBottom).
		Dim(200, 32).
		Enabled(false).
		LabelFontSize(12).
		Label("Follows volume"))

	els := l.ui.EndFrame()

	l.r2d.BeginScene(l.cam.VP())
	l.r2d.DrawElements(els, l.font)
	if err := l.r2d.EndScene(); err != nil {
		e.Log.Error("sandbox: ui draw", "err", err)
	}
}

func (l *LayerSliders) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeyEscape {
			e.Window.RequestClose()
			return true
		}
	case core.EventResize:
		l.cam.FitScreen(v.W, v.H)
	}
	return false
}
