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

// LayerDebug prints frame timing, batcher and UI counters in the top-right
// corner. Space toggles it.
type LayerDebug struct {
	cam           *scene.OrthoCamera2D
	r2d           *renderer2d.Renderer2D
	font          *text.Font
	ui            *ui.Ctx
	frameDuration float32
	hidden        bool
}

const debugFontSize ui.FontSize = 14

func (l *LayerDebug) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.cam = scene.NewScreen2D(w, h)
}

func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {
	if l.hidden {
		return
	}
	// Stats of the scene drawn by the layers below.
	stats := l.r2d.Stats()
	lines := [...]string{
		scratch.F().F64(float64(l.frameDuration), 2).S(" ms").View(),
		scratch.F().S("draw calls ").I(stats.DrawCalls).S("  quads ").I(stats.QuadCount).View(),
		scratch.F().S("elements ").I(stats.Elements).S("  glyphs ").I(stats.Glyphs).S("  skipped ").I(stats.Skipped).View(),
		scratch.F().S("flushes ").I(stats.FullFlushes+stats.TextureFlushes).S("  redraws ").I(l.ui.Redraws()).View(),
	}

	lineH := l.font.LineHeight(debugFontSize)
	x := l.cam.Width() - 16
	for _, s := range lines {
		x = min(x, l.cam.Width()-16-l.font.TextWidth(debugFontSize, s))
	}

	l.r2d.BeginScene(l.cam.VP())
	l.r2d.DrawRect(x-8+(l.cam.Width()-x)/2, 8+(lineH*float32(len(lines))+8)/2,
		l.cam.Width()-x, lineH*float32(len(lines))+8, colors.Black.WithAlpha(0.5))
	for i, s := range lines {
		l.font.DrawText(l.r2d, x, 12+lineH*float32(i), debugFontSize, s, colors.Yellow)
	}
	if err := l.r2d.EndScene(); err != nil {
		e.Log.Error("sandbox: debug draw", "err", err)
	}
}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventKey:
		if v.Down && v.Key == core.KeySpace {
			l.hidden = !l.hidden
			return true
		}
	case core.EventResize:
		l.cam.FitScreen(v.W, v.H)
	}
	return false
}
