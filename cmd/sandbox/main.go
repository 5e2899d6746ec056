package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/hubastard/groveui/engine/assets"
	"github.com/hubastard/groveui/engine/core"
	glbackend "github.com/hubastard/groveui/engine/gfx/gl"
	"github.com/hubastard/groveui/engine/gfx/renderer2d"
	"github.com/hubastard/groveui/engine/platform"
	"github.com/hubastard/groveui/engine/scratch"
	"github.com/hubastard/groveui/engine/text"
	"github.com/hubastard/groveui/engine/ui"
)

const configPath = "sandbox.yaml"

type App struct {
	cfg        core.Config
	lastFrame  time.Time
	r2d        *renderer2d.Renderer2D
	font       *text.Font
	ctx        *ui.Ctx
	debugLayer *LayerDebug
}

func (a *App) OnStart(e *core.Engine) {
	vs, err := assets.LoadShader("renderer2d.vert")
	if err != nil {
		fatal(err)
	}
	fs, err := assets.LoadShader("renderer2d.frag")
	if err != nil {
		fatal(err)
	}
	a.r2d, err = renderer2d.New(e.Renderer, vs, fs, 10000)
	if err != nil {
		fatal(err)
	}

	a.font, err = text.Default(e.Renderer, 32)
	if err != nil {
		fatal(err)
	}

	theme, err := assets.LoadTheme(a.cfg.Theme)
	if err != nil {
		fatal(err)
	}
	a.ctx = ui.New(theme, a.font, 8)
	a.ctx.SetLogger(e.Log.With("pkg", "ui"))
	e.Window.SetTitle(a.cfg.Title + " (" + theme.Name + ")")

	e.Layers.Push(&LayerSliders{r2d: a.r2d, font: a.font, ui: a.ctx, volume: 0.5, hue: 180, level: 3})
	a.debugLayer = &LayerDebug{r2d: a.r2d, font: a.font, ui: a.ctx}
	e.Layers.Push(a.debugLayer)
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {}

func (a *App) OnRender(e *core.Engine, alpha float64) {
	// Labels are rebuilt every frame; layers render after this.
	scratch.Reset()

	now := time.Now()
	if !a.lastFrame.IsZero() {
		a.debugLayer.frameDuration = float32(now.Sub(a.lastFrame).Seconds() * 1000.0)
	}
	a.lastFrame = now
}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {}

func (a *App) OnShutdown(e *core.Engine) {
	a.font.Close()
	e.Log.Info("sandbox: ui stats", "redraws", a.ctx.Redraws())
}

func fatal(err error) {
	slog.Error("sandbox: fatal", "err", err)
	os.Exit(1)
}

func main() {
	cfg, err := core.LoadConfigFile(configPath)
	if err != nil {
		fatal(err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	scratch.Init(cfg.ScratchAllocCapacity, cfg.ScratchEnableLogs)

	app := &App{cfg: cfg}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		fatal(err)
	}
}
