// Package renderer2d batches UI elements into textured quads for a
// core.Renderer. Rect forms become solid quads snapped to the pixel grid and
// text forms become glyph quads sampled from a font atlas.
package renderer2d

import (
	"fmt"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/ui"
)

// TextDrawer draws a single line of text with its top-left at (x, y),
// normally through DrawGlyph.
type TextDrawer interface {
	DrawText(rd *Renderer2D, x, y float32, size ui.FontSize, s string, c colors.Color)
}

// Statistics captures the counts generated during a scene.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int // most textures bound by one batch

	Elements int
	Rects    int
	Texts    int
	Glyphs   int
	Skipped  int // forms with nothing to show

	FullFlushes    int // batches drawn early because they ran out of quads
	TextureFlushes int // batches drawn early because they ran out of units
}

// TotalVertexCount reports vertices submitted this scene.
func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }

// TotalIndexCount reports indices submitted this scene.
func (s Statistics) TotalIndexCount() int { return s.QuadCount * indsPerQuad }

type Renderer2D struct {
	r     core.Renderer
	pipe  core.Pipeline
	mesh  core.Mesh
	white core.Texture
	b     batch

	vp       [16]float32
	samplers map[string]core.Texture
	uniforms map[string]any
	texNames [maxTexSlots]string

	stats Statistics
	err   error
}

// New compiles the quad pipeline and allocates a mesh for maxQuads quads.
func New(r core.Renderer, vertSrc, fragSrc string, maxQuads int) (*Renderer2D, error) {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		DepthTest:      false,
		Blend:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("renderer2d pipeline: %w", err)
	}

	white, err := r.CreateTexture(core.TextureDesc{
		Width: 1, Height: 1,
		Format:    core.TextureRGBA8,
		Pixels:    []byte{255, 255, 255, 255},
		MinFilter: "nearest", MagFilter: "nearest",
		WrapU: "clamp", WrapV: "clamp",
	})
	if err != nil {
		return nil, fmt.Errorf("renderer2d white texture: %w", err)
	}

	mesh, err := r.CreateMesh(core.MeshDesc{
		Vertices: make([]float32, maxQuads*vertsPerQuad*vStride),
		Indices:  make([]uint32, maxQuads*indsPerQuad),
		Layout:   quadVertexLayout,
	})
	if err != nil {
		return nil, fmt.Errorf("renderer2d mesh: %w", err)
	}

	rd := &Renderer2D{
		r: r, pipe: pipe, mesh: mesh, white: white,
		b:        newBatch(maxQuads, white),
		samplers: make(map[string]core.Texture, maxTexSlots),
		uniforms: make(map[string]any, 1),
	}
	for i := range rd.texNames {
		rd.texNames[i] = "uTex[" + strconv.Itoa(i) + "]"
	}
	return rd, nil
}

func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.stats = Statistics{}
	rd.b.reset(rd.white)
}

// EndScene draws the last batch and reports the first upload error of the
// scene, if any.
func (rd *Renderer2D) EndScene() error {
	rd.flush()
	err := rd.err
	rd.err = nil
	return err
}

func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// DrawElements draws elements in slice order, which ui.Ctx.EndFrame returns
// back to front.
func (rd *Renderer2D) DrawElements(els []ui.Element, td TextDrawer) {
	for i := range els {
		rd.DrawElement(els[i], td)
	}
}

// DrawElement draws the forms of one element in order. Text forms are
// skipped when td is nil.
func (rd *Renderer2D) DrawElement(el ui.Element, td TextDrawer) {
	rd.stats.Elements++
	for i := range el.Forms {
		f := &el.Forms[i]
		if !visible(f, td) {
			rd.stats.Skipped++
			continue
		}
		switch f.Kind {
		case ui.FormRect:
			rd.DrawRect(f.X, f.Y, f.W, f.H, f.Color)
		case ui.FormText:
			rd.stats.Texts++
			td.DrawText(rd, f.X, f.Y, f.FontSize, f.Text, f.Color)
		}
	}
}

func visible(f *ui.Form, td TextDrawer) bool {
	if f.Color[3] <= 0 {
		return false
	}
	switch f.Kind {
	case ui.FormRect:
		return f.W > 0 && f.H > 0
	case ui.FormText:
		return td != nil && f.Text != ""
	}
	return false
}

// DrawRect draws a solid rect centred on (cx, cy). Its edges are rounded to
// whole pixels; a rect that rounds away to nothing is skipped.
func (rd *Renderer2D) DrawRect(cx, cy, w, h float32, c colors.Color) {
	x0, x1 := math32.Round(cx-w*0.5), math32.Round(cx+w*0.5)
	y0, y1 := math32.Round(cy-h*0.5), math32.Round(cy+h*0.5)
	if x1 <= x0 || y1 <= y0 {
		rd.stats.Skipped++
		return
	}
	unit := rd.reserve(rd.white)
	rd.b.quad(x0, y0, x1, y1, c, fullUV, unit)
	rd.stats.Rects++
	rd.stats.QuadCount++
}

// DrawGlyph draws a tinted atlas region into the box (x0, y0)-(x1, y1).
// Glyph boxes keep their sub-pixel position.
func (rd *Renderer2D) DrawGlyph(x0, y0, x1, y1 float32, sub SubTexture2D, tint colors.Color) {
	unit := rd.reserve(sub.Texture)
	rd.b.quad(x0, y0, x1, y1, tint, [4]float32{sub.U0, sub.V0, sub.U1, sub.V1}, unit)
	rd.stats.Glyphs++
	rd.stats.QuadCount++
}

// reserve makes room for one quad sampling t and returns t's texture unit,
// drawing the current batch first when it is out of quads or units.
func (rd *Renderer2D) reserve(t core.Texture) float32 {
	if rd.b.full() {
		rd.stats.FullFlushes++
		rd.flush()
	}
	unit, ok := rd.b.slot(t)
	if !ok {
		rd.stats.TextureFlushes++
		rd.flush()
		unit, _ = rd.b.slot(t)
	}
	rd.stats.TextureCount = max(rd.stats.TextureCount, rd.b.ntex)
	return unit
}

func (rd *Renderer2D) flush() {
	if rd.b.empty() {
		return
	}
	defer rd.b.reset(rd.white)

	if err := rd.r.UpdateMesh(rd.mesh, rd.b.verts, rd.b.inds); err != nil {
		if rd.err == nil {
			rd.err = fmt.Errorf("renderer2d flush: %w", err)
		}
		return
	}

	clear(rd.samplers)
	for i := 0; i < rd.b.ntex; i++ {
		rd.samplers[rd.texNames[i]] = rd.b.tex[i]
	}
	rd.uniforms["uVP"] = rd.vp

	rd.r.Draw(core.DrawCmd{
		Pipe:     rd.pipe,
		Mesh:     rd.mesh,
		Uniforms: rd.uniforms,
		Samplers: rd.samplers,
	})
	rd.stats.DrawCalls++
}
