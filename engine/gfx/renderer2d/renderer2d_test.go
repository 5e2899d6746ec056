package renderer2d

import (
	"testing"

	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/gfx/gfxtest"
	"github.com/hubastard/groveui/engine/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identity = [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

func newTest(t *testing.T, maxQuads int) (*Renderer2D, *gfxtest.Recorder) {
	t.Helper()
	rec := &gfxtest.Recorder{}
	rd, err := New(rec, "vs", "fs", maxQuads)
	require.NoError(t, err)
	return rd, rec
}

// corners returns the positions of the four vertices of quad i.
func corners(verts []float32, i int) [4][2]float32 {
	var out [4][2]float32
	for v := 0; v < vertsPerQuad; v++ {
		at := (i*vertsPerQuad + v) * vStride
		out[v] = [2]float32{verts[at], verts[at+1]}
	}
	return out
}

func TestDrawRectBatches(t *testing.T) {
	rd, rec := newTest(t, 16)
	rd.BeginScene(identity)
	rd.DrawRect(10, 20, 4, 2, colors.Red)
	rd.DrawRect(5, 5, 2, 2, colors.Green)
	rd.DrawRect(5, 5, 2, 2, colors.Blue)
	require.NoError(t, rd.EndScene())

	require.Len(t, rec.Calls, 1)
	call := rec.Calls[0]
	assert.Len(t, call.Vertices, 3*vertsPerQuad*vStride)
	assert.Len(t, call.Indices, 3*indsPerQuad)
	assert.Equal(t, identity, call.Uniforms["uVP"])
	assert.Equal(t, []uint32{4, 6, 5, 5, 6, 7}, call.Indices[6:12])

	assert.Equal(t, [4][2]float32{{8, 19}, {12, 19}, {8, 21}, {12, 21}}, corners(call.Vertices, 0))
	assert.Equal(t, []float32{1, 0, 0, 1}, call.Vertices[2:6])

	st := rd.Stats()
	assert.Equal(t, 1, st.DrawCalls)
	assert.Equal(t, 3, st.QuadCount)
	assert.Equal(t, 3, st.Rects)
	assert.Equal(t, 12, st.TotalVertexCount())
	assert.Equal(t, 1, st.TextureCount)
}

func TestDrawRectSnapsToPixels(t *testing.T) {
	rd, rec := newTest(t, 16)
	rd.BeginScene(identity)
	rd.DrawRect(10.4, 10.6, 5, 3, colors.White)
	rd.DrawRect(10, 10, 0.3, 8, colors.White)
	require.NoError(t, rd.EndScene())

	require.Len(t, rec.Calls, 1)
	assert.Equal(t, [4][2]float32{{8, 9}, {13, 9}, {8, 12}, {13, 12}}, corners(rec.Calls[0].Vertices, 0))
	st := rd.Stats()
	assert.Equal(t, 1, st.QuadCount)
	assert.Equal(t, 1, st.Skipped, "a sliver narrower than a pixel vanishes")
}

func TestFlushWhenBatchIsFull(t *testing.T) {
	rd, rec := newTest(t, 2)
	rd.BeginScene(identity)
	for i := 0; i < 5; i++ {
		rd.DrawRect(4, 4, 2, 2, colors.White)
	}
	require.NoError(t, rd.EndScene())

	assert.Len(t, rec.Calls, 3)
	st := rd.Stats()
	assert.Equal(t, 3, st.DrawCalls)
	assert.Equal(t, 5, st.QuadCount)
	assert.Equal(t, 2, st.FullFlushes)
	assert.Zero(t, st.TextureFlushes)
}

func TestFlushWhenTextureSlotsRunOut(t *testing.T) {
	rd, rec := newTest(t, 100)
	rd.BeginScene(identity)
	for i := 0; i < maxTexSlots; i++ {
		tex, err := rec.CreateTexture(core.TextureDesc{Width: 1, Height: 1, Pixels: make([]byte, 4)})
		require.NoError(t, err)
		rd.DrawGlyph(0, 0, 1, 1, FromPixels(tex, 0, 0, 1, 1), colors.White)
	}
	require.NoError(t, rd.EndScene())

	require.Len(t, rec.Calls, 2)
	assert.Len(t, rec.Calls[0].Samplers, maxTexSlots)
	assert.Len(t, rec.Calls[1].Samplers, 2, "white plus the overflowing texture")
	st := rd.Stats()
	assert.Equal(t, 1, st.TextureFlushes)
	assert.Equal(t, maxTexSlots, st.TextureCount)
	assert.Equal(t, maxTexSlots, st.Glyphs)
}

func TestDrawGlyphKeepsSubPixelBox(t *testing.T) {
	rd, rec := newTest(t, 4)
	tex := &gfxtest.Texture{W: 64, H: 32}
	rd.BeginScene(identity)
	rd.DrawGlyph(1.25, 2.5, 9.75, 14.5, FromPixels(tex, 16, 8, 16, 8), colors.White)
	require.NoError(t, rd.EndScene())

	require.Len(t, rec.Calls, 1)
	v := rec.Calls[0].Vertices
	assert.Equal(t, [4][2]float32{{1.25, 2.5}, {9.75, 2.5}, {1.25, 14.5}, {9.75, 14.5}}, corners(v, 0))
	// uv and texture unit of the bottom-right corner
	assert.Equal(t, []float32{0.5, 0.5, 1}, v[3*vStride+6:3*vStride+9])
	assert.Same(t, tex, rec.Calls[0].Samplers["uTex[1]"])
}

func TestFromPixels(t *testing.T) {
	tex := &gfxtest.Texture{W: 64, H: 32}
	sub := FromPixels(tex, 16, 8, 16, 8)
	assert.Equal(t, SubTexture2D{Texture: tex, U0: 0.25, V0: 0.25, U1: 0.5, V1: 0.5}, sub)
}

type textCall struct {
	x, y float32
	size ui.FontSize
	s    string
}

type textRecorder struct{ calls []textCall }

func (tr *textRecorder) DrawText(_ *Renderer2D, x, y float32, size ui.FontSize, s string, _ colors.Color) {
	tr.calls = append(tr.calls, textCall{x, y, size, s})
}

func TestDrawElement(t *testing.T) {
	rd, rec := newTest(t, 16)
	el := ui.Element{Forms: []ui.Form{
		ui.RectForm(50, 20, 100, 40, colors.Gray),
		ui.RectForm(1, 20, 0, 38, colors.Teal),
		ui.RectForm(50, 20, 80, 30, colors.Teal.WithAlpha(0)),
		ui.TextForm(10, 11, 30, "gain", 18, colors.White),
		ui.TextForm(10, 40, 0, "", 18, colors.White),
	}}
	tr := &textRecorder{}

	rd.BeginScene(identity)
	rd.DrawElements([]ui.Element{el}, tr)
	require.NoError(t, rd.EndScene())

	require.Len(t, rec.Calls, 1)
	st := rd.Stats()
	assert.Equal(t, 1, st.QuadCount)
	assert.Equal(t, 1, st.Rects)
	assert.Equal(t, 1, st.Texts)
	assert.Equal(t, 3, st.Skipped, "empty fill, transparent rect and empty text")
	assert.Equal(t, 1, st.Elements)
	assert.Equal(t, []textCall{{10, 11, 18, "gain"}}, tr.calls)

	rd.BeginScene(identity)
	assert.NotPanics(t, func() { rd.DrawElement(el, nil) })
	require.NoError(t, rd.EndScene())
	assert.Equal(t, 4, rd.Stats().Skipped, "text is skipped without a drawer")
}

func TestDrawSliderElement(t *testing.T) {
	theme := ui.DefaultTheme()
	state := ui.WidgetState[ui.SliderState[float64]]{
		State:    ui.SliderState[float64]{Value: 25, Min: 0, Max: 100},
		Geometry: ui.Geometry{XY: ui.Point{20, 20}, Dim: ui.Dimensions{102, 22}},
	}
	el := ui.DrawSlider(state, ui.SliderStyle{}, drawEnv{theme})

	rd, rec := newTest(t, 16)
	rd.BeginScene(identity)
	rd.DrawElement(el, nil)
	require.NoError(t, rd.EndScene())

	require.Len(t, rec.Calls, 1)
	v := rec.Calls[0].Vertices
	assert.Equal(t, [4][2]float32{{20, 20}, {122, 20}, {20, 42}, {122, 42}}, corners(v, 0))
	// a quarter of the 100px interior, starting inside the 1px frame
	assert.Equal(t, [4][2]float32{{21, 21}, {46, 21}, {21, 41}, {46, 41}}, corners(v, 1))
}

type drawEnv struct{ theme *ui.Theme }

func (d drawEnv) Theme() *ui.Theme                             { return d.theme }
func (d drawEnv) TextWidth(size ui.FontSize, s string) float32 { return 0 }

func TestFlushErrorIsReported(t *testing.T) {
	rec := &gfxtest.Recorder{}
	rd, err := New(rec, "vs", "fs", 1)
	require.NoError(t, err)
	rd.mesh = &gfxtest.Mesh{}

	rd.BeginScene(identity)
	rd.DrawRect(4, 4, 2, 2, colors.White)
	rd.DrawRect(4, 4, 2, 2, colors.White)
	err = rd.EndScene()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "renderer2d flush")
	assert.Empty(t, rec.Calls)

	rd.BeginScene(identity)
	assert.NoError(t, rd.EndScene(), "the error is reported once")
}
