package text

import (
	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/gfx/renderer2d"
	"github.com/hubastard/groveui/engine/ui"
)

// DrawText draws s with its top-left at (x, y), scaled from the atlas size
// to size. Positive Y goes downward (matching the 2D projection).
func (f *Font) DrawText(rd *renderer2d.Renderer2D, x, y float32, size ui.FontSize, s string, color colors.Color) {
	scale := f.scale(size)
	if scale == 0 {
		return
	}
	penX := x
	baseY := y + f.Ascent*scale
	var prev rune = -1

	for _, r := range s {
		if r == '\n' {
			penX = x
			baseY += f.lineHeight() * scale
			prev = -1
			continue
		}
		g, ok := f.Glyphs[r]
		if !ok {
			penX += f.missingAdvance() * scale
			prev = r
			continue
		}
		if prev >= 0 {
			penX += f.kern[[2]rune{prev, r}] * scale
		}

		if g.W > 0 && g.H > 0 {
			// Baseline-aligned box (Y-down system)
			left := penX + g.BearingX*scale
			top := baseY - g.BearingY*scale
			rd.DrawGlyph(left, top, left+float32(g.W)*scale, top+float32(g.H)*scale, g.Sub, color)
		}

		penX += g.Advance * scale
		prev = r
	}
}

// TextWidth is the advance width of the widest line of s at size.
func (a *Atlas) TextWidth(size ui.FontSize, s string) float32 {
	w, _ := a.MeasureText(size, s)
	return w
}

func (a *Atlas) MeasureText(size ui.FontSize, s string) (width, height float32) {
	scale := a.scale(size)
	var lineW float32
	var prev rune = -1
	height = a.lineHeight()

	for _, r := range s {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			height += a.lineHeight()
			prev = -1
			continue
		}
		g, ok := a.Glyphs[r]
		if !ok {
			lineW += a.missingAdvance()
			prev = r
			continue
		}
		if prev >= 0 {
			lineW += a.kern[[2]rune{prev, r}]
		}
		lineW += g.Advance
		prev = r
	}
	width = max(width, lineW)
	return width * scale, height * scale
}

func (a *Atlas) LineHeight(size ui.FontSize) float32 { return a.lineHeight() * a.scale(size) }

func (a *Atlas) lineHeight() float32 { return a.Ascent - a.Descent + a.LineGap }

func (a *Atlas) scale(size ui.FontSize) float32 { return float32(size) / a.SizePx }

// Runes outside the atlas advance like a space.
func (a *Atlas) missingAdvance() float32 { return a.Glyphs[' '].Advance }
