package text

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/hubastard/groveui/engine/core"
	"github.com/hubastard/groveui/engine/gfx/renderer2d"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // top bearing in pixels (distance from baseline to glyph top)
	W, H     int     // glyph bitmap size
	X, Y     int     // top-left of the bitmap in the atlas
	Sub      renderer2d.SubTexture2D
}

// Atlas is a rasterised glyph sheet: white glyphs with alpha coverage.
type Atlas struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Image                    *image.RGBA
	kern                     map[[2]rune]float32
}

// Font is an Atlas uploaded to the GPU.
type Font struct {
	*Atlas
	Texture core.Texture
}

const (
	firstRune   = rune(32)
	lastRune    = rune(255)
	glyphMargin = 2
	maxAtlas    = 4096
)

// BuildAtlas rasterises runes 32..255 of a TrueType/OpenType font at sizePx.
func BuildAtlas(ttf []byte, sizePx float32) (*Atlas, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("font size %v must be positive", sizePx)
	}
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	// Metrics in pixels
	m := face.Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(-m.Descent.Round())
	lineGap := float32(m.Height.Round()) - ascent + descent

	glyphs := make(map[rune]Glyph, lastRune-firstRune+1)
	var order []rune
	for r := firstRune; r <= lastRune; r++ {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		glyphs[r] = Glyph{
			Rune:     r,
			Advance:  float32(adv.Round()),
			BearingX: float32(br.Min.X.Round()),
			BearingY: float32(-br.Min.Y.Round()),
			W:        (br.Max.X - br.Min.X).Round(),
			H:        (br.Max.Y - br.Min.Y).Round(),
		}
		order = append(order, r)
	}

	size, err := pack(glyphs, order)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}
	for _, r := range order {
		g := glyphs[r]
		if g.W == 0 || g.H == 0 {
			continue
		}
		// Drawer expects a dot at the baseline.
		drawer.Dot = fixed.P(g.X-int(g.BearingX), g.Y+int(g.BearingY))
		drawer.DrawString(string(r))
	}

	kern := make(map[[2]rune]float32)
	for _, a := range order {
		for _, b := range order {
			if dx := face.Kern(a, b); dx != 0 {
				kern[[2]rune{a, b}] = float32(dx) / 64
			}
		}
	}

	return &Atlas{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs: glyphs,
		Image:  dst,
		kern:   kern,
	}, nil
}

// pack places glyphs on shelves of a square atlas, doubling it from 256 px
// until everything fits, and returns the side length.
func pack(glyphs map[rune]Glyph, order []rune) (int, error) {
	for size := 256; size <= maxAtlas; size *= 2 {
		x, y, rowH := glyphMargin, glyphMargin, 0
		fits := true
		for _, r := range order {
			g := glyphs[r]
			if g.W == 0 || g.H == 0 {
				continue
			}
			if g.W+glyphMargin*2 > size {
				fits = false
				break
			}
			if x+g.W+glyphMargin > size {
				x = glyphMargin
				y += rowH + glyphMargin
				rowH = 0
			}
			if y+g.H+glyphMargin > size {
				fits = false
				break
			}
			g.X, g.Y = x, y
			glyphs[r] = g
			x += g.W + glyphMargin
			rowH = max(rowH, g.H)
		}
		if fits {
			return size, nil
		}
	}
	return 0, fmt.Errorf("font atlas too large (>%d)", maxAtlas)
}

// LoadFont builds the atlas for ttf and uploads it as an RGBA texture.
func LoadFont(r core.Renderer, ttf []byte, sizePx float32) (*Font, error) {
	a, err := BuildAtlas(ttf, sizePx)
	if err != nil {
		return nil, err
	}
	b := a.Image.Bounds()
	tex, err := r.CreateTexture(core.TextureDesc{
		Width: b.Dx(), Height: b.Dy(),
		Format:    core.TextureRGBA8,
		Pixels:    a.Image.Pix,
		MinFilter: "linear",
		MagFilter: "linear",
		WrapU:     "clamp",
		WrapV:     "clamp",
	})
	if err != nil {
		return nil, fmt.Errorf("upload font atlas: %w", err)
	}
	for k, g := range a.Glyphs {
		g.Sub = renderer2d.FromPixels(tex, g.X, g.Y, g.W, g.H)
		a.Glyphs[k] = g
	}
	slog.Debug("text: font atlas uploaded", "size_px", sizePx, "atlas", b.Dx(), "glyphs", len(a.Glyphs))
	return &Font{Atlas: a, Texture: tex}, nil
}

// Default loads Go Regular at sizePx.
func Default(r core.Renderer, sizePx float32) (*Font, error) {
	return LoadFont(r, goregular.TTF, sizePx)
}

func (f *Font) Close() {
	if f != nil && f.Texture != nil {
		f.Texture.Release()
		f.Texture = nil
	}
}
