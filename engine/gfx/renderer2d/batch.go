package renderer2d

import (
	"github.com/hubastard/groveui/engine/colors"
	"github.com/hubastard/groveui/engine/core"
)

// Max textures per batch (common GL limit is 16)
const maxTexSlots = 16

// Vertex: pos2 + color4 + uv2 + texIndex1 => 9 floats
const (
	vStride      = 9
	vertsPerQuad = 4
	indsPerQuad  = 6
)

var quadVertexLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 2, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 4, Type: core.AttribFloat32, Offset: 2 * 4}, // color
		{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 6 * 4}, // uv
		{Location: 3, Size: 1, Type: core.AttribFloat32, Offset: 8 * 4}, // texIndex
	},
}

// fullUV covers a whole texture: u0, v0, u1, v1.
var fullUV = [4]float32{0, 0, 1, 1}

// batch collects axis-aligned quads that share one texture table. Slot 0 is
// always the white texture used by solid rects.
type batch struct {
	verts []float32
	inds  []uint32
	quads int
	max   int

	tex  [maxTexSlots]core.Texture
	ntex int
}

func newBatch(maxQuads int, white core.Texture) batch {
	b := batch{
		verts: make([]float32, 0, maxQuads*vertsPerQuad*vStride),
		inds:  make([]uint32, 0, maxQuads*indsPerQuad),
		max:   maxQuads,
	}
	b.reset(white)
	return b
}

func (b *batch) reset(white core.Texture) {
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
	b.quads = 0
	clear(b.tex[:])
	b.tex[0] = white
	b.ntex = 1
}

func (b *batch) empty() bool { return b.quads == 0 }
func (b *batch) full() bool  { return b.quads >= b.max }

// slot returns the texture unit t is bound to in this batch, binding it if
// needed. ok is false when t is new and every unit is taken.
func (b *batch) slot(t core.Texture) (unit float32, ok bool) {
	for i := 0; i < b.ntex; i++ {
		if b.tex[i] == t {
			return float32(i), true
		}
	}
	if b.ntex == maxTexSlots {
		return 0, false
	}
	b.tex[b.ntex] = t
	b.ntex++
	return float32(b.ntex - 1), true
}

// quad appends the quad spanning (x0, y0) top-left to (x1, y1) bottom-right.
// Positive Y goes down.
func (b *batch) quad(x0, y0, x1, y1 float32, c colors.Color, uv [4]float32, unit float32) {
	base := uint32(b.quads * vertsPerQuad)
	b.verts = append(b.verts,
		x0, y0, c[0], c[1], c[2], c[3], uv[0], uv[1], unit,
		x1, y0, c[0], c[1], c[2], c[3], uv[2], uv[1], unit,
		x0, y1, c[0], c[1], c[2], c[3], uv[0], uv[3], unit,
		x1, y1, c[0], c[1], c[2], c[3], uv[2], uv[3], unit,
	)
	b.inds = append(b.inds,
		base+0, base+2, base+1,
		base+1, base+2, base+3,
	)
	b.quads++
}
