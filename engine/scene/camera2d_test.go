package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func assertNDC(t *testing.T, c *OrthoCamera2D, x, y, wantX, wantY float32) {
	t.Helper()
	gx, gy := c.Project(x, y)
	assert.InDelta(t, wantX, gx, 1e-5, "x of (%v,%v)", x, y)
	assert.InDelta(t, wantY, gy, 1e-5, "y of (%v,%v)", x, y)
}

func TestScreenCameraTopLeftOrigin(t *testing.T) {
	c := NewScreen2D(800, 600)
	assertNDC(t, c, 0, 0, -1, 1)
	assertNDC(t, c, 800, 600, 1, -1)
	assertNDC(t, c, 400, 300, 0, 0)
	assert.Equal(t, float32(800), c.Width())
	assert.Equal(t, float32(600), c.Height())
}

func TestScreenCameraResize(t *testing.T) {
	c := NewScreen2D(800, 600)
	c.FitScreen(400, 200)
	assertNDC(t, c, 0, 0, -1, 1)
	assertNDC(t, c, 400, 200, 1, -1)
}

func TestCameraZoomAndRotate(t *testing.T) {
	c := NewOrtho2D(200, 200)
	c.SetZoom(2)
	assertNDC(t, c, 50, 0, 1, 0)

	c.SetZoom(0)
	assert.Equal(t, float32(0.05), c.Zoom)

	c.SetZoom(1)
	c.Rotate(math32.Pi / 2)
	// The camera turns, so the world turns the other way on screen.
	assertNDC(t, c, 0, 100, 1, 0)
}

func TestMul(t *testing.T) {
	m := mul(translate(1, 2, 0), translate(3, 4, 0))
	assert.Equal(t, translate(4, 6, 0), m)

	// T·R applies the rotation first.
	tr := mul(translate(10, 0, 0), rotateZ(math32.Pi/2))
	x, y := tr[0]*1+tr[4]*0+tr[12], tr[1]*1+tr[5]*0+tr[13]
	assert.InDelta(t, 10, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)
}
