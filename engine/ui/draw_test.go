package ui

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/hubastard/groveui/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawn(value float64, label string, in Interaction, xy Point, dim Dimensions) WidgetState[SliderState[float64]] {
	return WidgetState[SliderState[float64]]{
		State:    SliderState[float64]{Value: value, Min: 0, Max: 100, Label: label, Interaction: in},
		Geometry: Geometry{XY: xy, Dim: dim, Depth: 2},
	}
}

func TestDrawSliderHorizontal(t *testing.T) {
	theme := DefaultTheme()
	env := fakeDraw{theme: theme, charW: 8}

	el := DrawSlider(drawn(25, "Vol", Normal, Point{10, 20}, Dimensions{192, 48}), SliderStyle{}, env)

	assert.Equal(t, Depth(2), el.Depth)
	require.Len(t, el.Forms, 3)

	backdrop, fill, label := el.Forms[0], el.Forms[1], el.Forms[2]
	assert.Equal(t, RectForm(106, 44, 192, 48, theme.FrameColor), backdrop)

	// Interior is 190x46 starting at (1, 1); a quarter of it is 47.5 wide.
	assert.Equal(t, FormRect, fill.Kind)
	assert.InDelta(t, 10+1+47.5/2, fill.X, 1e-4)
	assert.InDelta(t, 44, fill.Y, 1e-4)
	assert.InDelta(t, 47.5, fill.W, 1e-4)
	assert.InDelta(t, 46, fill.H, 1e-4)
	assert.Equal(t, theme.ShapeColor, fill.Color)

	assert.Equal(t, FormText, label.Kind)
	assert.Equal(t, "Vol", label.Text)
	assert.Equal(t, float32(10+labelPadding), label.X)
	assert.Equal(t, float32(20+15), label.Y)
	assert.Equal(t, float32(24), label.W)
	assert.Equal(t, theme.FontSizeMedium, label.FontSize)
	assert.Equal(t, theme.LabelColor, label.Color)
}

func TestDrawSliderVertical(t *testing.T) {
	theme := DefaultTheme()
	env := fakeDraw{theme: theme, charW: 8}

	el := DrawSlider(drawn(25, "Vol", Normal, Point{0, 0}, Dimensions{48, 192}), SliderStyle{}, env)
	require.Len(t, el.Forms, 3)

	fill, label := el.Forms[1], el.Forms[2]
	assert.InDelta(t, 24, fill.X, 1e-4)
	assert.InDelta(t, 46, fill.W, 1e-4)
	assert.InDelta(t, 47.5, fill.H, 1e-4)
	// Anchored to the bottom interior edge at y=191.
	assert.InDelta(t, 191-47.5/2, fill.Y, 1e-4)

	assert.Equal(t, float32(12), label.X)
	assert.Equal(t, float32(192-labelPadding-18), label.Y)
}

func TestDrawSliderWithoutLabel(t *testing.T) {
	el := DrawSlider(drawn(0, "", Normal, Point{}, Dimensions{192, 48}), SliderStyle{}, fakeDraw{theme: DefaultTheme()})
	require.Len(t, el.Forms, 2)
	assert.Equal(t, float32(0), el.Forms[1].W)
}

func TestDrawSliderRecolorsByInteraction(t *testing.T) {
	theme := DefaultTheme()
	env := fakeDraw{theme: theme}
	tests := []struct {
		in    Interaction
		frame colors.Color
		fill  colors.Color
	}{
		{Normal, theme.FrameColor, theme.ShapeColor},
		{Highlighted, theme.FrameColor.Highlighted(), theme.ShapeColor.Highlighted()},
		{Clicked, theme.FrameColor.Clicked(), theme.ShapeColor.Clicked()},
	}
	for _, tt := range tests {
		el := DrawSlider(drawn(50, "x", tt.in, Point{}, Dimensions{192, 48}), SliderStyle{}, env)
		assert.Equal(t, tt.frame, el.Forms[0].Color, tt.in.String())
		assert.Equal(t, tt.fill, el.Forms[1].Color, tt.in.String())
		assert.Equal(t, theme.LabelColor, el.Forms[2].Color, "labels keep their colour")
	}
}

func TestDrawSliderIsTranslationInvariant(t *testing.T) {
	env := fakeDraw{theme: DefaultTheme(), charW: 7}
	a := DrawSlider(drawn(60, "abc", Highlighted, Point{0, 0}, Dimensions{192, 48}), SliderStyle{}, env)
	b := DrawSlider(drawn(60, "abc", Highlighted, Point{300, 120}, Dimensions{192, 48}), SliderStyle{}, env)
	require.Len(t, b.Forms, len(a.Forms))
	for i := range a.Forms {
		assert.Equal(t, a.Forms[i].Shift(300, 120), b.Forms[i])
	}
}

func TestDrawSliderZeroInterior(t *testing.T) {
	env := fakeDraw{theme: DefaultTheme()}
	for _, frame := range []float32{24, 30, 100} {
		f := frame
		for _, dim := range []Dimensions{{192, 48}, {48, 192}, {0, 0}} {
			el := DrawSlider(drawn(50, "", Normal, Point{}, dim), SliderStyle{Frame: &f}, env)
			fill := el.Forms[1]
			for _, v := range []float32{fill.X, fill.Y, fill.W, fill.H} {
				assert.False(t, math32.IsNaN(v) || math32.IsInf(v, 0), "frame %v dim %v", frame, dim)
			}
			assert.GreaterOrEqual(t, fill.W, float32(0))
			assert.GreaterOrEqual(t, fill.H, float32(0))
		}
	}
}

func TestDrawSliderEmptyRange(t *testing.T) {
	st := drawn(5, "", Normal, Point{}, Dimensions{192, 48})
	st.State.Min, st.State.Max = 5, 5
	el := DrawSlider(st, SliderStyle{}, fakeDraw{theme: DefaultTheme()})
	assert.Equal(t, float32(0), el.Forms[1].W)
}
