package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var win = Dimensions{800, 600}

func TestCtxPlacesWidgetsDownward(t *testing.T) {
	c := New(nil, nil, 4)
	c.BeginFrame(win, Mouse{XY: Point{-1, -1}})
	Set(c, 1, NewSlider(0.5, 0, 1))
	Set(c, 2, NewSlider(0.5, 0, 1))
	els := c.EndFrame()

	require.Len(t, els, 2)
	assert.Equal(t, Point{20, 20}, els[0].XY)
	assert.Equal(t, Point{20, 20 + 48 + 20}, els[1].XY)
}

func TestCtxReplacesStateOnlyOnChange(t *testing.T) {
	c := New(nil, nil, 1)
	away := Mouse{XY: Point{-1, -1}}
	s := NewSlider(0.5, 0, 1).Label("gain")

	for i := 0; i < 3; i++ {
		c.BeginFrame(win, away)
		Set(c, 7, s)
		c.EndFrame()
	}
	assert.Equal(t, 1, c.Redraws(), "only the first frame's label is a change")

	c.BeginFrame(win, away)
	Set(c, 7, s.Value(0.75))
	c.EndFrame()
	assert.Equal(t, 2, c.Redraws())

	st, ok := c.State(7)
	require.True(t, ok)
	assert.Equal(t, 0.75, st.(SliderState[float64]).Value)
}

func TestCtxDragAcrossFrames(t *testing.T) {
	c := New(nil, nil, 2)
	value := 50.0
	other := 10.0
	frame := func(m Mouse) {
		c.BeginFrame(win, m)
		Set(c, 1, NewSlider(value, 0, 100).XY(0, 0).Frame(2).React(func(v float64) { value = v }))
		Set(c, 2, NewSlider(other, 0, 100).XY(0, 100).React(func(v float64) { other = v }))
		c.EndFrame()
	}
	interaction := func(id WidgetID) Interaction {
		st, ok := c.State(id)
		require.True(t, ok)
		return st.(SliderState[float64]).Interaction
	}

	frame(Mouse{XY: Point{49, 24}})
	assert.Equal(t, Highlighted, interaction(1))

	frame(Mouse{XY: Point{49, 24}, Left: ButtonDown})
	assert.Equal(t, Clicked, interaction(1))
	assert.InDelta(t, 25, value, 1e-4)

	// Dragging across the second slider keeps control with the first.
	frame(Mouse{XY: Point{190, 120}, Left: ButtonDown})
	assert.Equal(t, Clicked, interaction(1))
	assert.Equal(t, Normal, interaction(2))
	assert.InDelta(t, 100, value, 1e-4)
	assert.Equal(t, 10.0, other)

	frame(Mouse{XY: Point{190, 120}})
	assert.Equal(t, Normal, interaction(1))
	assert.Equal(t, Highlighted, interaction(2))
	assert.Equal(t, 10.0, other)
}

func TestCtxKindChangeReinitialises(t *testing.T) {
	c := New(nil, nil, 1)
	c.BeginFrame(win, Mouse{})
	Set(c, 1, NewSlider(0.5, 0, 1))
	assert.NotPanics(t, func() { Set(c, 1, NewSlider[float32](2, 0, 4)) })
	st, ok := c.State(1)
	require.True(t, ok)
	assert.Equal(t, float32(2), st.(SliderState[float32]).Value)
}

func TestCtxOrdersByDepth(t *testing.T) {
	c := New(nil, nil, 3)
	c.BeginFrame(win, Mouse{})
	Set(c, 1, NewSlider(0.5, 0, 1).Depth(0))
	Set(c, 2, NewSlider(0.5, 0, 1).Depth(5))
	Set(c, 3, NewSlider(0.5, 0, 1).Depth(0).Label("front"))
	els := c.EndFrame()

	require.Len(t, els, 3)
	assert.Equal(t, Depth(5), els[0].Depth)
	assert.Len(t, els[1].Forms, 2)
	assert.Len(t, els[2].Forms, 3, "equal depths keep call order")
}

func TestCtxTextWidthFallback(t *testing.T) {
	c := New(nil, nil, 0)
	assert.Equal(t, float32(30), c.TextWidth(10, "abcdef"))

	c = New(nil, fixedWidth(4), 0)
	assert.Equal(t, float32(24), c.TextWidth(10, "abcdef"))
}

type fixedWidth float32

func (w fixedWidth) TextWidth(_ FontSize, s string) float32 { return float32(w) * float32(len(s)) }
