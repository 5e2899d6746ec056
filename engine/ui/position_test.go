package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePosition(t *testing.T) {
	prev := Rect{XY: Point{100, 50}, Dim: Dimensions{200, 40}}
	dim := Dimensions{100, 20}
	origin := Point{20, 20}

	tests := []struct {
		name string
		pos  Position
		h    HorizontalAlign
		v    VerticalAlign
		want Point
	}{
		{"absolute", Absolute(7, 9), AlignLeft, AlignTop, Point{7, 9}},
		{"relative", Relative(10, -5), AlignLeft, AlignTop, Point{110, 45}},
		{"down left", Down(10), AlignLeft, AlignTop, Point{100, 100}},
		{"down middle", Down(10), AlignMiddleX, AlignTop, Point{150, 100}},
		{"down right", Down(10), AlignRight, AlignTop, Point{200, 100}},
		{"up", Up(5), AlignLeft, AlignTop, Point{100, 25}},
		{"right top", Right(4), AlignLeft, AlignTop, Point{304, 50}},
		{"right middle", Right(4), AlignLeft, AlignMiddleY, Point{304, 60}},
		{"left bottom", Left(4), AlignLeft, AlignBottom, Point{-4, 70}},
	}
	for _, tt := range tests {
		got := ResolvePosition(tt.pos, dim, tt.h, tt.v, prev, true, origin)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestResolvePositionFirstWidget(t *testing.T) {
	origin := Point{20, 20}
	dim := Dimensions{10, 10}
	assert.Equal(t, origin, ResolvePosition(Down(50), dim, AlignLeft, AlignTop, Rect{}, false, origin))
	assert.Equal(t, Point{25, 20}, ResolvePosition(Relative(5, 0), dim, AlignLeft, AlignTop, Rect{}, false, origin))
	assert.Equal(t, Point{1, 2}, ResolvePosition(Absolute(1, 2), dim, AlignLeft, AlignTop, Rect{}, false, origin))
}

func TestIsOverRect(t *testing.T) {
	dim := Dimensions{10, 5}
	assert.True(t, IsOverRect(Point{}, Point{0, 0}, dim))
	assert.True(t, IsOverRect(Point{}, Point{10, 5}, dim))
	assert.True(t, IsOverRect(Point{2, 2}, Point{7, 4}, dim))
	assert.False(t, IsOverRect(Point{}, Point{-0.1, 2}, dim))
	assert.False(t, IsOverRect(Point{}, Point{3, 5.1}, dim))
}

func TestMouseRelativeTo(t *testing.T) {
	m := Mouse{XY: Point{30, 40}, Left: ButtonDown}
	assert.Equal(t, Mouse{XY: Point{20, 10}, Left: ButtonDown}, m.RelativeTo(Point{10, 30}))
}
