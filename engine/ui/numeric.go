package ui

import "github.com/chewxy/math32"

// Float is the set of value types a slider can drive.
type Float interface {
	~float32 | ~float64
}

func clampf(v, lo, hi float32) float32 {
	if math32.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// percentage returns where value sits in [min, max] as a fraction in [0, 1].
// An empty range reports 0.
func percentage[T Float](value, min, max T) float32 {
	span := max - min
	if span == 0 {
		return 0
	}
	p := float32((value - min) / span)
	if math32.IsInf(p, 0) {
		return 0
	}
	return clampf(p, 0, 1)
}

// valueFromPerc is the inverse of percentage.
func valueFromPerc[T Float](perc float32, min, max T) T {
	return min + (max-min)*T(perc)
}

func inRange[T Float](v, min, max T) bool {
	if min > max {
		min, max = max, min
	}
	return v >= min && v <= max
}

// clampValue limits v to the range spanned by min and max in either order.
func clampValue[T Float](v, min, max T) T {
	if min > max {
		min, max = max, min
	}
	switch {
	case v < min:
		return min
	case v > max:
		return max
	}
	return v
}
