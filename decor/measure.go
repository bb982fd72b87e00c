// SPDX-License-Identifier: Unlicense OR MIT

package decor

import (
	"image"
	"math"

	"gioui.org/layout"
)

// SpecMode is how a MeasureSpec constrains a dimension.
type SpecMode uint8

const (
	// Unspecified leaves the dimension free.
	Unspecified SpecMode = iota
	// AtMost bounds the dimension by Size.
	AtMost
	// Exactly forces the dimension to Size.
	Exactly
)

// MeasureSpec constrains one dimension of a measurement.
type MeasureSpec struct {
	Mode SpecMode
	Size int
}

// SizeHint is how a parent sizes a host in one dimension.
type SizeHint uint8

const (
	// Wrap sizes the host to its content.
	Wrap SizeHint = iota
	// Match fills the space available in the parent.
	Match
	// Fixed is an explicit size.
	Fixed
)

// Exact returns the spec forcing size.
func Exact(size int) MeasureSpec {
	return MeasureSpec{Mode: Exactly, Size: size}
}

// Bounded returns the spec bounding the dimension by size.
func Bounded(size int) MeasureSpec {
	return MeasureSpec{Mode: AtMost, Size: size}
}

// Resolve returns the size a content of size want resolves to.
func (s MeasureSpec) Resolve(want int) int {
	switch s.Mode {
	case Exactly:
		return s.Size
	case AtMost:
		if want > s.Size {
			return s.Size
		}
	}
	return want
}

// SpecsOf converts Gio constraints into measure specs.
func SpecsOf(cs layout.Constraints) (w, h MeasureSpec) {
	spec := func(lo, hi int) MeasureSpec {
		if lo == hi {
			return Exact(hi)
		}
		return Bounded(hi)
	}
	return spec(cs.Min.X, cs.Max.X), spec(cs.Min.Y, cs.Max.Y)
}

// Constraints converts measure specs into Gio constraints.
func Constraints(w, h MeasureSpec) layout.Constraints {
	bound := func(s MeasureSpec) (int, int) {
		switch s.Mode {
		case Exactly:
			return s.Size, s.Size
		case AtMost:
			return 0, s.Size
		default:
			return 0, math.MaxInt32
		}
	}
	var cs layout.Constraints
	cs.Min.X, cs.Max.X = bound(w)
	cs.Min.Y, cs.Max.Y = bound(h)
	return cs
}

// Size resolves a desired content size against w and h.
func Size(w, h MeasureSpec, want image.Point) image.Point {
	return image.Point{X: w.Resolve(want.X), Y: h.Resolve(want.Y)}
}
