// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom holds the float32 rectangle and integer insets shared by the
decoration engines.

The coordinate space has the origin in the top left corner with the axes
extending right and down.
*/
package geom

import (
	"image"

	"gioui.org/f32"
)

// A Rect contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y. Unlike image.Rectangle a Rect is never
// canonicalized implicitly; insets may push Min past Max.
type Rect struct {
	Min, Max f32.Point
}

// Insets are the four edge distances of a padding.
type Insets struct {
	Left, Top, Right, Bottom int
}

// FRect returns the rectangle with the given edges.
func FRect(left, top, right, bottom float32) Rect {
	return Rect{
		Min: f32.Point{X: left, Y: top},
		Max: f32.Point{X: right, Y: bottom},
	}
}

// FromSize returns the rectangle at the origin with size sz.
func FromSize(sz image.Point) Rect {
	return FRect(0, 0, float32(sz.X), float32(sz.Y))
}

// Dx returns r's width.
func (r Rect) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r Rect) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Size returns r's width and height.
func (r Rect) Size() f32.Point {
	return f32.Point{X: r.Dx(), Y: r.Dy()}
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Area returns the area of r, or 0 for an empty rectangle.
func (r Rect) Area() float32 {
	if r.Empty() {
		return 0
	}
	return r.Dx() * r.Dy()
}

// Center returns the midpoint of r.
func (r Rect) Center() f32.Point {
	return f32.Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Inset shrinks r by dx horizontally and dy vertically on both sides.
func (r Rect) Inset(dx, dy float32) Rect {
	r.Min.X += dx
	r.Min.Y += dy
	r.Max.X -= dx
	r.Max.Y -= dy
	return r
}

// InsetBy shrinks every edge of r by the matching edge of in.
func (r Rect) InsetBy(in Insets) Rect {
	r.Min.X += float32(in.Left)
	r.Min.Y += float32(in.Top)
	r.Max.X -= float32(in.Right)
	r.Max.Y -= float32(in.Bottom)
	return r
}

// Collapse clamps a degenerate axis of r to the zero span [0, 0].
// It reports whether anything was collapsed.
func (r Rect) Collapse() (Rect, bool) {
	collapsed := false
	if r.Dx() <= 0 {
		r.Min.X, r.Max.X = 0, 0
		collapsed = true
	}
	if r.Dy() <= 0 {
		r.Min.Y, r.Max.Y = 0, 0
		collapsed = true
	}
	return r, collapsed
}

// Round returns the integer rectangle nearest to r.
func (r Rect) Round() image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: round(r.Min.X), Y: round(r.Min.Y)},
		Max: image.Point{X: round(r.Max.X), Y: round(r.Max.Y)},
	}
}

// Add returns the sum of two insets.
func (in Insets) Add(o Insets) Insets {
	return Insets{
		Left:   in.Left + o.Left,
		Top:    in.Top + o.Top,
		Right:  in.Right + o.Right,
		Bottom: in.Bottom + o.Bottom,
	}
}

func round(v float32) int {
	if v < 0 {
		return int(v - .5)
	}
	return int(v + .5)
}
