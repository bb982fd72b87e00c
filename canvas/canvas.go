// SPDX-License-Identifier: Unlicense OR MIT

/*
Package canvas defines the drawing surface the decoration engines draw on.

A Canvas is an immediate mode surface: clips are pushed and popped in stack
order, shapes are filled or stroked with the current clip applied. The
package provides a Canvas backed by Gio operations and a Recorder that
records the calls for inspection.
*/
package canvas

import (
	"image/color"

	"gioui.org/f32"

	"github.com/chenchen/superlayout/geom"
)

// Shape is the outline kind of a Path.
type Shape uint8

const (
	// RoundRect is a rectangle with per-corner radii.
	RoundRect Shape = iota
	// Oval is the ellipse inscribed in the bounds.
	Oval
)

// Path is an immutable closed outline, wound clockwise starting at the
// top left corner.
type Path struct {
	Shape  Shape
	Bounds geom.Rect
	// Radii holds the corner radius pairs in the order
	// TL, TL, TR, TR, BR, BR, BL, BL. Ignored for ovals.
	Radii [8]float32
}

// Shadow describes a blurred shadow layer.
type Shadow struct {
	Color  color.NRGBA
	Radius float32
	Offset f32.Point
}

// Pop restores the state saved by the matching push.
type Pop func()

// Canvas is a drawing surface.
type Canvas interface {
	// PushClip intersects the clip with p until the returned Pop is called.
	PushClip(p Path) Pop
	// FillShadow fills p with a blurred shadow.
	FillShadow(p Path, s Shadow)
	// Stroke traces the outline of p.
	Stroke(p Path, width float32, c color.NRGBA)
	// Rotate rotates everything drawn on the canvas for the current frame
	// by degrees clockwise about pivot.
	Rotate(degrees float32, pivot f32.Point)
}

// NewPath returns the outline of bounds: an oval if oval is set, otherwise a
// rounded rectangle with the given radii.
func NewPath(bounds geom.Rect, oval bool, radii [8]float32) Path {
	if oval {
		return Path{Shape: Oval, Bounds: bounds}
	}
	return Path{Shape: RoundRect, Bounds: bounds, Radii: radii}
}

// Corners returns the radius of each corner, the larger value of
// each radius pair.
func (p Path) Corners() (nw, ne, se, sw float32) {
	r := p.Radii
	return max(r[0], r[1]), max(r[2], r[3]), max(r[4], r[5]), max(r[6], r[7])
}
