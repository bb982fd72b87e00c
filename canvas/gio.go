// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// maxShadowLayers bounds the number of translucent layers approximating a
// blurred shadow.
const maxShadowLayers = 8

// Gio is a Canvas that records Gio operations. Everything drawn between
// NewGio and Finish is recorded into a macro so that a rotation requested
// at any point of the frame applies to the whole frame.
type Gio struct {
	ops   *op.Ops
	macro op.MacroOp

	rotated bool
	degrees float32
	pivot   f32.Point
}

// NewGio starts recording a frame into ops.
func NewGio(ops *op.Ops) *Gio {
	return &Gio{
		ops:   ops,
		macro: op.Record(ops),
	}
}

// Finish stops recording and adds the frame to the ops, rotated if Rotate
// was called.
func (g *Gio) Finish() {
	call := g.macro.Stop()
	if g.rotated {
		rad := g.degrees * math.Pi / 180
		defer op.Affine(f32.Affine2D{}.Rotate(g.pivot, rad)).Push(g.ops).Pop()
	}
	call.Add(g.ops)
}

func (g *Gio) PushClip(p Path) Pop {
	st := clipOp(g.ops, p).Push(g.ops)
	return st.Pop
}

// FillShadow approximates the blur with layers of decreasing spread that
// accumulate towards the shape.
func (g *Gio) FillShadow(p Path, s Shadow) {
	if s.Color.A == 0 || s.Radius <= 0 {
		return
	}
	layers := int(math.Ceil(float64(s.Radius) / 2))
	if layers > maxShadowLayers {
		layers = maxShadowLayers
	}
	off := image.Point{X: int(math.Round(float64(s.Offset.X))), Y: int(math.Round(float64(s.Offset.Y)))}
	defer op.Offset(off).Push(g.ops).Pop()
	c := s.Color
	c.A = uint8(int(s.Color.A) / (layers + 1))
	if c.A == 0 {
		c.A = 1
	}
	for i := layers; i >= 0; i-- {
		spread := s.Radius * float32(i) / float32(layers)
		paint.FillShape(g.ops, c, clipOp(g.ops, grow(p, spread)))
	}
}

func (g *Gio) Stroke(p Path, width float32, c color.NRGBA) {
	paint.FillShape(g.ops, c, clip.Stroke{
		Path:  pathSpec(g.ops, p),
		Width: width,
	}.Op())
}

func (g *Gio) Rotate(degrees float32, pivot f32.Point) {
	g.rotated = true
	g.degrees = degrees
	g.pivot = pivot
}

// grow expands p by d on every side, growing the corner radii accordingly.
func grow(p Path, d float32) Path {
	p.Bounds = p.Bounds.Inset(-d, -d)
	if p.Shape == RoundRect {
		for i, r := range p.Radii {
			if r > 0 {
				p.Radii[i] = r + d
			}
		}
	}
	return p
}

func rrect(p Path) clip.RRect {
	nw, ne, se, sw := p.Corners()
	return clip.RRect{
		Rect: p.Bounds.Round(),
		NW:   int(nw + .5),
		NE:   int(ne + .5),
		SE:   int(se + .5),
		SW:   int(sw + .5),
	}
}

func clipOp(ops *op.Ops, p Path) clip.Op {
	if p.Shape == Oval {
		return clip.Ellipse(p.Bounds.Round()).Op(ops)
	}
	return rrect(p).Op(ops)
}

func pathSpec(ops *op.Ops, p Path) clip.PathSpec {
	if p.Shape == Oval {
		return clip.Ellipse(p.Bounds.Round()).Path(ops)
	}
	return rrect(p).Path(ops)
}
