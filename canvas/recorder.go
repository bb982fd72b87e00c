// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"image/color"

	"gioui.org/f32"
)

// OpKind identifies a recorded call.
type OpKind uint8

const (
	OpPushClip OpKind = iota
	OpPopClip
	OpShadow
	OpStroke
	OpRotate
	OpMark
)

// Op is one recorded call.
type Op struct {
	Kind OpKind
	// Depth is the clip depth the call was made at.
	Depth   int
	Path    Path
	Shadow  Shadow
	Width   float32
	Color   color.NRGBA
	Degrees float32
	Pivot   f32.Point
	Name    string
}

// Recorder is a Canvas that records calls in order.
type Recorder struct {
	Ops   []Op
	depth int
}

var _ Canvas = (*Recorder)(nil)

func (r *Recorder) add(o Op) {
	o.Depth = r.depth
	r.Ops = append(r.Ops, o)
}

func (r *Recorder) PushClip(p Path) Pop {
	r.add(Op{Kind: OpPushClip, Path: p})
	r.depth++
	popped := false
	return func() {
		if popped {
			return
		}
		popped = true
		r.depth--
		r.add(Op{Kind: OpPopClip, Path: p})
	}
}

func (r *Recorder) FillShadow(p Path, s Shadow) {
	r.add(Op{Kind: OpShadow, Path: p, Shadow: s})
}

func (r *Recorder) Stroke(p Path, width float32, c color.NRGBA) {
	r.add(Op{Kind: OpStroke, Path: p, Width: width, Color: c})
}

func (r *Recorder) Rotate(degrees float32, pivot f32.Point) {
	r.add(Op{Kind: OpRotate, Degrees: degrees, Pivot: pivot})
}

// Mark records a named call, such as a host drawing its own content.
func (r *Recorder) Mark(name string) {
	r.add(Op{Kind: OpMark, Name: name})
}

// Depth returns the current clip depth.
func (r *Recorder) Depth() int { return r.depth }

// Kinds returns the kinds of the recorded calls.
func (r *Recorder) Kinds() []OpKind {
	kinds := make([]OpKind, len(r.Ops))
	for i, o := range r.Ops {
		kinds[i] = o.Kind
	}
	return kinds
}

// Reset discards the recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.depth = 0
}
