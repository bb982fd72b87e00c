// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"image/color"
	"testing"

	"gioui.org/f32"
	"gioui.org/op"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenchen/superlayout/geom"
)

var _ Canvas = (*Gio)(nil)

func TestNewPath(t *testing.T) {
	b := geom.FRect(0, 0, 10, 20)
	radii := [8]float32{1, 2, 3, 3, 4, 4, 5, 0}

	p := NewPath(b, true, radii)
	assert.Equal(t, Oval, p.Shape)
	assert.Equal(t, [8]float32{}, p.Radii)

	p = NewPath(b, false, radii)
	assert.Equal(t, RoundRect, p.Shape)
	nw, ne, se, sw := p.Corners()
	assert.Equal(t, []float32{2, 3, 4, 5}, []float32{nw, ne, se, sw})
}

func TestRecorderClipDepth(t *testing.T) {
	var r Recorder
	p := NewPath(geom.FRect(0, 0, 4, 4), false, [8]float32{})
	pop := r.PushClip(p)
	r.Mark("content")
	pop()
	pop()
	r.Stroke(p, 2, color.NRGBA{A: 0xff})

	require.Equal(t, []OpKind{OpPushClip, OpMark, OpPopClip, OpStroke}, r.Kinds())
	assert.Equal(t, 1, r.Ops[1].Depth)
	assert.Equal(t, 0, r.Ops[3].Depth)
	assert.Equal(t, 0, r.Depth())

	r.Reset()
	assert.Empty(t, r.Ops)
}

func TestGrow(t *testing.T) {
	p := NewPath(geom.FRect(10, 10, 20, 20), false, [8]float32{2, 2, 0, 0, 2, 2, 0, 0})
	g := grow(p, 3)
	assert.Equal(t, geom.FRect(7, 7, 23, 23), g.Bounds)
	assert.Equal(t, [8]float32{5, 5, 0, 0, 5, 5, 0, 0}, g.Radii)
}

func TestGioFrame(t *testing.T) {
	ops := new(op.Ops)
	g := NewGio(ops)
	p := NewPath(geom.FRect(2, 2, 50, 30), false, [8]float32{4, 4, 4, 4, 4, 4, 4, 4})
	g.FillShadow(p, Shadow{Color: color.NRGBA{A: 0x80}, Radius: 6, Offset: f32.Pt(2, 2)})
	pop := g.PushClip(p)
	pop()
	g.Stroke(NewPath(p.Bounds, true, p.Radii), 2, color.NRGBA{R: 0xff, A: 0xff})
	g.Rotate(90, p.Bounds.Center())
	assert.NotPanics(t, g.Finish)
}
