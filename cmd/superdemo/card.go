// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/chenchen/superlayout/canvas"
	"github.com/chenchen/superlayout/decor"
	"github.com/chenchen/superlayout/geom"
)

// card is a decorated Gio widget. It draws a filled background and either
// a label or its child cards laid out in a row.
type card struct {
	*decor.Delegate

	th    *material.Theme
	label string
	bg    color.NRGBA
	on    color.NRGBA

	// want is the preferred content size in dp, zero to fill the
	// constraints. limit caps the constraints when non-zero.
	want  image.Point
	limit image.Point

	invalidate func()
	children   []*card

	gtx       layout.Context
	size      image.Point
	padding   geom.Insets
	bgBounds  image.Rectangle
	rotation  float32
	clickable bool
	attached  bool
	clicks    int
}

var (
	_ decor.Host                = (*card)(nil)
	_ decor.BackgroundBounder   = (*card)(nil)
	_ decor.ClickableSetter     = (*card)(nil)
	_ decor.SystemWindowsFitter = (*card)(nil)
)

func newCard(th *material.Theme, label string, bg color.NRGBA, want image.Point, invalidate func()) *card {
	return &card{
		th:         th,
		label:      label,
		bg:         bg,
		on:         bg,
		want:       want,
		invalidate: invalidate,
	}
}

// add appends child and lets the delegate push the checked state to it.
func (c *card) add(child *card) {
	c.children = append(c.children, child)
	c.OnChildAdded(child)
}

func (c *card) SetNativePadding(p geom.Insets) {
	if p == c.padding {
		return
	}
	c.padding = p
	c.RequestLayout()
}

func (c *card) MeasureNative(w, h decor.MeasureSpec) image.Point {
	p := c.padding
	fill := func(dp, pad int, s decor.MeasureSpec) int {
		if dp == 0 {
			return s.Size
		}
		return c.gtx.Dp(unit.Dp(dp)) + pad
	}
	want := image.Point{
		X: fill(c.want.X, p.Left+p.Right, w),
		Y: fill(c.want.Y, p.Top+p.Bottom, h),
	}
	return decor.Size(w, h, want)
}

func (c *card) DrawNative(canvas.Canvas) {
	gtx := c.gtx
	bg := c.bg
	if c.IsChecked() {
		bg = c.on
	}
	paint.FillShape(gtx.Ops, bg, clip.Rect(c.bgBounds).Op())

	p := c.padding
	inner := c.size.Sub(image.Pt(p.Left+p.Right, p.Top+p.Bottom))
	inner.X, inner.Y = max(inner.X, 0), max(inner.Y, 0)
	gtx.Constraints = layout.Exact(inner)
	defer op.Offset(image.Pt(p.Left, p.Top)).Push(gtx.Ops).Pop()

	if len(c.children) == 0 {
		layout.Center.Layout(gtx, material.Body1(c.th, c.label).Layout)
		return
	}
	row := make([]layout.FlexChild, len(c.children))
	for i, ch := range c.children {
		row[i] = layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(4)).Layout(gtx, ch.Layout)
		})
	}
	layout.Flex{Alignment: layout.Middle}.Layout(gtx, row...)
}

func (c *card) DispatchTouchNative(event.Event) bool  { return true }
func (c *card) InterceptTouchNative(event.Event) bool { return false }
func (c *card) TouchNative(event.Event) bool          { return c.clickable }

func (c *card) PerformClickNative() bool {
	c.clicks++
	c.invalidate()
	return true
}

func (c *card) Invalidate()             { c.invalidate() }
func (c *card) RequestLayout()          { c.invalidate() }
func (c *card) FitsSystemWindows() bool { return false }

func (c *card) SetRotation(degrees float32) { c.rotation = degrees }

func (c *card) Children() []any {
	out := make([]any, len(c.children))
	for i, ch := range c.children {
		out[i] = ch
	}
	return out
}

func (c *card) LayoutParams() (decor.SizeHint, decor.SizeHint) {
	return decor.Match, decor.Wrap
}

func (c *card) SetBackgroundBounds(r image.Rectangle) { c.bgBounds = r }
func (c *card) SetClickable(v bool)                   { c.clickable = v }

// Layout processes pointer input, then measures and draws the card.
func (c *card) Layout(gtx layout.Context) layout.Dimensions {
	if !c.attached {
		c.attached = true
		c.OnAttached()
		c.OnVisibilityChanged(true)
	}
	c.events(gtx)

	if c.limit.X > 0 {
		gtx.Constraints.Max.X = min(gtx.Constraints.Max.X, gtx.Dp(unit.Dp(c.limit.X)))
		gtx.Constraints.Min.X = min(gtx.Constraints.Min.X, gtx.Constraints.Max.X)
	}
	if c.limit.Y > 0 {
		gtx.Constraints.Max.Y = min(gtx.Constraints.Max.Y, gtx.Dp(unit.Dp(c.limit.Y)))
		gtx.Constraints.Min.Y = min(gtx.Constraints.Min.Y, gtx.Constraints.Max.Y)
	}
	c.gtx = gtx
	w, h := decor.SpecsOf(gtx.Constraints)
	c.size = c.Measure(w, h)
	c.bgBounds = image.Rectangle{Max: c.size}

	area := clip.Rect(image.Rectangle{Max: c.size}).Push(gtx.Ops)
	event.Op(gtx.Ops, c)
	area.Pop()

	if c.rotation != 0 {
		pivot := f32.Pt(float32(c.size.X)/2, float32(c.size.Y)/2)
		rot := f32.Affine2D{}.Rotate(pivot, c.rotation*math.Pi/180)
		defer op.Affine(rot).Push(gtx.Ops).Pop()
	}
	cv := canvas.NewGio(gtx.Ops)
	c.Draw(cv)
	cv.Finish()
	return layout.Dimensions{Size: c.size}
}

func (c *card) events(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: c,
			Kinds:  pointer.Press | pointer.Release | pointer.Cancel,
		})
		if !ok {
			return
		}
		e, ok := ev.(pointer.Event)
		if !ok || !c.DispatchTouch(e) {
			continue
		}
		if e.Kind == pointer.Release && c.Touch(e) {
			c.PerformClick()
		}
	}
}

// detach hides the card and its children.
func (c *card) detach() {
	for _, ch := range c.children {
		ch.detach()
	}
	if !c.attached {
		return
	}
	c.attached = false
	c.OnVisibilityChanged(false)
	c.OnDetached()
}
