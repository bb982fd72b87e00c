// SPDX-License-Identifier: Unlicense OR MIT

package decor

import (
	"image"
	"time"

	"gioui.org/io/event"

	"github.com/chenchen/superlayout/attr"
	"github.com/chenchen/superlayout/canvas"
	"github.com/chenchen/superlayout/geom"
)

// fakeHost records every call the Delegate makes into it.
type fakeHost struct {
	padding  geom.Insets
	paddings int

	specW, specH MeasureSpec
	measures     int
	// content is the size the host wants when not forced.
	content image.Point

	draws   int
	touches int
	clicks  int
	handled bool

	invalidates int
	layouts     int
	rotation    float32

	children     []any
	wHint, hHint SizeHint

	status    int
	fits      bool
	bg        image.Rectangle
	clickable bool
}

func (h *fakeHost) SetNativePadding(p geom.Insets) {
	h.padding = p
	h.paddings++
}

func (h *fakeHost) MeasureNative(w, hs MeasureSpec) image.Point {
	h.specW, h.specH = w, hs
	h.measures++
	return Size(w, hs, h.content)
}

func (h *fakeHost) DrawNative(c canvas.Canvas) {
	h.draws++
	if r, ok := c.(*canvas.Recorder); ok {
		r.Mark("content")
	}
}

func (h *fakeHost) DispatchTouchNative(e event.Event) bool {
	h.touches++
	return h.handled
}

func (h *fakeHost) InterceptTouchNative(e event.Event) bool {
	h.touches++
	return h.handled
}

func (h *fakeHost) TouchNative(e event.Event) bool {
	h.touches++
	return h.handled
}

func (h *fakeHost) PerformClickNative() bool {
	h.clicks++
	return true
}

func (h *fakeHost) Invalidate()                        { h.invalidates++ }
func (h *fakeHost) RequestLayout()                     { h.layouts++ }
func (h *fakeHost) SetRotation(degrees float32)        { h.rotation = degrees }
func (h *fakeHost) Children() []any                    { return h.children }
func (h *fakeHost) LayoutParams() (SizeHint, SizeHint) { return h.wHint, h.hHint }

func (h *fakeHost) StatusBarHeight() int    { return h.status }
func (h *fakeHost) ScreenSize() image.Point { return image.Pt(1080, 1920) }
func (h *fakeHost) FitsSystemWindows() bool { return h.fits }

func (h *fakeHost) SetBackgroundBounds(r image.Rectangle) { h.bg = r }
func (h *fakeHost) SetClickable(v bool)                   { h.clickable = v }

// fakeCheckable is a plain checkable child.
type fakeCheckable struct {
	checked bool
	receive bool
}

func (c *fakeCheckable) IsChecked() bool                { return c.checked }
func (c *fakeCheckable) SetChecked(v bool)              { c.checked = v }
func (c *fakeCheckable) IsReceiveCheckFromParent() bool { return c.receive }
func (c *fakeCheckable) IsTransitiveCheckToChild() bool { return false }

// clock is a manual time source.
type clock struct {
	t time.Time
}

func newClock() *clock {
	return &clock{t: time.Unix(1700000000, 0)}
}

func (c *clock) now() time.Time { return c.t }

func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newDelegate(h *fakeHost, cfg attr.Config, opts ...Option) *Delegate {
	d := New(h, cfg, opts...)
	h.invalidates, h.layouts, h.paddings = 0, 0, 0
	return d
}
