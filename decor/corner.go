// SPDX-License-Identifier: Unlicense OR MIT

package decor

import (
	"github.com/chenchen/superlayout/attr"
	"github.com/chenchen/superlayout/canvas"
	"github.com/chenchen/superlayout/geom"
)

// corners derives the clip region and the border from the content
// rectangle.
type corners struct {
	attrs *attr.Store
	path  canvas.Path
}

// recalculate derives the clip path from content. It reports whether a
// degenerate axis was collapsed.
func (c *corners) recalculate(content geom.Rect) bool {
	a := c.attrs
	r := content
	if a.IsFitSystemBar() {
		r.Min.Y += float32(a.StatusBarHeight())
	}
	if a.IsClipPadding() {
		r = r.InsetBy(a.Padding())
	}
	if a.CanDrawShadow() {
		sr := a.ShadowRadius()
		r = shiftEdges(r.Inset(sr, sr), a.ShadowDx(), a.ShadowDy())
	}
	r, collapsed := r.Collapse()
	c.path = canvas.NewPath(r, a.IsCircle(), a.CornerRadii())
	return collapsed
}

// clips reports whether the clip differs from the plain content
// rectangle.
func (c *corners) clips() bool {
	a := c.attrs
	return a.CanDrawShadow() || a.HasRadius() || a.IsCircle()
}

// push applies the clip to cv.
func (c *corners) push(cv canvas.Canvas) canvas.Pop {
	if !c.clips() {
		return func() {}
	}
	return cv.PushClip(c.path)
}

func (c *corners) drawBorder(cv canvas.Canvas) {
	a := c.attrs
	if a.StrokeWidth() <= 0 {
		return
	}
	cv.Stroke(c.path, a.StrokeWidth(), a.StrokeColor())
}

// shiftEdges shrinks the edge facing away from the shadow offset: a
// positive dx moves the right edge in, a negative dx the left edge, and
// likewise for dy with the bottom and top edges.
func shiftEdges(r geom.Rect, dx, dy float32) geom.Rect {
	switch {
	case dx > 0:
		r.Max.X -= dx
	case dx < 0:
		r.Min.X -= dx
	}
	switch {
	case dy > 0:
		r.Max.Y -= dy
	case dy < 0:
		r.Min.Y -= dy
	}
	return r
}
