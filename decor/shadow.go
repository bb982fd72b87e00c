// SPDX-License-Identifier: Unlicense OR MIT

package decor

import (
	"gioui.org/f32"

	"github.com/chenchen/superlayout/attr"
	"github.com/chenchen/superlayout/canvas"
	"github.com/chenchen/superlayout/geom"
)

// shadows derives the shadow region from its own copy of the content
// rectangle so that the shadow is not clipped by the corner path.
type shadows struct {
	attrs *attr.Store
	path  canvas.Path
}

func (s *shadows) recalculate(content geom.Rect) bool {
	a := s.attrs
	sr := a.ShadowRadius()
	r := content.Inset(sr, sr)
	if a.IsFitSystemBar() {
		r.Min.Y += float32(a.StatusBarHeight())
	}
	if a.IsClipPadding() {
		r = r.InsetBy(a.Padding())
	}
	r = shiftEdges(r, a.ShadowDx(), a.ShadowDy())
	r, collapsed := r.Collapse()
	s.path = canvas.NewPath(r, a.IsCircle(), a.CornerRadii())
	return collapsed
}

func (s *shadows) draw(cv canvas.Canvas) {
	a := s.attrs
	if !a.CanDrawShadow() {
		return
	}
	cv.FillShadow(s.path, canvas.Shadow{
		Color:  a.ShadowColor(),
		Radius: a.ShadowRadius(),
		Offset: f32.Point{X: a.ShadowDx(), Y: a.ShadowDy()},
	})
}
