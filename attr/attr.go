// SPDX-License-Identifier: Unlicense OR MIT

// Package attr implements the attribute store shared by the decoration
// engines of a container.
//
// A Store holds the requested decoration parameters together with a few
// cached environment values. Setters are fluent and idempotent: writing the
// value already held is a no-op. A setter that changes state notifies the
// store's Target with the least expensive request that keeps the container
// consistent: Invalidate for attributes read while drawing, RequestLayout
// for attributes read while measuring, and ApplyPadding when the effective
// padding depends on the change.
package attr

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/chenchen/superlayout/geom"
)

// FixOrientation selects the dimension an aspect ratio is derived from.
type FixOrientation uint8

const (
	// Horizontal keeps the width and derives the height.
	Horizontal FixOrientation = iota
	// Vertical keeps the height and derives the width.
	Vertical
)

// Target receives the side effects of attribute changes.
type Target interface {
	// Invalidate requests a redraw.
	Invalidate()
	// RequestLayout requests a new measurement pass.
	RequestLayout()
	// ApplyPadding re-applies the requested padding so that the effective
	// padding is recomputed.
	ApplyPadding(requested geom.Insets)
}

// Environment provides the host environment values a Store caches.
type Environment interface {
	StatusBarHeight() int
	ScreenSize() image.Point
}

// Store is the attribute store of one decorated container.
// The zero value is not usable; use New.
type Store struct {
	target Target
	env    Environment

	envResolved     bool
	statusBarHeight int
	screenSize      image.Point

	padding geom.Insets

	// radii holds the corner radius pairs in the order
	// TL, TL, TR, TR, BR, BR, BL, BL.
	radii        [8]float32
	cornerRadius float32
	circle       bool

	strokeWidth float32
	strokeColor color.NRGBA

	touchable    bool
	clipPadding  bool
	fitSystemBar bool

	aspectRatio float32
	orientation FixOrientation

	shadowColor  color.NRGBA
	shadowRadius float32
	shadowDx     float32
	shadowDy     float32

	canvasRotate   bool
	rotateInterval time.Duration
	rotateDegree   float32
	smoothRotate   bool
	clockwise      bool
	rotateDuration time.Duration
	autoStart      bool

	autoCheckable bool
	receiveCheck  bool
	transitive    bool
	checked       bool
}

type nopTarget struct{}

func (nopTarget) Invalidate()              {}
func (nopTarget) RequestLayout()           {}
func (nopTarget) ApplyPadding(geom.Insets) {}

// New returns a store holding the default attributes. A nil target
// discards change notifications and a nil env reports zero values.
func New(t Target, env Environment) *Store {
	if t == nil {
		t = nopTarget{}
	}
	d := DefaultConfig()
	return &Store{
		target:         t,
		env:            env,
		touchable:      d.Touchable,
		clipPadding:    d.ClipPadding,
		rotateInterval: d.RotateInterval,
		rotateDegree:   d.RotateDegree,
		smoothRotate:   d.SmoothRotate,
		clockwise:      d.ClockwiseRotate,
		rotateDuration: d.RotateDuration,
	}
}

// SetTarget replaces the change notification target.
func (s *Store) SetTarget(t Target) {
	if t == nil {
		t = nopTarget{}
	}
	s.target = t
}

func (s *Store) resolveEnv() {
	if s.envResolved || s.env == nil {
		return
	}
	s.statusBarHeight = s.env.StatusBarHeight()
	s.screenSize = s.env.ScreenSize()
	s.envResolved = true
}

// StatusBarHeight returns the status bar height, resolved on first use.
func (s *Store) StatusBarHeight() int {
	s.resolveEnv()
	return s.statusBarHeight
}

// ScreenSize returns the screen size, resolved on first use.
func (s *Store) ScreenSize() image.Point {
	s.resolveEnv()
	return s.screenSize
}

// Padding returns the requested padding, excluding any space reserved for
// the status bar or the shadow.
func (s *Store) Padding() geom.Insets { return s.padding }

func (s *Store) LeftPadding() int   { return s.padding.Left }
func (s *Store) TopPadding() int    { return s.padding.Top }
func (s *Store) RightPadding() int  { return s.padding.Right }
func (s *Store) BottomPadding() int { return s.padding.Bottom }

// SetRequestedPadding records the padding a caller asked for. It does not
// notify the target; applying it natively is the caller's job.
func (s *Store) SetRequestedPadding(in geom.Insets) *Store {
	s.padding = in
	return s
}

// EffectivePadding returns the padding the host must apply: the requested
// padding plus the status bar height when fitting the system bar (unless
// the host already consumes system insets) plus the shadow extents.
func (s *Store) EffectivePadding(fitsSystemWindows bool) geom.Insets {
	p := s.padding
	if s.fitSystemBar && !fitsSystemWindows {
		p.Top += s.StatusBarHeight()
	}
	if s.CanDrawShadow() {
		r := int(s.shadowRadius)
		p = p.Add(geom.Insets{Left: r, Top: r, Right: r, Bottom: r})
		switch {
		case s.shadowDx > 0:
			p.Right += int(s.shadowDx)
		case s.shadowDx < 0:
			p.Left += int(-s.shadowDx)
		}
		switch {
		case s.shadowDy > 0:
			p.Bottom += int(s.shadowDy)
		case s.shadowDy < 0:
			p.Top += int(-s.shadowDy)
		}
	}
	return p
}

// CornerRadii returns the corner radius pairs, TL, TL, TR, TR, BR, BR, BL, BL.
func (s *Store) CornerRadii() [8]float32 { return s.radii }

// CornerRadius returns the uniform corner radius, or 0 if per-corner radii
// are in effect.
func (s *Store) CornerRadius() float32 { return s.cornerRadius }

func (s *Store) LeftTopRadius() float32     { return max32(s.radii[0], s.radii[1]) }
func (s *Store) RightTopRadius() float32    { return max32(s.radii[2], s.radii[3]) }
func (s *Store) RightBottomRadius() float32 { return max32(s.radii[4], s.radii[5]) }
func (s *Store) LeftBottomRadius() float32  { return max32(s.radii[6], s.radii[7]) }

// HasRadius reports whether any corner radius is positive.
func (s *Store) HasRadius() bool {
	for _, r := range s.radii {
		if r > 0 {
			return true
		}
	}
	return false
}

func (s *Store) IsCircle() bool              { return s.circle }
func (s *Store) StrokeWidth() float32        { return s.strokeWidth }
func (s *Store) StrokeColor() color.NRGBA    { return s.strokeColor }
func (s *Store) IsTouchable() bool           { return s.touchable }
func (s *Store) IsClipPadding() bool         { return s.clipPadding }
func (s *Store) IsFitSystemBar() bool        { return s.fitSystemBar }
func (s *Store) AspectRatio() float32        { return s.aspectRatio }
func (s *Store) Orientation() FixOrientation { return s.orientation }

func (s *Store) ShadowColor() color.NRGBA { return s.shadowColor }
func (s *Store) ShadowRadius() float32    { return s.shadowRadius }
func (s *Store) ShadowDx() float32        { return s.shadowDx }
func (s *Store) ShadowDy() float32        { return s.shadowDy }

// CanDrawShadow reports whether the shadow is enabled: a non-transparent
// color and a non-zero radius.
func (s *Store) CanDrawShadow() bool {
	return s.shadowColor.A != 0 && s.shadowRadius != 0
}

func (s *Store) IsCanvasRotate() bool           { return s.canvasRotate }
func (s *Store) RotateInterval() time.Duration  { return s.rotateInterval }
func (s *Store) RotateIntervalDegree() float32  { return s.rotateDegree }
func (s *Store) IsSmoothRotate() bool           { return s.smoothRotate }
func (s *Store) IsClockwiseRotate() bool        { return s.clockwise }
func (s *Store) RotateDuration() time.Duration  { return s.rotateDuration }
func (s *Store) IsAutoStartRotate() bool        { return s.autoStart }
func (s *Store) IsAutoCheckable() bool          { return s.autoCheckable }
func (s *Store) IsReceiveCheckFromParent() bool { return s.receiveCheck }
func (s *Store) IsTransitiveCheckToChild() bool { return s.transitive }
func (s *Store) IsChecked() bool                { return s.checked }

func (s *Store) relayout() {
	s.target.RequestLayout()
	s.target.Invalidate()
}

// SetTouchable enables or disables touch handling.
func (s *Store) SetTouchable(v bool) *Store {
	s.touchable = v
	return s
}

// SetClipPadding selects whether the clip region excludes the padding.
func (s *Store) SetClipPadding(v bool) *Store {
	if s.clipPadding == v {
		return s
	}
	s.clipPadding = v
	s.relayout()
	return s
}

// SetAspectRatio sets the width to height ratio. Positive ratios force
// both dimensions, negative ratios only force dimensions that fill their
// parent and 0 disables the constraint.
func (s *Store) SetAspectRatio(ratio float32) *Store {
	if s.aspectRatio == ratio {
		return s
	}
	s.aspectRatio = ratio
	s.relayout()
	return s
}

// SetAspectRatioPreset sets the aspect ratio to one of the presets.
func (s *Store) SetAspectRatioPreset(r Ratio) *Store {
	return s.SetAspectRatio(r.Value())
}

// SetFixOrientation sets the dimension the aspect ratio is derived from.
func (s *Store) SetFixOrientation(o FixOrientation) *Store {
	if s.orientation == o {
		return s
	}
	s.orientation = o
	s.relayout()
	return s
}

// SetFitSystemBar reserves the status bar height above the content.
func (s *Store) SetFitSystemBar(v bool) *Store {
	if s.fitSystemBar == v {
		return s
	}
	s.fitSystemBar = v
	s.target.ApplyPadding(s.padding)
	s.relayout()
	return s
}

// SetCircle clips to the oval inscribed in the content instead of a rounded
// rectangle.
func (s *Store) SetCircle(v bool) *Store {
	if s.circle == v {
		return s
	}
	s.circle = v
	s.relayout()
	return s
}

// SetCornerRadius sets a uniform radius for all four corners. A non-zero
// radius overrides any per-corner radii.
func (s *Store) SetCornerRadius(r float32) *Store {
	return s.setCorners(r, r, r, r, r)
}

// SetCornerRadii sets the per-corner radii and clears the uniform radius.
func (s *Store) SetCornerRadii(leftTop, rightTop, leftBottom, rightBottom float32) *Store {
	return s.setCorners(0, leftTop, rightTop, leftBottom, rightBottom)
}

func (s *Store) setCorners(uniform, lt, rt, lb, rb float32) *Store {
	if uniform != 0 {
		lt, rt, lb, rb = uniform, uniform, uniform, uniform
	}
	radii := [8]float32{lt, lt, rt, rt, rb, rb, lb, lb}
	if s.cornerRadius == uniform && s.radii == radii {
		return s
	}
	s.cornerRadius = uniform
	s.radii = radii
	s.relayout()
	return s
}

// SetBorder sets the stroke drawn around the clip region.
func (s *Store) SetBorder(width float32, c color.NRGBA) *Store {
	if s.strokeWidth == width && s.strokeColor == c {
		return s
	}
	s.strokeWidth = width
	s.strokeColor = c
	s.target.Invalidate()
	return s
}

// SetShadowStyle sets the shadow. The padding is re-applied even when the
// style is unchanged, since the effective padding reserves the shadow
// extents.
func (s *Store) SetShadowStyle(c color.NRGBA, radius, dx, dy float32) *Store {
	s.shadowColor = c
	s.shadowRadius = radius
	s.shadowDx = dx
	s.shadowDy = dy
	s.target.ApplyPadding(s.padding)
	s.relayout()
	return s
}

// SetRotateInterval sets the time between steps of a stepped rotation.
func (s *Store) SetRotateInterval(d time.Duration) *Store {
	s.rotateInterval = d
	return s
}

// SetRotateIntervalDegree sets the angle of each step of a stepped rotation.
func (s *Store) SetRotateIntervalDegree(deg float32) *Store {
	s.rotateDegree = deg
	return s
}

// SetRotateDuration sets the time of one full turn of a smooth rotation.
func (s *Store) SetRotateDuration(d time.Duration) *Store {
	s.rotateDuration = d
	return s
}

func (s *Store) SetSmoothRotate(v bool) *Store {
	s.smoothRotate = v
	return s
}

func (s *Store) SetClockwiseRotate(v bool) *Store {
	s.clockwise = v
	return s
}

// SetCanvasRotate selects rotating the drawing surface instead of the
// container transform.
func (s *Store) SetCanvasRotate(v bool) *Store {
	s.canvasRotate = v
	return s
}

func (s *Store) SetAutoStartRotate(v bool) *Store {
	s.autoStart = v
	return s
}

// SetAutoCheckable makes clicks toggle the checked state.
func (s *Store) SetAutoCheckable(v bool) *Store {
	if s.autoCheckable == v {
		return s
	}
	s.autoCheckable = v
	s.relayout()
	return s
}

func (s *Store) SetReceiveCheckFromParent(v bool) *Store {
	if s.receiveCheck == v {
		return s
	}
	s.receiveCheck = v
	s.relayout()
	return s
}

func (s *Store) SetTransitiveCheckToChild(v bool) *Store {
	if s.transitive == v {
		return s
	}
	s.transitive = v
	s.relayout()
	return s
}

// SetChecked stores the checked state. Propagation is done by the caller.
func (s *Store) SetChecked(v bool) *Store {
	if s.checked == v {
		return s
	}
	s.checked = v
	s.relayout()
	return s
}

func max32(a, b float32) float32 {
	return float32(math.Max(float64(a), float64(b)))
}
