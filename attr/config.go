// SPDX-License-Identifier: Unlicense OR MIT

package attr

import (
	"image/color"
	"time"
)

// Config is the set of options a decorated container is constructed with.
type Config struct {
	Circle bool
	// CornerRadius applies to all corners. The per-corner radii are used
	// only when CornerRadius <= 0.
	CornerRadius      float32
	LeftTopRadius     float32
	RightTopRadius    float32
	LeftBottomRadius  float32
	RightBottomRadius float32

	StrokeWidth float32
	StrokeColor color.NRGBA

	AspectRatio    float32
	FixOrientation FixOrientation

	Touchable    bool
	ClipPadding  bool
	FitSystemBar bool

	ShadowColor  color.NRGBA
	ShadowRadius float32
	ShadowDx     float32
	ShadowDy     float32

	RotateInterval  time.Duration
	RotateDegree    float32
	RotateDuration  time.Duration
	ClockwiseRotate bool
	SmoothRotate    bool
	AutoStartRotate bool
	CanvasRotate    bool

	AutoCheckable          bool
	ReceiveCheckFromParent bool
	TransitiveCheckToChild bool
}

// DefaultConfig returns the options of an undecorated container.
func DefaultConfig() Config {
	return Config{
		Touchable:       true,
		ClipPadding:     true,
		RotateInterval:  100 * time.Millisecond,
		RotateDegree:    30,
		RotateDuration:  500 * time.Millisecond,
		ClockwiseRotate: true,
		SmoothRotate:    true,
	}
}

// Apply writes every option of c to the store through its setters.
func (s *Store) Apply(c Config) *Store {
	s.SetCircle(c.Circle)
	s.SetCornerRadius(c.CornerRadius)
	if s.CornerRadius() <= 0 {
		s.SetCornerRadii(c.LeftTopRadius, c.RightTopRadius, c.LeftBottomRadius, c.RightBottomRadius)
	}
	s.SetBorder(c.StrokeWidth, c.StrokeColor)
	s.SetAspectRatio(c.AspectRatio)
	s.SetFixOrientation(c.FixOrientation)
	s.SetTouchable(c.Touchable)
	s.SetClipPadding(c.ClipPadding)
	s.SetFitSystemBar(c.FitSystemBar)
	s.SetShadowStyle(c.ShadowColor, c.ShadowRadius, c.ShadowDx, c.ShadowDy)
	s.SetRotateInterval(c.RotateInterval)
	s.SetRotateIntervalDegree(c.RotateDegree)
	s.SetRotateDuration(c.RotateDuration)
	s.SetClockwiseRotate(c.ClockwiseRotate)
	s.SetSmoothRotate(c.SmoothRotate)
	s.SetAutoStartRotate(c.AutoStartRotate)
	s.SetCanvasRotate(c.CanvasRotate)
	s.SetAutoCheckable(c.AutoCheckable)
	s.SetReceiveCheckFromParent(c.ReceiveCheckFromParent)
	s.SetTransitiveCheckToChild(c.TransitiveCheckToChild)
	return s
}
