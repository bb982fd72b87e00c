// SPDX-License-Identifier: Unlicense OR MIT

package decor

import (
	"image"
	"image/color"
	"testing"

	"gioui.org/io/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chenchen/superlayout/attr"
	"github.com/chenchen/superlayout/canvas"
	"github.com/chenchen/superlayout/geom"
)

func TestPaddingOverride(t *testing.T) {
	h := &fakeHost{status: 24}
	cfg := attr.DefaultConfig()
	cfg.FitSystemBar = true
	cfg.ShadowColor = opaque
	cfg.ShadowRadius = 4
	cfg.ShadowDx = -2
	cfg.ShadowDy = 3
	d := New(h, cfg)
	// New applies the effective padding of the empty requested padding.
	assert.Equal(t, geom.Insets{Left: 6, Top: 28, Right: 4, Bottom: 7}, h.padding)

	d.SetPadding(geom.Insets{Left: 1, Top: 2, Right: 3, Bottom: 4})
	assert.Equal(t, geom.Insets{Left: 7, Top: 30, Right: 7, Bottom: 11}, h.padding)
	assert.Equal(t, geom.Insets{Left: 1, Top: 2, Right: 3, Bottom: 4}, d.Attrs().Padding())
	assert.Equal(t, h.padding, d.EffectivePadding())

	// A host consuming the system insets natively gets no status bar inset.
	h.fits = true
	d.SetPadding(geom.Insets{})
	assert.Equal(t, geom.Insets{Left: 6, Top: 4, Right: 4, Bottom: 7}, h.padding)
}

func TestShadowStyleReappliesPadding(t *testing.T) {
	h := &fakeHost{}
	d := newDelegate(h, attr.DefaultConfig())
	d.SetPadding(geom.Insets{Left: 2, Top: 2, Right: 2, Bottom: 2})
	d.SetShadowStyle(opaque, 3, 1, 0)
	assert.Equal(t, geom.Insets{Left: 5, Top: 5, Right: 6, Bottom: 5}, h.padding)
	assert.Equal(t, 2, h.paddings)
	assert.Positive(t, h.layouts)

	d.SetShadowStyle(color.NRGBA{}, 3, 1, 0)
	assert.Equal(t, geom.Insets{Left: 2, Top: 2, Right: 2, Bottom: 2}, h.padding)
}

func TestMeasureAspectRatio(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		h := &fakeHost{content: image.Pt(10, 10)}
		cfg := attr.DefaultConfig()
		cfg.AspectRatio = 2
		d := newDelegate(h, cfg)
		sz := d.Measure(Bounded(200), Bounded(1000))
		assert.Equal(t, image.Pt(200, 100), sz)
		assert.Equal(t, Exact(200), h.specW)
		assert.Equal(t, Exact(100), h.specH)
		assert.Equal(t, geom.FRect(0, 0, 200, 100), d.Bounds())
	})
	t.Run("vertical", func(t *testing.T) {
		h := &fakeHost{content: image.Pt(10, 10)}
		cfg := attr.DefaultConfig()
		cfg.AspectRatio = attr.Ratio9x16.Value()
		cfg.FixOrientation = attr.Vertical
		d := newDelegate(h, cfg)
		sz := d.Measure(Bounded(1000), Exact(320))
		assert.Equal(t, image.Pt(180, 320), sz)
		assert.Equal(t, Exact(180), h.specW)
		assert.Equal(t, Exact(320), h.specH)
	})
	t.Run("negative", func(t *testing.T) {
		h := &fakeHost{content: image.Pt(50, 60), hHint: Match}
		cfg := attr.DefaultConfig()
		cfg.AspectRatio = -1
		d := newDelegate(h, cfg)
		sz := d.Measure(Bounded(300), Bounded(400))
		assert.Equal(t, Bounded(300), h.specW)
		assert.Equal(t, Exact(400), h.specH)
		assert.Equal(t, image.Pt(50, 400), sz)
		assert.Equal(t, geom.FRect(0, 0, 50, 400), d.Bounds())
	})
	t.Run("zero", func(t *testing.T) {
		h := &fakeHost{content: image.Pt(50, 60), wHint: Match, hHint: Match}
		d := newDelegate(h, attr.DefaultConfig())
		sz := d.Measure(Bounded(300), Bounded(400))
		assert.Equal(t, Bounded(300), h.specW)
		assert.Equal(t, Bounded(400), h.specH)
		assert.Equal(t, image.Pt(50, 60), sz)
		assert.Equal(t, geom.FRect(0, 0, 50, 60), d.Bounds())
	})
}

func TestDrawOrder(t *testing.T) {
	clk := newClock()
	h := &fakeHost{content: image.Pt(100, 100)}
	cfg := attr.DefaultConfig()
	cfg.ShadowColor = opaque
	cfg.ShadowRadius = 4
	cfg.StrokeWidth = 2
	cfg.StrokeColor = opaque
	cfg.CanvasRotate = true
	cfg.AutoStartRotate = true
	d := newDelegate(h, cfg, WithClock(clk.now))
	d.Measure(Exact(100), Exact(100))
	d.OnVisibilityChanged(true)

	var r canvas.Recorder
	d.Draw(&r)
	require.Equal(t, []canvas.OpKind{
		canvas.OpShadow,
		canvas.OpPushClip,
		canvas.OpMark,
		canvas.OpPopClip,
		canvas.OpStroke,
		canvas.OpRotate,
	}, r.Kinds())
	assert.Equal(t, 1, r.Ops[2].Depth, "content is clipped")
	assert.Equal(t, 0, r.Ops[4].Depth, "border is not clipped")
	assert.Equal(t, d.ShadowPath(), r.Ops[0].Path)
	assert.Equal(t, d.ClipPath(), r.Ops[1].Path)
	assert.Equal(t, float32(4), r.Ops[0].Shadow.Radius)
	assert.Equal(t, d.Bounds().Center(), r.Ops[5].Pivot)
}

func TestDrawPlainRectangle(t *testing.T) {
	h := &fakeHost{content: image.Pt(60, 40)}
	d := newDelegate(h, attr.DefaultConfig())
	d.SetPadding(geom.Insets{Left: 5, Right: 5})
	d.Measure(Exact(60), Exact(40))

	var r canvas.Recorder
	d.Draw(&r)
	assert.Equal(t, []canvas.OpKind{canvas.OpMark}, r.Kinds())
	assert.Equal(t, image.Rectangle{}, h.bg)
	assert.Equal(t, 1, h.draws)
	assert.Zero(t, h.invalidates, "nothing to animate")
}

func TestDrawBoundsBackground(t *testing.T) {
	h := &fakeHost{content: image.Pt(60, 40)}
	cfg := attr.DefaultConfig()
	cfg.CornerRadius = 8
	d := newDelegate(h, cfg)
	d.SetPadding(geom.Insets{Left: 5, Top: 1, Right: 5, Bottom: 2})
	d.Measure(Exact(60), Exact(40))
	d.Draw(new(canvas.Recorder))
	assert.Equal(t, image.Rect(5, 1, 55, 38), h.bg)
}

func TestTouchGating(t *testing.T) {
	h := &fakeHost{handled: true}
	d := newDelegate(h, attr.DefaultConfig())
	var e pointer.Event

	assert.True(t, d.DispatchTouch(e))
	assert.True(t, d.InterceptTouch(e))
	assert.True(t, d.Touch(e))
	assert.Equal(t, 3, h.touches)

	d.SetTouchable(false)
	h.touches = 0
	assert.False(t, d.DispatchTouch(e))
	assert.False(t, d.InterceptTouch(e))
	assert.False(t, d.Touch(e))
	assert.Zero(t, h.touches)
}

type checkedLog struct {
	got []bool
}

func (l *checkedLog) CheckedChanged(h Host, checked bool) {
	l.got = append(l.got, checked)
}

func TestPerformClick(t *testing.T) {
	h := &fakeHost{}
	d := newDelegate(h, attr.DefaultConfig())
	l := new(checkedLog)
	d.AddCheckedChangeListener(l)

	assert.True(t, d.PerformClick())
	assert.False(t, d.IsChecked())
	assert.Equal(t, 1, h.clicks)

	d.SetAutoCheckable(true)
	assert.True(t, h.clickable)
	d.PerformClick()
	assert.True(t, d.IsChecked())
	d.PerformClick()
	assert.False(t, d.IsChecked())
	assert.Equal(t, []bool{true, false}, l.got)
	assert.Equal(t, 3, h.clicks)
}

func TestAutoCheckableConfigMarksClickable(t *testing.T) {
	h := &fakeHost{}
	cfg := attr.DefaultConfig()
	cfg.AutoCheckable = true
	New(h, cfg)
	assert.True(t, h.clickable)
}

func TestSetterIdempotence(t *testing.T) {
	h := &fakeHost{}
	d := newDelegate(h, attr.DefaultConfig())

	d.SetAspectRatio(1.5).SetAspectRatio(1.5)
	assert.Equal(t, 1, h.layouts)
	d.SetCornerRadius(3).SetCornerRadius(3)
	assert.Equal(t, 2, h.layouts)
	d.SetBorder(1, opaque).SetBorder(1, opaque)
	assert.Equal(t, 3, h.invalidates)
	d.SetFixOrientation(attr.Horizontal).SetClipPadding(true).SetCircle(false)
	assert.Equal(t, 2, h.layouts)
}

func TestFluentConfiguration(t *testing.T) {
	h := &fakeHost{}
	d := newDelegate(h, attr.DefaultConfig())
	d.SetCircle(true).
		SetCornerRadii(1, 2, 3, 4).
		SetFitSystemBar(true).
		SetSmoothRotate(false).
		SetClockwiseRotate(false).
		SetRotateIntervalDegree(45).
		SetRotateInterval(0).
		SetRotateDuration(0).
		SetCanvasRotate(true).
		SetAutoStartRotate(true).
		SetReceiveCheckFromParent(true).
		SetTransitiveCheckToChild(true).
		SetAspectRatioPreset(attr.Ratio4x3)
	a := d.Attrs()
	assert.True(t, a.IsCircle())
	assert.Equal(t, float32(4), a.RightBottomRadius())
	assert.True(t, a.IsFitSystemBar())
	assert.False(t, a.IsSmoothRotate())
	assert.Equal(t, float32(45), a.RotateIntervalDegree())
	assert.True(t, d.IsReceiveCheckFromParent())
	assert.True(t, d.IsTransitiveCheckToChild())
	assert.Equal(t, float32(4./3), a.AspectRatio())
	assert.Same(t, Host(h), d.Host())
}
