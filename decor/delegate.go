// SPDX-License-Identifier: Unlicense OR MIT

package decor

import (
	"image"
	"image/color"
	"log/slog"
	"time"

	"gioui.org/io/event"

	"github.com/chenchen/superlayout/attr"
	"github.com/chenchen/superlayout/canvas"
	"github.com/chenchen/superlayout/geom"
)

// Delegate implements the decorated lifecycle of a Host.
type Delegate struct {
	host  Host
	attrs *attr.Store
	log   *slog.Logger
	now   func() time.Time

	// bounds is the content rectangle recorded by the last Measure.
	bounds geom.Rect

	corners corners
	shadows shadows
	rotator rotator
	checker checker

	visible registry[VisibleChangeListener]
	attach  registry[AttachChangeListener]
	checked registry[CheckedChangeListener]
}

var (
	_ Overrides = (*Delegate)(nil)
	_ Checkable = (*Delegate)(nil)
)

// Option configures a Delegate.
type Option func(d *Delegate)

// WithLogger sets the logger for debug records.
func WithLogger(l *slog.Logger) Option {
	return func(d *Delegate) {
		d.log = l
	}
}

// WithClock sets the time source of the rotation.
func WithClock(now func() time.Time) Option {
	return func(d *Delegate) {
		d.now = now
	}
}

// New returns the Delegate of h configured by cfg. The effective padding
// is applied to h before New returns.
func New(h Host, cfg attr.Config, opts ...Option) *Delegate {
	d := &Delegate{
		host: h,
		log:  slog.New(slog.DiscardHandler),
		now:  time.Now,
	}
	for _, o := range opts {
		o(d)
	}
	var env attr.Environment
	if e, ok := h.(Environment); ok {
		env = e
	}
	d.attrs = attr.New(nil, env).Apply(cfg)
	d.attrs.SetTarget(storeTarget{d})
	d.corners = corners{attrs: d.attrs}
	d.shadows = shadows{attrs: d.attrs}
	d.rotator = rotator{attrs: d.attrs, view: h}
	d.checker = checker{attrs: d.attrs, view: h}
	if cfg.AutoCheckable {
		d.setClickable(true)
	}
	d.applyPadding()
	return d
}

// storeTarget routes attribute side effects to the host.
type storeTarget struct {
	d *Delegate
}

func (t storeTarget) Invalidate()    { t.d.host.Invalidate() }
func (t storeTarget) RequestLayout() { t.d.host.RequestLayout() }
func (t storeTarget) ApplyPadding(p geom.Insets) {
	t.d.SetPadding(p)
}

// Host returns the decorated host.
func (d *Delegate) Host() Host { return d.host }

// Attrs returns the attribute store. Mutating it directly is equivalent
// to using the Delegate setters, except for the host side effects the
// Delegate adds.
func (d *Delegate) Attrs() *attr.Store { return d.attrs }

// Bounds returns the content rectangle recorded by the last Measure.
func (d *Delegate) Bounds() geom.Rect { return d.bounds }

// ClipPath returns the clip path derived by the last Measure.
func (d *Delegate) ClipPath() canvas.Path { return d.corners.path }

// ShadowPath returns the shadow path derived by the last Measure.
func (d *Delegate) ShadowPath() canvas.Path { return d.shadows.path }

// EffectivePadding returns the padding applied natively to the host.
func (d *Delegate) EffectivePadding() geom.Insets {
	fits := false
	if f, ok := d.host.(SystemWindowsFitter); ok {
		fits = f.FitsSystemWindows()
	}
	return d.attrs.EffectivePadding(fits)
}

func (d *Delegate) applyPadding() {
	d.host.SetNativePadding(d.EffectivePadding())
}

// SetPadding records the requested padding and applies the effective
// padding natively.
func (d *Delegate) SetPadding(p geom.Insets) {
	d.attrs.SetRequestedPadding(p)
	d.applyPadding()
}

// Measure measures the host. A positive aspect ratio derives one dimension
// from the other and forces both; a negative ratio forces only the
// dimensions that match their parent; zero leaves the specs alone. The
// clip and shadow regions are recalculated against the result.
func (d *Delegate) Measure(w, h MeasureSpec) image.Point {
	var size image.Point
	switch ratio := d.attrs.AspectRatio(); {
	case ratio > 0:
		var width, height int
		if d.attrs.Orientation() == attr.Horizontal {
			width = w.Size
			height = int(float32(width) / ratio)
		} else {
			height = h.Size
			width = int(float32(height) * ratio)
		}
		d.host.MeasureNative(Exact(width), Exact(height))
		size = image.Point{X: width, Y: height}
	case ratio < 0:
		wh, hh := d.host.LayoutParams()
		if hh == Match {
			h = Exact(h.Size)
		}
		if wh == Match {
			w = Exact(w.Size)
		}
		size = d.host.MeasureNative(w, h)
	default:
		size = d.host.MeasureNative(w, h)
	}
	d.bounds = geom.FromSize(size)
	d.recalculate()
	return size
}

func (d *Delegate) recalculate() {
	if d.corners.recalculate(d.bounds) {
		d.log.Debug("clip region collapsed", "content", d.bounds)
	}
	if d.shadows.recalculate(d.bounds) {
		d.log.Debug("shadow region collapsed", "content", d.bounds)
	}
	d.log.Debug("geometry recalculated",
		"content", d.bounds,
		"clip", d.corners.path.Bounds,
		"shadow", d.shadows.path.Bounds)
}

// Draw draws the shadow, then the host content clipped to the corners,
// then the border and finally advances the rotation.
func (d *Delegate) Draw(c canvas.Canvas) {
	d.shadows.draw(c)
	if d.corners.clips() && d.attrs.IsClipPadding() {
		d.boundBackground()
	}
	pop := d.corners.push(c)
	d.host.DrawNative(c)
	pop()
	d.corners.drawBorder(c)
	d.rotator.frame(c, d.now(), d.bounds.Center())
}

func (d *Delegate) boundBackground() {
	b, ok := d.host.(BackgroundBounder)
	if !ok {
		return
	}
	p := d.EffectivePadding()
	sz := d.bounds.Round().Size()
	b.SetBackgroundBounds(image.Rect(p.Left, p.Top, sz.X-p.Right, sz.Y-p.Bottom))
}

func (d *Delegate) DispatchTouch(e event.Event) bool {
	return d.attrs.IsTouchable() && d.host.DispatchTouchNative(e)
}

func (d *Delegate) InterceptTouch(e event.Event) bool {
	return d.attrs.IsTouchable() && d.host.InterceptTouchNative(e)
}

func (d *Delegate) Touch(e event.Event) bool {
	return d.attrs.IsTouchable() && d.host.TouchNative(e)
}

// PerformClick toggles the checked state if auto checkable, then performs
// the host's click.
func (d *Delegate) PerformClick() bool {
	if d.attrs.IsAutoCheckable() {
		d.Toggle()
	}
	return d.host.PerformClickNative()
}

func (d *Delegate) OnVisibilityChanged(visible bool) {
	d.visible.each(func(l VisibleChangeListener) {
		l.VisibleChanged(d.host, visible)
	})
	d.rotator.onVisibilityChanged(visible)
}

func (d *Delegate) OnAttached() {
	d.attach.each(func(l AttachChangeListener) {
		l.AttachChanged(d.host, true)
	})
}

func (d *Delegate) OnDetached() {
	d.attach.each(func(l AttachChangeListener) {
		l.AttachChanged(d.host, false)
	})
}

// OnChildAdded pushes the checked state to child if it receives the check
// from its parent.
func (d *Delegate) OnChildAdded(child any) {
	if d.checker.childAdded(child) {
		d.log.Debug("check pushed to new child", "checked", d.attrs.IsChecked())
	}
}

func (d *Delegate) IsChecked() bool                { return d.attrs.IsChecked() }
func (d *Delegate) IsReceiveCheckFromParent() bool { return d.attrs.IsReceiveCheckFromParent() }
func (d *Delegate) IsTransitiveCheckToChild() bool { return d.attrs.IsTransitiveCheckToChild() }
func (d *Delegate) IsTouchable() bool              { return d.attrs.IsTouchable() }
func (d *Delegate) IsRotating() bool               { return d.rotator.running() }

// Rotation returns the angle applied by the last rotation frame.
func (d *Delegate) Rotation() float32 { return d.rotator.angle }

// SetChecked stores checked, propagates it to receptive children and
// notifies the checked listeners if the state changed.
func (d *Delegate) SetChecked(checked bool) {
	changed := d.attrs.IsChecked() != checked
	d.attrs.SetChecked(checked)
	if n := d.checker.propagate(checked); n > 0 {
		d.log.Debug("check propagated", "checked", checked, "children", n)
	}
	if !changed {
		return
	}
	d.checked.each(func(l CheckedChangeListener) {
		l.CheckedChanged(d.host, checked)
	})
}

// Toggle inverts the checked state.
func (d *Delegate) Toggle() {
	d.SetChecked(!d.attrs.IsChecked())
}

func (d *Delegate) SetTouchable(v bool) *Delegate {
	d.attrs.SetTouchable(v)
	return d
}

func (d *Delegate) SetClipPadding(v bool) *Delegate {
	d.attrs.SetClipPadding(v)
	return d
}

func (d *Delegate) SetAspectRatio(ratio float32) *Delegate {
	d.attrs.SetAspectRatio(ratio)
	return d
}

func (d *Delegate) SetAspectRatioPreset(r attr.Ratio) *Delegate {
	d.attrs.SetAspectRatioPreset(r)
	return d
}

func (d *Delegate) SetFixOrientation(o attr.FixOrientation) *Delegate {
	d.attrs.SetFixOrientation(o)
	return d
}

func (d *Delegate) SetFitSystemBar(v bool) *Delegate {
	d.attrs.SetFitSystemBar(v)
	return d
}

func (d *Delegate) SetCircle(v bool) *Delegate {
	d.attrs.SetCircle(v)
	return d
}

func (d *Delegate) SetCornerRadius(r float32) *Delegate {
	d.attrs.SetCornerRadius(r)
	return d
}

func (d *Delegate) SetCornerRadii(leftTop, rightTop, leftBottom, rightBottom float32) *Delegate {
	d.attrs.SetCornerRadii(leftTop, rightTop, leftBottom, rightBottom)
	return d
}

func (d *Delegate) SetBorder(width float32, c color.NRGBA) *Delegate {
	d.attrs.SetBorder(width, c)
	return d
}

func (d *Delegate) SetShadowStyle(c color.NRGBA, radius, dx, dy float32) *Delegate {
	d.attrs.SetShadowStyle(c, radius, dx, dy)
	return d
}

func (d *Delegate) SetRotateInterval(interval time.Duration) *Delegate {
	d.attrs.SetRotateInterval(interval)
	return d
}

func (d *Delegate) SetRotateIntervalDegree(deg float32) *Delegate {
	d.attrs.SetRotateIntervalDegree(deg)
	return d
}

func (d *Delegate) SetRotateDuration(turn time.Duration) *Delegate {
	d.attrs.SetRotateDuration(turn)
	return d
}

func (d *Delegate) SetSmoothRotate(v bool) *Delegate {
	d.attrs.SetSmoothRotate(v)
	return d
}

func (d *Delegate) SetClockwiseRotate(v bool) *Delegate {
	d.attrs.SetClockwiseRotate(v)
	return d
}

func (d *Delegate) SetCanvasRotate(v bool) *Delegate {
	d.attrs.SetCanvasRotate(v)
	return d
}

func (d *Delegate) SetAutoStartRotate(v bool) *Delegate {
	d.attrs.SetAutoStartRotate(v)
	return d
}

// SetAutoCheckable makes clicks toggle the checked state and marks the
// host clickable when enabling.
func (d *Delegate) SetAutoCheckable(v bool) *Delegate {
	d.attrs.SetAutoCheckable(v)
	if v {
		d.setClickable(true)
	}
	return d
}

func (d *Delegate) setClickable(v bool) {
	if c, ok := d.host.(ClickableSetter); ok {
		c.SetClickable(v)
	}
}

func (d *Delegate) SetReceiveCheckFromParent(v bool) *Delegate {
	d.attrs.SetReceiveCheckFromParent(v)
	return d
}

func (d *Delegate) SetTransitiveCheckToChild(v bool) *Delegate {
	d.attrs.SetTransitiveCheckToChild(v)
	return d
}

// StartRotate starts the rotation. It turns once the host is visible.
func (d *Delegate) StartRotate() *Delegate {
	d.rotator.startRotate()
	d.log.Debug("rotation started")
	return d
}

func (d *Delegate) StopRotate() *Delegate {
	d.rotator.stop()
	d.log.Debug("rotation stopped")
	return d
}

// ResetRotate clears the host rotation transform without stopping the
// rotation.
func (d *Delegate) ResetRotate() *Delegate {
	d.rotator.reset()
	return d
}

// AddVisibleChangeListener registers l. Adding a registered listener is a
// no-op.
func (d *Delegate) AddVisibleChangeListener(l VisibleChangeListener) *Delegate {
	d.visible.add(l)
	return d
}

func (d *Delegate) RemoveVisibleChangeListener(l VisibleChangeListener) *Delegate {
	d.visible.remove(l)
	return d
}

func (d *Delegate) ClearVisibleChangeListeners() *Delegate {
	d.visible.clear()
	return d
}

// AddAttachChangeListener registers l. Adding a registered listener is a
// no-op.
func (d *Delegate) AddAttachChangeListener(l AttachChangeListener) *Delegate {
	d.attach.add(l)
	return d
}

func (d *Delegate) RemoveAttachChangeListener(l AttachChangeListener) *Delegate {
	d.attach.remove(l)
	return d
}

func (d *Delegate) ClearAttachChangeListeners() *Delegate {
	d.attach.clear()
	return d
}

// AddCheckedChangeListener registers l. Adding a registered listener is a
// no-op.
func (d *Delegate) AddCheckedChangeListener(l CheckedChangeListener) *Delegate {
	d.checked.add(l)
	return d
}

func (d *Delegate) RemoveCheckedChangeListener(l CheckedChangeListener) *Delegate {
	d.checked.remove(l)
	return d
}

func (d *Delegate) ClearCheckedChangeListeners() *Delegate {
	d.checked.clear()
	return d
}
