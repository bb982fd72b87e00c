// SPDX-License-Identifier: Unlicense OR MIT

package decor

import (
	"image"

	"gioui.org/io/event"

	"github.com/chenchen/superlayout/attr"
	"github.com/chenchen/superlayout/canvas"
	"github.com/chenchen/superlayout/geom"
)

// Defaults performs a host's behavior as it would be without decoration.
type Defaults interface {
	// SetNativePadding applies padding to the host's own layout. The host
	// is expected to request a new layout if the padding changed.
	SetNativePadding(p geom.Insets)
	// MeasureNative measures the host with the given specs and returns
	// the measured size.
	MeasureNative(w, h MeasureSpec) image.Point
	// DrawNative draws the host's background and content.
	DrawNative(c canvas.Canvas)
	DispatchTouchNative(e event.Event) bool
	InterceptTouchNative(e event.Event) bool
	TouchNative(e event.Event) bool
	PerformClickNative() bool
}

// View is the part of a host the engines read and mutate.
type View interface {
	// Invalidate requests a new draw pass.
	Invalidate()
	// RequestLayout requests a new measurement pass.
	RequestLayout()
	// SetRotation sets the rotation transform of the host, in degrees
	// clockwise about its center.
	SetRotation(degrees float32)
	// Children returns the direct children of the host.
	Children() []any
	// LayoutParams returns how the host is sized by its parent.
	LayoutParams() (w, h SizeHint)
}

// Host is a decorated container.
type Host interface {
	Defaults
	View
}

// Environment is implemented by hosts that know the status bar height
// and the screen size.
type Environment = attr.Environment

// SystemWindowsFitter is implemented by hosts that may already consume
// the system window insets natively.
type SystemWindowsFitter interface {
	FitsSystemWindows() bool
}

// BackgroundBounder is implemented by hosts with a background that can be
// re-bounded to exclude the padding.
type BackgroundBounder interface {
	SetBackgroundBounds(r image.Rectangle)
}

// ClickableSetter is implemented by hosts with a clickable flag.
type ClickableSetter interface {
	SetClickable(clickable bool)
}

// Checkable is implemented by children that take part in check
// propagation. A Delegate is Checkable.
type Checkable interface {
	IsChecked() bool
	SetChecked(checked bool)
	IsReceiveCheckFromParent() bool
	IsTransitiveCheckToChild() bool
}

// Overrides is the lifecycle a host forwards to its Delegate.
type Overrides interface {
	SetPadding(p geom.Insets)
	Measure(w, h MeasureSpec) image.Point
	Draw(c canvas.Canvas)
	DispatchTouch(e event.Event) bool
	InterceptTouch(e event.Event) bool
	Touch(e event.Event) bool
	PerformClick() bool
	OnVisibilityChanged(visible bool)
	OnAttached()
	OnDetached()
	OnChildAdded(child any)
}
