// SPDX-License-Identifier: Unlicense OR MIT

/*
Package decor decorates an arbitrary container with rounded or circular
clipping, a drop shadow, a stroked border, aspect ratio sizing, continuous
rotation and check state propagation to its children.

Instead of inheriting from a base container, a host keeps a Delegate and
forwards its layout lifecycle to it: padding changes, measurement, drawing,
touch dispatch, clicks, visibility and attach transitions and child
additions. The Delegate calls back into the host through the Host interface
whenever the host's own default behavior is needed.

A host is typically written as

	type Card struct {
		*decor.Delegate
		...
	}

	func NewCard() *Card {
		c := new(Card)
		c.Delegate = decor.New(c, attr.DefaultConfig())
		return c
	}

where Card implements the Host methods by performing its undecorated
behavior.

All methods must be called from the goroutine that owns the drawing
surface. Rotation is driven by the draw pass itself: while rotating, every
Draw ends by requesting another frame.
*/
package decor
