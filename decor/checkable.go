// SPDX-License-Identifier: Unlicense OR MIT

package decor

import (
	"github.com/chenchen/superlayout/attr"
)

// checker pushes the checked state one level down to receptive children.
type checker struct {
	attrs *attr.Store
	view  View
}

// propagate sets checked on every direct child that receives the check
// from its parent, if the host transmits it. It returns the number of
// children updated.
func (c *checker) propagate(checked bool) int {
	if !c.attrs.IsTransitiveCheckToChild() {
		return 0
	}
	n := 0
	for _, child := range c.view.Children() {
		if receptive(child) {
			child.(Checkable).SetChecked(checked)
			n++
		}
	}
	return n
}

// childAdded pushes the current state to a new receptive child.
func (c *checker) childAdded(child any) bool {
	if !receptive(child) {
		return false
	}
	child.(Checkable).SetChecked(c.attrs.IsChecked())
	return true
}

func receptive(child any) bool {
	k, ok := child.(Checkable)
	return ok && k.IsReceiveCheckFromParent()
}
