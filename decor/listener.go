// SPDX-License-Identifier: Unlicense OR MIT

package decor

import (
	"golang.org/x/exp/slices"
)

// VisibleChangeListener is notified when the host's visibility changes.
type VisibleChangeListener interface {
	VisibleChanged(h Host, visible bool)
}

// AttachChangeListener is notified when the host is attached or detached.
type AttachChangeListener interface {
	AttachChanged(h Host, attached bool)
}

// CheckedChangeListener is notified when the checked state changes.
type CheckedChangeListener interface {
	CheckedChanged(h Host, checked bool)
}

// registry is an ordered set of listeners. Listeners are compared with ==,
// so their dynamic types must be comparable; pointers are the common
// choice.
type registry[L comparable] struct {
	list []L
}

func (r *registry[L]) add(l L) {
	if slices.Contains(r.list, l) {
		return
	}
	r.list = append(r.list, l)
}

func (r *registry[L]) remove(l L) {
	if i := slices.Index(r.list, l); i >= 0 {
		r.list = slices.Delete(r.list, i, i+1)
	}
}

func (r *registry[L]) clear() {
	r.list = nil
}

func (r *registry[L]) len() int {
	return len(r.list)
}

// each calls f for every listener registered when each was called and not
// removed since.
func (r *registry[L]) each(f func(L)) {
	for _, l := range slices.Clone(r.list) {
		if slices.Contains(r.list, l) {
			f(l)
		}
	}
}
