// SPDX-License-Identifier: Unlicense OR MIT

package decor

import (
	"image"
	"math"
	"testing"

	"gioui.org/layout"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		spec MeasureSpec
		want int
		got  int
	}{
		{Exact(10), 30, 10},
		{Bounded(20), 30, 20},
		{Bounded(40), 30, 30},
		{MeasureSpec{}, 30, 30},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.got, tc.spec.Resolve(tc.want), "%+v", tc.spec)
	}
	assert.Equal(t, image.Pt(10, 5), Size(Exact(10), Bounded(5), image.Pt(3, 9)))
}

func TestGioConstraints(t *testing.T) {
	w, h := SpecsOf(layout.Exact(image.Pt(100, 50)))
	assert.Equal(t, Exact(100), w)
	assert.Equal(t, Exact(50), h)

	cs := layout.Constraints{Max: image.Pt(300, 200)}
	w, h = SpecsOf(cs)
	assert.Equal(t, Bounded(300), w)
	assert.Equal(t, Bounded(200), h)
	assert.Equal(t, cs, Constraints(w, h))

	cs = Constraints(Exact(7), MeasureSpec{})
	assert.Equal(t, image.Pt(7, 0), cs.Min)
	assert.Equal(t, image.Pt(7, math.MaxInt32), cs.Max)
}
