// SPDX-License-Identifier: Unlicense OR MIT

package decor

import (
	"math"
	"time"

	"gioui.org/f32"

	"github.com/chenchen/superlayout/attr"
	"github.com/chenchen/superlayout/canvas"
)

// rotator drives the rotation from the draw pass. It is stopped until
// started, and only turns while the host is visible.
type rotator struct {
	attrs *attr.Store
	view  View

	alive   bool
	started bool

	// start is the time of the first frame of a smooth rotation.
	start time.Time
	// lastStep is the time of the last step of a stepped rotation.
	lastStep time.Time
	// stepped is the accumulated angle of a stepped rotation.
	stepped float32
	// angle is the angle applied by the last frame.
	angle float32
}

func (r *rotator) onVisibilityChanged(visible bool) {
	if !visible {
		r.alive = false
		r.stop()
		return
	}
	r.alive = true
	if r.attrs.IsAutoStartRotate() {
		r.startRotate()
	}
	r.view.Invalidate()
}

func (r *rotator) startRotate() {
	r.started = true
	r.start = time.Time{}
	r.lastStep = time.Time{}
	r.view.Invalidate()
}

func (r *rotator) stop() {
	r.started = false
	r.view.Invalidate()
}

// reset clears the host rotation transform.
func (r *rotator) reset() {
	r.view.SetRotation(0)
	r.view.Invalidate()
}

func (r *rotator) running() bool {
	return r.started && r.alive
}

// frame advances the rotation to now, applies it and schedules the next
// frame. It does nothing unless the rotation is running.
func (r *rotator) frame(cv canvas.Canvas, now time.Time, pivot f32.Point) {
	if !r.running() {
		return
	}
	a := r.attrs
	if a.IsSmoothRotate() {
		if r.start.IsZero() {
			r.start = now
		}
		r.angle = smoothAngle(now.Sub(r.start), a.RotateDuration(), a.IsClockwiseRotate())
	} else {
		switch {
		case r.lastStep.IsZero():
			r.lastStep = now
		case now.Sub(r.lastStep) >= a.RotateInterval():
			step := a.RotateIntervalDegree()
			if !a.IsClockwiseRotate() {
				step = -step
			}
			r.stepped = normalize(r.stepped + step)
			r.lastStep = now
		}
		r.angle = r.stepped
	}
	if a.IsCanvasRotate() {
		cv.Rotate(r.angle, pivot)
	} else {
		r.view.SetRotation(r.angle)
	}
	r.view.Invalidate()
}

// smoothAngle maps the elapsed fraction of one turn to [0, 360).
func smoothAngle(elapsed, turn time.Duration, clockwise bool) float32 {
	if turn <= 0 {
		return 0
	}
	delta := float32(elapsed%turn) / float32(turn) * 360
	if !clockwise {
		delta = 360 - delta
	}
	return normalize(delta)
}

func normalize(deg float32) float32 {
	deg = float32(math.Mod(float64(deg), 360))
	if deg < 0 {
		deg += 360
	}
	return deg
}
