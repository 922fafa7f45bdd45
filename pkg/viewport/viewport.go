// Package viewport tracks the pan and zoom state of a floor-plan canvas.
//
// A world point w is drawn at screen position offset + scale*w. Zooming keeps
// the point under the pointer fixed; dragging moves the offset.
package viewport

import (
	"math"

	"github.com/OpenTraceLab/floorplan/pkg/plan"
)

// ZoomFactor is the scale change applied per wheel notch.
const ZoomFactor = 1.1

// Viewport is the mutable view state of one canvas instance.
type Viewport struct {
	Scale float64
	X     float64
	Y     float64

	drag dragState
}

type dragState struct {
	active  bool
	startX  float64 // pointer position at press
	startY  float64
	originX float64 // offset at press
	originY float64
	liveX   float64 // offset the canvas reports while dragging
	liveY   float64
}

// New returns a viewport at scale 1 with no offset.
func New() *Viewport {
	return &Viewport{Scale: 1}
}

// Reset restores the initial view.
func (v *Viewport) Reset() {
	v.Scale = 1
	v.X = 0
	v.Y = 0
	v.drag = dragState{}
}

// Position returns the offset currently in effect, including an unfinished drag.
func (v *Viewport) Position() (float64, float64) {
	if v.drag.active {
		return v.drag.liveX, v.drag.liveY
	}
	return v.X, v.Y
}

// SetPosition replaces the offset with the position reported by the canvas.
func (v *Viewport) SetPosition(x, y float64) {
	v.X = x
	v.Y = y
}

// WorldToScreen maps a plan point to screen pixels.
func (v *Viewport) WorldToScreen(p plan.Point) (float64, float64) {
	x, y := v.Position()
	return x + p.X*v.Scale, y + p.Y*v.Scale
}

// ScreenToWorld maps screen pixels back to plan coordinates.
func (v *Viewport) ScreenToWorld(sx, sy float64) plan.Point {
	x, y := v.Position()
	return plan.Point{
		X: (sx - x) / v.Scale,
		Y: (sy - y) / v.Scale,
	}
}

// Wheel handles one wheel event at pointer position (px, py). A negative
// deltaY zooms in by ZoomFactor, anything else zooms out.
func (v *Viewport) Wheel(px, py, deltaY float64) {
	newScale := v.Scale / ZoomFactor
	if deltaY < 0 {
		newScale = v.Scale * ZoomFactor
	}
	v.zoomTo(px, py, newScale)
}

// ZoomAt multiplies the scale by factor keeping (px, py) fixed on screen.
func (v *Viewport) ZoomAt(px, py, factor float64) {
	v.zoomTo(px, py, v.Scale*factor)
}

func (v *Viewport) zoomTo(px, py, newScale float64) {
	pointTo := v.ScreenToWorld(px, py)
	x := px - pointTo.X*newScale
	y := py - pointTo.Y*newScale

	v.Scale = newScale
	if v.drag.active {
		// Keep the drag anchored so the next DragTo continues from here.
		v.drag.originX += x - v.drag.liveX
		v.drag.originY += y - v.drag.liveY
		v.drag.liveX, v.drag.liveY = x, y
		return
	}
	v.X, v.Y = x, y
}

// BeginDrag starts a pan gesture at pointer position (px, py).
func (v *Viewport) BeginDrag(px, py float64) {
	v.drag = dragState{
		active:  true,
		startX:  px,
		startY:  py,
		originX: v.X,
		originY: v.Y,
		liveX:   v.X,
		liveY:   v.Y,
	}
}

// DragTo moves the live offset with the pointer and returns it.
func (v *Viewport) DragTo(px, py float64) (float64, float64) {
	if !v.drag.active {
		return v.X, v.Y
	}
	v.drag.liveX = v.drag.originX + (px - v.drag.startX)
	v.drag.liveY = v.drag.originY + (py - v.drag.startY)
	return v.drag.liveX, v.drag.liveY
}

// EndDrag finishes the gesture at (px, py) and commits the reported position.
func (v *Viewport) EndDrag(px, py float64) {
	if !v.drag.active {
		return
	}
	x, y := v.DragTo(px, py)
	v.drag = dragState{}
	v.SetPosition(x, y)
}

// Dragging reports whether a pan gesture is in progress.
func (v *Viewport) Dragging() bool {
	return v.drag.active
}

// Fit scales and centers bbox inside a width x height canvas leaving margin
// pixels on each side. Empty or zero-area boxes only recenter.
func (v *Viewport) Fit(bbox plan.BoundingBox, width, height, margin float64) {
	if bbox.IsEmpty() {
		return
	}

	availW := width - 2*margin
	availH := height - 2*margin
	if availW > 0 && availH > 0 {
		scale := math.Inf(1)
		if bbox.Width() > 0 {
			scale = availW / bbox.Width()
		}
		if bbox.Height() > 0 {
			scale = math.Min(scale, availH/bbox.Height())
		}
		if !math.IsInf(scale, 1) {
			v.Scale = scale
		}
	}

	c := bbox.Center()
	v.X = width/2 - c.X*v.Scale
	v.Y = height/2 - c.Y*v.Scale
}

// VisibleBounds returns the plan area covered by a width x height canvas.
func (v *Viewport) VisibleBounds(width, height float64) plan.BoundingBox {
	bb := plan.NewBoundingBox()
	bb.Expand(v.ScreenToWorld(0, 0))
	bb.Expand(v.ScreenToWorld(width, height))
	return bb
}
