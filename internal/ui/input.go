package ui

import (
	"math"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
)

// layer is a toggleable scene layer.
type layer int

const (
	layerWalls layer = iota
	layerDoors
	layerWindows
	layerLabels
	layerDimensions
)

var layerNames = []string{"Walls", "Doors", "Windows", "Labels", "Dimensions"}

func (l layer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return "Unknown"
}

func (a *App) layerFlag(l layer) *bool {
	switch l {
	case layerWalls:
		return &a.style.ShowWalls
	case layerDoors:
		return &a.style.ShowDoors
	case layerWindows:
		return &a.style.ShowWindows
	case layerLabels:
		return &a.style.ShowLabels
	case layerDimensions:
		return &a.style.ShowDimensions
	}
	return nil
}

func (a *App) layerVisible(l layer) bool {
	if f := a.layerFlag(l); f != nil {
		return *f
	}
	return false
}

func (a *App) toggleLayer(l layer) {
	f := a.layerFlag(l)
	if f == nil {
		return
	}
	*f = !*f
	a.dirty = true
	a.Logf("[VIEW] %s layer: %v", l, *f)
	a.invalidate()
}

var keyFilters = []event.Filter{
	key.Filter{Name: key.NameSpace},
	key.Filter{Name: key.NameEscape},
	key.Filter{Name: "R"},
	key.Filter{Name: "L"},
	key.Filter{Name: "D"},
	key.Filter{Name: "T"},
	key.Filter{Name: "Q"},
	key.Filter{Name: "+", Optional: key.ModShift},
	key.Filter{Name: "=", Optional: key.ModShift},
	key.Filter{Name: "-"},
	key.Filter{Name: "O", Required: key.ModShortcut},
}

func (a *App) handleKeys(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(keyFilters...)
		if !ok {
			break
		}
		if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
			a.command(ke.Name, ke.Modifiers)
			gtx.Execute(op.InvalidateCmd{})
		}
	}
}

// command runs the action bound to a key press.
func (a *App) command(name key.Name, mods key.Modifiers) {
	switch name {
	case "O":
		if mods.Contain(key.ModShortcut) {
			a.openFilePicker()
		}
	case key.NameSpace:
		a.fit()
	case "R":
		a.resetView()
	case "L":
		a.toggleLayer(layerLabels)
	case "D":
		a.toggleLayer(layerDimensions)
	case "T":
		a.toggleTheme()
	case "+", "=":
		a.zoomCenter(zoomStep)
	case "-":
		a.zoomCenter(1 / zoomStep)
	case "Q", key.NameEscape:
		a.quit()
	}
}

// zoomStep matches one wheel notch.
const zoomStep = 1.1

// handlePointer pans with the primary button and zooms with the wheel.
func (a *App) handlePointer(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  a,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll | pointer.Move,
			ScrollY: pointer.ScrollRange{Min: math.MinInt32, Max: math.MaxInt32},
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		if a.pointerEvent(pe) {
			gtx.Execute(op.InvalidateCmd{})
		}
	}
}

// pointerEvent applies one pointer event to the viewport and reports whether
// the canvas needs a redraw.
func (a *App) pointerEvent(pe pointer.Event) bool {
	x, y := float64(pe.Position.X), float64(pe.Position.Y)
	switch pe.Kind {
	case pointer.Press:
		if !pe.Buttons.Contain(pointer.ButtonPrimary) {
			return false
		}
		a.vp.BeginDrag(x, y)
		a.lastDrag = pe.Position
		return false
	case pointer.Drag:
		a.trackPointer(pe.Position)
		if !a.vp.Dragging() {
			return true
		}
		a.vp.DragTo(x, y)
		a.lastDrag = pe.Position
		return true
	case pointer.Release, pointer.Cancel:
		if !a.vp.Dragging() {
			return false
		}
		end := pe.Position
		if pe.Kind == pointer.Cancel {
			end = a.lastDrag
		}
		a.vp.EndDrag(float64(end.X), float64(end.Y))
		a.Logf("[VIEW] Pan to (%.0f, %.0f)", a.vp.X, a.vp.Y)
		return true
	case pointer.Scroll:
		if pe.Scroll.Y == 0 {
			return false
		}
		a.vp.Wheel(x, y, float64(pe.Scroll.Y))
		return true
	case pointer.Move:
		a.trackPointer(pe.Position)
		return true
	}
	return false
}

func (a *App) trackPointer(pos f32.Point) {
	a.pointer = a.vp.ScreenToWorld(float64(pos.X), float64(pos.Y))
	a.hasPointer = true
}
