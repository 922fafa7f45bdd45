// Package renderer draws a scene through a viewport, either into Gio
// operations for the interactive canvas or into a PNG image.
package renderer

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/OpenTraceLab/floorplan/pkg/plan"
	"github.com/OpenTraceLab/floorplan/pkg/scene"
	"github.com/OpenTraceLab/floorplan/pkg/viewport"
)

// minLabelPx hides labels that would be unreadably small.
const minLabelPx = 4.0

// Gio renders scenes into Gio operations. It owns a text shaper and must be
// used from one goroutine.
type Gio struct {
	shaper *text.Shaper
}

// NewGio creates a Gio renderer using the Go font collection.
func NewGio() *Gio {
	return &Gio{
		shaper: text.NewShaper(text.WithCollection(gofont.Collection())),
	}
}

// Render paints the background and every scene primitive.
func (g *Gio) Render(gtx layout.Context, vp *viewport.Viewport, sc *scene.Scene) {
	paint.Fill(gtx.Ops, sc.Palette.Background)

	for _, l := range sc.Lines {
		x1, y1 := vp.WorldToScreen(l.From)
		x2, y2 := vp.WorldToScreen(l.To)
		renderLine(gtx, x1, y1, x2, y2, l.Width*vp.Scale, l.Color)
	}

	for _, r := range sc.Rects {
		x, y := vp.WorldToScreen(r.Origin)
		renderRect(gtx, x, y, r.Size.Width*vp.Scale, r.Size.Height*vp.Scale,
			r.Rotation*math.Pi/180, r.StrokeWidth*vp.Scale, r.Fill, r.Stroke)
	}

	visible := vp.VisibleBounds(float64(gtx.Constraints.Max.X), float64(gtx.Constraints.Max.Y))
	for _, lb := range sc.Labels {
		if !labelVisible(visible, lb) {
			continue
		}
		x, y := vp.WorldToScreen(lb.At)
		g.renderLabel(gtx, x, y, lb.Size*vp.Scale, lb.Text, lb.Color)
	}
}

// labelVisible reports whether any part of a label can fall inside visible.
// Text grows right and down from its anchor; one em per character bounds it.
func labelVisible(visible plan.BoundingBox, lb scene.Label) bool {
	reach := plan.BoundingBox{
		Min: plan.Point{
			X: visible.Min.X - lb.Size*float64(len(lb.Text)),
			Y: visible.Min.Y - lb.Size,
		},
		Max: visible.Max,
	}
	return reach.Contains(lb.At)
}

// renderLine strokes a segment in screen pixels
func renderLine(gtx layout.Context, x1, y1, x2, y2, width float64, lineColor color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(x1), float32(y1)))
	path.LineTo(f32.Pt(float32(x2), float32(y2)))

	stroke := clip.Stroke{
		Path:  path.End(),
		Width: float32(width),
	}.Op()

	paint.FillShape(gtx.Ops, lineColor, stroke)
}

// renderRect fills and outlines a rectangle whose top-left corner is at
// (x, y) and which is rotated about that corner.
func renderRect(gtx layout.Context, x, y, width, height, radians, strokeWidth float64, fillColor, strokeColor color.NRGBA) {
	transform := f32.Affine2D{}.
		Rotate(f32.Pt(0, 0), float32(radians)).
		Offset(f32.Pt(float32(x), float32(y)))

	stack := op.Affine(transform).Push(gtx.Ops)
	defer stack.Pop()

	outline := func() clip.PathSpec {
		var path clip.Path
		path.Begin(gtx.Ops)
		path.MoveTo(f32.Pt(0, 0))
		path.LineTo(f32.Pt(float32(width), 0))
		path.LineTo(f32.Pt(float32(width), float32(height)))
		path.LineTo(f32.Pt(0, float32(height)))
		path.Close()
		return path.End()
	}

	paint.FillShape(gtx.Ops, fillColor, clip.Outline{Path: outline()}.Op())
	if strokeWidth > 0 {
		paint.FillShape(gtx.Ops, strokeColor, clip.Stroke{
			Path:  outline(),
			Width: float32(strokeWidth),
		}.Op())
	}
}

// renderLabel lays out a single line of text with its top-left at (x, y).
func (g *Gio) renderLabel(gtx layout.Context, x, y, sizePx float64, s string, textColor color.NRGBA) {
	if sizePx < minLabelPx || s == "" {
		return
	}
	pxPerSp := gtx.Metric.PxPerSp
	if pxPerSp == 0 {
		pxPerSp = 1
	}

	macro := op.Record(gtx.Ops)
	stack := op.Offset(image.Pt(int(math.Round(x)), int(math.Round(y)))).Push(gtx.Ops)

	material := op.Record(gtx.Ops)
	paint.ColorOp{Color: textColor}.Add(gtx.Ops)
	textMaterial := material.Stop()

	lgtx := gtx
	lgtx.Constraints.Min = image.Point{}
	label := widget.Label{
		Alignment: text.Start,
		MaxLines:  1,
	}
	label.Layout(lgtx, g.shaper, font.Font{}, unit.Sp(float32(sizePx)/pxPerSp), s, textMaterial)

	stack.Pop()
	call := macro.Stop()
	call.Add(gtx.Ops)
}
