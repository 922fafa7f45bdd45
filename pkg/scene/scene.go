// Package scene turns a floor plan into an ordered list of drawing
// primitives in plan coordinates. Renderers map them to pixels through a
// viewport.
package scene

import (
	"image/color"
	"math"

	"github.com/OpenTraceLab/floorplan/pkg/plan"
)

// Size is a width and height in plan units.
type Size struct {
	Width  float64
	Height float64
}

// Style controls which layers are drawn and how big things are.
type Style struct {
	Theme ColorTheme

	WallWidth          float64
	DoorSize           Size
	WindowSize         Size
	FixtureStrokeWidth float64
	LabelSize          float64
	DimensionWidth     float64

	ShowWalls      bool
	ShowDoors      bool
	ShowWindows    bool
	ShowLabels     bool
	ShowDimensions bool
}

// DefaultStyle is the canvas look: 2 unit walls, 30x5 doors, 40x5 windows,
// 12 unit labels. Dimension lines are off.
func DefaultStyle() Style {
	return Style{
		Theme:              ThemeLight,
		WallWidth:          2,
		DoorSize:           Size{Width: 30, Height: 5},
		WindowSize:         Size{Width: 40, Height: 5},
		FixtureStrokeWidth: 1,
		LabelSize:          12,
		DimensionWidth:     1,
		ShowWalls:          true,
		ShowDoors:          true,
		ShowWindows:        true,
		ShowLabels:         true,
	}
}

// Line is a stroked segment.
type Line struct {
	From  plan.Point
	To    plan.Point
	Width float64
	Color color.NRGBA
}

// Rect is a fixture rectangle. Origin is its top-left corner before rotation
// and the rotation pivot.
type Rect struct {
	Kind        plan.FixtureKind
	Index       int
	Origin      plan.Point
	Size        Size
	Rotation    float64 // degrees
	Fill        color.NRGBA
	Stroke      color.NRGBA
	StrokeWidth float64

	// Aligned is false when there was no wall to align to.
	Aligned   bool
	WallIndex int
}

// Corners returns the rectangle corners in plan coordinates, clockwise from
// the origin.
func (r Rect) Corners() [4]plan.Point {
	rad := r.Rotation * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	rotate := func(x, y float64) plan.Point {
		return plan.Point{
			X: r.Origin.X + x*cos - y*sin,
			Y: r.Origin.Y + x*sin + y*cos,
		}
	}
	w, h := r.Size.Width, r.Size.Height
	return [4]plan.Point{
		rotate(0, 0),
		rotate(w, 0),
		rotate(w, h),
		rotate(0, h),
	}
}

// Label is text whose top-left corner sits at At.
type Label struct {
	At    plan.Point
	Text  string
	Size  float64
	Color color.NRGBA
}

// Scene is everything to draw for one plan, in draw order within each slice.
// Renderers draw Lines, then Rects, then Labels.
type Scene struct {
	Palette Palette
	Lines   []Line
	Rects   []Rect
	Labels  []Label
	Bounds  plan.BoundingBox
}

// Unaligned counts fixtures that had no wall to snap to.
func (s *Scene) Unaligned() int {
	n := 0
	for _, r := range s.Rects {
		if !r.Aligned {
			n++
		}
	}
	return n
}

// Build lays out a plan: walls, then doors, then windows, then length labels
// and finally the optional overall dimensions.
func Build(p *plan.Plan, style Style) *Scene {
	pal := GetPalette(style.Theme)
	s := &Scene{
		Palette: pal,
		Bounds:  p.Bounds(),
	}

	if style.ShowWalls {
		for _, w := range p.Walls {
			s.Lines = append(s.Lines, Line{
				From:  w.Start,
				To:    w.End,
				Width: style.WallWidth,
				Color: pal.Wall,
			})
		}
	}

	for _, f := range p.Fixtures() {
		var size Size
		var fill color.NRGBA
		switch f.Kind {
		case plan.KindDoor:
			if !style.ShowDoors {
				continue
			}
			size, fill = style.DoorSize, pal.DoorFill
		case plan.KindWindow:
			if !style.ShowWindows {
				continue
			}
			size, fill = style.WindowSize, pal.WindowFill
		}

		aligned, match, ok := plan.AlignFixture(f.Position, p.Walls)
		stroke := pal.FixtureStroke
		if !ok {
			stroke = pal.Unaligned
		}
		s.Rects = append(s.Rects, Rect{
			Kind:        f.Kind,
			Index:       f.Index,
			Origin:      aligned.Position(),
			Size:        size,
			Rotation:    aligned.Rotation,
			Fill:        fill,
			Stroke:      stroke,
			StrokeWidth: style.FixtureStrokeWidth,
			Aligned:     ok,
			WallIndex:   match.Index,
		})
	}

	if style.ShowLabels {
		for _, w := range p.Walls {
			s.Labels = append(s.Labels, Label{
				At:    w.Midpoint(),
				Text:  plan.LengthLabel(w),
				Size:  style.LabelSize,
				Color: pal.Label,
			})
		}
	}

	if style.ShowDimensions {
		if dims, ok := p.Dimensions(); ok {
			for _, d := range []plan.Dimension{dims.Width, dims.Height} {
				s.Lines = append(s.Lines, Line{
					From:  d.Start,
					To:    d.End,
					Width: style.DimensionWidth,
					Color: pal.Dimension,
				})
				mid := plan.Wall{Start: d.Start, End: d.End}.Midpoint()
				s.Labels = append(s.Labels, Label{
					At:    mid,
					Text:  d.Label(),
					Size:  style.LabelSize,
					Color: pal.Dimension,
				})
			}
		}
	}

	return s
}
