package plan

import (
	"fmt"
	"math"
)

// DimensionOffset is how far outside the plan bounds the overall dimension
// lines are drawn, in centimeters.
const DimensionOffset = 30.0

// LengthLabel formats a wall length the way it is printed on the canvas:
// rounded to the nearest centimeter with a "cm" suffix.
func LengthLabel(w Wall) string {
	return FormatLength(w.Length())
}

// FormatLength rounds a length to whole centimeters.
func FormatLength(length float64) string {
	return fmt.Sprintf("%dcm", int64(math.Round(length)))
}

// Dimension is a measured extent drawn as a line between two points.
type Dimension struct {
	Value float64
	Start Point
	End   Point
}

// Label returns the rounded value with its unit.
func (d Dimension) Label() string {
	return FormatLength(d.Value)
}

// Dimensions are the overall width and height of a plan.
type Dimensions struct {
	Width  Dimension
	Height Dimension
}

// Dimensions measures the wall bounds. The width line runs below the plan and
// the height line to its right. ok is false when the plan has no walls.
func (p *Plan) Dimensions() (Dimensions, bool) {
	bb := p.Bounds()
	if bb.IsEmpty() {
		return Dimensions{}, false
	}
	return Dimensions{
		Width: Dimension{
			Value: bb.Width(),
			Start: Point{X: bb.Min.X, Y: bb.Max.Y + DimensionOffset},
			End:   Point{X: bb.Max.X, Y: bb.Max.Y + DimensionOffset},
		},
		Height: Dimension{
			Value: bb.Height(),
			Start: Point{X: bb.Max.X + DimensionOffset, Y: bb.Min.Y},
			End:   Point{X: bb.Max.X + DimensionOffset, Y: bb.Max.Y},
		},
	}, true
}
