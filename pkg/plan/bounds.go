package plan

import "math"

// BoundingBox is an axis-aligned rectangle in plan coordinates.
type BoundingBox struct {
	Min Point
	Max Point
}

// NewBoundingBox returns an empty box that grows with Expand.
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty reports whether nothing has been added to the box.
func (bb BoundingBox) IsEmpty() bool {
	return bb.Min.X > bb.Max.X || bb.Min.Y > bb.Max.Y
}

// Expand grows the box to include p.
func (bb *BoundingBox) Expand(p Point) {
	bb.Min.X = math.Min(bb.Min.X, p.X)
	bb.Min.Y = math.Min(bb.Min.Y, p.Y)
	bb.Max.X = math.Max(bb.Max.X, p.X)
	bb.Max.Y = math.Max(bb.Max.Y, p.Y)
}

// Contains reports whether p lies inside or on the box.
func (bb BoundingBox) Contains(p Point) bool {
	return p.X >= bb.Min.X && p.X <= bb.Max.X &&
		p.Y >= bb.Min.Y && p.Y <= bb.Max.Y
}

func (bb BoundingBox) Width() float64 {
	return bb.Max.X - bb.Min.X
}

func (bb BoundingBox) Height() float64 {
	return bb.Max.Y - bb.Min.Y
}

// Center returns the center point of the box.
func (bb BoundingBox) Center() Point {
	return Point{
		X: (bb.Min.X + bb.Max.X) / 2,
		Y: (bb.Min.Y + bb.Max.Y) / 2,
	}
}

// Bounds returns the box spanned by all wall endpoints.
// Fixtures do not contribute; a plan without walls has an empty box.
func (p *Plan) Bounds() BoundingBox {
	bb := NewBoundingBox()
	for _, w := range p.Walls {
		bb.Expand(w.Start)
		bb.Expand(w.End)
	}
	return bb
}
