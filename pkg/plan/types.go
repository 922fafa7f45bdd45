// Package plan holds the floor-plan data model and the planar geometry used
// to place doors and windows against walls.
package plan

import (
	"fmt"
	"math"
)

// Point is a planar coordinate in centimeters.
type Point struct {
	X float64
	Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Wall is an undirected line segment between two points.
type Wall struct {
	Start Point
	End   Point
}

// Length returns the Euclidean length of the wall.
func (w Wall) Length() float64 {
	return Distance(w.Start, w.End)
}

// Midpoint returns the point halfway between the endpoints.
func (w Wall) Midpoint() Point {
	return Point{
		X: (w.Start.X + w.End.X) / 2,
		Y: (w.Start.Y + w.End.Y) / 2,
	}
}

// Angle returns the direction of the wall from Start to End in degrees.
// A zero-length wall reports 0.
func (w Wall) Angle() float64 {
	return math.Atan2(w.End.Y-w.Start.Y, w.End.X-w.Start.X) * 180 / math.Pi
}

// IsDegenerate reports whether both endpoints coincide.
func (w Wall) IsDegenerate() bool {
	return w.Start == w.End
}

// Door is a door fixture to be snapped onto its nearest wall.
type Door struct {
	Position Point
}

// Window is a window fixture to be snapped onto its nearest wall.
type Window struct {
	Position Point
}

// FixtureKind distinguishes doors from windows.
type FixtureKind int

const (
	KindDoor FixtureKind = iota
	KindWindow
)

func (k FixtureKind) String() string {
	switch k {
	case KindDoor:
		return "door"
	case KindWindow:
		return "window"
	default:
		return fmt.Sprintf("FixtureKind(%d)", int(k))
	}
}

// Fixture is a door or window together with its index in the plan.
type Fixture struct {
	Kind     FixtureKind
	Index    int
	Position Point
}

// Plan is the input floor plan supplied by the embedding application.
type Plan struct {
	Walls   []Wall
	Doors   []Door
	Windows []Window
}

// Fixtures returns doors followed by windows, each in input order.
func (p *Plan) Fixtures() []Fixture {
	out := make([]Fixture, 0, len(p.Doors)+len(p.Windows))
	for i, d := range p.Doors {
		out = append(out, Fixture{Kind: KindDoor, Index: i, Position: d.Position})
	}
	for i, w := range p.Windows {
		out = append(out, Fixture{Kind: KindWindow, Index: i, Position: w.Position})
	}
	return out
}

// IsEmpty reports whether the plan has nothing to draw.
func (p *Plan) IsEmpty() bool {
	return len(p.Walls) == 0 && len(p.Doors) == 0 && len(p.Windows) == 0
}
