package dsl

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/floorplan/pkg/plan"
)

// File is a parsed .plan document
type File struct {
	Statements []*Statement `parser:"( @@ Semicolon? )*"`
}

// Statement is one wall, door or window line
type Statement struct {
	Pos lexer.Position

	Wall   *WallStmt   `parser:"  @@"`
	Door   *DoorStmt   `parser:"| @@"`
	Window *WindowStmt `parser:"| @@"`
}

// WallStmt represents: wall (x, y) -> (x, y)
type WallStmt struct {
	Start *Coord `parser:"KwWall @@"`
	End   *Coord `parser:"Arrow @@"`
}

// DoorStmt represents: door at (x, y)
type DoorStmt struct {
	At *Coord `parser:"KwDoor KwAt @@"`
}

// WindowStmt represents: window at (x, y)
type WindowStmt struct {
	At *Coord `parser:"KwWindow KwAt @@"`
}

// Coord is a parenthesized (x, y) pair
type Coord struct {
	X float64 `parser:"LParen @Number"`
	Y float64 `parser:"Comma @Number RParen"`
}

// Point converts the coordinate to a plan point
func (c *Coord) Point() plan.Point {
	return plan.Point{X: c.X, Y: c.Y}
}

// Plan collects the statements into a floor plan in source order.
func (f *File) Plan() *plan.Plan {
	p := &plan.Plan{
		Walls:   []plan.Wall{},
		Doors:   []plan.Door{},
		Windows: []plan.Window{},
	}
	for _, st := range f.Statements {
		switch {
		case st.Wall != nil:
			p.Walls = append(p.Walls, plan.Wall{
				Start: st.Wall.Start.Point(),
				End:   st.Wall.End.Point(),
			})
		case st.Door != nil:
			p.Doors = append(p.Doors, plan.Door{Position: st.Door.At.Point()})
		case st.Window != nil:
			p.Windows = append(p.Windows, plan.Window{Position: st.Window.At.Point()})
		}
	}
	return p
}
