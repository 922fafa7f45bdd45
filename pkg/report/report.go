// Package report summarizes a floor plan for the info command.
package report

import (
	"fmt"
	"io"

	"github.com/OpenTraceLab/floorplan/pkg/plan"
)

// WallInfo describes one wall.
type WallInfo struct {
	Index  int
	Wall   plan.Wall
	Length float64
	Angle  float64 // degrees
	Label  string
}

// FixtureInfo describes where a door or window lands.
type FixtureInfo struct {
	Kind      plan.FixtureKind
	Index     int
	Position  plan.Point
	Aligned   bool
	WallIndex int
	Distance  float64
	Rotation  float64 // degrees
}

// Summary is everything `info` prints.
type Summary struct {
	Walls       []WallInfo
	Fixtures    []FixtureInfo
	TotalLength float64
	Degenerate  int
	Unaligned   int
	Bounds      plan.BoundingBox
	Dimensions  plan.Dimensions
	HasBounds   bool
}

// Doors counts door fixtures.
func (s *Summary) Doors() int { return s.count(plan.KindDoor) }

// Windows counts window fixtures.
func (s *Summary) Windows() int { return s.count(plan.KindWindow) }

func (s *Summary) count(kind plan.FixtureKind) int {
	n := 0
	for _, f := range s.Fixtures {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

// Summarize measures walls and resolves each fixture against its nearest wall.
func Summarize(p *plan.Plan) *Summary {
	s := &Summary{}

	for i, w := range p.Walls {
		length := w.Length()
		s.Walls = append(s.Walls, WallInfo{
			Index:  i,
			Wall:   w,
			Length: length,
			Angle:  w.Angle(),
			Label:  plan.LengthLabel(w),
		})
		s.TotalLength += length
		if w.IsDegenerate() {
			s.Degenerate++
		}
	}

	for _, f := range p.Fixtures() {
		aligned, match, ok := plan.AlignFixture(f.Position, p.Walls)
		info := FixtureInfo{
			Kind:      f.Kind,
			Index:     f.Index,
			Position:  f.Position,
			Aligned:   ok,
			WallIndex: match.Index,
			Rotation:  aligned.Rotation,
		}
		if ok {
			info.Distance = match.Distance
		} else {
			s.Unaligned++
		}
		s.Fixtures = append(s.Fixtures, info)
	}

	s.Bounds = p.Bounds()
	s.Dimensions, s.HasBounds = p.Dimensions()
	return s
}

// Write prints the summary as plain text.
func Write(w io.Writer, s *Summary) error {
	ew := &errWriter{w: w}

	ew.printf("Walls:    %d (total %s)\n", len(s.Walls), plan.FormatLength(s.TotalLength))
	ew.printf("Doors:    %d\n", s.Doors())
	ew.printf("Windows:  %d\n", s.Windows())
	if s.HasBounds {
		ew.printf("Size:     %s x %s\n", s.Dimensions.Width.Label(), s.Dimensions.Height.Label())
		ew.printf("Bounds:   %v - %v\n", s.Bounds.Min, s.Bounds.Max)
	}
	if s.Degenerate > 0 {
		ew.printf("Warning:  %d zero-length wall(s)\n", s.Degenerate)
	}
	if s.Unaligned > 0 {
		ew.printf("Warning:  %d fixture(s) with no wall to align to\n", s.Unaligned)
	}

	if len(s.Walls) > 0 {
		ew.printf("\n%-5s %-24s %-24s %8s %8s\n", "WALL", "START", "END", "LENGTH", "ANGLE")
		for _, wi := range s.Walls {
			ew.printf("%-5d %-24v %-24v %8s %7.1f°\n",
				wi.Index, wi.Wall.Start, wi.Wall.End, wi.Label, wi.Angle)
		}
	}

	if len(s.Fixtures) > 0 {
		ew.printf("\n%-8s %-24s %5s %9s %9s\n", "FIXTURE", "POSITION", "WALL", "DISTANCE", "ROTATION")
		for _, fi := range s.Fixtures {
			name := fmt.Sprintf("%s %d", fi.Kind, fi.Index)
			if !fi.Aligned {
				ew.printf("%-8s %-24v %5s %9s %9s\n", name, fi.Position, "-", "-", "-")
				continue
			}
			ew.printf("%-8s %-24v %5d %9.1f %8.1f°\n",
				name, fi.Position, fi.WallIndex, fi.Distance, fi.Rotation)
		}
	}

	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
