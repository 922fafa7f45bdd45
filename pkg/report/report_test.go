package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/OpenTraceLab/floorplan/pkg/plan"
)

func TestSummarize(t *testing.T) {
	p := &plan.Plan{
		Walls: []plan.Wall{
			{Start: plan.Point{X: 0, Y: 0}, End: plan.Point{X: 300, Y: 0}},
			{Start: plan.Point{X: 300, Y: 0}, End: plan.Point{X: 300, Y: 400}},
			{Start: plan.Point{X: 50, Y: 50}, End: plan.Point{X: 50, Y: 50}},
		},
		Doors:   []plan.Door{{Position: plan.Point{X: 296, Y: 200}}},
		Windows: []plan.Window{{Position: plan.Point{X: 120, Y: -3}}},
	}

	s := Summarize(p)

	if len(s.Walls) != 3 || s.TotalLength != 700 || s.Degenerate != 1 {
		t.Errorf("walls = %d, total = %v, degenerate = %d", len(s.Walls), s.TotalLength, s.Degenerate)
	}
	if s.Walls[1].Label != "400cm" || math.Abs(s.Walls[1].Angle-90) > 1e-9 {
		t.Errorf("wall 1 = %+v", s.Walls[1])
	}
	if s.Doors() != 1 || s.Windows() != 1 || s.Unaligned != 0 {
		t.Errorf("doors = %d, windows = %d, unaligned = %d", s.Doors(), s.Windows(), s.Unaligned)
	}

	door := s.Fixtures[0]
	if door.Kind != plan.KindDoor || door.WallIndex != 1 || math.Abs(door.Distance-4) > 1e-9 || math.Abs(door.Rotation-90) > 1e-9 {
		t.Errorf("door = %+v", door)
	}
	window := s.Fixtures[1]
	if window.WallIndex != 0 || math.Abs(window.Distance-3) > 1e-9 || window.Rotation != 0 {
		t.Errorf("window = %+v", window)
	}

	if !s.HasBounds || s.Dimensions.Width.Label() != "300cm" || s.Dimensions.Height.Label() != "400cm" {
		t.Errorf("dimensions = %+v", s.Dimensions)
	}
}

func TestSummarizeNoWalls(t *testing.T) {
	s := Summarize(&plan.Plan{Doors: []plan.Door{{Position: plan.Point{X: 1, Y: 1}}}})
	if s.Unaligned != 1 || s.HasBounds {
		t.Errorf("unaligned = %d, hasBounds = %v", s.Unaligned, s.HasBounds)
	}
	if s.Fixtures[0].WallIndex != -1 || s.Fixtures[0].Aligned {
		t.Errorf("fixture = %+v", s.Fixtures[0])
	}
}

func TestWrite(t *testing.T) {
	p := &plan.Plan{
		Walls: []plan.Wall{{Start: plan.Point{X: 0, Y: 0}, End: plan.Point{X: 250, Y: 0}}},
		Doors: []plan.Door{{Position: plan.Point{X: 100, Y: 2}}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, Summarize(p)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Walls:    1 (total 250cm)",
		"Doors:    1",
		"Size:     250cm x 0cm",
		"250cm",
		"door 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := Write(&buf, Summarize(&plan.Plan{Windows: []plan.Window{{}}})); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1 fixture(s) with no wall") {
		t.Errorf("missing unaligned warning:\n%s", buf.String())
	}
}
