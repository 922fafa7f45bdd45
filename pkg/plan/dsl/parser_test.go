package dsl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/floorplan/pkg/plan"
)

func TestParseStatements(t *testing.T) {
	input := `
	# two walls and an opening each
	wall (0, 0) -> (300, 0)
	WALL (300, 0) -> (300, 400.5)   # trailing comment
	door at (150, 2);
	window at (-1.5e1, .5)
	`

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	f, err := parser.ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if len(f.Statements) != 4 {
		t.Fatalf("Expected 4 statements, got %d", len(f.Statements))
	}
	if f.Statements[0].Pos.Line != 3 {
		t.Errorf("Expected first statement on line 3, got %d", f.Statements[0].Pos.Line)
	}

	p := f.Plan()
	want := &plan.Plan{
		Walls: []plan.Wall{
			{Start: plan.Point{X: 0, Y: 0}, End: plan.Point{X: 300, Y: 0}},
			{Start: plan.Point{X: 300, Y: 0}, End: plan.Point{X: 300, Y: 400.5}},
		},
		Doors:   []plan.Door{{Position: plan.Point{X: 150, Y: 2}}},
		Windows: []plan.Window{{Position: plan.Point{X: -15, Y: 0.5}}},
	}
	assertPlan(t, p, want)
}

func TestParseEmpty(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	f, err := parser.ParseString("# nothing yet\n")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	p := f.Plan()
	if !p.IsEmpty() || p.Walls == nil {
		t.Errorf("Expected empty non-nil plan, got %+v", p)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing arrow", "wall (0, 0) (1, 1)"},
		{"missing at", "door (1, 2)"},
		{"three coordinates", "window at (1, 2, 3)"},
		{"unknown keyword", "stairs at (1, 2)"},
		{"not a number", "door at (x, 2)"},
		{"unclosed", "wall (0, 0) -> (1, 1"},
	}

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parser.ParseString(tt.input); err == nil {
				t.Errorf("Expected error for %q", tt.input)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.plan")
	if err := os.WriteFile(path, []byte("wall (0,0) -> (10,0)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	parser, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	f, err := parser.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(f.Statements) != 1 || f.Statements[0].Wall == nil {
		t.Errorf("Expected one wall statement, got %+v", f.Statements)
	}

	if _, err := parser.ParseFile(filepath.Join(t.TempDir(), "missing.plan")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	p := &plan.Plan{
		Walls:   []plan.Wall{{Start: plan.Point{X: 0.25, Y: -4}, End: plan.Point{X: 2e7, Y: 1.0 / 3}}},
		Doors:   []plan.Door{{Position: plan.Point{X: 1, Y: 2}}},
		Windows: []plan.Window{{Position: plan.Point{X: 3, Y: 4}}},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "wall (0.25, -4) -> ") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	assertPlan(t, got, p)
}

func assertPlan(t *testing.T, got, want *plan.Plan) {
	t.Helper()
	if len(got.Walls) != len(want.Walls) || len(got.Doors) != len(want.Doors) || len(got.Windows) != len(want.Windows) {
		t.Fatalf("got %d/%d/%d elements, want %d/%d/%d",
			len(got.Walls), len(got.Doors), len(got.Windows),
			len(want.Walls), len(want.Doors), len(want.Windows))
	}
	for i := range want.Walls {
		if got.Walls[i] != want.Walls[i] {
			t.Errorf("wall %d = %+v, want %+v", i, got.Walls[i], want.Walls[i])
		}
	}
	for i := range want.Doors {
		if got.Doors[i] != want.Doors[i] {
			t.Errorf("door %d = %+v, want %+v", i, got.Doors[i], want.Doors[i])
		}
	}
	for i := range want.Windows {
		if got.Windows[i] != want.Windows[i] {
			t.Errorf("window %d = %+v, want %+v", i, got.Windows[i], want.Windows[i])
		}
	}
}
