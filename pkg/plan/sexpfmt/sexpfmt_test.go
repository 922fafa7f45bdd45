package sexpfmt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/OpenTraceLab/floorplan/pkg/plan"
)

// Helper to parse a single list from string
func parseList(t *testing.T, input string) *List {
	t.Helper()
	nodes, err := ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse s-expression %q: %v", input, err)
	}
	if len(nodes) == 0 {
		t.Fatalf("No s-expressions parsed from %q", input)
	}
	l, ok := nodes[0].(*List)
	if !ok {
		t.Fatalf("%q is not a list", input)
	}
	return l
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		count   int
		wantErr bool
	}{
		{name: "flat list", input: "(at 1 2)", want: "(at 1 2)", count: 1},
		{name: "nested", input: "(wall (start 0 0)\n (end 1 1))", want: "(wall (start 0 0) (end 1 1))", count: 1},
		{name: "comments", input: "; header\n(a b) # trailing\n(c)", want: "(a b)", count: 2},
		{name: "quoted string", input: `(name "living room")`, want: "(name living room)", count: 1},
		{name: "empty input", input: "  \n", count: 0},
		{name: "unclosed", input: "(a (b c)", wantErr: true},
		{name: "stray close", input: ")", wantErr: true},
		{name: "unterminated string", input: `(name "abc`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := ParseString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseString() expected error, got %v", nodes)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseString() unexpected error: %v", err)
			}
			if len(nodes) != tt.count {
				t.Fatalf("got %d nodes, want %d", len(nodes), tt.count)
			}
			if tt.count > 0 && nodes[0].String() != tt.want {
				t.Errorf("String() = %q, want %q", nodes[0].String(), tt.want)
			}
		})
	}
}

func TestLineNumbers(t *testing.T) {
	_, err := ParseString("(floorplan\n  (wall\n    (start 0 0)\n")
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error = %v, want mention of line 2", err)
	}
}

func TestGetFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		index   int
		want    float64
		wantErr bool
	}{
		{name: "integer", input: "(at 100 50)", index: 1, want: 100},
		{name: "negative decimal", input: "(at 1 -12.5)", index: 2, want: -12.5},
		{name: "exponent", input: "(at 1e3 0)", index: 1, want: 1000},
		{name: "not a number", input: "(at x 0)", index: 1, wantErr: true},
		{name: "index out of bounds", input: "(at 1 2)", index: 5, wantErr: true},
		{name: "list element", input: "(at (x) 2)", index: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetFloat(parseList(t, tt.input), tt.index)
			if tt.wantErr {
				if err == nil {
					t.Errorf("GetFloat() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("GetFloat() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GetFloat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindNodes(t *testing.T) {
	l := parseList(t, "(floorplan (door (at 1 2)) (wall (start 0 0) (end 1 0)) (door (at 3 4)))")

	doors := FindAllNodes(l, "door")
	if len(doors) != 2 {
		t.Fatalf("FindAllNodes(door) = %d, want 2", len(doors))
	}
	at, err := GetChildPoint(doors[1], "at")
	if err != nil || at != (plan.Point{X: 3, Y: 4}) {
		t.Errorf("second door at = %v, %v", at, err)
	}

	if _, ok := FindNode(l, "window"); ok {
		t.Error("FindNode(window) should not match")
	}
	if _, ok := FindNode(Atom("door"), "door"); ok {
		t.Error("FindNode on an atom should not match")
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *plan.Plan
		wantErr error
	}{
		{
			name: "full plan",
			input: `(floorplan
  (version 1)
  (wall (start 0 0) (end 300 0))
  (wall (start 300 0) (end 300 400))
  (door (at 150 2))
  (window (at 298 120))
  (note "ignored"))`,
			want: &plan.Plan{
				Walls: []plan.Wall{
					{Start: plan.Point{X: 0, Y: 0}, End: plan.Point{X: 300, Y: 0}},
					{Start: plan.Point{X: 300, Y: 0}, End: plan.Point{X: 300, Y: 400}},
				},
				Doors:   []plan.Door{{Position: plan.Point{X: 150, Y: 2}}},
				Windows: []plan.Window{{Position: plan.Point{X: 298, Y: 120}}},
			},
		},
		{
			name:  "empty plan",
			input: "(floorplan)",
			want:  &plan.Plan{},
		},
		{
			name:    "wrong root",
			input:   "(kicad_pcb (version 1))",
			wantErr: ErrNotFloorplan,
		},
		{
			name:    "no forms",
			input:   "; nothing here",
			wantErr: ErrNotFloorplan,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			assertPlan(t, got, tt.want)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"wall missing end", "(floorplan (wall (start 0 0)))"},
		{"bad coordinate", "(floorplan (door (at 1 north)))"},
		{"short point", "(floorplan (window (at 1)))"},
		{"future version", "(floorplan (version 9))"},
		{"trailing form", "(floorplan) (floorplan)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.input)); err == nil {
				t.Error("Decode() expected error, got nil")
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	p := &plan.Plan{
		Walls: []plan.Wall{
			{Start: plan.Point{X: 0.1, Y: -3}, End: plan.Point{X: 1e6, Y: 2.5}},
		},
		Doors:   []plan.Door{{Position: plan.Point{X: 1.0 / 3, Y: 7}}},
		Windows: []plan.Window{{Position: plan.Point{X: -0, Y: 42}}},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, p); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.HasPrefix(buf.String(), "(floorplan\n  (version 1)\n") {
		t.Errorf("unexpected header:\n%s", buf.String())
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
