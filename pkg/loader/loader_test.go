package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/floorplan/pkg/plan"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"house.json", FormatJSON, false},
		{"house.FPLAN", FormatSexp, false},
		{"dir.v2/house.sexp", FormatSexp, false},
		{"house.plan", FormatDSL, false},
		{"house.png", FormatAuto, true},
		{"house", FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Detect(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("Detect() error = %v, want ErrUnknownFormat", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("Detect() = %q, %v, want %q", got, err, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"", "auto", " AUTO "} {
		if f, err := ParseFormat(name); err != nil || f != FormatAuto {
			t.Errorf("ParseFormat(%q) = %q, %v", name, f, err)
		}
	}
	if f, err := ParseFormat("Raster"); err != nil || f != FormatRaster {
		t.Errorf("ParseFormat(Raster) = %q, %v", f, err)
	}
	if _, err := ParseFormat("dxf"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(dxf) error = %v", err)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		format  Format
		walls   int
		doors   int
		windows int
	}{
		{
			name:    "json",
			file:    "a.json",
			content: `{"walls":[{"start":{"x":0,"y":0},"end":{"x":10,"y":0}}],"doors":[{"position":[5,1]}],"windows":[]}`,
			walls:   1,
			doors:   1,
		},
		{
			name:    "raster needs explicit format",
			file:    "detector.json",
			content: `{"walls":[{"position":[[0,0],[400,0]]}],"doors":[{"bbox":[[100,-2],[160,-2],[160,2],[100,2]]}]}`,
			format:  FormatRaster,
			walls:   1,
			windows: 1,
		},
		{
			name:    "sexp",
			file:    "a.fplan",
			content: "(floorplan (version 1) (wall (start 0 0) (end 1 0)) (window (at 0.5 0)))",
			walls:   1,
			windows: 1,
		},
		{
			name:    "dsl",
			file:    "a.plan",
			content: "wall (0,0) -> (1,0)\nwall (1,0) -> (1,1)\ndoor at (1, 0.5)\n",
			walls:   2,
			doors:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Load(writeFile(t, tt.file, tt.content), tt.format)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(p.Walls) != tt.walls || len(p.Doors) != tt.doors || len(p.Windows) != tt.windows {
				t.Errorf("got %d/%d/%d, want %d/%d/%d",
					len(p.Walls), len(p.Doors), len(p.Windows), tt.walls, tt.doors, tt.windows)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(writeFile(t, "a.dxf", "x"), FormatAuto); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("unknown extension error = %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json"), FormatAuto); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(writeFile(t, "bad.json", "{"), FormatAuto); err == nil {
		t.Error("expected error for malformed json")
	}

	_, err := Load(writeFile(t, "bad.plan", "wall (0,0) -> (1,0)\nwall oops\n"), FormatAuto)
	if err == nil || !strings.Contains(err.Error(), "bad.plan:2:") {
		t.Errorf("dsl error = %v, want file and line position", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	p := &plan.Plan{
		Walls:   []plan.Wall{{Start: plan.Point{X: 0, Y: 0}, End: plan.Point{X: 250, Y: 0}}},
		Doors:   []plan.Door{{Position: plan.Point{X: 100, Y: 2}}},
		Windows: []plan.Window{{Position: plan.Point{X: 200, Y: 1}}},
	}

	for _, name := range []string{"out.json", "out.fplan", "out.plan"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := Save(path, p, FormatAuto); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			got, err := Load(path, FormatAuto)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if len(got.Walls) != 1 || got.Walls[0] != p.Walls[0] ||
				len(got.Doors) != 1 || got.Doors[0] != p.Doors[0] ||
				len(got.Windows) != 1 || got.Windows[0] != p.Windows[0] {
				t.Errorf("round trip = %+v", got)
			}
		})
	}

	rejected := filepath.Join(t.TempDir(), "x.json")
	if err := Save(rejected, p, FormatRaster); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Save(raster) error = %v", err)
	}
	if _, err := os.Stat(rejected); !os.IsNotExist(err) {
		t.Errorf("Save(raster) left %s behind", rejected)
	}
}
