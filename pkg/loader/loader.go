// Package loader reads and writes floor plans in every supported format.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/floorplan/pkg/plan"
	"github.com/OpenTraceLab/floorplan/pkg/plan/dsl"
	"github.com/OpenTraceLab/floorplan/pkg/plan/raster"
	"github.com/OpenTraceLab/floorplan/pkg/plan/sexpfmt"
)

// Format identifies a floor plan encoding.
type Format string

const (
	FormatAuto   Format = ""
	FormatJSON   Format = "json"
	FormatRaster Format = "raster"
	FormatSexp   Format = "sexp"
	FormatDSL    Format = "plan"
)

// Formats lists every named format.
var Formats = []Format{FormatJSON, FormatRaster, FormatSexp, FormatDSL}

// ErrUnknownFormat is returned when a format cannot be determined.
var ErrUnknownFormat = errors.New("unknown floor plan format")

var extensions = map[string]Format{
	".json":  FormatJSON,
	".fplan": FormatSexp,
	".sexp":  FormatSexp,
	".plan":  FormatDSL,
}

// ParseFormat resolves a --format flag value. "auto" and "" mean FormatAuto.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "auto" {
		return FormatAuto, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Detect picks a format from the file extension.
func Detect(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return FormatAuto, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Decode reads a plan in the given format. FormatAuto is rejected.
func Decode(r io.Reader, format Format) (*plan.Plan, error) {
	switch format {
	case FormatJSON:
		return plan.DecodeJSON(r)
	case FormatRaster:
		return raster.Decode(r)
	case FormatSexp:
		return sexpfmt.Decode(r)
	case FormatDSL:
		return dsl.Decode(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Load reads the plan at path. With FormatAuto the format is detected from
// the extension.
func Load(path string, format Format) (*plan.Plan, error) {
	if format == FormatAuto {
		var err error
		if format, err = Detect(path); err != nil {
			return nil, err
		}
	}
	if format == FormatDSL {
		return dsl.DecodeFile(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	p, err := Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Encode writes p in the given format. Detector results are input only.
func Encode(w io.Writer, p *plan.Plan, format Format) error {
	switch format {
	case FormatJSON:
		return plan.EncodeJSON(w, p)
	case FormatSexp:
		return sexpfmt.Encode(w, p)
	case FormatDSL:
		return dsl.Encode(w, p)
	}
	return fmt.Errorf("%w: cannot write %q", ErrUnknownFormat, format)
}

// Save writes p to path. With FormatAuto the format comes from the extension.
func Save(path string, p *plan.Plan, format Format) error {
	if format == FormatAuto {
		var err error
		if format, err = Detect(path); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := Encode(&buf, p, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
