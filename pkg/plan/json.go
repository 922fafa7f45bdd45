package plan

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MarshalJSON writes the point as {"x":..,"y":..}.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPoint{X: p.X, Y: p.Y})
}

// UnmarshalJSON accepts either {"x":..,"y":..} or a two element array.
func (p *Point) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var xy []float64
		if err := json.Unmarshal(data, &xy); err != nil {
			return fmt.Errorf("point: %w", err)
		}
		if len(xy) != 2 {
			return fmt.Errorf("point: expected [x, y], got %d values", len(xy))
		}
		p.X, p.Y = xy[0], xy[1]
		return nil
	}

	var jp jsonPoint
	if err := json.Unmarshal(data, &jp); err != nil {
		return fmt.Errorf("point: %w", err)
	}
	p.X, p.Y = jp.X, jp.Y
	return nil
}

type jsonWall struct {
	Start    *Point  `json:"start,omitempty"`
	End      *Point  `json:"end,omitempty"`
	Position []Point `json:"position,omitempty"`
}

// MarshalJSON writes the wall as {"start":..,"end":..}.
func (w Wall) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonWall{Start: &w.Start, End: &w.End})
}

// UnmarshalJSON accepts {"start":..,"end":..} or the detector form
// {"position":[[x1,y1],[x2,y2]]}.
func (w *Wall) UnmarshalJSON(data []byte) error {
	var jw jsonWall
	if err := json.Unmarshal(data, &jw); err != nil {
		return fmt.Errorf("wall: %w", err)
	}
	switch {
	case jw.Start != nil && jw.End != nil:
		w.Start, w.End = *jw.Start, *jw.End
	case len(jw.Position) == 2:
		w.Start, w.End = jw.Position[0], jw.Position[1]
	default:
		return fmt.Errorf("wall: needs start and end or a two point position")
	}
	return nil
}

type jsonFixture struct {
	Position *Point `json:"position"`
}

func decodeFixture(data []byte, kind string) (Point, error) {
	var jf jsonFixture
	if err := json.Unmarshal(data, &jf); err != nil {
		return Point{}, fmt.Errorf("%s: %w", kind, err)
	}
	if jf.Position == nil {
		return Point{}, fmt.Errorf("%s: missing position", kind)
	}
	return *jf.Position, nil
}

func (d Door) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonFixture{Position: &d.Position})
}

func (d *Door) UnmarshalJSON(data []byte) error {
	pos, err := decodeFixture(data, "door")
	if err != nil {
		return err
	}
	d.Position = pos
	return nil
}

func (w Window) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonFixture{Position: &w.Position})
}

func (w *Window) UnmarshalJSON(data []byte) error {
	pos, err := decodeFixture(data, "window")
	if err != nil {
		return err
	}
	w.Position = pos
	return nil
}

type jsonPlan struct {
	Walls   []Wall   `json:"walls"`
	Doors   []Door   `json:"doors"`
	Windows []Window `json:"windows"`
}

// DecodeJSON reads a plan object {"walls":[..],"doors":[..],"windows":[..]}.
// Missing arrays are treated as empty.
func DecodeJSON(r io.Reader) (*Plan, error) {
	var jp jsonPlan
	if err := json.NewDecoder(r).Decode(&jp); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	return &Plan{Walls: jp.Walls, Doors: jp.Doors, Windows: jp.Windows}, nil
}

// EncodeJSON writes the plan in its canonical JSON form.
func EncodeJSON(w io.Writer, p *Plan) error {
	jp := jsonPlan{Walls: p.Walls, Doors: p.Doors, Windows: p.Windows}
	if jp.Walls == nil {
		jp.Walls = []Wall{}
	}
	if jp.Doors == nil {
		jp.Doors = []Door{}
	}
	if jp.Windows == nil {
		jp.Windows = []Window{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jp)
}
