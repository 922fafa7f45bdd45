package sexpfmt

import (
	"errors"
	"fmt"
	"io"

	"github.com/OpenTraceLab/floorplan/pkg/plan"
)

// Version is the format version written by Encode.
const Version = 1

// ErrNotFloorplan is returned when the input has no (floorplan ...) form.
var ErrNotFloorplan = errors.New("not a floorplan s-expression")

// Decode reads a single (floorplan ...) form from r.
func Decode(r io.Reader) (*plan.Plan, error) {
	nodes, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse s-expression: %w", err)
	}
	if len(nodes) == 0 {
		return nil, ErrNotFloorplan
	}
	root, ok := nodes[0].(*List)
	if !ok || root.Name() != "floorplan" {
		return nil, ErrNotFloorplan
	}
	if len(nodes) > 1 {
		return nil, fmt.Errorf("unexpected data after floorplan form")
	}
	return FromNode(root)
}

// FromNode converts a parsed (floorplan ...) list into a plan.
// Unknown child forms are ignored.
func FromNode(root *List) (*plan.Plan, error) {
	if root.Name() != "floorplan" {
		return nil, ErrNotFloorplan
	}

	if v, ok := FindNode(root, "version"); ok {
		version, err := GetInt(v, 1)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid version: %w", v.Line, err)
		}
		if version > Version {
			return nil, fmt.Errorf("unsupported floorplan version %d", version)
		}
	}

	p := &plan.Plan{
		Walls:   []plan.Wall{},
		Doors:   []plan.Door{},
		Windows: []plan.Window{},
	}

	for _, node := range FindAllNodes(root, "wall") {
		start, err := GetChildPoint(node, "start")
		if err != nil {
			return nil, err
		}
		end, err := GetChildPoint(node, "end")
		if err != nil {
			return nil, err
		}
		p.Walls = append(p.Walls, plan.Wall{Start: start, End: end})
	}
	for _, node := range FindAllNodes(root, "door") {
		at, err := GetChildPoint(node, "at")
		if err != nil {
			return nil, err
		}
		p.Doors = append(p.Doors, plan.Door{Position: at})
	}
	for _, node := range FindAllNodes(root, "window") {
		at, err := GetChildPoint(node, "at")
		if err != nil {
			return nil, err
		}
		p.Windows = append(p.Windows, plan.Window{Position: at})
	}

	return p, nil
}
