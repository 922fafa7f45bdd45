package sexpfmt

import (
	"fmt"
	"strconv"

	"github.com/OpenTraceLab/floorplan/pkg/plan"
)

// FindNode returns the first child list whose name is key.
// Example: FindNode(wall, "start") finds (start 0 0) in a wall list.
func FindNode(n Node, key string) (*List, bool) {
	l, ok := n.(*List)
	if !ok {
		return nil, false
	}
	for _, item := range l.Items {
		if sub, ok := item.(*List); ok && sub.Name() == key {
			return sub, true
		}
	}
	return nil, false
}

// FindAllNodes returns every child list whose name is key, in order.
func FindAllNodes(n Node, key string) []*List {
	l, ok := n.(*List)
	if !ok {
		return nil
	}
	var results []*List
	for _, item := range l.Items {
		if sub, ok := item.(*List); ok && sub.Name() == key {
			results = append(results, sub)
		}
	}
	return results
}

// GetString extracts the atom at index. Index 0 is the key.
func GetString(l *List, index int) (string, error) {
	if index < 0 || index >= l.Len() {
		return "", fmt.Errorf("index %d out of bounds (length %d)", index, l.Len())
	}
	if a, ok := l.Items[index].(Atom); ok {
		return string(a), nil
	}
	return "", fmt.Errorf("expected atom at index %d, got list", index)
}

// GetFloat extracts a float64 value at the given index
func GetFloat(l *List, index int) (float64, error) {
	str, err := GetString(l, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse float %q: %w", str, err)
	}

	return val, nil
}

// GetInt extracts an int value at the given index
func GetInt(l *List, index int) (int, error) {
	str, err := GetString(l, index)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("failed to parse int %q: %w", str, err)
	}

	return val, nil
}

// GetPoint extracts X and Y from a (key X Y) node such as (at 10 20).
func GetPoint(l *List) (plan.Point, error) {
	if l.Len() != 3 {
		return plan.Point{}, fmt.Errorf("line %d: expected (%s X Y), got %s", l.Line, l.Name(), l)
	}
	x, err := GetFloat(l, 1)
	if err != nil {
		return plan.Point{}, fmt.Errorf("line %d: failed to parse X coordinate: %w", l.Line, err)
	}
	y, err := GetFloat(l, 2)
	if err != nil {
		return plan.Point{}, fmt.Errorf("line %d: failed to parse Y coordinate: %w", l.Line, err)
	}
	return plan.Point{X: x, Y: y}, nil
}

// GetChildPoint finds the (key X Y) child of n and extracts its point.
func GetChildPoint(n *List, key string) (plan.Point, error) {
	child, ok := FindNode(n, key)
	if !ok {
		return plan.Point{}, fmt.Errorf("line %d: %s is missing (%s X Y)", n.Line, n.Name(), key)
	}
	return GetPoint(child)
}
