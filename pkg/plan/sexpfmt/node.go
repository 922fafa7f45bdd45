// Package sexpfmt reads and writes floor plans as S-expressions:
//
//	(floorplan
//	  (version 1)
//	  (wall (start 0 0) (end 300 0))
//	  (door (at 150 2))
//	  (window (at 300 120)))
//
// The reader streams tokens from an io.Reader and builds a small node tree.
package sexpfmt

import "strings"

// Node is an S-expression: either an atom or a list.
type Node interface {
	IsLeaf() bool
	// Len is the number of elements of a list, 1 for atoms.
	Len() int
	String() string
}

// Atom is a bare or quoted symbol.
type Atom string

func (a Atom) IsLeaf() bool   { return true }
func (a Atom) Len() int       { return 1 }
func (a Atom) String() string { return string(a) }

// List is a parenthesized sequence of nodes.
type List struct {
	Items []Node
	Line  int
}

func (l *List) IsLeaf() bool { return false }
func (l *List) Len() int     { return len(l.Items) }

func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, item := range l.Items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(item.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Get returns the element at index or nil when out of range.
func (l *List) Get(index int) Node {
	if index < 0 || index >= len(l.Items) {
		return nil
	}
	return l.Items[index]
}

// Name returns the leading symbol of the list, or "" if it has none.
func (l *List) Name() string {
	if a, ok := l.Get(0).(Atom); ok {
		return string(a)
	}
	return ""
}
