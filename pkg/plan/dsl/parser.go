// Package dsl parses the line-oriented .plan text format:
//
//	# living room
//	wall (0, 0) -> (300, 0)
//	door at (150, 2)
//	window at (298, 120)
package dsl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alecthomas/participle/v2"

	"github.com/OpenTraceLab/floorplan/pkg/plan"
)

// Parser represents a .plan file parser
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new .plan parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(PlanLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse parses a .plan document from a reader
func (p *Parser) Parse(r io.Reader) (*File, error) {
	f, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseString parses a .plan document from a string
func (p *Parser) ParseString(input string) (*File, error) {
	f, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// ParseFile parses a .plan document from a file path
func (p *Parser) ParseFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	f, err := p.parser.Parse(filename, file)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return f, nil
}

// Decode parses r and returns the resulting plan.
func Decode(r io.Reader) (*plan.Plan, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	f, err := p.Parse(r)
	if err != nil {
		return nil, err
	}
	return f.Plan(), nil
}

// DecodeFile parses the file at path. Errors carry its name and line.
func DecodeFile(path string) (*plan.Plan, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	f, err := p.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return f.Plan(), nil
}

// Encode writes p in .plan syntax, walls first.
func Encode(w io.Writer, p *plan.Plan) error {
	bw := bufio.NewWriter(w)
	for _, wall := range p.Walls {
		fmt.Fprintf(bw, "wall %s -> %s\n", formatCoord(wall.Start), formatCoord(wall.End))
	}
	for _, d := range p.Doors {
		fmt.Fprintf(bw, "door at %s\n", formatCoord(d.Position))
	}
	for _, win := range p.Windows {
		fmt.Fprintf(bw, "window at %s\n", formatCoord(win.Position))
	}
	return bw.Flush()
}

func formatCoord(pt plan.Point) string {
	return "(" + strconv.FormatFloat(pt.X, 'g', -1, 64) + ", " + strconv.FormatFloat(pt.Y, 'g', -1, 64) + ")"
}
