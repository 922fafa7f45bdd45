package sexpfmt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/OpenTraceLab/floorplan/pkg/plan"
)

// Encode writes p as a (floorplan ...) form, one element per line.
func Encode(w io.Writer, p *plan.Plan) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "(floorplan\n  (version %d)\n", Version)
	for _, wall := range p.Walls {
		fmt.Fprintf(bw, "  (wall (start %s) (end %s))\n", formatXY(wall.Start), formatXY(wall.End))
	}
	for _, d := range p.Doors {
		fmt.Fprintf(bw, "  (door (at %s))\n", formatXY(d.Position))
	}
	for _, win := range p.Windows {
		fmt.Fprintf(bw, "  (window (at %s))\n", formatXY(win.Position))
	}
	bw.WriteString(")\n")

	return bw.Flush()
}

func formatXY(pt plan.Point) string {
	return formatNumber(pt.X) + " " + formatNumber(pt.Y)
}

// formatNumber writes the shortest representation that parses back exactly.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
