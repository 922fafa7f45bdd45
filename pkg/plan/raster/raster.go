// Package raster imports the output of a floor-plan image detector.
//
// The detector reports walls as point pairs and openings as axis-aligned
// bounding boxes without telling doors from windows. Import snaps each box
// onto its nearest wall and classifies it by aspect ratio. When the response
// carries no doors field at all, candidates are guessed at gaps between
// nearly parallel walls.
package raster

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/OpenTraceLab/floorplan/pkg/plan"
)

const (
	// Boxes wider than WindowRatio:1 or taller than 1:WindowRatio are windows.
	WindowRatio   = 2.5
	MinDoorLength = 10.0
	DefaultDoor   = 30.0
	DoorThickness = 6.0
	WindowWidth   = 30.0
	WindowSpacing = 4.0
)

// Gap candidates generated when the detector reports no openings.
const (
	GapDoorWidth     = 40.0
	GapDoorHeight    = 10.0
	GapThreshold     = 50.0
	ParallelEpsilon  = 0.2
	MaxGapCandidates = 5
)

// Candidate is one detected opening. BBox lists the corners top-left,
// top-right, bottom-right, bottom-left.
type Candidate struct {
	BBox []plan.Point `json:"bbox"`
}

// Result is the detector response. A nil Doors means the field was missing,
// which is not the same as an empty list.
type Result struct {
	Status  string       `json:"status,omitempty"`
	Message string       `json:"message,omitempty"`
	Walls   []plan.Wall  `json:"walls"`
	Doors   *[]Candidate `json:"doors"`
}

// Opening is a candidate after alignment.
type Opening struct {
	Kind      plan.FixtureKind
	Endpoints [2]plan.Point
	WallIndex int
	WallAngle float64 // radians
	Width     float64
	// Thickness for doors, line spacing for windows.
	Thickness float64
}

// Position is the midpoint of the aligned endpoints.
func (o Opening) Position() plan.Point {
	return plan.Wall{Start: o.Endpoints[0], End: o.Endpoints[1]}.Midpoint()
}

// Decode reads a detector response and imports it.
func Decode(r io.Reader) (*plan.Plan, error) {
	var res Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode detector result: %w", err)
	}
	p, _ := Import(&res)
	return p, nil
}

// Import aligns every candidate and returns the resulting plan along with the
// per-opening detail. Candidates without four corners or without any wall are
// skipped. Without a doors field the candidates come from PotentialDoors.
func Import(res *Result) (*plan.Plan, []Opening) {
	p := &plan.Plan{
		Walls:   append([]plan.Wall{}, res.Walls...),
		Doors:   []plan.Door{},
		Windows: []plan.Window{},
	}

	var candidates []Candidate
	if res.Doors != nil {
		candidates = *res.Doors
	} else {
		candidates = PotentialDoors(res.Walls)
	}

	var openings []Opening
	for _, c := range candidates {
		o, ok := align(c, p.Walls)
		if !ok {
			continue
		}
		openings = append(openings, o)
		switch o.Kind {
		case plan.KindDoor:
			p.Doors = append(p.Doors, plan.Door{Position: o.Position()})
		case plan.KindWindow:
			p.Windows = append(p.Windows, plan.Window{Position: o.Position()})
		}
	}
	return p, openings
}

// PotentialDoors guesses openings from the walls alone: every pair of nearly
// parallel walls with endpoints closer than GapThreshold gets a
// GapDoorWidth x GapDoorHeight box centred between its closest endpoints.
// At most MaxGapCandidates boxes are returned.
func PotentialDoors(walls []plan.Wall) []Candidate {
	if len(walls) < 2 {
		return nil
	}

	var out []Candidate
	for i := range walls {
		for j := i + 1; j < len(walls); j++ {
			a, b := walls[i], walls[j]
			if !parallel(a, b) || !nearby(a, b) {
				continue
			}
			pa, pb := closestEndpoints(a, b)
			c := plan.Point{X: (pa.X + pb.X) / 2, Y: (pa.Y + pb.Y) / 2}
			out = append(out, centredBox(c, GapDoorWidth, GapDoorHeight))
		}
	}
	if len(out) > MaxGapCandidates {
		out = out[:MaxGapCandidates]
	}
	return out
}

func centredBox(c plan.Point, w, h float64) Candidate {
	return Candidate{BBox: []plan.Point{
		{X: c.X - w/2, Y: c.Y - h/2},
		{X: c.X + w/2, Y: c.Y - h/2},
		{X: c.X + w/2, Y: c.Y + h/2},
		{X: c.X - w/2, Y: c.Y + h/2},
	}}
}

// parallel reports whether the wall directions differ by little, in either
// orientation. Zero-length walls are never parallel.
func parallel(a, b plan.Wall) bool {
	la, lb := a.Length(), b.Length()
	if la == 0 || lb == 0 {
		return false
	}
	va, vb := a.End.Sub(a.Start), b.End.Sub(b.Start)
	dot := math.Abs((va.X*vb.X + va.Y*vb.Y) / (la * lb))
	return math.Abs(dot-1) < ParallelEpsilon
}

// nearby reports whether either endpoint of a lies within GapThreshold of an
// endpoint of b.
func nearby(a, b plan.Wall) bool {
	d1 := math.Min(plan.Distance(a.Start, b.Start), plan.Distance(a.Start, b.End))
	d2 := math.Min(plan.Distance(a.End, b.Start), plan.Distance(a.End, b.End))
	return d1 < GapThreshold || d2 < GapThreshold
}

// closestEndpoints returns the nearest endpoint pair, first pair on ties.
func closestEndpoints(a, b plan.Wall) (plan.Point, plan.Point) {
	pairs := [4][2]plan.Point{
		{a.Start, b.Start},
		{a.Start, b.End},
		{a.End, b.Start},
		{a.End, b.End},
	}
	best := pairs[0]
	bestDist := plan.Distance(best[0], best[1])
	for _, pr := range pairs[1:] {
		if d := plan.Distance(pr[0], pr[1]); d < bestDist {
			best, bestDist = pr, d
		}
	}
	return best[0], best[1]
}

// Classify decides door or window from a box width and height.
// A zero-height box is a window; a zero-size box is a door.
func Classify(width, height float64) plan.FixtureKind {
	ratio := width / height
	if ratio > WindowRatio || ratio < 1/WindowRatio {
		return plan.KindWindow
	}
	return plan.KindDoor
}

func align(c Candidate, walls []plan.Wall) (Opening, bool) {
	if len(c.BBox) < 4 {
		return Opening{}, false
	}
	tl, br := c.BBox[0], c.BBox[2]
	center := plan.Point{X: (tl.X + br.X) / 2, Y: (tl.Y + br.Y) / 2}

	match, ok := plan.NearestWall(center, walls)
	if !ok {
		return Opening{}, false
	}
	wall := match.Wall
	angle := math.Atan2(wall.End.Y-wall.Start.Y, wall.End.X-wall.Start.X)

	o := Opening{
		Kind:      Classify(br.X-tl.X, br.Y-tl.Y),
		WallIndex: match.Index,
		WallAngle: angle,
	}

	if o.Kind == plan.KindWindow {
		// Lay the box diagonal along the wall through the centre, then snap.
		half := plan.Distance(tl, br) / 2
		dir := plan.Point{X: math.Cos(angle), Y: math.Sin(angle)}
		o.Endpoints = [2]plan.Point{
			plan.SnapToWall(center.Sub(dir.Scale(half)), wall),
			plan.SnapToWall(center.Add(dir.Scale(half)), wall),
		}
		o.Width = WindowWidth
		o.Thickness = WindowSpacing
		return o, true
	}

	// Doors span the two projected corners that are farthest apart.
	var projected [4]plan.Point
	for i := range projected {
		projected[i] = plan.SnapToWall(c.BBox[i], wall)
	}
	maxDist := 0.0
	endpoints := [2]plan.Point{center, center}
	for i := 0; i < len(projected); i++ {
		for j := i + 1; j < len(projected); j++ {
			if d := plan.Distance(projected[i], projected[j]); d > maxDist {
				maxDist = d
				endpoints = [2]plan.Point{projected[i], projected[j]}
			}
		}
	}

	length := maxDist
	if length < MinDoorLength {
		length = DefaultDoor
		mid := plan.Wall{Start: endpoints[0], End: endpoints[1]}.Midpoint()
		dir := plan.Point{X: math.Cos(angle), Y: math.Sin(angle)}
		endpoints = [2]plan.Point{
			mid.Sub(dir.Scale(length / 2)),
			mid.Add(dir.Scale(length / 2)),
		}
	}

	o.Endpoints = endpoints
	o.Width = length
	o.Thickness = DoorThickness
	return o, true
}
