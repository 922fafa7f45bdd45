package plan

import "math"

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// ClosestPointOnSegment returns the point of segment a-b closest to p.
// The projection parameter is clamped to [0,1]; a zero-length segment
// collapses to a.
func ClosestPointOnSegment(p, a, b Point) Point {
	cx := b.X - a.X
	cy := b.Y - a.Y

	dot := (p.X-a.X)*cx + (p.Y-a.Y)*cy
	lenSq := cx*cx + cy*cy

	param := -1.0
	if lenSq != 0 {
		param = dot / lenSq
	}

	switch {
	case param < 0:
		return a
	case param > 1:
		return b
	default:
		return Point{X: a.X + param*cx, Y: a.Y + param*cy}
	}
}

// PointToSegmentDistance returns the distance from p to the finite segment a-b.
func PointToSegmentDistance(p, a, b Point) float64 {
	return Distance(p, ClosestPointOnSegment(p, a, b))
}

// DistanceTo returns the distance from p to the wall segment.
func (w Wall) DistanceTo(p Point) float64 {
	return PointToSegmentDistance(p, w.Start, w.End)
}

// WallMatch is the result of a nearest-wall search.
type WallMatch struct {
	Index    int
	Wall     Wall
	Distance float64
}

// NearestWall scans walls in order and returns the first one with the
// smallest distance to p. ok is false, with Index -1, when walls is empty or
// no distance compares (a NaN coordinate).
func NearestWall(p Point, walls []Wall) (match WallMatch, ok bool) {
	minDistance := math.Inf(1)
	for i, w := range walls {
		d := w.DistanceTo(p)
		if d < minDistance {
			minDistance = d
			match = WallMatch{Index: i, Wall: w, Distance: d}
			ok = true
		}
	}
	if !ok {
		return WallMatch{Index: -1}, false
	}
	return match, true
}
