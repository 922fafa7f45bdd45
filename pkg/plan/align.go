package plan

// Alignment is the placement transform of a fixture: where it is drawn and
// how far it is rotated, in degrees, to follow its wall.
type Alignment struct {
	X        float64
	Y        float64
	Rotation float64
}

// Position returns the anchor point of the alignment.
func (a Alignment) Position() Point {
	return Point{X: a.X, Y: a.Y}
}

// AlignToWall orients a fixture at p along wall w. The position is passed
// through unchanged; only the rotation follows the wall.
func AlignToWall(p Point, w Wall) Alignment {
	return Alignment{
		X:        p.X,
		Y:        p.Y,
		Rotation: w.Angle(),
	}
}

// AlignFixture finds the nearest wall to p and aligns to it.
// ok is false when there are no walls.
func AlignFixture(p Point, walls []Wall) (Alignment, WallMatch, bool) {
	match, ok := NearestWall(p, walls)
	if !ok {
		return Alignment{X: p.X, Y: p.Y}, match, false
	}
	return AlignToWall(p, match.Wall), match, true
}

// SnapToWall returns the point on w closest to p.
func SnapToWall(p Point, w Wall) Point {
	return ClosestPointOnSegment(p, w.Start, w.End)
}
