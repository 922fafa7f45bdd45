package plan

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestPointToSegmentDistance(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		a, b Point
		want float64
	}{
		{
			name: "projection inside segment is perpendicular distance",
			p:    Point{X: 5, Y: 3},
			a:    Point{X: 0, Y: 0},
			b:    Point{X: 10, Y: 0},
			want: 3,
		},
		{
			name: "projection at start parameter zero",
			p:    Point{X: 0, Y: 4},
			a:    Point{X: 0, Y: 0},
			b:    Point{X: 10, Y: 0},
			want: 4,
		},
		{
			name: "projection before start uses start endpoint",
			p:    Point{X: -3, Y: 4},
			a:    Point{X: 0, Y: 0},
			b:    Point{X: 10, Y: 0},
			want: 5,
		},
		{
			name: "projection past end uses end endpoint",
			p:    Point{X: 13, Y: -4},
			a:    Point{X: 0, Y: 0},
			b:    Point{X: 10, Y: 0},
			want: 5,
		},
		{
			name: "diagonal segment",
			p:    Point{X: 0, Y: 10},
			a:    Point{X: 0, Y: 0},
			b:    Point{X: 10, Y: 10},
			want: math.Sqrt(50),
		},
		{
			name: "degenerate segment is a point",
			p:    Point{X: 4, Y: 5},
			a:    Point{X: 1, Y: 1},
			b:    Point{X: 1, Y: 1},
			want: 5,
		},
		{
			name: "point on segment",
			p:    Point{X: 2, Y: 2},
			a:    Point{X: 0, Y: 0},
			b:    Point{X: 4, Y: 4},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointToSegmentDistance(tt.p, tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("PointToSegmentDistance(%v, %v, %v) = %v, want %v", tt.p, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistanceMatchesInfiniteLineInsideSegment(t *testing.T) {
	a := Point{X: 1, Y: 2}
	b := Point{X: 9, Y: 8}
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)

	for _, p := range []Point{{X: 5, Y: 0}, {X: 3, Y: 9}, {X: 6, Y: 4}} {
		param := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / (length * length)
		if param < 0 || param > 1 {
			t.Fatalf("test point %v projects outside the segment (t=%v)", p, param)
		}
		lineDist := math.Abs(dy*p.X-dx*p.Y+b.X*a.Y-b.Y*a.X) / length
		if got := PointToSegmentDistance(p, a, b); !almostEqual(got, lineDist) {
			t.Errorf("point %v: segment distance %v, line distance %v", p, got, lineDist)
		}
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 10, Y: 0}

	tests := []struct {
		name string
		p    Point
		want Point
	}{
		{"inside", Point{X: 4, Y: 7}, Point{X: 4, Y: 0}},
		{"before start", Point{X: -2, Y: 1}, a},
		{"after end", Point{X: 12, Y: 1}, b},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestPointOnSegment(tt.p, a, b); got != tt.want {
				t.Errorf("ClosestPointOnSegment(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestNearestWall(t *testing.T) {
	walls := []Wall{
		{Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 0}},
		{Start: Point{X: 0, Y: 5}, End: Point{X: 10, Y: 5}},
	}

	t.Run("closer wall wins", func(t *testing.T) {
		match, ok := NearestWall(Point{X: 5, Y: 1}, walls)
		if !ok {
			t.Fatal("expected a wall")
		}
		if match.Index != 0 {
			t.Errorf("Index = %d, want 0", match.Index)
		}
		if !almostEqual(match.Distance, 1) {
			t.Errorf("Distance = %v, want 1", match.Distance)
		}
		if match.Wall != walls[0] {
			t.Errorf("Wall = %v, want %v", match.Wall, walls[0])
		}
	})

	t.Run("second wall when it is closer", func(t *testing.T) {
		match, ok := NearestWall(Point{X: 5, Y: 4}, walls)
		if !ok || match.Index != 1 {
			t.Errorf("got index %d ok=%v, want 1 true", match.Index, ok)
		}
	})

	t.Run("tie keeps first wall", func(t *testing.T) {
		match, ok := NearestWall(Point{X: 5, Y: 2.5}, walls)
		if !ok || match.Index != 0 {
			t.Errorf("got index %d ok=%v, want 0 true", match.Index, ok)
		}
	})

	t.Run("empty wall list", func(t *testing.T) {
		match, ok := NearestWall(Point{X: 1, Y: 1}, nil)
		if ok || match.Index != -1 {
			t.Errorf("got index %d ok=%v, want -1 false", match.Index, ok)
		}
	})

	t.Run("NaN query matches nothing", func(t *testing.T) {
		match, ok := NearestWall(Point{X: math.NaN(), Y: 1}, walls)
		if ok || match.Index != -1 {
			t.Errorf("got index %d ok=%v, want -1 false", match.Index, ok)
		}
	})

	t.Run("degenerate wall still matches", func(t *testing.T) {
		single := []Wall{{Start: Point{X: 3, Y: 3}, End: Point{X: 3, Y: 3}}}
		match, ok := NearestWall(Point{X: 0, Y: 7}, single)
		if !ok || !almostEqual(match.Distance, 5) {
			t.Errorf("got distance %v ok=%v, want 5 true", match.Distance, ok)
		}
	})
}
