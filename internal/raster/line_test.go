package raster

import (
	"math"
	"testing"

	"polygon-renderer/internal/mathutil"
)

// segmentDistance returns the XY distance from p to the segment a-b.
func segmentDistance(p, a, b mathutil.Vertex) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	l2 := abx*abx + aby*aby
	if l2 < 1e-12 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / l2
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*abx), p.Y-(a.Y+t*aby))
}

func TestSegmentDistance(t *testing.T) {
	a, b := mathutil.NewVertex(0, 0, 0), mathutil.NewVertex(10, 0, 0)
	tests := []struct {
		p    mathutil.Vertex
		want float64
	}{
		{mathutil.NewVertex(5, 3, 0), 3},
		{mathutil.NewVertex(-3, 4, 0), 5},
		{mathutil.NewVertex(13, -4, 0), 5},
		{mathutil.NewVertex(7, 0, 100), 0},
	}
	for _, tc := range tests {
		if got := segmentDistance(tc.p, a, b); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("segmentDistance(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
	if got := segmentDistance(mathutil.NewVertex(3, 4, 0), a, a); math.Abs(got-5) > 1e-9 {
		t.Errorf("degenerate segmentDistance = %v, want 5", got)
	}
}

func painted(fb *FrameBuffer) [][2]int {
	var pts [][2]int
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.At(x, y) != Black {
				pts = append(pts, [2]int{x, y})
			}
		}
	}
	return pts
}

func TestLineProperties(t *testing.T) {
	coords := []int{0, 1, 3, 7, 12}
	fb := NewFrameBuffer(16, 16)
	fb.SetCurrentColor(White)

	for _, x0 := range coords {
		for _, y0 := range coords {
			for _, x1 := range coords {
				for _, y1 := range coords {
					fb.Clear()
					a := mathutil.NewVertex(float64(x0), float64(y0), 0)
					b := mathutil.NewVertex(float64(x1), float64(y1), 0)
					fb.Line(a, b)

					pts := painted(fb)
					want := max(abs(x1-x0), abs(y1-y0)) + 1
					if len(pts) != want {
						t.Errorf("Line(%v, %v): %d pixels, want %d", a, b, len(pts), want)
					}
					for _, p := range pts {
						v := mathutil.NewVertex(float64(p[0]), float64(p[1]), 0)
						if d := segmentDistance(v, a, b); d > 0.5+1e-9 {
							t.Errorf("Line(%v, %v): pixel %v is %.3f from the segment", a, b, p, d)
						}
					}
					if fb.At(x0, y0) != White || fb.At(x1, y1) != White {
						t.Errorf("Line(%v, %v): endpoints not painted", a, b)
					}
				}
			}
		}
	}
}

func TestLineRoundsEndpoints(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	fb.SetCurrentColor(White)
	fb.Line(mathutil.NewVertex(1.4, 2.6, 0), mathutil.NewVertex(5.5, 2.7, 0))
	for x := 1; x <= 6; x++ {
		if fb.At(x, 3) != White {
			t.Errorf("pixel (%d,3) not painted", x)
		}
	}
	if n := len(painted(fb)); n != 6 {
		t.Errorf("painted %d pixels, want 6", n)
	}
}

func TestLineDegenerate(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.SetCurrentColor(White)
	fb.Line(mathutil.NewVertex(2, 1, 0), mathutil.NewVertex(2.2, 0.9, 5))
	pts := painted(fb)
	if len(pts) != 1 || pts[0] != [2]int{2, 1} {
		t.Errorf("painted %v, want [[2 1]]", pts)
	}
}

func TestLineOffCanvas(t *testing.T) {
	fb := NewFrameBuffer(5, 5)
	fb.SetCurrentColor(White)
	fb.Line(mathutil.NewVertex(-10, 2, 0), mathutil.NewVertex(20, 2, 0))
	pts := painted(fb)
	if len(pts) != 5 {
		t.Errorf("painted %d pixels, want 5", len(pts))
	}
	for _, p := range pts {
		if p[1] != 2 {
			t.Errorf("unexpected pixel %v", p)
		}
	}
}
