package raster

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"polygon-renderer/internal/mathutil"
)

// ErrInvalidPolygon is returned when a ring has fewer than three vertices.
var ErrInvalidPolygon = errors.New("raster: polygon needs at least 3 vertices")

func checkRing(vs []mathutil.Vertex) error {
	if len(vs) < 3 {
		return fmt.Errorf("%w: got %d", ErrInvalidPolygon, len(vs))
	}
	return nil
}

// Outline draws the closed ring vs with the current color. Each edge,
// including the closing one, is drawn once.
func (fb *FrameBuffer) Outline(vs []mathutil.Vertex) error {
	if err := checkRing(vs); err != nil {
		return err
	}
	for i, v := range vs {
		fb.Line(v, vs[(i+1)%len(vs)])
	}
	return nil
}

// Fill paints the interior of vs with the current color using the even-odd
// rule.
//
// An edge crosses scanline y when exactly one endpoint has Y <= y. Spans
// cover [ceil(left), floor(right)]; with an odd number of crossings the
// last one is left unpaired.
func (fb *FrameBuffer) Fill(vs []mathutil.Vertex) error {
	if err := checkRing(vs); err != nil {
		return err
	}

	lo, hi := mathutil.BoundsY(vs)
	minY := int(clampF(math.Ceil(lo), 0, float64(fb.Height)))
	maxY := int(clampF(math.Floor(hi), -1, float64(fb.Height-1)))

	xs := make([]float64, 0, len(vs))
	for y := minY; y <= maxY; y++ {
		fy := float64(y)
		xs = xs[:0]
		for i, a := range vs {
			b := vs[(i+1)%len(vs)]
			if (a.Y <= fy) == (b.Y <= fy) {
				continue
			}
			t := (fy - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
		slices.Sort(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			x0 := int(clampF(math.Ceil(xs[i]), -1, float64(fb.Width)))
			x1 := int(clampF(math.Floor(xs[i+1]), -1, float64(fb.Width)))
			for x := x0; x <= x1; x++ {
				fb.Point(x, y)
			}
		}
	}
	return nil
}

// clampF limits v to [lo, hi] so the int conversion cannot overflow.
func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
