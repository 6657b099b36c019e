package raster

import (
	"math"

	"polygon-renderer/internal/mathutil"
)

// Line plots the segment from start to end with the current color.
//
// Endpoints are rounded to the nearest pixel. The major axis advances one
// pixel per step; the minor axis moves once the accumulated error passes
// half a pixel, so exactly max(|dx|,|dy|)+1 pixels are plotted.
func (fb *FrameBuffer) Line(start, end mathutil.Vertex) {
	x0, y0 := int(math.Round(start.X)), int(math.Round(start.Y))
	x1, y1 := int(math.Round(end.X)), int(math.Round(end.Y))

	dx, dy := x1-x0, y1-y0
	if dx == 0 && dy == 0 {
		fb.Point(x0, y0)
		return
	}

	sx, sy := sign(dx), sign(dy)
	adx, ady := abs(dx), abs(dy)

	// err is the minor-axis offset from the true line, scaled by 2*major.
	err := 0
	if adx >= ady {
		y := y0
		for i := 0; i <= adx; i++ {
			fb.Point(x0+i*sx, y)
			err += 2 * ady
			if err > adx {
				y += sy
				err -= 2 * adx
			}
		}
		return
	}

	x := x0
	for i := 0; i <= ady; i++ {
		fb.Point(x, y0+i*sy)
		err += 2 * adx
		if err > ady {
			x += sx
			err -= 2 * ady
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
