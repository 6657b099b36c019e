package mathutil

import "math"

// Vertex is a point in canvas space (value type, copied freely).
// Z is carried along but ignored by the 2D rasterizer.
type Vertex struct {
	X, Y, Z float64
}

// NewVertex returns a vertex at (x, y, z).
func NewVertex(x, y, z float64) Vertex {
	return Vertex{X: x, Y: y, Z: z}
}

// BoundsY returns the smallest and largest Y over vs.
// An empty slice yields (+Inf, -Inf).
func BoundsY(vs []Vertex) (minY, maxY float64) {
	minY, maxY = math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return minY, maxY
}
