package scene

import (
	"polygon-renderer/internal/mathutil"
	"polygon-renderer/internal/raster"
)

// DefaultOutput is where the built-in scene is written.
const DefaultOutput = "out.bmp"

// Default returns the built-in 800x600 scene: four filled polygons with
// white outlines and a fifth polygon filled with the background color that
// cuts a hole in the fourth.
func Default() *Scene {
	white := raster.White
	shape := func(name string, fill raster.Color, pts ...float64) raster.Shape {
		vs := make([]mathutil.Vertex, 0, len(pts)/2)
		for i := 0; i+1 < len(pts); i += 2 {
			vs = append(vs, mathutil.NewVertex(pts[i], pts[i+1], 0))
		}
		return raster.Shape{Name: name, Vertices: vs, Fill: &fill, Outline: &white}
	}

	return &Scene{
		Name:       "default",
		Width:      800,
		Height:     600,
		Background: raster.Black,
		Output:     DefaultOutput,
		Shapes: []raster.Shape{
			shape("star", raster.Yellow,
				165, 380, 185, 360, 180, 330, 207, 345, 233, 330,
				230, 360, 250, 380, 220, 385, 205, 410, 193, 383),
			shape("square", raster.Blue,
				321, 335, 288, 286, 339, 251, 374, 302),
			shape("triangle", raster.Red,
				377, 249, 411, 197, 436, 249),
			shape("teapot", raster.Green,
				413, 177, 448, 159, 502, 88, 553, 53, 535, 36,
				676, 37, 660, 52, 750, 145, 761, 179, 672, 192,
				659, 214, 615, 214, 632, 230, 580, 230, 597, 215,
				552, 214, 517, 144, 466, 180),
			shape("hole", raster.Black,
				682, 175, 708, 120, 735, 148, 739, 170),
		},
	}
}
