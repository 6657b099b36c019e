package scene

import (
	"fmt"

	"polygon-renderer/internal/raster"
)

// Scene is a canvas and the shapes painted onto it, back to front.
type Scene struct {
	Name       string
	Width      int
	Height     int
	Background raster.Color
	Output     string // optional output path, relative to the scene file
	Shapes     []raster.Shape
}

// DefaultSize sets any unset canvas dimension.
func (s *Scene) DefaultSize(w, h int) {
	if s.Width == 0 {
		s.Width = w
	}
	if s.Height == 0 {
		s.Height = h
	}
}

// Render draws the scene into a new framebuffer. Shapes that fail
// validation are skipped and reported in the returned error; the
// framebuffer is always complete.
func (s *Scene) Render() (*raster.FrameBuffer, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("scene %s: invalid canvas size %dx%d", s.Name, s.Width, s.Height)
	}
	fb := raster.NewFrameBuffer(s.Width, s.Height)
	fb.SetBackgroundColor(s.Background)
	err := raster.Render(fb, s.Shapes)
	return fb, err
}
