package raster

import (
	"errors"
	"fmt"
	"image"

	"polygon-renderer/internal/mathutil"
)

// Shape is one polygon of a scene. A nil Fill or Outline skips that pass.
type Shape struct {
	Name     string
	Vertices []mathutil.Vertex
	Fill     *Color
	Outline  *Color
}

// Render clears fb and draws shapes in order, fill before outline, so later
// shapes paint over earlier ones. A shape filled with the background color
// punches a hole.
//
// Invalid shapes are skipped; their errors are joined and returned after
// every other shape has been drawn.
func Render(fb *FrameBuffer, shapes []Shape) error {
	fb.Clear()

	var errs []error
	for i, s := range shapes {
		if err := checkRing(s.Vertices); err != nil {
			errs = append(errs, fmt.Errorf("shape %d %q: %w", i, s.Name, err))
			continue
		}
		if s.Fill != nil {
			fb.SetCurrentColor(*s.Fill)
			fb.Fill(s.Vertices)
		}
		if s.Outline != nil {
			fb.SetCurrentColor(*s.Outline)
			fb.Outline(s.Vertices)
		}
	}
	return errors.Join(errs...)
}

// ToNRGBA converts the framebuffer to an opaque NRGBA image.
func ToNRGBA(fb *FrameBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		off := y * img.Stride
		for x, c := range fb.Row(y) {
			r, g, b := c.Unpack()
			i := off + x*4
			img.Pix[i] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
		}
	}
	return img
}

// FromNRGBA builds a framebuffer from img, dropping alpha.
func FromNRGBA(img *image.NRGBA) *FrameBuffer {
	b := img.Bounds()
	fb := NewFrameBuffer(b.Dx(), b.Dy())
	for y := 0; y < fb.Height; y++ {
		row := fb.Row(y)
		for x := range row {
			c := img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			row[x] = RGB(c.R, c.G, c.B)
		}
	}
	return fb
}
