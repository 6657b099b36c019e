package raster

import "fmt"

// FrameBuffer holds the pixel grid in row-major order together with the paint
// state used by the drawing operations. Row 0 is the top of the canvas.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []Color // len = W*H

	current    Color
	background Color
}

// NewFrameBuffer allocates a black w×h buffer.
// It panics if either dimension is not positive.
func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("raster: invalid framebuffer size %dx%d", w, h))
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]Color, w*h),
	}
}

// SetBackgroundColor sets the color used by Clear.
func (fb *FrameBuffer) SetBackgroundColor(c Color) {
	fb.background = c & 0xFFFFFF
}

// SetCurrentColor sets the paint used by subsequent drawing calls.
func (fb *FrameBuffer) SetCurrentColor(c Color) {
	fb.current = c & 0xFFFFFF
}

// BackgroundColor returns the color used by Clear.
func (fb *FrameBuffer) BackgroundColor() Color { return fb.background }

// CurrentColor returns the active paint.
func (fb *FrameBuffer) CurrentColor() Color { return fb.current }

// Clear fills every pixel with the background color.
func (fb *FrameBuffer) Clear() {
	for i := range fb.Pix {
		fb.Pix[i] = fb.background
	}
}

// Point paints (x, y) with the current color. Coordinates outside the
// canvas are ignored.
func (fb *FrameBuffer) Point(x, y int) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pix[y*fb.Width+x] = fb.current
}

// At returns the pixel at (x, y), or Black outside the canvas.
func (fb *FrameBuffer) At(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Black
	}
	return fb.Pix[y*fb.Width+x]
}

// Row returns the pixels of scanline y. The slice aliases the buffer.
func (fb *FrameBuffer) Row(y int) []Color {
	off := y * fb.Width
	return fb.Pix[off : off+fb.Width]
}
