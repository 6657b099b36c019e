package raster

import "fmt"

// Color is a packed 24-bit RGB value, red in the high byte and blue in the low byte.
type Color uint32

// Common colors.
const (
	Black  Color = 0x000000
	White  Color = 0xFFFFFF
	Red    Color = 0xFF0000
	Green  Color = 0x00FF00
	Blue   Color = 0x0000FF
	Yellow Color = 0xFFFF00
)

// Pack combines three channel values into a Color.
// Each channel is truncated to its low 8 bits.
func Pack(r, g, b int) Color {
	return Color(uint32(r&0xFF)<<16 | uint32(g&0xFF)<<8 | uint32(b&0xFF))
}

// Unpack splits c into its red, green and blue channels.
func (c Color) Unpack() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGB returns a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Pack(int(r), int(g), int(b))
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}
