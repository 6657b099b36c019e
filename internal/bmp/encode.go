// Package bmp writes framebuffers as uncompressed 24-bit Windows bitmaps.
//
// Layout: 14-byte file header, 40-byte BITMAPINFOHEADER, then rows from the
// bottom of the image to the top, each pixel stored as blue, green, red and
// each row zero-padded to a multiple of 4 bytes.
package bmp

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"polygon-renderer/internal/raster"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40

	// DataOffset is the position of the first pixel byte.
	DataOffset = fileHeaderSize + infoHeaderSize

	bitsPerPixel = 24
)

// RowSize returns the padded length in bytes of one row of a w pixel image.
func RowSize(w int) int {
	return (w*3 + 3) &^ 3
}

// FileSize returns the total file length for a w×h image.
func FileSize(w, h int) int {
	return DataOffset + RowSize(w)*h
}

// Encode writes fb to w.
func Encode(w io.Writer, fb *raster.FrameBuffer) error {
	rowSize := RowSize(fb.Width)
	imageSize := rowSize * fb.Height

	hdr := make([]byte, DataOffset)
	hdr[0], hdr[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(hdr[2:6], uint32(DataOffset+imageSize))
	// hdr[6:10] reserved
	binary.LittleEndian.PutUint32(hdr[10:14], DataOffset)

	info := hdr[fileHeaderSize:]
	binary.LittleEndian.PutUint32(info[0:4], infoHeaderSize)
	binary.LittleEndian.PutUint32(info[4:8], uint32(int32(fb.Width)))
	binary.LittleEndian.PutUint32(info[8:12], uint32(int32(fb.Height)))
	binary.LittleEndian.PutUint16(info[12:14], 1)
	binary.LittleEndian.PutUint16(info[14:16], bitsPerPixel)
	// info[16:20] compression = BI_RGB
	binary.LittleEndian.PutUint32(info[20:24], uint32(imageSize))
	// resolution and palette fields stay zero

	if _, err := w.Write(hdr); err != nil {
		return fmt.Errorf("bmp: write header: %w", err)
	}

	row := make([]byte, rowSize)
	for y := fb.Height - 1; y >= 0; y-- {
		for x, c := range fb.Row(y) {
			r, g, b := c.Unpack()
			row[x*3] = b
			row[x*3+1] = g
			row[x*3+2] = r
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("bmp: write row %d: %w", y, err)
		}
	}
	return nil
}

// WriteFile encodes fb to the file at path, replacing any existing file.
func WriteFile(path string, fb *raster.FrameBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bmp: create %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	if err := Encode(bw, fb); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("bmp: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("bmp: close %s: %w", path, err)
	}
	return nil
}
