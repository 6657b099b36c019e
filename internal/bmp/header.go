package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrFormat reports a header this package cannot have written.
var ErrFormat = errors.New("bmp: unsupported format")

// Header holds the fields of the file and info headers.
type Header struct {
	FileSize    uint32
	Reserved    uint32
	DataOffset  uint32
	InfoSize    uint32
	Width       int32
	Height      int32
	Planes      uint16
	BitCount    uint16
	Compression uint32
	ImageSize   uint32
}

type reader struct {
	data []byte
	off  int
}

func (r *reader) readU16() uint16 {
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v
}

func (r *reader) readU32() uint32 {
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v
}

// ReadHeader reads and checks the 54 header bytes at the start of rd.
func ReadHeader(rd io.Reader) (Header, error) {
	buf := make([]byte, DataOffset)
	if _, err := io.ReadFull(rd, buf); err != nil {
		return Header{}, fmt.Errorf("bmp: read header: %w", err)
	}
	if buf[0] != 'B' || buf[1] != 'M' {
		return Header{}, fmt.Errorf("%w: bad signature %q", ErrFormat, buf[:2])
	}

	r := &reader{data: buf, off: 2}
	var h Header
	h.FileSize = r.readU32()
	h.Reserved = r.readU32()
	h.DataOffset = r.readU32()
	h.InfoSize = r.readU32()
	h.Width = int32(r.readU32())
	h.Height = int32(r.readU32())
	h.Planes = r.readU16()
	h.BitCount = r.readU16()
	h.Compression = r.readU32()
	h.ImageSize = r.readU32()

	if h.InfoSize != infoHeaderSize || h.BitCount != bitsPerPixel || h.Compression != 0 {
		return h, fmt.Errorf("%w: info=%d bpp=%d compression=%d", ErrFormat, h.InfoSize, h.BitCount, h.Compression)
	}
	return h, nil
}
