package bitmap

import (
	"encoding/binary"
	"fmt"
)

const (
	fileHeaderSize = 14
	minInfoSize    = 40

	compressionRGB       = 0
	compressionBitfields = 3
)

// MaxPixels bounds width*height of a decoded image.
const MaxPixels = 1 << 26

// Header is the subset of BMP header fields the decoder uses.
type Header struct {
	Width        int
	Height       int
	TopDown      bool
	BitsPerPixel int
	Compression  uint32
	InfoSize     int
	Offset       int
}

// Stride returns the size in bytes of one stored row, including padding.
func (h Header) Stride() int {
	return (h.Width*h.BitsPerPixel/8 + 3) &^ 3
}

// ParseHeader validates the file and info headers at the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < fileHeaderSize+minInfoSize {
		return Header{}, fmt.Errorf("%w: %d byte header", ErrTruncated, len(data))
	}
	if data[0] != 'B' || data[1] != 'M' {
		return Header{}, fmt.Errorf("%w: signature %q", ErrMalformed, data[:2])
	}

	le := binary.LittleEndian
	h := Header{
		Offset:       int(le.Uint32(data[10:14])),
		InfoSize:     int(le.Uint32(data[14:18])),
		Width:        int(int32(le.Uint32(data[18:22]))),
		Height:       int(int32(le.Uint32(data[22:26]))),
		BitsPerPixel: int(le.Uint16(data[28:30])),
		Compression:  le.Uint32(data[30:34]),
	}
	if h.InfoSize < minInfoSize {
		return Header{}, fmt.Errorf("%w: info header size %d", ErrMalformed, h.InfoSize)
	}
	if planes := le.Uint16(data[26:28]); planes != 1 {
		return Header{}, fmt.Errorf("%w: %d planes", ErrMalformed, planes)
	}
	if h.Height < 0 {
		h.Height, h.TopDown = -h.Height, true
	}
	if h.Width <= 0 || h.Height == 0 {
		return Header{}, fmt.Errorf("%w: size %dx%d", ErrMalformed, h.Width, h.Height)
	}
	if h.BitsPerPixel != 24 && h.BitsPerPixel != 32 {
		return Header{}, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedDepth, h.BitsPerPixel)
	}
	switch {
	case h.Compression == compressionRGB:
	case h.Compression == compressionBitfields && h.BitsPerPixel == 32:
	default:
		return Header{}, fmt.Errorf("%w: method %d at %d bits", ErrUnsupportedCompression, h.Compression, h.BitsPerPixel)
	}
	if h.Width > MaxPixels/h.Height {
		return Header{}, fmt.Errorf("%w: %dx%d", ErrTooLarge, h.Width, h.Height)
	}
	if h.Offset < fileHeaderSize+h.InfoSize {
		return Header{}, fmt.Errorf("%w: pixel offset %d inside header", ErrMalformed, h.Offset)
	}
	if need := h.Offset + h.Height*h.Stride(); len(data) < need {
		return Header{}, fmt.Errorf("%w: have %d bytes, need %d", ErrTruncated, len(data), need)
	}
	return h, nil
}
