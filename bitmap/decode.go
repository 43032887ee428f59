package bitmap

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"

	"golang.org/x/image/bmp"

	"github.com/gogpu/pixfx"
	"github.com/gogpu/pixfx/composite"
)

// Decode reads a whole BMP file from r.
func Decode(r io.Reader) (*composite.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes a BMP file held in memory.
func DecodeBytes(data []byte) (*composite.Image, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}
	if h.BitsPerPixel == 32 {
		return decode32(data, h), nil
	}
	return decode24(data, h)
}

func decode24(data []byte, h Header) (*composite.Image, error) {
	m, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	rgba, ok := m.(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("%w: decoded as %T", ErrMalformed, m)
	}

	out := composite.NewImage(h.Width, h.Height)
	for y := 0; y < h.Height; y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+h.Width*4]
		dst := out.Row(y)
		for i := 0; i < len(dst); i += pixfx.BytesPerPixel {
			dst[i+0] = src[i+2]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+0]
			dst[i+3] = 0xFF
		}
	}
	return out, nil
}

// decode32 copies stored rows as-is, flipping bottom-up files. ParseHeader
// has already checked that every row is present.
func decode32(data []byte, h Header) *composite.Image {
	out := composite.NewImage(h.Width, h.Height)
	stride := h.Stride()
	for y := 0; y < h.Height; y++ {
		row := y
		if !h.TopDown {
			row = h.Height - 1 - y
		}
		start := h.Offset + row*stride
		copy(out.Row(y), data[start:start+stride])
	}
	return out
}
