package composite

import (
	"errors"
	"fmt"

	"github.com/gogpu/pixfx"
)

// Image errors.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("composite: invalid dimensions")

	// ErrDataTooSmall is returned when data is shorter than width*height*4.
	ErrDataTooSmall = errors.New("composite: data buffer too small")
)

// Image is a decoded BGRA8 image, rows top to bottom with no padding.
// Images are immutable once built and may be shared between frames.
type Image struct {
	Width  int
	Height int
	Data   []byte
}

// NewImage allocates a zeroed image. Negative dimensions are treated as 0.
func NewImage(width, height int) *Image {
	width, height = max(width, 0), max(height, 0)
	return &Image{
		Width:  width,
		Height: height,
		Data:   make([]byte, width*height*pixfx.BytesPerPixel),
	}
}

// ImageFromBytes wraps data without copying.
func ImageFromBytes(width, height int, data []byte) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	need := width * height * pixfx.BytesPerPixel
	if len(data) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(data), need)
	}
	return &Image{Width: width, Height: height, Data: data[:need]}, nil
}

// Stride returns the number of bytes per row.
func (im *Image) Stride() int {
	return im.Width * pixfx.BytesPerPixel
}

// Row returns the bytes of row y.
func (im *Image) Row(y int) []byte {
	s := im.Stride()
	return im.Data[y*s : (y+1)*s : (y+1)*s]
}

// Pixel returns the pixel at (x, y), or the zero color outside the image.
func (im *Image) Pixel(x, y int) pixfx.BGRA {
	if x < 0 || x >= im.Width || y < 0 || y >= im.Height {
		return pixfx.BGRA{}
	}
	return pixfx.LoadBGRA(im.Data[(y*im.Width+x)*pixfx.BytesPerPixel:])
}

// SetPixel sets the pixel at (x, y). Out-of-bounds writes are ignored.
func (im *Image) SetPixel(x, y int, c pixfx.BGRA) {
	if x < 0 || x >= im.Width || y < 0 || y >= im.Height {
		return
	}
	c.Put(im.Data[(y*im.Width+x)*pixfx.BytesPerPixel:])
}

// Fill sets every pixel to c.
func (im *Image) Fill(c pixfx.BGRA) {
	for i := 0; i+pixfx.BytesPerPixel <= len(im.Data); i += pixfx.BytesPerPixel {
		c.Put(im.Data[i:])
	}
}

// usable reports whether the image can be read without bounds failures.
// Hand-built images with short data are treated as empty.
func (im *Image) usable() bool {
	return im != nil && im.Width > 0 && im.Height > 0 &&
		len(im.Data) >= im.Width*im.Height*pixfx.BytesPerPixel
}
