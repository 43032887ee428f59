package pixfx

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// PixelBuffer is a row-major BGRA8 framebuffer of fixed dimensions.
//
// A PixelBuffer is owned by a single frame driver; kernels write into it and
// a sink reads it once the frame is complete. It is not safe for concurrent
// mutation.
type PixelBuffer struct {
	width  int
	height int
	data   []uint8 // BGRA, 4 bytes per pixel
}

// NewPixelBuffer creates a zeroed buffer. Negative dimensions are treated as 0.
func NewPixelBuffer(width, height int) *PixelBuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &PixelBuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*BytesPerPixel),
	}
}

// Width returns the width of the buffer in pixels.
func (p *PixelBuffer) Width() int {
	return p.width
}

// Height returns the height of the buffer in pixels.
func (p *PixelBuffer) Height() int {
	return p.height
}

// Stride returns the number of bytes per row.
func (p *PixelBuffer) Stride() int {
	return p.width * BytesPerPixel
}

// Data returns the raw pixel data (BGRA format).
func (p *PixelBuffer) Data() []uint8 {
	return p.data
}

// Row returns the bytes of row y. It panics if y is out of range.
func (p *PixelBuffer) Row(y int) []uint8 {
	s := p.Stride()
	return p.data[y*s : (y+1)*s : (y+1)*s]
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *PixelBuffer) SetPixel(x, y int, c BGRA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	c.Put(p.data[(y*p.width+x)*BytesPerPixel:])
}

// GetPixel returns the color of a single pixel, or the zero color when
// (x, y) is outside the buffer.
func (p *PixelBuffer) GetPixel(x, y int) BGRA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return BGRA{}
	}
	return LoadBGRA(p.data[(y*p.width+x)*BytesPerPixel:])
}

// Clear fills the entire buffer with a color.
func (p *PixelBuffer) Clear(c BGRA) {
	for i := 0; i < len(p.data); i += BytesPerPixel {
		c.Put(p.data[i:])
	}
}

// ToImage converts the buffer to an image.NRGBA, swapping to RGBA byte order.
func (p *PixelBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for i := 0; i < len(p.data); i += BytesPerPixel {
		img.Pix[i+0] = p.data[i+2]
		img.Pix[i+1] = p.data[i+1]
		img.Pix[i+2] = p.data[i+0]
		img.Pix[i+3] = p.data[i+3]
	}
	return img
}

// SavePNG saves the buffer to a PNG file.
func (p *PixelBuffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *PixelBuffer) At(x, y int) color.Color {
	return p.GetPixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (p *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *PixelBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}
