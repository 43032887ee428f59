package bitmap

import (
	"image"
	"io"

	"golang.org/x/image/bmp"

	"github.com/gogpu/pixfx"
	"github.com/gogpu/pixfx/composite"
)

// Encode writes im as a bottom-up BMP. Fully opaque images are written at
// 24 bits per pixel, anything else at 32 with alpha in the 4th byte.
func Encode(w io.Writer, im *composite.Image) error {
	return bmp.Encode(w, ToNRGBA(im))
}

// ToNRGBA converts im to a standard library image.
func ToNRGBA(im *composite.Image) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, im.Width, im.Height))
	for i := 0; i+pixfx.BytesPerPixel <= len(out.Pix); i += pixfx.BytesPerPixel {
		c := pixfx.LoadBGRA(im.Data[i:])
		out.Pix[i+0] = c.R
		out.Pix[i+1] = c.G
		out.Pix[i+2] = c.B
		out.Pix[i+3] = c.A
	}
	return out
}
