package composite

import (
	"image"

	"github.com/gogpu/pixfx"
)

// Blend returns front over back with straight alpha taken from front.A.
// The result is opaque.
func Blend(front, back pixfx.BGRA) pixfx.BGRA {
	a := uint16(front.A)
	inv := 255 - a
	return pixfx.BGRA{
		B: uint8(uint16(back.B)*inv/255 + uint16(front.B)*a/255),
		G: uint8(uint16(back.G)*inv/255 + uint16(front.G)*a/255),
		R: uint8(uint16(back.R)*inv/255 + uint16(front.R)*a/255),
		A: 255,
	}
}

// DrawScalar composites sprite at placement over bg into dst, one pixel at a
// time. It is the reference for DrawVector.
func DrawScalar(dst *pixfx.PixelBuffer, bg, sprite *Image, at Placement) {
	ov := ComputeOverlap(dst, bg, sprite, at)
	for y := 0; y < ov.Clip.Max.Y; y++ {
		drow := dst.Row(y)
		brow := bg.Row(y)
		for x := 0; x < ov.Clip.Max.X; x++ {
			o := x * pixfx.BytesPerPixel
			c := pixfx.LoadBGRA(brow[o:]).Opaque()
			if image.Pt(x, y).In(ov.Sprite) {
				c = Blend(sprite.Pixel(x-at.X, y-at.Y), c)
			}
			c.Put(drow[o:])
		}
	}
}
