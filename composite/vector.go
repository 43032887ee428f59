package composite

import (
	"github.com/gogpu/pixfx"
	"github.com/gogpu/pixfx/internal/wide"
)

// DrawVector composites sprite at placement over bg into dst, four pixels
// per step. Output is byte-identical to DrawScalar.
//
// Tiles outside the sprite's rows or columns are a straight copy of the
// background with alpha forced to 255. A tile that straddles the sprite's
// left or right edge loads only the sprite pixels inside the overlap; the
// other lanes stay zero, so their alpha is zero and they blend to pure
// background. Sprite reads are indexed from the clamped overlap, never from
// the tile start, so a tile left of the sprite cannot read before its row.
func DrawVector(dst *pixfx.PixelBuffer, bg, sprite *Image, at Placement) {
	ov := ComputeOverlap(dst, bg, sprite, at)
	w := ov.Clip.Max.X
	span := w * pixfx.BytesPerPixel
	sx0, sx1 := ov.Sprite.Min.X, ov.Sprite.Max.X

	for y := 0; y < ov.Clip.Max.Y; y++ {
		drow := dst.Row(y)[:span]
		brow := bg.Row(y)[:span]

		var srow []byte
		if y >= ov.Sprite.Min.Y && y < ov.Sprite.Max.Y {
			srow = sprite.Row(y - at.Y)
		}

		for x := 0; x < w; x += 4 {
			o := x * pixfx.BytesPerPixel
			// Short at the end of a row whose width is not a multiple of 4:
			// the load zero-pads and the store writes only the valid lanes.
			back := wide.LoadU8x16(brow[o:])

			if srow == nil || x+4 <= sx0 || x >= sx1 {
				back.SetAlpha(255).Store(drow[o:])
				continue
			}

			var front wide.U8x16
			if x >= sx0 && x+4 <= sx1 {
				front = wide.LoadU8x16(srow[(x-at.X)*pixfx.BytesPerPixel:])
			} else {
				lo, hi := max(x, sx0), min(x+4, sx1)
				copy(front[(lo-x)*pixfx.BytesPerPixel:(hi-x)*pixfx.BytesPerPixel],
					srow[(lo-at.X)*pixfx.BytesPerPixel:(hi-at.X)*pixfx.BytesPerPixel])
			}
			blendTile(back, front).Store(drow[o:])
		}
	}
}

// blendTile computes back*(255-a)/255 + front*a/255 for 16 channel lanes,
// a being each pixel's front alpha, and forces output alpha to 255.
func blendTile(back, front wide.U8x16) wide.U8x16 {
	b := back.Widen()
	f := front.Widen()
	a := f.SpreadAlpha()
	return b.MulDiv255(a.Inv()).Add(f.MulDiv255(a)).Narrow().SetAlpha(255)
}
