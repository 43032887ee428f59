package pixfx

import "image/color"

// BytesPerPixel is the size of one BGRA8 pixel.
const BytesPerPixel = 4

// BGRA is an 8-bit color in framebuffer byte order.
// Alpha is straight (not premultiplied).
type BGRA struct {
	B, G, R, A uint8
}

// Common colors.
var (
	Black = BGRA{A: 255}
	White = BGRA{B: 255, G: 255, R: 255, A: 255}
)

// Opaque returns c with alpha forced to 255.
func (c BGRA) Opaque() BGRA {
	c.A = 255
	return c
}

// NRGBA converts c to the standard library color type.
func (c BGRA) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color.
func (c BGRA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Put stores c at the start of p, which must hold at least 4 bytes.
func (c BGRA) Put(p []byte) {
	_ = p[3]
	p[0], p[1], p[2], p[3] = c.B, c.G, c.R, c.A
}

// LoadBGRA reads a pixel from the first 4 bytes of p.
func LoadBGRA(p []byte) BGRA {
	_ = p[3]
	return BGRA{B: p[0], G: p[1], R: p[2], A: p[3]}
}
