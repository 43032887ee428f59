package fractal

import (
	"fmt"

	"github.com/gogpu/pixfx"
)

// Palette selects how channel values above 255 are turned into bytes.
type Palette uint8

const (
	// PaletteClamp saturates every channel at 255.
	PaletteClamp Palette = iota

	// PaletteWrap keeps the low byte of the truncated channel value, which
	// produces the banded look of the classic demo.
	PaletteWrap
)

// Channel formulas: base + slope*n.
const (
	blueBase, blueSlope   = 48, 11.6341
	greenBase, greenSlope = 134, 13.1257
	redBase, redSlope     = 243, 15.2312
)

// String returns the palette name.
func (p Palette) String() string {
	switch p {
	case PaletteClamp:
		return "clamp"
	case PaletteWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// ParsePalette returns the palette with the given name.
func ParsePalette(name string) (Palette, error) {
	for _, p := range []Palette{PaletteClamp, PaletteWrap} {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("fractal: unknown palette %q", name)
}

// Color maps an iteration count to an opaque BGRA color.
func (p Palette) Color(n int) pixfx.BGRA {
	fn := float64(max(n, 0))
	return pixfx.BGRA{
		B: p.channel(blueBase + blueSlope*fn),
		G: p.channel(greenBase + greenSlope*fn),
		R: p.channel(redBase + redSlope*fn),
		A: 255,
	}
}

// Table returns the colors for counts 0..n-1.
func (p Palette) Table(n int) []pixfx.BGRA {
	t := make([]pixfx.BGRA, max(n, 1))
	for i := range t {
		t[i] = p.Color(i)
	}
	return t
}

func (p Palette) channel(v float64) uint8 {
	if p == PaletteWrap {
		return uint8(int64(v)) // #nosec G115 -- wrap-around is the point
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
