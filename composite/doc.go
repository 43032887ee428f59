// Package composite blends a sprite over a background image into a BGRA8
// framebuffer.
//
// Two compositors produce byte-identical output:
//
//   - DrawScalar visits one pixel at a time.
//   - DrawVector visits four horizontally adjacent pixels (16 bytes) per
//     step, widening channels to 16 bits for the multiply.
//
// Both clip to the smaller of the framebuffer and the background. Pixels
// outside that clip are never written, so a caller that needs a clean frame
// there must clear it first (Scene does).
//
// The per-pixel formula is the straight-alpha over operator with truncating
// integer division:
//
//	out = bg*(255-a)/255 + fg*a/255
//
// where a is the sprite pixel's 4th byte. Output alpha is always 255.
package composite
