package composite

import (
	"image"

	"github.com/gogpu/pixfx"
)

// Frame dimensions of the blending session.
const (
	FrameWidth  = 800
	FrameHeight = 600
)

// Sprite movement per frame, in pixels.
const (
	PanStep       = 8
	FastPanFactor = 2.5
)

// Placement is the framebuffer position of the sprite's top-left corner.
// It may be negative or put the sprite partly or fully outside the buffer.
type Placement struct {
	X, Y int
}

// Centered places sprite in the middle of bg.
func Centered(bg, sprite *Image) Placement {
	return Placement{
		X: (bg.Width - sprite.Width) / 2,
		Y: (bg.Height - sprite.Height) / 2,
	}
}

// Apply moves the placement for one frame of input. Buffers are top-down,
// so SignalUp decreases Y.
func (p *Placement) Apply(s pixfx.Signals) {
	step := PanStep
	if s.Has(pixfx.SignalModifier) {
		step = int(PanStep * FastPanFactor)
	}
	if s.Has(pixfx.SignalRight) {
		p.X += step
	}
	if s.Has(pixfx.SignalLeft) {
		p.X -= step
	}
	if s.Has(pixfx.SignalDown) {
		p.Y += step
	}
	if s.Has(pixfx.SignalUp) {
		p.Y -= step
	}
}

// Overlap is the per-frame geometry shared by both compositors.
type Overlap struct {
	// Clip is the region written: (0,0) to the smaller of the framebuffer
	// and background sizes.
	Clip image.Rectangle

	// Sprite is the part of Clip covered by the sprite, in framebuffer
	// coordinates. It is empty when the sprite is fully outside.
	Sprite image.Rectangle

	// At is the placement the overlap was computed for.
	At Placement
}

// ComputeOverlap clamps the sprite rectangle against the clip once per frame.
func ComputeOverlap(dst *pixfx.PixelBuffer, bg, sprite *Image, at Placement) Overlap {
	ov := Overlap{At: at}
	if dst == nil || !bg.usable() {
		return ov
	}
	ov.Clip = image.Rectangle{Max: image.Point{
		X: min(dst.Width(), bg.Width),
		Y: min(dst.Height(), bg.Height),
	}}
	if !sprite.usable() {
		return ov
	}
	// Built field by field: image.Rect would reorder a negative extent.
	sr := image.Rectangle{
		Min: image.Point{X: at.X, Y: at.Y},
		Max: image.Point{X: at.X + sprite.Width, Y: at.Y + sprite.Height},
	}
	ov.Sprite = sr.Intersect(ov.Clip)
	return ov
}
