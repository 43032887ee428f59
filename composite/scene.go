package composite

import (
	"fmt"

	"github.com/gogpu/pixfx"
)

// Mode selects a compositor.
type Mode uint8

const (
	// ModeScalar uses DrawScalar.
	ModeScalar Mode = iota

	// ModeVector uses DrawVector.
	ModeVector
)

var modeNames = [...]string{
	ModeScalar: "scalar",
	ModeVector: "vector",
}

// String returns the mode name used by ParseMode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// ParseMode returns the mode with the given name.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("composite: unknown compositor %q", name)
}

// Draw dispatches to the compositor selected by m.
func (m Mode) Draw(dst *pixfx.PixelBuffer, bg, sprite *Image, at Placement) {
	if m == ModeVector {
		DrawVector(dst, bg, sprite, at)
		return
	}
	DrawScalar(dst, bg, sprite, at)
}

// Option configures a Scene.
type Option func(*Scene)

// WithMode selects the compositor.
func WithMode(m Mode) Option {
	return func(s *Scene) {
		s.mode = m
	}
}

// WithPlacement overrides the centered starting position.
func WithPlacement(p Placement) Option {
	return func(s *Scene) {
		s.At = p
	}
}

// WithFill sets the color of framebuffer pixels the background does not
// cover. The default is black.
func WithFill(c pixfx.BGRA) Option {
	return func(s *Scene) {
		s.fill = c
	}
}

// Scene is one blending session: a background, a movable sprite and the
// compositor that combines them.
type Scene struct {
	At Placement

	background *Image
	sprite     *Image
	mode       Mode
	fill       pixfx.BGRA
}

// NewScene creates a session with the sprite centered on the background.
func NewScene(background, sprite *Image, opts ...Option) *Scene {
	s := &Scene{
		background: background,
		sprite:     sprite,
		fill:       pixfx.Black,
	}
	if background.usable() && sprite.usable() {
		s.At = Centered(background, sprite)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the scene in logs.
func (s *Scene) Name() string {
	return "blend/" + s.mode.String()
}

// Size returns the fixed framebuffer size of the session.
func (s *Scene) Size() (width, height int) {
	return FrameWidth, FrameHeight
}

// Apply moves the sprite for one frame of input.
func (s *Scene) Apply(sig pixfx.Signals) {
	s.At.Apply(sig)
}

// Render composites the current frame into buf. Pixels outside the
// background are set to the fill color so the whole buffer is written.
func (s *Scene) Render(buf *pixfx.PixelBuffer) {
	ov := ComputeOverlap(buf, s.background, s.sprite, s.At)
	s.fillOutside(buf, ov.Clip.Max.X, ov.Clip.Max.Y)
	s.mode.Draw(buf, s.background, s.sprite, s.At)
}

func (s *Scene) fillOutside(buf *pixfx.PixelBuffer, w, h int) {
	if w >= buf.Width() && h >= buf.Height() {
		return
	}
	for y := 0; y < buf.Height(); y++ {
		x0 := w
		if y >= h {
			x0 = 0
		}
		row := buf.Row(y)
		for x := x0; x < buf.Width(); x++ {
			s.fill.Put(row[x*pixfx.BytesPerPixel:])
		}
	}
}
