package frame

import (
	"errors"

	"github.com/gogpu/pixfx"
)

// ErrStopped may be returned by a Sink to end the session without error,
// for example when its window was closed.
var ErrStopped = errors.New("frame: stopped")

// Scene is the state and renderer of one demo session.
type Scene interface {
	// Name identifies the scene in logs.
	Name() string

	// Size is the fixed framebuffer size the scene renders at.
	Size() (width, height int)

	// Apply updates persistent state from one frame of input.
	Apply(sig pixfx.Signals)

	// Render writes every pixel of buf.
	Render(buf *pixfx.PixelBuffer)
}

// Input is polled once per frame.
type Input interface {
	Poll() pixfx.Signals
}

// Sink receives each completed frame. Present may block until the next
// frame can be produced. The buffer is reused for the next frame once
// Present returns.
type Sink interface {
	Present(buf *pixfx.PixelBuffer) error
}

// InputFunc adapts a function to Input.
type InputFunc func() pixfx.Signals

// Poll calls f.
func (f InputFunc) Poll() pixfx.Signals { return f() }

// SinkFunc adapts a function to Sink.
type SinkFunc func(buf *pixfx.PixelBuffer) error

// Present calls f.
func (f SinkFunc) Present(buf *pixfx.PixelBuffer) error { return f(buf) }

// Discard is a Sink that drops every frame.
var Discard Sink = SinkFunc(func(*pixfx.PixelBuffer) error { return nil })
