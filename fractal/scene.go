package fractal

import "github.com/gogpu/pixfx"

// Scene is one Mandelbrot session: the persistent view plus the renderer.
// It is driven by frame.Driver, one Apply and one Render per frame.
type Scene struct {
	View ViewState

	mapper   Mapper
	renderer *Renderer
}

// NewScene creates a session at the default view.
func NewScene(opts ...Option) *Scene {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scene{
		View:     DefaultView(),
		mapper:   Mapper{Base: o.base},
		renderer: newRenderer(o),
	}
}

// Name identifies the scene in logs.
func (s *Scene) Name() string {
	return "mandelbrot/" + s.renderer.Kernel().String()
}

// Size returns the fixed framebuffer size of the session.
func (s *Scene) Size() (width, height int) {
	return FrameWidth, FrameHeight
}

// Apply translates one frame of input into view changes.
func (s *Scene) Apply(sig pixfx.Signals) {
	if !s.mapper.Apply(&s.View, sig) {
		pixfx.Logger().Warn("fractal: zoom clamped", "scale", s.View.Scale)
	}
}

// Rect returns the rectangle the next Render will show.
func (s *Scene) Rect() Rect {
	return s.mapper.Map(s.View)
}

// Render draws the current view into buf.
func (s *Scene) Render(buf *pixfx.PixelBuffer) {
	s.renderer.Render(buf, s.Rect())
}
