package fractal

import (
	"math"

	"github.com/gogpu/pixfx"
)

// Frame dimensions of the Mandelbrot session.
const (
	FrameWidth  = 900
	FrameHeight = 600
)

// Interaction constants.
const (
	// ZoomStep is the factor applied to the scale per zoom signal.
	ZoomStep = 1.05

	// FastZoomFactor multiplies ZoomStep while the modifier is held.
	FastZoomFactor = 1.2

	// FastPanFactor multiplies the pan step while the modifier is held.
	FastPanFactor = 3.0

	// MinScale and MaxScale bound ViewState.Scale.
	MinScale = 1e-12
	MaxScale = 1e12
)

// Rect is an axis-aligned rectangle of the complex plane.
// A valid Rect has MaxX > MinX and MaxY > MinY.
type Rect struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// BaseRect is the view at offset zero and scale one.
var BaseRect = Rect{MinX: -2, MaxX: 1, MinY: -1, MaxY: 1}

// Width returns MaxX - MinX.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns MaxY - MinY.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Valid reports whether r has positive, finite extent on both axes.
func (r Rect) Valid() bool {
	w, h := r.Width(), r.Height()
	return w > 0 && h > 0 && !math.IsInf(w, 0) && !math.IsInf(h, 0)
}

// Grid returns the per-pixel sampling of r over a w×h buffer.
// Pixel (0, 0) samples (MinX, MaxY): row 0 is the top edge of the view.
func (r Rect) Grid(w, h int) Grid {
	g := Grid{MinX: r.MinX, MaxY: r.MaxY}
	if w > 0 {
		g.StepX = r.Width() / float64(w)
	}
	if h > 0 {
		g.StepY = r.Height() / float64(h)
	}
	return g
}

// Grid maps pixel indices to sample points. Coordinates are computed from
// the index on every call, never accumulated, so all kernels see the same
// bit patterns for the same pixel.
type Grid struct {
	MinX, MaxY   float64
	StepX, StepY float64
}

// X returns the real coordinate of column i.
func (g Grid) X(i int) float64 {
	return g.MinX + float64(float64(i)*g.StepX)
}

// Y returns the imaginary coordinate of row j.
func (g Grid) Y(j int) float64 {
	return g.MaxY - float64(float64(j)*g.StepY)
}

// ViewState is the persistent pan/zoom state of a Mandelbrot session.
// Scale is always within [MinScale, MaxScale].
type ViewState struct {
	DX, DY float64
	Scale  float64
}

// DefaultView returns the unpanned, unzoomed view.
func DefaultView() ViewState {
	return ViewState{Scale: 1}
}

// Pan moves the view offset by (dx, dy) base-rectangle units.
func (v *ViewState) Pan(dx, dy float64) {
	v.DX += dx
	v.DY += dy
}

// ZoomIn divides the scale by factor. It reports false when the result had
// to be clamped to MinScale.
func (v *ViewState) ZoomIn(factor float64) bool {
	return v.setScale(v.Scale / factor)
}

// ZoomOut multiplies the scale by factor. It reports false when the result
// had to be clamped to MaxScale.
func (v *ViewState) ZoomOut(factor float64) bool {
	return v.setScale(v.Scale * factor)
}

func (v *ViewState) setScale(s float64) bool {
	switch {
	case math.IsNaN(s):
		// Keep the previous value; NaN can only come from a NaN factor.
		return false
	case s < MinScale:
		v.Scale = MinScale
		return false
	case s > MaxScale:
		v.Scale = MaxScale
		return false
	}
	v.Scale = s
	return true
}

// Mapper turns a ViewState into the Rect shown for one frame.
type Mapper struct {
	Base Rect
}

// NewMapper returns a Mapper over BaseRect.
func NewMapper() Mapper {
	return Mapper{Base: BaseRect}
}

// Map returns the active rectangle: each bound is (base + offset) * scale.
func (m Mapper) Map(v ViewState) Rect {
	return Rect{
		MinX: (m.Base.MinX + v.DX) * v.Scale,
		MaxX: (m.Base.MaxX + v.DX) * v.Scale,
		MinY: (m.Base.MinY + v.DY) * v.Scale,
		MaxY: (m.Base.MaxY + v.DY) * v.Scale,
	}
}

// PanStep returns the per-frame pan distance: one hundredth of the base
// rectangle on each axis.
func (m Mapper) PanStep() (dx, dy float64) {
	return m.Base.Width() / 100, m.Base.Height() / 100
}

// Apply translates one frame of input signals into view changes.
// It reports false if a zoom had to be clamped.
func (m Mapper) Apply(v *ViewState, s pixfx.Signals) bool {
	stepX, stepY := m.PanStep()
	zoom := ZoomStep
	if s.Has(pixfx.SignalModifier) {
		stepX *= FastPanFactor
		stepY *= FastPanFactor
		zoom *= FastZoomFactor
	}

	if s.Has(pixfx.SignalRight) {
		v.Pan(stepX, 0)
	}
	if s.Has(pixfx.SignalLeft) {
		v.Pan(-stepX, 0)
	}
	if s.Has(pixfx.SignalDown) {
		v.Pan(0, stepY)
	}
	if s.Has(pixfx.SignalUp) {
		v.Pan(0, -stepY)
	}

	ok := true
	if s.Has(pixfx.SignalZoomIn) {
		ok = v.ZoomIn(zoom) && ok
	}
	if s.Has(pixfx.SignalZoomOut) {
		ok = v.ZoomOut(zoom) && ok
	}
	return ok
}
