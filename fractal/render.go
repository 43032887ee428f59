package fractal

import (
	"fmt"

	"github.com/gogpu/pixfx"
	"github.com/gogpu/pixfx/internal/wide"
)

// Kernel selects an escape-time implementation.
type Kernel uint8

const (
	// KernelScalar evaluates one float64 point at a time.
	KernelScalar Kernel = iota

	// KernelVec2 evaluates two float64 lanes at a time.
	KernelVec2

	// KernelScalar32 evaluates one float32 point at a time.
	KernelScalar32

	// KernelVec4 evaluates four float32 lanes at a time.
	KernelVec4
)

var kernelNames = [...]string{
	KernelScalar:   "scalar",
	KernelVec2:     "vec2",
	KernelScalar32: "scalar32",
	KernelVec4:     "vec4",
}

// String returns the kernel name used by ParseKernel.
func (k Kernel) String() string {
	if int(k) < len(kernelNames) {
		return kernelNames[k]
	}
	return fmt.Sprintf("Kernel(%d)", k)
}

// ParseKernel returns the kernel with the given name.
func ParseKernel(name string) (Kernel, error) {
	for k, n := range kernelNames {
		if n == name {
			return Kernel(k), nil
		}
	}
	return 0, fmt.Errorf("fractal: unknown kernel %q", name)
}

// Renderer fills a PixelBuffer with the Mandelbrot set over a Rect.
type Renderer struct {
	kernel        Kernel
	maxRadius     float64
	maxIterations int
	colors        []pixfx.BGRA
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newRenderer(o)
}

func newRenderer(o options) *Renderer {
	return &Renderer{
		kernel:        o.kernel,
		maxRadius:     o.maxRadius,
		maxIterations: o.maxIterations,
		colors:        o.palette.Table(o.maxIterations),
	}
}

// Kernel returns the selected kernel.
func (r *Renderer) Kernel() Kernel {
	return r.kernel
}

// Render overwrites every pixel of buf. view is sampled once for the whole
// frame, so all pixels see the same rectangle.
func (r *Renderer) Render(buf *pixfx.PixelBuffer, view Rect) {
	w, h := buf.Width(), buf.Height()
	g := view.Grid(w, h)
	for j := 0; j < h; j++ {
		row := buf.Row(j)
		y := g.Y(j)
		switch r.kernel {
		case KernelVec2:
			r.rowVec2(row, g, w, y)
		case KernelScalar32:
			r.rowScalar32(row, g, w, y)
		case KernelVec4:
			r.rowVec4(row, g, w, y)
		default:
			r.rowScalar(row, g, w, y)
		}
	}
}

func (r *Renderer) put(row []byte, x, n int) {
	r.colors[n].Put(row[x*pixfx.BytesPerPixel:])
}

func (r *Renderer) rowScalar(row []byte, g Grid, w int, y float64) {
	for i := 0; i < w; i++ {
		r.put(row, i, EscapeTime(Point{X: g.X(i), Y: y}, r.maxRadius, r.maxIterations))
	}
}

func (r *Renderer) rowScalar32(row []byte, g Grid, w int, y float64) {
	cy, radius := float32(y), float32(r.maxRadius)
	for i := 0; i < w; i++ {
		r.put(row, i, EscapeTime32(float32(g.X(i)), cy, radius, r.maxIterations))
	}
}

// rowVec2 walks the row two pixels per call. A trailing odd pixel still
// runs in a full call; its extra lane is discarded.
func (r *Renderer) rowVec2(row []byte, g Grid, w int, y float64) {
	cy := wide.SplatF64(y)
	for i := 0; i < w; i += 2 {
		cx := wide.F64x2{g.X(i), g.X(i + 1)}
		n := EscapeTime2(cx, cy, r.maxRadius, r.maxIterations)
		for k := 0; k < 2 && i+k < w; k++ {
			r.put(row, i+k, n[k])
		}
	}
}

// rowVec4 walks the row four pixels per call; see rowVec2 for the tail.
func (r *Renderer) rowVec4(row []byte, g Grid, w int, y float64) {
	cy := wide.SplatF32(float32(y))
	radius := float32(r.maxRadius)
	for i := 0; i < w; i += 4 {
		var cx wide.F32x4
		for k := range cx {
			cx[k] = float32(g.X(i + k))
		}
		n := EscapeTime4(cx, cy, radius, r.maxIterations)
		for k := 0; k < 4 && i+k < w; k++ {
			r.put(row, i+k, n[k])
		}
	}
}
