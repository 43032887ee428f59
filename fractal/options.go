package fractal

// Option configures a Renderer or Scene.
//
// Example:
//
//	r := fractal.NewRenderer(fractal.WithKernel(fractal.KernelVec4), fractal.WithPalette(fractal.PaletteWrap))
type Option func(*options)

type options struct {
	kernel        Kernel
	palette       Palette
	maxRadius     float64
	maxIterations int
	base          Rect
}

func defaultOptions() options {
	return options{
		kernel:        KernelScalar,
		palette:       PaletteClamp,
		maxRadius:     DefaultMaxRadius,
		maxIterations: DefaultMaxIterations,
		base:          BaseRect,
	}
}

// WithKernel selects the escape-time kernel.
func WithKernel(k Kernel) Option {
	return func(o *options) {
		o.kernel = k
	}
}

// WithPalette selects the color map overflow behavior.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithLimits overrides the escape radius and iteration cap.
// Non-positive values keep the defaults.
func WithLimits(maxRadius float64, maxIterations int) Option {
	return func(o *options) {
		if maxRadius > 0 {
			o.maxRadius = maxRadius
		}
		if maxIterations > 0 {
			o.maxIterations = maxIterations
		}
	}
}

// WithBase sets the rectangle shown at offset zero and scale one.
// Invalid rectangles are ignored.
func WithBase(r Rect) Option {
	return func(o *options) {
		if r.Valid() {
			o.base = r
		}
	}
}
