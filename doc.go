// Package pixfx renders two real-time pixel effects into fixed-size BGRA8
// framebuffers: a pannable, zoomable Mandelbrot escape-time view and an
// alpha-compositing demo that blends a sprite over a background.
//
// # Overview
//
// Each effect has a scalar reference kernel and a lane-parallel kernel that
// produce byte-identical frames. The lane kernels are written over the
// fixed-size array types of internal/wide so the Go compiler can keep them in
// vector registers; no assembly or unsafe is used.
//
// # Packages
//
//   - pixfx: PixelBuffer, BGRA, Signals and the shared logger
//   - fractal: viewport mapping, escape-time kernels, color map, renderer
//   - composite: sprite-over-background compositors
//   - bitmap: BMP image source (24 and 32 bits per pixel)
//   - frame: the frame driver and its Input/Sink collaborators
//   - backend: backend registry and the headless backend
//   - backend/window: ebiten desktop window
//   - backend/snapshot: PNG, WebP and BMP frame files
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left pixel
//   - X increases right
//   - Y increases down
//
// Pixels are stored row-major as B, G, R, A bytes.
package pixfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
