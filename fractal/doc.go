// Package fractal renders an interactively pannable and zoomable Mandelbrot
// set into a BGRA8 framebuffer.
//
// A frame is produced in three steps: a Mapper turns the persistent
// ViewState into the Rect of the complex plane shown this frame, a Grid
// assigns one sample point to every pixel, and an escape-time kernel turns
// each point into an iteration count that a Palette maps to a color.
//
// # Kernels
//
// Four kernels are available and selected with WithKernel:
//
//   - KernelScalar: one float64 point per call (EscapeTime)
//   - KernelVec2: two float64 lanes per call (EscapeTime2)
//   - KernelScalar32: one float32 point per call (EscapeTime32)
//   - KernelVec4: four float32 lanes per call (EscapeTime4)
//
// KernelVec2 renders byte-identical frames to KernelScalar, and KernelVec4
// to KernelScalar32. Lane k of a vector call always holds pixel x+k.
//
// # Iteration Limit
//
// A point that never escapes reports maxIterations-1, not maxIterations, so
// counts always index a palette of maxIterations entries.
package fractal
