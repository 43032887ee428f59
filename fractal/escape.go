package fractal

// Default kernel limits.
const (
	DefaultMaxRadius     = 100
	DefaultMaxIterations = 256
)

// Point is a point of the complex plane.
type Point struct {
	X, Y float64
}

// EscapeTime iterates z = z² + c from z = c and returns the index of the
// first step whose result lies outside maxRadius. Points that stay bounded
// for maxIterations steps return maxIterations-1. The result is always in
// [0, maxIterations-1]; maxIterations <= 0 yields 0.
func EscapeTime(c Point, maxRadius float64, maxIterations int) int {
	if maxIterations <= 0 {
		return 0
	}
	r2 := float64(maxRadius * maxRadius)
	x, y := c.X, c.Y
	for st := 0; st < maxIterations; st++ {
		// Each product is rounded on its own to match the lane kernels.
		nx := float64(x*x) - float64(y*y) + c.X
		ny := float64(2*float64(x*y)) + c.Y
		if !(float64(nx*nx)+float64(ny*ny) <= r2) {
			return st
		}
		x, y = nx, ny
	}
	return maxIterations - 1
}

// EscapeTime32 is EscapeTime evaluated in float32. It is the per-point
// reference for EscapeTime4.
func EscapeTime32(cx, cy, maxRadius float32, maxIterations int) int {
	if maxIterations <= 0 {
		return 0
	}
	r2 := float32(maxRadius * maxRadius)
	x, y := cx, cy
	for st := 0; st < maxIterations; st++ {
		nx := float32(x*x) - float32(y*y) + cx
		ny := float32(2*float32(x*y)) + cy
		if !(float32(nx*nx)+float32(ny*ny) <= r2) {
			return st
		}
		x, y = nx, ny
	}
	return maxIterations - 1
}
