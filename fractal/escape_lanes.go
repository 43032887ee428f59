package fractal

import "github.com/gogpu/pixfx/internal/wide"

// EscapeTime2 computes EscapeTime for two points at once. Lane k of the
// result belongs to (cx[k], cy[k]).
//
// Every lane keeps iterating until the step limit or until all lanes have
// escaped. A lane's counter only advances while the lane has stayed inside
// maxRadius on every step so far, which reproduces the scalar early return.
// The loop runs maxIterations-1 steps, so a lane that never escapes ends at
// maxIterations-1.
func EscapeTime2(cx, cy wide.F64x2, maxRadius float64, maxIterations int) [2]int {
	if maxIterations <= 0 {
		return [2]int{}
	}
	r2 := wide.SplatF64(float64(maxRadius * maxRadius))
	two := wide.SplatF64(2)

	x, y := cx, cy
	alive := wide.Mask64x2{^uint64(0), ^uint64(0)}
	var count wide.I64x2

	for st := 1; st < maxIterations; st++ {
		nx := x.Mul(x).Sub(y.Mul(y)).Add(cx)
		ny := two.Mul(x.Mul(y)).Add(cy)
		alive = alive.And(nx.Mul(nx).Add(ny.Mul(ny)).LessEq(r2))
		if !alive.Any() {
			break
		}
		count = count.IncWhere(alive)
		x, y = nx, ny
	}
	return [2]int{int(count[0]), int(count[1])}
}

// EscapeTime4 computes EscapeTime32 for four points at once. Lane k of the
// result belongs to (cx[k], cy[k]). See EscapeTime2 for the lane rules.
func EscapeTime4(cx, cy wide.F32x4, maxRadius float32, maxIterations int) [4]int {
	if maxIterations <= 0 {
		return [4]int{}
	}
	r2 := wide.SplatF32(float32(maxRadius * maxRadius))
	two := wide.SplatF32(2)

	x, y := cx, cy
	alive := wide.Mask32x4{^uint32(0), ^uint32(0), ^uint32(0), ^uint32(0)}
	var count wide.I32x4

	for st := 1; st < maxIterations; st++ {
		nx := x.Mul(x).Sub(y.Mul(y)).Add(cx)
		ny := two.Mul(x.Mul(y)).Add(cy)
		alive = alive.And(nx.Mul(nx).Add(ny.Mul(ny)).LessEq(r2))
		if !alive.Any() {
			break
		}
		count = count.IncWhere(alive)
		x, y = nx, ny
	}
	return [4]int{int(count[0]), int(count[1]), int(count[2]), int(count[3])}
}
