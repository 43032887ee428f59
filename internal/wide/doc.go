// Package wide provides SIMD-friendly lane types for the pixel kernels.
//
// The types are fixed-size arrays with simple element-wise loops so the Go
// compiler can keep them in vector registers (SSE, AVX, NEON) without
// assembly or unsafe. Only the widths the kernels need exist:
//
//   - F64x2 / I64x2 / Mask64x2: two double-precision escape-time lanes
//   - F32x4 / I32x4 / Mask32x4: four single-precision escape-time lanes
//   - U8x16 / U16x16: four BGRA8 pixels, packed and widened to 16 bits
//
// # Masks
//
// Comparisons return masks whose lanes are all ones (true) or all zeros
// (false), the same representation SSE compare instructions produce.
// Counters advance with IncWhere, which adds one to the lanes whose mask is
// set. This is the masked form of the scalar "count while bounded" loop.
//
// # Rounding
//
// Mul converts each product to its own type before returning. An explicit
// conversion forces rounding, which stops the compiler from fusing the
// product into a following Add on FMA-capable targets. Scalar reference
// kernels write the same conversions so both paths round identically.
package wide
