package wide

// F32x4 represents 4 float32 values for SIMD-style operations.
type F32x4 [4]float32

// SplatF32 creates F32x4 with all elements set to n.
func SplatF32(n float32) F32x4 {
	return F32x4{n, n, n, n}
}

// Add performs element-wise addition.
func (v F32x4) Add(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x4) Sub(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication with each product rounded to
// float32.
func (v F32x4) Mul(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(v[i] * other[i])
	}
	return result
}

// LessEq compares element-wise and returns an all-ones lane where
// v[i] <= other[i]. NaN lanes compare false.
func (v F32x4) LessEq(other F32x4) Mask32x4 {
	var m Mask32x4
	for i := range v {
		if v[i] <= other[i] {
			m[i] = ^uint32(0)
		}
	}
	return m
}
