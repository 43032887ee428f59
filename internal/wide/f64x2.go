package wide

// F64x2 represents 2 float64 values for SIMD-style operations.
type F64x2 [2]float64

// SplatF64 creates F64x2 with both elements set to n.
func SplatF64(n float64) F64x2 {
	return F64x2{n, n}
}

// Add performs element-wise addition.
func (v F64x2) Add(other F64x2) F64x2 {
	var result F64x2
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F64x2) Sub(other F64x2) F64x2 {
	var result F64x2
	for i := range v {
		result[i] = v[i] - other[i]
	}
	return result
}

// Mul performs element-wise multiplication with each product rounded to
// float64.
func (v F64x2) Mul(other F64x2) F64x2 {
	var result F64x2
	for i := range v {
		result[i] = float64(v[i] * other[i])
	}
	return result
}

// LessEq compares element-wise and returns an all-ones lane where
// v[i] <= other[i]. NaN lanes compare false.
func (v F64x2) LessEq(other F64x2) Mask64x2 {
	var m Mask64x2
	for i := range v {
		if v[i] <= other[i] {
			m[i] = ^uint64(0)
		}
	}
	return m
}
