package wide

// Mask64x2 is a two-lane comparison result: each lane is all ones or all zeros.
type Mask64x2 [2]uint64

// Mask32x4 is a four-lane comparison result: each lane is all ones or all zeros.
type Mask32x4 [4]uint32

// And returns the lane-wise intersection of two masks.
func (m Mask64x2) And(other Mask64x2) Mask64x2 {
	return Mask64x2{m[0] & other[0], m[1] & other[1]}
}

// Any reports whether at least one lane is set.
func (m Mask64x2) Any() bool {
	return m[0]|m[1] != 0
}

// And returns the lane-wise intersection of two masks.
func (m Mask32x4) And(other Mask32x4) Mask32x4 {
	var result Mask32x4
	for i := range m {
		result[i] = m[i] & other[i]
	}
	return result
}

// Any reports whether at least one lane is set.
func (m Mask32x4) Any() bool {
	return m[0]|m[1]|m[2]|m[3] != 0
}

// I64x2 is a two-lane int64 counter.
type I64x2 [2]int64

// IncWhere adds one to each lane whose mask is set.
func (v I64x2) IncWhere(m Mask64x2) I64x2 {
	var result I64x2
	for i := range v {
		result[i] = v[i] + int64(m[i]&1)
	}
	return result
}

// I32x4 is a four-lane int32 counter.
type I32x4 [4]int32

// IncWhere adds one to each lane whose mask is set.
func (v I32x4) IncWhere(m Mask32x4) I32x4 {
	var result I32x4
	for i := range v {
		result[i] = v[i] + int32(m[i]&1) // #nosec G115 -- value is 0 or 1
	}
	return result
}
