package wide

// U16x16 represents 16 uint16 values for SIMD-style operations.
// Four BGRA8 pixels widen to exactly one U16x16, lane 4*k+c holding
// channel c of pixel k.
type U16x16 [16]uint16

// SplatU16 creates U16x16 with all elements set to n.
func SplatU16(n uint16) U16x16 {
	var result U16x16
	for i := range result {
		result[i] = n
	}
	return result
}

// Add performs element-wise addition.
// Returns a new U16x16 with v[i] + other[i] for each element.
func (v U16x16) Add(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
// Returns a new U16x16 with v[i] * other[i] for each element.
func (v U16x16) Mul(other U16x16) U16x16 {
	var result U16x16
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// Div255 divides each element by 255.
// Uses the formula: (x + 1 + (x >> 8)) >> 8, which equals x/255 (truncated)
// for every x in [0, 255*255], the range of a channel times an alpha.
func (v U16x16) Div255() U16x16 {
	var result U16x16
	for i := range v {
		x := v[i]
		result[i] = (x + 1 + (x >> 8)) >> 8
	}
	return result
}

// Inv computes 255 - v for each element (inverse alpha).
func (v U16x16) Inv() U16x16 {
	var result U16x16
	for i := range v {
		result[i] = 255 - v[i]
	}
	return result
}

// MulDiv255 performs (v * other) / 255 for each element, truncating.
// Both operands must be at most 255.
func (v U16x16) MulDiv255(other U16x16) U16x16 {
	return v.Mul(other).Div255()
}

// SpreadAlpha copies the alpha lane of every pixel into its three color
// lanes, so each channel can be multiplied by its own pixel's alpha.
func (v U16x16) SpreadAlpha() U16x16 {
	var result U16x16
	for p := 0; p < 16; p += 4 {
		a := v[p+3]
		result[p+0] = a
		result[p+1] = a
		result[p+2] = a
		result[p+3] = a
	}
	return result
}

// Narrow truncates each element to 8 bits.
func (v U16x16) Narrow() U8x16 {
	var result U8x16
	for i := range v {
		// Intentional truncation - blended channels are guaranteed to be in [0, 255]
		result[i] = uint8(v[i]) // #nosec G115
	}
	return result
}
