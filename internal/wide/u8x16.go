package wide

// U8x16 holds 4 packed BGRA8 pixels (16 bytes), the unit the compositor
// loads, blends and stores per step.
type U8x16 [16]uint8

// LoadU8x16 copies up to 16 bytes from p. Missing bytes are zero, so a
// short slice at the end of a row loads as transparent black pixels.
func LoadU8x16(p []byte) U8x16 {
	var v U8x16
	copy(v[:], p)
	return v
}

// Store copies the vector into p, writing at most len(p) bytes.
func (v U8x16) Store(p []byte) {
	copy(p, v[:])
}

// Widen zero-extends each byte to 16 bits.
func (v U8x16) Widen() U16x16 {
	var result U16x16
	for i := range v {
		result[i] = uint16(v[i])
	}
	return result
}

// SetAlpha forces the alpha byte of every pixel to a.
func (v U8x16) SetAlpha(a uint8) U8x16 {
	v[3], v[7], v[11], v[15] = a, a, a, a
	return v
}
