package qdsp

// Saturation helpers shared by the kernels that clip instead of wrapping.

// clipQ63ToQ31 saturates a 64-bit accumulator to Q31 range.
func clipQ63ToQ31(v int64) int32 {
	if v > 0x7FFFFFFF {
		return 0x7FFFFFFF
	}
	if v < -0x80000000 {
		return -0x80000000
	}

	return int32(v)
}

// ssat16 saturates v to the signed 16-bit range.
func ssat16(v int32) int16 {
	if v > 0x7FFF {
		return 0x7FFF
	}
	if v < -0x8000 {
		return -0x8000
	}

	return int16(v)
}

// ssat8 saturates v to the signed 8-bit range.
func ssat8(v int16) int8 {
	if v > 0x7F {
		return 0x7F
	}
	if v < -0x80 {
		return -0x80
	}

	return int8(v)
}

// Q31ToQ15 converts a Q31 vector to Q15 by truncating the low 16 bits.
// dst sets the element count; src must be at least as long.
func Q31ToQ15(src []int32, dst []int16) {
	for i := range dst {
		dst[i] = int16(src[i] >> 16)
	}
}
