package qdsp

// Vector arithmetic kernels. Each operates element-wise over caller-owned
// slices; dst (or the shorter input, for reductions) sets the element
// count, and the other operands must be at least as long.

// AddF32 computes dst[i] = srcA[i] + srcB[i].
func AddF32(srcA, srcB, dst []float32) {
	for i := range dst {
		dst[i] = srcA[i] + srcB[i]
	}
}

// SubQ7 computes dst[i] = srcA[i] - srcB[i] with saturation to the Q7
// range.
func SubQ7(srcA, srcB, dst []int8) {
	for i := range dst {
		dst[i] = ssat8(int16(srcA[i]) - int16(srcB[i]))
	}
}

// OffsetQ7 adds a constant offset to each sample, saturating to the Q7
// range.
func OffsetQ7(src []int8, offset int8, dst []int8) {
	for i := range dst {
		dst[i] = ssat8(int16(src[i]) + int16(offset))
	}
}

// DotProdF32 returns the dot product of srcA and srcB over len(srcA)
// samples.
func DotProdF32(srcA, srcB []float32) float32 {
	var sum float32
	for i := range srcA {
		sum += srcA[i] * srcB[i]
	}

	return sum
}

// DotProdQ15 returns the dot product of two Q15 vectors. The 1.15 x 1.15
// products are 2.30 and accumulate without saturation into a 34.30 result;
// the 33 guard bits make overflow impossible for any practical length.
func DotProdQ15(srcA, srcB []int16) int64 {
	var sum int64
	for i := range srcA {
		sum += int64(int32(srcA[i]) * int32(srcB[i]))
	}

	return sum
}
