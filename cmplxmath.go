package qdsp

// Complex vector kernels. Complex inputs are interleaved (real, imag)
// pairs; dst sets the sample count, so a complex source must hold
// 2*len(dst) scalars.

// CmplxMagSquaredF32 computes dst[i] = re^2 + im^2 for each complex sample.
func CmplxMagSquaredF32(src, dst []float32) {
	for i := range dst {
		re, im := src[2*i], src[2*i+1]
		dst[i] = re*re + im*im
	}
}

// CmplxMagSquaredQ31 computes the squared magnitude of Q31 complex
// samples. Each 1.31 x 1.31 product is truncated to 3.29 before the sum,
// so the result is in 3.29 format and cannot overflow.
func CmplxMagSquaredQ31(src, dst []int32) {
	for i := range dst {
		re, im := int64(src[2*i]), int64(src[2*i+1])
		dst[i] = int32((re*re)>>33) + int32((im*im)>>33)
	}
}

// CmplxMagSquaredQ15 computes the squared magnitude of Q15 complex
// samples, returning 3.13 results.
func CmplxMagSquaredQ15(src, dst []int16) {
	for i := range dst {
		re, im := int32(src[2*i]), int32(src[2*i+1])
		dst[i] = int16((int64(re*re) + int64(im*im)) >> 17)
	}
}

// CmplxMultRealQ31 multiplies each Q31 complex sample by the matching real
// scalar, saturating the 1.31 results. srcReal and dst count complex
// samples; srcCmplx and dst hold 2*len(srcReal) scalars.
func CmplxMultRealQ31(srcCmplx, srcReal, dst []int32) {
	for i := range srcReal {
		in := int64(srcReal[i])
		dst[2*i] = clipQ63ToQ31((int64(srcCmplx[2*i]) * in) >> 31)
		dst[2*i+1] = clipQ63ToQ31((int64(srcCmplx[2*i+1]) * in) >> 31)
	}
}

// CmplxMultRealQ15 multiplies each Q15 complex sample by the matching real
// scalar, saturating the 1.15 results.
func CmplxMultRealQ15(srcCmplx, srcReal, dst []int16) {
	for i := range srcReal {
		in := int32(srcReal[i])
		dst[2*i] = ssat16((int32(srcCmplx[2*i]) * in) >> 15)
		dst[2*i+1] = ssat16((int32(srcCmplx[2*i+1]) * in) >> 15)
	}
}
