package fft

// mulQ31 returns the high 32 bits of the 64-bit product a*b. With b a Q31
// twiddle coefficient this is a Q31 multiply that keeps only the top half,
// losing one bit of scale that the butterfly shifts compensate.
func mulQ31(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> 32)
}

// Radix4Q31 computes the in-place radix-4 decimation-in-frequency transform
// of the interleaved Q31 buffer src. fftLen must be a power of 4 and
// len(src) must be 2*fftLen; coef holds interleaved (cos, sin) Q31 pairs
// indexed with stride twidMod. Neither is re-checked here: descriptor
// construction is the validation point.
//
// The butterfly for x(n), x(n+N/4), x(n+N/2), x(n+3N/4) = (xa,ya)..(xd,yd):
//
//	xa' = xa + xb + xc + xd
//	ya' = ya + yb + yc + yd
//	xb' = (xa+yb-xc-yd)*co1 + (ya-xb-yc+xd)*si1
//	yb' = (ya-xb-yc+xd)*co1 - (xa+yb-xc-yd)*si1
//	xc' = (xa-xb+xc-xd)*co2 + (ya-yb+yc-yd)*si2
//	yc' = (ya-yb+yc-yd)*co2 - (xa-xb+xc-xd)*si2
//	xd' = (xa-yb-xc+yd)*co3 + (ya+xb-yc-xd)*si3
//	yd' = (ya+xb-yc-xd)*co3 - (xa-yb-xc+yd)*si3
//
// with every si term (and the cross combinations feeding the b/d outputs)
// taking the opposite sign for the inverse direction.
//
// Scaling: first-stage inputs are pre-shifted right by 4 bits to allocate
// guard bits, each middle stage shifts its outputs down by a further 2
// bits, and the twiddle multiplies carry a half-bit-scale correction
// (<<1 in the first stage, >>1 in the middle stages). Net effect over
// log4(fftLen) stages is the OutputShift budget: the result is the DFT
// scaled by 1/fftLen. Additions wrap on overflow; bounding the dynamic
// range is the caller's contract.
func Radix4Q31(src []int32, fftLen int, coef []int32, twidMod int, dir Direction) {
	d := int32(dir)

	// First stage: four quarter cursors, guard shift on every input,
	// half-scale correction folded into the twiddle outputs.
	n2 := fftLen >> 2
	ia1 := 0
	i0 := 0
	i1 := i0 + 2*n2
	i2 := i1 + 2*n2
	i3 := i2 + 2*n2

	for j := 0; j < n2; j++ {
		xa, ya := src[i0]>>4, src[i0+1]>>4
		xb, yb := src[i1]>>4, src[i1+1]>>4
		xc, yc := src[i2]>>4, src[i2+1]>>4
		xd, yd := src[i3]>>4, src[i3+1]>>4

		r1 := xa + xc
		r2 := xa - xc
		s1 := ya + yc
		s2 := ya - yc
		t1 := xb + xd
		t2 := yb + yd

		src[i0] = r1 + t1
		src[i0+1] = s1 + t2
		r1 -= t1
		s1 -= t2

		t1 = yb - yd
		t2 = xb - xd

		ia2 := 2 * ia1
		co2, si2 := coef[2*ia2], coef[2*ia2+1]
		src[i1] = (mulQ31(r1, co2) + d*mulQ31(s1, si2)) << 1
		src[i1+1] = (mulQ31(s1, co2) - d*mulQ31(r1, si2)) << 1

		r1 = r2 + d*t1
		r2 = r2 - d*t1
		s1 = s2 - d*t2
		s2 = s2 + d*t2

		co1, si1 := coef[2*ia1], coef[2*ia1+1]
		src[i2] = (mulQ31(r1, co1) + d*mulQ31(s1, si1)) << 1
		src[i2+1] = (mulQ31(s1, co1) - d*mulQ31(r1, si1)) << 1

		ia3 := 3 * ia1
		co3, si3 := coef[2*ia3], coef[2*ia3+1]
		src[i3] = (mulQ31(r2, co3) + d*mulQ31(s2, si3)) << 1
		src[i3+1] = (mulQ31(s2, co3) - d*mulQ31(r2, si3)) << 1

		ia1 += twidMod
		i0 += 2
		i1 += 2
		i2 += 2
		i3 += 2
	}

	// Middle stages: each stage quarters the sub-block size, quadruples the
	// twiddle stride and downscales by 2 bits.
	twidMod <<= 2

	for k := fftLen / 4; k > 4; k >>= 2 {
		n1 := n2
		n2 >>= 2
		ia1 = 0

		for j := 0; j < n2; j++ {
			ia2 := ia1 + ia1
			ia3 := ia2 + ia1
			co1, si1 := coef[2*ia1], coef[2*ia1+1]
			co2, si2 := coef[2*ia2], coef[2*ia2+1]
			co3, si3 := coef[2*ia3], coef[2*ia3+1]
			ia1 += twidMod

			for i0 := 2 * j; i0 < 2*fftLen; i0 += 2 * n1 {
				i1 := i0 + 2*n2
				i2 := i1 + 2*n2
				i3 := i2 + 2*n2

				r1 := src[i0] + src[i2]
				r2 := src[i0] - src[i2]
				s1 := src[i0+1] + src[i2+1]
				s2 := src[i0+1] - src[i2+1]
				t1 := src[i1] + src[i3]
				t2 := src[i1+1] + src[i3+1]

				src[i0] = (r1 + t1) >> 2
				src[i0+1] = (s1 + t2) >> 2
				r1 -= t1
				s1 -= t2

				t1 = src[i1+1] - src[i3+1]
				t2 = src[i1] - src[i3]

				src[i1] = (mulQ31(r1, co2) + d*mulQ31(s1, si2)) >> 1
				src[i1+1] = (mulQ31(s1, co2) - d*mulQ31(r1, si2)) >> 1

				r1 = r2 + d*t1
				r2 = r2 - d*t1
				s1 = s2 - d*t2
				s2 = s2 + d*t2

				src[i2] = (mulQ31(r1, co1) + d*mulQ31(s1, si1)) >> 1
				src[i2+1] = (mulQ31(s1, co1) - d*mulQ31(r1, si1)) >> 1

				src[i3] = (mulQ31(r2, co3) + d*mulQ31(s2, si3)) >> 1
				src[i3+1] = (mulQ31(s2, co3) - d*mulQ31(r2, si3)) >> 1
			}
		}
		twidMod <<= 2
	}

	// Last stage: groups of four consecutive complex samples, the closed
	// form of the length-4 DFT, no twiddles and no extra scaling.
	for i := 0; i < 2*fftLen; i += 8 {
		xa, ya := src[i], src[i+1]
		xb, yb := src[i+2], src[i+3]
		xc, yc := src[i+4], src[i+5]
		xd, yd := src[i+6], src[i+7]

		src[i] = xa + xb + xc + xd
		src[i+1] = ya + yb + yc + yd
		src[i+2] = xa - xb + xc - xd
		src[i+3] = ya - yb + yc - yd
		src[i+4] = xa - xc + d*(yb-yd)
		src[i+5] = ya - yc - d*(xb-xd)
		src[i+6] = xa - xc - d*(yb-yd)
		src[i+7] = ya - yc + d*(xb-xd)
	}
}
