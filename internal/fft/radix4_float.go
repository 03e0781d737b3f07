package fft

// Radix4Float is the floating-point radix-4 in-place transform, one generic
// routine for float32 and float64. The three-phase structure and butterfly
// algebra match the fixed-point engines; there is no guard-bit or per-stage
// scaling, so the forward direction computes the plain unnormalized DFT.
// The inverse direction folds the 1/fftLen normalization into the last
// stage, making inverse(forward(x)) unit gain.
//
// Preconditions are the same as for the fixed engines and are not
// re-checked: len(src) == 2*fftLen, fftLen a power of 4, coef an
// interleaved (cos, sin) table indexed with stride twidMod.
func Radix4Float[T Float](src []T, fftLen int, coef []T, twidMod int, dir Direction) {
	d := T(int(dir))

	// First stage.
	n2 := fftLen >> 2
	ia1 := 0
	i0 := 0
	i1 := i0 + 2*n2
	i2 := i1 + 2*n2
	i3 := i2 + 2*n2

	for j := 0; j < n2; j++ {
		xa, ya := src[i0], src[i0+1]
		xb, yb := src[i1], src[i1+1]
		xc, yc := src[i2], src[i2+1]
		xd, yd := src[i3], src[i3+1]

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
		src[i1] = r1*co2 + d*s1*si2
		src[i1+1] = s1*co2 - d*r1*si2

		r1 = r2 + d*t1
		r2 = r2 - d*t1
		s1 = s2 - d*t2
		s2 = s2 + d*t2

		co1, si1 := coef[2*ia1], coef[2*ia1+1]
		src[i2] = r1*co1 + d*s1*si1
		src[i2+1] = s1*co1 - d*r1*si1

		ia3 := 3 * ia1
		co3, si3 := coef[2*ia3], coef[2*ia3+1]
		src[i3] = r2*co3 + d*s2*si3
		src[i3+1] = s2*co3 - d*r2*si3

		ia1 += twidMod
		i0 += 2
		i1 += 2
		i2 += 2
		i3 += 2
	}

	// Middle stages.
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

				src[i0] = r1 + t1
				src[i0+1] = s1 + t2
				r1 -= t1
				s1 -= t2

				t1 = src[i1+1] - src[i3+1]
				t2 = src[i1] - src[i3]

				src[i1] = r1*co2 + d*s1*si2
				src[i1+1] = s1*co2 - d*r1*si2

				r1 = r2 + d*t1
				r2 = r2 - d*t1
				s1 = s2 - d*t2
				s2 = s2 + d*t2

				src[i2] = r1*co1 + d*s1*si1
				src[i2+1] = s1*co1 - d*r1*si1

				src[i3] = r2*co3 + d*s2*si3
				src[i3+1] = s2*co3 - d*r2*si3
			}
		}
		twidMod <<= 2
	}

	// Last stage, with the inverse normalization folded in.
	norm := T(1)
	if dir == Inverse {
		norm = T(1) / T(fftLen)
	}

	for i := 0; i < 2*fftLen; i += 8 {
		xa, ya := src[i], src[i+1]
		xb, yb := src[i+2], src[i+3]
		xc, yc := src[i+4], src[i+5]
		xd, yd := src[i+6], src[i+7]

		src[i] = (xa + xb + xc + xd) * norm
		src[i+1] = (ya + yb + yc + yd) * norm
		src[i+2] = (xa - xb + xc - xd) * norm
		src[i+3] = (ya - yb + yc - yd) * norm
		src[i+4] = (xa - xc + d*(yb-yd)) * norm
		src[i+5] = (ya - yc - d*(xb-xd)) * norm
		src[i+6] = (xa - xc - d*(yb-yd)) * norm
		src[i+7] = (ya - yc + d*(xb-xd)) * norm
	}
}
