package qdsp

import "math"

// Statistics kernels: single-pass reductions over caller-owned vectors.

// RMSF32 returns the root mean square of src.
func RMSF32(src []float32) float32 {
	var sum float32
	for _, in := range src {
		sum += in * in
	}

	return float32(math.Sqrt(float64(sum / float32(len(src)))))
}

// RMSQ31 returns the root mean square of a Q31 vector. The 2.62 product
// accumulator has enough guard bits that overflow is impossible; the mean
// square is truncated back to 1.31 before the square root.
func RMSQ31(src []int32) int32 {
	var sum int64
	for _, in := range src {
		sum += int64(in) * int64(in)
	}

	return sqrtQ31(clipQ63ToQ31((sum / int64(len(src))) >> 31))
}

// RMSQ15 returns the root mean square of a Q15 vector, in 1.15 format.
func RMSQ15(src []int16) int16 {
	var sum int64
	for _, in := range src {
		sum += int64(int32(in) * int32(in))
	}

	return sqrtQ15(ssat16(int32((sum / int64(len(src))) >> 15)))
}

// PowerQ31 returns the sum of squares of a Q31 vector. Each 2.62 product
// is truncated to 16.48 before accumulating, leaving 15 guard bits.
func PowerQ31(src []int32) int64 {
	var sum int64
	for _, in := range src {
		sum += (int64(in) * int64(in)) >> 14
	}

	return sum
}

// PowerQ7 returns the sum of squares of a Q7 vector in 18.14 format.
func PowerQ7(src []int8) int32 {
	var sum int32
	for _, in := range src {
		sum += int32(in) * int32(in)
	}

	return sum
}

// MinQ31 returns the smallest value in src and its index. src must not be
// empty; ties keep the first occurrence.
func MinQ31(src []int32) (int32, int) {
	out := src[0]
	outIndex := 0

	for i := 1; i < len(src); i++ {
		if src[i] < out {
			out = src[i]
			outIndex = i
		}
	}

	return out, outIndex
}

// StdF32 returns the sample standard deviation of src (the n-1 estimator).
// A single-element vector has deviation 0.
func StdF32(src []float32) float32 {
	if len(src) == 1 {
		return 0
	}

	var sum, sumOfSquares float32
	for _, in := range src {
		sumOfSquares += in * in
		sum += in
	}

	n := float32(len(src))
	squareOfSum := sum * sum / n
	variance := (sumOfSquares - squareOfSum) / (n - 1)

	return float32(math.Sqrt(float64(variance)))
}

// sqrtQ31 returns the square root of a non-negative Q31 value in Q31.
// Negative inputs clamp to 0.
func sqrtQ31(v int32) int32 {
	if v <= 0 {
		return 0
	}

	return quantize31(math.Sqrt(float64(v) / (1 << 31)))
}

// sqrtQ15 returns the square root of a non-negative Q15 value in Q15.
func sqrtQ15(v int16) int16 {
	if v <= 0 {
		return 0
	}

	return quantize15(math.Sqrt(float64(v) / (1 << 15)))
}

// quantize31 rounds v in [-1, 1] to Q31, saturating at the rails.
func quantize31(v float64) int32 {
	x := math.Round(v * (1 << 31))
	if x > math.MaxInt32 {
		return math.MaxInt32
	}
	if x < math.MinInt32 {
		return math.MinInt32
	}

	return int32(x)
}

// quantize15 rounds v in [-1, 1] to Q15, saturating at the rails.
func quantize15(v float64) int16 {
	x := math.Round(v * (1 << 15))
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	if x < math.MinInt16 {
		return math.MinInt16
	}

	return int16(x)
}
