package fft

import (
	"math"
	"sync"
)

// Twiddle tables are interleaved (cos, sin) pairs for the angles 2*pi*i/N,
// generated once at the MaxLen resolution and shared by every descriptor:
// a length-n transform walks the table with stride MaxLen/n. The radix-4
// butterflies index up to 3*(n/4-1) twiddles, so 3*MaxLen/4 pairs cover
// every supported length. The original keeps these in ROM; here they are
// built lazily and never mutated afterwards.

const twiddlePairs = 3 * MaxLen / 4

var (
	twiddleOnce   sync.Once
	twiddleTabQ31 []int32
	twiddleTabQ15 []int16
	twiddleTabF32 []float32
	twiddleTabF64 []float64
)

func buildTwiddleTables() {
	twiddleTabQ31 = make([]int32, 2*twiddlePairs)
	twiddleTabQ15 = make([]int16, 2*twiddlePairs)
	twiddleTabF32 = make([]float32, 2*twiddlePairs)
	twiddleTabF64 = make([]float64, 2*twiddlePairs)

	for i := 0; i < twiddlePairs; i++ {
		theta := 2 * math.Pi * float64(i) / MaxLen
		c, s := math.Cos(theta), math.Sin(theta)

		twiddleTabQ31[2*i] = quantizeQ31(c)
		twiddleTabQ31[2*i+1] = quantizeQ31(s)
		twiddleTabQ15[2*i] = quantizeQ15(c)
		twiddleTabQ15[2*i+1] = quantizeQ15(s)
		twiddleTabF32[2*i] = float32(c)
		twiddleTabF32[2*i+1] = float32(s)
		twiddleTabF64[2*i] = c
		twiddleTabF64[2*i+1] = s
	}
}

// TwiddleQ31 returns the shared Q31 twiddle table.
func TwiddleQ31() []int32 {
	twiddleOnce.Do(buildTwiddleTables)
	return twiddleTabQ31
}

// TwiddleQ15 returns the shared Q15 twiddle table.
func TwiddleQ15() []int16 {
	twiddleOnce.Do(buildTwiddleTables)
	return twiddleTabQ15
}

// TwiddleF32 returns the shared float32 twiddle table.
func TwiddleF32() []float32 {
	twiddleOnce.Do(buildTwiddleTables)
	return twiddleTabF32
}

// TwiddleF64 returns the shared float64 twiddle table.
func TwiddleF64() []float64 {
	twiddleOnce.Do(buildTwiddleTables)
	return twiddleTabF64
}

// quantizeQ31 rounds v in [-1, 1] to Q31, saturating at the positive rail
// (cos(0) = 1.0 has no exact Q31 representation).
func quantizeQ31(v float64) int32 {
	x := math.Round(v * (1 << 31))
	if x > math.MaxInt32 {
		return math.MaxInt32
	}
	if x < math.MinInt32 {
		return math.MinInt32
	}

	return int32(x)
}

// quantizeQ15 rounds v in [-1, 1] to Q15, saturating at the positive rail.
func quantizeQ15(v float64) int16 {
	x := math.Round(v * (1 << 15))
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	if x < math.MinInt16 {
		return math.MinInt16
	}

	return int16(x)
}
