package qdsp

import "math"

// Fast trigonometric approximations: 512-entry quarter-step sine table with
// linear interpolation. Inputs are Q15 phase in turns, so [0, 0.9999]
// covers [0, 2*pi) and negative phases wrap modulo one turn.

const fastMathTableSize = 512

// sinTableQ15 holds sin(2*pi*i/512) in Q15 with one wraparound entry for
// interpolation. The original bakes this into ROM; here it is filled once
// at package init.
var sinTableQ15 [fastMathTableSize + 1]int16

func init() {
	for i := range sinTableQ15 {
		sinTableQ15[i] = quantize15(math.Sin(2 * math.Pi * float64(i) / fastMathTableSize))
	}
}

// SinQ15 returns sin(2*pi*x) for a Q15 phase x, in Q15.
func SinQ15(x int16) int16 {
	return sinLookupQ15(uint16(x))
}

// CosQ15 returns cos(2*pi*x) for a Q15 phase x, in Q15, as the sine a
// quarter turn ahead.
func CosQ15(x int16) int16 {
	return sinLookupQ15(uint16(x) + 0x2000)
}

func sinLookupQ15(phase uint16) int16 {
	// Fold negative phases into [0, 0x8000), one full turn.
	if int16(phase) < 0 {
		phase += 0x8000
	}

	// 64 phase counts per table step; the remainder interpolates.
	index := int32(phase >> 6)
	fract := (int32(phase) - index<<6) << 9

	a := int32(sinTableQ15[index])
	b := int32(sinTableQ15[index+1])

	v := ((0x8000 - fract) * a) >> 16
	v = ((v << 16) + fract*b) >> 16

	// The interpolation arithmetic lands in Q14; restore Q15.
	return int16(v << 1)
}
