package fft

// IsPowerOf4 reports whether n is a positive power of 4. A power of 4 is a
// power of 2 whose single set bit sits at an even position.
func IsPowerOf4(n int) bool {
	return n > 0 && n&(n-1) == 0 && n&0x55555555 != 0
}

// Log4 returns the base-4 logarithm of n, assuming n is a power of 4. This
// is the number of radix-4 stages the engines run for a length-n transform.
func Log4(n int) int {
	stages := 0
	for n > 1 {
		n >>= 2
		stages++
	}

	return stages
}

// OutputShift returns the guard-bit budget of a length-n fixed-point
// transform: the number of bits the output is scaled down relative to a
// unit-gain DFT. The fixed engines give up 2 bits per radix-4 stage
// (4 in the first stage covering the unscaled last stage, 2 per middle
// stage), so the budget is 2*log4(n) and the output equals DFT/n.
func OutputShift(n int) int {
	return 2 * Log4(n)
}
