package fft

// The decimation-in-frequency butterflies leave the spectrum in
// bit-reversed order: buffer position p holds bin reverseBits(p, log2(N)).
// For power-of-4 lengths the base-4 digit reversal of the recursion
// composes with the per-stage output ordering into a plain bit reversal,
// so one table format serves the whole family.

// BitRevTable returns the swap table that unscrambles a length-n transform:
// interleaved (from, to) complex-index pairs with from < to, one entry per
// 2-cycle of the permutation. Indices fit in uint16 for every supported
// length.
func BitRevTable(n int) []uint16 {
	bits := log2(n)
	tab := make([]uint16, 0, n)

	for i := 0; i < n; i++ {
		j := reverseBits(i, bits)
		if j > i {
			tab = append(tab, uint16(i), uint16(j))
		}
	}

	return tab
}

// BitReverse applies the swap table to the interleaved complex buffer,
// strictly pairwise and with no runtime index computation. factor strides
// the table so a table generated for a longer transform can serve a
// shorter one; tables from BitRevTable use factor 1. Swaps are their own
// undo, so the pass is an exact involution.
func BitReverse[T Sample](src []T, tab []uint16, factor int) {
	for i := 0; i+1 < len(tab); i += 2 * factor {
		a := 2 * int(tab[i])
		b := 2 * int(tab[i+1])
		src[a], src[b] = src[b], src[a]
		src[a+1], src[b+1] = src[b+1], src[a+1]
	}
}

// log2 returns the base-2 logarithm of n, assuming n is a power of 2.
func log2(n int) int {
	bits := 0
	for n > 1 {
		n >>= 1
		bits++
	}

	return bits
}

// reverseBits reverses the lower 'bits' bits of x.
func reverseBits(x, bits int) int {
	result := 0
	for k := 0; k < bits; k++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}
