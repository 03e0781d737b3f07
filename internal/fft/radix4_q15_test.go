package fft

import (
	"fmt"
	"testing"
)

func cfftQ15(buf []int16, n int, dir Direction) {
	Radix4Q15(buf, n, TwiddleQ15(), MaxLen/n, dir)
	BitReverse(buf, BitRevTable(n), 1)
}

func TestRadix4Q15MatchesReference(t *testing.T) {
	t.Parallel()

	for _, n := range []int{16, 64, 256} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			buf := randomBuf[int16](n, 1<<13, 0x7E57+int64(n))
			want := scaleComplex(refDFT(toComplex(buf), Forward), 1/float64(n))

			cfftQ15(buf, n, Forward)

			// Q15 has 16 fewer bits to spend than Q31, so the truncation
			// noise is proportionally coarser.
			assertClose(t, toComplex(buf), want, 20)
		})
	}
}

func TestRadix4Q15RoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{16, 64, 256} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			buf := randomBuf[int16](n, 1<<14, 0xBEE+int64(n))
			want := scaleComplex(toComplex(buf), 1/float64(n))

			cfftQ15(buf, n, Forward)
			cfftQ15(buf, n, Inverse)

			assertClose(t, toComplex(buf), want, 32)
		})
	}
}

func TestRadix4Q15Impulse16(t *testing.T) {
	t.Parallel()

	const n = 16
	const amp = 1 << 12

	buf := make([]int16, 2*n)
	buf[0] = amp

	cfftQ15(buf, n, Forward)

	want := int16(amp >> OutputShift(n))
	for k := 0; k < n; k++ {
		if diff := buf[2*k] - want; diff < -4 || diff > 4 {
			t.Errorf("bin %d: real %d, want %d (+-4)", k, buf[2*k], want)
		}
		if im := buf[2*k+1]; im < -4 || im > 4 {
			t.Errorf("bin %d: imag %d, want 0 (+-4)", k, im)
		}
	}
}
