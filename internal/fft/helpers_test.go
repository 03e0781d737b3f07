package fft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

// randomBuf returns an interleaved complex buffer of n samples with
// components drawn uniformly from [-amp, amp].
func randomBuf[T Sample](n int, amp float64, seed int64) []T {
	rng := rand.New(rand.NewSource(seed))
	buf := make([]T, 2*n)

	for i := range buf {
		buf[i] = T((rng.Float64()*2 - 1) * amp)
	}

	return buf
}

// toComplex converts an interleaved buffer to complex128 for reference
// arithmetic.
func toComplex[T Sample](buf []T) []complex128 {
	out := make([]complex128, len(buf)/2)
	for i := range out {
		out[i] = complex(float64(buf[2*i]), float64(buf[2*i+1]))
	}

	return out
}

// refDFT computes the direct O(n^2) DFT in float64. Forward uses the
// engineering sign convention exp(-2*pi*i*kn/N); Inverse conjugates the
// exponent and carries no normalization.
func refDFT(x []complex128, dir Direction) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	sign := -float64(dir)

	for k := range out {
		var acc complex128
		for i, v := range x {
			theta := sign * 2 * math.Pi * float64(k) * float64(i) / float64(n)
			acc += v * cmplx.Exp(complex(0, theta))
		}
		out[k] = acc
	}

	return out
}

// scaleComplex returns x scaled by s.
func scaleComplex(x []complex128, s float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = v * complex(s, 0)
	}

	return out
}

// maxAbsDiff returns the largest per-component distance between a and b.
func maxAbsDiff(a, b []complex128) float64 {
	var worst float64
	for i := range a {
		if d := math.Abs(real(a[i]) - real(b[i])); d > worst {
			worst = d
		}
		if d := math.Abs(imag(a[i]) - imag(b[i])); d > worst {
			worst = d
		}
	}

	return worst
}

// assertClose fails the test when any component of got strays further than
// tol from want.
func assertClose(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if d := maxAbsDiff(got, want); d > tol {
		t.Errorf("max deviation %g exceeds tolerance %g", d, tol)
	}
}
