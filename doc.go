// Package qdsp is a fixed- and floating-point DSP kernel library in the
// CMSIS-DSP tradition, built around an in-place radix-4 complex FFT/IFFT
// engine for Q31, Q15, float32 and float64 sample formats.
//
// # Sample formats
//
// Fixed-point samples use fractional Q formats: Q31 is 1.31 (int32, one
// sign bit, 31 fractional bits), Q15 is 1.15 (int16), Q7 is 1.7 (int8).
// Complex buffers are interleaved (real, imag) pairs, so a length-N
// transform operates on a slice of 2*N scalars.
//
// # Transforms
//
// A transform descriptor (CFFTQ31, CFFTQ15, CFFTF32, CFFTF64) is built once
// with NewCFFT* and is immutable afterwards; it may be shared by concurrent
// Transform calls as long as each call owns its buffer. Lengths must be
// powers of 4 in [MinLen, MaxLen]; anything else is rejected at
// construction time.
//
// # Fixed-point scaling
//
// The fixed-point engines downscale by two bits per radix-4 stage to keep
// the wrap-around accumulators in range, so the forward output is the DFT
// divided by N. OutputShift reports the total shift (2*log4(N)); callers
// that need unit-gain results upscale by that amount:
//
//	N     stages  shift  Q31 output format
//	16    2       4      5.27
//	64    3       6      7.25
//	256   4       8      9.23
//	1024  5       10     11.21
//	4096  6       12     13.19
//
// The inverse engines share the per-stage scaling, so inverse(forward(x))
// reproduces x >> OutputShift for the fixed formats. The float engines
// carry no scaling; their inverse folds the 1/N normalization into the
// last stage, making the float round trip unit gain.
//
// Fixed-point arithmetic wraps rather than saturates inside the butterfly
// stages; inputs must respect the documented dynamic range or the output
// is silently distorted.
//
// The remaining kernels (vector arithmetic, complex math, statistics, fast
// math, format conversion) are single-pass loops over caller-owned slices
// with the Q-format of every intermediate documented per function.
package qdsp
