package qdsp

import (
	"github.com/dspkit/qdsp/internal/cpu"
	"github.com/dspkit/qdsp/internal/fft"
)

// Supported transform length bounds. Valid lengths are the powers of 4 in
// [MinLen, MaxLen]: 16, 64, 256, 1024, 4096.
const (
	MinLen = fft.MinLen
	MaxLen = fft.MaxLen
)

// OutputShift returns the number of bits a length-n fixed-point transform
// scales its output down relative to a unit-gain DFT (2 bits per radix-4
// stage, so 2*log4(n)). Callers compensate by shifting left after the
// transform, or by folding the factor into later processing.
func OutputShift(n int) int {
	return fft.OutputShift(n)
}

// validateLen rejects lengths the radix-4 engines cannot run. Doing this
// once at construction replaces the original's silent-garbage behavior for
// malformed configurations with an explicit error.
func validateLen(fftLen int) error {
	if fftLen < fft.MinLen || fftLen > fft.MaxLen || !fft.IsPowerOf4(fftLen) {
		return ErrInvalidLength
	}

	return nil
}

// CFFTQ31 is an immutable descriptor for a Q31 complex FFT/IFFT. It bundles
// the transform length, the shared twiddle table and its index stride, the
// direction flag, and the bit-reversal configuration. One descriptor may
// serve any number of concurrent Transform calls on independent buffers.
type CFFTQ31 struct {
	fftLen       int
	twiddle      []int32
	twidCoefMod  int
	bitRevTable  []uint16
	bitRevFactor int
	engine       fft.EngineQ31
	inverse      bool
	bitReverse   bool
}

// NewCFFTQ31 builds a Q31 transform descriptor. inverse selects the IFFT
// butterfly; bitReverse enables the output reordering pass, which callers
// skip when the consumer accepts bit-reversed order (convolution, for
// instance). fftLen must be a power of 4 in [MinLen, MaxLen].
func NewCFFTQ31(fftLen int, inverse, bitReverse bool) (*CFFTQ31, error) {
	if err := validateLen(fftLen); err != nil {
		return nil, err
	}

	return &CFFTQ31{
		fftLen:       fftLen,
		twiddle:      fft.TwiddleQ31(),
		twidCoefMod:  fft.MaxLen / fftLen,
		bitRevTable:  fft.BitRevTable(fftLen),
		bitRevFactor: 1,
		engine:       fft.SelectEngines(cpu.DetectFeatures()).Q31,
		inverse:      inverse,
		bitReverse:   bitReverse,
	}, nil
}

// Len returns the transform length N.
func (s *CFFTQ31) Len() int { return s.fftLen }

// OutputShift returns the fixed-point scale-down of this transform's
// output, in bits.
func (s *CFFTQ31) OutputShift() int { return fft.OutputShift(s.fftLen) }

// Transform runs the configured transform in place over buf, which holds
// N complex samples as 2*N interleaved (real, imag) Q31 values. The buffer
// must not be shared with a concurrent call.
func (s *CFFTQ31) Transform(buf []int32) error {
	if buf == nil {
		return ErrNilSlice
	}
	if len(buf) != 2*s.fftLen {
		return ErrLengthMismatch
	}

	dir := fft.Forward
	if s.inverse {
		dir = fft.Inverse
	}
	s.engine(buf, s.fftLen, s.twiddle, s.twidCoefMod, dir)

	if s.bitReverse {
		fft.BitReverse(buf, s.bitRevTable, s.bitRevFactor)
	}

	return nil
}

// CFFTQ15 is the Q15 counterpart of CFFTQ31: same structure, same scaling
// discipline at half width.
type CFFTQ15 struct {
	fftLen       int
	twiddle      []int16
	twidCoefMod  int
	bitRevTable  []uint16
	bitRevFactor int
	engine       fft.EngineQ15
	inverse      bool
	bitReverse   bool
}

// NewCFFTQ15 builds a Q15 transform descriptor.
func NewCFFTQ15(fftLen int, inverse, bitReverse bool) (*CFFTQ15, error) {
	if err := validateLen(fftLen); err != nil {
		return nil, err
	}

	return &CFFTQ15{
		fftLen:       fftLen,
		twiddle:      fft.TwiddleQ15(),
		twidCoefMod:  fft.MaxLen / fftLen,
		bitRevTable:  fft.BitRevTable(fftLen),
		bitRevFactor: 1,
		engine:       fft.SelectEngines(cpu.DetectFeatures()).Q15,
		inverse:      inverse,
		bitReverse:   bitReverse,
	}, nil
}

// Len returns the transform length N.
func (s *CFFTQ15) Len() int { return s.fftLen }

// OutputShift returns the fixed-point scale-down of this transform's
// output, in bits.
func (s *CFFTQ15) OutputShift() int { return fft.OutputShift(s.fftLen) }

// Transform runs the configured transform in place over buf (2*N
// interleaved Q15 values).
func (s *CFFTQ15) Transform(buf []int16) error {
	if buf == nil {
		return ErrNilSlice
	}
	if len(buf) != 2*s.fftLen {
		return ErrLengthMismatch
	}

	dir := fft.Forward
	if s.inverse {
		dir = fft.Inverse
	}
	s.engine(buf, s.fftLen, s.twiddle, s.twidCoefMod, dir)

	if s.bitReverse {
		fft.BitReverse(buf, s.bitRevTable, s.bitRevFactor)
	}

	return nil
}

// CFFTF32 is the float32 transform descriptor. The float engines carry no
// fixed-point scaling; the inverse is normalized by 1/N internally, so a
// forward/inverse round trip is unit gain.
type CFFTF32 struct {
	fftLen       int
	twiddle      []float32
	twidCoefMod  int
	bitRevTable  []uint16
	bitRevFactor int
	engine       fft.EngineF32
	inverse      bool
	bitReverse   bool
}

// NewCFFTF32 builds a float32 transform descriptor.
func NewCFFTF32(fftLen int, inverse, bitReverse bool) (*CFFTF32, error) {
	if err := validateLen(fftLen); err != nil {
		return nil, err
	}

	return &CFFTF32{
		fftLen:       fftLen,
		twiddle:      fft.TwiddleF32(),
		twidCoefMod:  fft.MaxLen / fftLen,
		bitRevTable:  fft.BitRevTable(fftLen),
		bitRevFactor: 1,
		engine:       fft.SelectEngines(cpu.DetectFeatures()).F32,
		inverse:      inverse,
		bitReverse:   bitReverse,
	}, nil
}

// Len returns the transform length N.
func (s *CFFTF32) Len() int { return s.fftLen }

// Transform runs the configured transform in place over buf (2*N
// interleaved float32 values).
func (s *CFFTF32) Transform(buf []float32) error {
	if buf == nil {
		return ErrNilSlice
	}
	if len(buf) != 2*s.fftLen {
		return ErrLengthMismatch
	}

	dir := fft.Forward
	if s.inverse {
		dir = fft.Inverse
	}
	s.engine(buf, s.fftLen, s.twiddle, s.twidCoefMod, dir)

	if s.bitReverse {
		fft.BitReverse(buf, s.bitRevTable, s.bitRevFactor)
	}

	return nil
}

// CFFTF64 is the float64 transform descriptor.
type CFFTF64 struct {
	fftLen       int
	twiddle      []float64
	twidCoefMod  int
	bitRevTable  []uint16
	bitRevFactor int
	engine       fft.EngineF64
	inverse      bool
	bitReverse   bool
}

// NewCFFTF64 builds a float64 transform descriptor.
func NewCFFTF64(fftLen int, inverse, bitReverse bool) (*CFFTF64, error) {
	if err := validateLen(fftLen); err != nil {
		return nil, err
	}

	return &CFFTF64{
		fftLen:       fftLen,
		twiddle:      fft.TwiddleF64(),
		twidCoefMod:  fft.MaxLen / fftLen,
		bitRevTable:  fft.BitRevTable(fftLen),
		bitRevFactor: 1,
		engine:       fft.SelectEngines(cpu.DetectFeatures()).F64,
		inverse:      inverse,
		bitReverse:   bitReverse,
	}, nil
}

// Len returns the transform length N.
func (s *CFFTF64) Len() int { return s.fftLen }

// Transform runs the configured transform in place over buf (2*N
// interleaved float64 values).
func (s *CFFTF64) Transform(buf []float64) error {
	if buf == nil {
		return ErrNilSlice
	}
	if len(buf) != 2*s.fftLen {
		return ErrLengthMismatch
	}

	dir := fft.Forward
	if s.inverse {
		dir = fft.Inverse
	}
	s.engine(buf, s.fftLen, s.twiddle, s.twidCoefMod, dir)

	if s.bitReverse {
		fft.BitReverse(buf, s.bitRevTable, s.bitRevFactor)
	}

	return nil
}
