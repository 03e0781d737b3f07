package fft

import "github.com/dspkit/qdsp/internal/cpu"

// EngineQ31 is a radix-4 butterfly engine over interleaved Q31 samples.
type EngineQ31 func(src []int32, fftLen int, coef []int32, twidMod int, dir Direction)

// EngineQ15 is a radix-4 butterfly engine over interleaved Q15 samples.
type EngineQ15 func(src []int16, fftLen int, coef []int16, twidMod int, dir Direction)

// EngineF32 is a radix-4 butterfly engine over interleaved float32 samples.
type EngineF32 func(src []float32, fftLen int, coef []float32, twidMod int, dir Direction)

// EngineF64 is a radix-4 butterfly engine over interleaved float64 samples.
type EngineF64 func(src []float64, fftLen int, coef []float64, twidMod int, dir Direction)

// Engines groups the butterfly engines for all sample formats.
type Engines struct {
	Q31 EngineQ31
	Q15 EngineQ15
	F32 EngineF32
	F64 EngineF64
}

// SelectEngines returns the engine set for the detected CPU features. The
// original library builds each kernel twice, scalar and vector-intrinsic,
// selected at compile time; this is the runtime equivalent of that seam.
func SelectEngines(feat cpu.Features) Engines {
	eng := Engines{
		Q31: Radix4Q31,
		Q15: Radix4Q15,
		F32: Radix4Float[float32],
		F64: Radix4Float[float64],
	}

	if feat.ForceGeneric {
		return eng
	}

	// No vector engines are registered yet; RVV and NEON variants overlay
	// the corresponding fields here once ported.
	return eng
}
