package qdsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRMSF32(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, math.Sqrt(12.5), float64(RMSF32([]float32{3, 4})), 1e-6)
	assert.InDelta(t, 0.25, float64(RMSF32([]float32{0.25, -0.25, 0.25, -0.25})), 1e-6)
	assert.Equal(t, float32(0), RMSF32([]float32{0, 0, 0}))
}

func TestRMSQ31(t *testing.T) {
	t.Parallel()

	// A constant 0.5 vector has RMS exactly 0.5.
	src := []int32{0x40000000, 0x40000000, 0x40000000, 0x40000000}
	assert.Equal(t, int32(0x40000000), RMSQ31(src))

	// Sign does not matter.
	src = []int32{0x40000000, -0x40000000}
	assert.Equal(t, int32(0x40000000), RMSQ31(src))

	assert.Equal(t, int32(0), RMSQ31([]int32{0, 0}))
}

func TestRMSQ15(t *testing.T) {
	t.Parallel()

	src := []int16{0x4000, -0x4000, 0x4000, -0x4000}
	assert.Equal(t, int16(0x4000), RMSQ15(src))
	assert.Equal(t, int16(0), RMSQ15([]int16{0}))
}

func TestPowerQ31(t *testing.T) {
	t.Parallel()

	v := int32(1 << 20)
	// (2^40) >> 14 per sample.
	assert.Equal(t, int64(3)<<26, PowerQ31([]int32{v, -v, v}))

	full := int64(0x7FFFFFFF)
	assert.Equal(t, (full*full)>>14, PowerQ31([]int32{0x7FFFFFFF}))
}

func TestPowerQ7(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int32(127*127+128*128), PowerQ7([]int8{127, -128}))
	assert.Equal(t, int32(0), PowerQ7(nil))
}

func TestMinQ31(t *testing.T) {
	t.Parallel()

	v, idx := MinQ31([]int32{5, -3, 9, -3, 0})
	assert.Equal(t, int32(-3), v)
	assert.Equal(t, 1, idx, "ties keep the first occurrence")

	v, idx = MinQ31([]int32{42})
	assert.Equal(t, int32(42), v)
	assert.Equal(t, 0, idx)

	v, idx = MinQ31([]int32{-0x80000000, 0x7FFFFFFF})
	assert.Equal(t, int32(-0x80000000), v)
	assert.Equal(t, 0, idx)
}

func TestStdF32(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, math.Sqrt(5.0/3.0), float64(StdF32([]float32{1, 2, 3, 4})), 1e-6)
	assert.Equal(t, float32(0), StdF32([]float32{7}))
	assert.InDelta(t, 0, float64(StdF32([]float32{2, 2, 2, 2})), 1e-6)
}
