package qdsp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddF32(t *testing.T) {
	t.Parallel()

	a := []float32{1, -2.5, 0, 1e6}
	b := []float32{0.5, 2.5, -3, 1}
	dst := make([]float32, len(a))

	AddF32(a, b, dst)
	assert.Equal(t, []float32{1.5, 0, -3, 1e6 + 1}, dst)
}

func TestSubQ7Saturates(t *testing.T) {
	t.Parallel()

	a := []int8{100, -100, 5, 127, -128}
	b := []int8{-100, 100, 3, -1, 1}
	dst := make([]int8, len(a))

	SubQ7(a, b, dst)
	assert.Equal(t, []int8{127, -128, 2, 127, -128}, dst)
}

func TestOffsetQ7(t *testing.T) {
	t.Parallel()

	src := []int8{0, 10, 120, -120}
	dst := make([]int8, len(src))

	OffsetQ7(src, 20, dst)
	assert.Equal(t, []int8{20, 30, 127, -100}, dst)

	OffsetQ7(src, -20, dst)
	assert.Equal(t, []int8{-20, -10, 100, -128}, dst)
}

func TestDotProdF32(t *testing.T) {
	t.Parallel()

	a := []float32{1, 2, 3}
	b := []float32{4, -5, 6}
	assert.InDelta(t, 12, float64(DotProdF32(a, b)), 1e-6)

	assert.Equal(t, float32(0), DotProdF32(nil, nil))
}

func TestDotProdQ15(t *testing.T) {
	t.Parallel()

	// Two full-scale negative samples: (-0x8000)^2 accumulated twice.
	a := []int16{-0x8000, -0x8000}
	assert.Equal(t, int64(2*0x8000*0x8000), DotProdQ15(a, a))

	b := []int16{0x4000, -0x4000, 0x1000}
	c := []int16{0x4000, 0x4000, -0x2000}
	want := int64(0x4000*0x4000) - int64(0x4000*0x4000) - int64(0x1000*0x2000)
	assert.Equal(t, want, DotProdQ15(b, c))
}

func TestDotProdQ15NoOverflow(t *testing.T) {
	t.Parallel()

	// A long full-scale vector stays well inside the 34.30 accumulator.
	rng := rand.New(rand.NewSource(5))
	n := 1 << 16
	a := make([]int16, n)
	for i := range a {
		if rng.Intn(2) == 0 {
			a[i] = -0x8000
		} else {
			a[i] = 0x7FFF
		}
	}

	got := DotProdQ15(a, a)
	assert.Greater(t, got, int64(0))
	assert.LessOrEqual(t, got, int64(n)*0x8000*0x8000)
}
