package qdsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClipQ63ToQ31(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int32(0), clipQ63ToQ31(0))
	assert.Equal(t, int32(0x7FFFFFFF), clipQ63ToQ31(0x7FFFFFFF))
	assert.Equal(t, int32(0x7FFFFFFF), clipQ63ToQ31(1<<40))
	assert.Equal(t, int32(-0x80000000), clipQ63ToQ31(-0x80000000))
	assert.Equal(t, int32(-0x80000000), clipQ63ToQ31(-(1 << 40)))
}

func TestSsat16(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int16(1234), ssat16(1234))
	assert.Equal(t, int16(0x7FFF), ssat16(0x8000))
	assert.Equal(t, int16(-0x8000), ssat16(-0x8001))
}

func TestSsat8(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int8(-5), ssat8(-5))
	assert.Equal(t, int8(127), ssat8(128))
	assert.Equal(t, int8(-128), ssat8(-129))
}

func TestQ31ToQ15(t *testing.T) {
	t.Parallel()

	src := []int32{0x7FFFFFFF, -0x80000000, 0x00018000, -1}
	dst := make([]int16, len(src))

	Q31ToQ15(src, dst)
	assert.Equal(t, []int16{0x7FFF, -0x8000, 1, -1}, dst)
}
