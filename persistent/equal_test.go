package persistent_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lazyseq/persistent"
)

func TestEqual_IgnoresRepresentation(t *testing.T) {
	s := persistent.StackOf(1, 2, 3)
	v := persistent.VectorOf(1, 2, 3)

	assert.True(t, persistent.Equal[int](s, v))
	assert.Equal(t, persistent.Hash[int](s), persistent.Hash[int](v))

	assert.False(t, persistent.Equal[int](s, persistent.VectorOf(1, 2)))
	assert.False(t, persistent.Equal[int](s, persistent.VectorOf(1, 2, 4)))
	assert.NotEqual(t, persistent.Hash[int](s), persistent.Hash[int](persistent.VectorOf(3, 2, 1)))
	assert.True(t, persistent.Equal[int](persistent.Stack[int]{}, persistent.Vector[int]{}))
}

func TestEqualFunc(t *testing.T) {
	a := persistent.VectorOf("A", "b")
	b := persistent.StackOf("a", "B")
	assert.True(t, persistent.EqualFunc[string](a, b, strings.EqualFold))
	assert.False(t, persistent.Equal[string](a, b))
}

func TestHash_StableAcrossVersions(t *testing.T) {
	v := persistent.VectorOf(1, 2)
	before := persistent.Hash[int](v)
	_ = v.Push(persistent.Back, 3)
	assert.Equal(t, before, persistent.Hash[int](v))
}

func TestHash_SignedZerosHashEqually(t *testing.T) {
	negZero := math.Copysign(0, -1)
	a := persistent.VectorOf(1.5, 0.0)
	b := persistent.StackOf(1.5, negZero)
	assert.True(t, persistent.Equal[float64](a, b))
	assert.Equal(t, persistent.Hash[float64](a), persistent.Hash[float64](b))

	a32 := persistent.VectorOf(float32(0))
	b32 := persistent.VectorOf(float32(negZero))
	assert.True(t, persistent.Equal[float32](a32, b32))
	assert.Equal(t, persistent.Hash[float32](a32), persistent.Hash[float32](b32))
}
