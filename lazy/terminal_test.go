package lazy_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lazyseq/lazy"
)

func TestCountFirstLast(t *testing.T) {
	s := lazy.Range(1, 6, 1).Filter(func(v int) bool { return v != 3 })

	n, err := s.Count(isOdd)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	first, ok, err := s.First()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, first)

	last, ok, err := s.Last()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, last)

	_, ok, err = lazy.Empty[int]().First()
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = lazy.Empty[int]().Last()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatching(t *testing.T) {
	positive := func(v int) bool { return v > 0 }
	tests := []struct {
		name                string
		seq                 *lazy.Seq[int]
		someMatch, allMatch bool
	}{
		{"all positive", lazy.Of(1, 2, 3), true, true},
		{"some positive", lazy.Of(-1, 2), true, false},
		{"none positive", lazy.Of(-1, -2), false, false},
		{"empty", lazy.Empty[int](), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.seq.AnyMatch(positive)
			require.NoError(t, err)
			assert.Equal(t, tt.someMatch, got)

			got, err = tt.seq.AllMatch(positive)
			require.NoError(t, err)
			assert.Equal(t, tt.allMatch, got)
		})
	}
}

func TestSumMinMax(t *testing.T) {
	sum, err := lazy.Sum(lazy.Map(lazy.Range(1, 5, 1), func(v int) float64 { return float64(v) / 2 }))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, sum, 1e-9)

	lo, hi, ok, err := lazy.MinMax(lazy.Of("pear", "apple", "quince"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "apple", lo)
	assert.Equal(t, "quince", hi)

	_, _, ok, err = lazy.MinMax(lazy.Empty[int]())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContainsAllLastIndexOf(t *testing.T) {
	s := lazy.Of("a", "b", "a", "c")

	tests := []struct {
		values []string
		want   bool
	}{
		{[]string{"c", "a"}, true},
		{[]string{"a", "z"}, false},
		{nil, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.values), func(t *testing.T) {
			got, err := lazy.ContainsAll(s, tt.values...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	idx, err := lazy.LastIndexOf(s, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	idx, err = lazy.LastIndexOf(s, "z")
	require.NoError(t, err)
	assert.Equal(t, -1, idx)
}

func TestTryFold(t *testing.T) {
	errTooBig := errors.New("too big")
	add := func(acc, v int) (int, error) {
		if v > 3 {
			return acc, errTooBig
		}
		return acc + v, nil
	}

	sum, err := lazy.TryFold(lazy.Range(1, 4, 1), 0, add)
	require.NoError(t, err)
	assert.Equal(t, 6, sum)

	sum, err = lazy.TryFold(lazy.Range(1, 10, 1), 0, add)
	assert.ErrorIs(t, err, errTooBig)
	assert.Equal(t, 6, sum, "the accumulation before the failing element is returned")
}

func TestRepeat(t *testing.T) {
	s := lazy.Repeat("x", 3)
	assert.Equal(t, []string{"x", "x", "x"}, mustSlice(t, s))
	assert.Equal(t, []string{"x", "x"}, mustSlice(t, s.Take(2)), "the source is reusable")

	n, err := lazy.Repeat(1, 0).Len()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTerminalsReportFailures(t *testing.T) {
	boom := errors.New("boom")
	failing := func() *lazy.Seq[int] {
		return lazy.TryMap(lazy.Of(1, 2), func(int) (int, error) { return 0, boom })
	}

	_, err := failing().Count(isOdd)
	assert.ErrorIs(t, err, boom)
	_, _, err = failing().First()
	assert.ErrorIs(t, err, boom)
	_, _, err = failing().Last()
	assert.ErrorIs(t, err, boom)
	_, err = failing().AnyMatch(isOdd)
	assert.ErrorIs(t, err, boom)
	_, err = failing().AllMatch(isOdd)
	assert.ErrorIs(t, err, boom)
	_, err = lazy.Sum(failing())
	assert.ErrorIs(t, err, boom)
	_, _, _, err = lazy.MinMax(failing())
	assert.ErrorIs(t, err, boom)
	_, err = lazy.ContainsAll(failing(), 1)
	assert.ErrorIs(t, err, boom)
	_, err = lazy.LastIndexOf(failing(), 1)
	assert.ErrorIs(t, err, boom)
}
