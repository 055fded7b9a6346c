package seqs

import (
	"iter"
	"slices"
)

// Combinations yields every k-element selection of seq in index order, each as a
// fresh slice. k == 0 yields one empty selection; k above the length yields nothing.
// seq is buffered completely.
func Combinations[T any](seq iter.Seq[T], k int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if k < 0 {
			return
		}
		combine(slices.Collect(seq), k, yield)
	}
}

// AllCombinations yields the selections of every size from 0 to the length of seq,
// smaller sizes first. seq is buffered completely.
func AllCombinations[T any](seq iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		vals := slices.Collect(seq)
		for k := 0; k <= len(vals); k++ {
			if !combine(vals, k, yield) {
				return
			}
		}
	}
}

// combine yields the k-element selections of vals and reports whether the consumer
// wants more.
func combine[T any](vals []T, k int, yield func([]T) bool) bool {
	n := len(vals)
	if k > n {
		return true
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !yield(pick(vals, idx)) {
			return false
		}
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return true
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Permutations yields every ordering of seq, by position, in lexicographic order of
// the positions. Equal elements at different positions give repeated orderings. An
// empty seq yields one empty ordering.
func Permutations[T any](seq iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		vals := slices.Collect(seq)
		idx := make([]int, len(vals))
		for i := range idx {
			idx[i] = i
		}
		for {
			if !yield(pick(vals, idx)) {
				return
			}
			if !nextPermutation(idx) {
				return
			}
		}
	}
}

func pick[T any](vals []T, idx []int) []T {
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = vals[j]
	}
	return out
}

func nextPermutation(idx []int) bool {
	i := len(idx) - 2
	for i >= 0 && idx[i] >= idx[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(idx) - 1
	for idx[j] <= idx[i] {
		j--
	}
	idx[i], idx[j] = idx[j], idx[i]
	slices.Reverse(idx[i+1:])
	return true
}
