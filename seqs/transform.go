package seqs

import (
	"iter"
	"math/rand/v2"
	"slices"
)

func FlatMap[S any, T any](source iter.Seq[S], f func(S) iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s := range source {
			for t := range f(s) {
				if !yield(t) {
					return
				}
			}
		}
	}
}

func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
		}
	}
}

type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip pairs elements of seq1 and seq2 and stops at the end of the shorter one.
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for v1 := range seq1 {
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{v1, v2}) {
				return
			}
		}
	}
}

func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := 0
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Chunk splits the input sequence into chunks of the specified size.
// The last chunk may be smaller if there are not enough elements.
func Chunk[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 {
			return
		}

		batch := make([]T, 0, size)
		for v := range seq {
			batch = append(batch, v)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, size)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}
}

// GroupWhile collects consecutive elements into a group while predicate holds.
// The element that fails the predicate closes the current group.
func GroupWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		var batch []T
		for v := range seq {
			batch = append(batch, v)
			if !predicate(v) {
				if !yield(batch) {
					return
				}
				batch = nil
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}
}

// GroupBy groups elements by key, ordered by the first appearance of each key.
// It consumes seq completely before yielding.
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[Pair[K, []T]] {
	return func(yield func(Pair[K, []T]) bool) {
		index := make(map[K]int)
		var groups []Pair[K, []T]
		for v := range seq {
			k := key(v)
			i, ok := index[k]
			if !ok {
				i = len(groups)
				index[k] = i
				groups = append(groups, Pair[K, []T]{V1: k})
			}
			groups[i].V2 = append(groups[i].V2, v)
		}
		for _, g := range groups {
			if !yield(g) {
				return
			}
		}
	}
}

// Window creates a sliding window over the input sequence.
// size: window size.
// step: step size for each slide.
//
// Scenario 1 (step < size): overlapping windows. For example, [1,2,3], [2,3,4] (size=3, step=1)
// Scenario 2 (step == size): equivalent to Chunk.
// Scenario 3 (step > size): gapped windows (some data is skipped in between).
func Window[T any](seq iter.Seq[T], size, step int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 || step <= 0 {
			return
		}

		buffer := make([]T, 0, size)
		skipCount := 0

		for v := range seq {
			if skipCount > 0 {
				skipCount--
				continue
			}

			buffer = append(buffer, v)
			if len(buffer) < size {
				continue
			}

			output := make([]T, size)
			copy(output, buffer)
			if !yield(output) {
				return
			}

			if step < size {
				// keep the overlapping tail, copy handles the overlap
				copy(buffer, buffer[step:])
				buffer = buffer[:size-step]
			} else {
				buffer = buffer[:0]
				skipCount = step - size
			}
		}
	}
}

// DistinctBy yields the first element seen for every key.
// Memory usage is proportional to the number of unique keys.
func DistinctBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[K]struct{})
		for v := range seq {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Distinct returns a sequence that yields only unique elements.
func Distinct[T comparable](seq iter.Seq[T]) iter.Seq[T] {
	return DistinctBy(seq, func(v T) T { return v })
}

// Peek performs the provided action on each element of the sequence without modifying it.
func Peek[T any](seq iter.Seq[T], action func(T)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			action(v)
			if !yield(v) {
				return
			}
		}
	}
}

// Scan is similar to Reduce, but it yields the accumulated result at each step.
func Scan[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		acc := initial
		for v := range seq {
			acc = reducer(acc, v)
			if !yield(acc) {
				return
			}
		}
	}
}

// ScanLeft is Scan preceded by the initial value.
func ScanLeft[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		if !yield(initial) {
			return
		}
		for acc := range Scan(seq, initial, reducer) {
			if !yield(acc) {
				return
			}
		}
	}
}

// ScanRight accumulates from the end: for [a b c] it yields
// [f(a, f(b, f(c, z))) f(b, f(c, z)) f(c, z) z]. seq is buffered completely.
func ScanRight[T, R any](seq iter.Seq[T], initial R, reducer func(T, R) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		vals := slices.Collect(seq)
		out := make([]R, len(vals)+1)
		out[len(vals)] = initial
		for i := len(vals) - 1; i >= 0; i-- {
			out[i] = reducer(vals[i], out[i+1])
		}
		for _, r := range out {
			if !yield(r) {
				return
			}
		}
	}
}

// Reverse yields the elements of seq backwards. seq is buffered completely.
func Reverse[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		vals := slices.Collect(seq)
		for _, v := range slices.Backward(vals) {
			if !yield(v) {
				return
			}
		}
	}
}

// Sorted yields the elements of seq in stable order under compare.
func Sorted[T any](seq iter.Seq[T], compare func(a, b T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		vals := slices.Collect(seq)
		slices.SortStableFunc(vals, compare)
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}

// Shuffle yields the elements of seq in an order drawn from rng.
func Shuffle[T any](seq iter.Seq[T], rng *rand.Rand) iter.Seq[T] {
	return func(yield func(T) bool) {
		vals := slices.Collect(seq)
		rng.Shuffle(len(vals), func(i, j int) {
			vals[i], vals[j] = vals[j], vals[i]
		})
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}

// Cycle yields seq times times. seq is iterated once and replayed from a buffer, so
// single-use sequences are safe.
func Cycle[T any](seq iter.Seq[T], times int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if times <= 0 {
			return
		}
		var vals []T
		for v := range seq {
			vals = append(vals, v)
			if !yield(v) {
				return
			}
		}
		for range times - 1 {
			for _, v := range vals {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Intersperse places sep between consecutive elements.
func Intersperse[T any](seq iter.Seq[T], sep T) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for v := range seq {
			if !first && !yield(sep) {
				return
			}
			first = false
			if !yield(v) {
				return
			}
		}
	}
}

// CycleWhile repeats seq for as long as pred holds, ending before the first element
// that fails it. An empty seq yields nothing; a pred that always holds never ends.
func CycleWhile[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		var vals []T
		for v := range seq {
			if !pred(v) {
				return
			}
			vals = append(vals, v)
			if !yield(v) {
				return
			}
		}
		if len(vals) == 0 {
			return
		}
		for {
			for _, v := range vals {
				if !pred(v) || !yield(v) {
					return
				}
			}
		}
	}
}

// SwitchIfEmpty yields seq, or every element of fallback when seq is empty.
// fallback is not ranged over otherwise.
func SwitchIfEmpty[T any](seq, fallback iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		empty := true
		for v := range seq {
			empty = false
			if !yield(v) {
				return
			}
		}
		if !empty {
			return
		}
		for v := range fallback {
			if !yield(v) {
				return
			}
		}
	}
}

// DefaultIfEmpty yields seq, or the value produced by fallback when seq is empty.
func DefaultIfEmpty[T any](seq iter.Seq[T], fallback func() T) iter.Seq[T] {
	return func(yield func(T) bool) {
		empty := true
		for v := range seq {
			empty = false
			if !yield(v) {
				return
			}
		}
		if empty {
			yield(fallback())
		}
	}
}
