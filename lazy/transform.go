package lazy

import (
	"cmp"
	"iter"
	"reflect"
	"slices"

	"lazyseq/persistent"
	"lazyseq/pipeline"
	"lazyseq/seqs"
	"lazyseq/sliceutil"
)

func predOf[T any](pred func(T) bool) func(any) (bool, error) {
	return func(v any) (bool, error) {
		return pred(cast[T](v)), nil
	}
}

func notPredOf[T any](pred func(T) bool) func(any) (bool, error) {
	return func(v any) (bool, error) {
		return !pred(cast[T](v)), nil
	}
}

func tryPredOf[T any](pred func(T) (bool, error)) func(any) (bool, error) {
	return func(v any) (bool, error) {
		return pred(cast[T](v))
	}
}

func packSlice[T any](_ any, members []any) any {
	out := make([]T, len(members))
	for i, m := range members {
		out[i] = cast[T](m)
	}
	return out
}

// valuesOf resolves other when the step runs, so other may itself be lazy.
func valuesOf[T any](other *Seq[T]) func() (iter.Seq[any], error) {
	return func() (iter.Seq[any], error) {
		vals, err := other.Values()
		if err != nil {
			return nil, err
		}
		return erase(vals), nil
	}
}

func constValues[T any](values []T) func() (iter.Seq[any], error) {
	values = slices.Clone(values)
	return func() (iter.Seq[any], error) {
		return erase(slices.Values(values)), nil
	}
}

func (s *Seq[T]) Filter(pred func(T) bool) *Seq[T] {
	return s.then(pipeline.Filter(predOf(pred)))
}

func (s *Seq[T]) FilterNot(pred func(T) bool) *Seq[T] {
	return s.then(pipeline.Filter(notPredOf(pred)))
}

// TryFilter keeps elements satisfying pred. The first error fails the observation.
func (s *Seq[T]) TryFilter(pred func(T) (bool, error)) *Seq[T] {
	return s.then(pipeline.Filter(tryPredOf(pred)))
}

func (s *Seq[T]) Take(n int) *Seq[T] {
	return s.then(pipeline.Take(n))
}

func (s *Seq[T]) Drop(n int) *Seq[T] {
	return s.then(pipeline.Drop(n))
}

func (s *Seq[T]) TakeLast(n int) *Seq[T] {
	return s.then(pipeline.TakeLast(n))
}

func (s *Seq[T]) DropLast(n int) *Seq[T] {
	return s.then(pipeline.DropLast(n))
}

func (s *Seq[T]) TakeWhile(pred func(T) bool) *Seq[T] {
	return s.then(pipeline.TakeWhile(predOf(pred)))
}

func (s *Seq[T]) DropWhile(pred func(T) bool) *Seq[T] {
	return s.then(pipeline.DropWhile(predOf(pred)))
}

func (s *Seq[T]) TakeUntil(pred func(T) bool) *Seq[T] {
	return s.then(pipeline.TakeUntil(predOf(pred)))
}

func (s *Seq[T]) DropUntil(pred func(T) bool) *Seq[T] {
	return s.then(pipeline.DropUntil(predOf(pred)))
}

// SortFunc orders elements stably by compare. Followed by Take(n) only the n smallest
// elements are kept in memory.
func (s *Seq[T]) SortFunc(compare func(a, b T) int) *Seq[T] {
	return s.then(pipeline.Sort(func(a, b any) int {
		return compare(cast[T](a), cast[T](b))
	}))
}

// Shuffle permutes elements; equal seeds give equal permutations.
func (s *Seq[T]) Shuffle(seed uint64) *Seq[T] {
	return s.then(pipeline.Shuffle(seed))
}

func (s *Seq[T]) Reverse() *Seq[T] {
	return s.then(pipeline.Reverse())
}

// Cycle repeats the sequence times times.
func (s *Seq[T]) Cycle(times int) *Seq[T] {
	return s.then(pipeline.Cycle(times))
}

// CycleWhile repeats the sequence until the first element failing pred. pred sees
// every repetition, so it usually keeps state; one that always holds never ends.
func (s *Seq[T]) CycleWhile(pred func(T) bool) *Seq[T] {
	return s.then(pipeline.CycleWhile(predOf(pred)))
}

// CycleUntil repeats the sequence until the first element satisfying pred.
func (s *Seq[T]) CycleUntil(pred func(T) bool) *Seq[T] {
	return s.then(pipeline.CycleUntil(predOf(pred)))
}

func (s *Seq[T]) Intersperse(sep T) *Seq[T] {
	return s.then(pipeline.Intersperse(sep))
}

// Peek calls action for every element passing through when the sequence materializes.
func (s *Seq[T]) Peek(action func(T)) *Seq[T] {
	return s.then(pipeline.Peek(func(v any) { action(cast[T](v)) }))
}

// OnEmpty yields v instead of an empty result.
func (s *Seq[T]) OnEmpty(v T) *Seq[T] {
	return s.then(pipeline.OnEmpty(func() any { return v }))
}

// OnEmptyGet yields supply() instead of an empty result.
func (s *Seq[T]) OnEmptyGet(supply func() T) *Seq[T] {
	return s.then(pipeline.OnEmpty(func() any { return supply() }))
}

// OnEmptySwitch yields the elements of supply() instead of an empty result. supply
// is only called when the sequence turns out to be empty.
func (s *Seq[T]) OnEmptySwitch(supply func() *Seq[T]) *Seq[T] {
	return s.then(pipeline.OnEmptySwitch(func() (iter.Seq[any], error) {
		return valuesOf(supply())()
	}))
}

// Append adds values after the last element, regardless of the representation.
func (s *Seq[T]) Append(values ...T) *Seq[T] {
	return s.then(pipeline.Concat(constValues(values)))
}

// Prepend adds values before the first element, keeping their order.
func (s *Seq[T]) Prepend(values ...T) *Seq[T] {
	return s.then(pipeline.Prepend(constValues(values)))
}

// MinusFirst removes the first element satisfying pred.
func (s *Seq[T]) MinusFirst(pred func(T) bool) *Seq[T] {
	return s.then(pipeline.RemoveFirst(predOf(pred)))
}

func Map[T, R any](s *Seq[T], fn func(T) R, opts ...Option[R]) *Seq[R] {
	return derive(s, pipeline.Map(func(v any) (any, error) {
		return fn(cast[T](v)), nil
	}), opts)
}

// TryMap transforms elements with a fallible function. The first error fails the
// observation that runs it.
func TryMap[T, R any](s *Seq[T], fn func(T) (R, error), opts ...Option[R]) *Seq[R] {
	return derive(s, pipeline.Map(func(v any) (any, error) {
		return fn(cast[T](v))
	}), opts)
}

func FlatMap[T, R any](s *Seq[T], fn func(T) iter.Seq[R], opts ...Option[R]) *Seq[R] {
	return derive(s, pipeline.FlatMap(func(v any) (iter.Seq[any], error) {
		return erase(fn(cast[T](v))), nil
	}), opts)
}

// Grouped splits the sequence into groups of size elements; the last may be shorter.
func Grouped[T any](s *Seq[T], size int, opts ...Option[[]T]) *Seq[[]T] {
	return derive(s, pipeline.Group(size, packSlice[T]), opts)
}

// GroupedInto is Grouped with every group built by c instead of as a slice.
func GroupedInto[T any](s *Seq[T], size int, c persistent.Collector[T], opts ...Option[persistent.Snapshot[T]]) *Seq[persistent.Snapshot[T]] {
	efficient := s.EfficientOps()
	return derive(s, pipeline.Group(size, func(_ any, members []any) any {
		return c.Collect(seqs.Map(slices.Values(members), cast[T]), efficient)
	}), opts)
}

// GroupedWhile closes a group after the first element failing pred.
func GroupedWhile[T any](s *Seq[T], pred func(T) bool, opts ...Option[[]T]) *Seq[[]T] {
	return derive(s, pipeline.GroupWhile(pipeline.While, predOf(pred), packSlice[T]), opts)
}

// GroupedUntil closes a group after the first element satisfying pred.
func GroupedUntil[T any](s *Seq[T], pred func(T) bool, opts ...Option[[]T]) *Seq[[]T] {
	return derive(s, pipeline.GroupWhile(pipeline.Until, predOf(pred), packSlice[T]), opts)
}

// Grouping is one group produced by GroupBy.
type Grouping[K comparable, T any] struct {
	Key    K
	Values []T
}

// GroupBy groups elements by key, in the order each key first appears.
func GroupBy[T any, K comparable](s *Seq[T], key func(T) K, opts ...Option[Grouping[K, T]]) *Seq[Grouping[K, T]] {
	return derive(s, pipeline.GroupBy(
		func(v any) any { return key(cast[T](v)) },
		func(k any, members []any) any {
			return Grouping[K, T]{Key: cast[K](k), Values: packSlice[T](nil, members).([]T)}
		},
	), opts)
}

// Sliding yields every full window of size elements, starting one every step elements.
func Sliding[T any](s *Seq[T], size, step int, opts ...Option[[]T]) *Seq[[]T] {
	return derive(s, pipeline.Window(size, step, packSlice[T]), opts)
}

// Combinations yields every k-element selection in index order. k == 0 yields one
// empty selection; k above the length yields nothing.
func Combinations[T any](s *Seq[T], k int, opts ...Option[[]T]) *Seq[[]T] {
	return derive(s, pipeline.Combinations(k, packSlice[T]), opts)
}

// AllCombinations yields the selections of every size from 0 to the length, smaller
// sizes first.
func AllCombinations[T any](s *Seq[T], opts ...Option[[]T]) *Seq[[]T] {
	return derive(s, pipeline.AllCombinations(packSlice[T]), opts)
}

// Permutations yields every ordering by position. Equal elements at different
// positions give repeated orderings.
func Permutations[T any](s *Seq[T], opts ...Option[[]T]) *Seq[[]T] {
	return derive(s, pipeline.Permutations(packSlice[T]), opts)
}

// Zip pairs elements with other, stopping at the shorter sequence.
func Zip[T, U any](s *Seq[T], other *Seq[U], opts ...Option[seqs.Pair[T, U]]) *Seq[seqs.Pair[T, U]] {
	return ZipWith(s, other, func(a T, b U) seqs.Pair[T, U] {
		return seqs.Pair[T, U]{V1: a, V2: b}
	}, opts...)
}

func ZipWith[T, U, R any](s *Seq[T], other *Seq[U], combine func(T, U) R, opts ...Option[R]) *Seq[R] {
	return derive(s, pipeline.Zip(valuesOf(other), func(a, b any) any {
		return combine(cast[T](a), cast[U](b))
	}), opts)
}

// ZipWithIndex pairs every element with its position.
func ZipWithIndex[T any](s *Seq[T], opts ...Option[seqs.Pair[T, int]]) *Seq[seqs.Pair[T, int]] {
	return derive(s, pipeline.Enumerate(func(i, v any) any {
		return seqs.Pair[T, int]{V1: cast[T](v), V2: i.(int)}
	}), opts)
}

// ScanLeft yields seed followed by every running accumulation.
func ScanLeft[T, R any](s *Seq[T], seed R, fn func(R, T) R, opts ...Option[R]) *Seq[R] {
	return derive(s, pipeline.ScanLeft(seed, func(acc, v any) any {
		return fn(cast[R](acc), cast[T](v))
	}), opts)
}

// ScanRight yields the accumulations from the right: [1 2 3] with seed 0 and + gives
// [6 5 3 0].
func ScanRight[T, R any](s *Seq[T], seed R, fn func(T, R) R, opts ...Option[R]) *Seq[R] {
	return derive(s, pipeline.ScanRight(seed, func(v, acc any) any {
		return fn(cast[T](v), cast[R](acc))
	}), opts)
}

func Distinct[T comparable](s *Seq[T]) *Seq[T] {
	return s.then(pipeline.Distinct(func(v any) any { return v }))
}

// DistinctBy keeps the first element for every key.
func DistinctBy[T any, K comparable](s *Seq[T], key func(T) K) *Seq[T] {
	return s.then(pipeline.Distinct(func(v any) any { return key(cast[T](v)) }))
}

// Sorted orders elements by their natural order.
func Sorted[T cmp.Ordered](s *Seq[T]) *Seq[T] {
	return s.SortFunc(cmp.Compare[T])
}

// Minus removes the first occurrence of v.
func Minus[T comparable](s *Seq[T], v T) *Seq[T] {
	return s.MinusFirst(func(x T) bool { return x == v })
}

// MinusAll removes every occurrence of each of values.
func MinusAll[T comparable](s *Seq[T], values ...T) *Seq[T] {
	exclude := sliceutil.SetOf(slices.Values(values))
	return s.FilterNot(exclude.Has)
}

// RetainAll keeps only the elements that occur in values.
func RetainAll[T comparable](s *Seq[T], values ...T) *Seq[T] {
	keep := sliceutil.SetOf(slices.Values(values))
	return s.Filter(keep.Has)
}

// NotNil drops nil pointers, maps, slices, channels, funcs and interfaces.
func NotNil[T any](s *Seq[T]) *Seq[T] {
	return s.FilterNot(func(v T) bool { return isNil(v) })
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
