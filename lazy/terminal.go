package lazy

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"lazyseq/lists"
	"lazyseq/persistent"
	"lazyseq/seqs"
	"lazyseq/sliceutil"
)

func (s *Seq[T]) Len() (int, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return 0, err
	}
	return snap.Len(), nil
}

func (s *Seq[T]) IsEmpty() (bool, error) {
	n, err := s.Len()
	return n == 0, err
}

// Get returns the element at index i, or ErrIndexOutOfRange.
func (s *Seq[T]) Get(i int) (T, error) {
	snap, err := s.Snapshot()
	if err != nil {
		var zero T
		return zero, err
	}
	return snap.Get(i)
}

// Values materializes the sequence and iterates the result. The iterator can be
// ranged over any number of times.
func (s *Seq[T]) Values() (iter.Seq[T], error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Values(), nil
}

// Pull materializes the sequence and returns a pull-style iterator over it. Callers
// must call stop when done.
func (s *Seq[T]) Pull() (next func() (T, bool), stop func(), err error) {
	vals, err := s.Values()
	if err != nil {
		return nil, nil, err
	}
	next, stop = iter.Pull(vals)
	return next, stop, nil
}

func (s *Seq[T]) ToSlice() ([]T, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return persistent.ToSlice[T](snap), nil
}

// ToList copies the result into a mutable list. Edits to the list are not seen by
// the sequence.
func (s *Seq[T]) ToList() (*lists.ArrayList[T], error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return lists.Collect(snap.Values(), snap.Len()), nil
}

func (s *Seq[T]) ForEach(fn func(T)) error {
	vals, err := s.Values()
	if err != nil {
		return err
	}
	for v := range vals {
		fn(v)
	}
	return nil
}

// String renders the elements as "[a b c]". It materializes the sequence; a failure
// is rendered in place of the elements.
func (s *Seq[T]) String() string {
	snap, err := s.Snapshot()
	if err != nil {
		return fmt.Sprintf("lazy.Seq(%v)", err)
	}
	return persistent.Format[T](snap)
}

// Hash is the structural hash of the elements. Sequences that are EqualFunc with ==
// hash equally.
func (s *Seq[T]) Hash() (uint64, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return 0, err
	}
	return persistent.Hash[T](snap), nil
}

// EqualFunc reports whether both sequences hold equal elements in the same order.
// The representation does not matter.
func (s *Seq[T]) EqualFunc(other *Seq[T], eq func(a, b T) bool) (bool, error) {
	a, err := s.Snapshot()
	if err != nil {
		return false, err
	}
	b, err := other.Snapshot()
	if err != nil {
		return false, err
	}
	return persistent.EqualFunc[T](a, b, eq), nil
}

func Equal[T comparable](a, b *Seq[T]) (bool, error) {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

func Fold[T, R any](s *Seq[T], initial R, fn func(R, T) R) (R, error) {
	vals, err := s.Values()
	if err != nil {
		return initial, err
	}
	return seqs.Reduce(vals, initial, fn), nil
}

// TryFold is Fold with a fallible fn. The first error stops the fold and is returned
// with the accumulation so far.
func TryFold[T, R any](s *Seq[T], initial R, fn func(R, T) (R, error)) (R, error) {
	vals, err := s.Values()
	if err != nil {
		return initial, err
	}
	return seqs.TryReduce(vals, initial, fn)
}

// Count returns the number of elements satisfying pred.
func (s *Seq[T]) Count(pred func(T) bool) (int, error) {
	vals, err := s.Values()
	if err != nil {
		return 0, err
	}
	return seqs.Count(seqs.Filter(vals, pred)), nil
}

// First returns the first element, or false when the sequence is empty.
func (s *Seq[T]) First() (T, bool, error) {
	vals, err := s.Values()
	if err != nil {
		var zero T
		return zero, false, err
	}
	v, ok := seqs.First(vals)
	return v, ok, nil
}

// Last returns the last element, or false when the sequence is empty.
func (s *Seq[T]) Last() (T, bool, error) {
	vals, err := s.Values()
	if err != nil {
		var zero T
		return zero, false, err
	}
	v, ok := seqs.Last(vals)
	return v, ok, nil
}

// AnyMatch reports whether some element satisfies pred. It is false for an empty
// sequence.
func (s *Seq[T]) AnyMatch(pred func(T) bool) (bool, error) {
	vals, err := s.Values()
	if err != nil {
		return false, err
	}
	return seqs.Any(vals, pred), nil
}

// AllMatch reports whether every element satisfies pred. It is true for an empty
// sequence.
func (s *Seq[T]) AllMatch(pred func(T) bool) (bool, error) {
	vals, err := s.Values()
	if err != nil {
		return false, err
	}
	return seqs.All(vals, pred), nil
}

func Sum[T seqs.Number](s *Seq[T]) (T, error) {
	vals, err := s.Values()
	if err != nil {
		return 0, err
	}
	return seqs.Sum(vals), nil
}

// MinMax returns the smallest and largest element; ok is false for an empty sequence.
func MinMax[T cmp.Ordered](s *Seq[T]) (lo, hi T, ok bool, err error) {
	vals, err := s.Values()
	if err != nil {
		return lo, hi, false, err
	}
	lo, hi, ok = seqs.MinMax(vals)
	return lo, hi, ok, nil
}

func Contains[T comparable](s *Seq[T], v T) (bool, error) {
	i, err := IndexOf(s, v)
	return i >= 0, err
}

// IndexOf returns the position of the first occurrence of v, or -1.
func IndexOf[T comparable](s *Seq[T], v T) (int, error) {
	vals, err := s.Values()
	if err != nil {
		return -1, err
	}
	return seqs.IndexFunc(vals, func(x T) bool { return x == v }), nil
}

// ContainsAll reports whether every one of values occurs in the sequence.
func ContainsAll[T comparable](s *Seq[T], values ...T) (bool, error) {
	vals, err := s.Values()
	if err != nil {
		return false, err
	}
	have := sliceutil.SetOf(vals)
	return seqs.All(slices.Values(values), have.Has), nil
}

// LastIndexOf returns the position of the last occurrence of v, or -1.
func LastIndexOf[T comparable](s *Seq[T], v T) (int, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return -1, err
	}
	last := -1
	for i, x := range seqs.Enumerate(snap.Values()) {
		if x == v {
			last = i
		}
	}
	return last, nil
}
