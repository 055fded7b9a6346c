package seqs

import (
	"iter"
)

// Filter applies predicate to each element of seq, yielding only those that satisfy the predicate.
func Filter[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if predicate(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// TryFilter returns a sequence of elements that satisfy the predicate.
// The predicate function can return an error.
//
// The resulting sequence yields pairs of (element, error).
// If the predicate returns an error:
//   - The error is yielded to the consumer along with the element 'v' that caused it.
//   - The iteration CONTINUES if the consumer returns true (yield returns true).
//   - The iteration STOPS if the consumer returns false (yield returns false).
func TryFilter[T any](seq iter.Seq[T], predicate func(T) (bool, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v := range seq {
			keep, err := predicate(v)
			if err != nil {
				if !yield(v, err) {
					return
				}
				continue
			}
			if keep {
				if !yield(v, nil) {
					return
				}
			}
		}
	}
}

// Map applies transform to each element of seq, yielding the transformed elements.
func Map[T, R any](seq iter.Seq[T], transform func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// TryMap applies transform to each element of seq, yielding the transformed elements.
// If transform returns an error it is yielded with a zero-value of type R and the
// consumer decides whether to continue.
func TryMap[T, R any](seq iter.Seq[T], transform func(T) (R, error)) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		for v := range seq {
			res, err := transform(v)
			if !yield(res, err) {
				return
			}
		}
	}
}

// UntilErr yields the values of seq until it produces an error, and reports that error
// through errp. Iteration stops at the first error.
func UntilErr[T any](seq iter.Seq2[T, error], errp *error) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, err := range seq {
			if err != nil {
				*errp = err
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Reduce aggregates the elements of seq using the reducer function, starting from the initial value.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}

// TryReduce aggregates the elements of seq using the reducer function, starting from the initial value.
// If reducer returns an error, it is returned immediately with the accumulator built so far.
func TryReduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) (R, error)) (R, error) {
	acc := initial
	for v := range seq {
		next, err := reducer(acc, v)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}
