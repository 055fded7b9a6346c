package seqs

import (
	"iter"

	"lazyseq/queues"
)

func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// TakeWhile continues to yield elements from the sequence
// as long as the predicate returns true.
// The upstream sequence is not pulled past the first rejected element.
func TakeWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !predicate(v) {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// DropWhile skips elements from the sequence
// as long as the predicate returns true, then yields the rest.
func DropWhile[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		dropping := true
		for v := range seq {
			if dropping {
				if predicate(v) {
					continue
				}
				dropping = false
			}
			if !yield(v) {
				return
			}
		}
	}
}

// TakeLast yields the last n elements. It buffers at most n elements in a ring buffer
// and can only yield once seq is exhausted.
func TakeLast[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		ring := queues.NewArrayQueue[T](min(n, 64) + 1)
		for v := range seq {
			ring.Rotate(v, n)
		}
		for v := range ring.Values() {
			if !yield(v) {
				return
			}
		}
	}
}

// DropLast yields every element except the last n, lagging n elements behind seq.
func DropLast[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			for v := range seq {
				if !yield(v) {
					return
				}
			}
			return
		}
		ring := queues.NewArrayQueue[T](min(n, 64) + 1)
		for v := range seq {
			if head, ok := ring.Rotate(v, n); ok && !yield(head) {
				return
			}
		}
	}
}
