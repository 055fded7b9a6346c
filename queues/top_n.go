package queues

import (
	"iter"
	"slices"
)

type ranked[T any] struct {
	value T
	seq   int
}

// SmallestN returns the n lowest elements of seq under compare, in ascending order.
// Equal elements keep their encounter order, so the result matches the first n
// elements of a stable sort. Memory is bounded by n.
func SmallestN[T any](seq iter.Seq[T], n int, compare func(a, b T) int) []T {
	if n <= 0 {
		return nil
	}
	byRank := func(a, b ranked[T]) int {
		if c := compare(a.value, b.value); c != 0 {
			return c
		}
		return a.seq - b.seq
	}
	// max-heap: the head is the worst element kept so far
	pq := NewPriorityQueue(min(n, 64), func(a, b ranked[T]) int { return byRank(b, a) })

	i := 0
	for v := range seq {
		r := ranked[T]{value: v, seq: i}
		i++
		if pq.Size() < n {
			pq.Enqueue(r)
			continue
		}
		if worst, _ := pq.Peek(); byRank(r, worst) < 0 {
			pq.ReplaceHead(r)
		}
	}

	out := make([]T, 0, pq.Size())
	for r, ok := pq.Dequeue(); ok; r, ok = pq.Dequeue() {
		out = append(out, r.value)
	}
	slices.Reverse(out)
	return out
}
