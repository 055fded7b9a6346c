package queues

import (
	"container/heap"
)

type internalHeap[T any] struct {
	data    []T
	compare func(a, b T) int
}

func (ih *internalHeap[T]) Len() int {
	return len(ih.data)
}

func (ih *internalHeap[T]) Less(i, j int) bool {
	return ih.compare(ih.data[i], ih.data[j]) < 0
}

func (ih *internalHeap[T]) Swap(i, j int) {
	ih.data[i], ih.data[j] = ih.data[j], ih.data[i]
}

func (ih *internalHeap[T]) Push(x any) {
	ih.data = append(ih.data, x.(T))
}

func (ih *internalHeap[T]) Pop() any {
	old := ih.data
	n := len(old)
	last := old[n-1]

	// avoid memory leak
	var zero T
	old[n-1] = zero

	ih.data = old[0 : n-1]
	return last
}

// PriorityQueue is a binary heap ordered by a comparator. The head is the element
// that compares lowest; pass an inverted comparator for a max-heap.
type PriorityQueue[T any] struct {
	heap *internalHeap[T]
}

// NewPriorityQueue creates a new PriorityQueue with the specified initial capacity.
// compare follows the cmp.Compare convention and must not be nil.
func NewPriorityQueue[T any](initCapacity int, compare func(a, b T) int) *PriorityQueue[T] {
	if initCapacity < 0 {
		initCapacity = 0
	}
	if compare == nil {
		panic("queues.PriorityQueue: compare function cannot be nil")
	}
	return &PriorityQueue[T]{
		heap: &internalHeap[T]{
			data:    make([]T, 0, initCapacity),
			compare: compare,
		},
	}
}

func (pq *PriorityQueue[T]) Enqueue(value T) {
	heap.Push(pq.heap, value)
}

func (pq *PriorityQueue[T]) Dequeue() (value T, ok bool) {
	if pq.heap.Len() == 0 {
		return value, false
	}
	return heap.Pop(pq.heap).(T), true
}

func (pq *PriorityQueue[T]) Peek() (value T, ok bool) {
	if pq.heap.Len() == 0 {
		return value, false
	}
	return pq.heap.data[0], true
}

// ReplaceHead swaps the head for value and restores heap order. It reports false
// and leaves the queue untouched when the queue is empty.
func (pq *PriorityQueue[T]) ReplaceHead(value T) (old T, ok bool) {
	if pq.heap.Len() == 0 {
		return old, false
	}
	old = pq.heap.data[0]
	pq.heap.data[0] = value
	heap.Fix(pq.heap, 0)
	return old, true
}

func (pq *PriorityQueue[T]) Size() int {
	return pq.heap.Len()
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.heap.Len() == 0
}
