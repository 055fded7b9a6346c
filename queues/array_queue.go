package queues

import (
	"iter"
	"math/bits"
)

// ArrayQueue is a FIFO queue backed by a ring buffer whose capacity is always a
// power of two. Enqueue and Dequeue are amortized O(1).
type ArrayQueue[T any] struct {
	buf  []T
	head int
	size int
}

// NewArrayQueue creates an ArrayQueue able to hold initialCapacity elements
// before growing. A non-positive capacity selects a default of 16.
func NewArrayQueue[T any](initialCapacity int) *ArrayQueue[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	return &ArrayQueue[T]{buf: make([]T, roundPow2(initialCapacity))}
}

func roundPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

func (aq *ArrayQueue[T]) mask() int {
	return len(aq.buf) - 1
}

// grow reallocates the buffer to hold at least need elements and unwraps the contents.
func (aq *ArrayQueue[T]) grow(need int) {
	newBuf := make([]T, roundPow2(need))
	n := copy(newBuf, aq.buf[aq.head:min(aq.head+aq.size, len(aq.buf))])
	if n < aq.size {
		copy(newBuf[n:], aq.buf[:aq.size-n])
	}
	aq.buf = newBuf
	aq.head = 0
}

func (aq *ArrayQueue[T]) Enqueue(value T) {
	if aq.size == len(aq.buf) {
		aq.grow(aq.size + 1)
	}
	aq.buf[(aq.head+aq.size)&aq.mask()] = value
	aq.size++
}

func (aq *ArrayQueue[T]) EnqueueAll(values ...T) {
	for _, v := range values {
		aq.Enqueue(v)
	}
}

func (aq *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	value = aq.buf[aq.head]
	var zero T
	aq.buf[aq.head] = zero // clear reference
	aq.head = (aq.head + 1) & aq.mask()
	aq.size--
	return value, true
}

// Rotate enqueues value into a queue that is kept at most limit long and returns
// the element pushed out of the front, if any.
func (aq *ArrayQueue[T]) Rotate(value T, limit int) (evicted T, ok bool) {
	aq.Enqueue(value)
	if aq.size > limit {
		return aq.Dequeue()
	}
	return evicted, false
}

func (aq *ArrayQueue[T]) Peek() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	return aq.buf[aq.head], true
}

// Values iterates the queued elements front to back without removing them.
func (aq *ArrayQueue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range aq.size {
			if !yield(aq.buf[(aq.head+i)&aq.mask()]) {
				return
			}
		}
	}
}

func (aq *ArrayQueue[T]) Size() int {
	return aq.size
}

func (aq *ArrayQueue[T]) IsEmpty() bool {
	return aq.size == 0
}

func (aq *ArrayQueue[T]) Clear() {
	clear(aq.buf)
	aq.head = 0
	aq.size = 0
}
