package persistent

import (
	"iter"
)

// Position selects an end of a sequence.
type Position uint8

const (
	Front Position = iota
	Back
)

func (p Position) String() string {
	if p == Front {
		return "front"
	}
	return "back"
}

// Reader is the observation side of a sequence.
type Reader[T any] interface {
	// Len returns the number of elements.
	Len() int
	// Get returns the element at index i.
	// Returns ErrIndexOutOfRange if i is outside [0, Len()).
	Get(i int) (T, error)
	// Values iterates the elements in order.
	Values() iter.Seq[T]
}

// Editor is the persistent-edit side of a sequence.
// Every method leaves the receiver unchanged and returns a new Snapshot.
type Editor[T any] interface {
	// Push adds v at the given end.
	Push(pos Position, v T) Snapshot[T]
	// Pop removes the element at the given end and returns it with the remaining sequence.
	// Returns ErrIndexOutOfRange on an empty sequence.
	Pop(pos Position) (T, Snapshot[T], error)
	// Set replaces the element at index i.
	Set(i int, v T) (Snapshot[T], error)
	// Insert places v before index i. i may equal Len().
	Insert(i int, v T) (Snapshot[T], error)
	// Delete removes the element at index i.
	Delete(i int) (Snapshot[T], error)
	// Concat appends every element of other.
	Concat(other Reader[T]) Snapshot[T]
	// Slice returns the elements in [from, to).
	// Returns ErrRange unless 0 <= from <= to <= Len().
	Slice(from, to int) (Snapshot[T], error)
}

// Snapshot is an immutable persistent sequence.
type Snapshot[T any] interface {
	Reader[T]
	Editor[T]
	// Home is the end the representation grows cheaply at: Front for stacks, Back for vectors.
	Home() Position
}

// BulkAppender is implemented by representations that can append a run of generated
// values with a single structural rebuild instead of one persistent push per value.
type BulkAppender[T any] interface {
	AppendN(n int, gen func(i int) T) Snapshot[T]
}

// ToSlice copies the elements of r into a new slice.
func ToSlice[T any](r Reader[T]) []T {
	out := make([]T, 0, r.Len())
	for v := range r.Values() {
		out = append(out, v)
	}
	return out
}
