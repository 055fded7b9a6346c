package lists

import (
	"iter"

	"lazyseq/persistent"
)

// List is a mutable, index-addressable list. It is what a lazy sequence hands out when
// callers want to edit the result in place; edits never reach the sequence it came from.
type List[T any] interface {
	persistent.Reader[T]

	// Add appends one or more elements to the end of the list
	Add(values ...T)

	// Insert inserts an element at the specified index
	// Returns an error if index < 0 or index > Len()
	Insert(index int, value T) error

	// Remove removes and returns the element at the specified index
	// Returns an error if index is out of bounds
	Remove(index int) (T, error)

	// Set modifies the element at the specified index
	// Returns an error if index is out of bounds
	Set(index int, value T) error

	IsEmpty() bool

	// Clear clears the list and releases memory
	Clear()

	// IndexFunc returns the first index whose element satisfies predicate, or -1
	IndexFunc(predicate func(T) bool) int

	// ToSlice returns a copy of the elements as a native slice
	ToSlice() []T

	// All iterates index/element pairs
	All() iter.Seq2[int, T]
}

// IndexOf finds the first occurrence of v, returns -1 if not found.
func IndexOf[T comparable](l List[T], v T) int {
	return l.IndexFunc(func(x T) bool {
		return x == v
	})
}
