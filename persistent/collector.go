package persistent

import (
	"iter"
	"slices"
)

// Shape names a built-in representation.
type Shape uint8

const (
	// ShapeVector grows at the back; Plus appends.
	ShapeVector Shape = iota
	// ShapeStack grows at the front; Plus prepends.
	ShapeStack
)

func (s Shape) String() string {
	switch s {
	case ShapeStack:
		return "stack"
	default:
		return "vector"
	}
}

// Collector folds a stream of elements into a concrete Snapshot.
//
// efficient selects the cheaper build strategy of the representation. Both strategies
// must yield the elements in stream order.
type Collector[T any] interface {
	Zero() Snapshot[T]
	Collect(seq iter.Seq[T], efficient bool) Snapshot[T]
	Shape() Shape
}

// CollectorFor returns the built-in collector for shape.
func CollectorFor[T any](shape Shape) Collector[T] {
	if shape == ShapeStack {
		return StackCollector[T]{}
	}
	return VectorCollector[T]{}
}

// StackCollector builds Stack snapshots.
type StackCollector[T any] struct{}

func (StackCollector[T]) Zero() Snapshot[T] {
	return Stack[T]{}
}

func (StackCollector[T]) Shape() Shape {
	return ShapeStack
}

// Collect prepends each element and reverses once when efficient, otherwise it
// buffers the stream and conses from the back.
func (StackCollector[T]) Collect(seq iter.Seq[T], efficient bool) Snapshot[T] {
	if efficient {
		var rev *cell[T]
		for v := range seq {
			rev = cons(v, rev)
		}
		return Stack[T]{top: rev}.Reverse()
	}
	return Stack[T]{top: consAll(slices.Collect(seq), nil)}
}

// VectorCollector builds Vector snapshots.
type VectorCollector[T any] struct{}

func (VectorCollector[T]) Zero() Snapshot[T] {
	return EmptyVector[T]()
}

func (VectorCollector[T]) Shape() Shape {
	return ShapeVector
}

// Collect builds the trie bottom up in one pass when efficient, otherwise it folds the
// stream with one persistent push per element.
func (VectorCollector[T]) Collect(seq iter.Seq[T], efficient bool) Snapshot[T] {
	if efficient {
		return vectorFromSlice(slices.Collect(seq))
	}
	out := EmptyVector[T]()
	for v := range seq {
		out = out.pushBack(v)
	}
	return out
}
