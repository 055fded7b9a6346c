package lazy

import (
	"iter"
	"slices"

	"lazyseq/persistent"
	"lazyseq/pipeline"
	"lazyseq/seqs"
)

// home is the end Plus adds at: the snapshot's home when materialized, otherwise the
// home of what the collector builds.
func (s *Seq[T]) home() persistent.Position {
	if snap := s.cached(); snap != nil {
		return snap.Home()
	}
	if s.collector.Shape() == persistent.ShapeStack {
		return persistent.Front
	}
	return persistent.Back
}

func (s *Seq[T]) fast(snap persistent.Snapshot[T]) *Seq[T] {
	s.env.metrics.fastEdits.Inc(1)
	return s.withSnapshot(snap)
}

func (s *Seq[T]) deferred(step pipeline.Step) *Seq[T] {
	s.env.metrics.deferredEdits.Inc(1)
	return s.then(step)
}

// Push adds v at the given end.
func (s *Seq[T]) Push(pos persistent.Position, v T) *Seq[T] {
	if snap := s.cached(); snap != nil {
		return s.fast(snap.Push(pos, v))
	}
	values := constValues([]T{v})
	if pos == persistent.Front {
		return s.deferred(pipeline.Prepend(values))
	}
	return s.deferred(pipeline.Concat(values))
}

// Plus adds v where the representation grows cheaply: the front of a stack, the back of
// a vector.
func (s *Seq[T]) Plus(v T) *Seq[T] {
	return s.Push(s.home(), v)
}

// PlusAll adds each of values with Plus, in order. On a stack the values therefore end
// up reversed at the front.
func (s *Seq[T]) PlusAll(values ...T) *Seq[T] {
	if len(values) == 0 {
		return s
	}
	if snap := s.cached(); snap != nil {
		pos := snap.Home()
		for _, v := range values {
			snap = snap.Push(pos, v)
		}
		return s.fast(snap)
	}
	if s.home() == persistent.Front {
		reversed := slices.Clone(values)
		slices.Reverse(reversed)
		return s.deferred(pipeline.Prepend(constValues(reversed)))
	}
	return s.deferred(pipeline.Concat(constValues(values)))
}

// PlusInOrder adds v after the last element whatever the representation.
func (s *Seq[T]) PlusInOrder(v T) *Seq[T] {
	return s.Push(persistent.Back, v)
}

// PlusAt inserts v before index i; i may equal the length.
//
// On a materialized handle the bound is checked at the call. Otherwise it is checked
// when the edit has seen the whole stream, so a later step that stops pulling early
// skips the check: Map(Range(0, 3, 1), f).PlusAt(5, 99) followed by Take(2) yields
// [f(0) f(1)] without an error.
func (s *Seq[T]) PlusAt(i int, v T) (*Seq[T], error) {
	if snap := s.cached(); snap != nil {
		out, err := snap.Insert(i, v)
		if err != nil {
			return nil, err
		}
		return s.fast(out), nil
	}
	return s.deferred(pipeline.InsertAt(i, v)), nil
}

// With replaces the element at index i. The bound is checked like PlusAt's, so
// Map(Range(0, 3, 1), f).With(5, 99) followed by Take(2) yields two elements.
func (s *Seq[T]) With(i int, v T) (*Seq[T], error) {
	if snap := s.cached(); snap != nil {
		out, err := snap.Set(i, v)
		if err != nil {
			return nil, err
		}
		return s.fast(out), nil
	}
	return s.deferred(pipeline.SetAt(i, v)), nil
}

// MinusAt removes the element at index i. The bound is checked like PlusAt's.
func (s *Seq[T]) MinusAt(i int) (*Seq[T], error) {
	if snap := s.cached(); snap != nil {
		out, err := snap.Delete(i)
		if err != nil {
			return nil, err
		}
		return s.fast(out), nil
	}
	return s.deferred(pipeline.DeleteAt(i)), nil
}

// Slice keeps the elements in [from, to). It fails with ErrRange unless
// 0 <= from <= to <= length.
func (s *Seq[T]) Slice(from, to int) (*Seq[T], error) {
	if snap := s.cached(); snap != nil {
		out, err := snap.Slice(from, to)
		if err != nil {
			return nil, err
		}
		return s.fast(out), nil
	}
	if from < 0 || from > to {
		return nil, persistent.CheckSlice(from, to, max(to, 0))
	}
	return s.deferred(pipeline.Slice(from, to)), nil
}

// Concat appends the elements of other. other is observed when the result is.
func (s *Seq[T]) Concat(other *Seq[T]) *Seq[T] {
	if snap := s.cached(); snap != nil {
		if tail := other.cached(); tail != nil {
			return s.fast(snap.Concat(tail))
		}
	}
	return s.deferred(pipeline.Concat(valuesOf(other)))
}

// PlusLoop adds gen(0), ..., gen(n-1) with Plus. Vector snapshots build the run in a
// single pass.
func (s *Seq[T]) PlusLoop(n int, gen func(i int) T) *Seq[T] {
	if n <= 0 {
		return s
	}
	if snap := s.cached(); snap != nil {
		if bulk, ok := snap.(persistent.BulkAppender[T]); ok && snap.Home() == persistent.Back {
			return s.fast(bulk.AppendN(n, gen))
		}
		pos := snap.Home()
		for i := range n {
			snap = snap.Push(pos, gen(i))
		}
		return s.fast(snap)
	}
	if s.home() == persistent.Front {
		return s.deferred(pipeline.Prepend(generated(seqs.Range(n-1, -1, -1), gen)))
	}
	return s.deferred(pipeline.Concat(generated(seqs.Range(0, n, 1), gen)))
}

func generated[T any](indices iter.Seq[int], gen func(i int) T) func() (iter.Seq[any], error) {
	return func() (iter.Seq[any], error) {
		return erase(seqs.Map(indices, gen)), nil
	}
}

// Pop removes the element at the given end and returns it with the remaining sequence.
// It materializes the receiver.
func (s *Seq[T]) Pop(pos persistent.Position) (T, *Seq[T], error) {
	snap, err := s.Snapshot()
	if err != nil {
		var zero T
		return zero, nil, err
	}
	v, rest, err := snap.Pop(pos)
	if err != nil {
		var zero T
		return zero, nil, err
	}
	return v, s.fast(rest), nil
}
