package lazy

import (
	"iter"
	"sync/atomic"
)

type sourceKind uint8

const (
	// reusable sources can be opened any number of times
	reusable sourceKind = iota
	// streams can be opened once
	stream
	failed
)

// source is where a handle's elements come from, with the element type erased so that
// handles of different types can share it.
type source struct {
	kind     sourceKind
	values   iter.Seq[any]
	err      error
	consumed atomic.Bool
}

func erase[T any](seq iter.Seq[T]) iter.Seq[any] {
	return func(yield func(any) bool) {
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// cast returns the zero value for a nil interface instead of panicking.
func cast[T any](v any) T {
	t, _ := v.(T)
	return t
}

func reusableSource[T any](seq iter.Seq[T]) *source {
	return &source{kind: reusable, values: erase(seq)}
}

func streamSource[T any](seq iter.Seq[T]) *source {
	return &source{kind: stream, values: erase(seq)}
}

func failedSource(err error) *source {
	return &source{kind: failed, err: err}
}

// open hands out the elements. A stream is handed out once; the compare-and-swap
// decides between concurrent materializations.
func (s *source) open() (iter.Seq[any], error) {
	switch s.kind {
	case failed:
		return nil, s.err
	case stream:
		if !s.consumed.CompareAndSwap(false, true) {
			return nil, ErrSourceConsumed
		}
	}
	return s.values, nil
}
