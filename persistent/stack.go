package persistent

import (
	"iter"
)

type cell[T any] struct {
	head T
	tail *cell[T]
	size int
}

func cons[T any](v T, rest *cell[T]) *cell[T] {
	n := 1
	if rest != nil {
		n += rest.size
	}
	return &cell[T]{head: v, tail: rest, size: n}
}

// consAll places values in front of rest, keeping their order.
func consAll[T any](values []T, rest *cell[T]) *cell[T] {
	for i := len(values) - 1; i >= 0; i-- {
		rest = cons(values[i], rest)
	}
	return rest
}

// Stack is a persistent cons list. The zero value is an empty stack.
//
// Push and Pop at the front are O(1). Indexed operations walk i cells, copy them and
// share everything after the edit point with the receiver.
type Stack[T any] struct {
	top *cell[T]
}

// StackOf returns a stack holding values in order; values[0] is the front.
func StackOf[T any](values ...T) Stack[T] {
	return Stack[T]{top: consAll(values, nil)}
}

func (s Stack[T]) Len() int {
	if s.top == nil {
		return 0
	}
	return s.top.size
}

func (s Stack[T]) IsEmpty() bool {
	return s.top == nil
}

// Cons returns a new stack with v in front.
func (s Stack[T]) Cons(v T) Stack[T] {
	return Stack[T]{top: cons(v, s.top)}
}

// First returns the front element.
func (s Stack[T]) First() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}
	return s.top.head, true
}

// Rest returns the stack after the front element. Rest of an empty stack is empty.
func (s Stack[T]) Rest() Stack[T] {
	if s.top == nil {
		return s
	}
	return Stack[T]{top: s.top.tail}
}

// Reverse returns the elements in reverse order. O(n).
func (s Stack[T]) Reverse() Stack[T] {
	var rev *cell[T]
	for c := s.top; c != nil; c = c.tail {
		rev = cons(c.head, rev)
	}
	return Stack[T]{top: rev}
}

func (s Stack[T]) Home() Position {
	return Front
}

func (s Stack[T]) nth(i int) *cell[T] {
	c := s.top
	for range i {
		c = c.tail
	}
	return c
}

// split copies the first i elements and returns them with the shared remainder.
func (s Stack[T]) split(i int) ([]T, *cell[T]) {
	prefix := make([]T, 0, i)
	c := s.top
	for range i {
		prefix = append(prefix, c.head)
		c = c.tail
	}
	return prefix, c
}

func (s Stack[T]) Get(i int) (T, error) {
	if err := CheckIndex(i, s.Len()); err != nil {
		var zero T
		return zero, err
	}
	return s.nth(i).head, nil
}

func (s Stack[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := s.top; c != nil; c = c.tail {
			if !yield(c.head) {
				return
			}
		}
	}
}

func (s Stack[T]) Push(pos Position, v T) Snapshot[T] {
	if pos == Front {
		return s.Cons(v)
	}
	prefix, _ := s.split(s.Len())
	return Stack[T]{top: consAll(append(prefix, v), nil)}
}

func (s Stack[T]) Pop(pos Position) (T, Snapshot[T], error) {
	n := s.Len()
	if n == 0 {
		var zero T
		return zero, s, indexError(0, 0)
	}
	if pos == Front {
		return s.top.head, Stack[T]{top: s.top.tail}, nil
	}
	prefix, last := s.split(n - 1)
	return last.head, Stack[T]{top: consAll(prefix, nil)}, nil
}

func (s Stack[T]) Set(i int, v T) (Snapshot[T], error) {
	if err := CheckIndex(i, s.Len()); err != nil {
		return s, err
	}
	prefix, rest := s.split(i)
	return Stack[T]{top: consAll(prefix, cons(v, rest.tail))}, nil
}

func (s Stack[T]) Insert(i int, v T) (Snapshot[T], error) {
	if err := CheckInsert(i, s.Len()); err != nil {
		return s, err
	}
	prefix, rest := s.split(i)
	return Stack[T]{top: consAll(prefix, cons(v, rest))}, nil
}

func (s Stack[T]) Delete(i int) (Snapshot[T], error) {
	if err := CheckIndex(i, s.Len()); err != nil {
		return s, err
	}
	prefix, rest := s.split(i)
	return Stack[T]{top: consAll(prefix, rest.tail)}, nil
}

// Concat copies the receiver's cells in front of other. When other is a Stack its cells
// are shared as they are.
func (s Stack[T]) Concat(other Reader[T]) Snapshot[T] {
	var rest *cell[T]
	switch o := other.(type) {
	case Stack[T]:
		if s.top == nil {
			return o
		}
		rest = o.top
	default:
		rest = consAll(ToSlice(other), nil)
	}
	prefix, _ := s.split(s.Len())
	return Stack[T]{top: consAll(prefix, rest)}
}

// Slice shares the suffix when to == Len(); otherwise it copies [from, to).
func (s Stack[T]) Slice(from, to int) (Snapshot[T], error) {
	n := s.Len()
	if err := CheckSlice(from, to, n); err != nil {
		return s, err
	}
	start := s.nth(from)
	if to == n {
		return Stack[T]{top: start}, nil
	}
	vals := make([]T, 0, to-from)
	for c := start; len(vals) < to-from; c = c.tail {
		vals = append(vals, c.head)
	}
	return Stack[T]{top: consAll(vals, nil)}, nil
}

// String implements fmt.Stringer.
func (s Stack[T]) String() string {
	return Format[T](s)
}
