package lists

import (
	"fmt"
	"iter"
	"slices"

	"lazyseq/persistent"
)

// ArrayList is a slice-backed List.
type ArrayList[T any] struct {
	data []T
}

var _ List[int] = (*ArrayList[int])(nil)

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

// Collect drains seq into a new ArrayList with room for sizeHint elements.
func Collect[T any](seq iter.Seq[T], sizeHint int) *ArrayList[T] {
	al := NewArrayList[T](sizeHint)
	for v := range seq {
		al.data = append(al.data, v)
	}
	return al
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Insert(index int, value T) error {
	if err := persistent.CheckInsert(index, len(al.data)); err != nil {
		return err
	}
	al.data = slices.Insert(al.data, index, value)
	return nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if err := persistent.CheckIndex(index, len(al.data)); err != nil {
		var zero T
		return zero, err
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if err := persistent.CheckIndex(index, len(al.data)); err != nil {
		return err
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Remove(index int) (T, error) {
	if err := persistent.CheckIndex(index, len(al.data)); err != nil {
		var zero T
		return zero, err
	}
	removed := al.data[index]
	// slices.Delete zeroes the vacated tail slot
	al.data = slices.Delete(al.data, index, index+1)
	return removed, nil
}

// RemoveRange removes elements from index 'start' (inclusive) to 'end' (exclusive).
func (al *ArrayList[T]) RemoveRange(start, end int) error {
	if err := persistent.CheckSlice(start, end, len(al.data)); err != nil {
		return err
	}
	al.data = slices.Delete(al.data, start, end)
	return nil
}

func (al *ArrayList[T]) RemoveIf(predicate func(T) bool) int {
	al.data = slices.DeleteFunc(al.data, predicate)
	return len(al.data)
}

func (al *ArrayList[T]) Sort(compare func(a, b T) int) {
	slices.SortStableFunc(al.data, compare)
}

func (al *ArrayList[T]) Len() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

// Clone returns a shallow copy of the list.
// Note: If T is a pointer or reference type, the referenced data is shared.
func (al *ArrayList[T]) Clone() *ArrayList[T] {
	return &ArrayList[T]{data: slices.Clone(al.data)}
}

func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}

func (al *ArrayList[T]) IndexFunc(predicate func(T) bool) int {
	return slices.IndexFunc(al.data, predicate)
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

func (al *ArrayList[T]) All() iter.Seq2[int, T] {
	return slices.All(al.data)
}

func (al *ArrayList[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(al.data)
}
