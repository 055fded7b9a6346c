package persistent

import (
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b hold the same elements in the same order,
// regardless of representation.
func Equal[T comparable](a, b Reader[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller supplied element comparison.
func EqualFunc[T any](a, b Reader[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull(b.Values())
	defer stop()
	for x := range a.Values() {
		y, ok := next()
		if !ok || !eq(x, y) {
			return false
		}
	}
	return true
}

// Hash folds the element hashes in order. Elements are hashed by their fmt.Sprint
// form with float zeros normalized, so Equal sequences hash equally as long as equal
// elements print alike. Named float types and structs holding -0 are not normalized.
func Hash[T any](r Reader[T]) uint64 {
	var h uint64 = 1
	for v := range r.Values() {
		h = 31*h + xxhash.Sum64String(hashKey(v))
	}
	return h
}

func hashKey(v any) string {
	switch x := v.(type) {
	case float64:
		if x == 0 {
			x = 0
		}
		return fmt.Sprint(x)
	case float32:
		if x == 0 {
			x = 0
		}
		return fmt.Sprint(x)
	}
	return fmt.Sprint(v)
}

// Format renders r as [e0 e1 ...].
func Format[T any](r Reader[T]) string {
	return fmt.Sprint(ToSlice(r))
}
