package sliceutil

// Filter returns the elements satisfying predicate in a new slice.
func Filter[T any](collection []T, predicate func(T) bool) []T {
	if len(collection) == 0 {
		return []T{}
	}
	// BCE hint: avoid bounds check in loop
	_ = collection[len(collection)-1]

	// Heuristic pre-allocation of capacity
	res := make([]T, 0, len(collection)/2)
	for _, v := range collection {
		if predicate(v) {
			res = append(res, v)
		}
	}
	return res
}

// Map transforms a slice of type T to a slice of type R.
func Map[T any, R any](collection []T, transform func(T) R) []R {
	res := make([]R, len(collection))
	for i, v := range collection {
		res[i] = transform(v)
	}
	return res
}

// Clamp returns collection[from:to] with both bounds clamped to [0, len(collection)].
func Clamp[T any](collection []T, from, to int) []T {
	from = min(max(from, 0), len(collection))
	to = min(max(to, from), len(collection))
	return collection[from:to]
}

// Intersperse returns a new slice with sep placed between consecutive elements.
func Intersperse[T any](collection []T, sep T) []T {
	if len(collection) == 0 {
		return []T{}
	}
	res := make([]T, 0, 2*len(collection)-1)
	for i, v := range collection {
		if i > 0 {
			res = append(res, sep)
		}
		res = append(res, v)
	}
	return res
}
