package sliceutil

import "iter"

// Set is a membership set keyed by K.
type Set[K comparable] map[K]struct{}

// SetOf builds a Set from the keys produced by seq.
func SetOf[K comparable](seq iter.Seq[K]) Set[K] {
	s := make(Set[K])
	for k := range seq {
		s[k] = struct{}{}
	}
	return s
}

func (s Set[K]) Has(k K) bool {
	_, ok := s[k]
	return ok
}

// RemoveAll returns the elements of a that do not occur in b.
// Unlike a set difference, duplicates in a are kept.
func RemoveAll[T comparable](a, b []T) []T {
	if len(a) == 0 {
		return []T{}
	}
	exclude := make(Set[T], len(b))
	for _, v := range b {
		exclude[v] = struct{}{}
	}
	return Filter(a, func(v T) bool { return !exclude.Has(v) })
}

// RemoveFirst returns a copy of collection without the first occurrence of target.
func RemoveFirst[T comparable](collection []T, target T) []T {
	res := make([]T, 0, len(collection))
	removed := false
	for _, v := range collection {
		if !removed && v == target {
			removed = true
			continue
		}
		res = append(res, v)
	}
	return res
}
