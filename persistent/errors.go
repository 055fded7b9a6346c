package persistent

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when an index falls outside [0, size).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrRange is returned by Slice when the bounds do not satisfy 0 <= from <= to <= size.
	ErrRange = errors.New("invalid range")
)

func indexError(i, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, size)
}

func rangeError(from, to, size int) error {
	return fmt.Errorf("%w: [%d, %d) of size %d", ErrRange, from, to, size)
}

// CheckIndex reports ErrIndexOutOfRange unless 0 <= i < size.
func CheckIndex(i, size int) error {
	if i < 0 || i >= size {
		return indexError(i, size)
	}
	return nil
}

// CheckInsert reports ErrIndexOutOfRange unless 0 <= i <= size.
func CheckInsert(i, size int) error {
	if i < 0 || i > size {
		return indexError(i, size)
	}
	return nil
}

// CheckSlice reports ErrRange unless 0 <= from <= to <= size.
func CheckSlice(from, to, size int) error {
	if from < 0 || to > size || from > to {
		return rangeError(from, to, size)
	}
	return nil
}
