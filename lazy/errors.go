package lazy

import (
	"errors"

	"lazyseq/persistent"
)

var (
	// ErrSourceConsumed is returned when a single-use source was already opened by
	// another materialization.
	ErrSourceConsumed = errors.New("source already consumed")
	// ErrTransformPanic wraps a panic raised by a user function during materialization.
	ErrTransformPanic = errors.New("transform panicked")

	ErrIndexOutOfRange = persistent.ErrIndexOutOfRange
	ErrRange           = persistent.ErrRange
)
