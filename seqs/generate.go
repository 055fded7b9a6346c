package seqs

import "iter"

// Range yields start, start+step, ... up to but excluding end. It stops instead
// of wrapping around when the next value would overflow int.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; {
			if !yield(i) {
				return
			}
			next := i + step
			if step > 0 && next < i || step < 0 && next > i {
				return
			}
			i = next
		}
	}
}

// Repeat yields value count times.
func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}

// Unfold yields values produced by step starting from seed until step reports false.
func Unfold[S, T any](seed S, step func(S) (T, S, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		state := seed
		for {
			v, next, ok := step(state)
			if !ok || !yield(v) {
				return
			}
			state = next
		}
	}
}

// Iterate yields seed, f(seed), f(f(seed)), ... limited to limit elements.
func Iterate[T any](seed T, f func(T) T, limit int) iter.Seq[T] {
	return func(yield func(T) bool) {
		v := seed
		for i := 0; i < limit; i++ {
			if !yield(v) {
				return
			}
			v = f(v)
		}
	}
}

// Generate yields limit values produced by supplier.
func Generate[T any](supplier func() T, limit int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < limit; i++ {
			if !yield(supplier()) {
				return
			}
		}
	}
}

// FromChannel yields values received from ch until it is closed.
func FromChannel[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}

// FromPull adapts a pull function to a sequence. next reports false when exhausted.
func FromPull[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
