package lazy

import (
	"iter"
	"slices"

	"lazyseq/persistent"
	"lazyseq/seqs"
)

// Empty returns a materialized empty sequence.
func Empty[T any](opts ...Option[T]) *Seq[T] {
	o := buildOptions(opts)
	return fromSnapshot(o.collector.Zero(), o)
}

// Of returns a materialized sequence of values with default options.
func Of[T any](values ...T) *Seq[T] {
	return FromSlice(values)
}

// Singleton returns a materialized sequence holding v.
func Singleton[T any](v T, opts ...Option[T]) *Seq[T] {
	return FromSlice([]T{v}, opts...)
}

// FromSlice copies values into a snapshot built by the configured collector.
func FromSlice[T any](values []T, opts ...Option[T]) *Seq[T] {
	o := buildOptions(opts)
	snap := o.collector.Collect(slices.Values(values), o.efficient)
	return fromSnapshot(snap, o)
}

// FromSnapshot wraps an existing snapshot without copying it. Unless WithCollector is
// given, derived results use the built-in collector of the snapshot's shape.
func FromSnapshot[T any](snap persistent.Snapshot[T], opts ...Option[T]) *Seq[T] {
	if snap.Home() == persistent.Front {
		opts = append([]Option[T]{WithCollector[T](persistent.StackCollector[T]{})}, opts...)
	}
	return fromSnapshot(snap, buildOptions(opts))
}

func fromSnapshot[T any](snap persistent.Snapshot[T], o options[T]) *Seq[T] {
	s := newSeq[T](reusableSource(snap.Values()), o)
	s.cache.snap = snap
	return s
}

// FromSeq wraps a single-use stream. The first materialization of any handle derived
// from it consumes seq.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) *Seq[T] {
	return newSeq(streamSource(seq), buildOptions(opts))
}

// FromChannel reads ch until it is closed, on first materialization.
func FromChannel[T any](ch <-chan T, opts ...Option[T]) *Seq[T] {
	return FromSeq(seqs.FromChannel(ch), opts...)
}

// FromPull wraps a pull function; next reports false when exhausted.
func FromPull[T any](next func() (T, bool), opts ...Option[T]) *Seq[T] {
	return FromSeq(seqs.FromPull(next), opts...)
}

// Generate is a single-use stream of limit values from supplier.
func Generate[T any](supplier func() T, limit int, opts ...Option[T]) *Seq[T] {
	return FromSeq(seqs.Generate(supplier, limit), opts...)
}

// Unfold yields the values produced by step from seed until step reports false. The
// generator is replayed on every materialization, so step must be pure.
func Unfold[S, T any](seed S, step func(S) (T, S, bool), opts ...Option[T]) *Seq[T] {
	return newSeq(reusableSource(seqs.Unfold(seed, step)), buildOptions(opts))
}

// Iterate yields seed, f(seed), f(f(seed)), ... limited to limit values.
func Iterate[T any](seed T, f func(T) T, limit int, opts ...Option[T]) *Seq[T] {
	return newSeq(reusableSource(seqs.Iterate(seed, f, limit)), buildOptions(opts))
}

// Range yields start, start+step, ... up to but excluding end.
func Range(start, end, step int, opts ...Option[int]) *Seq[int] {
	return newSeq(reusableSource(seqs.Range(start, end, step)), buildOptions(opts))
}

// Repeat yields v count times.
func Repeat[T any](v T, count int, opts ...Option[T]) *Seq[T] {
	return newSeq(reusableSource(seqs.Repeat(v, count)), buildOptions(opts))
}

// Unit returns a materialized single-element sequence with the receiver's settings.
func (s *Seq[T]) Unit(v T) *Seq[T] {
	return s.withSnapshot(s.collector.Collect(slices.Values([]T{v}), s.efficient))
}

// EmptyUnit returns a materialized empty sequence with the receiver's settings.
func (s *Seq[T]) EmptyUnit() *Seq[T] {
	return s.withSnapshot(s.collector.Zero())
}

// From wraps a single-use stream with the receiver's settings.
func (s *Seq[T]) From(seq iter.Seq[T]) *Seq[T] {
	return &Seq[T]{
		src:       streamSource(seq),
		collector: s.collector,
		efficient: s.efficient,
		env:       s.env,
		cache:     &cache[T]{},
	}
}
