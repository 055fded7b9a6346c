/*
Package lazy provides [Seq], an immutable sequence handle that records transformations
and applies them only when a result is observed.

A Seq wraps either a persistent snapshot ([lazyseq/persistent]) or a raw source, plus a
pending [lazyseq/pipeline.Pipeline]. Transformations such as [Seq.Filter] or [Map]
return a new handle and do no work. The first observation ([Seq.Len], [Seq.Get],
[Seq.ToSlice], ...) runs the whole pipeline once, builds a snapshot with the handle's
collector and caches it. Later observations read the cache.

	s := lazy.Of(1, 2, 3)
	doubled := lazy.Map(s, func(v int) int { return v * 2 })
	small := doubled.Filter(func(v int) bool { return v < 5 })
	out, err := small.ToSlice() // [2 4]

# Edits

Structural edits (Push, Plus, With, PlusAt, MinusAt, Slice, Concat) on a materialized
handle go straight to the snapshot and report bounds errors immediately. On an
unmaterialized handle they are recorded like any other transformation, and bounds
errors surface at the observation that runs them. An index check needs the whole
stream, so it is skipped when a later step such as Take stops pulling first.

# Sources

Snapshots and generators (Range, Repeat, Iterate, Unfold) can be read any number of times.
Streams (FromSeq, FromChannel, FromPull, Generate) are consumed by the first
materialization of any handle derived from them; later attempts fail with
[ErrSourceConsumed].

# Concurrency

Handles may be shared between goroutines. Concurrent observers of one handle wait for a
single materialization. User functions must not observe the handle that is calling
them; doing so deadlocks.
*/
package lazy
