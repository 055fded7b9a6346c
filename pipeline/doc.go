// Package pipeline records deferred sequence transformations and runs them in one
// streaming pass.
//
// A [Pipeline] is an immutable, append-only list of [Step] values. Appending returns a
// new Pipeline and leaves the receiver usable, so many handles can branch from one
// recorded prefix. Elements travel through a pipeline as untyped values; typed callers
// wrap their functions when building steps.
//
// [Pipeline.Run] composes the steps from [lazyseq/seqs] primitives. Steps that stop
// pulling early (Take, TakeWhile, Slice, ...) stop the source too. Only steps that
// must see the whole input buffer it: Sort, Shuffle, Reverse, ScanRight, GroupBy and the
// last-n variants of Take and Drop.
package pipeline
