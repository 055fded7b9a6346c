/*
Package seqs provides the iterator (iter.Seq) building blocks that lazy pipelines are
assembled from.

  - **Functional Transformations**: [Map], [Filter], [Reduce], [FlatMap], [Zip], [Scan], etc.
  - **Flow Control**: [Take], [Skip], [TakeWhile], [DropWhile], [TakeLast], [DropLast].
  - **Grouping**: [Window], [Chunk], [GroupWhile], [GroupBy].
  - **Reordering**: [Sorted], [Shuffle], [Reverse], [Combinations], [Permutations]. These buffer their input completely.
  - **Sinks**: [First], [Last], [Any], [All], [Count], [Sum], [MinMax], [TryReduce].
  - **Sources**: [Range], [Repeat], [Unfold], [Iterate], [Generate], [FromChannel], [FromPull].

# Error Handling

Many functions come in "Try" variants (e.g., [TryMap], [TryFilter]) to handle errors
within the stream. If a predicate or transformer returns an error, it is propagated to the
consumer. [UntilErr] turns such a stream back into a plain one that stops at the first error.

# Laziness

Nothing is pulled from a source until the returned sequence is ranged over, and every
function stops pulling as soon as the consumer stops.
*/
package seqs
