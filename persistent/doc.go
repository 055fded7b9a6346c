/*
Package persistent provides immutable, structurally shared sequences.

Every "update" of a [Snapshot] returns a new value that shares the unchanged parts of the
original. The original is never modified, so snapshots can be read from any number of
goroutines without locking.

Two representations are provided:

  - [Stack]: a cons list. Push and pop at the front are O(1); indexed edits are O(i) and
    share the untouched suffix.
  - [Vector]: a 32-way trie with a tail buffer and a start offset. Push and pop at the
    back and indexed get/set are O(log32 n); pop at the front and prefix slicing are O(1).

# Capabilities

The API is split into small capability interfaces instead of one large collection type:
[Reader] for observation, [Editor] for persistent edits and [BulkAppender] for
representations that can append many generated values in one pass.

# Collectors

A [Collector] folds a stream of elements back into a concrete representation. Collectors
are passed explicitly; there is no global default registry.
*/
package persistent
