package lazy

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"lazyseq/persistent"
	"lazyseq/pipeline"
)

// Seq is an immutable lazy sequence handle. Every method leaves the receiver unchanged;
// the zero value is not usable, construct handles with [Of], [Empty], [FromSeq] and
// friends.
type Seq[T any] struct {
	src       *source
	pipe      pipeline.Pipeline
	collector persistent.Collector[T]
	efficient bool
	env       *env
	cache     *cache[T]
}

// cache holds the materialized snapshot. It may be shared by handles that only differ
// in their efficient-ops flag.
type cache[T any] struct {
	mu   sync.Mutex
	snap persistent.Snapshot[T]
}

func newSeq[T any](src *source, o options[T]) *Seq[T] {
	return &Seq[T]{
		src:       src,
		collector: o.collector,
		efficient: o.efficient,
		env:       newEnv(o.logger, o.scope),
		cache:     &cache[T]{},
	}
}

func buildOptions[T any](opts []Option[T]) options[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// withSnapshot returns a materialized handle holding snap with the receiver's settings.
func (s *Seq[T]) withSnapshot(snap persistent.Snapshot[T]) *Seq[T] {
	return &Seq[T]{
		src:       reusableSource(snap.Values()),
		collector: s.collector,
		efficient: s.efficient,
		env:       s.env,
		cache:     &cache[T]{snap: snap},
	}
}

func (s *Seq[T]) cached() persistent.Snapshot[T] {
	s.cache.mu.Lock()
	defer s.cache.mu.Unlock()
	return s.cache.snap
}

// pending returns what a derived handle starts from. A materialized handle hands out its
// snapshot so the recorded steps are not run again.
func (s *Seq[T]) pending() (*source, pipeline.Pipeline) {
	if snap := s.cached(); snap != nil {
		return reusableSource(snap.Values()), pipeline.Pipeline{}
	}
	return s.src, s.pipe
}

// then records step on a new handle of the same element type.
func (s *Seq[T]) then(step pipeline.Step) *Seq[T] {
	src, pipe := s.pending()
	return &Seq[T]{
		src:       src,
		pipe:      pipe.Append(step),
		collector: s.collector,
		efficient: s.efficient,
		env:       s.env,
		cache:     &cache[T]{},
	}
}

// derive records step on a new handle of element type R. Without a WithCollector
// option the handle uses the built-in collector of the receiver's shape.
func derive[T, R any](s *Seq[T], step pipeline.Step, opts []Option[R]) *Seq[R] {
	src, pipe := s.pending()
	out := &Seq[R]{
		src:       src,
		pipe:      pipe.Append(step),
		collector: persistent.CollectorFor[R](s.collector.Shape()),
		efficient: s.efficient,
		env:       s.env,
		cache:     &cache[R]{},
	}
	if len(opts) == 0 {
		return out
	}
	o := options[R]{
		collector: out.collector,
		efficient: out.efficient,
		logger:    s.env.logger,
		scope:     s.env.scope,
	}
	for _, opt := range opts {
		opt(&o)
	}
	out.collector, out.efficient = o.collector, o.efficient
	out.env = newEnv(o.logger, o.scope)
	return out
}

// Snapshot materializes the handle if needed and returns the persistent result.
// A failed materialization caches nothing; the next observation tries again.
func (s *Seq[T]) Snapshot() (persistent.Snapshot[T], error) {
	s.cache.mu.Lock()
	defer s.cache.mu.Unlock()
	if s.cache.snap != nil {
		return s.cache.snap, nil
	}
	snap, err := s.materialize()
	if err != nil {
		s.env.failed(s.pipe.String(), err)
		return nil, err
	}
	s.cache.snap = snap
	return snap, nil
}

// Materialize forces evaluation and returns the receiver, now materialized.
func (s *Seq[T]) Materialize() (*Seq[T], error) {
	if _, err := s.Snapshot(); err != nil {
		return nil, err
	}
	return s, nil
}

// IsMaterialized reports whether an observation has already built the snapshot.
func (s *Seq[T]) IsMaterialized() bool {
	return s.cached() != nil
}

func (s *Seq[T]) materialize() (snap persistent.Snapshot[T], err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			snap = nil
			err = fmt.Errorf("lazy: %w: %v\nStack: %s", ErrTransformPanic, r, debug.Stack())
		}
	}()

	in, err := s.src.open()
	if err != nil {
		return nil, fmt.Errorf("lazy: materialize: %w", err)
	}
	var runErr error
	snap = s.collector.Collect(func(yield func(T) bool) {
		runErr = s.pipe.Run(in, func(v any) bool {
			return yield(cast[T](v))
		})
	}, s.efficient)
	if runErr != nil {
		return nil, fmt.Errorf("lazy: materialize: %w", runErr)
	}
	s.env.materialized(s.pipe.String(), s.pipe.Len(), snap.Len(), time.Since(start))
	return snap, nil
}

// Collector returns the collector observations build with.
func (s *Seq[T]) Collector() persistent.Collector[T] {
	return s.collector
}

// EfficientOps reports the efficient-ops flag.
func (s *Seq[T]) EfficientOps() bool {
	return s.efficient
}

// EfficientOpsOn returns a handle with the efficient-ops flag set. The handle shares
// the receiver's source, steps and cached result.
func (s *Seq[T]) EfficientOpsOn() *Seq[T] {
	return s.withEfficient(true)
}

// EfficientOpsOff returns a handle with the efficient-ops flag cleared.
func (s *Seq[T]) EfficientOpsOff() *Seq[T] {
	return s.withEfficient(false)
}

func (s *Seq[T]) withEfficient(on bool) *Seq[T] {
	if s.efficient == on {
		return s
	}
	out := *s
	out.efficient = on
	return &out
}
