package lazy

import (
	"log/slog"

	"github.com/uber-go/tally/v4"

	"lazyseq/persistent"
)

type options[T any] struct {
	collector persistent.Collector[T]
	efficient bool
	logger    *slog.Logger
	scope     tally.Scope
}

func defaultOptions[T any]() options[T] {
	return options[T]{
		collector: persistent.VectorCollector[T]{},
		logger:    slog.New(slog.DiscardHandler),
		scope:     tally.NoopScope,
	}
}

// Option configures a Seq at construction.
type Option[T any] func(*options[T])

// WithCollector selects the representation observations build. The default is
// persistent.VectorCollector, which grows at the back.
func WithCollector[T any](c persistent.Collector[T]) Option[T] {
	return func(o *options[T]) {
		if c != nil {
			o.collector = c
		}
	}
}

// WithEfficientOps sets the efficient-ops flag, which picks the cheaper build strategy
// of the collector. It never changes results.
func WithEfficientOps[T any](on bool) Option[T] {
	return func(o *options[T]) {
		o.efficient = on
	}
}

// WithLogger sets the logger materializations report to. The default discards.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(o *options[T]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics sets the scope materialization metrics are reported to.
func WithMetrics[T any](scope tally.Scope) Option[T] {
	return func(o *options[T]) {
		if scope != nil {
			o.scope = scope
		}
	}
}
