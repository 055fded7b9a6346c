package lazy

import (
	"log/slog"
	"time"

	"github.com/uber-go/tally/v4"
)

type seqMetrics struct {
	materializeSuccess tally.Counter
	materializeErrors  tally.Counter
	materializeLatency tally.Timer
	fastEdits          tally.Counter
	deferredEdits      tally.Counter
}

func newSeqMetrics(scope tally.Scope) seqMetrics {
	return seqMetrics{
		materializeSuccess: scope.Counter("materialize.success"),
		materializeErrors:  scope.Counter("materialize.errors"),
		materializeLatency: scope.Timer("materialize.latency"),
		fastEdits:          scope.Counter("edits.fast-path"),
		deferredEdits:      scope.Counter("edits.deferred"),
	}
}

// env is shared by every handle derived from one construction.
type env struct {
	logger  *slog.Logger
	scope   tally.Scope
	metrics seqMetrics
}

func newEnv(logger *slog.Logger, scope tally.Scope) *env {
	return &env{
		logger:  logger,
		scope:   scope,
		metrics: newSeqMetrics(scope),
	}
}

func (e *env) materialized(pipe string, steps, size int, took time.Duration) {
	e.metrics.materializeSuccess.Inc(1)
	e.metrics.materializeLatency.Record(took)
	e.logger.Debug("sequence materialized",
		slog.Int("steps", steps),
		slog.String("pipeline", pipe),
		slog.Int("size", size),
		slog.Duration("duration", took))
}

func (e *env) failed(pipe string, err error) {
	e.metrics.materializeErrors.Inc(1)
	e.logger.Warn("sequence materialization failed",
		slog.String("pipeline", pipe),
		slog.Any("error", err))
}
