package repository

import (
	"context"
	"errors"
	"iter"
	"time"

	"blog/internal/platform/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	outcomeOK          = "ok"
	outcomeAbsent      = "absent"
	outcomeUnavailable = "unavailable"
	outcomeConstraint  = "constraint"
	outcomeError       = "error"
)

// Instrumented records count and latency of every call on the wrapped
// repository. It does not alter results or errors.
type Instrumented[E any, K comparable] struct {
	next    Repository[E, K]
	metrics *metrics.Provider
	entity  string
	backend string
}

var _ Repository[any, int] = (*Instrumented[any, int])(nil)

func NewInstrumented[E any, K comparable](next Repository[E, K], provider *metrics.Provider, entity, backend string) *Instrumented[E, K] {
	return &Instrumented[E, K]{
		next:    next,
		metrics: provider,
		entity:  entity,
		backend: backend,
	}
}

func (r *Instrumented[E, K]) Save(ctx context.Context, e E) (E, error) {
	start := time.Now()
	saved, err := r.next.Save(ctx, e)
	r.record(ctx, "save", start, outcomeOf(err))
	return saved, err
}

func (r *Instrumented[E, K]) FindByID(ctx context.Context, id K) (E, bool, error) {
	start := time.Now()
	e, found, err := r.next.FindByID(ctx, id)
	outcome := outcomeOf(err)
	if err == nil && !found {
		outcome = outcomeAbsent
	}
	r.record(ctx, "find_by_id", start, outcome)
	return e, found, err
}

func (r *Instrumented[E, K]) FindAll(ctx context.Context, page Page) iter.Seq2[E, error] {
	return func(yield func(E, error) bool) {
		start := time.Now()
		outcome := outcomeOK
		defer func() { r.record(ctx, "find_all", start, outcome) }()

		for e, err := range r.next.FindAll(ctx, page) {
			if err != nil {
				outcome = outcomeOf(err)
			}
			if !yield(e, err) {
				return
			}
		}
	}
}

func (r *Instrumented[E, K]) DeleteByID(ctx context.Context, id K) error {
	start := time.Now()
	err := r.next.DeleteByID(ctx, id)
	r.record(ctx, "delete_by_id", start, outcomeOf(err))
	return err
}

func (r *Instrumented[E, K]) ExistsByID(ctx context.Context, id K) (bool, error) {
	start := time.Now()
	exists, err := r.next.ExistsByID(ctx, id)
	r.record(ctx, "exists_by_id", start, outcomeOf(err))
	return exists, err
}

func (r *Instrumented[E, K]) Count(ctx context.Context) (int64, error) {
	start := time.Now()
	n, err := r.next.Count(ctx)
	r.record(ctx, "count", start, outcomeOf(err))
	return n, err
}

func (r *Instrumented[E, K]) record(ctx context.Context, operation string, start time.Time, outcome string) {
	attrs := metric.WithAttributes(
		attribute.String("entity", r.entity),
		attribute.String("backend", r.backend),
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)
	r.metrics.RepositoryOperations.Add(ctx, 1, attrs)
	r.metrics.RepositoryDuration.Record(ctx, time.Since(start).Seconds(), attrs)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, ErrStoreUnavailable):
		return outcomeUnavailable
	case errors.Is(err, ErrConstraintViolation):
		return outcomeConstraint
	default:
		return outcomeError
	}
}
